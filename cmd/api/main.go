package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookingapi/internal/config"
	"bookingapi/internal/database"
	"bookingapi/internal/logger"
	"bookingapi/internal/middleware"
	"bookingapi/internal/modules/booking"
	"bookingapi/internal/modules/customer"
	"bookingapi/internal/modules/reference"
	"bookingapi/internal/modules/schedule"
	"bookingapi/internal/modules/user"
	"bookingapi/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	reportLoc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		logger.Fatal("invalid report timezone", zap.String("timezone", cfg.Report.Timezone), zap.Error(err))
	}

	bookingRepo := repository.NewBookingRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)
	userRepo := repository.NewUserRepository(db)

	bookingService := booking.NewService(bookingRepo, customerRepo, userRepo, cfg.Status, reportLoc)
	customerService := customer.NewService(customerRepo)
	scheduleService := schedule.NewService(scheduleRepo)
	userService := user.NewService(userRepo)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Identity(cfg.JWT.Secret))

	api := r.Group("/api")
	booking.NewHandler(bookingService).RegisterRoutes(api)
	customer.NewHandler(customerService).RegisterRoutes(api)
	schedule.NewHandler(scheduleService).RegisterRoutes(api)
	reference.NewHandler(referenceRepo).RegisterRoutes(api)
	user.NewHandler(userService).RegisterRoutes(api)

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
