package reference

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"bookingapi/internal/database"
	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	locationTypes := []domain.LocationType{
		{LocationTypeID: 1, LocationTypeDesc: strPtr("City")},
	}
	require.NoError(t, db.Create(&locationTypes).Error)

	locations := []domain.Location{
		{LocationID: 1, LocationCd: strPtr("MNL"), LocationDesc: strPtr("Manila"), LocationTypeID: i16Ptr(1), PortID: i16Ptr(1)},
		{LocationID: 2, LocationCd: strPtr("CEB"), LocationDesc: strPtr("Cebu")},
	}
	require.NoError(t, db.Create(&locations).Error)

	vessels := []domain.Vessel{
		{VesselID: 1, VesselCd: strPtr("STM"), VesselDesc: strPtr("MV Santa Monica")},
	}
	require.NoError(t, db.Create(&vessels).Error)

	r := gin.New()
	api := r.Group("/api")
	NewHandler(repository.NewReferenceRepository(db)).RegisterRoutes(api)
	return r
}

func strPtr(s string) *string { return &s }
func i16Ptr(v int16) *int16   { return &v }

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListLocationsIncludesTypeDesc(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/locations")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []repository.LocationRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)

	byID := map[int16]repository.LocationRow{}
	for _, row := range rows {
		byID[row.LocationID] = row
	}
	manila := byID[1]
	assert.Equal(t, "Manila", *manila.LocationDesc)
	require.NotNil(t, manila.LocationTypeDesc)
	assert.Equal(t, "City", *manila.LocationTypeDesc)
	assert.Nil(t, byID[2].LocationTypeDesc)
}

func TestGetLocationByID(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/locations/1")
	require.Equal(t, http.StatusOK, w.Code)

	var row repository.LocationRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))
	assert.Equal(t, int16(1), row.LocationID)
	assert.Equal(t, "MNL", *row.LocationCd)
}

func TestGetLocationNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/locations/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetVesselByID(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/vessels/1")
	require.Equal(t, http.StatusOK, w.Code)

	var row domain.Vessel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))
	assert.Equal(t, "MV Santa Monica", *row.VesselDesc)
}

func TestGetVesselNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/vessels/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEmptyTableReturnsEmptyArray(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/commodities")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []domain.Commodity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}

func TestInvalidIDIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/vessels/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
