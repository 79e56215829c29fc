package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingapi/internal/config"
	"bookingapi/internal/middleware"
	"bookingapi/internal/repository"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	seedReference(t, db)

	svc := NewService(
		repository.NewBookingRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewUserRepository(db),
		config.StatusConfig{BookedID: 4, CanceledID: 5},
		time.UTC,
	)

	r := gin.New()
	r.Use(middleware.Identity(""))
	api := r.Group("/api")
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndFetchBooking(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"bookingNo":             "BK-2001",
		"originLocationId":      1,
		"destinationLocationId": 2,
		"agreementPartyId":      50,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created BookingDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "/api/bookings/1", w.Header().Get("Location"))
	assert.Equal(t, int16(1), created.BookingID)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched BookingDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "BK-2001", *fetched.BookingNo)
	assert.Equal(t, int16(1), *fetched.OriginLocationID)
	assert.Equal(t, int16(2), *fetched.DestinationLocationID)
	assert.Equal(t, "Manila", *fetched.OriginLocationDesc)
	assert.Equal(t, int16(4), *fetched.StatusID)

	require.Len(t, fetched.BookingParties, 1)
	party := fetched.BookingParties[0]
	assert.Equal(t, int16(10), *party.PartyTypeID)
	require.NotNil(t, party.Customer)
	assert.Equal(t, int32(50), party.Customer.CustomerID)
	assert.Equal(t, "Ramon", *party.Customer.FirstName)
}

func TestGetBookingNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetBookingInvalidID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/999", gin.H{"weight": 100})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelBookingWithoutBody(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/bookings/1/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dto BookingDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, int16(5), *dto.StatusID)
	assert.NotNil(t, dto.CancelDttm)
	assert.Nil(t, dto.CancelRemarks)
}

func TestRouteStatsBadPeriod(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/routes?period=quarter", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.Booked)
}
