package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vietravel/infras/otel/mocks"
	adminDto "vietravel/internal/domains/admin/model/dto"
	bookingMocks "vietravel/internal/domains/booking/mocks"
	"vietravel/internal/domains/booking/model/dto"
	"vietravel/internal/handlers/booking"
	gDto "vietravel/shared/dto"
	"vietravel/shared/failure"
	"vietravel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const validBody = `{
	"destinationId": 1,
	"departureDate": "2030-01-15",
	"adults": 2,
	"children": 1,
	"totalAmount": 6200000,
	"customerInfo": {"fullName": "Nguyễn Văn A", "email": "a@example.com", "phone": "0900000000"},
	"specialRequests": "ăn chay"
}`

func setup(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Use(middleware.NewAuthMiddleware(mocks.NewOtel()).BearerToken)
	handler.Router(router)

	return svc, router
}

func TestCreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
				assert.Equal(t, dto.FlexibleID("1"), req.DestinationID)
				assert.Equal(t, 2, req.Adults)
				assert.Equal(t, "a@example.com", req.CustomerInfo.Email)

				return dto.CreateBookingResponse{BookingCode: "VT123456", Message: "ok"}, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(validBody)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":{"bookingCode":"VT123456","message":"ok"}}`, rec.Body.String())
	})

	t.Run("missing field never reaches the service", func(t *testing.T) {
		_, router := setup(t)

		body := `{"destinationId": 1, "departureDate": "2030-01-15", "customerInfo": {"fullName": "A", "email": "a@example.com", "phone": "1"}}`

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"missing required field: adults"}`, rec.Body.String())
	})

	t.Run("malformed json", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"adults":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("service validation error", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(dto.CreateBookingResponse{}, failure.BadRequestFromString("Missing required customer information"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(validBody)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Missing required customer information"}`, rec.Body.String())
	})
}

func TestGetBookings(t *testing.T) {
	t.Run("by code", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().GetByCode(gomock.Any(), "VT123456").
			Return(dto.BookingResponse{ID: 1, BookingCode: "VT123456", Status: "pending"}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?code=VT123456", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"bookingCode":"VT123456"`)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("code takes precedence over credentials", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().GetByCode(gomock.Any(), "VT000001").Return(dto.BookingResponse{}, failure.NotFound("Booking not found"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?code=VT000001&admin_user=admin&admin_pass=password123", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Booking not found"}`, rec.Body.String())
	})

	t.Run("admin list with query credentials", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().ListAll(gomock.Any(), adminDto.Credential{Username: "admin", Password: "password123"}, gDto.QueryParams{}).
			Return(dto.GetBookingsResponse{Bookings: []dto.BookingResponse{{ID: 1}, {ID: 2}}, Total: 2}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?admin_user=admin&admin_pass=password123", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":2`)
	})

	t.Run("admin list with bearer token", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().ListAll(gomock.Any(), adminDto.Credential{Token: "signed.jwt.token"}, gDto.QueryParams{}).
			Return(dto.GetBookingsResponse{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set("Authorization", "Bearer signed.jwt.token")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":[],"total":0}`, rec.Body.String())
	})

	t.Run("admin list paging", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().ListAll(gomock.Any(), gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5, SortBy: "created_at", SortDir: "DESC"}).
			Return(dto.GetBookingsResponse{Total: 7}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?admin_user=admin&admin_pass=password123&page=2&limit=5&sort_by=created_at&sort_dir=desc", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":[],"total":7}`, rec.Body.String())
	})

	t.Run("wrong credentials return no data", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.GetBookingsResponse{}, failure.InvalidCredentials)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?admin_user=admin&admin_pass=wrong", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, rec.Body.String())
	})
}
