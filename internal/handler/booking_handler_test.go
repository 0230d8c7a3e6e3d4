package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuttipat/court-booking-service/internal/dto"
	"github.com/wuttipat/court-booking-service/internal/models"
	"github.com/wuttipat/court-booking-service/internal/service"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn   func(ctx context.Context, userID string, courtID uint, date string, startTimes []string) ([]service.BookingResult, error)
	getFn      func(ctx context.Context, userID string, id uint) (*models.Booking, error)
	listFn     func(ctx context.Context, userID string) ([]models.Booking, error)
	cancelFn   func(ctx context.Context, userID string, id uint) (*models.Booking, error)
	completeFn func(ctx context.Context, ownerID string, id uint) (*models.Booking, error)
}

func (m *mockBookingService) CreateBookings(ctx context.Context, userID string, courtID uint, date string, startTimes []string) ([]service.BookingResult, error) {
	return m.createFn(ctx, userID, courtID, date, startTimes)
}
func (m *mockBookingService) GetBooking(ctx context.Context, userID string, id uint) (*models.Booking, error) {
	return m.getFn(ctx, userID, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return m.listFn(ctx, userID)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, userID string, id uint) (*models.Booking, error) {
	return m.cancelFn(ctx, userID, id)
}
func (m *mockBookingService) CompleteBooking(ctx context.Context, ownerID string, id uint) (*models.Booking, error) {
	return m.completeFn(ctx, ownerID, id)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c
}

func TestCreateBookings_Handler_MixedOutcomes(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID string, courtID uint, date string, startTimes []string) ([]service.BookingResult, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, uint(3), courtID)
			return []service.BookingResult{
				{StartTime: "10:00", Outcome: service.OutcomeCreated, Booking: &models.Booking{
					ID: 1, Reference: "ref-1", CourtID: 3, Date: date, StartTime: "10:00", EndTime: "11:00",
					UserID: userID, Price: 200, Status: models.StatusBooked,
				}},
				{StartTime: "11:00", Outcome: service.OutcomeSlotUnavailable},
			}, nil
		},
	}

	e := echo.New()
	body := `{"court_id":3,"date":"2026-09-07","start_times":["10:00","11:00"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	h := NewBookingHandler(svc)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.BookingResultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "created", resp[0].Outcome)
	require.NotNil(t, resp[0].Booking)
	assert.Equal(t, "ref-1", resp[0].Booking.Reference)
	assert.Equal(t, "slot_unavailable", resp[1].Outcome)
	assert.Nil(t, resp[1].Booking)
}

func TestCreateBookings_Handler_MissingCourt(t *testing.T) {
	e := echo.New()
	body := `{"date":"2026-09-07","start_times":["10:00"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	h := NewBookingHandler(&mockBookingService{})
	err := h.Create(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBookings_Handler_EmptySelection(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID string, courtID uint, date string, startTimes []string) ([]service.BookingResult, error) {
			return nil, service.ErrEmptySelection
		},
	}

	e := echo.New()
	body := `{"court_id":3,"date":"2026-09-07","start_times":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	h := NewBookingHandler(svc)
	err := h.Create(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, userID string, id uint) (*models.Booking, error) {
			return nil, service.ErrBookingNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/9", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")
	c.SetParamNames("id")
	c.SetParamValues("9")

	h := NewBookingHandler(svc)
	err := h.Get(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCancelBooking_Handler_AlreadyStarted(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, userID string, id uint) (*models.Booking, error) {
			return nil, service.ErrBookingStarted
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/4/cancel", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")
	c.SetParamNames("id")
	c.SetParamValues("4")

	h := NewBookingHandler(svc)
	err := h.Cancel(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCompleteBooking_Handler_Forbidden(t *testing.T) {
	svc := &mockBookingService{
		completeFn: func(ctx context.Context, ownerID string, id uint) (*models.Booking, error) {
			return nil, service.ErrForbidden
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/4/complete", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "someone-else")
	c.SetParamNames("id")
	c.SetParamValues("4")

	h := NewBookingHandler(svc)
	err := h.Complete(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
