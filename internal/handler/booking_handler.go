package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wuttipat/court-booking-service/internal/dto"
	"github.com/wuttipat/court-booking-service/internal/middleware"
	"github.com/wuttipat/court-booking-service/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/bookings", h.Create)
	g.GET("/bookings", h.List)
	g.GET("/bookings/:id", h.Get)
	g.POST("/bookings/:id/cancel", h.Cancel)
	g.POST("/bookings/:id/complete", h.Complete)
}

// Create books every requested window and returns a per-window outcome. The
// response is 200 even when some windows lost a race; callers inspect each
// result's outcome field.
func (h *BookingHandler) Create(c echo.Context) error {
	var req dto.CreateBookingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.CourtID == 0 || req.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "court_id and date are required")
	}

	results, err := h.bookings.CreateBookings(c.Request().Context(), middleware.UserID(c), req.CourtID, req.Date, req.StartTimes)
	if err != nil {
		return bookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResultResponses(results))
}

func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookings.ListBookings(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return bookingError(err)
	}
	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.ToBookingResponse(&bookings[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.GetBooking(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return bookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.CancelBooking(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return bookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Complete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.CompleteBooking(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return bookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func bookingError(err error) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrCourtNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrBookingStarted),
		errors.Is(err, service.ErrBookingNotEnded),
		errors.Is(err, service.ErrBookingNotActive):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrEmptySelection),
		errors.Is(err, service.ErrCourtInactive):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
