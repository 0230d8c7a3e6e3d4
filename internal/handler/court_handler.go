package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wuttipat/court-booking-service/internal/dto"
	"github.com/wuttipat/court-booking-service/internal/middleware"
	"github.com/wuttipat/court-booking-service/internal/models"
	"github.com/wuttipat/court-booking-service/internal/service"
)

type CourtHandler struct {
	courts       service.CourtService
	availability service.AvailabilityService
}

func NewCourtHandler(courts service.CourtService, availability service.AvailabilityService) *CourtHandler {
	return &CourtHandler{courts: courts, availability: availability}
}

func (h *CourtHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/courts", h.Create)
	g.GET("/courts", h.List)
	g.GET("/courts/:id", h.Get)
	g.PATCH("/courts/:id", h.Update)
	g.GET("/courts/:id/schedule", h.Schedule)
	g.POST("/courts/:id/selection", h.Selection)
	g.POST("/courts/:id/maintenance", h.SetMaintenance)
	g.DELETE("/courts/:id/maintenance", h.ClearMaintenance)
}

func (h *CourtHandler) Create(c echo.Context) error {
	var req dto.CreateCourtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.OpenTime == "" || req.CloseTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, open_time and close_time are required")
	}

	court := &models.Court{
		OwnerID:      middleware.UserID(c),
		Facility:     req.Facility,
		Name:         req.Name,
		SportType:    req.SportType,
		PricePerHour: req.PricePerHour,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
	}
	if err := h.courts.CreateCourt(c.Request().Context(), court); err != nil {
		return courtError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToCourtResponse(court))
}

func (h *CourtHandler) List(c echo.Context) error {
	courts, err := h.courts.ListCourts(c.Request().Context())
	if err != nil {
		return courtError(err)
	}
	out := make([]dto.CourtResponse, 0, len(courts))
	for i := range courts {
		out = append(out, dto.ToCourtResponse(&courts[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CourtHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	court, err := h.courts.GetCourt(c.Request().Context(), id)
	if err != nil {
		return courtError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCourtResponse(court))
}

func (h *CourtHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCourtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	court, err := h.courts.UpdateCourt(c.Request().Context(), middleware.UserID(c), id, service.CourtUpdate{
		Name:         req.Name,
		SportType:    req.SportType,
		PricePerHour: req.PricePerHour,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		Active:       req.Active,
	})
	if err != nil {
		return courtError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCourtResponse(court))
}

func (h *CourtHandler) Schedule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}

	windows, err := h.availability.GetDaySchedule(c.Request().Context(), id, date)
	if err != nil {
		return courtError(err)
	}
	return c.JSON(http.StatusOK, dto.ScheduleResponse{CourtID: id, Date: date, Windows: windows})
}

func (h *CourtHandler) Selection(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.SelectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	summary, err := h.availability.ComputeSelection(c.Request().Context(), id, req.Date, req.StartTimes)
	if err != nil {
		return courtError(err)
	}
	return c.JSON(http.StatusOK, dto.ToSelectionResponse(summary))
}

func (h *CourtHandler) SetMaintenance(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.MaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	block := &models.MaintenanceBlock{
		CourtID:   id,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}
	if err := h.courts.SetMaintenance(c.Request().Context(), middleware.UserID(c), block); err != nil {
		return courtError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "maintenance block created"})
}

func (h *CourtHandler) ClearMaintenance(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.MaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err = h.courts.ClearMaintenance(c.Request().Context(), middleware.UserID(c), id, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return courtError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "maintenance block removed"})
}

func courtError(err error) error {
	switch {
	case errors.Is(err, service.ErrCourtNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrWindowBooked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrCourtInactive),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidWindow),
		errors.Is(err, service.ErrEmptySelection),
		errors.Is(err, service.ErrSelectionMismatch):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
