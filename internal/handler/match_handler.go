package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wuttipat/court-booking-service/internal/dto"
	"github.com/wuttipat/court-booking-service/internal/middleware"
	"github.com/wuttipat/court-booking-service/internal/models"
	"github.com/wuttipat/court-booking-service/internal/service"
)

type MatchHandler struct {
	matches service.MatchService
}

func NewMatchHandler(matches service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

func (h *MatchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/matches", h.Create)
	g.GET("/matches", h.List)
	g.GET("/matches/:id", h.Get)
	g.GET("/matches/:id/capacity", h.Capacity)
	g.POST("/matches/:id/cancel", h.Cancel)
	g.POST("/matches/:id/requests", h.SubmitRequest)
	g.GET("/matches/:id/requests", h.ListRequests)
	g.POST("/requests/:id/decision", h.Decide)
}

func (h *MatchHandler) Create(c echo.Context) error {
	var req dto.CreateMatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PlayersRequired < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "players_required must be at least 1")
	}

	match := &models.Match{
		CreatorID:       middleware.UserID(c),
		DateTime:        req.DateTime,
		Location:        req.Location,
		Level:           req.Level,
		PlayersRequired: req.PlayersRequired,
	}
	if err := h.matches.CreateMatch(c.Request().Context(), match); err != nil {
		return matchError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToMatchResponse(match))
}

func (h *MatchHandler) List(c echo.Context) error {
	matches, err := h.matches.ListMatches(c.Request().Context())
	if err != nil {
		return matchError(err)
	}
	out := make([]dto.MatchResponse, 0, len(matches))
	for i := range matches {
		out = append(out, dto.ToMatchResponse(&matches[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MatchHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	match, err := h.matches.GetMatch(c.Request().Context(), id)
	if err != nil {
		return matchError(err)
	}
	return c.JSON(http.StatusOK, dto.ToMatchResponse(match))
}

func (h *MatchHandler) Capacity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	capacity, err := h.matches.GetMatchCapacity(c.Request().Context(), id)
	if err != nil {
		return matchError(err)
	}
	return c.JSON(http.StatusOK, dto.CapacityResponse{
		Accepted: capacity.Accepted,
		Required: capacity.Required,
		Full:     capacity.Full,
	})
}

func (h *MatchHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	match, err := h.matches.CancelMatch(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return matchError(err)
	}
	return c.JSON(http.StatusOK, dto.ToMatchResponse(match))
}

func (h *MatchHandler) SubmitRequest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.JoinRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	request, err := h.matches.SubmitJoinRequest(c.Request().Context(), middleware.UserID(c), id, req.Message)
	if err != nil {
		return matchError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToJoinRequestResponse(request))
}

func (h *MatchHandler) ListRequests(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	requests, err := h.matches.ListJoinRequests(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return matchError(err)
	}
	out := make([]dto.JoinRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, dto.ToJoinRequestResponse(&requests[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MatchHandler) Decide(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Accept == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "accept is required")
	}

	request, err := h.matches.DecideJoinRequest(c.Request().Context(), middleware.UserID(c), id, *req.Accept)
	if err != nil {
		return matchError(err)
	}
	return c.JSON(http.StatusOK, dto.ToJoinRequestResponse(request))
}

func matchError(err error) error {
	switch {
	case errors.Is(err, service.ErrMatchNotFound),
		errors.Is(err, service.ErrRequestNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrMatchFull),
		errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrRequestDecided),
		errors.Is(err, service.ErrMatchNotOpen):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrOwnMatch),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidWindow):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
