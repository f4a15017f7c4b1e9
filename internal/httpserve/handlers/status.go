package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bnema/ops-status-dashboard/internal/boundaries/in"
	"github.com/bnema/ops-status-dashboard/pkg/logger"
)

// StatusHandler serves the JSON status endpoints.
type StatusHandler struct {
	facts      in.FactsService
	containers in.ContainerStatusService
}

func NewStatusHandler(facts in.FactsService, containers in.ContainerStatusService) *StatusHandler {
	return &StatusHandler{facts: facts, containers: containers}
}

// Health handles GET /health
func (h *StatusHandler) Health(c echo.Context) error {
	return sendJSONResponse(c, http.StatusOK, toHealthResponse(h.facts.Health(c.Request().Context())))
}

// Version handles GET /version
func (h *StatusHandler) Version(c echo.Context) error {
	return sendJSONResponse(c, http.StatusOK, toVersionResponse(h.facts.Version(c.Request().Context())))
}

// System handles GET /system
func (h *StatusHandler) System(c echo.Context) error {
	return sendJSONResponse(c, http.StatusOK, toSystemResponse(h.facts.System(c.Request().Context())))
}

// Docker handles GET /docker. Engine problems are part of the payload, so
// the status is always 200.
func (h *StatusHandler) Docker(c echo.Context) error {
	return sendJSONResponse(c, http.StatusOK, toDockerResponse(h.containers.Status(c.Request().Context())))
}

func sendJSONResponse(c echo.Context, statusCode int, response interface{}) error {
	err := c.JSON(statusCode, response)
	if err != nil {
		logger.Error("Failed to send JSON response",
			"error", err,
			"statusCode", statusCode)
	}
	return err
}
