package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/application/usecase"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// Handler exposes the public quote and risk-assessment surface over HTTP.
// Mutating operations (submission, disbursement, payments) go through gRPC;
// this surface serves unauthenticated pre-qualification traffic and probes.
type Handler struct {
	quote      *usecase.QuoteScheduleUseCase
	assessRisk *usecase.AssessRiskUseCase
	logger     *slog.Logger
}

// NewHandler creates the REST handler.
func NewHandler(quote *usecase.QuoteScheduleUseCase, assessRisk *usecase.AssessRiskUseCase, logger *slog.Logger) *Handler {
	return &Handler{quote: quote, assessRisk: assessRisk, logger: logger}
}

// Register attaches all routes to the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.POST("/v1/calculator/quote", h.QuoteSchedule)
	e.POST("/v1/risk-assessment", h.AssessRisk)
	e.GET("/healthz", h.Liveness)
	e.GET("/readyz", h.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// QuoteSchedule computes a fixed-payment amortization quote.
func (h *Handler) QuoteSchedule(c echo.Context) error {
	var req dto.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	resp, err := h.quote.Execute(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AssessRisk runs a standalone risk assessment for pre-qualification.
func (h *Handler) AssessRisk(c echo.Context) error {
	var req dto.AssessRiskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	resp, err := h.assessRisk.Execute(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Liveness is the liveness probe.
func (h *Handler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "origination-service",
	})
}

// Readiness is the readiness probe.
func (h *Handler) Readiness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "origination-service",
	})
}

func (h *Handler) writeError(c echo.Context, err error) error {
	if errors.Is(err, valueobject.ErrInvalidArgument) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	h.logger.Error("request failed", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
