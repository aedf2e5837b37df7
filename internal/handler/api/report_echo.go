package api

import (
	"StockScope/internal/domain/models"
	"StockScope/internal/service/scrape"
	"StockScope/internal/usecase"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReportEchoHandler exposes the aggregation endpoint over Echo.
type ReportEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.ReportAggregator
	pool   *scrape.SessionPool
}

func NewReportEchoHandler(logger *xlogger.Logger, agg *usecase.ReportAggregator, pool *scrape.SessionPool) *ReportEchoHandler {
	return &ReportEchoHandler{logger: logger, agg: agg, pool: pool}
}

func (h *ReportEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/report/:ticker", h.Report)
	g.POST("/report", h.Report)
	e.GET("/healthz", h.Health)
}

// Report validates the ticker and runs the full aggregation.
func (h *ReportEchoHandler) Report(c echo.Context) error {
	req := &models.ReportRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report, err := h.agg.BuildReport(c.Request().Context(), req.Ticker)
	if err != nil {
		h.logger.Error("report usecase error",
			xlogger.String("ticker", req.Ticker),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, report)
}

// Health reports process liveness and session pool occupancy.
func (h *ReportEchoHandler) Health(c echo.Context) error {
	idle, created := 0, 0
	if h.pool != nil {
		idle, created = h.pool.Stats()
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":           "ok",
		"sessions_idle":    idle,
		"sessions_created": created,
	})
}
