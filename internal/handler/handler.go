package handler

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"inheritance-engine/internal/engine"
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/operations"
)

type route struct {
	method    string
	operation string
}

var routes = map[string]route{
	"/api/calculation/heirs":           {fasthttp.MethodPost, operations.OpDetermineHeirs},
	"/api/calculation/tax-amount":      {fasthttp.MethodPost, operations.OpCalculateTaxAmount},
	"/api/calculation/actual-division": {fasthttp.MethodPost, operations.OpCalculateActualDivision},
	"/api/calculation/report":          {fasthttp.MethodPost, operations.OpRenderReport},
	"/api/utilities/tax-table":         {fasthttp.MethodGet, operations.OpTaxTable},
}

const healthPath = "/api/health"

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Handler struct {
	engine  *engine.Engine
	logger  *zap.Logger
	service string
}

func New(e *engine.Engine, logger *zap.Logger, service string) *Handler {
	return &Handler{engine: e, logger: logger, service: service}
}

// Handle is the fasthttp entry point for every route.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())
	method := string(ctx.Method())

	fields := h.dispatch(ctx, path, method)

	h.logger.Info("request handled", append(fields,
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)...)
}

func (h *Handler) dispatch(ctx *fasthttp.RequestCtx, path, method string) []zap.Field {
	if path == healthPath {
		if method != fasthttp.MethodGet {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return nil
		}
		writeJSON(ctx, fasthttp.StatusOK, healthResponse{Status: "ok", Service: h.service})
		return nil
	}

	rt, ok := routes[path]
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, fmt.Sprintf("No route for %s", path))
		return nil
	}
	if method != rt.method {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return nil
	}

	resp := h.engine.Process(rt.operation, ctx.PostBody())
	meta := resp.CalculationMetadata
	fields := []zap.Field{
		zap.String("operation", meta.Operation),
		zap.String("calculation_id", meta.CalculationID),
		zap.String("outcome", meta.CalculationOutcome),
	}

	if meta.CalculationOutcome == model.OutcomeFailure {
		for _, m := range resp.CalculationResult.Messages {
			h.logger.Debug("calculation message",
				zap.String("calculation_id", meta.CalculationID),
				zap.String("code", m.Code),
				zap.String("field", m.Field),
				zap.String("message", m.Message),
			)
		}
		writeJSON(ctx, fasthttp.StatusBadRequest, resp)
		return fields
	}

	if att, ok := resp.CalculationResult.Result.(*model.Attachment); ok {
		ctx.Response.Header.Set("X-Calculation-Id", meta.CalculationID)
		ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))
		ctx.SetContentType(att.ContentType)
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBody(att.Body)
		return fields
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
	return fields
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"status":500,"message":"failed to encode response"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
