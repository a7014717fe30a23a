package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/transport"
	"github.com/baditaflorin/go_typography_normalizer/internal/config"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// batchTimeout bounds the time spent on one batch request
const batchTimeout = 60 * time.Second

// NormalizeRequest asks for a pipeline run
type NormalizeRequest struct {
	Text   string   `json:"text"`
	Stages []string `json:"stages,omitempty"`
}

// QuotesRequest asks for quotation normalization only
type QuotesRequest struct {
	Text    string               `json:"text"`
	Symbols config.SymbolsConfig `json:"symbols,omitempty"`
}

// BatchRequest asks for a pipeline run over several articles
type BatchRequest struct {
	Articles []string `json:"articles"`
	Stages   []string `json:"stages,omitempty"`
}

// BatchResponse holds one response per article, in request order
type BatchResponse struct {
	Results []transport.Response `json:"results"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type app struct {
	logger  ports.Logger
	service *transport.Service
}

func newApp(logger ports.Logger, cfg config.Config) (*app, error) {
	factory, err := cfg.NormalizerFactory()
	if err != nil {
		return nil, err
	}
	service, err := transport.NewService(logger, factory, cfg.Stages, transport.WithStopOnError(cfg.StopOnError))
	if err != nil {
		return nil, err
	}
	return &app{logger: logger, service: service}, nil
}

// requestHandler is the main fasthttp request handler
func (a *app) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "TypographyServer")

	switch string(ctx.Path()) {
	case "/health":
		a.handleHealthCheck(ctx)
	case "/normalize":
		a.handleNormalize(ctx)
	case "/quotes":
		a.handleQuotes(ctx)
	case "/batch":
		a.handleBatch(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		a.writeJSONError(ctx, "Not found")
	}

	a.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (a *app) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"stages": a.service.Pipeline().Stages(),
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleNormalize runs the pipeline over one text
func (a *app) handleNormalize(ctx *fasthttp.RequestCtx) {
	var req NormalizeRequest
	if !a.decodePost(ctx, &req) {
		return
	}
	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "Text is required")
		return
	}

	resp, err := a.service.NormalizeText(req.Text, req.Stages)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, resp)
}

// handleQuotes runs the quotation normalizer over one text
func (a *app) handleQuotes(ctx *fasthttp.RequestCtx) {
	var req QuotesRequest
	if !a.decodePost(ctx, &req) {
		return
	}
	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "Text is required")
		return
	}

	resp, err := a.service.NormalizeQuotes(req.Text, req.Symbols)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, resp)
}

// handleBatch runs the pipeline over several articles
func (a *app) handleBatch(ctx *fasthttp.RequestCtx) {
	var req BatchRequest
	if !a.decodePost(ctx, &req) {
		return
	}
	if len(req.Articles) == 0 {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "At least one article is required")
		return
	}

	c, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	results, err := a.service.NormalizeBatch(c, req.Articles, req.Stages)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, BatchResponse{Results: results})
}

// decodePost accepts only POST requests with a JSON body
func (a *app) decodePost(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		a.writeJSONError(ctx, "Method not allowed")
		return false
	}
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// writeJSONResponse writes a JSON response to the context
func (a *app) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		a.logger.Error("Error marshaling JSON response", "error", err)
		a.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (a *app) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		a.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
