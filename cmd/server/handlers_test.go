package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/transport"
	"github.com/baditaflorin/go_typography_normalizer/internal/config"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	a, err := newApp(logger.NewNopLogger(), config.Default())
	require.NoError(t, err)
	return a
}

func serve(a *app, method, path, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != "" {
		req.SetBodyString(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	a.requestHandler(ctx)
	return ctx
}

func TestHealthCheck(t *testing.T) {
	ctx := serve(newTestApp(t), fasthttp.MethodGet, "/health", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Len(t, body["stages"], 5)
}

func TestNormalizeEndpoint(t *testing.T) {
	a := newTestApp(t)

	ctx := serve(a, fasthttp.MethodPost, "/normalize", `{"text":"Він сказав: \"Привіт\"."}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp transport.Response
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "Він сказав: «Привіт».", resp.Text)
	assert.Empty(t, resp.Errors)
	assert.Len(t, resp.Stages, 5)
}

func TestNormalizeEndpointSelectedStages(t *testing.T) {
	ctx := serve(newTestApp(t), fasthttp.MethodPost, "/normalize",
		`{"text":"067 123 45 67 \"так\"","stages":["phone"]}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp transport.Response
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, `+380 (67) 123-45-67 "так"`, resp.Text)
	require.Len(t, resp.Stages, 1)
}

func TestQuotesEndpoint(t *testing.T) {
	ctx := serve(newTestApp(t), fasthttp.MethodPost, "/quotes",
		`{"text":"\"Слово\"","symbols":{"outer_open":"„","outer_close":"“","inner_open":"‚","inner_close":"‘"}}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp transport.Response
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "„Слово“", resp.Text)
}

func TestBatchEndpoint(t *testing.T) {
	ctx := serve(newTestApp(t), fasthttp.MethodPost, "/batch",
		`{"articles":["\"один\"","\"два\""]}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp BatchResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "«один»", resp.Results[0].Text)
	assert.Equal(t, "«два»", resp.Results[1].Text)
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown path", fasthttp.MethodGet, "/missing", "", fasthttp.StatusNotFound},
		{"wrong method", fasthttp.MethodGet, "/normalize", "", fasthttp.StatusMethodNotAllowed},
		{"invalid json", fasthttp.MethodPost, "/normalize", "{", fasthttp.StatusBadRequest},
		{"empty text", fasthttp.MethodPost, "/normalize", `{"text":""}`, fasthttp.StatusBadRequest},
		{"unknown stage", fasthttp.MethodPost, "/normalize", `{"text":"x","stages":["nope"]}`, fasthttp.StatusBadRequest},
		{"bad symbol", fasthttp.MethodPost, "/quotes", `{"text":"x","symbols":{"divider":"ab"}}`, fasthttp.StatusBadRequest},
		{"empty batch", fasthttp.MethodPost, "/batch", `{"articles":[]}`, fasthttp.StatusBadRequest},
	}

	a := newTestApp(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := serve(a, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
