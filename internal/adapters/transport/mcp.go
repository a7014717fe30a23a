package transport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/baditaflorin/go_typography_normalizer/internal/config"
)

// Tool names.
const (
	ToolNormalizeText   = "normalize_text"
	ToolNormalizeQuotes = "normalize_quotes"
)

// RegisterMCPTools registers the normalizer tools on the server.
func RegisterMCPTools(srv *server.MCPServer, svc *Service) {
	registerNormalizeText(srv, svc)
	registerNormalizeQuotes(srv, svc)
}

func registerNormalizeText(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(ToolNormalizeText,
		mcp.WithDescription("Normalize Ukrainian typography: quotation marks, apostrophes, spaced apostrophes and phone numbers."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to normalize")),
		mcp.WithString("stages", mcp.Description("Comma-separated stages to run in order (e.g. quotes,phone); all stages when empty")),
	)

	srv.AddTool(tool, NormalizeTextHandler(svc))
}

func registerNormalizeQuotes(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(ToolNormalizeQuotes,
		mcp.WithDescription("Pair and nest quotation marks as «outer “inner” outer»."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to normalize")),
		mcp.WithString("outer_open", mcp.Description("Outer opening mark, « by default")),
		mcp.WithString("outer_close", mcp.Description("Outer closing mark, » by default")),
		mcp.WithString("inner_open", mcp.Description("Inner opening mark, “ by default")),
		mcp.WithString("inner_close", mcp.Description("Inner closing mark, ” by default")),
	)

	srv.AddTool(tool, NormalizeQuotesHandler(svc))
}

// NormalizeTextHandler handles normalize_text calls.
func NormalizeTextHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		resp, err := svc.NormalizeText(text, SplitList(req.GetString("stages", "")))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(resp)
	}
}

// NormalizeQuotesHandler handles normalize_quotes calls.
func NormalizeQuotesHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		overrides := config.SymbolsConfig{
			OuterOpen:  req.GetString("outer_open", ""),
			OuterClose: req.GetString("outer_close", ""),
			InnerOpen:  req.GetString("inner_open", ""),
			InnerClose: req.GetString("inner_close", ""),
		}

		resp, err := svc.NormalizeQuotes(text, overrides)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(resp)
	}
}

func jsonResult(resp Response) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
