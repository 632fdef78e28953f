package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware logs each request at debug level with its
// payloads, and every failed tool call at warn level.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil {
				return next(ctx, method, req)
			}

			debug := logger.Enabled(ctx, slog.LevelDebug)
			attrs := []any{"direction", direction, "method", method, "actor", getActor(ctx).Username}
			if debug {
				logger.Debug("mcp request", append(attrs, "params", formatPayload(safeParams(req)))...)
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			attrs = append(attrs, "elapsed", time.Since(start))

			switch {
			case err != nil:
				logger.Warn("mcp request failed", append(attrs, "error", err)...)
			case isToolError(result):
				logger.Warn("mcp tool returned error", append(attrs, "result", formatPayload(result))...)
			case debug && !strings.HasPrefix(method, "notifications/"):
				logger.Debug("mcp response", append(attrs, "result", formatPayload(result))...)
			}
			return result, err
		}
	}
}

func isToolError(result sdkmcp.Result) bool {
	r, ok := result.(*sdkmcp.CallToolResult)
	return ok && r != nil && r.IsError
}

func safeParams(req sdkmcp.Request) (params any) {
	if req == nil {
		return nil
	}
	// some notifications carry a nil params pointer behind the interface
	defer func() {
		if recover() != nil {
			params = nil
		}
	}()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
