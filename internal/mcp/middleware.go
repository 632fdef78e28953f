package mcp

import (
	"context"

	"github.com/rpggio/farmrec/internal/domain/user"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const actorKey contextKey = iota

// getActor extracts the acting account from context.
func getActor(ctx context.Context) user.User {
	v, _ := ctx.Value(actorKey).(user.User)
	return v
}

// actorMiddleware attributes every request to the account that started the
// server. Stdio serves a single local user, so there is no per-request auth.
func actorMiddleware(actor user.User) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			ctx = context.WithValue(ctx, actorKey, actor)
			return next(ctx, method, req)
		}
	}
}
