package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpggio/farmrec/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// Version is reported by the MCP server; set at build time.
var Version = "dev"

func (r *runner) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the farm records as MCP tools over stdio",
		Long: `serve runs a Model Context Protocol server on stdin/stdout. Every tool
call acts as the account given with --username/--password. Logs go to
stderr or the configured log file so stdout stays clean for JSON-RPC.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := r.app.Logger()
			server := mcp.NewServer(mcp.Config{
				App:     r.app,
				Actor:   *r.current,
				Version: Version,
				Logger:  logger,
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(stop)

			go func() {
				select {
				case <-stop:
					logger.Info("shutting down")
					cancel()
				case <-ctx.Done():
				}
			}()

			logger.Info("starting stdio transport", "actor", r.current.Username)
			// Run blocks until stdin closes or ctx is canceled
			return server.Run(ctx, &sdkmcp.StdioTransport{})
		},
	}
}
