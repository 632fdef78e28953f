package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rpggio/farmrec/internal/app"
	"github.com/rpggio/farmrec/internal/cli"
	"github.com/rpggio/farmrec/internal/config"
	"github.com/rpggio/farmrec/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	// Logs never go to stdout: it carries command output and, under serve, JSON-RPC.
	logger, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.Path, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		return 1
	}
	defer closeLog()

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to open data store", "driver", cfg.Data.Driver, "error", err)
		return 1
	}
	defer a.Close()

	ctx := context.Background()
	if err := a.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Không thể tải dữ liệu: %v\n", err)
		return 1
	}

	if err := cli.NewRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
