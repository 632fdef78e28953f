// Package apptest builds a loaded App over temporary directories for tests.
package apptest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpggio/farmrec/internal/app"
	"github.com/rpggio/farmrec/internal/config"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Clock is the fixed time reports are stamped with.
var Clock = time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)

// Config returns a configuration rooted in a fresh temp dir.
func Config(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Data.Dir = filepath.Join(root, "data")
	cfg.Data.SQLitePath = filepath.Join(root, "data", "farmrec.db")
	cfg.Reports.Dir = filepath.Join(root, "reports")
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return cfg
}

// New returns a loaded App using the JSON driver.
func New(t *testing.T) *app.App {
	t.Helper()
	return NewWithConfig(t, Config(t))
}

// NewWithConfig returns a loaded App for cfg, closed when the test ends.
func NewWithConfig(t *testing.T, cfg config.Config) *app.App {
	t.Helper()

	a, err := app.New(cfg, nil, app.WithReportOptions(report.WithClock(func() time.Time { return Clock })))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NoError(t, a.Load(context.Background()))
	return a
}
