// Package app wires the farm record stores together. Each store is built
// once by New and shared by every caller of the returned App.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rpggio/farmrec/internal/collection"
	"github.com/rpggio/farmrec/internal/config"
	"github.com/rpggio/farmrec/internal/domain/activity"
	"github.com/rpggio/farmrec/internal/domain/animal"
	"github.com/rpggio/farmrec/internal/domain/crop"
	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/rpggio/farmrec/internal/domain/user"
	"github.com/rpggio/farmrec/internal/filestore"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/rpggio/farmrec/internal/repository"
	"github.com/rpggio/farmrec/internal/sqlite"
)

// ErrForbidden indicates the acting user lacks the role for an operation.
var ErrForbidden = errors.New("forbidden")

// App holds the services of one data directory.
type App struct {
	Crops      *crop.Service
	Animals    *animal.Service
	Activities *activity.Service
	Users      *user.Service
	History    *history.Service
	Reports    *report.Exporter

	cfg    config.Config
	store  repository.DocumentStore
	db     *sqlite.DB
	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	reportOpts []report.Option
}

// WithReportOptions passes options to the report exporter.
func WithReportOptions(opts ...report.Option) Option {
	return func(o *options) { o.reportOpts = append(o.reportOpts, opts...) }
}

// New opens the configured document store and builds every service on it.
// Nothing is read until Load.
func New(cfg config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{cfg: cfg, logger: logger}
	switch cfg.Data.Driver {
	case config.DriverJSON, "":
		a.store = filestore.New(cfg.Data.Dir)
	case config.DriverSQLite:
		if err := ensureDBDir(cfg.Data.SQLitePath); err != nil {
			return nil, fmt.Errorf("preparing database path: %w", err)
		}
		db, err := sqlite.New(cfg.Data.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
		a.store = sqlite.NewDocumentRepository(db)
	default:
		return nil, fmt.Errorf("unknown data driver %q", cfg.Data.Driver)
	}

	a.History = history.NewService(
		collection.New(a.store, repository.DocumentHistory, history.Key),
		history.DefaultMaxEntries, logger)
	a.Crops = crop.NewService(
		collection.New(a.store, repository.DocumentCrops, crop.Key), a.History, logger)
	a.Animals = animal.NewService(
		collection.New(a.store, repository.DocumentAnimals, animal.Key), a.History, logger)
	a.Activities = activity.NewService(
		collection.New(a.store, repository.DocumentActivities, activity.Key), a.History, logger)
	a.Users = user.NewService(
		collection.New(a.store, repository.DocumentUsers, user.Key), a.History,
		user.Options{
			DefaultAdminPassword: cfg.Auth.DefaultAdminPassword,
			BcryptCost:           cfg.Auth.BcryptCost,
		}, logger)
	a.Reports = report.NewExporter(cfg.Reports.Dir, o.reportOpts...)

	return a, nil
}

// Load reads every collection. All collections are attempted; the errors of
// those that failed are joined.
func (a *App) Load(ctx context.Context) error {
	if err := a.History.Load(ctx); err != nil {
		return err
	}

	var errs []error
	for _, l := range []struct {
		name string
		load func(context.Context) error
	}{
		{repository.DocumentUsers, a.Users.Load},
		{repository.DocumentCrops, a.Crops.Load},
		{repository.DocumentAnimals, a.Animals.Load},
		{repository.DocumentActivities, a.Activities.Load},
	} {
		if err := l.load(ctx); err != nil {
			a.logger.Error("failed to load collection", "collection", l.name, "error", err)
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	a.logger.Debug("collections loaded", "driver", a.cfg.Data.Driver,
		"crops", a.Crops.Count(), "animals", a.Animals.Count(), "activities", a.Activities.Count())
	return nil
}

// Close releases the database when the sqlite driver is in use.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Config returns the configuration the App was built with.
func (a *App) Config() config.Config { return a.cfg }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Login checks credentials through the user gate.
func (a *App) Login(ctx context.Context, username, password string) (*user.User, error) {
	u, err := a.Users.Authenticate(ctx, username, password)
	if err != nil {
		a.logger.Warn("login failed", "username", username)
		return nil, err
	}
	a.logger.Debug("login succeeded", "username", u.Username, "type", u.Type)
	return u, nil
}

// LastSaved returns when each collection document was last written, keyed by
// document name. Documents never written are left out.
func (a *App) LastSaved(ctx context.Context) map[string]time.Time {
	out := map[string]time.Time{}
	clock, ok := a.store.(repository.DocumentClock)
	if !ok {
		return out
	}
	for _, name := range []string{
		repository.DocumentCrops,
		repository.DocumentAnimals,
		repository.DocumentActivities,
		repository.DocumentUsers,
	} {
		at, err := clock.UpdatedAt(ctx, name)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			a.logger.Warn("failed to read document time", "document", name, "error", err)
			continue
		}
		out[name] = at
	}
	return out
}

// Stats counts the records of each collection.
type Stats struct {
	Crops      int `json:"crops"`
	Animals    int `json:"animals"`
	Activities int `json:"activities"`
	Users      int `json:"users"`
}

// Stats returns the current record counts.
func (a *App) Stats() Stats {
	return Stats{
		Crops:      a.Crops.Count(),
		Animals:    a.Animals.Count(),
		Activities: a.Activities.Count(),
		Users:      a.Users.Count(),
	}
}

// ExportReport renders the kind collection to a spreadsheet on behalf of
// actor, who must be an admin.
func (a *App) ExportReport(ctx context.Context, actor user.User, kind report.Kind, filename string) (string, error) {
	if !user.CanExport(actor) {
		return "", fmt.Errorf("%w: only admins can export reports", ErrForbidden)
	}

	var rows []report.Row
	switch kind {
	case report.KindCrops:
		rows = report.Rows(a.Crops.List(ctx))
	case report.KindAnimals:
		rows = report.Rows(a.Animals.List(ctx))
	case report.KindActivities:
		rows = report.Rows(a.Activities.List(ctx))
	default:
		return "", fmt.Errorf("%w: %q", report.ErrUnknownKind, kind)
	}

	path, err := a.Reports.Export(ctx, kind, rows, filename)
	if err != nil {
		return "", err
	}
	a.logger.Info("report exported", "kind", kind, "rows", len(rows), "path", path)

	err = a.History.Log(ctx, &history.Entry{
		Collection: string(kind),
		Action:     history.ActionExported,
		Actor:      actor.Username,
		Summary:    fmt.Sprintf("exported %d %s to %s", len(rows), kind, filepath.Base(path)),
	})
	if err != nil {
		a.logger.Warn("failed to record history", "collection", kind, "error", err)
	}
	return path, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
