package history

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxEntries bounds the journal; older entries are dropped on write.
const DefaultMaxEntries = 500

// Service handles the change journal.
type Service struct {
	repo       Repository
	maxEntries int
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new history service.
func NewService(repo Repository, maxEntries int, logger *slog.Logger) *Service {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, maxEntries: maxEntries, logger: logger, now: time.Now}
}

// Load reads the journal. A malformed journal is logged and replaced by an
// empty one; it never blocks the farm records from loading.
func (s *Service) Load(ctx context.Context) error {
	if err := s.repo.Load(ctx); err != nil {
		s.logger.Warn("history unreadable, starting empty", "error", err)
	}
	return nil
}

// Log appends an entry, assigning its ID and timestamp, and persists the journal.
func (s *Service) Log(ctx context.Context, entry *Entry) error {
	if entry == nil || entry.Collection == "" || entry.Action == "" {
		return ErrInvalidInput
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.At.IsZero() {
		entry.At = s.now().UTC()
	}

	before := s.repo.All()
	s.repo.Add(*entry)
	s.repo.KeepLast(s.maxEntries)
	if err := s.repo.Save(ctx); err != nil {
		s.repo.Replace(before)
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// ListOptions filters Recent.
type ListOptions struct {
	Collection string
	Actor      string
	Limit      int
}

// Recent returns entries newest first.
func (s *Service) Recent(_ context.Context, opts ListOptions) []Entry {
	all := s.repo.All()
	slices.Reverse(all)

	out := make([]Entry, 0, len(all))
	for _, e := range all {
		if opts.Collection != "" && e.Collection != opts.Collection {
			continue
		}
		if opts.Actor != "" && e.Actor != opts.Actor {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out
}
