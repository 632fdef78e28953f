package activity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rpggio/farmrec/internal/collection"
	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/rpggio/farmrec/internal/textmatch"
)

// CollectionName is the history and report name of this collection.
const CollectionName = "activities"

// Service handles farm activity records. Every mutation is saved immediately.
type Service struct {
	repo    Repository
	history HistoryLogger
	logger  *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, historyLog HistoryLogger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, history: historyLog, logger: logger}
}

// Input holds the user-editable activity fields.
type Input struct {
	Name        string
	Type        string
	Date        string
	Responsible string
	Status      string
	Description string
}

func (in Input) toActivity(id int) Activity {
	return Activity{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Type:        strings.TrimSpace(in.Type),
		Date:        in.Date,
		Responsible: in.Responsible,
		Status:      in.Status,
		Description: strings.TrimSpace(in.Description),
	}
}

// Load reads the activity collection.
func (s *Service) Load(ctx context.Context) error {
	return s.repo.Load(ctx)
}

// Create validates, assigns the next ID, appends and saves an activity.
func (s *Service) Create(ctx context.Context, actor string, in Input) (*Activity, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	before := s.repo.All()
	a := in.toActivity(collection.NextID(before, Key))
	s.repo.Add(a)
	if err := s.save(ctx, before); err != nil {
		return nil, err
	}

	s.record(ctx, actor, history.ActionCreated, a, "created activity %q", a.Name)
	return &a, nil
}

// Update replaces the activity with the given ID.
func (s *Service) Update(ctx context.Context, actor string, id int, in Input) (*Activity, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	before := s.repo.All()
	a := in.toActivity(id)
	if !s.repo.Update(id, a) {
		return nil, ErrActivityNotFound
	}
	if err := s.save(ctx, before); err != nil {
		return nil, err
	}

	s.record(ctx, actor, history.ActionUpdated, a, "updated activity %q", a.Name)
	return &a, nil
}

// Delete removes the activity with the given ID.
func (s *Service) Delete(ctx context.Context, actor string, id int) error {
	existing, ok := s.repo.Get(id)
	if !ok {
		return ErrActivityNotFound
	}
	before := s.repo.All()
	s.repo.Delete(id)
	if err := s.save(ctx, before); err != nil {
		return err
	}

	s.record(ctx, actor, history.ActionDeleted, existing, "deleted activity %q", existing.Name)
	return nil
}

// Get returns an activity by ID.
func (s *Service) Get(_ context.Context, id int) (*Activity, error) {
	a, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrActivityNotFound
	}
	return &a, nil
}

// List returns every activity in insertion order.
func (s *Service) List(_ context.Context) []Activity {
	return s.repo.All()
}

// Search returns activities whose name, type, responsible person or status
// contains keyword.
func (s *Service) Search(_ context.Context, keyword string) []Activity {
	return s.repo.Find(func(a Activity) bool {
		return textmatch.Contains(keyword, a.Name, a.Type, a.Responsible, a.Status)
	})
}

// Count returns the number of activities.
func (s *Service) Count() int {
	return s.repo.Len()
}

// save persists the collection. On failure the in-memory sequence is put
// back to before so the failed change never reaches a later save.
func (s *Service) save(ctx context.Context, before []Activity) error {
	if err := s.repo.Save(ctx); err != nil {
		s.repo.Replace(before)
		return fmt.Errorf("saving activities: %w", err)
	}
	return nil
}

func (s *Service) record(ctx context.Context, actor string, action history.Action, a Activity, format string, args ...any) {
	if s.history == nil {
		return
	}
	err := s.history.Log(ctx, &history.Entry{
		Collection: CollectionName,
		Action:     action,
		RecordID:   strconv.Itoa(a.ID),
		Actor:      actor,
		Summary:    fmt.Sprintf(format, args...),
	})
	if err != nil {
		s.logger.Warn("failed to record history", "collection", CollectionName, "id", a.ID, "error", err)
	}
}
