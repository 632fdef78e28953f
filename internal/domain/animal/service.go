package animal

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
const CollectionName = "animals"

// Service handles animal records. Every mutation is saved immediately.
type Service struct {
	repo    Repository
	history HistoryLogger
	logger  *slog.Logger
}

// NewService creates a new animal service.
func NewService(repo Repository, historyLog HistoryLogger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, history: historyLog, logger: logger}
}

// Input holds the user-editable animal fields.
type Input struct {
	Name      string
	Type      string
	EntryDate string
	Quantity  int
	Status    string
	Notes     string
}

func (in Input) toAnimal(id int) Animal {
	return Animal{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Type:      strings.TrimSpace(in.Type),
		EntryDate: in.EntryDate,
		Quantity:  in.Quantity,
		Status:    in.Status,
		Notes:     strings.TrimSpace(in.Notes),
	}
}

// Load reads the animal collection.
func (s *Service) Load(ctx context.Context) error {
	return s.repo.Load(ctx)
}

// Create validates, assigns the next ID, appends and saves an animal record.
func (s *Service) Create(ctx context.Context, actor string, in Input) (*Animal, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	before := s.repo.All()
	a := in.toAnimal(collection.NextID(before, Key))
	s.repo.Add(a)
	if err := s.save(ctx, before); err != nil {
		return nil, err
	}

	s.record(ctx, actor, history.ActionCreated, a, "created animal %q", a.Name)
	return &a, nil
}

// Update replaces the animal with the given ID.
func (s *Service) Update(ctx context.Context, actor string, id int, in Input) (*Animal, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	before := s.repo.All()
	a := in.toAnimal(id)
	if !s.repo.Update(id, a) {
		return nil, ErrAnimalNotFound
	}
	if err := s.save(ctx, before); err != nil {
		return nil, err
	}

	s.record(ctx, actor, history.ActionUpdated, a, "updated animal %q", a.Name)
	return &a, nil
}

// Delete removes the animal with the given ID.
func (s *Service) Delete(ctx context.Context, actor string, id int) error {
	existing, ok := s.repo.Get(id)
	if !ok {
		return ErrAnimalNotFound
	}
	before := s.repo.All()
	s.repo.Delete(id)
	if err := s.save(ctx, before); err != nil {
		return err
	}

	s.record(ctx, actor, history.ActionDeleted, existing, "deleted animal %q", existing.Name)
	return nil
}

// Get returns an animal by ID.
func (s *Service) Get(_ context.Context, id int) (*Animal, error) {
	a, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrAnimalNotFound
	}
	return &a, nil
}

// List returns every animal in insertion order.
func (s *Service) List(_ context.Context) []Animal {
	return s.repo.All()
}

// Search returns animals whose name, type or status contains keyword.
func (s *Service) Search(_ context.Context, keyword string) []Animal {
	return s.repo.Find(func(a Animal) bool {
		return textmatch.Contains(keyword, a.Name, a.Type, a.Status)
	})
}

// Count returns the number of animals.
func (s *Service) Count() int {
	return s.repo.Len()
}

// save persists the collection. On failure the in-memory sequence is put
// back to before so the failed change never reaches a later save.
func (s *Service) save(ctx context.Context, before []Animal) error {
	if err := s.repo.Save(ctx); err != nil {
		s.repo.Replace(before)
		return fmt.Errorf("saving animals: %w", err)
	}
	return nil
}

func (s *Service) record(ctx context.Context, actor string, action history.Action, a Animal, format string, args ...any) {
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
