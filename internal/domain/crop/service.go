package crop

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
const CollectionName = "crops"

// Service handles crop records. Every mutation is saved immediately.
type Service struct {
	repo    Repository
	history HistoryLogger
	logger  *slog.Logger
}

// NewService creates a new crop service.
func NewService(repo Repository, historyLog HistoryLogger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, history: historyLog, logger: logger}
}

// Input holds the user-editable crop fields.
type Input struct {
	Name         string
	Type         string
	PlantingDate string
	Area         string
	Status       string
	Notes        string
}

func (in Input) toCrop(id int) Crop {
	return Crop{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		Type:         strings.TrimSpace(in.Type),
		PlantingDate: in.PlantingDate,
		Area:         in.Area,
		Status:       in.Status,
		Notes:        strings.TrimSpace(in.Notes),
	}
}

// Load reads the crop collection.
func (s *Service) Load(ctx context.Context) error {
	return s.repo.Load(ctx)
}

// Create validates, assigns the next ID, appends and saves a crop.
func (s *Service) Create(ctx context.Context, actor string, in Input) (*Crop, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	before := s.repo.All()
	c := in.toCrop(collection.NextID(before, Key))
	s.repo.Add(c)
	if err := s.save(ctx, before); err != nil {
		return nil, err
	}

	s.record(ctx, actor, history.ActionCreated, c, "created crop %q", c.Name)
	return &c, nil
}

// Update replaces the crop with the given ID.
func (s *Service) Update(ctx context.Context, actor string, id int, in Input) (*Crop, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	before := s.repo.All()
	c := in.toCrop(id)
	if !s.repo.Update(id, c) {
		return nil, ErrCropNotFound
	}
	if err := s.save(ctx, before); err != nil {
		return nil, err
	}

	s.record(ctx, actor, history.ActionUpdated, c, "updated crop %q", c.Name)
	return &c, nil
}

// Delete removes the crop with the given ID.
func (s *Service) Delete(ctx context.Context, actor string, id int) error {
	existing, ok := s.repo.Get(id)
	if !ok {
		return ErrCropNotFound
	}
	before := s.repo.All()
	s.repo.Delete(id)
	if err := s.save(ctx, before); err != nil {
		return err
	}

	s.record(ctx, actor, history.ActionDeleted, existing, "deleted crop %q", existing.Name)
	return nil
}

// Get returns a crop by ID.
func (s *Service) Get(_ context.Context, id int) (*Crop, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrCropNotFound
	}
	return &c, nil
}

// List returns every crop in insertion order.
func (s *Service) List(_ context.Context) []Crop {
	return s.repo.All()
}

// Search returns crops whose name, type or status contains keyword.
func (s *Service) Search(_ context.Context, keyword string) []Crop {
	return s.repo.Find(func(c Crop) bool {
		return textmatch.Contains(keyword, c.Name, c.Type, c.Status)
	})
}

// Count returns the number of crops.
func (s *Service) Count() int {
	return s.repo.Len()
}

// save persists the collection. On failure the in-memory sequence is put
// back to before so the failed change never reaches a later save.
func (s *Service) save(ctx context.Context, before []Crop) error {
	if err := s.repo.Save(ctx); err != nil {
		s.repo.Replace(before)
		return fmt.Errorf("saving crops: %w", err)
	}
	return nil
}

func (s *Service) record(ctx context.Context, actor string, action history.Action, c Crop, format string, args ...any) {
	if s.history == nil {
		return
	}
	err := s.history.Log(ctx, &history.Entry{
		Collection: CollectionName,
		Action:     action,
		RecordID:   strconv.Itoa(c.ID),
		Actor:      actor,
		Summary:    fmt.Sprintf(format, args...),
	})
	if err != nil {
		s.logger.Warn("failed to record history", "collection", CollectionName, "id", c.ID, "error", err)
	}
}
