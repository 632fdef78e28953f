package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/rpggio/farmrec/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// CollectionName is the history name of this collection.
const CollectionName = "users"

// DefaultAdminPassword is the bootstrap admin password when none is configured.
const DefaultAdminPassword = "admin123"

// Options configures a Service.
type Options struct {
	DefaultAdminPassword string
	BcryptCost           int
}

// Service is the access gate: it owns the user collection and checks
// credentials against it.
type Service struct {
	repo    Repository
	history HistoryLogger
	opts    Options
	logger  *slog.Logger

	dummyOnce sync.Once
	dummy     []byte
}

// NewService creates a new user service.
func NewService(repo Repository, historyLog HistoryLogger, opts Options, logger *slog.Logger) *Service {
	if opts.DefaultAdminPassword == "" {
		opts.DefaultAdminPassword = DefaultAdminPassword
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, history: historyLog, opts: opts, logger: logger}
}

// Load reads the user collection. When no users document exists yet it
// creates the default admin account and saves it right away. A malformed
// document is logged and leaves the gate with no accounts.
func (s *Service) Load(ctx context.Context) error {
	if err := s.repo.Load(ctx); err != nil {
		if errors.Is(err, repository.ErrDataLoad) {
			s.logger.Error("users document unreadable, no accounts loaded", "error", err)
			return nil
		}
		return err
	}
	if s.repo.Persisted() {
		return nil
	}

	hash, err := s.hash(s.opts.DefaultAdminPassword)
	if err != nil {
		return err
	}
	s.repo.Add(User{Username: DefaultAdminUsername, Password: hash, Type: TypeAdmin})
	if err := s.save(ctx, nil); err != nil {
		return err
	}
	s.logger.Info("created default admin account", "username", DefaultAdminUsername)
	return nil
}

// Register adds a new account and saves the collection.
func (s *Service) Register(ctx context.Context, username, password string, t Type) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	t, err := ParseType(string(t))
	if err != nil {
		return nil, err
	}
	if _, exists := s.repo.Get(username); exists {
		return nil, ErrDuplicateUsername
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	before := s.repo.All()
	u := User{Username: username, Password: hash, Type: t}
	s.repo.Add(u)
	if err := s.save(ctx, before); err != nil {
		return nil, err
	}

	s.record(ctx, username, history.ActionRegistered, fmt.Sprintf("registered %s account %q", t, username))
	return &u, nil
}

// Authenticate returns the account matching username and password.
// Unknown users and wrong passwords both yield ErrAuthenticationFailed.
// A legacy plaintext password is re-hashed after a successful match.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if password == "" {
		return nil, ErrAuthenticationFailed
	}
	u, ok := s.repo.Get(username)
	if !ok {
		// same bcrypt work as a wrong password for a known account
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
		return nil, ErrAuthenticationFailed
	}

	match, legacy := checkPassword(u.Password, password)
	if !match {
		return nil, ErrAuthenticationFailed
	}
	if legacy {
		s.upgrade(ctx, u, password)
	}
	return &u, nil
}

// ChangePassword replaces the password of username after re-checking the
// current one.
func (s *Service) ChangePassword(ctx context.Context, username, current, next string) error {
	if next == "" {
		return fmt.Errorf("%w: new password is required", ErrInvalidInput)
	}
	u, ok := s.repo.Get(username)
	if !ok {
		return ErrCurrentPasswordMismatch
	}
	if match, _ := checkPassword(u.Password, current); !match {
		return ErrCurrentPasswordMismatch
	}

	hash, err := s.hash(next)
	if err != nil {
		return err
	}
	before := s.repo.All()
	u.Password = hash
	s.repo.Update(username, u)
	if err := s.save(ctx, before); err != nil {
		return err
	}

	s.record(ctx, username, history.ActionPasswordChanged, fmt.Sprintf("changed password of %q", username))
	return nil
}

// Count returns the number of accounts.
func (s *Service) Count() int {
	return s.repo.Len()
}

func (s *Service) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password longer than 72 bytes", ErrInvalidInput)
	}
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(b), nil
}

// save persists the collection, restoring before when the write fails.
func (s *Service) save(ctx context.Context, before []User) error {
	if err := s.repo.Save(ctx); err != nil {
		s.repo.Replace(before)
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}

// dummyHash is compared against for unknown usernames. It is hashed at the
// configured cost so both failure paths take about as long.
func (s *Service) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("farmrec-unknown-user"), s.opts.BcryptCost)
		if err != nil {
			s.logger.Warn("failed to prepare dummy hash", "error", err)
			return
		}
		s.dummy = h
	})
	return s.dummy
}

func (s *Service) upgrade(ctx context.Context, u User, password string) {
	hash, err := s.hash(password)
	if err != nil {
		s.logger.Warn("failed to hash legacy password", "username", u.Username, "error", err)
		return
	}
	before := s.repo.All()
	u.Password = hash
	s.repo.Update(u.Username, u)
	if err := s.save(ctx, before); err != nil {
		s.logger.Warn("failed to save upgraded password", "username", u.Username, "error", err)
		return
	}
	s.logger.Info("upgraded plaintext password", "username", u.Username)
}

func (s *Service) record(ctx context.Context, actor string, action history.Action, summary string) {
	if s.history == nil {
		return
	}
	err := s.history.Log(ctx, &history.Entry{
		Collection: CollectionName,
		Action:     action,
		RecordID:   actor,
		Actor:      actor,
		Summary:    summary,
	})
	if err != nil {
		s.logger.Warn("failed to record history", "collection", CollectionName, "error", err)
	}
}

// checkPassword compares a stored password with a candidate. legacy is true
// when stored is not a bcrypt hash.
func checkPassword(stored, candidate string) (match, legacy bool) {
	if _, err := bcrypt.Cost([]byte(stored)); err != nil {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1, true
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil, false
}
