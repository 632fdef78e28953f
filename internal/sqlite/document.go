package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/farmrec/internal/repository"
)

// DocumentRepository implements repository.DocumentStore for SQLite
type DocumentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// ReadDocument returns the body stored under name
func (r *DocumentRepository) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", name, err)
	}
	return []byte(body), nil
}

// WriteDocument inserts or replaces the body stored under name
func (r *DocumentRepository) WriteDocument(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("%w: empty document name", repository.ErrInvalidInput)
	}

	query := `
		INSERT INTO documents (name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, name, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write document %s: %w", name, err)
	}
	return nil
}

// UpdatedAt returns when a document was last written
func (r *DocumentRepository) UpdatedAt(ctx context.Context, name string) (time.Time, error) {
	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, `SELECT updated_at FROM documents WHERE name = ?`, name).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, repository.ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read document timestamp %s: %w", name, err)
	}
	return updatedAt, nil
}
