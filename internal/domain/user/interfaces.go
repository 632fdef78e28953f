package user

import (
	"context"

	"github.com/rpggio/farmrec/internal/domain/history"
)

// Repository provides the user collection.
type Repository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Persisted() bool
	Add(u User)
	Update(username string, u User) bool
	Get(username string) (User, bool)
	All() []User
	Replace(items []User)
	Len() int
}

// HistoryLogger records account changes.
type HistoryLogger interface {
	Log(ctx context.Context, entry *history.Entry) error
}
