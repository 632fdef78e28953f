package history

import "context"

// Repository provides persistence for journal entries.
type Repository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Add(entry Entry)
	All() []Entry
	Replace(entries []Entry)
	KeepLast(n int)
}
