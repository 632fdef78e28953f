package animal

import (
	"context"

	"github.com/rpggio/farmrec/internal/domain/history"
)

// Repository provides the animal collection.
type Repository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Add(a Animal)
	Update(id int, a Animal) bool
	Delete(id int) int
	Get(id int) (Animal, bool)
	All() []Animal
	Find(pred func(Animal) bool) []Animal
	Replace(items []Animal)
	Len() int
}

// HistoryLogger records animal changes.
type HistoryLogger interface {
	Log(ctx context.Context, entry *history.Entry) error
}
