package activity

import (
	"context"

	"github.com/rpggio/farmrec/internal/domain/history"
)

// Repository provides the farm activity collection.
type Repository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Add(a Activity)
	Update(id int, a Activity) bool
	Delete(id int) int
	Get(id int) (Activity, bool)
	All() []Activity
	Find(pred func(Activity) bool) []Activity
	Replace(items []Activity)
	Len() int
}

// HistoryLogger records activity changes.
type HistoryLogger interface {
	Log(ctx context.Context, entry *history.Entry) error
}
