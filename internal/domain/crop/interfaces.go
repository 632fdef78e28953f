package crop

import (
	"context"

	"github.com/rpggio/farmrec/internal/domain/history"
)

// Repository provides the crop collection.
type Repository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Add(c Crop)
	Update(id int, c Crop) bool
	Delete(id int) int
	Get(id int) (Crop, bool)
	All() []Crop
	Find(pred func(Crop) bool) []Crop
	Replace(items []Crop)
	Len() int
}

// HistoryLogger records crop changes.
type HistoryLogger interface {
	Log(ctx context.Context, entry *history.Entry) error
}
