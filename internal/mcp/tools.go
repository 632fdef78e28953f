package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/rpggio/farmrec/internal/app"
	"github.com/rpggio/farmrec/internal/domain/activity"
	"github.com/rpggio/farmrec/internal/domain/animal"
	"github.com/rpggio/farmrec/internal/domain/crop"
	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/rpggio/farmrec/internal/report"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultHistoryLimit = 20

// recordService is the part of a crop, animal or activity service exposed
// as tools.
type recordService[T any, In any] interface {
	Create(ctx context.Context, actor string, in In) (*T, error)
	Update(ctx context.Context, actor string, id int, in In) (*T, error)
	Delete(ctx context.Context, actor string, id int) error
	Get(ctx context.Context, id int) (*T, error)
	Search(ctx context.Context, keyword string) []T
}

type recordTools[T any, In any, F any] struct {
	singular string
	plural   string
	svc      recordService[T, In]
	toInput  func(T) In
	apply    func(F, In) In
}

func registerTools(server *sdkmcp.Server, a *app.App) {
	registerRecordTools(server, recordTools[crop.Crop, crop.Input, CropFields]{
		singular: "crop",
		plural:   "crops",
		svc:      a.Crops,
		toInput:  cropInput,
		apply:    CropFields.apply,
	})
	registerRecordTools(server, recordTools[animal.Animal, animal.Input, AnimalFields]{
		singular: "animal",
		plural:   "animals",
		svc:      a.Animals,
		toInput:  animalInput,
		apply:    AnimalFields.apply,
	})
	registerRecordTools(server, recordTools[activity.Activity, activity.Input, ActivityFields]{
		singular: "activity",
		plural:   "activities",
		svc:      a.Activities,
		toInput:  activityInput,
		apply:    ActivityFields.apply,
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "farm_stats",
		Description: "Count the records of every collection",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, app.Stats, error) {
		return nil, a.Stats(), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_history",
		Description: "List recent changes, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p HistoryParams) (*sdkmcp.CallToolResult, HistoryResult, error) {
		limit := p.Limit
		if limit <= 0 {
			limit = defaultHistoryLimit
		}
		entries := a.History.Recent(ctx, history.ListOptions{
			Collection: p.Collection,
			Actor:      p.Actor,
			Limit:      limit,
		})
		out := HistoryResult{Entries: make([]HistoryEntry, 0, len(entries))}
		for _, e := range entries {
			out.Entries = append(out.Entries, HistoryEntry{
				ID:         e.ID,
				Collection: e.Collection,
				Action:     string(e.Action),
				RecordID:   e.RecordID,
				Actor:      e.Actor,
				Summary:    e.Summary,
				At:         e.At.Format(time.RFC3339),
			})
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_report",
		Description: "Export a collection as an xlsx report; admin accounts only",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p ExportReportParams) (*sdkmcp.CallToolResult, ExportReportResult, error) {
		kind, err := report.ParseKind(p.Kind)
		if err != nil {
			return nil, ExportReportResult{}, toolError(err)
		}
		path, err := a.ExportReport(ctx, getActor(ctx), kind, p.Filename)
		if err != nil {
			return nil, ExportReportResult{}, toolError(err)
		}
		return nil, ExportReportResult{Path: path, Rows: countRows(a, kind)}, nil
	})
}

func registerRecordTools[T any, In any, F any](server *sdkmcp.Server, rt recordTools[T, In, F]) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_" + rt.plural,
		Description: fmt.Sprintf("List %s, optionally filtered by a keyword", rt.plural),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p ListParams) (*sdkmcp.CallToolResult, ListResult[T], error) {
		items := rt.svc.Search(ctx, p.Search)
		return nil, ListResult[T]{Items: items, Count: len(items)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_" + rt.singular,
		Description: fmt.Sprintf("Get one %s by id", rt.singular),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p IDParams) (*sdkmcp.CallToolResult, RecordResult[T], error) {
		item, err := rt.svc.Get(ctx, p.ID)
		if err != nil {
			return nil, RecordResult[T]{}, toolError(err)
		}
		return nil, RecordResult[T]{Record: *item}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_" + rt.singular,
		Description: fmt.Sprintf("Add a %s; name and type are required", rt.singular),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, f F) (*sdkmcp.CallToolResult, RecordResult[T], error) {
		var in In
		item, err := rt.svc.Create(ctx, getActor(ctx).Username, rt.apply(f, in))
		if err != nil {
			return nil, RecordResult[T]{}, toolError(err)
		}
		return nil, RecordResult[T]{Record: *item}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_" + rt.singular,
		Description: fmt.Sprintf("Change fields of a %s; fields not given keep their value", rt.singular),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p UpdateParams[F]) (*sdkmcp.CallToolResult, RecordResult[T], error) {
		existing, err := rt.svc.Get(ctx, p.ID)
		if err != nil {
			return nil, RecordResult[T]{}, toolError(err)
		}
		item, err := rt.svc.Update(ctx, getActor(ctx).Username, p.ID, rt.apply(p.Changes, rt.toInput(*existing)))
		if err != nil {
			return nil, RecordResult[T]{}, toolError(err)
		}
		return nil, RecordResult[T]{Record: *item}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_" + rt.singular,
		Description: fmt.Sprintf("Delete a %s by id", rt.singular),
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p IDParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		if err := rt.svc.Delete(ctx, getActor(ctx).Username, p.ID); err != nil {
			return nil, DeleteResult{}, toolError(err)
		}
		return nil, DeleteResult{ID: p.ID, Deleted: true}, nil
	})
}

func countRows(a *app.App, kind report.Kind) int {
	switch kind {
	case report.KindCrops:
		return a.Crops.Count()
	case report.KindAnimals:
		return a.Animals.Count()
	case report.KindActivities:
		return a.Activities.Count()
	default:
		return 0
	}
}
