package mcp

import (
	"github.com/rpggio/farmrec/internal/domain/activity"
	"github.com/rpggio/farmrec/internal/domain/animal"
	"github.com/rpggio/farmrec/internal/domain/crop"
)

type ListParams struct {
	Search string `json:"search,omitempty" jsonschema:"keyword matched against name, type and status, ignoring case and Vietnamese accents"`
}

type IDParams struct {
	ID int `json:"id" jsonschema:"record id"`
}

type UpdateParams[F any] struct {
	ID      int `json:"id" jsonschema:"record id"`
	Changes F   `json:"changes" jsonschema:"fields to change; omitted fields keep their value"`
}

type CropFields struct {
	Name         *string `json:"name,omitempty" jsonschema:"crop name, required when adding"`
	Type         *string `json:"type,omitempty" jsonschema:"crop type, required when adding"`
	PlantingDate *string `json:"planting_date,omitempty" jsonschema:"planting date, e.g. 2024-01-31"`
	Area         *string `json:"area,omitempty" jsonschema:"area in hectares"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type AnimalFields struct {
	Name      *string `json:"name,omitempty" jsonschema:"animal name, required when adding"`
	Type      *string `json:"type,omitempty" jsonschema:"animal type, required when adding"`
	EntryDate *string `json:"entry_date,omitempty" jsonschema:"date the animals arrived"`
	Quantity  *int    `json:"quantity,omitempty" jsonschema:"head count, not negative"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

type ActivityFields struct {
	Name        *string `json:"name,omitempty" jsonschema:"activity name, required when adding"`
	Type        *string `json:"type,omitempty" jsonschema:"activity type, required when adding"`
	Date        *string `json:"date,omitempty"`
	Responsible *string `json:"responsible,omitempty" jsonschema:"person in charge"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ListResult[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

type RecordResult[T any] struct {
	Record T `json:"record"`
}

type DeleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

type HistoryParams struct {
	Collection string `json:"collection,omitempty" jsonschema:"only entries for this collection: crops, animals, activities or users"`
	Actor      string `json:"actor,omitempty" jsonschema:"only entries by this username"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum entries, default 20"`
}

type HistoryEntry struct {
	ID         string `json:"id"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	RecordID   string `json:"record_id,omitempty"`
	Actor      string `json:"actor"`
	Summary    string `json:"summary"`
	At         string `json:"at"`
}

type HistoryResult struct {
	Entries []HistoryEntry `json:"entries"`
}

type ExportReportParams struct {
	Kind     string `json:"kind" jsonschema:"crops, animals or activities"`
	Filename string `json:"filename,omitempty" jsonschema:"file name inside the reports directory; default report_<kind>_<timestamp>.xlsx"`
}

type ExportReportResult struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func (f CropFields) apply(in crop.Input) crop.Input {
	set(&in.Name, f.Name)
	set(&in.Type, f.Type)
	set(&in.PlantingDate, f.PlantingDate)
	set(&in.Area, f.Area)
	set(&in.Status, f.Status)
	set(&in.Notes, f.Notes)
	return in
}

func (f AnimalFields) apply(in animal.Input) animal.Input {
	set(&in.Name, f.Name)
	set(&in.Type, f.Type)
	set(&in.EntryDate, f.EntryDate)
	set(&in.Quantity, f.Quantity)
	set(&in.Status, f.Status)
	set(&in.Notes, f.Notes)
	return in
}

func (f ActivityFields) apply(in activity.Input) activity.Input {
	set(&in.Name, f.Name)
	set(&in.Type, f.Type)
	set(&in.Date, f.Date)
	set(&in.Responsible, f.Responsible)
	set(&in.Status, f.Status)
	set(&in.Description, f.Description)
	return in
}

func cropInput(c crop.Crop) crop.Input {
	return crop.Input{Name: c.Name, Type: c.Type, PlantingDate: c.PlantingDate, Area: c.Area, Status: c.Status, Notes: c.Notes}
}

func animalInput(a animal.Animal) animal.Input {
	return animal.Input{Name: a.Name, Type: a.Type, EntryDate: a.EntryDate, Quantity: a.Quantity, Status: a.Status, Notes: a.Notes}
}

func activityInput(a activity.Activity) activity.Input {
	return activity.Input{Name: a.Name, Type: a.Type, Date: a.Date, Responsible: a.Responsible, Status: a.Status, Description: a.Description}
}
