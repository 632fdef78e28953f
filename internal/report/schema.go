package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a report kind with no column schema.
var ErrUnknownKind = errors.New("unknown report kind")

// Kind names a report and the collection it is rendered from.
type Kind string

const (
	KindCrops      Kind = "crops"
	KindAnimals    Kind = "animals"
	KindActivities Kind = "activities"
)

// Column maps one record field to a spreadsheet column.
type Column struct {
	Field  string
	Header string
	Width  float64
}

// Schema is the fixed layout of one report kind.
type Schema struct {
	Kind    Kind
	Title   string
	Columns []Column
}

var schemas = map[Kind]Schema{
	KindCrops: {
		Kind:  KindCrops,
		Title: "BÁO CÁO CÂY TRỒNG",
		Columns: []Column{
			{Field: "id", Header: "ID", Width: 8},
			{Field: "name", Header: "Tên Cây", Width: 25},
			{Field: "type", Header: "Loại Cây", Width: 20},
			{Field: "planting_date", Header: "Ngày Trồng", Width: 15},
			{Field: "area", Header: "Diện Tích (ha)", Width: 15},
			{Field: "status", Header: "Trạng Thái", Width: 15},
			{Field: "notes", Header: "Ghi Chú", Width: 40},
		},
	},
	KindAnimals: {
		Kind:  KindAnimals,
		Title: "BÁO CÁO VẬT NUÔI",
		Columns: []Column{
			{Field: "id", Header: "ID", Width: 8},
			{Field: "name", Header: "Tên Vật Nuôi", Width: 25},
			{Field: "type", Header: "Loại", Width: 20},
			{Field: "entry_date", Header: "Ngày Nhập", Width: 15},
			{Field: "quantity", Header: "Số Lượng", Width: 15},
			{Field: "status", Header: "Trạng Thái", Width: 15},
			{Field: "notes", Header: "Ghi Chú", Width: 40},
		},
	},
	KindActivities: {
		Kind:  KindActivities,
		Title: "BÁO CÁO HOẠT ĐỘNG",
		Columns: []Column{
			{Field: "id", Header: "ID", Width: 8},
			{Field: "name", Header: "Tên Hoạt Động", Width: 25},
			{Field: "type", Header: "Loại", Width: 20},
			{Field: "date", Header: "Ngày", Width: 15},
			{Field: "responsible", Header: "Người Phụ Trách", Width: 20},
			{Field: "status", Header: "Trạng Thái", Width: 15},
			{Field: "description", Header: "Mô Tả", Width: 40},
		},
	},
}

// Kinds lists the report kinds in display order.
func Kinds() []Kind {
	return []Kind{KindCrops, KindAnimals, KindActivities}
}

// ParseKind converts a kind name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schemas[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// SchemaFor returns the column layout of kind.
func SchemaFor(kind Kind) (Schema, error) {
	s, ok := schemas[kind]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	s.Columns = append([]Column(nil), s.Columns...)
	return s, nil
}

// Headers returns the header labels in column order.
func (s Schema) Headers() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Header
	}
	return out
}

// Row is a record the exporter can read fields from.
type Row interface {
	// Field returns the value stored under a JSON field name, or nil.
	Field(name string) any
}

// Rows adapts a typed record slice.
func Rows[T Row](items []T) []Row {
	out := make([]Row, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
