package animal

// Animal is a group of livestock of one kind
type Animal struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	EntryDate string `json:"entry_date"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// Key returns the animal ID.
func Key(a Animal) int { return a.ID }

// Field returns the value stored under a JSON field name, or nil.
func (a Animal) Field(name string) any {
	switch name {
	case "id":
		return a.ID
	case "name":
		return a.Name
	case "type":
		return a.Type
	case "entry_date":
		return a.EntryDate
	case "quantity":
		return a.Quantity
	case "status":
		return a.Status
	case "notes":
		return a.Notes
	default:
		return nil
	}
}
