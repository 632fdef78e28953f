package activity

// Activity is a piece of farm work: spraying, feeding, harvesting and so on
type Activity struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Responsible string `json:"responsible"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Key returns the activity ID.
func Key(a Activity) int { return a.ID }

// Field returns the value stored under a JSON field name, or nil.
func (a Activity) Field(name string) any {
	switch name {
	case "id":
		return a.ID
	case "name":
		return a.Name
	case "type":
		return a.Type
	case "date":
		return a.Date
	case "responsible":
		return a.Responsible
	case "status":
		return a.Status
	case "description":
		return a.Description
	default:
		return nil
	}
}
