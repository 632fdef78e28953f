package crop

// Crop is one planted crop on the farm
type Crop struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	PlantingDate string `json:"planting_date"`
	Area         string `json:"area"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

// Key returns the crop ID.
func Key(c Crop) int { return c.ID }

// Field returns the value stored under a JSON field name, or nil.
func (c Crop) Field(name string) any {
	switch name {
	case "id":
		return c.ID
	case "name":
		return c.Name
	case "type":
		return c.Type
	case "planting_date":
		return c.PlantingDate
	case "area":
		return c.Area
	case "status":
		return c.Status
	case "notes":
		return c.Notes
	default:
		return nil
	}
}
