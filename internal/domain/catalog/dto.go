package catalog

// EntityRef references a catalog row either by existing id or by name.
// When only a name is given and no row matches, the row is created
// (create-if-missing applies uniformly to catalog-bearing writes).
type EntityRef struct {
	ID   *uint   `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

func (r EntityRef) Empty() bool { return r.ID == nil && (r.Name == nil || *r.Name == "") }

type ReferenceInput struct {
	Name string `json:"name" binding:"required"`
}

type ProgramInput struct {
	Name    string    `json:"name" binding:"required"`
	Faculty EntityRef `json:"faculty" binding:"required"`
}

type LaboratoryInput struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Location string `json:"location"`
}

type ScheduleInput struct {
	Laboratory EntityRef `json:"laboratory" binding:"required"`
	DayOfWeek  string    `json:"day_of_week" binding:"required"`
	StartTime  string    `json:"start_time" binding:"required"`
	EndTime    string    `json:"end_time" binding:"required"`
}

type ObjectInput struct {
	Name        string    `json:"name" binding:"required"`
	Category    EntityRef `json:"category" binding:"required"`
	Description string    `json:"description"`
	Stock       int       `json:"stock" binding:"gte=0"`
	Active      *bool     `json:"active"`
	ImageURL    string    `json:"image_url"`
}

type ObjectUpdateInput struct {
	Name        *string    `json:"name"`
	Category    *EntityRef `json:"category"`
	Description *string    `json:"description"`
	Stock       *int       `json:"stock"`
	Active      *bool      `json:"active"`
	ImageURL    *string    `json:"image_url"`
}

type DeliveryInput struct {
	Date             string    `json:"date" binding:"required"`
	Time             string    `json:"time" binding:"required"`
	Notes            string    `json:"notes"`
	ServiceFrequency EntityRef `json:"service_frequency" binding:"required"`
}

type ReturnInput struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}
