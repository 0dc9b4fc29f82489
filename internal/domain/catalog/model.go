package catalog

// Reference is the common shape of the simple lookup tables (roles,
// categories, statuses, ...). Heavier catalog entities (objects,
// laboratories, schedules) have their own structs below.
type Reference struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Role struct {
	ID   uint   `gorm:"primaryKey;column:role_id" json:"id"`
	Name string `gorm:"size:80;not null;column:name" json:"name"`
}

func (Role) TableName() string { return "roles" }

type IdentificationType struct {
	ID   uint   `gorm:"primaryKey;column:identification_type_id" json:"id"`
	Name string `gorm:"size:80;not null;column:name" json:"name"`
}

func (IdentificationType) TableName() string { return "identification_types" }

type RequesterType struct {
	ID   uint   `gorm:"primaryKey;column:requester_type_id" json:"id"`
	Name string `gorm:"size:80;not null;column:name" json:"name"`
}

func (RequesterType) TableName() string { return "requester_types" }

type Faculty struct {
	ID   uint   `gorm:"primaryKey;column:faculty_id" json:"id"`
	Name string `gorm:"size:80;not null;column:name" json:"name"`
}

func (Faculty) TableName() string { return "faculties" }

type Category struct {
	ID   uint   `gorm:"primaryKey;column:category_id" json:"id"`
	Name string `gorm:"size:250;not null;column:name" json:"name"`
}

func (Category) TableName() string { return "categories" }

type ServiceType struct {
	ID   uint   `gorm:"primaryKey;column:service_type_id" json:"id"`
	Name string `gorm:"size:80;not null;column:name" json:"name"`
}

func (ServiceType) TableName() string { return "service_types" }

type ServiceFrequency struct {
	ID   uint   `gorm:"primaryKey;column:service_frequency_id" json:"id"`
	Name string `gorm:"size:80;not null;column:name" json:"name"`
}

func (ServiceFrequency) TableName() string { return "service_frequencies" }

type Status struct {
	ID   uint   `gorm:"primaryKey;column:status_id" json:"id"`
	Name string `gorm:"size:50;not null;column:name" json:"name"`
}

func (Status) TableName() string { return "statuses" }

type Program struct {
	ID        uint   `gorm:"primaryKey;column:program_id" json:"id"`
	Name      string `gorm:"size:80;not null;column:name" json:"name"`
	FacultyID uint   `gorm:"not null;column:faculty_id" json:"faculty_id"`

	Faculty *Faculty `gorm:"foreignKey:FacultyID;constraint:OnDelete:RESTRICT" json:"faculty,omitempty"`
}

func (Program) TableName() string { return "programs" }

type Laboratory struct {
	ID       uint   `gorm:"primaryKey;column:laboratory_id" json:"id"`
	Name     string `gorm:"size:100;not null;column:name" json:"name"`
	Capacity int    `gorm:"not null;column:capacity" json:"capacity"`
	Location string `gorm:"size:250;column:location" json:"location"`
}

func (Laboratory) TableName() string { return "laboratories" }

// Schedule is a weekly slot offered by a laboratory. Times of day are
// zero-padded "HH:MM" strings so lexicographic comparison matches
// chronological comparison, both in Go and in SQL.
type Schedule struct {
	ID           uint   `gorm:"primaryKey;column:schedule_id" json:"id"`
	LaboratoryID uint   `gorm:"not null;column:laboratory_id" json:"laboratory_id"`
	DayOfWeek    string `gorm:"size:20;not null;column:day_of_week" json:"day_of_week"`
	StartTime    string `gorm:"type:varchar(5);not null;column:start_time" json:"start_time"`
	EndTime      string `gorm:"type:varchar(5);not null;column:end_time" json:"end_time"`

	Laboratory *Laboratory `gorm:"foreignKey:LaboratoryID;constraint:OnDelete:RESTRICT" json:"laboratory,omitempty"`
}

func (Schedule) TableName() string { return "laboratory_schedules" }

type Object struct {
	ID          uint   `gorm:"primaryKey;column:object_id" json:"id"`
	Name        string `gorm:"size:80;not null;column:name" json:"name"`
	CategoryID  uint   `gorm:"not null;column:category_id" json:"category_id"`
	Description string `gorm:"size:250;column:description" json:"description"`
	Stock       int    `gorm:"not null;default:0;column:stock" json:"stock"`
	Active      bool   `gorm:"not null;default:true;column:active" json:"active"`
	ImageURL    string `gorm:"size:500;column:image_url" json:"image_url"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
}

func (Object) TableName() string { return "objects" }

// Available reports whether the object can currently be borrowed.
func (o Object) Available() bool { return o.Stock > 0 && o.Active }

type Delivery struct {
	ID                 uint   `gorm:"primaryKey;column:delivery_id" json:"id"`
	Date               string `gorm:"type:date;not null;column:delivery_date" json:"date"`
	Time               string `gorm:"type:varchar(5);not null;column:delivery_time" json:"time"`
	Notes              string `gorm:"size:600;column:notes" json:"notes"`
	ServiceFrequencyID uint   `gorm:"not null;column:service_frequency_id" json:"service_frequency_id"`

	ServiceFrequency *ServiceFrequency `gorm:"foreignKey:ServiceFrequencyID;constraint:OnDelete:RESTRICT" json:"service_frequency,omitempty"`
}

func (Delivery) TableName() string { return "deliveries" }

type Return struct {
	ID    uint   `gorm:"primaryKey;column:return_id" json:"id"`
	Date  string `gorm:"type:date;not null;column:return_date" json:"date"`
	Time  string `gorm:"type:varchar(5);not null;column:return_time" json:"time"`
	Notes string `gorm:"size:600;column:notes" json:"notes"`
}

func (Return) TableName() string { return "returns" }
