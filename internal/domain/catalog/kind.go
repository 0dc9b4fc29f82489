package catalog

// Kind identifies one of the simple {id, name} reference tables so that
// lookups, id allocation and create-if-missing can be written once
// instead of per table.
type Kind struct {
	Name     string
	Table    string
	IDColumn string
}

const (
	KindRole               = "role"
	KindIdentificationType = "identification_type"
	KindRequesterType      = "requester_type"
	KindFaculty            = "faculty"
	KindCategory           = "category"
	KindServiceType        = "service_type"
	KindServiceFrequency   = "service_frequency"
	KindStatus             = "status"
)

// kinds is the closed registry of reference tables. Table and column
// names only ever come from here, never from request input.
var kinds = map[string]Kind{
	KindRole:               {Name: KindRole, Table: "roles", IDColumn: "role_id"},
	KindIdentificationType: {Name: KindIdentificationType, Table: "identification_types", IDColumn: "identification_type_id"},
	KindRequesterType:      {Name: KindRequesterType, Table: "requester_types", IDColumn: "requester_type_id"},
	KindFaculty:            {Name: KindFaculty, Table: "faculties", IDColumn: "faculty_id"},
	KindCategory:           {Name: KindCategory, Table: "categories", IDColumn: "category_id"},
	KindServiceType:        {Name: KindServiceType, Table: "service_types", IDColumn: "service_type_id"},
	KindServiceFrequency:   {Name: KindServiceFrequency, Table: "service_frequencies", IDColumn: "service_frequency_id"},
	KindStatus:             {Name: KindStatus, Table: "statuses", IDColumn: "status_id"},
}

func KindInfo(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

func KindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	return names
}
