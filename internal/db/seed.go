package db

import (
	"fmt"
	"os"

	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedEntry struct {
	ID   uint   `yaml:"id"`
	Name string `yaml:"name"`
}

// seedFile is the on-disk catalog bootstrap. Every section is optional;
// rows are upserted by id so reseeding is safe.
type seedFile struct {
	Roles               []seedEntry `yaml:"roles"`
	IdentificationTypes []seedEntry `yaml:"identification_types"`
	RequesterTypes      []seedEntry `yaml:"requester_types"`
	Faculties           []seedEntry `yaml:"faculties"`
	Categories          []seedEntry `yaml:"categories"`
	ServiceTypes        []seedEntry `yaml:"service_types"`
	ServiceFrequencies  []seedEntry `yaml:"service_frequencies"`
	Statuses            []seedEntry `yaml:"statuses"`
}

// Seed loads the catalog seed file and upserts its reference rows. An
// empty path is a no-op.
func Seed(gormDB *gorm.DB, path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	upsert := func(rows []seedEntry, build func(seedEntry) interface{}) error {
		for _, row := range rows {
			if row.ID == 0 || row.Name == "" {
				return fmt.Errorf("seed row needs id and name, got %+v", row)
			}
			if err := gormDB.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: idColumnOf(build(row))}},
				DoUpdates: clause.AssignmentColumns([]string{"name"}),
			}).Create(build(row)).Error; err != nil {
				return err
			}
		}
		return nil
	}

	steps := []struct {
		rows  []seedEntry
		build func(seedEntry) interface{}
	}{
		{file.Roles, func(e seedEntry) interface{} { return &catalog.Role{ID: e.ID, Name: e.Name} }},
		{file.IdentificationTypes, func(e seedEntry) interface{} { return &catalog.IdentificationType{ID: e.ID, Name: e.Name} }},
		{file.RequesterTypes, func(e seedEntry) interface{} { return &catalog.RequesterType{ID: e.ID, Name: e.Name} }},
		{file.Faculties, func(e seedEntry) interface{} { return &catalog.Faculty{ID: e.ID, Name: e.Name} }},
		{file.Categories, func(e seedEntry) interface{} { return &catalog.Category{ID: e.ID, Name: e.Name} }},
		{file.ServiceTypes, func(e seedEntry) interface{} { return &catalog.ServiceType{ID: e.ID, Name: e.Name} }},
		{file.ServiceFrequencies, func(e seedEntry) interface{} { return &catalog.ServiceFrequency{ID: e.ID, Name: e.Name} }},
		{file.Statuses, func(e seedEntry) interface{} { return &catalog.Status{ID: e.ID, Name: e.Name} }},
	}
	for _, step := range steps {
		if err := upsert(step.rows, step.build); err != nil {
			return err
		}
	}
	return nil
}

func idColumnOf(model interface{}) string {
	switch model.(type) {
	case *catalog.Role:
		return "role_id"
	case *catalog.IdentificationType:
		return "identification_type_id"
	case *catalog.RequesterType:
		return "requester_type_id"
	case *catalog.Faculty:
		return "faculty_id"
	case *catalog.Category:
		return "category_id"
	case *catalog.ServiceType:
		return "service_type_id"
	case *catalog.ServiceFrequency:
		return "service_frequency_id"
	case *catalog.Status:
		return "status_id"
	}
	return "id"
}
