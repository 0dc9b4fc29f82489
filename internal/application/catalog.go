package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/repository"
	"github.com/acceslab/acceslab-go/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUnknownKind     = errors.New("unknown catalog kind")
	ErrEmptyEntityRef  = errors.New("entity reference needs an id or a name")
	ErrCatalogNotFound = errors.New("catalog entry not found")
)

type CatalogService struct {
	Repos *repository.Repos
}

func NewCatalogService(repos *repository.Repos) *CatalogService {
	return &CatalogService{Repos: repos}
}

// ResolveOrCreate turns an id-or-name reference into a concrete row id.
// An id must exist; a name is looked up and created when missing, so
// writers can mention catalog entries that nobody registered yet.
func (s *CatalogService) ResolveOrCreate(kindName string, ref catalog.EntityRef) (uint, error) {
	kind, ok := catalog.KindInfo(kindName)
	if !ok {
		return 0, ErrUnknownKind
	}
	if ref.ID != nil {
		row, err := s.Repos.Catalog.GetKind(kind, *ref.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: %s %d", ErrCatalogNotFound, kindName, *ref.ID)
		}
		if err != nil {
			return 0, err
		}
		return row.ID, nil
	}
	if ref.Name == nil || *ref.Name == "" {
		return 0, ErrEmptyEntityRef
	}
	row, err := s.Repos.Catalog.FindKindByName(kind, *ref.Name)
	if err == nil {
		return row.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	created, err := s.Repos.Catalog.CreateKind(kind, *ref.Name)
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (s *CatalogService) ListKind(kindName string) ([]catalog.Reference, error) {
	kind, ok := catalog.KindInfo(kindName)
	if !ok {
		return nil, ErrUnknownKind
	}
	return s.Repos.Catalog.ListKind(kind)
}

func (s *CatalogService) GetKind(kindName string, id uint) (catalog.Reference, error) {
	kind, ok := catalog.KindInfo(kindName)
	if !ok {
		return catalog.Reference{}, ErrUnknownKind
	}
	return s.Repos.Catalog.GetKind(kind, id)
}

func (s *CatalogService) CreateKindEntry(kindName, name string) (catalog.Reference, error) {
	kind, ok := catalog.KindInfo(kindName)
	if !ok {
		return catalog.Reference{}, ErrUnknownKind
	}
	if existing, err := s.Repos.Catalog.FindKindByName(kind, name); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.Reference{}, err
	}
	return s.Repos.Catalog.CreateKind(kind, name)
}

func (s *CatalogService) UpdateKindEntry(kindName string, id uint, name string) error {
	kind, ok := catalog.KindInfo(kindName)
	if !ok {
		return ErrUnknownKind
	}
	return s.Repos.Catalog.UpdateKind(kind, id, name)
}

func (s *CatalogService) DeleteKindEntry(kindName string, id uint) error {
	kind, ok := catalog.KindInfo(kindName)
	if !ok {
		return ErrUnknownKind
	}
	return s.Repos.Catalog.DeleteKind(kind, id)
}

func (s *CatalogService) ListPrograms() ([]catalog.Program, error) {
	return s.Repos.Catalog.ListPrograms()
}

func (s *CatalogService) GetProgram(id uint) (catalog.Program, error) {
	return s.Repos.Catalog.GetProgram(id)
}

func (s *CatalogService) CreateProgram(input catalog.ProgramInput) (catalog.Program, error) {
	facultyID, err := s.ResolveOrCreate(catalog.KindFaculty, input.Faculty)
	if err != nil {
		return catalog.Program{}, err
	}
	p := catalog.Program{Name: input.Name, FacultyID: facultyID}
	if err := s.Repos.Catalog.CreateProgram(&p); err != nil {
		return catalog.Program{}, err
	}
	return s.Repos.Catalog.GetProgram(p.ID)
}

func (s *CatalogService) UpdateProgram(id uint, input catalog.ProgramInput) (catalog.Program, error) {
	p, err := s.Repos.Catalog.GetProgram(id)
	if err != nil {
		return catalog.Program{}, err
	}
	if !input.Faculty.Empty() {
		facultyID, err := s.ResolveOrCreate(catalog.KindFaculty, input.Faculty)
		if err != nil {
			return catalog.Program{}, err
		}
		p.FacultyID = facultyID
	}
	p.Name = input.Name
	p.Faculty = nil
	if err := s.Repos.Catalog.SaveProgram(&p); err != nil {
		return catalog.Program{}, err
	}
	return s.Repos.Catalog.GetProgram(id)
}

func (s *CatalogService) DeleteProgram(id uint) error {
	if _, err := s.Repos.Catalog.GetProgram(id); err != nil {
		return err
	}
	return s.Repos.Catalog.DeleteProgram(id)
}

func (s *CatalogService) ListLaboratories() ([]catalog.Laboratory, error) {
	return s.Repos.Catalog.ListLaboratories()
}

func (s *CatalogService) GetLaboratory(id uint) (catalog.Laboratory, error) {
	return s.Repos.Catalog.GetLaboratory(id)
}

func (s *CatalogService) CreateLaboratory(input catalog.LaboratoryInput) (catalog.Laboratory, error) {
	l := catalog.Laboratory{Name: input.Name, Capacity: input.Capacity, Location: input.Location}
	if err := s.Repos.Catalog.CreateLaboratory(&l); err != nil {
		return catalog.Laboratory{}, err
	}
	return l, nil
}

func (s *CatalogService) UpdateLaboratory(id uint, input catalog.LaboratoryInput) (catalog.Laboratory, error) {
	l, err := s.Repos.Catalog.GetLaboratory(id)
	if err != nil {
		return catalog.Laboratory{}, err
	}
	l.Name = input.Name
	l.Capacity = input.Capacity
	l.Location = input.Location
	if err := s.Repos.Catalog.SaveLaboratory(&l); err != nil {
		return catalog.Laboratory{}, err
	}
	return l, nil
}

func (s *CatalogService) DeleteLaboratory(id uint) error {
	if _, err := s.Repos.Catalog.GetLaboratory(id); err != nil {
		return err
	}
	return s.Repos.Catalog.DeleteLaboratory(id)
}

// ResolveLaboratory maps an id-or-name laboratory reference to its id,
// creating a bare row for unseen names.
func (s *CatalogService) ResolveLaboratory(ref catalog.EntityRef) (uint, error) {
	if ref.ID != nil {
		l, err := s.Repos.Catalog.GetLaboratory(*ref.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: laboratory %d", ErrCatalogNotFound, *ref.ID)
		}
		if err != nil {
			return 0, err
		}
		return l.ID, nil
	}
	if ref.Name == nil || *ref.Name == "" {
		return 0, ErrEmptyEntityRef
	}
	l, err := s.Repos.Catalog.FindLaboratoryByName(*ref.Name)
	if err == nil {
		return l.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	created := catalog.Laboratory{Name: *ref.Name}
	if err := s.Repos.Catalog.CreateLaboratory(&created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (s *CatalogService) ListSchedules(laboratoryID *uint) ([]catalog.Schedule, error) {
	return s.Repos.Catalog.ListSchedules(laboratoryID)
}

func (s *CatalogService) GetSchedule(id uint) (catalog.Schedule, error) {
	return s.Repos.Catalog.GetSchedule(id)
}

func (s *CatalogService) CreateSchedule(input catalog.ScheduleInput) (catalog.Schedule, error) {
	if err := validateTimeWindow(input.StartTime, input.EndTime); err != nil {
		return catalog.Schedule{}, err
	}
	labID, err := s.ResolveLaboratory(input.Laboratory)
	if err != nil {
		return catalog.Schedule{}, err
	}
	sch := catalog.Schedule{
		LaboratoryID: labID,
		DayOfWeek:    input.DayOfWeek,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
	}
	if err := s.Repos.Catalog.CreateSchedule(&sch); err != nil {
		return catalog.Schedule{}, err
	}
	return s.Repos.Catalog.GetSchedule(sch.ID)
}

func (s *CatalogService) UpdateSchedule(id uint, input catalog.ScheduleInput) (catalog.Schedule, error) {
	if err := validateTimeWindow(input.StartTime, input.EndTime); err != nil {
		return catalog.Schedule{}, err
	}
	sch, err := s.Repos.Catalog.GetSchedule(id)
	if err != nil {
		return catalog.Schedule{}, err
	}
	labID, err := s.ResolveLaboratory(input.Laboratory)
	if err != nil {
		return catalog.Schedule{}, err
	}
	sch.LaboratoryID = labID
	sch.DayOfWeek = input.DayOfWeek
	sch.StartTime = input.StartTime
	sch.EndTime = input.EndTime
	sch.Laboratory = nil
	if err := s.Repos.Catalog.SaveSchedule(&sch); err != nil {
		return catalog.Schedule{}, err
	}
	return s.Repos.Catalog.GetSchedule(id)
}

func (s *CatalogService) DeleteSchedule(id uint) error {
	if _, err := s.Repos.Catalog.GetSchedule(id); err != nil {
		return err
	}
	return s.Repos.Catalog.DeleteSchedule(id)
}

func (s *CatalogService) ListObjects(activeOnly bool) ([]catalog.Object, error) {
	return s.Repos.Object.ListObjects(activeOnly)
}

func (s *CatalogService) GetObject(id uint) (catalog.Object, error) {
	return s.Repos.Object.GetObject(id)
}

func (s *CatalogService) CreateObject(input catalog.ObjectInput) (catalog.Object, error) {
	categoryID, err := s.ResolveOrCreate(catalog.KindCategory, input.Category)
	if err != nil {
		return catalog.Object{}, err
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	o := catalog.Object{
		Name:        input.Name,
		CategoryID:  categoryID,
		Description: input.Description,
		Stock:       input.Stock,
		Active:      active,
		ImageURL:    input.ImageURL,
	}
	if err := s.Repos.Object.CreateObject(&o); err != nil {
		return catalog.Object{}, err
	}
	return s.Repos.Object.GetObject(o.ID)
}

func (s *CatalogService) UpdateObject(id uint, input catalog.ObjectUpdateInput) (catalog.Object, error) {
	o, err := s.Repos.Object.GetObject(id)
	if err != nil {
		return catalog.Object{}, err
	}
	if input.Category != nil && !input.Category.Empty() {
		categoryID, err := s.ResolveOrCreate(catalog.KindCategory, *input.Category)
		if err != nil {
			return catalog.Object{}, err
		}
		o.CategoryID = categoryID
	}
	if input.Name != nil {
		o.Name = *input.Name
	}
	if input.Description != nil {
		o.Description = *input.Description
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			ve := NewValidationError()
			ve.Add("stock", "must not be negative")
			return catalog.Object{}, ve
		}
		o.Stock = *input.Stock
	}
	if input.Active != nil {
		o.Active = *input.Active
	}
	if input.ImageURL != nil {
		o.ImageURL = *input.ImageURL
	}
	o.Category = nil
	if err := s.Repos.Object.SaveObject(&o); err != nil {
		return catalog.Object{}, err
	}
	return s.Repos.Object.GetObject(id)
}

func (s *CatalogService) DeleteObject(id uint) error {
	if _, err := s.Repos.Object.GetObject(id); err != nil {
		return err
	}
	return s.Repos.Object.DeleteObject(id)
}

// UploadObjectImage stores the image in the object store under a
// generated name and records the resulting URL on the object.
func (s *CatalogService) UploadObjectImage(ctx context.Context, id uint, filename, contentType string, content io.Reader, size int64) (string, error) {
	if !storage.Enabled() {
		return "", ErrStorageDisabled
	}
	if _, err := s.Repos.Object.GetObject(id); err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("objects/%d/%s%s", id, uuid.New().String(), path.Ext(filename))
	url, err := storage.UploadObject(ctx, objectName, contentType, content, size)
	if err != nil {
		return "", err
	}
	if err := s.Repos.Object.SetImageURL(id, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *CatalogService) ListDeliveries() ([]catalog.Delivery, error) {
	return s.Repos.Catalog.ListDeliveries()
}

func (s *CatalogService) GetDelivery(id uint) (catalog.Delivery, error) {
	return s.Repos.Catalog.GetDelivery(id)
}

func (s *CatalogService) CreateDelivery(input catalog.DeliveryInput) (catalog.Delivery, error) {
	frequencyID, err := s.ResolveOrCreate(catalog.KindServiceFrequency, input.ServiceFrequency)
	if err != nil {
		return catalog.Delivery{}, err
	}
	d := catalog.Delivery{
		Date:               input.Date,
		Time:               input.Time,
		Notes:              input.Notes,
		ServiceFrequencyID: frequencyID,
	}
	if err := s.Repos.Catalog.CreateDelivery(&d); err != nil {
		return catalog.Delivery{}, err
	}
	return s.Repos.Catalog.GetDelivery(d.ID)
}

func (s *CatalogService) DeleteDelivery(id uint) error {
	if _, err := s.Repos.Catalog.GetDelivery(id); err != nil {
		return err
	}
	return s.Repos.Catalog.DeleteDelivery(id)
}

func (s *CatalogService) ListReturns() ([]catalog.Return, error) {
	return s.Repos.Catalog.ListReturns()
}

func (s *CatalogService) GetReturn(id uint) (catalog.Return, error) {
	return s.Repos.Catalog.GetReturn(id)
}

func (s *CatalogService) CreateReturn(input catalog.ReturnInput) (catalog.Return, error) {
	ret := catalog.Return{Date: input.Date, Time: input.Time, Notes: input.Notes}
	if err := s.Repos.Catalog.CreateReturn(&ret); err != nil {
		return catalog.Return{}, err
	}
	return ret, nil
}

func (s *CatalogService) DeleteReturn(id uint) error {
	if _, err := s.Repos.Catalog.GetReturn(id); err != nil {
		return err
	}
	return s.Repos.Catalog.DeleteReturn(id)
}

func validateTimeWindow(start, end string) error {
	ve := NewValidationError()
	if !validTimeOfDay(start) {
		ve.Add("start_time", "must be HH:MM")
	}
	if !validTimeOfDay(end) {
		ve.Add("end_time", "must be HH:MM")
	}
	if !ve.HasErrors() && start >= end {
		ve.Add("end_time", "must be after start_time")
	}
	return ve.ErrOrNil()
}

// validTimeOfDay accepts zero-padded 24h "HH:MM".
func validTimeOfDay(v string) bool {
	if len(v) != 5 || v[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return v[:2] <= "23" && v[3:] <= "59"
}
