package repository

import (
	"fmt"

	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"gorm.io/gorm"
)

// CatalogRepo covers the reference tables (via the closed kind
// registry) and the structured catalog entities: programs,
// laboratories, schedules, objects' neighbours deliveries and returns.
type CatalogRepo interface {
	ListKind(kind catalog.Kind) ([]catalog.Reference, error)
	GetKind(kind catalog.Kind, id uint) (catalog.Reference, error)
	FindKindByName(kind catalog.Kind, name string) (catalog.Reference, error)
	CreateKind(kind catalog.Kind, name string) (catalog.Reference, error)
	UpdateKind(kind catalog.Kind, id uint, name string) error
	DeleteKind(kind catalog.Kind, id uint) error

	ListPrograms() ([]catalog.Program, error)
	GetProgram(id uint) (catalog.Program, error)
	CreateProgram(p *catalog.Program) error
	SaveProgram(p *catalog.Program) error
	DeleteProgram(id uint) error

	ListLaboratories() ([]catalog.Laboratory, error)
	GetLaboratory(id uint) (catalog.Laboratory, error)
	FindLaboratoryByName(name string) (catalog.Laboratory, error)
	CreateLaboratory(l *catalog.Laboratory) error
	SaveLaboratory(l *catalog.Laboratory) error
	DeleteLaboratory(id uint) error

	ListSchedules(laboratoryID *uint) ([]catalog.Schedule, error)
	GetSchedule(id uint) (catalog.Schedule, error)
	CreateSchedule(s *catalog.Schedule) error
	SaveSchedule(s *catalog.Schedule) error
	DeleteSchedule(id uint) error

	GetDelivery(id uint) (catalog.Delivery, error)
	CreateDelivery(d *catalog.Delivery) error
	SaveDelivery(d *catalog.Delivery) error
	ListDeliveries() ([]catalog.Delivery, error)
	DeleteDelivery(id uint) error

	GetReturn(id uint) (catalog.Return, error)
	CreateReturn(ret *catalog.Return) error
	SaveReturn(ret *catalog.Return) error
	ListReturns() ([]catalog.Return, error)
	DeleteReturn(id uint) error

	WithTx(tx *gorm.DB) CatalogRepo
}

type DBCatalogRepo struct {
	db  *gorm.DB
	seq SequenceRepo
}

func NewCatalogRepo(db *gorm.DB) *DBCatalogRepo {
	return &DBCatalogRepo{db: db, seq: NewSequenceRepo(db)}
}

func (r *DBCatalogRepo) ListKind(kind catalog.Kind) ([]catalog.Reference, error) {
	var rows []catalog.Reference
	err := r.db.Table(kind.Table).
		Select(fmt.Sprintf("%s AS id, name", kind.IDColumn)).
		Order(kind.IDColumn).
		Scan(&rows).Error
	return rows, err
}

func (r *DBCatalogRepo) GetKind(kind catalog.Kind, id uint) (catalog.Reference, error) {
	var row catalog.Reference
	err := r.db.Table(kind.Table).
		Select(fmt.Sprintf("%s AS id, name", kind.IDColumn)).
		Where(fmt.Sprintf("%s = ?", kind.IDColumn), id).
		First(&row).Error
	return row, err
}

func (r *DBCatalogRepo) FindKindByName(kind catalog.Kind, name string) (catalog.Reference, error) {
	var row catalog.Reference
	err := r.db.Table(kind.Table).
		Select(fmt.Sprintf("%s AS id, name", kind.IDColumn)).
		Where("name = ?", name).
		First(&row).Error
	return row, err
}

func (r *DBCatalogRepo) CreateKind(kind catalog.Kind, name string) (catalog.Reference, error) {
	id, err := r.seq.NextID(kind.Table, kind.IDColumn)
	if err != nil {
		return catalog.Reference{}, err
	}
	row := catalog.Reference{ID: id, Name: name}
	err = r.db.Table(kind.Table).Create(map[string]interface{}{
		kind.IDColumn: id,
		"name":        name,
	}).Error
	return row, err
}

func (r *DBCatalogRepo) UpdateKind(kind catalog.Kind, id uint, name string) error {
	res := r.db.Table(kind.Table).
		Where(fmt.Sprintf("%s = ?", kind.IDColumn), id).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBCatalogRepo) DeleteKind(kind catalog.Kind, id uint) error {
	res := r.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", kind.Table, kind.IDColumn), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBCatalogRepo) ListPrograms() ([]catalog.Program, error) {
	var rows []catalog.Program
	err := r.db.Preload("Faculty").Order("program_id").Find(&rows).Error
	return rows, err
}

func (r *DBCatalogRepo) GetProgram(id uint) (catalog.Program, error) {
	var row catalog.Program
	err := r.db.Preload("Faculty").First(&row, id).Error
	return row, err
}

func (r *DBCatalogRepo) CreateProgram(p *catalog.Program) error {
	if p.ID == 0 {
		id, err := r.seq.NextID("programs", "program_id")
		if err != nil {
			return err
		}
		p.ID = id
	}
	return r.db.Create(p).Error
}

func (r *DBCatalogRepo) SaveProgram(p *catalog.Program) error {
	return r.db.Save(p).Error
}

func (r *DBCatalogRepo) DeleteProgram(id uint) error {
	return r.db.Delete(&catalog.Program{}, id).Error
}

func (r *DBCatalogRepo) ListLaboratories() ([]catalog.Laboratory, error) {
	var rows []catalog.Laboratory
	err := r.db.Order("laboratory_id").Find(&rows).Error
	return rows, err
}

func (r *DBCatalogRepo) GetLaboratory(id uint) (catalog.Laboratory, error) {
	var row catalog.Laboratory
	err := r.db.First(&row, id).Error
	return row, err
}

func (r *DBCatalogRepo) FindLaboratoryByName(name string) (catalog.Laboratory, error) {
	var row catalog.Laboratory
	err := r.db.Where("name = ?", name).First(&row).Error
	return row, err
}

func (r *DBCatalogRepo) CreateLaboratory(l *catalog.Laboratory) error {
	if l.ID == 0 {
		id, err := r.seq.NextID("laboratories", "laboratory_id")
		if err != nil {
			return err
		}
		l.ID = id
	}
	return r.db.Create(l).Error
}

func (r *DBCatalogRepo) SaveLaboratory(l *catalog.Laboratory) error {
	return r.db.Save(l).Error
}

func (r *DBCatalogRepo) DeleteLaboratory(id uint) error {
	return r.db.Delete(&catalog.Laboratory{}, id).Error
}

func (r *DBCatalogRepo) ListSchedules(laboratoryID *uint) ([]catalog.Schedule, error) {
	var rows []catalog.Schedule
	q := r.db.Preload("Laboratory").Order("schedule_id")
	if laboratoryID != nil {
		q = q.Where("laboratory_id = ?", *laboratoryID)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *DBCatalogRepo) GetSchedule(id uint) (catalog.Schedule, error) {
	var row catalog.Schedule
	err := r.db.Preload("Laboratory").First(&row, id).Error
	return row, err
}

func (r *DBCatalogRepo) CreateSchedule(s *catalog.Schedule) error {
	if s.ID == 0 {
		id, err := r.seq.NextID("laboratory_schedules", "schedule_id")
		if err != nil {
			return err
		}
		s.ID = id
	}
	return r.db.Create(s).Error
}

func (r *DBCatalogRepo) SaveSchedule(s *catalog.Schedule) error {
	return r.db.Save(s).Error
}

func (r *DBCatalogRepo) DeleteSchedule(id uint) error {
	return r.db.Delete(&catalog.Schedule{}, id).Error
}

func (r *DBCatalogRepo) GetDelivery(id uint) (catalog.Delivery, error) {
	var row catalog.Delivery
	err := r.db.Preload("ServiceFrequency").First(&row, id).Error
	return row, err
}

func (r *DBCatalogRepo) CreateDelivery(d *catalog.Delivery) error {
	if d.ID == 0 {
		id, err := r.seq.NextID("deliveries", "delivery_id")
		if err != nil {
			return err
		}
		d.ID = id
	}
	return r.db.Create(d).Error
}

func (r *DBCatalogRepo) SaveDelivery(d *catalog.Delivery) error {
	return r.db.Save(d).Error
}

func (r *DBCatalogRepo) ListDeliveries() ([]catalog.Delivery, error) {
	var rows []catalog.Delivery
	err := r.db.Preload("ServiceFrequency").Order("delivery_id").Find(&rows).Error
	return rows, err
}

func (r *DBCatalogRepo) DeleteDelivery(id uint) error {
	return r.db.Delete(&catalog.Delivery{}, id).Error
}

func (r *DBCatalogRepo) GetReturn(id uint) (catalog.Return, error) {
	var row catalog.Return
	err := r.db.First(&row, id).Error
	return row, err
}

func (r *DBCatalogRepo) CreateReturn(ret *catalog.Return) error {
	if ret.ID == 0 {
		id, err := r.seq.NextID("returns", "return_id")
		if err != nil {
			return err
		}
		ret.ID = id
	}
	return r.db.Create(ret).Error
}

func (r *DBCatalogRepo) SaveReturn(ret *catalog.Return) error {
	return r.db.Save(ret).Error
}

func (r *DBCatalogRepo) ListReturns() ([]catalog.Return, error) {
	var rows []catalog.Return
	err := r.db.Order("return_id").Find(&rows).Error
	return rows, err
}

func (r *DBCatalogRepo) DeleteReturn(id uint) error {
	return r.db.Delete(&catalog.Return{}, id).Error
}

func (r *DBCatalogRepo) WithTx(tx *gorm.DB) CatalogRepo {
	if tx == nil {
		return r
	}
	return &DBCatalogRepo{db: tx, seq: NewSequenceRepo(tx)}
}
