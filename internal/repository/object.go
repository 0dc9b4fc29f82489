package repository

import (
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type ObjectRepo interface {
	ListObjects(activeOnly bool) ([]catalog.Object, error)
	GetObject(id uint) (catalog.Object, error)
	FindObjectByName(name string) (catalog.Object, error)
	CreateObject(o *catalog.Object) error
	SaveObject(o *catalog.Object) error
	DeleteObject(id uint) error
	DecrementStock(id uint, qty int) error
	SetImageURL(id uint, url string) error
	WithTx(tx *gorm.DB) ObjectRepo
}

type DBObjectRepo struct {
	db  *gorm.DB
	seq SequenceRepo
}

func NewObjectRepo(db *gorm.DB) *DBObjectRepo {
	return &DBObjectRepo{db: db, seq: NewSequenceRepo(db)}
}

func (r *DBObjectRepo) ListObjects(activeOnly bool) ([]catalog.Object, error) {
	var rows []catalog.Object
	q := r.db.Preload("Category").Order("object_id")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *DBObjectRepo) GetObject(id uint) (catalog.Object, error) {
	var row catalog.Object
	err := r.db.Preload("Category").First(&row, id).Error
	return row, err
}

func (r *DBObjectRepo) FindObjectByName(name string) (catalog.Object, error) {
	var row catalog.Object
	err := r.db.Where("name = ?", name).First(&row).Error
	return row, err
}

func (r *DBObjectRepo) CreateObject(o *catalog.Object) error {
	if o.ID == 0 {
		id, err := r.seq.NextID("objects", "object_id")
		if err != nil {
			return err
		}
		o.ID = id
	}
	return r.db.Create(o).Error
}

func (r *DBObjectRepo) SaveObject(o *catalog.Object) error {
	return r.db.Save(o).Error
}

func (r *DBObjectRepo) DeleteObject(id uint) error {
	return r.db.Delete(&catalog.Object{}, id).Error
}

// DecrementStock subtracts qty only when enough stock remains, in one
// conditional UPDATE. Zero rows affected with an existing object means
// a concurrent taker got there first.
func (r *DBObjectRepo) DecrementStock(id uint, qty int) error {
	res := r.db.Model(&catalog.Object{}).
		Where("object_id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&catalog.Object{}).Where("object_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}

func (r *DBObjectRepo) SetImageURL(id uint, url string) error {
	res := r.db.Model(&catalog.Object{}).Where("object_id = ?", id).Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBObjectRepo) WithTx(tx *gorm.DB) ObjectRepo {
	if tx == nil {
		return r
	}
	return &DBObjectRepo{db: tx, seq: NewSequenceRepo(tx)}
}
