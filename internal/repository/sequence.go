package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// SequenceRepo hands out the next id for a table as MAX(column)+1,
// evaluated on the caller's transaction. Two concurrent transactions
// can read the same value; callers retry once when the subsequent
// insert hits a duplicate key.
type SequenceRepo interface {
	NextID(table, column string) (uint, error)
	WithTx(tx *gorm.DB) SequenceRepo
}

type DBSequenceRepo struct {
	db *gorm.DB
}

func NewSequenceRepo(db *gorm.DB) *DBSequenceRepo {
	return &DBSequenceRepo{db: db}
}

// NextID computes COALESCE(MAX(column),0)+1. Table and column names are
// compile-time constants (model TableName values and the catalog kind
// registry), never request input.
func (r *DBSequenceRepo) NextID(table, column string) (uint, error) {
	var next uint
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", column, table)
	if err := r.db.Raw(query).Scan(&next).Error; err != nil {
		return 0, err
	}
	return next, nil
}

func (r *DBSequenceRepo) WithTx(tx *gorm.DB) SequenceRepo {
	if tx == nil {
		return r
	}
	return &DBSequenceRepo{db: tx}
}
