package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Catalog CatalogRepo
	Object  ObjectRepo
	Request RequestRepo
	User    UserRepo
	Report  ReportRepo
	Audit   AuditRepo
	Seq     SequenceRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Catalog: NewCatalogRepo(db),
		Object:  NewObjectRepo(db),
		Request: NewRequestRepo(db),
		User:    NewUserRepo(db),
		Report:  NewReportRepo(db),
		Audit:   NewAuditRepo(db),
		Seq:     NewSequenceRepo(db),
		db:      db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Catalog: r.Catalog.WithTx(tx),
		Object:  r.Object.WithTx(tx),
		Request: r.Request.WithTx(tx),
		User:    r.User.WithTx(tx),
		Report:  r.Report.WithTx(tx),
		Audit:   r.Audit.WithTx(tx),
		Seq:     r.Seq.WithTx(tx),
		db:      tx,
	}
}

// ExecTx runs fn inside one transaction. Containers built around mocks
// carry no db handle; fn then runs directly and the mocks assert the
// call sequence instead.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
