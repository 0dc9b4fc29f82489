package repository

import "errors"

var (
	// ErrInsufficientStock means a conditional stock decrement matched the
	// object but not the quantity. Distinct from gorm.ErrRecordNotFound so
	// callers can tell a race from a bad id.
	ErrInsufficientStock = errors.New("insufficient stock")
)
