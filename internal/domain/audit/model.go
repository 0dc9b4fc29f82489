package audit

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStatus = "status_change"
)

// Entry records one mutation of a request or catalog row: who did what
// to which entity, with JSON snapshots of the row before and after.
type Entry struct {
	ID        uint           `gorm:"primaryKey;column:audit_id" json:"id"`
	ActorID   uint           `gorm:"not null;column:actor_id" json:"actor_id"`
	Action    string         `gorm:"size:30;not null;column:action" json:"action"`
	Entity    string         `gorm:"size:50;not null;column:entity" json:"entity"`
	EntityID  uint           `gorm:"not null;column:entity_id" json:"entity_id"`
	Before    datatypes.JSON `gorm:"column:before_state" json:"before,omitempty"`
	After     datatypes.JSON `gorm:"column:after_state" json:"after,omitempty"`
	CreatedAt time.Time      `gorm:"not null;column:created_at" json:"created_at"`
}

func (Entry) TableName() string { return "audit_entries" }
