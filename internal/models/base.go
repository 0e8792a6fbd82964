package models

import "time"

// BaseModel carries the audit timestamps shared by every entity. CreatedAt is
// written once on insert; UpdatedAt is re-stamped by GORM on every write.
// Deletes are hard deletes so that cascade and protect rules are observable.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
