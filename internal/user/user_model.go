package user

import (
	"github.com/RohanMehta-11/festly/internal/models"
)

// User is the identity record other entities reference: event coordinators,
// registration participants, winner bank details.
type User struct {
	models.BaseModel
	Username    string       `gorm:"uniqueIndex;not null" json:"username"`
	Email       string       `gorm:"uniqueIndex;not null" json:"email"`
	Password    string       `gorm:"not null" json:"-"`
	Name        string       `json:"name"`
	Roles       []Role       `gorm:"many2many:user_roles" json:"roles,omitempty"`
	Permissions []Permission `gorm:"many2many:user_permissions" json:"permissions,omitempty"`
}

type Role struct {
	models.BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Permission is an explicitly granted capability, distinct from roles. The
// registration bulk import is gated on one of these.
type Permission struct {
	models.BaseModel
	Code        string `gorm:"uniqueIndex;not null" json:"code"`
	Description string `json:"description"`
}

// ParticipantRegistration is the registration summary embedded in participant
// responses. Scanned from a join, not a model of its own.
type ParticipantRegistration struct {
	ID        uint   `json:"id"`
	EventID   uint   `json:"event_id"`
	EventName string `json:"event_name"`
}

type ParticipantResponse struct {
	User
	Registrations []ParticipantRegistration `json:"registrations"`
}
