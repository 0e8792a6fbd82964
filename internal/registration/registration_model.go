package registration

import (
	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/models"
	"github.com/RohanMehta-11/festly/internal/user"
)

// PermImport is the explicitly granted capability required for bulk imports.
const PermImport = "registration.import"

// Registration links a participant to an event. Both sides cascade: deleting
// the event or the participant removes the registration. Duplicate
// participant/event pairs are not prevented, matching the historical schema.
type Registration struct {
	models.BaseModel
	EventID       uint         `gorm:"index;not null" json:"event_id"`
	Event         *event.Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	ParticipantID uint         `gorm:"index;not null" json:"participant_id"`
	Participant   *user.User   `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
}

// ExportRow is the spreadsheet shape used by the registration export.
type ExportRow struct {
	ID          uint   `excel:"Registration ID"`
	EventName   string `excel:"Event"`
	Participant string `excel:"Participant"`
	Email       string `excel:"Email"`
}
