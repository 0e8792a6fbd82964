package event

import (
	"time"

	"github.com/RohanMehta-11/festly/internal/club"
	"github.com/RohanMehta-11/festly/internal/models"
	"github.com/RohanMehta-11/festly/internal/taxonomy"
	"github.com/RohanMehta-11/festly/internal/user"
)

// Event is the central entity of the platform: scheduling, venue, team-size
// constraints, descriptive content and file attachments.
type Event struct {
	models.BaseModel
	Name         string      `gorm:"not null" json:"name"`
	Coordinators []user.User `gorm:"many2many:event_coordinators" json:"coordinators,omitempty"`

	Locations string    `json:"locations"`
	DateTime  time.Time `json:"date_time"`

	Prize string `gorm:"type:text" json:"prize"`

	// Team size bounds are independently validated to be >= 0; min <= max is
	// deliberately not enforced, matching the historical behavior.
	MinTeam int `gorm:"default:0" json:"min_team"`
	MaxTeam int `gorm:"default:0" json:"max_team"`

	EventTypeID *uint               `gorm:"index" json:"event_type_id"`
	EventType   *taxonomy.EventType `gorm:"foreignKey:EventTypeID" json:"event_type,omitempty"`
	ClubID      *uint               `gorm:"index" json:"club_id"`
	Club        *club.Club          `gorm:"foreignKey:ClubID" json:"club,omitempty"`

	Details          string `gorm:"type:text" json:"details"`
	ShortDescription string `gorm:"type:text" json:"short_description"`
	RuleList         string `gorm:"type:text" json:"rule_list"`

	Poster   string `json:"poster"`
	RulesPDF string `json:"rules_pdf"`
}

// Change types recorded in the event history log.
const (
	HistoryCreate = "create"
	HistoryUpdate = "update"
	HistoryDelete = "delete"
)

// EventHistory is an append-only snapshot of an event's fields, written on
// every create, update and delete. Rows are never modified after insert.
type EventHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventID     uint      `gorm:"index;not null" json:"event_id"`
	ChangeType  string    `gorm:"not null" json:"change_type"`
	ChangedByID uint      `gorm:"index" json:"changed_by_id"`
	ChangedAt   time.Time `gorm:"autoCreateTime" json:"changed_at"`

	Name             string    `json:"name"`
	Locations        string    `json:"locations"`
	DateTime         time.Time `json:"date_time"`
	Prize            string    `gorm:"type:text" json:"prize"`
	MinTeam          int       `json:"min_team"`
	MaxTeam          int       `json:"max_team"`
	EventTypeID      *uint     `json:"event_type_id"`
	ClubID           *uint     `json:"club_id"`
	Details          string    `gorm:"type:text" json:"details"`
	ShortDescription string    `gorm:"type:text" json:"short_description"`
	RuleList         string    `gorm:"type:text" json:"rule_list"`
	Poster           string    `json:"poster"`
	RulesPDF         string    `json:"rules_pdf"`
}

func snapshot(e *Event, changeType string, actorID uint) *EventHistory {
	return &EventHistory{
		EventID:          e.ID,
		ChangeType:       changeType,
		ChangedByID:      actorID,
		Name:             e.Name,
		Locations:        e.Locations,
		DateTime:         e.DateTime,
		Prize:            e.Prize,
		MinTeam:          e.MinTeam,
		MaxTeam:          e.MaxTeam,
		EventTypeID:      e.EventTypeID,
		ClubID:           e.ClubID,
		Details:          e.Details,
		ShortDescription: e.ShortDescription,
		RuleList:         e.RuleList,
		Poster:           e.Poster,
		RulesPDF:         e.RulesPDF,
	}
}
