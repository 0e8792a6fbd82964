package taxonomy

import "github.com/RohanMehta-11/festly/internal/models"

// EventCategory groups event types, e.g. "Cultural" or "Technical".
type EventCategory struct {
	models.BaseModel
	Name       string `gorm:"not null" json:"name"`
	CoverImage string `json:"cover_image"`
}

// EventType is a kind of event within a category, e.g. "Street Play".
type EventType struct {
	models.BaseModel
	Name            string         `gorm:"not null" json:"name"`
	EventCategoryID *uint          `gorm:"index" json:"event_category_id"`
	EventCategory   *EventCategory `gorm:"foreignKey:EventCategoryID" json:"event_category,omitempty"`
	CoverImage      string         `json:"cover_image"`
}
