package brochure

import "github.com/RohanMehta-11/festly/internal/models"

// Brochure is a downloadable festival document, e.g. the event schedule.
type Brochure struct {
	models.BaseModel
	Name        string `gorm:"not null" json:"name"`
	BrochurePDF string `json:"brochurePdf"`
}
