package sponsor

import "github.com/RohanMehta-11/festly/internal/models"

// Sponsor is a promotional partner of the festival.
type Sponsor struct {
	models.BaseModel
	Name        string `gorm:"not null" json:"name"`
	Tagline     string `json:"tagline"`
	Partnership string `json:"partnership"` // e.g. "Title Sponsor", "Media Partner"
	Logo        string `json:"logo"`
}
