package club

import "github.com/RohanMehta-11/festly/internal/models"

// Club is the society/club an event may be associated with.
type Club struct {
	models.BaseModel
	Name string `gorm:"not null" json:"name"`
}
