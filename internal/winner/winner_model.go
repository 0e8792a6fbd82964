package winner

import (
	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/models"
	"github.com/RohanMehta-11/festly/internal/user"
)

// DetailWinner holds the payout details of a single winning participant.
// Each participant has at most one record.
type DetailWinner struct {
	models.BaseModel
	UserID            uint       `gorm:"uniqueIndex;not null" json:"userId"`
	User              *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AccountHolderName string     `json:"accountHolderName"`
	FatherName        string     `json:"fatherName"`
	AccountNumber     string     `json:"accountNumber"`
	IFSC              string     `json:"ifsc"`
	PANNumber         string     `json:"panNumber"`
	PANPhoto          string     `json:"panPhoto"`
}

// TeamWinner is a named winning team made up of DetailWinner members.
type TeamWinner struct {
	models.BaseModel
	TeamName string         `gorm:"not null" json:"teamName"`
	Members  []DetailWinner `gorm:"many2many:team_winner_members" json:"members"`
}

// Winners records the podium for one event. An event has at most one row.
// Second and third place are optional; first place is not.
type Winners struct {
	models.BaseModel
	EventID        uint         `gorm:"uniqueIndex;not null" json:"eventId"`
	Event          *event.Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	FirstWinnerID  uint         `gorm:"not null" json:"firstWinnerId"`
	FirstWinner    *TeamWinner  `gorm:"foreignKey:FirstWinnerID" json:"firstWinner,omitempty"`
	SecondWinnerID *uint        `json:"secondWinnerId"`
	SecondWinner   *TeamWinner  `gorm:"foreignKey:SecondWinnerID" json:"secondWinner,omitempty"`
	ThirdWinnerID  *uint        `json:"thirdWinnerId"`
	ThirdWinner    *TeamWinner  `gorm:"foreignKey:ThirdWinnerID" json:"thirdWinner,omitempty"`
}
