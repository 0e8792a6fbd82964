package winner

import (
	"errors"

	"github.com/RohanMehta-11/festly/internal/user"
	"gorm.io/gorm"
)

// ErrProtectedReference is returned when a delete would orphan a record that
// another row still points at.
var ErrProtectedReference = errors.New("record is referenced and cannot be deleted")

type WinnerRepository interface {
	CreateDetailWinner(detail *DetailWinner) error
	GetDetailWinnerByID(id uint) (*DetailWinner, error)
	GetDetailWinnerByUserID(userID uint) (*DetailWinner, error)
	GetAllDetailWinners(page, pageSize int) ([]DetailWinner, int64, error)
	UpdateDetailWinner(detail *DetailWinner) error
	DeleteDetailWinner(id uint) error

	CreateTeamWinner(team *TeamWinner, memberIDs []uint) error
	GetTeamWinnerByID(id uint) (*TeamWinner, error)
	GetAllTeamWinners(page, pageSize int) ([]TeamWinner, int64, error)
	UpdateTeamWinner(team *TeamWinner, memberIDs []uint) error
	DeleteTeamWinner(id uint) error

	CreateWinners(winners *Winners) error
	GetWinnersByID(id uint) (*Winners, error)
	GetWinnersByEventID(eventID uint) (*Winners, error)
	GetAllWinners(page, pageSize int) ([]Winners, int64, error)
	UpdateWinners(winners *Winners) error
	DeleteWinners(id uint) error

	GetUserByID(id uint) (*user.User, error)
	EventExists(id uint) (bool, error)
}

type winnerRepository struct {
	db *gorm.DB
}

func NewWinnerRepository(db *gorm.DB) WinnerRepository {
	return &winnerRepository{db: db}
}

func (r *winnerRepository) CreateDetailWinner(detail *DetailWinner) error {
	return r.db.Create(detail).Error
}

func (r *winnerRepository) GetDetailWinnerByID(id uint) (*DetailWinner, error) {
	var detail DetailWinner
	err := r.db.Preload("User").First(&detail, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *winnerRepository) GetDetailWinnerByUserID(userID uint) (*DetailWinner, error) {
	var detail DetailWinner
	err := r.db.Where("user_id = ?", userID).First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *winnerRepository) GetAllDetailWinners(page, pageSize int) ([]DetailWinner, int64, error) {
	var details []DetailWinner
	var total int64

	query := r.db.Model(&DetailWinner{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("User").Order("id ASC").Offset(offset).Limit(pageSize).Find(&details).Error
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

func (r *winnerRepository) UpdateDetailWinner(detail *DetailWinner) error {
	return r.db.Save(detail).Error
}

// DeleteDetailWinner refuses to delete details that still belong to a team.
func (r *winnerRepository) DeleteDetailWinner(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var memberships int64
		err := tx.Table("team_winner_members").
			Where("detail_winner_id = ?", id).
			Count(&memberships).Error
		if err != nil {
			return err
		}
		if memberships > 0 {
			return ErrProtectedReference
		}
		return tx.Delete(&DetailWinner{}, id).Error
	})
}

func (r *winnerRepository) CreateTeamWinner(team *TeamWinner, memberIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.loadMembers(tx, team, memberIDs); err != nil {
			return err
		}
		return tx.Create(team).Error
	})
}

func (r *winnerRepository) GetTeamWinnerByID(id uint) (*TeamWinner, error) {
	var team TeamWinner
	err := r.db.Preload("Members.User").First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *winnerRepository) GetAllTeamWinners(page, pageSize int) ([]TeamWinner, int64, error) {
	var teams []TeamWinner
	var total int64

	query := r.db.Model(&TeamWinner{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Members").Order("id ASC").Offset(offset).Limit(pageSize).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

// UpdateTeamWinner saves scalar fields and, when memberIDs is non-nil,
// replaces the member set.
func (r *winnerRepository) UpdateTeamWinner(team *TeamWinner, memberIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members").Save(team).Error; err != nil {
			return err
		}
		if memberIDs == nil {
			return nil
		}
		if err := r.loadMembers(tx, team, memberIDs); err != nil {
			return err
		}
		return tx.Model(team).Association("Members").Replace(&team.Members)
	})
}

// DeleteTeamWinner refuses to delete teams still on a podium.
func (r *winnerRepository) DeleteTeamWinner(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var placements int64
		err := tx.Model(&Winners{}).
			Where("first_winner_id = ? OR second_winner_id = ? OR third_winner_id = ?", id, id, id).
			Count(&placements).Error
		if err != nil {
			return err
		}
		if placements > 0 {
			return ErrProtectedReference
		}
		if err := tx.Exec("DELETE FROM team_winner_members WHERE team_winner_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&TeamWinner{}, id).Error
	})
}

func (r *winnerRepository) loadMembers(tx *gorm.DB, team *TeamWinner, memberIDs []uint) error {
	team.Members = nil
	if len(memberIDs) == 0 {
		return nil
	}
	var members []DetailWinner
	if err := tx.Where("id IN ?", memberIDs).Find(&members).Error; err != nil {
		return err
	}
	if len(members) != len(memberIDs) {
		return gorm.ErrRecordNotFound
	}
	team.Members = members
	return nil
}

func (r *winnerRepository) CreateWinners(winners *Winners) error {
	return r.db.Create(winners).Error
}

func (r *winnerRepository) GetWinnersByID(id uint) (*Winners, error) {
	var winners Winners
	err := r.db.
		Preload("Event").
		Preload("FirstWinner.Members").
		Preload("SecondWinner.Members").
		Preload("ThirdWinner.Members").
		First(&winners, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &winners, nil
}

func (r *winnerRepository) GetWinnersByEventID(eventID uint) (*Winners, error) {
	var winners Winners
	err := r.db.Where("event_id = ?", eventID).First(&winners).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &winners, nil
}

func (r *winnerRepository) GetAllWinners(page, pageSize int) ([]Winners, int64, error) {
	var list []Winners
	var total int64

	query := r.db.Model(&Winners{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Event").
		Preload("FirstWinner").
		Preload("SecondWinner").
		Preload("ThirdWinner").
		Order("id ASC").Offset(offset).Limit(pageSize).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *winnerRepository) UpdateWinners(winners *Winners) error {
	return r.db.Omit("Event", "FirstWinner", "SecondWinner", "ThirdWinner").Save(winners).Error
}

func (r *winnerRepository) DeleteWinners(id uint) error {
	return r.db.Delete(&Winners{}, id).Error
}

func (r *winnerRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *winnerRepository) EventExists(id uint) (bool, error) {
	var count int64
	err := r.db.Table("events").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
