package user

import (
	"errors"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetUserByID(id uint) (*User, error)
	GetAllUsers(page, pageSize int, searchTerm string) ([]User, int64, error)
	DeleteUser(id uint) error

	GrantPermission(userID uint, code, description string) error
	RevokePermission(userID uint, code string) error

	GetParticipants(page, pageSize int) ([]User, int64, error)
	GetParticipantRegistrations(userID uint) ([]ParticipantRegistration, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByID(id uint) (*User, error) {
	var u User
	err := r.db.Preload("Roles").Preload("Permissions").First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetAllUsers(page, pageSize int, searchTerm string) ([]User, int64, error) {
	var users []User
	var total int64

	query := r.db.Model(&User{})
	if searchTerm != "" {
		query = query.Where("username LIKE ? OR email LIKE ?", "%"+searchTerm+"%", "%"+searchTerm+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("username ASC").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// DeleteUser removes the user and everything that hangs off it: role and
// permission grants, registrations, winner bank details (with their team
// memberships). Registrations cascade per the data model; the rest are join
// rows that would otherwise dangle.
func (r *userRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_roles WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM user_permissions WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM event_coordinators WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM registrations WHERE participant_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM team_winner_members WHERE detail_winner_id IN (SELECT id FROM detail_winners WHERE user_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM detail_winners WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
}

func (r *userRepository) GrantPermission(userID uint, code, description string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var perm Permission
		err := tx.Where("code = ?", code).First(&perm).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			perm = Permission{Code: code, Description: description}
			if err := tx.Create(&perm).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var u User
		if err := tx.First(&u, userID).Error; err != nil {
			return err
		}
		return tx.Model(&u).Association("Permissions").Append(&perm)
	})
}

func (r *userRepository) RevokePermission(userID uint, code string) error {
	var perm Permission
	if err := r.db.Where("code = ?", code).First(&perm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	var u User
	if err := r.db.First(&u, userID).Error; err != nil {
		return err
	}
	return r.db.Model(&u).Association("Permissions").Delete(&perm)
}

func (r *userRepository) GetParticipants(page, pageSize int) ([]User, int64, error) {
	var users []User
	var total int64

	query := r.db.Model(&User{}).
		Where("id IN (SELECT DISTINCT participant_id FROM registrations)")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("username ASC").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) GetParticipantRegistrations(userID uint) ([]ParticipantRegistration, error) {
	var regs []ParticipantRegistration
	err := r.db.Table("registrations").
		Select("registrations.id, registrations.event_id, events.name AS event_name").
		Joins("JOIN events ON events.id = registrations.event_id").
		Where("registrations.participant_id = ?", userID).
		Order("registrations.id ASC").
		Scan(&regs).Error
	return regs, err
}
