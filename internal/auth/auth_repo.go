package auth

import (
	"errors"

	"github.com/RohanMehta-11/festly/internal/user"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (*user.User, error)
	GetUserByEmail(email string) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)

	AssignRoleToUser(userID uint, role string) error
	GetUserRoles(userID uint) ([]string, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *authRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByUsername(username string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) AssignRoleToUser(userID uint, roleName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var role user.Role
		err := tx.Where("name = ?", roleName).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role = user.Role{Name: roleName}
			if err := tx.Create(&role).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var u user.User
		if err := tx.First(&u, userID).Error; err != nil {
			return err
		}
		return tx.Model(&u).Association("Roles").Append(&role)
	})
}

func (r *authRepository) GetUserRoles(userID uint) ([]string, error) {
	var roles []string
	err := r.db.Table("roles").
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &roles).Error
	return roles, err
}
