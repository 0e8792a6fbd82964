package club

import (
	"errors"

	"gorm.io/gorm"
)

type ClubRepository interface {
	CreateClub(club *Club) error
	GetClubByID(id uint) (*Club, error)
	GetAllClubs(page, pageSize int, searchTerm string) ([]Club, int64, error)
	UpdateClub(club *Club) error
	DeleteClub(id uint) error
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) CreateClub(club *Club) error {
	return r.db.Create(club).Error
}

func (r *clubRepository) GetClubByID(id uint) (*Club, error) {
	var club Club
	err := r.db.First(&club, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetAllClubs(page, pageSize int, searchTerm string) ([]Club, int64, error) {
	var clubs []Club
	var total int64

	query := r.db.Model(&Club{})
	if searchTerm != "" {
		query = query.Where("name LIKE ?", "%"+searchTerm+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&clubs).Error; err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) UpdateClub(club *Club) error {
	return r.db.Save(club).Error
}

// DeleteClub removes the club. Events keep existing but lose the association,
// mirroring a SET NULL foreign key.
func (r *clubRepository) DeleteClub(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE events SET club_id = NULL WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Club{}, id).Error
	})
}
