package brochure

import (
	"errors"

	"gorm.io/gorm"
)

type BrochureRepository interface {
	CreateBrochure(brochure *Brochure) error
	GetBrochureByID(id uint) (*Brochure, error)
	GetAllBrochures(page, pageSize int) ([]Brochure, int64, error)
	UpdateBrochure(brochure *Brochure) error
	DeleteBrochure(id uint) error
}

type brochureRepository struct {
	db *gorm.DB
}

func NewBrochureRepository(db *gorm.DB) BrochureRepository {
	return &brochureRepository{db: db}
}

func (r *brochureRepository) CreateBrochure(brochure *Brochure) error {
	return r.db.Create(brochure).Error
}

func (r *brochureRepository) GetBrochureByID(id uint) (*Brochure, error) {
	var brochure Brochure
	err := r.db.First(&brochure, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brochure, nil
}

func (r *brochureRepository) GetAllBrochures(page, pageSize int) ([]Brochure, int64, error) {
	var brochures []Brochure
	var total int64

	query := r.db.Model(&Brochure{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("id ASC").Offset(offset).Limit(pageSize).Find(&brochures).Error; err != nil {
		return nil, 0, err
	}
	return brochures, total, nil
}

func (r *brochureRepository) UpdateBrochure(brochure *Brochure) error {
	return r.db.Save(brochure).Error
}

func (r *brochureRepository) DeleteBrochure(id uint) error {
	return r.db.Delete(&Brochure{}, id).Error
}
