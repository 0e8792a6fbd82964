package sponsor

import (
	"errors"

	"gorm.io/gorm"
)

type SponsorRepository interface {
	CreateSponsor(sponsor *Sponsor) error
	GetSponsorByID(id uint) (*Sponsor, error)
	GetAllSponsors(page, pageSize int) ([]Sponsor, int64, error)
	UpdateSponsor(sponsor *Sponsor) error
	DeleteSponsor(id uint) error
}

type sponsorRepository struct {
	db *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) SponsorRepository {
	return &sponsorRepository{db: db}
}

func (r *sponsorRepository) CreateSponsor(sponsor *Sponsor) error {
	return r.db.Create(sponsor).Error
}

func (r *sponsorRepository) GetSponsorByID(id uint) (*Sponsor, error) {
	var sponsor Sponsor
	err := r.db.First(&sponsor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sponsor, nil
}

func (r *sponsorRepository) GetAllSponsors(page, pageSize int) ([]Sponsor, int64, error) {
	var sponsors []Sponsor
	var total int64

	query := r.db.Model(&Sponsor{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&sponsors).Error; err != nil {
		return nil, 0, err
	}
	return sponsors, total, nil
}

func (r *sponsorRepository) UpdateSponsor(sponsor *Sponsor) error {
	return r.db.Save(sponsor).Error
}

func (r *sponsorRepository) DeleteSponsor(id uint) error {
	return r.db.Delete(&Sponsor{}, id).Error
}
