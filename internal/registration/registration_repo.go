package registration

import (
	"errors"

	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/user"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	CreateRegistration(reg *Registration) error
	GetRegistrationByID(id uint) (*Registration, error)
	GetAllRegistrations(page, pageSize int, eventID, participantID *uint) ([]Registration, int64, error)
	DeleteRegistration(id uint) error

	// BulkCreate persists all registrations in one transaction: either every
	// row is inserted or none are.
	BulkCreate(regs []Registration) error

	GetEventByID(id uint) (*event.Event, error)
	GetUserByUsername(username string) (*user.User, error)
	GetExportRows() ([]ExportRow, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) CreateRegistration(reg *Registration) error {
	return r.db.Create(reg).Error
}

func (r *registrationRepository) GetRegistrationByID(id uint) (*Registration, error) {
	var reg Registration
	err := r.db.Preload("Event").Preload("Participant").First(&reg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) GetAllRegistrations(page, pageSize int, eventID, participantID *uint) ([]Registration, int64, error) {
	var regs []Registration
	var total int64

	query := r.db.Model(&Registration{})
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}
	if participantID != nil {
		query = query.Where("participant_id = ?", *participantID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Event").
		Preload("Participant").
		Order("id ASC").
		Offset(offset).Limit(pageSize).
		Find(&regs).Error
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *registrationRepository) DeleteRegistration(id uint) error {
	return r.db.Delete(&Registration{}, id).Error
}

func (r *registrationRepository) BulkCreate(regs []Registration) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range regs {
			if err := tx.Create(&regs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *registrationRepository) GetEventByID(id uint) (*event.Event, error) {
	var e event.Event
	err := r.db.First(&e, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *registrationRepository) GetUserByUsername(username string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *registrationRepository) GetExportRows() ([]ExportRow, error) {
	var rows []ExportRow
	err := r.db.Table("registrations").
		Select("registrations.id, events.name AS event_name, users.username AS participant, users.email").
		Joins("JOIN events ON events.id = registrations.event_id").
		Joins("JOIN users ON users.id = registrations.participant_id").
		Order("registrations.id ASC").
		Scan(&rows).Error
	return rows, err
}
