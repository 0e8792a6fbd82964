package event

import (
	"errors"

	"github.com/RohanMehta-11/festly/internal/user"
	"gorm.io/gorm"
)

// ErrProtectedReference is returned when a delete is blocked by a dependent
// delete-protected relationship, e.g. an event that has a winners record.
var ErrProtectedReference = errors.New("record is referenced by a delete-protected relation")

type EventRepository interface {
	CreateEvent(event *Event, actorID uint) error
	GetEventByID(id uint) (*Event, error)
	GetAllEvents(page, pageSize int, searchTerm string, eventTypeID, clubID *uint) ([]Event, int64, error)
	UpdateEvent(event *Event, actorID uint) error
	DeleteEvent(id uint, actorID uint) error

	GetCoordinators(ids []uint) ([]user.User, error)
	GetHistory(eventID uint) ([]EventHistory, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(event *Event, actorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return tx.Create(snapshot(event, HistoryCreate, actorID)).Error
	})
}

func (r *eventRepository) GetEventByID(id uint) (*Event, error) {
	var event Event
	err := r.db.
		Preload("Coordinators").
		Preload("EventType").
		Preload("Club").
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetAllEvents(page, pageSize int, searchTerm string, eventTypeID, clubID *uint) ([]Event, int64, error) {
	var events []Event
	var total int64

	query := r.db.Model(&Event{})
	if searchTerm != "" {
		query = query.Where("name LIKE ? OR short_description LIKE ?", "%"+searchTerm+"%", "%"+searchTerm+"%")
	}
	if eventTypeID != nil {
		query = query.Where("event_type_id = ?", *eventTypeID)
	}
	if clubID != nil {
		query = query.Where("club_id = ?", *clubID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("EventType").
		Preload("Club").
		Order("date_time ASC").
		Offset(offset).Limit(pageSize).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// UpdateEvent persists the event, replaces its coordinator set and appends an
// immutable history snapshot, all in one transaction.
func (r *eventRepository) UpdateEvent(event *Event, actorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Coordinators").Save(event).Error; err != nil {
			return err
		}
		if err := tx.Model(event).Association("Coordinators").Replace(&event.Coordinators); err != nil {
			return err
		}
		return tx.Create(snapshot(event, HistoryUpdate, actorID)).Error
	})
}

// DeleteEvent removes the event and cascades to its registrations. The delete
// is rejected with ErrProtectedReference while a winners record references
// the event.
func (r *eventRepository) DeleteEvent(id uint, actorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}

		var winnersCount int64
		if err := tx.Table("winners").Where("event_id = ?", id).Count(&winnersCount).Error; err != nil {
			return err
		}
		if winnersCount > 0 {
			return ErrProtectedReference
		}

		if err := tx.Exec("DELETE FROM registrations WHERE event_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM event_coordinators WHERE event_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Create(snapshot(&event, HistoryDelete, actorID)).Error; err != nil {
			return err
		}
		return tx.Delete(&Event{}, id).Error
	})
}

func (r *eventRepository) GetCoordinators(ids []uint) ([]user.User, error) {
	var coordinators []user.User
	if len(ids) == 0 {
		return coordinators, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&coordinators).Error
	if err != nil {
		return nil, err
	}
	if len(coordinators) != len(ids) {
		return nil, gorm.ErrRecordNotFound
	}
	return coordinators, nil
}

func (r *eventRepository) GetHistory(eventID uint) ([]EventHistory, error) {
	var history []EventHistory
	err := r.db.Where("event_id = ?", eventID).Order("id ASC").Find(&history).Error
	return history, err
}
