package taxonomy

import (
	"errors"

	"gorm.io/gorm"
)

type TaxonomyRepository interface {
	CreateCategory(category *EventCategory) error
	GetCategoryByID(id uint) (*EventCategory, error)
	GetAllCategories(page, pageSize int) ([]EventCategory, int64, error)
	UpdateCategory(category *EventCategory) error
	DeleteCategory(id uint) error

	CreateType(eventType *EventType) error
	GetTypeByID(id uint) (*EventType, error)
	GetAllTypes(page, pageSize int, categoryID *uint) ([]EventType, int64, error)
	UpdateType(eventType *EventType) error
	DeleteType(id uint) error
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) CreateCategory(category *EventCategory) error {
	return r.db.Create(category).Error
}

func (r *taxonomyRepository) GetCategoryByID(id uint) (*EventCategory, error) {
	var category EventCategory
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *taxonomyRepository) GetAllCategories(page, pageSize int) ([]EventCategory, int64, error) {
	var categories []EventCategory
	var total int64

	query := r.db.Model(&EventCategory{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *taxonomyRepository) UpdateCategory(category *EventCategory) error {
	return r.db.Save(category).Error
}

// DeleteCategory cascades to the category's event types. Events referencing a
// cascaded type keep existing with the type reference cleared, the same as
// when a type is deleted directly.
func (r *taxonomyRepository) DeleteCategory(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"UPDATE events SET event_type_id = NULL WHERE event_type_id IN (SELECT id FROM event_types WHERE event_category_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("event_category_id = ?", id).Delete(&EventType{}).Error; err != nil {
			return err
		}
		return tx.Delete(&EventCategory{}, id).Error
	})
}

func (r *taxonomyRepository) CreateType(eventType *EventType) error {
	return r.db.Create(eventType).Error
}

func (r *taxonomyRepository) GetTypeByID(id uint) (*EventType, error) {
	var eventType EventType
	err := r.db.Preload("EventCategory").First(&eventType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &eventType, nil
}

func (r *taxonomyRepository) GetAllTypes(page, pageSize int, categoryID *uint) ([]EventType, int64, error) {
	var types []EventType
	var total int64

	query := r.db.Model(&EventType{})
	if categoryID != nil {
		query = query.Where("event_category_id = ?", *categoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("EventCategory").Order("name ASC").Offset(offset).Limit(pageSize).Find(&types).Error; err != nil {
		return nil, 0, err
	}
	return types, total, nil
}

func (r *taxonomyRepository) UpdateType(eventType *EventType) error {
	return r.db.Save(eventType).Error
}

// DeleteType clears the type reference on events before removing the type,
// mirroring a SET NULL foreign key.
func (r *taxonomyRepository) DeleteType(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE events SET event_type_id = NULL WHERE event_type_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&EventType{}, id).Error
	})
}
