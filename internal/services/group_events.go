package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gatherly/backend/internal/models"
)

type GroupEventService struct {
	DB *gorm.DB
}

func NewGroupEventService(db *gorm.DB) *GroupEventService {
	return &GroupEventService{DB: db}
}

// GroupEventPatch carries the client-writable attributes for create and
// update. Nil means "not supplied": on update the existing value is kept.
type GroupEventPatch struct {
	Name         *string
	Description  *string
	StartDate    *models.Date
	EndDate      *models.Date
	Duration     *int
	LocationName *string
	IsPublished  *bool
}

func (p GroupEventPatch) apply(event *models.GroupEvent) {
	if p.Name != nil {
		event.Name = p.Name
	}
	if p.Description != nil {
		event.Description = p.Description
	}
	if p.StartDate != nil {
		event.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		event.EndDate = p.EndDate
	}
	if p.Duration != nil {
		event.Duration = p.Duration
	}
	if p.LocationName != nil {
		event.LocationName = p.LocationName
	}
	if p.IsPublished != nil {
		event.IsPublished = *p.IsPublished
	}
}

// Create builds a record owned by ownerID, resolves the date/duration trio,
// validates, and persists. Nothing is written when validation fails.
func (s *GroupEventService) Create(ownerID uuid.UUID, patch GroupEventPatch) (*models.GroupEvent, error) {
	event := models.GroupEvent{UserID: ownerID}
	patch.apply(&event)

	if err := s.prepare(&event); err != nil {
		return nil, err
	}

	if err := s.DB.Create(&event).Error; err != nil {
		return nil, s.translateSaveError(err)
	}
	return &event, nil
}

// Update merges the patch onto the stored record and re-runs the full
// resolve/validate pipeline. Untouched fields keep their prior values, so an
// already-published record updated with an unrelated field must still satisfy
// publish completeness with what it already has.
func (s *GroupEventService) Update(ownerID, id uuid.UUID, patch GroupEventPatch) (*models.GroupEvent, error) {
	event, err := s.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	patch.apply(event)
	if err := s.prepare(event); err != nil {
		return nil, err
	}

	if err := s.DB.Save(event).Error; err != nil {
		return nil, s.translateSaveError(err)
	}
	return event, nil
}

// SoftDelete stamps deleted_at and hides the record from every subsequent
// lookup. The row itself stays in storage. No validation re-runs here.
func (s *GroupEventService) SoftDelete(ownerID, id uuid.UUID) error {
	result := s.DB.Where("user_id = ?", ownerID).Delete(&models.GroupEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns the active record with the given id owned by ownerID. A
// soft-deleted or foreign-owned id reads the same as one that never existed.
func (s *GroupEventService) Get(ownerID, id uuid.UUID) (*models.GroupEvent, error) {
	var event models.GroupEvent
	err := s.DB.First(&event, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// List returns one page of the owner's active records, newest first, plus the
// total active count.
func (s *GroupEventService) List(ownerID uuid.UUID, page, limit int) ([]models.GroupEvent, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var total int64
	if err := s.DB.Model(&models.GroupEvent{}).Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.GroupEvent
	err := s.DB.
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (s *GroupEventService) prepare(event *models.GroupEvent) error {
	ResolveSchedule(event)
	verrs, err := s.validate(event)
	if err != nil {
		return err
	}
	if len(verrs) > 0 {
		return verrs
	}
	return nil
}

// translateSaveError maps a storage-level duplicate key (a uniqueness race
// that slipped past the in-process check) onto the same field error the
// validator would have produced.
func (s *GroupEventService) translateSaveError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ValidationErrors{{Field: "name", Detail: "has already been taken"}}
	}
	return err
}
