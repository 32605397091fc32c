package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gatherly/backend/internal/models"
)

// attributeCheck names one user-facing attribute and how to tell whether it
// is blank. Keeping this a fixed list (rather than reflecting over the
// struct) makes the id/user_id/timestamps/is_published/deleted_at skip set
// explicit.
type attributeCheck struct {
	name  string
	blank func(*models.GroupEvent) bool
}

var groupEventAttributes = []attributeCheck{
	{"name", func(e *models.GroupEvent) bool { return blankString(e.Name) }},
	{"description", func(e *models.GroupEvent) bool { return blankString(e.Description) }},
	{"start_date", func(e *models.GroupEvent) bool { return e.StartDate == nil }},
	{"end_date", func(e *models.GroupEvent) bool { return e.EndDate == nil }},
	{"duration", func(e *models.GroupEvent) bool { return e.Duration == nil }},
	{"location_name", func(e *models.GroupEvent) bool { return blankString(e.LocationName) }},
}

func blankString(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// validate runs every rule against the already-resolved candidate and
// accumulates the violations. The second return value reports a storage
// failure during the uniqueness lookup, not a rule violation.
func (s *GroupEventService) validate(event *models.GroupEvent) (ValidationErrors, error) {
	var verrs ValidationErrors
	verrs = append(verrs, validateOwner(event)...)

	unique, err := s.validateUniqueness(event)
	if err != nil {
		return nil, err
	}
	verrs = append(verrs, unique...)

	verrs = append(verrs, validatePublishCompleteness(event)...)
	verrs = append(verrs, validateDurationShape(event)...)
	verrs = append(verrs, validateAnyAttributePresence(event)...)
	verrs = append(verrs, validateScheduleConsistency(event)...)
	return verrs, nil
}

func validateOwner(event *models.GroupEvent) ValidationErrors {
	if event.UserID == uuid.Nil {
		return ValidationErrors{{Field: "user_id", Detail: "can't be blank"}}
	}
	return nil
}

// validateUniqueness checks (name, start_date, end_date) against every other
// record, soft-deleted ones included: the DB index is not scoped to deletion
// state, so neither is this check. Blank names are skipped; SQL NULLs never
// collide in the index and sparse records must not block each other.
func (s *GroupEventService) validateUniqueness(event *models.GroupEvent) (ValidationErrors, error) {
	if blankString(event.Name) {
		return nil, nil
	}

	query := s.DB.Unscoped().Model(&models.GroupEvent{}).Where("name = ?", *event.Name)
	query = whereNullableDate(query, "start_date", event.StartDate)
	query = whereNullableDate(query, "end_date", event.EndDate)
	if event.ID != uuid.Nil {
		query = query.Where("id <> ?", event.ID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return ValidationErrors{{Field: "name", Detail: "has already been taken"}}, nil
	}
	return nil, nil
}

func whereNullableDate(query *gorm.DB, column string, date *models.Date) *gorm.DB {
	if date == nil {
		return query.Where(column + " IS NULL")
	}
	return query.Where(column+" = ?", *date)
}

// validatePublishCompleteness runs against the post-resolution state, so a
// date trio that could be derived counts as present.
func validatePublishCompleteness(event *models.GroupEvent) ValidationErrors {
	if !event.IsPublished {
		return nil
	}

	var verrs ValidationErrors
	for _, attr := range groupEventAttributes {
		if attr.blank(event) {
			verrs = append(verrs, FieldError{Field: attr.name, Detail: "can't be blank"})
		}
	}
	return verrs
}

func validateDurationShape(event *models.GroupEvent) ValidationErrors {
	if event.Duration != nil && *event.Duration <= 0 {
		return ValidationErrors{{Field: "duration", Detail: "must be greater than 0"}}
	}
	return nil
}

// validateAnyAttributePresence rejects records that carry nothing beyond the
// bookkeeping fields. The message enumerates what was expected.
func validateAnyAttributePresence(event *models.GroupEvent) ValidationErrors {
	names := make([]string, len(groupEventAttributes))
	for i, attr := range groupEventAttributes {
		if !attr.blank(event) {
			return nil
		}
		names[i] = attr.name
	}
	detail := "Please provide at least one of " + strings.Join(names, ", ")
	return ValidationErrors{{Field: BaseField, Detail: detail}}
}

func validateScheduleConsistency(event *models.GroupEvent) ValidationErrors {
	if event.StartDate == nil || event.EndDate == nil {
		return nil
	}
	if event.StartDate.After(*event.EndDate) {
		return ValidationErrors{{Field: "end_date", Detail: "should be greater than start date"}}
	}
	if event.Duration != nil && *event.Duration != event.StartDate.DaysUntil(*event.EndDate)+1 {
		return ValidationErrors{{Field: "duration", Detail: "is not matching with start date and end date"}}
	}
	return nil
}
