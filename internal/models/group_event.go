package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupEvent is a user-owned activity record. Every descriptive attribute is
// optional at rest; publishing demands the full set. Deleting never removes
// the row, it only stamps deleted_at, and the (name, start_date, end_date)
// unique index deliberately spans soft-deleted rows.
type GroupEvent struct {
	BaseModel
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Name         *string        `json:"name" gorm:"type:varchar(255);uniqueIndex:idx_group_events_name_dates"`
	Description  *string        `json:"description" gorm:"type:text"`
	StartDate    *Date          `json:"start_date" gorm:"type:date;uniqueIndex:idx_group_events_name_dates"`
	EndDate      *Date          `json:"end_date" gorm:"type:date;uniqueIndex:idx_group_events_name_dates"`
	Duration     *int           `json:"duration"`
	LocationName *string        `json:"location_name" gorm:"type:varchar(255)"`
	IsPublished  bool           `json:"is_published" gorm:"not null;default:false"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
