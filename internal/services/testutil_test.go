package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gatherly/backend/internal/models"
)

var testOwnerID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

func newTestService(t *testing.T) *GroupEventService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed opening in-memory sqlite database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.GroupEvent{}))

	return NewGroupEventService(db)
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func datePtr(d models.Date) *models.Date { return &d }

// fullPatch covers every client-writable attribute with a consistent
// schedule (2021-05-10 through 2021-05-12, three days).
func fullPatch() GroupEventPatch {
	return GroupEventPatch{
		Name:         strPtr("Developers Meetup 2021"),
		Description:  strPtr("Discuss the roadmap"),
		StartDate:    datePtr(models.NewDate(2021, 5, 10)),
		EndDate:      datePtr(models.NewDate(2021, 5, 12)),
		Duration:     intPtr(3),
		LocationName: strPtr("Barcelona"),
	}
}
