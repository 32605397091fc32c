package services

import "github.com/gatherly/backend/internal/models"

// ResolveSchedule fills in the missing member of {start_date, end_date,
// duration} when exactly two are known. Duration counts days inclusively:
// a range starting and ending on the same date has duration 1.
//
// Any other combination is left untouched, which also makes the function
// idempotent: once all three are set no branch fires. Inconsistent input is
// not an error here; validation picks it up afterwards.
func ResolveSchedule(event *models.GroupEvent) {
	switch {
	case event.StartDate != nil && event.EndDate != nil && event.Duration == nil:
		duration := event.StartDate.DaysUntil(*event.EndDate) + 1
		event.Duration = &duration
	case event.StartDate != nil && event.EndDate == nil && event.Duration != nil:
		end := event.StartDate.AddDays(*event.Duration - 1)
		event.EndDate = &end
	case event.StartDate == nil && event.EndDate != nil && event.Duration != nil:
		start := event.EndDate.AddDays(-(*event.Duration - 1))
		event.StartDate = &start
	}
}
