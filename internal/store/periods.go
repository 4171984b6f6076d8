package store

import (
	"time"

	"gcoop/precargadas-csv/internal/dateutils"
	"gcoop/precargadas-csv/internal/models"
)

// CalendarPeriods resolves accounting periods as calendar months, identified
// as "YYYY-MM". Implements models.PeriodLookup.
type CalendarPeriods struct{}

// Find returns the monthly period containing the date.
func (CalendarPeriods) Find(date time.Time) (models.Period, error) {
	start := dateutils.MonthStart(date)
	return models.Period{
		ID:        start.Format("2006-01"),
		StartDate: start,
		EndDate:   dateutils.MonthEnd(date),
	}, nil
}
