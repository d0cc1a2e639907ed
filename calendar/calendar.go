/*
Package calendar provides the time and calendar rules for attendance
and payroll.

PURPOSE:
  Pure functions over dates: public-holiday lookup, overtime-multiplier
  selection, and days-left/expiry checks for work-pass tracking. Nothing
  in this package touches storage or the clock directly; callers pass
  "now" explicitly so the rules stay deterministic and testable.

KEY CONCEPTS:
  - HolidayCalendar: injectable holiday lookup. The statutory holiday
    list is data, not code; implementations load it from configuration
    or from the holidays table.
  - OvertimeMultiplier: 2.0x on Sundays and public holidays, 1.5x on
    ordinary days.
  - DaysLeft / IsExpiringSoon: work-pass expiry checks used by the HR
    compliance screens.

SEE ALSO:
  - store/sqlite: database-backed HolidayCalendar
  - payroll: consumes OvertimeMultiplier per attendance record
*/
package calendar

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// HOLIDAY CALENDAR
// =============================================================================

// Holiday is a single gazetted public holiday.
type Holiday struct {
	ID   string
	Date time.Time
	Name string
}

// HolidayCalendar answers whether a date is a public holiday.
type HolidayCalendar interface {
	// IsPublicHoliday checks whether the calendar day of date is a holiday.
	IsPublicHoliday(date time.Time) bool

	// Holidays returns all holidays for a year, ordered by date.
	Holidays(year int) []Holiday
}

// StaticCalendar is an in-memory HolidayCalendar keyed by calendar day.
// Used for tests and for deployments that load the holiday list from a
// configuration file instead of the database.
type StaticCalendar struct {
	byDay map[string]Holiday
}

// NewStaticCalendar builds a calendar from a fixed holiday list.
func NewStaticCalendar(holidays []Holiday) *StaticCalendar {
	c := &StaticCalendar{byDay: make(map[string]Holiday, len(holidays))}
	for _, h := range holidays {
		c.byDay[dayKey(h.Date)] = h
	}
	return c
}

func (c *StaticCalendar) IsPublicHoliday(date time.Time) bool {
	_, ok := c.byDay[dayKey(date)]
	return ok
}

func (c *StaticCalendar) Holidays(year int) []Holiday {
	var out []Holiday
	for _, h := range c.byDay {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	sortHolidays(out)
	return out
}

func sortHolidays(hs []Holiday) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].Date.Before(hs[j].Date) })
}

// dayKey normalizes to UTC so a timestamp near midnight classifies the
// same way here and in the database-backed calendar.
func dayKey(t time.Time) string { return t.UTC().Format("2006-01-02") }

// NoHolidays is a HolidayCalendar with an empty holiday list.
type NoHolidays struct{}

func (NoHolidays) IsPublicHoliday(time.Time) bool { return false }
func (NoHolidays) Holidays(int) []Holiday         { return nil }

// =============================================================================
// OVERTIME MULTIPLIER
// =============================================================================

var (
	multiplierOrdinary = decimal.NewFromFloat(1.5)
	multiplierPremium  = decimal.NewFromFloat(2.0)
)

// OvertimeMultiplier returns the statutory overtime rate multiplier for a
// working day: 2.0 on Sundays and public holidays, 1.5 otherwise.
func OvertimeMultiplier(cal HolidayCalendar, date time.Time) decimal.Decimal {
	if date.Weekday() == time.Sunday {
		return multiplierPremium
	}
	if cal != nil && cal.IsPublicHoliday(date) {
		return multiplierPremium
	}
	return multiplierOrdinary
}

// =============================================================================
// EXPIRY CHECKS
// =============================================================================

// ExpiryWarningDays is the threshold below which a work pass counts as
// expiring soon.
const ExpiryWarningDays = 60

// DaysLeft returns the number of whole-or-partial days between now and
// date, floored at 0. A date in the past yields 0.
func DaysLeft(now, date time.Time) int {
	diff := date.Sub(now)
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// IsExpiringSoon reports whether date is within the expiry warning window.
func IsExpiringSoon(now, date time.Time) bool {
	return DaysLeft(now, date) < ExpiryWarningDays
}
