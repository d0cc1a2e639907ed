/*
Package payroll aggregates the attendance ledger into monthly pay
summaries.

PURPOSE:
  For each worker and calendar month: total normal and overtime hours,
  overtime split by multiplier tier, and pay derived from the worker's
  configured rate. A summary is a view, recomputed fresh on every
  request and never stored, so there is no staleness concern; only the
  formula has to be right.

RATE CONVERSION:
  HOURLY  rate used as-is
  DAILY   rate / 8
  MONTHLY (12 x salary) / (52 x 44) - the Singapore MOM statutory
          formula for the hourly-equivalent of a monthly salary

OVERTIME:
  The multiplier is selected per record day by the calendar rules:
  1.5x ordinary days, 2.0x Sundays and public holidays.

SEE ALSO:
  - attendance: AttendanceRecord, Worker
  - calendar: OvertimeMultiplier
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitecrew/attendance-engine/attendance"
	"github.com/sitecrew/attendance-engine/calendar"
)

// =============================================================================
// MONTHLY SUMMARY
// =============================================================================

// Summary is the derived per-worker monthly payroll view.
type Summary struct {
	WorkerID   string
	WorkerName string
	Year       int
	Month      time.Month

	NormalHours decimal.Decimal
	OTHours     decimal.Decimal // total overtime across tiers
	OTHours15   decimal.Decimal // overtime paid at 1.5x
	OTHours20   decimal.Decimal // overtime paid at 2.0x

	HourlyRate decimal.Decimal
	NormalPay  decimal.Decimal
	OTPay      decimal.Decimal
	TotalPay   decimal.Decimal
}

var (
	hoursPerDay     = decimal.NewFromInt(8)
	momNumerator    = decimal.NewFromInt(12)
	momDenominator  = decimal.NewFromInt(52 * 44)
	premiumOvertime = decimal.NewFromFloat(2.0)
)

// HourlyRate converts a worker's configured rate to an hourly-equivalent.
// Monthly salaries use the MOM statutory formula.
func HourlyRate(w attendance.Worker) decimal.Decimal {
	switch w.RateType {
	case attendance.RateHourly:
		return w.Rate
	case attendance.RateDaily:
		return w.Rate.Div(hoursPerDay)
	case attendance.RateMonthly:
		return w.Rate.Mul(momNumerator).Div(momDenominator)
	default:
		return decimal.Zero
	}
}

// ComputeMonthlySummary builds one summary per worker for the given
// month. Workers with no matching records yield a zero-filled summary,
// not an error.
func ComputeMonthlySummary(
	workers []attendance.Worker,
	records []attendance.AttendanceRecord,
	year int,
	month time.Month,
	cal calendar.HolidayCalendar,
) []Summary {
	byWorker := make(map[string][]attendance.AttendanceRecord)
	for _, r := range records {
		if r.Date.Year() != year || r.Date.Month() != month {
			continue
		}
		byWorker[r.WorkerID] = append(byWorker[r.WorkerID], r)
	}

	summaries := make([]Summary, 0, len(workers))
	for _, w := range workers {
		s := Summary{
			WorkerID:   w.ID,
			WorkerName: w.Name,
			Year:       year,
			Month:      month,
			HourlyRate: HourlyRate(w),
		}

		for _, r := range byWorker[w.ID] {
			s.NormalHours = s.NormalHours.Add(r.NormalHours)
			s.OTHours = s.OTHours.Add(r.OvertimeHours)

			mult := calendar.OvertimeMultiplier(cal, r.Date)
			if mult.Equal(premiumOvertime) {
				s.OTHours20 = s.OTHours20.Add(r.OvertimeHours)
			} else {
				s.OTHours15 = s.OTHours15.Add(r.OvertimeHours)
			}
			s.OTPay = s.OTPay.Add(r.OvertimeHours.Mul(s.HourlyRate).Mul(mult))
		}

		s.NormalPay = s.NormalHours.Mul(s.HourlyRate)
		s.TotalPay = s.NormalPay.Add(s.OTPay)
		summaries = append(summaries, s)
	}

	return summaries
}
