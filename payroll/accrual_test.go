package payroll_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecrew/attendance-engine/attendance"
	"github.com/sitecrew/attendance-engine/calendar"
	"github.com/sitecrew/attendance-engine/payroll"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func monthlyWorker(id string, salary string) attendance.Worker {
	return attendance.Worker{ID: id, Name: id, RateType: attendance.RateMonthly, Rate: dec(salary)}
}

func rec(workerID string, date time.Time, normal, ot string) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		ID:            workerID + "-" + date.Format("2006-01-02"),
		WorkerID:      workerID,
		Date:          date,
		NormalHours:   dec(normal),
		OvertimeHours: dec(ot),
	}
}

// =============================================================================
// RATE CONVERSION
// =============================================================================

func TestHourlyRate_ByRateType(t *testing.T) {
	hourly := attendance.Worker{RateType: attendance.RateHourly, Rate: dec("15")}
	assert.True(t, payroll.HourlyRate(hourly).Equal(dec("15")))

	daily := attendance.Worker{RateType: attendance.RateDaily, Rate: dec("120")}
	assert.True(t, payroll.HourlyRate(daily).Equal(dec("15")))

	// MOM formula: 12 x 4400 / (52 x 44) = 52800 / 2288 = 23.0769...
	monthly := attendance.Worker{RateType: attendance.RateMonthly, Rate: dec("4400")}
	rate := payroll.HourlyRate(monthly)
	assert.True(t, rate.Round(2).Equal(dec("23.08")), "MOM hourly rate = %s", rate)
}

// =============================================================================
// MONTHLY SUMMARY
// =============================================================================

func TestComputeMonthlySummary_MonthlyWorkerOrdinaryDay(t *testing.T) {
	// GIVEN: monthly salary 4400 and one 8h/0 OT record on an ordinary Tuesday
	// THEN: normalPay = 8 x 23.0769... ~= 184.6, totalPay equals it

	tuesday := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, tuesday.Weekday())

	out := payroll.ComputeMonthlySummary(
		[]attendance.Worker{monthlyWorker("w1", "4400")},
		[]attendance.AttendanceRecord{rec("w1", tuesday, "8", "0")},
		2025, time.June, calendar.NoHolidays{},
	)

	require.Len(t, out, 1)
	s := out[0]
	assert.True(t, s.NormalHours.Equal(dec("8")))
	assert.True(t, s.NormalPay.Round(1).Equal(dec("184.6")), "normal pay = %s", s.NormalPay)
	assert.True(t, s.TotalPay.Round(1).Equal(dec("184.6")))
	assert.True(t, s.OTPay.IsZero())
}

func TestComputeMonthlySummary_OvertimeTiers(t *testing.T) {
	// GIVEN: an hourly worker at $10 with 2h OT on a Tuesday and 2h OT on a Sunday
	// THEN: OT pay = 2x10x1.5 + 2x10x2.0 = 70, tiers reported separately

	tuesday := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	worker := attendance.Worker{ID: "w1", Name: "w1", RateType: attendance.RateHourly, Rate: dec("10")}
	out := payroll.ComputeMonthlySummary(
		[]attendance.Worker{worker},
		[]attendance.AttendanceRecord{
			rec("w1", tuesday, "8", "2"),
			rec("w1", sunday, "8", "2"),
		},
		2025, time.June, calendar.NoHolidays{},
	)

	require.Len(t, out, 1)
	s := out[0]
	assert.True(t, s.OTHours15.Equal(dec("2")))
	assert.True(t, s.OTHours20.Equal(dec("2")))
	assert.True(t, s.OTHours.Equal(dec("4")))
	assert.True(t, s.OTPay.Equal(dec("70")), "ot pay = %s", s.OTPay)
	assert.True(t, s.TotalPay.Equal(dec("230")), "total = %s", s.TotalPay)
}

func TestComputeMonthlySummary_HolidayPaysPremium(t *testing.T) {
	// A gazetted holiday on a weekday pays 2.0x.

	holiday := time.Date(2025, time.August, 8, 0, 0, 0, 0, time.UTC) // a Friday
	cal := calendar.NewStaticCalendar([]calendar.Holiday{{ID: "ph", Date: holiday, Name: "National Day (observed)"}})

	worker := attendance.Worker{ID: "w1", Name: "w1", RateType: attendance.RateHourly, Rate: dec("10")}
	out := payroll.ComputeMonthlySummary(
		[]attendance.Worker{worker},
		[]attendance.AttendanceRecord{rec("w1", holiday, "8", "1")},
		2025, time.August, cal,
	)

	require.Len(t, out, 1)
	assert.True(t, out[0].OTHours20.Equal(dec("1")))
	assert.True(t, out[0].OTPay.Equal(dec("20")))
}

func TestComputeMonthlySummary_NoRecordsYieldsZeroFill(t *testing.T) {
	out := payroll.ComputeMonthlySummary(
		[]attendance.Worker{monthlyWorker("w1", "4400")},
		nil,
		2025, time.June, calendar.NoHolidays{},
	)

	require.Len(t, out, 1)
	assert.True(t, out[0].NormalHours.IsZero())
	assert.True(t, out[0].TotalPay.IsZero())
	assert.False(t, out[0].HourlyRate.IsZero(), "rate still derived for zero-fill summaries")
}

func TestComputeMonthlySummary_FiltersByMonth(t *testing.T) {
	// Records from other months or years never leak into the summary.

	worker := attendance.Worker{ID: "w1", Name: "w1", RateType: attendance.RateHourly, Rate: dec("10")}
	june := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	may := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	out := payroll.ComputeMonthlySummary(
		[]attendance.Worker{worker},
		[]attendance.AttendanceRecord{
			rec("w1", june, "8", "0"),
			rec("w1", may, "8", "0"),
			rec("w1", lastYear, "8", "0"),
		},
		2025, time.June, calendar.NoHolidays{},
	)

	require.Len(t, out, 1)
	assert.True(t, out[0].NormalHours.Equal(dec("8")), "only June 2025 counts")
}
