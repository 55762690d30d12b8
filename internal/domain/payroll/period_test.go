package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriodMonthly(t *testing.T) {
	period, err := ResolvePeriod(PeriodTypeMonthly, date(2024, time.March, 15))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.March, 1), period.StartDate)
	assert.Equal(t, date(2024, time.March, 31), period.EndDate)
}

func TestResolvePeriodMonthlyLeapFebruary(t *testing.T) {
	period, err := ResolvePeriod(PeriodTypeMonthly, date(2024, time.February, 10))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.February, 1), period.StartDate)
	assert.Equal(t, date(2024, time.February, 29), period.EndDate)
}

func TestResolvePeriodMonthlyAtBounds(t *testing.T) {
	for _, anchor := range []time.Time{date(2024, time.April, 1), date(2024, time.April, 30)} {
		period, err := ResolvePeriod(PeriodTypeMonthly, anchor)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.April, 1), period.StartDate)
		assert.Equal(t, date(2024, time.April, 30), period.EndDate)
	}
}

func TestResolvePeriodWeeklyMondayStart(t *testing.T) {
	// 2024-04-03 is a Wednesday; its week is Mon 2024-04-01 .. Sun 2024-04-07
	period, err := ResolvePeriod(PeriodTypeWeekly, date(2024, time.April, 3))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.April, 1), period.StartDate)
	assert.Equal(t, date(2024, time.April, 7), period.EndDate)
	assert.Equal(t, time.Monday, period.StartDate.Weekday())
	assert.Equal(t, time.Sunday, period.EndDate.Weekday())
}

func TestResolvePeriodWeeklyAnchorOnMonday(t *testing.T) {
	period, err := ResolvePeriod(PeriodTypeWeekly, date(2024, time.April, 1))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.April, 1), period.StartDate)
	assert.Equal(t, date(2024, time.April, 7), period.EndDate)
}

func TestResolvePeriodWeeklyAnchorOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	period, err := ResolvePeriod(PeriodTypeWeekly, date(2024, time.April, 7))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.April, 1), period.StartDate)
	assert.Equal(t, date(2024, time.April, 7), period.EndDate)
}

func TestResolvePeriodWeeklyCrossesMonthBoundary(t *testing.T) {
	// 2024-03-30 is a Saturday; the window runs Mon 2024-03-25 .. Sun 2024-03-31
	period, err := ResolvePeriod(PeriodTypeWeekly, date(2024, time.March, 30))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.March, 25), period.StartDate)
	assert.Equal(t, date(2024, time.March, 31), period.EndDate)
}

func TestResolvePeriodDiscardsTimeOfDay(t *testing.T) {
	anchor := time.Date(2024, time.April, 3, 23, 59, 59, 0, time.UTC)
	period, err := ResolvePeriod(PeriodTypeWeekly, anchor)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.April, 1), period.StartDate)
}

func TestResolvePeriodZeroAnchor(t *testing.T) {
	_, err := ResolvePeriod(PeriodTypeMonthly, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestResolvePeriodUnknownType(t *testing.T) {
	_, err := ResolvePeriod(PeriodType("biweekly"), date(2024, time.April, 3))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPeriodContains(t *testing.T) {
	period := Period{StartDate: date(2024, time.April, 1), EndDate: date(2024, time.April, 7)}

	assert.True(t, period.Contains(date(2024, time.April, 1)))
	assert.True(t, period.Contains(date(2024, time.April, 7)))
	assert.False(t, period.Contains(date(2024, time.March, 31)))
	assert.False(t, period.Contains(date(2024, time.April, 8)))
}
