package payroll

import (
	"testing"
	"time"

	"github.com/kensetsu-apps/works-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func fact(day int, workHours, overtimeHours *int64) payroll.AssignmentFact {
	return payroll.AssignmentFact{
		OccurrenceDate: time.Date(2024, time.April, day, 0, 0, 0, 0, time.UTC),
		WorkHours:      workHours,
		OvertimeHours:  overtimeHours,
	}
}

func TestAggregateFactsEmpty(t *testing.T) {
	agg := AggregateFacts(nil)

	assert.Equal(t, int64(0), agg.SiteCount)
	assert.Nil(t, agg.WorkHours)
	assert.Nil(t, agg.OvertimeHours)
}

func TestAggregateFactsCountsSites(t *testing.T) {
	agg := AggregateFacts([]payroll.AssignmentFact{
		fact(1, nil, nil),
		fact(2, nil, nil),
		fact(3, nil, nil),
	})

	assert.Equal(t, int64(3), agg.SiteCount)
	assert.Nil(t, agg.WorkHours, "untracked hours must stay nil, not zero")
	assert.Nil(t, agg.OvertimeHours)
}

func TestAggregateFactsSumsHours(t *testing.T) {
	agg := AggregateFacts([]payroll.AssignmentFact{
		fact(1, int64Ptr(8), int64Ptr(2)),
		fact(2, int64Ptr(7), int64Ptr(2)),
	})

	assert.Equal(t, int64(2), agg.SiteCount)
	assert.Equal(t, int64(15), *agg.WorkHours)
	assert.Equal(t, int64(4), *agg.OvertimeHours)
}

func TestAggregateFactsPartialHourData(t *testing.T) {
	// One fact tracks hours, the other does not: totals cover the
	// tracked facts only, and overtime stays nil when nothing carries it.
	agg := AggregateFacts([]payroll.AssignmentFact{
		fact(1, int64Ptr(8), nil),
		fact(2, nil, nil),
	})

	assert.Equal(t, int64(2), agg.SiteCount)
	assert.Equal(t, int64(8), *agg.WorkHours)
	assert.Nil(t, agg.OvertimeHours)
}

func TestAggregateFactsTrackedZeroIsNotNil(t *testing.T) {
	agg := AggregateFacts([]payroll.AssignmentFact{
		fact(1, int64Ptr(0), int64Ptr(0)),
	})

	assert.NotNil(t, agg.WorkHours)
	assert.Equal(t, int64(0), *agg.WorkHours)
	assert.NotNil(t, agg.OvertimeHours)
	assert.Equal(t, int64(0), *agg.OvertimeHours)
}
