package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCalculate(t *testing.T) {
	derived, err := Calculate(
		RawAggregate{SiteCount: 3, OvertimeHours: int64Ptr(4)},
		PayRates{UnitPay: int64Ptr(15000), HourlyOvertimePay: int64Ptr(1500)},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(45000), derived.SitePay)
	assert.Equal(t, int64(6000), derived.Overtime)
	assert.Equal(t, int64(51000), derived.TotalAmount)
}

func TestCalculateNilOvertimeHours(t *testing.T) {
	derived, err := Calculate(
		RawAggregate{SiteCount: 5},
		PayRates{UnitPay: int64Ptr(12000), HourlyOvertimePay: int64Ptr(2000)},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(60000), derived.SitePay)
	assert.Equal(t, int64(0), derived.Overtime)
	assert.Equal(t, int64(60000), derived.TotalAmount)
}

func TestCalculateNilRatesDefaultToZero(t *testing.T) {
	derived, err := Calculate(
		RawAggregate{SiteCount: 4, OvertimeHours: int64Ptr(2)},
		PayRates{},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(0), derived.SitePay)
	assert.Equal(t, int64(0), derived.Overtime)
	assert.Equal(t, int64(0), derived.TotalAmount)
}

func TestCalculateZeroAssignments(t *testing.T) {
	derived, err := Calculate(
		RawAggregate{},
		PayRates{UnitPay: int64Ptr(15000), HourlyOvertimePay: int64Ptr(1500)},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(0), derived.TotalAmount)
}

func TestCalculateNegativeUnitPay(t *testing.T) {
	_, err := Calculate(
		RawAggregate{SiteCount: 1},
		PayRates{UnitPay: int64Ptr(-1)},
	)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestCalculateNegativeOvertimeRate(t *testing.T) {
	_, err := Calculate(
		RawAggregate{SiteCount: 1, OvertimeHours: int64Ptr(1)},
		PayRates{UnitPay: int64Ptr(10000), HourlyOvertimePay: int64Ptr(-500)},
	)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestCalculateTotalIsSumOfParts(t *testing.T) {
	cases := []struct {
		siteCount int64
		otHours   int64
		unitPay   int64
		otRate    int64
	}{
		{0, 0, 0, 0},
		{1, 0, 15000, 1500},
		{20, 12, 18000, 2250},
		{7, 3, 9800, 1200},
	}

	for _, tc := range cases {
		derived, err := Calculate(
			RawAggregate{SiteCount: tc.siteCount, OvertimeHours: int64Ptr(tc.otHours)},
			PayRates{UnitPay: int64Ptr(tc.unitPay), HourlyOvertimePay: int64Ptr(tc.otRate)},
		)
		require.NoError(t, err)
		assert.Equal(t, tc.siteCount*tc.unitPay, derived.SitePay)
		assert.Equal(t, tc.otHours*tc.otRate, derived.Overtime)
		assert.Equal(t, derived.SitePay+derived.Overtime, derived.TotalAmount)
	}
}
