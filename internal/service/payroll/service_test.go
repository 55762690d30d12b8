package payroll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kensetsu-apps/works-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func int64Ptr(v int64) *int64 {
	return &v
}

type fakePayrollRepo struct {
	mu      sync.Mutex
	records map[string]payroll.Payroll
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]payroll.Payroll)}
}

func (f *fakePayrollRepo) periodKey(employeeID string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func (f *fakePayrollRepo) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := f.periodKey(record.EmployeeID, record.StartDate, record.EndDate)
	for _, existing := range f.records {
		if f.periodKey(existing.EmployeeID, existing.StartDate, existing.EndDate) == key {
			return payroll.Payroll{}, payroll.ErrRecomputeConflict
		}
	}

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) Replace(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.records[record.ID]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	if existing.Status != payroll.PayrollStatusPending {
		return payroll.Payroll{}, payroll.ErrPayrollTerminal
	}

	existing.SiteCount = record.SiteCount
	existing.WorkHours = record.WorkHours
	existing.OvertimeHours = record.OvertimeHours
	existing.UnitPay = record.UnitPay
	existing.SitePay = record.SitePay
	existing.HourlyOvertimePay = record.HourlyOvertimePay
	existing.Overtime = record.Overtime
	existing.TotalAmount = record.TotalAmount
	existing.UpdatedAt = time.Now()
	f.records[record.ID] = existing
	return existing, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.records[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return record, nil
}

func (f *fakePayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := f.periodKey(employeeID, start, end)
	for _, record := range f.records {
		if f.periodKey(record.EmployeeID, record.StartDate, record.EndDate) == key {
			return record, nil
		}
	}
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var records []payroll.Payroll
	for _, record := range f.records {
		if filter.EmployeeID != nil && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(record.Status) != *filter.Status {
			continue
		}
		records = append(records, record)
	}
	return records, int64(len(records)), nil
}

func (f *fakePayrollRepo) MarkPaid(ctx context.Context, id string, paymentDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	if record.Status != payroll.PayrollStatusPending {
		return payroll.ErrInvalidTransition
	}
	record.Status = payroll.PayrollStatusPaid
	record.PaymentDate = &paymentDate
	f.records[id] = record
	return nil
}

func (f *fakePayrollRepo) Cancel(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	if record.Status != payroll.PayrollStatusPending {
		return payroll.ErrInvalidTransition
	}
	record.Status = payroll.PayrollStatusCancelled
	f.records[id] = record
	return nil
}

func (f *fakePayrollRepo) UpdateNotes(ctx context.Context, id string, notes *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	record.Notes = notes
	f.records[id] = record
	return nil
}

func (f *fakePayrollRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

type fakeRateSource struct {
	mu    sync.Mutex
	rates map[string]payroll.PayRates
}

func (f *fakeRateSource) GetPayRates(ctx context.Context, employeeID string) (payroll.PayRates, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rates, ok := f.rates[employeeID]
	if !ok {
		return payroll.PayRates{}, payroll.ErrEmployeeNotFound
	}
	return rates, nil
}

type fakeAssignmentSource struct {
	mu    sync.Mutex
	facts map[string][]payroll.AssignmentFact
	fail  bool
}

func (f *fakeAssignmentSource) ListAssignmentFacts(ctx context.Context, employeeID string, start, end time.Time) ([]payroll.AssignmentFact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return nil, errors.New("assignment store unavailable")
	}

	var inWindow []payroll.AssignmentFact
	for _, fact := range f.facts[employeeID] {
		if fact.OccurrenceDate.Before(start) || fact.OccurrenceDate.After(end) {
			continue
		}
		inWindow = append(inWindow, fact)
	}
	return inWindow, nil
}

type testEnv struct {
	repo       *fakePayrollRepo
	rates      *fakeRateSource
	facts      *fakeAssignmentSource
	service    payroll.PayrollService
	employeeID string
}

func newTestEnv() *testEnv {
	employeeID := uuid.NewString()
	repo := newFakePayrollRepo()
	rates := &fakeRateSource{rates: map[string]payroll.PayRates{
		employeeID: {UnitPay: int64Ptr(15000), HourlyOvertimePay: int64Ptr(1500)},
	}}
	facts := &fakeAssignmentSource{facts: map[string][]payroll.AssignmentFact{
		employeeID: {
			fact(1, int64Ptr(8), int64Ptr(1)),
			fact(3, int64Ptr(8), int64Ptr(3)),
			fact(5, int64Ptr(8), nil),
		},
	}}

	return &testEnv{
		repo:       repo,
		rates:      rates,
		facts:      facts,
		service:    NewPayrollService(nil, repo, rates, facts),
		employeeID: employeeID,
	}
}

func (e *testEnv) computeWeekly(t *testing.T) payroll.PayrollResponse {
	t.Helper()
	result, err := e.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		EmployeeID: e.employeeID,
		PeriodType: "weekly",
		AnchorDate: "2024-04-03",
	})
	require.NoError(t, err)
	return result
}

func TestComputePayrollCreatesPendingRecord(t *testing.T) {
	env := newTestEnv()

	result := env.computeWeekly(t)

	assert.Equal(t, "2024-04-01", result.StartDate)
	assert.Equal(t, "2024-04-07", result.EndDate)
	assert.Equal(t, int64(3), result.SiteCount)
	assert.Equal(t, int64(24), *result.WorkHours)
	assert.Equal(t, int64(4), *result.OvertimeHours)
	assert.Equal(t, int64(15000), result.UnitPay)
	assert.Equal(t, int64(45000), result.SitePay)
	assert.Equal(t, int64(1500), result.HourlyOvertimePay)
	assert.Equal(t, int64(6000), result.Overtime)
	assert.Equal(t, int64(51000), result.TotalAmount)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, 1, env.repo.count())
}

func TestComputePayrollIdempotent(t *testing.T) {
	env := newTestEnv()

	first := env.computeWeekly(t)
	second := env.computeWeekly(t)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TotalAmount, second.TotalAmount)
	assert.Equal(t, 1, env.repo.count())
}

func TestComputePayrollRecomputePicksUpChanges(t *testing.T) {
	env := newTestEnv()

	first := env.computeWeekly(t)

	env.facts.mu.Lock()
	env.facts.facts[env.employeeID] = append(env.facts.facts[env.employeeID], fact(6, int64Ptr(8), nil))
	env.facts.mu.Unlock()

	second := env.computeWeekly(t)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(4), second.SiteCount)
	assert.Equal(t, int64(60000), second.SitePay)
	assert.Equal(t, int64(66000), second.TotalAmount)
	assert.Equal(t, 1, env.repo.count())
}

func TestComputePayrollRecomputePreservesNotes(t *testing.T) {
	env := newTestEnv()

	first := env.computeWeekly(t)
	notes := "confirmed with site manager"
	require.NoError(t, env.service.UpdateNotes(context.Background(), payroll.UpdateNotesRequest{ID: first.ID, Notes: &notes}))

	second := env.computeWeekly(t)

	require.NotNil(t, second.Notes)
	assert.Equal(t, notes, *second.Notes)
}

func TestComputePayrollSnapshotsRates(t *testing.T) {
	env := newTestEnv()

	first := env.computeWeekly(t)

	// A later rate change does not touch an existing record until recompute
	env.rates.mu.Lock()
	env.rates.rates[env.employeeID] = payroll.PayRates{UnitPay: int64Ptr(16000), HourlyOvertimePay: int64Ptr(1500)}
	env.rates.mu.Unlock()

	stored, err := env.service.GetPayroll(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), stored.UnitPay)

	second := env.computeWeekly(t)
	assert.Equal(t, int64(16000), second.UnitPay)
	assert.Equal(t, int64(48000), second.SitePay)
}

func TestComputePayrollZeroAssignments(t *testing.T) {
	env := newTestEnv()
	env.facts.facts[env.employeeID] = nil

	result := env.computeWeekly(t)

	assert.Equal(t, int64(0), result.SiteCount)
	assert.Nil(t, result.WorkHours)
	assert.Nil(t, result.OvertimeHours)
	assert.Equal(t, int64(0), result.TotalAmount)
	assert.Equal(t, "pending", result.Status)
}

func TestComputePayrollTerminalRecord(t *testing.T) {
	env := newTestEnv()

	result := env.computeWeekly(t)
	require.NoError(t, env.service.MarkPaid(context.Background(), payroll.MarkPaidRequest{ID: result.ID}))

	_, err := env.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		EmployeeID: env.employeeID,
		PeriodType: "weekly",
		AnchorDate: "2024-04-03",
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollTerminal)
}

func TestComputePayrollCancelledRecordIsTerminal(t *testing.T) {
	env := newTestEnv()

	result := env.computeWeekly(t)
	require.NoError(t, env.service.Cancel(context.Background(), result.ID))

	_, err := env.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		EmployeeID: env.employeeID,
		PeriodType: "weekly",
		AnchorDate: "2024-04-03",
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollTerminal)
}

func TestComputePayrollUnknownEmployee(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		EmployeeID: uuid.NewString(),
		PeriodType: "weekly",
		AnchorDate: "2024-04-03",
	})
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
	assert.Equal(t, 0, env.repo.count())
}

func TestComputePayrollAssignmentSourceFailure(t *testing.T) {
	env := newTestEnv()
	env.facts.fail = true

	_, err := env.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		EmployeeID: env.employeeID,
		PeriodType: "weekly",
		AnchorDate: "2024-04-03",
	})
	assert.ErrorIs(t, err, payroll.ErrAggregationFailed)
	assert.Equal(t, 0, env.repo.count(), "no partial record on aggregation failure")
}

func TestComputePayrollNegativeRate(t *testing.T) {
	env := newTestEnv()
	env.rates.rates[env.employeeID] = payroll.PayRates{UnitPay: int64Ptr(-100)}

	_, err := env.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		EmployeeID: env.employeeID,
		PeriodType: "weekly",
		AnchorDate: "2024-04-03",
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidRate)
}

func TestComputePayrollInvalidPeriodType(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		EmployeeID: env.employeeID,
		PeriodType: "biweekly",
		AnchorDate: "2024-04-03",
	})
	assert.Error(t, err)
	assert.Equal(t, 0, env.repo.count())
}

func TestMarkPaidTransition(t *testing.T) {
	env := newTestEnv()

	result := env.computeWeekly(t)
	paymentDate := "2024-04-10"
	require.NoError(t, env.service.MarkPaid(context.Background(), payroll.MarkPaidRequest{ID: result.ID, PaymentDate: &paymentDate}))

	stored, err := env.service.GetPayroll(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", stored.Status)
	require.NotNil(t, stored.PaymentDate)
	assert.Equal(t, "2024-04-10", *stored.PaymentDate)

	// Terminal states reject any further transition
	err = env.service.MarkPaid(context.Background(), payroll.MarkPaidRequest{ID: result.ID, PaymentDate: &paymentDate})
	assert.ErrorIs(t, err, payroll.ErrInvalidTransition)
	err = env.service.Cancel(context.Background(), result.ID)
	assert.ErrorIs(t, err, payroll.ErrInvalidTransition)
}

func TestCancelTransition(t *testing.T) {
	env := newTestEnv()

	result := env.computeWeekly(t)
	require.NoError(t, env.service.Cancel(context.Background(), result.ID))

	stored, err := env.service.GetPayroll(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", stored.Status)

	err = env.service.MarkPaid(context.Background(), payroll.MarkPaidRequest{ID: result.ID})
	assert.ErrorIs(t, err, payroll.ErrInvalidTransition)
}

func TestUpdateNotesOnPaidRecord(t *testing.T) {
	env := newTestEnv()

	result := env.computeWeekly(t)
	require.NoError(t, env.service.MarkPaid(context.Background(), payroll.MarkPaidRequest{ID: result.ID}))

	notes := "paid via bank transfer"
	require.NoError(t, env.service.UpdateNotes(context.Background(), payroll.UpdateNotesRequest{ID: result.ID, Notes: &notes}))

	stored, err := env.service.GetPayroll(context.Background(), result.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Notes)
	assert.Equal(t, notes, *stored.Notes)
	assert.Equal(t, "paid", stored.Status)
}

func TestConcurrentComputeLeavesOneRecord(t *testing.T) {
	env := newTestEnv()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			_, err := env.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
				EmployeeID: env.employeeID,
				PeriodType: "weekly",
				AnchorDate: "2024-04-03",
			})
			if err != nil && !errors.Is(err, payroll.ErrRecomputeConflict) {
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, env.repo.count())

	record, err := env.service.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		EmployeeID: env.employeeID,
		PeriodType: "weekly",
		AnchorDate: "2024-04-03",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(51000), record.TotalAmount)
}
