package payroll

import (
	"github.com/kensetsu-apps/works-backend-go/internal/domain/payroll"
)

// AggregateFacts reduces assignment facts to the per-period aggregate.
// Each fact counts as one site worked. Hour totals are only produced
// when at least one fact carries hour data, so untracked hours stay
// distinguishable from a tracked zero.
func AggregateFacts(facts []payroll.AssignmentFact) payroll.RawAggregate {
	agg := payroll.RawAggregate{SiteCount: int64(len(facts))}

	var workHours, overtimeHours int64
	var hasWorkHours, hasOvertimeHours bool

	for _, f := range facts {
		if f.WorkHours != nil {
			workHours += *f.WorkHours
			hasWorkHours = true
		}
		if f.OvertimeHours != nil {
			overtimeHours += *f.OvertimeHours
			hasOvertimeHours = true
		}
	}

	if hasWorkHours {
		agg.WorkHours = &workHours
	}
	if hasOvertimeHours {
		agg.OvertimeHours = &overtimeHours
	}

	return agg
}
