package payroll

// Calculate derives the payable amounts from an aggregate and the
// employee's rate snapshots. All arithmetic is integer yen. Unset
// rates count as zero; negative rates are rejected before computing.
func Calculate(agg RawAggregate, rates PayRates) (Derived, error) {
	unitPay := valueOrZero(rates.UnitPay)
	overtimeRate := valueOrZero(rates.HourlyOvertimePay)

	if unitPay < 0 || overtimeRate < 0 {
		return Derived{}, ErrInvalidRate
	}
	if agg.SiteCount < 0 {
		return Derived{}, ErrInvalidRate
	}

	sitePay := agg.SiteCount * unitPay
	overtime := valueOrZero(agg.OvertimeHours) * overtimeRate

	return Derived{
		SitePay:     sitePay,
		Overtime:    overtime,
		TotalAmount: sitePay + overtime,
	}, nil
}

func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
