package invoice

// LineTotal is the pay for a single shift: hours times the resolved
// category rate.
func LineTotal(r ShiftRecord, rates RateTable) float64 {
	return Amount(r.Hours) * rates.Rate(r.ResolveCategory())
}

// Calculate recomputes the invoice totals from scratch. It is a pure
// function over the record snapshot, the rate table, and the
// adjustment inputs; it never fails, and every call returns a fresh
// Totals value.
//
// GST applies to the subtotal (gross plus travel plus reimbursement)
// at a flat 10% when enabled. Superannuation is computed on gross
// shift pay only and is withheld from the bank payable amount.
func Calculate(records []ShiftRecord, rates RateTable, adj Adjustments) Totals {
	t := Totals{
		TravelTotal:        adj.TravelTotal,
		ReimbursementTotal: adj.ReimbursementTotal,
		GSTEnabled:         adj.GSTEnabled,
		SuperRatePercent:   adj.SuperRatePercent,
	}

	for _, r := range records {
		hours := Amount(r.Hours)
		t.TotalKilometres += Amount(r.Kilometres)
		t.Gross += hours * rates.Rate(r.ResolveCategory())

		switch r.ResolveCategory() {
		case CategoryOrdinary:
			t.OrdinaryHours += hours
		case CategoryAfternoon:
			t.AfternoonHours += hours
		case CategorySaturday:
			t.SaturdayHours += hours
		case CategorySunday:
			t.SundayHours += hours
		}
	}

	t.Subtotal = t.Gross + adj.TravelTotal + adj.ReimbursementTotal
	if adj.GSTEnabled {
		t.GSTAmount = t.Subtotal * 0.10
	}
	t.TotalWithGST = t.Subtotal + t.GSTAmount
	t.SuperContribution = t.Gross * (adj.SuperRatePercent / 100)
	t.BankPayable = t.TotalWithGST - t.SuperContribution

	return t
}
