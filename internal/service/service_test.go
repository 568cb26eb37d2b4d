package service

import (
	"testing"

	"github.com/google/uuid"

	"shiftbill/internal/invoice"
)

func testWorkbook(t *testing.T) *Workbook {
	t.Helper()
	rates := invoice.RateTable{
		invoice.CategoryOrdinary:  30,
		invoice.CategoryAfternoon: 35,
		invoice.CategorySaturday:  40,
		invoice.CategorySunday:    50,
	}
	return NewWorkbook(rates, invoice.Adjustments{SuperRatePercent: 12})
}

func TestWorkbookMutationsRecompute(t *testing.T) {
	wb := testWorkbook(t)

	id, snap := wb.AddShift(invoice.ShiftRecord{Day: "Saturday", Start: "10:00am", Hours: "3"})
	if snap.Totals.Gross != 120 {
		t.Fatalf("gross after add = %v, want 120", snap.Totals.Gross)
	}
	if len(snap.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(snap.Rows))
	}

	snap = wb.UpdateShift(id, invoice.ShiftRecord{Day: "Sunday", Hours: "2"})
	if snap.Totals.Gross != 100 {
		t.Fatalf("gross after update = %v, want 100", snap.Totals.Gross)
	}

	snap = wb.RemoveShift(id)
	if snap.Totals.Gross != 0 || len(snap.Rows) != 0 {
		t.Fatalf("remove left gross=%v rows=%d", snap.Totals.Gross, len(snap.Rows))
	}
}

func TestWorkbookRemoveUnknownIsNoOp(t *testing.T) {
	wb := testWorkbook(t)
	_, _ = wb.AddShift(invoice.ShiftRecord{Day: "Monday", Hours: "1"})

	before := wb.Snapshot().Totals
	after := wb.RemoveShift(uuid.New()).Totals
	if before != after {
		t.Fatalf("totals changed on unknown remove: %+v vs %+v", before, after)
	}
}

func TestWorkbookClear(t *testing.T) {
	wb := testWorkbook(t)
	wb.AddShift(invoice.ShiftRecord{Day: "Monday", Hours: "1"})
	wb.AddShift(invoice.ShiftRecord{Day: "Tuesday", Hours: "2"})

	snap := wb.ClearShifts()
	if len(snap.Rows) != 0 || snap.Totals.Gross != 0 {
		t.Fatalf("clear left rows=%d gross=%v", len(snap.Rows), snap.Totals.Gross)
	}
}

func TestWorkbookSetBilling(t *testing.T) {
	wb := testWorkbook(t)
	wb.AddShift(invoice.ShiftRecord{Day: "Monday", Hours: "10"})

	snap := wb.SetBilling(
		invoice.RateTable{invoice.CategoryOrdinary: 50},
		invoice.Adjustments{TravelTotal: 25, GSTEnabled: true, SuperRatePercent: 10},
	)

	if snap.Totals.Gross != 500 {
		t.Fatalf("gross = %v, want 500", snap.Totals.Gross)
	}
	if snap.Totals.Subtotal != 525 {
		t.Fatalf("subtotal = %v, want 525", snap.Totals.Subtotal)
	}
	if snap.Totals.SuperContribution != 50 {
		t.Fatalf("super = %v, want 50", snap.Totals.SuperContribution)
	}
}

func TestWorkbookSnapshotRatesAreCopies(t *testing.T) {
	wb := testWorkbook(t)
	snap := wb.Snapshot()
	snap.Rates[invoice.CategoryOrdinary] = 999

	if got := wb.Snapshot().Rates[invoice.CategoryOrdinary]; got != 30 {
		t.Fatalf("workbook rates mutated through snapshot: %v", got)
	}
}

func TestWorkbookLineTotal(t *testing.T) {
	wb := testWorkbook(t)
	id, _ := wb.AddShift(invoice.ShiftRecord{Day: "Saturday", Hours: "3"})

	if got := wb.LineTotal(id); got != 120 {
		t.Fatalf("line total = %v, want 120", got)
	}
	if got := wb.LineTotal(uuid.New()); got != 0 {
		t.Fatalf("unknown row line total = %v, want 0", got)
	}
}
