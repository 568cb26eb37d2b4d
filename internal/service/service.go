// Package service owns the interactive session's state: the shift
// ledger plus the billing inputs. Every mutation recomputes the
// totals wholesale and hands the fresh value back to the caller;
// nothing is patched incrementally.
package service

import (
	"sync"

	"github.com/google/uuid"

	"shiftbill/internal/invoice"
	"shiftbill/internal/ledger"
)

type Workbook struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	rates  invoice.RateTable
	adj    invoice.Adjustments
}

func NewWorkbook(rates invoice.RateTable, adj invoice.Adjustments) *Workbook {
	if rates == nil {
		rates = invoice.RateTable{}
	}
	return &Workbook{
		ledger: ledger.New(),
		rates:  rates,
		adj:    adj,
	}
}

// Snapshot is a consistent read of the whole session, used for page
// rendering and document generation.
type Snapshot struct {
	Rows        []ledger.Row
	Rates       invoice.RateTable
	Adjustments invoice.Adjustments
	Totals      invoice.Totals
}

func (w *Workbook) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Workbook) snapshotLocked() Snapshot {
	rates := make(invoice.RateTable, len(w.rates))
	for c, r := range w.rates {
		rates[c] = r
	}
	return Snapshot{
		Rows:        w.ledger.Rows(),
		Rates:       rates,
		Adjustments: w.adj,
		Totals:      invoice.Calculate(w.ledger.Records(), w.rates, w.adj),
	}
}

// AddShift appends a row and returns its handle with the recomputed
// session state.
func (w *Workbook) AddShift(shift invoice.ShiftRecord) (uuid.UUID, Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.ledger.Add(shift)
	return id, w.snapshotLocked()
}

// UpdateShift replaces a row's record. Updating a removed row is a
// no-op; the recomputed state is returned either way.
func (w *Workbook) UpdateShift(id uuid.UUID, shift invoice.ShiftRecord) Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ledger.Update(id, shift)
	return w.snapshotLocked()
}

// RemoveShift deletes a row. Removing a row that is already gone is a
// silent no-op.
func (w *Workbook) RemoveShift(id uuid.UUID) Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ledger.Remove(id)
	return w.snapshotLocked()
}

// ClearShifts removes every row.
func (w *Workbook) ClearShifts() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ledger.Clear()
	return w.snapshotLocked()
}

// SetBilling replaces the rate table and adjustment inputs.
func (w *Workbook) SetBilling(rates invoice.RateTable, adj invoice.Adjustments) Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rates != nil {
		w.rates = rates
	}
	w.adj = adj
	return w.snapshotLocked()
}

// LineTotal computes the pay for a single row. An unknown handle
// yields zero.
func (w *Workbook) LineTotal(id uuid.UUID) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	row, ok := w.ledger.Get(id)
	if !ok {
		return 0
	}
	return invoice.LineTotal(row.Shift, w.rates)
}
