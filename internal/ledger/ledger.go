// Package ledger holds the ordered collection of shift rows being
// edited. The ledger owns row identity and ordering only; it never
// computes totals and knows nothing about the calculator.
package ledger

import (
	"github.com/google/uuid"

	"shiftbill/internal/invoice"
)

// Row is one ledger entry: a shift record plus the handle used to
// address it from the form.
type Row struct {
	ID    uuid.UUID
	Shift invoice.ShiftRecord
}

// Ledger is an insertion-ordered sequence of shift rows. Insertion
// order is the only defined order; rows are never sorted.
type Ledger struct {
	rows []Row
}

func New() *Ledger {
	return &Ledger{}
}

// Add appends a row holding the given record and returns its handle.
// No validation happens here: every field accepts arbitrary text and
// numeric coercion is the calculator's job.
func (l *Ledger) Add(shift invoice.ShiftRecord) uuid.UUID {
	id := uuid.New()
	l.rows = append(l.rows, Row{ID: id, Shift: shift})
	return id
}

// Get returns the row with the given handle.
func (l *Ledger) Get(id uuid.UUID) (Row, bool) {
	for _, row := range l.rows {
		if row.ID == id {
			return row, true
		}
	}
	return Row{}, false
}

// Update replaces the record held by the row with the given handle.
// Updating a removed row is a no-op, reporting false.
func (l *Ledger) Update(id uuid.UUID, shift invoice.ShiftRecord) bool {
	for i := range l.rows {
		if l.rows[i].ID == id {
			l.rows[i].Shift = shift
			return true
		}
	}
	return false
}

// Remove deletes the row with the given handle. Removing a row that
// is already gone is a silent no-op.
func (l *Ledger) Remove(id uuid.UUID) {
	for i := range l.rows {
		if l.rows[i].ID == id {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return
		}
	}
}

// Clear removes all rows. Asking the user first is the form's job.
func (l *Ledger) Clear() {
	l.rows = nil
}

// Len reports the number of rows.
func (l *Ledger) Len() int {
	return len(l.rows)
}

// Rows returns a snapshot of the rows in insertion order.
func (l *Ledger) Rows() []Row {
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Records returns a snapshot of the shift records in insertion order,
// ready to hand to the calculator or the document renderer.
func (l *Ledger) Records() []invoice.ShiftRecord {
	out := make([]invoice.ShiftRecord, 0, len(l.rows))
	for _, row := range l.rows {
		out = append(out, row.Shift)
	}
	return out
}
