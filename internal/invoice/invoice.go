// Package invoice holds the billing domain: shift records, rate
// categories, and the totals calculation.
package invoice

import (
	"math"
	"strconv"
	"strings"
)

// ShiftRecord is one logged block of work, as entered in the form.
// All fields are free text; numeric fields are coerced at calculation
// time so a blank kilometres cell stays blank on the rendered invoice
// but sums as zero.
type ShiftRecord struct {
	Date        string
	Day         string
	Participant string
	Start       string
	End         string
	Hours       string
	Kilometres  string

	// Override pins the rate category explicitly. Empty means the
	// category is inferred from Day and Start.
	Override Category
}

type Category string

const (
	CategoryOrdinary  Category = "ordinary"
	CategoryAfternoon Category = "afternoon"
	CategorySaturday  Category = "saturday"
	CategorySunday    Category = "sunday"
)

// Categories lists the four rate categories in display order.
var Categories = []Category{
	CategoryOrdinary,
	CategoryAfternoon,
	CategorySaturday,
	CategorySunday,
}

// RateTable maps a rate category to its hourly rate.
type RateTable map[Category]float64

// Rate resolves the hourly rate for a category. A category missing
// from the table falls back to the ordinary rate, and to zero when
// that is missing too. A rate explicitly set to zero is used as-is.
func (rt RateTable) Rate(c Category) float64 {
	if rate, ok := rt[c]; ok {
		return rate
	}
	if rate, ok := rt[CategoryOrdinary]; ok {
		return rate
	}
	return 0
}

// Adjustments are the invoice-level inputs entered outside the shift
// table: pre-aggregated travel and reimbursement amounts, the GST
// toggle, and the superannuation rate.
type Adjustments struct {
	TravelTotal        float64
	ReimbursementTotal float64
	GSTEnabled         bool
	SuperRatePercent   float64
}

// Totals is the derived financial summary. It is rebuilt wholesale on
// every recalculation and has no lifecycle of its own.
type Totals struct {
	OrdinaryHours   float64
	AfternoonHours  float64
	SaturdayHours   float64
	SundayHours     float64
	TotalKilometres float64

	Gross              float64
	TravelTotal        float64
	ReimbursementTotal float64
	Subtotal           float64
	GSTEnabled         bool
	GSTAmount          float64
	TotalWithGST       float64
	SuperRatePercent   float64
	SuperContribution  float64
	BankPayable        float64
}

// Amount coerces a form field to a number. Blank or unparsable text
// is zero; the form never rejects input.
func Amount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Money formats a value to two decimal places, rounding half away
// from zero. Rounding happens here only; accumulation stays at full
// precision.
func Money(v float64) string {
	cents := math.Floor(math.Abs(v)*100 + 0.5)
	if v < 0 {
		cents = -cents
	}
	return strconv.FormatFloat(cents/100, 'f', 2, 64)
}
