// Package view renders the builder page and its HTMX partials. The
// markup lives in Go templates bridged into templ components with
// templ.FromGoHTML, so handlers serve them the same way whether the
// response is a full page or a fragment.
package view

import (
	"html/template"
	"strconv"

	"github.com/a-h/templ"

	"shiftbill/internal/config"
	"shiftbill/internal/invoice"
	"shiftbill/internal/ledger"
	"shiftbill/internal/service"
)

// Row is one shift row ready for display.
type Row struct {
	ID        string
	Shift     invoice.ShiftRecord
	LineTotal string
}

// TotalsView is the totals panel, all values formatted for display.
type TotalsView struct {
	RowCount string

	OrdinaryHours   string
	AfternoonHours  string
	SaturdayHours   string
	SundayHours     string
	TotalKilometres string

	Gross             string
	Subtotal          string
	GSTEnabled        bool
	GSTAmount         string
	TotalWithGST      string
	SuperContribution string
	BankPayable       string
}

// BillingView carries the current billing inputs back into the form.
type BillingView struct {
	RateOrdinary  string
	RateAfternoon string
	RateSaturday  string
	RateSunday    string

	TravelTotal        string
	ReimbursementTotal string
	GSTEnabled         bool
	SuperRatePercent   string
}

type PageData struct {
	Rows    []Row
	Billing BillingView
	Totals  TotalsView
	Details config.Details
	Themes  []string
	Fonts   []string
}

// Themes and Fonts are the document look choices offered by the form,
// in menu order.
var (
	Themes = []string{"classic", "modern", "minimal", "boxed", "ndis", "dark", "compact"}
	Fonts  = []string{"inter", "poppins", "roboto", "montserrat"}
)

// num formats a float the way a number input wants it: no forced
// decimals, zero as "0".
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewRows builds row views with their line totals from a ledger
// snapshot.
func NewRows(rows []ledger.Row, rates invoice.RateTable) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, Row{
			ID:        row.ID.String(),
			Shift:     row.Shift,
			LineTotal: "$" + invoice.Money(invoice.LineTotal(row.Shift, rates)),
		})
	}
	return out
}

// NewTotalsView formats a totals value for the panel.
func NewTotalsView(t invoice.Totals, rowCount int) TotalsView {
	return TotalsView{
		RowCount:          strconv.Itoa(rowCount),
		OrdinaryHours:     invoice.Money(t.OrdinaryHours),
		AfternoonHours:    invoice.Money(t.AfternoonHours),
		SaturdayHours:     invoice.Money(t.SaturdayHours),
		SundayHours:       invoice.Money(t.SundayHours),
		TotalKilometres:   invoice.Money(t.TotalKilometres),
		Gross:             "$" + invoice.Money(t.Gross),
		Subtotal:          "$" + invoice.Money(t.Subtotal),
		GSTEnabled:        t.GSTEnabled,
		GSTAmount:         "$" + invoice.Money(t.GSTAmount),
		TotalWithGST:      "$" + invoice.Money(t.TotalWithGST),
		SuperContribution: "$" + invoice.Money(t.SuperContribution),
		BankPayable:       "$" + invoice.Money(t.BankPayable),
	}
}

// NewPageData assembles the full builder page from a workbook
// snapshot and the configured prefill details.
func NewPageData(snap service.Snapshot, details config.Details) PageData {
	return PageData{
		Rows: NewRows(snap.Rows, snap.Rates),
		Billing: BillingView{
			RateOrdinary:       num(snap.Rates[invoice.CategoryOrdinary]),
			RateAfternoon:      num(snap.Rates[invoice.CategoryAfternoon]),
			RateSaturday:       num(snap.Rates[invoice.CategorySaturday]),
			RateSunday:         num(snap.Rates[invoice.CategorySunday]),
			TravelTotal:        num(snap.Adjustments.TravelTotal),
			ReimbursementTotal: num(snap.Adjustments.ReimbursementTotal),
			GSTEnabled:         snap.Adjustments.GSTEnabled,
			SuperRatePercent:   num(snap.Adjustments.SuperRatePercent),
		},
		Totals:  NewTotalsView(snap.Totals, len(snap.Rows)),
		Details: details,
		Themes:  Themes,
		Fonts:   Fonts,
	}
}

func Page(data PageData) templ.Component {
	return templ.FromGoHTML(pageTmpl, data)
}

func ShiftRows(rows []Row) templ.Component {
	return templ.FromGoHTML(rowsTmpl, rows)
}

func TotalsPanel(v TotalsView) templ.Component {
	return templ.FromGoHTML(totalsTmpl, v)
}

var (
	templates  = template.Must(template.New("view").Parse(pageHTML + rowsHTML + totalsHTML))
	pageTmpl   = templates.Lookup("page")
	rowsTmpl   = templates.Lookup("shift-rows")
	totalsTmpl = templates.Lookup("totals-panel")
)

const rowsHTML = `{{define "shift-rows"}}<tbody id="shift-rows" hx-include="closest tr" hx-swap="none">
{{range .}}<tr>
  <td><input name="date" value="{{.Shift.Date}}" placeholder="14/11/2025" hx-put="/shifts/{{.ID}}" hx-trigger="change"></td>
  <td><input name="day" value="{{.Shift.Day}}" placeholder="Friday" hx-put="/shifts/{{.ID}}" hx-trigger="change"></td>
  <td><input name="participant" value="{{.Shift.Participant}}" placeholder="Participant" hx-put="/shifts/{{.ID}}" hx-trigger="change"></td>
  <td><input name="start" value="{{.Shift.Start}}" placeholder="4:35pm / 16:30" hx-put="/shifts/{{.ID}}" hx-trigger="change"></td>
  <td><input name="end" value="{{.Shift.End}}" placeholder="10:00pm" hx-put="/shifts/{{.ID}}" hx-trigger="change"></td>
  <td><input name="hours" type="number" step="0.25" min="0" value="{{.Shift.Hours}}" hx-put="/shifts/{{.ID}}" hx-trigger="change"></td>
  <td><input name="km" type="number" step="0.1" min="0" value="{{.Shift.Kilometres}}" hx-put="/shifts/{{.ID}}" hx-trigger="change"></td>
  <td>
    <select name="rate-type" hx-put="/shifts/{{.ID}}" hx-trigger="change">
      <option value="">Auto</option>
      <option value="ordinary"{{if eq .Shift.Override "ordinary"}} selected{{end}}>Ordinary</option>
      <option value="afternoon"{{if eq .Shift.Override "afternoon"}} selected{{end}}>Afternoon</option>
      <option value="saturday"{{if eq .Shift.Override "saturday"}} selected{{end}}>Saturday</option>
      <option value="sunday"{{if eq .Shift.Override "sunday"}} selected{{end}}>Sunday</option>
    </select>
  </td>
  <td class="line-total" hx-get="/shifts/{{.ID}}/total" hx-trigger="totals-changed from:body" hx-swap="innerHTML">{{.LineTotal}}</td>
  <td><button class="ghost" hx-delete="/shifts/{{.ID}}" hx-target="#shift-rows" hx-swap="outerHTML">✕</button></td>
</tr>
{{end}}</tbody>{{end}}`

const totalsHTML = `{{define "totals-panel"}}<section id="totals-panel" hx-get="/totals" hx-trigger="totals-changed from:body" hx-swap="outerHTML">
  <h2>Totals</h2>
  <dl>
    <dt>Rows</dt><dd>{{.RowCount}}</dd>
    <dt>Ordinary hours</dt><dd>{{.OrdinaryHours}}</dd>
    <dt>Afternoon hours</dt><dd>{{.AfternoonHours}}</dd>
    <dt>Saturday hours</dt><dd>{{.SaturdayHours}}</dd>
    <dt>Sunday hours</dt><dd>{{.SundayHours}}</dd>
    <dt>Kilometres</dt><dd>{{.TotalKilometres}}</dd>
    <dt>Gross pay</dt><dd>{{.Gross}}</dd>
    <dt>Subtotal</dt><dd>{{.Subtotal}}</dd>
{{if .GSTEnabled}}    <dt>GST (10%)</dt><dd>{{.GSTAmount}}</dd>
{{end}}    <dt>Total inc. GST</dt><dd>{{.TotalWithGST}}</dd>
    <dt>Super contribution</dt><dd>{{.SuperContribution}}</dd>
    <dt class="strong">Bank payable</dt><dd class="strong">{{.BankPayable}}</dd>
  </dl>
</section>{{end}}`

const pageHTML = `{{define "page"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Shiftbill</title>
<script src="https://unpkg.com/htmx.org@1.9.10"></script>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<main>
  <h1>Shift Invoice Builder</h1>

  <form id="billing-form" hx-put="/billing" hx-trigger="change" hx-swap="none">
    <fieldset>
      <legend>Hourly rates</legend>
      <label>Ordinary <input name="rate-ordinary" type="number" step="0.01" min="0" value="{{.Billing.RateOrdinary}}"></label>
      <label>Afternoon <input name="rate-afternoon" type="number" step="0.01" min="0" value="{{.Billing.RateAfternoon}}"></label>
      <label>Saturday <input name="rate-saturday" type="number" step="0.01" min="0" value="{{.Billing.RateSaturday}}"></label>
      <label>Sunday <input name="rate-sunday" type="number" step="0.01" min="0" value="{{.Billing.RateSunday}}"></label>
    </fieldset>
    <fieldset>
      <legend>Adjustments</legend>
      <label>Travel total <input name="travel-total" type="number" step="0.01" min="0" value="{{.Billing.TravelTotal}}"></label>
      <label>Reimbursement <input name="reimb-total" type="number" step="0.01" min="0" value="{{.Billing.ReimbursementTotal}}"></label>
      <label>GST (10%) <input name="gst" type="checkbox"{{if .Billing.GSTEnabled}} checked{{end}}></label>
      <label>Super rate % <input name="super-rate" type="number" step="0.01" min="0" value="{{.Billing.SuperRatePercent}}"></label>
    </fieldset>
  </form>

  <section id="shifts">
    <table>
      <thead>
        <tr>
          <th>Date</th>
          <th>Day</th>
          <th>Participant</th>
          <th>Start</th>
          <th>End</th>
          <th>Hours</th>
          <th>KMs</th>
          <th>Rate</th>
          <th>Line Total</th>
          <th></th>
        </tr>
      </thead>
      {{template "shift-rows" .Rows}}
    </table>
    <div class="table-actions">
      <button hx-post="/shifts" hx-target="#shift-rows" hx-swap="outerHTML">Add shift</button>
      <button class="ghost" hx-delete="/shifts" hx-confirm="Clear all rows?" hx-target="#shift-rows" hx-swap="outerHTML">Clear table</button>
    </div>
  </section>

  {{template "totals-panel" .Totals}}

  <form id="details-form" action="/preview" method="get" target="_blank">
    <fieldset>
      <legend>Invoice details</legend>
      <label>Invoice number <input name="invoice-number" value=""></label>
      <label>Invoice date <input name="invoice-date" type="date"></label>
      <label>Service period <input name="service-period"></label>
      <label>Bill to company <input name="bill-company" value="{{.Details.BillCompany}}"></label>
      <label>Bill to ABN <input name="bill-abn" value="{{.Details.BillABN}}"></label>
    </fieldset>
    <fieldset>
      <legend>Contractor</legend>
      <label>Name <input name="contr-name" value="{{.Details.ContractorName}}"></label>
      <label>Address <input name="contr-address" value="{{.Details.ContractorAddress}}"></label>
      <label>Phone <input name="contr-phone" value="{{.Details.ContractorPhone}}"></label>
      <label>ABN <input name="contr-abn" value="{{.Details.ContractorABN}}"></label>
    </fieldset>
    <fieldset>
      <legend>Super &amp; bank</legend>
      <label>Super fund <input name="super-name" value="{{.Details.SuperFundName}}"></label>
      <label>Super account <input name="super-acc" value="{{.Details.SuperAccount}}"></label>
      <label>Bank <input name="bank-name" value="{{.Details.BankName}}"></label>
      <label>Account name <input name="bank-acname" value="{{.Details.BankAccountName}}"></label>
      <label>BSB <input name="bank-bsb" value="{{.Details.BankBSB}}"></label>
      <label>Account <input name="bank-acc" value="{{.Details.BankAccount}}"></label>
    </fieldset>
    <fieldset>
      <legend>Appearance</legend>
      <label>Template
        <select name="template">
{{range .Themes}}          <option value="{{.}}">{{.}}</option>
{{end}}        </select>
      </label>
      <label>Accent <input name="accent" type="color" value="#2e5aac"></label>
      <label>Font
        <select name="font">
{{range .Fonts}}          <option value="{{.}}">{{.}}</option>
{{end}}        </select>
      </label>
    </fieldset>
    <div class="table-actions">
      <button type="submit">Generate preview</button>
      <button type="submit" name="print" value="1">Generate &amp; print</button>
    </div>
  </form>
</main>
</body>
</html>
{{end}}`
