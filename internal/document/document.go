// Package document renders the finished invoice as a standalone
// printable HTML page. It is the rendering sink for the calculator:
// it receives a finished Totals value plus the free-text detail
// fields and never feeds anything back into the core.
package document

import (
	"html/template"
	"io"

	"shiftbill/internal/invoice"
)

// Fields are the free-text descriptive values printed on the
// document. The core neither validates nor interprets them.
type Fields struct {
	InvoiceNumber string
	InvoiceDate   string
	ServicePeriod string

	BillCompany string
	BillABN     string

	ContractorName    string
	ContractorAddress string
	ContractorPhone   string
	ContractorABN     string

	SuperFundName string
	SuperAccount  string

	BankName        string
	BankAccountName string
	BankBSB         string
	BankAccount     string
}

// Options choose the document's look. Unknown values fall back: theme
// to classic, accent to the default blue, font to Inter. The print
// flag makes the page call window.print on load.
type Options struct {
	Theme      string
	Accent     string
	FontFamily string
	AutoPrint  bool
}

// TotalLine is one row of the totals block.
type TotalLine struct {
	Label  string
	Value  string
	Strong bool
	Total  bool
}

type rowView struct {
	Date        string
	Day         string
	Participant string
	Start       string
	End         string
	Hours       string
	Kilometres  string
}

type docView struct {
	Fields
	Theme      string
	Heading    string
	NDISNote   bool
	AutoPrint  bool
	Style      template.CSS
	Rows       []rowView
	TotalLines []TotalLine
}

// TotalsLines builds the totals block in document order: the four
// per-category hour lines, travel, reimbursement, subtotal, the GST
// line only when GST is enabled, the super rate and contribution, and
// the bank payable amount.
func TotalsLines(rates invoice.RateTable, t invoice.Totals) []TotalLine {
	money := func(v float64) string { return "$" + invoice.Money(v) }
	hourLine := func(name string, hours float64, c invoice.Category) TotalLine {
		rate := rates[c]
		return TotalLine{
			Label: name + " Hours (" + invoice.Money(hours) + " × " + invoice.Money(rate) + ")",
			Value: money(hours * rate),
		}
	}

	lines := []TotalLine{
		hourLine("Ordinary", t.OrdinaryHours, invoice.CategoryOrdinary),
		hourLine("Afternoon", t.AfternoonHours, invoice.CategoryAfternoon),
		hourLine("Saturday", t.SaturdayHours, invoice.CategorySaturday),
		hourLine("Sunday", t.SundayHours, invoice.CategorySunday),
		{Label: "Travel", Value: money(t.TravelTotal)},
		{Label: "Reimbursement", Value: money(t.ReimbursementTotal)},
		{Label: "Subtotal", Value: money(t.Subtotal), Strong: true},
	}
	if t.GSTEnabled {
		lines = append(lines, TotalLine{Label: "GST (10%)", Value: money(t.GSTAmount)})
	}
	lines = append(lines,
		TotalLine{Label: "Super Rate", Value: invoice.Money(t.SuperRatePercent) + "%"},
		TotalLine{Label: "Super Contribution", Value: money(t.SuperContribution)},
		TotalLine{Label: "Bank Payable Amount", Value: money(t.BankPayable), Strong: true, Total: true},
	)
	return lines
}

// Render writes the complete document. It never fails on user input;
// the only error source is the writer.
func Render(w io.Writer, fields Fields, records []invoice.ShiftRecord, rates invoice.RateTable, totals invoice.Totals, opts Options) error {
	name, th := themeFor(opts.Theme)

	rows := make([]rowView, 0, len(records))
	for _, r := range records {
		rows = append(rows, rowView{
			Date:        r.Date,
			Day:         r.Day,
			Participant: r.Participant,
			Start:       r.Start,
			End:         r.End,
			Hours:       invoice.Money(invoice.Amount(r.Hours)),
			Kilometres:  r.Kilometres,
		})
	}

	view := docView{
		Fields:     fields,
		Theme:      name,
		Heading:    th.heading,
		NDISNote:   th.ndisNote,
		AutoPrint:  opts.AutoPrint,
		Style:      stylesheet(th, opts.Accent, opts.FontFamily),
		Rows:       rows,
		TotalLines: TotalsLines(rates, totals),
	}

	return docTmpl.Execute(w, view)
}

var docTmpl = template.Must(template.New("document").Parse(docHTML))

const docHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Invoice Preview - {{.InvoiceNumber}}</title>
<style>{{.Style}}</style>
</head>
<body>
<div class="page {{.Theme}}">
  <header class="header-bar">
    <div>
      <div class="label">Invoice</div>
      <div class="invoice-title">{{.Heading}}</div>
      <div class="meta">Invoice Number: <strong>{{.InvoiceNumber}}</strong></div>
      <div class="meta">Invoice Date: <strong>{{.InvoiceDate}}</strong></div>
      <div class="meta">Service Period: <strong>{{.ServicePeriod}}</strong></div>
    </div>
    <div class="bill-block">
      <div class="label">Bill To</div>
      <div><strong>{{.BillCompany}}</strong></div>
      <div class="meta">ABN: {{.BillABN}}</div>
    </div>
  </header>

{{if .NDISNote}}  <div class="ndis-note">
    This invoice relates to NDIS supports provided under a service agreement.
    All support hours and travel have been delivered in accordance with NDIS requirements.
  </div>
{{end}}
  <section class="two-col">
    <div>
      <div class="section-title">Contractor</div>
      <div class="meta">{{.ContractorName}}</div>
      <div class="meta">{{.ContractorAddress}}</div>
      <div class="meta">Phone: {{.ContractorPhone}}</div>
      <div class="meta">ABN: {{.ContractorABN}}</div>
    </div>
    <div>
      <div class="section-title">Super &amp; Bank</div>
      <div class="meta">Super Fund: {{.SuperFundName}}</div>
      <div class="meta">Super Account: {{.SuperAccount}}</div>
      <div class="meta">Bank: {{.BankName}}</div>
      <div class="meta">Account Name: {{.BankAccountName}}</div>
      <div class="meta">BSB: {{.BankBSB}} &nbsp;&nbsp; Account: {{.BankAccount}}</div>
    </div>
  </section>

  <section class="items-card">
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
        </tr>
      </thead>
      <tbody>
{{range .Rows}}        <tr>
          <td>{{.Date}}</td>
          <td>{{.Day}}</td>
          <td>{{.Participant}}</td>
          <td>{{.Start}}</td>
          <td>{{.End}}</td>
          <td class="num">{{.Hours}}</td>
          <td class="num">{{.Kilometres}}</td>
        </tr>
{{end}}      </tbody>
    </table>
  </section>

  <section class="totals-wrap">
    <div class="totals-card">
      <table class="totals-table">
{{range .TotalLines}}        <tr class="{{if .Strong}}strong{{end}}{{if .Total}} total-row{{end}}"><td>{{.Label}}</td><td class="num">{{.Value}}</td></tr>
{{end}}      </table>
      <div class="meta bank-note">
        Please reference invoice number {{.InvoiceNumber}} when making payment.
      </div>
    </div>
  </section>

  <div class="footer-note">Thank you for your business.</div>
</div>
<div class="print-actions">
  <button id="printBtn" class="print-btn">Download (Print)</button>
  <button id="closeBtn" class="close-btn">Close</button>
</div>
<script>
document.getElementById('printBtn').addEventListener('click', function(){ window.print(); });
document.getElementById('closeBtn').addEventListener('click', function(){ window.close(); });
{{if .AutoPrint}}window.addEventListener('load', function(){ window.print(); });
{{end}}</script>
</body>
</html>
`
