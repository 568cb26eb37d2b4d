// Package shifts serves the invoice builder: the page itself, the
// shift-row table, the billing inputs, the recomputed totals, and the
// printable document preview.
package shifts

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"shiftbill/app/event"
	"shiftbill/app/view"
	"shiftbill/internal/config"
	"shiftbill/internal/document"
	"shiftbill/internal/invoice"
	"shiftbill/internal/service"
)

type HandlerGroup struct {
	workbook *service.Workbook
	details  config.Details
}

func NewHandlerGroup(workbook *service.Workbook, details config.Details) *HandlerGroup {
	return &HandlerGroup{
		workbook: workbook,
		details:  details,
	}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Get("/", hg.handleIndex)

	r.Post("/shifts", hg.handleAddShift)
	r.Delete("/shifts", hg.handleClearShifts)
	r.Put("/shifts/{id}", hg.handleUpdateShift)
	r.Delete("/shifts/{id}", hg.handleRemoveShift)
	r.Get("/shifts/{id}/total", hg.handleLineTotal)

	r.Put("/billing", hg.handleUpdateBilling)
	r.Get("/totals", hg.handleTotals)
	r.Get("/preview", hg.handlePreview)
}

func (hg *HandlerGroup) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := view.NewPageData(hg.workbook.Snapshot(), hg.details)
	_ = view.Page(data).Render(r.Context(), w)
}

func (hg *HandlerGroup) handleAddShift(w http.ResponseWriter, r *http.Request) {
	_, snap := hg.workbook.AddShift(invoice.ShiftRecord{})

	_ = htmx.NewResponse().
		AddTrigger(event.TriggerTotalsChanged).
		RenderTempl(r.Context(), w, view.ShiftRows(view.NewRows(snap.Rows, snap.Rates)))
}

func (hg *HandlerGroup) handleUpdateShift(w http.ResponseWriter, r *http.Request) {
	req := &ShiftRequest{}
	if err := render.Bind(r, req); err != nil {
		showError(w, http.StatusBadRequest, err)
		return
	}

	// An unparsable or stale handle makes the update a no-op; the
	// totals still refresh so the page cannot go stale.
	if id, err := uuid.Parse(chi.URLParam(r, "id")); err == nil {
		hg.workbook.UpdateShift(id, req.record())
	}

	_ = htmx.NewResponse().
		Reswap(htmx.SwapNone).
		AddTrigger(event.TriggerTotalsChanged).
		Write(w)
}

func (hg *HandlerGroup) handleRemoveShift(w http.ResponseWriter, r *http.Request) {
	snap := hg.workbook.Snapshot()
	if id, err := uuid.Parse(chi.URLParam(r, "id")); err == nil {
		snap = hg.workbook.RemoveShift(id)
	}

	_ = htmx.NewResponse().
		AddTrigger(event.TriggerTotalsChanged).
		RenderTempl(r.Context(), w, view.ShiftRows(view.NewRows(snap.Rows, snap.Rates)))
}

func (hg *HandlerGroup) handleClearShifts(w http.ResponseWriter, r *http.Request) {
	snap := hg.workbook.ClearShifts()

	_ = htmx.NewResponse().
		AddTrigger(event.TriggerTotalsChanged).
		RenderTempl(r.Context(), w, view.ShiftRows(view.NewRows(snap.Rows, snap.Rates)))
}

func (hg *HandlerGroup) handleLineTotal(w http.ResponseWriter, r *http.Request) {
	var total float64
	if id, err := uuid.Parse(chi.URLParam(r, "id")); err == nil {
		total = hg.workbook.LineTotal(id)
	}
	fmt.Fprint(w, "$"+invoice.Money(total))
}

func (hg *HandlerGroup) handleUpdateBilling(w http.ResponseWriter, r *http.Request) {
	req := &BillingRequest{}
	if err := render.Bind(r, req); err != nil {
		showError(w, http.StatusBadRequest, err)
		return
	}

	hg.workbook.SetBilling(req.rates(), req.adjustments())

	_ = htmx.NewResponse().
		Reswap(htmx.SwapNone).
		AddTrigger(event.TriggerTotalsChanged).
		Write(w)
}

func (hg *HandlerGroup) handleTotals(w http.ResponseWriter, r *http.Request) {
	snap := hg.workbook.Snapshot()
	_ = view.TotalsPanel(view.NewTotalsView(snap.Totals, len(snap.Rows))).Render(r.Context(), w)
}

func (hg *HandlerGroup) handlePreview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req := newPreviewRequest(r.Form)

	snap := hg.workbook.Snapshot()
	records := make([]invoice.ShiftRecord, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		records = append(records, row.Shift)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = document.Render(w, req.fields, records, snap.Rates, snap.Totals, req.options)
}

// ShiftRequest carries one row's fields. Everything is free text;
// numeric coercion happens in the calculator, never here.
type ShiftRequest struct {
	Date        string `form:"date"`
	Day         string `form:"day"`
	Participant string `form:"participant"`
	Start       string `form:"start"`
	End         string `form:"end"`
	Hours       string `form:"hours"`
	Kilometres  string `form:"km"`
	RateType    string `form:"rate-type"`
}

// ShiftRequest satisfies [render.Binder]
func (sr *ShiftRequest) Bind(r *http.Request) error {
	if !slices.Contains(invoice.Categories, invoice.Category(sr.RateType)) {
		// Anything else means "infer the category".
		sr.RateType = ""
	}
	return nil
}

func (sr *ShiftRequest) record() invoice.ShiftRecord {
	return invoice.ShiftRecord{
		Date:        sr.Date,
		Day:         sr.Day,
		Participant: sr.Participant,
		Start:       sr.Start,
		End:         sr.End,
		Hours:       sr.Hours,
		Kilometres:  sr.Kilometres,
		Override:    invoice.Category(sr.RateType),
	}
}

// BillingRequest carries the rate table and adjustment inputs as
// submitted. Fields stay strings so blank or malformed numbers coerce
// to zero instead of rejecting the form.
type BillingRequest struct {
	RateOrdinary  string `form:"rate-ordinary"`
	RateAfternoon string `form:"rate-afternoon"`
	RateSaturday  string `form:"rate-saturday"`
	RateSunday    string `form:"rate-sunday"`

	TravelTotal        string `form:"travel-total"`
	ReimbursementTotal string `form:"reimb-total"`
	GST                string `form:"gst"`
	SuperRatePercent   string `form:"super-rate"`
}

// BillingRequest satisfies [render.Binder]
func (br *BillingRequest) Bind(r *http.Request) error {
	return nil
}

func (br *BillingRequest) rates() invoice.RateTable {
	return invoice.RateTable{
		invoice.CategoryOrdinary:  invoice.Amount(br.RateOrdinary),
		invoice.CategoryAfternoon: invoice.Amount(br.RateAfternoon),
		invoice.CategorySaturday:  invoice.Amount(br.RateSaturday),
		invoice.CategorySunday:    invoice.Amount(br.RateSunday),
	}
}

func (br *BillingRequest) adjustments() invoice.Adjustments {
	return invoice.Adjustments{
		TravelTotal:        invoice.Amount(br.TravelTotal),
		ReimbursementTotal: invoice.Amount(br.ReimbursementTotal),
		GSTEnabled:         br.GST != "",
		SuperRatePercent:   invoice.Amount(br.SuperRatePercent),
	}
}

type previewRequest struct {
	fields  document.Fields
	options document.Options
}

// newPreviewRequest reads the document fields straight off the query
// string. Nothing is validated; the renderer treats every field as
// display text and falls back on unknown look options.
func newPreviewRequest(form url.Values) *previewRequest {
	return &previewRequest{
		fields: document.Fields{
			InvoiceNumber: form.Get("invoice-number"),
			InvoiceDate:   form.Get("invoice-date"),
			ServicePeriod: form.Get("service-period"),

			BillCompany: form.Get("bill-company"),
			BillABN:     form.Get("bill-abn"),

			ContractorName:    form.Get("contr-name"),
			ContractorAddress: form.Get("contr-address"),
			ContractorPhone:   form.Get("contr-phone"),
			ContractorABN:     form.Get("contr-abn"),

			SuperFundName: form.Get("super-name"),
			SuperAccount:  form.Get("super-acc"),

			BankName:        form.Get("bank-name"),
			BankAccountName: form.Get("bank-acname"),
			BankBSB:         form.Get("bank-bsb"),
			BankAccount:     form.Get("bank-acc"),
		},
		options: document.Options{
			Theme:      form.Get("template"),
			Accent:     form.Get("accent"),
			FontFamily: form.Get("font"),
			AutoPrint:  form.Get("print") == "1",
		},
	}
}

func showError(w http.ResponseWriter, code int, err error) {
	_ = htmx.NewResponse().
		StatusCode(code).
		Reswap(htmx.SwapNone).
		AddTrigger(event.TriggerSetErrMessage(err.Error())).
		Write(w)
}
