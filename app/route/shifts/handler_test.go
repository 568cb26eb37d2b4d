package shifts

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"shiftbill/internal/config"
	"shiftbill/internal/invoice"
	"shiftbill/internal/service"
)

func newTestServer(t *testing.T) (chi.Router, *service.Workbook) {
	t.Helper()
	rates := invoice.RateTable{
		invoice.CategoryOrdinary:  30,
		invoice.CategoryAfternoon: 35,
		invoice.CategorySaturday:  40,
		invoice.CategorySunday:    50,
	}
	wb := service.NewWorkbook(rates, invoice.Adjustments{})

	r := chi.NewRouter()
	NewHandlerGroup(wb, config.Details{BillCompany: "Acme Care"}).Mount(r)
	return r, wb
}

func doForm(t *testing.T, router chi.Router, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body strings.Reader
	if form != nil {
		body = *strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, &body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIndexRendersPage(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doForm(t, router, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Shift Invoice Builder", `id="shift-rows"`, `id="totals-panel"`, "Acme Care"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestAddShift(t *testing.T) {
	router, wb := newTestServer(t)

	rec := doForm(t, router, http.MethodPost, "/shifts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := len(wb.Snapshot().Rows); got != 1 {
		t.Fatalf("rows = %d, want 1", got)
	}
	if !strings.Contains(rec.Body.String(), `id="shift-rows"`) {
		t.Error("response should re-render the rows")
	}
	if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "totals-changed") {
		t.Errorf("HX-Trigger = %q, want totals-changed", trigger)
	}
}

func TestUpdateShift(t *testing.T) {
	router, wb := newTestServer(t)
	id, _ := wb.AddShift(invoice.ShiftRecord{})

	form := url.Values{
		"date":        {"15/11/2025"},
		"day":         {"Saturday"},
		"participant": {"Shady Omerie"},
		"start":       {"10:00am"},
		"end":         {"1:00pm"},
		"hours":       {"3"},
		"km":          {"10"},
		"rate-type":   {""},
	}
	rec := doForm(t, router, http.MethodPut, "/shifts/"+id.String(), form)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	snap := wb.Snapshot()
	if snap.Totals.Gross != 120 {
		t.Fatalf("gross = %v, want 120", snap.Totals.Gross)
	}
	if snap.Rows[0].Shift.Participant != "Shady Omerie" {
		t.Fatalf("row not updated: %+v", snap.Rows[0].Shift)
	}
}

func TestUpdateShiftNormalizesOverride(t *testing.T) {
	router, wb := newTestServer(t)
	id, _ := wb.AddShift(invoice.ShiftRecord{})

	rec := doForm(t, router, http.MethodPut, "/shifts/"+id.String(), url.Values{
		"day":       {"Monday"},
		"hours":     {"1"},
		"rate-type": {"weekend-double"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	if got := wb.Snapshot().Rows[0].Shift.Override; got != "" {
		t.Fatalf("unknown rate type should clear the override, got %q", got)
	}
}

func TestRemoveShiftIsIdempotent(t *testing.T) {
	router, wb := newTestServer(t)
	id, _ := wb.AddShift(invoice.ShiftRecord{Day: "Monday", Hours: "2"})

	rec := doForm(t, router, http.MethodDelete, "/shifts/"+id.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := len(wb.Snapshot().Rows); got != 0 {
		t.Fatalf("rows = %d, want 0", got)
	}

	// Deleting again, and deleting garbage, both succeed quietly.
	for _, path := range []string{"/shifts/" + id.String(), "/shifts/not-a-uuid"} {
		rec := doForm(t, router, http.MethodDelete, path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("repeat delete %s status = %d", path, rec.Code)
		}
	}
}

func TestClearShifts(t *testing.T) {
	router, wb := newTestServer(t)
	wb.AddShift(invoice.ShiftRecord{Day: "Monday", Hours: "2"})
	wb.AddShift(invoice.ShiftRecord{Day: "Tuesday", Hours: "3"})

	rec := doForm(t, router, http.MethodDelete, "/shifts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := len(wb.Snapshot().Rows); got != 0 {
		t.Fatalf("rows = %d, want 0", got)
	}
}

func TestUpdateBilling(t *testing.T) {
	router, wb := newTestServer(t)
	wb.AddShift(invoice.ShiftRecord{Day: "Monday", Hours: "10"})

	form := url.Values{
		"rate-ordinary":  {"50"},
		"rate-afternoon": {"55"},
		"rate-saturday":  {"60"},
		"rate-sunday":    {"70"},
		"travel-total":   {"25"},
		"reimb-total":    {"5"},
		"gst":            {"on"},
		"super-rate":     {"10"},
	}
	rec := doForm(t, router, http.MethodPut, "/billing", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	totals := wb.Snapshot().Totals
	if totals.Gross != 500 {
		t.Fatalf("gross = %v, want 500", totals.Gross)
	}
	if totals.Subtotal != 530 {
		t.Fatalf("subtotal = %v, want 530", totals.Subtotal)
	}
	if !totals.GSTEnabled || totals.GSTAmount != 53 {
		t.Fatalf("gst = %v (enabled=%v), want 53", totals.GSTAmount, totals.GSTEnabled)
	}
	if totals.SuperContribution != 50 {
		t.Fatalf("super = %v, want 50", totals.SuperContribution)
	}
}

func TestUpdateBillingCoercesBlanks(t *testing.T) {
	router, wb := newTestServer(t)

	// Blank fields zero the billing inputs rather than failing;
	// the checkbox being absent turns GST off.
	rec := doForm(t, router, http.MethodPut, "/billing", url.Values{
		"rate-ordinary": {""},
		"travel-total":  {"not a number"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	snap := wb.Snapshot()
	if snap.Adjustments.GSTEnabled {
		t.Error("gst should be off when checkbox absent")
	}
	if snap.Rates[invoice.CategoryOrdinary] != 0 {
		t.Errorf("ordinary rate = %v, want 0", snap.Rates[invoice.CategoryOrdinary])
	}
}

func TestTotalsPanel(t *testing.T) {
	router, wb := newTestServer(t)
	wb.AddShift(invoice.ShiftRecord{Day: "Saturday", Hours: "3"})

	rec := doForm(t, router, http.MethodGet, "/totals", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "$120.00") {
		t.Errorf("totals panel missing gross, body: %s", body)
	}
}

func TestLineTotal(t *testing.T) {
	router, wb := newTestServer(t)
	id, _ := wb.AddShift(invoice.ShiftRecord{Day: "Saturday", Hours: "3"})

	rec := doForm(t, router, http.MethodGet, "/shifts/"+id.String()+"/total", nil)
	if got := rec.Body.String(); got != "$120.00" {
		t.Fatalf("line total = %q, want $120.00", got)
	}

	rec = doForm(t, router, http.MethodGet, "/shifts/not-a-uuid/total", nil)
	if got := rec.Body.String(); got != "$0.00" {
		t.Fatalf("unknown row line total = %q, want $0.00", got)
	}
}

func TestPreview(t *testing.T) {
	router, wb := newTestServer(t)
	wb.AddShift(invoice.ShiftRecord{Date: "15/11/2025", Day: "Saturday", Participant: "Shady Omerie", Hours: "3"})

	rec := doForm(t, router, http.MethodGet, "/preview?invoice-number=INV-7&template=dark&font=roboto&print=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"INV-7", `class="page dark"`, "Shady Omerie", "'Roboto'", "window.addEventListener('load'"} {
		if !strings.Contains(body, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}
