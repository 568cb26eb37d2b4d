package document

import (
	"html/template"
	"regexp"
)

type theme struct {
	heading  string
	ndisNote bool
	css      string
}

// The seven looks carried over from the original form. They share one
// markup skeleton and differ in stylesheet; the accent colour flows
// through the --accent custom property.
var themes = map[string]theme{
	"classic": {heading: "INVOICE", css: classicCSS},
	"modern":  {heading: "INVOICE", css: modernCSS},
	"minimal": {heading: "Invoice", css: minimalCSS},
	"boxed":   {heading: "INVOICE", css: boxedCSS},
	"ndis":    {heading: "NDIS Invoice", ndisNote: true, css: ndisCSS},
	"dark":    {heading: "INVOICE", css: darkCSS},
	"compact": {heading: "INVOICE", css: compactCSS},
}

func themeFor(name string) (string, theme) {
	if th, ok := themes[name]; ok {
		return name, th
	}
	return "classic", themes["classic"]
}

const defaultAccent = "#2e5aac"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// Font choices offered by the form. Keys are the select values.
var fontStacks = map[string]string{
	"inter":      `'Inter', sans-serif`,
	"poppins":    `'Poppins', sans-serif`,
	"roboto":     `'Roboto', sans-serif`,
	"montserrat": `'Montserrat', sans-serif`,
}

func stylesheet(th theme, accent, font string) template.CSS {
	if !hexColor.MatchString(accent) {
		accent = defaultAccent
	}
	stack, ok := fontStacks[font]
	if !ok {
		stack = fontStacks["inter"]
	}
	css := ":root{--accent:" + accent + ";}\n" +
		"body{font-family:" + stack + ";}\n" +
		baseCSS + th.css
	return template.CSS(css)
}

const baseCSS = `
@import url('https://fonts.googleapis.com/css2?family=Inter:wght@300;400;600;700&family=Poppins:wght@300;400;600;700&family=Roboto:wght@300;400;500;700&family=Montserrat:wght@300;400;600;700&display=swap');
*{box-sizing:border-box;}
body{color:#222;margin:0;padding:24px;}
.page{max-width:820px;margin:0 auto;}
h1,h2,h3,h4{margin:0;}
table{width:100%;border-collapse:collapse;}
th,td{padding:6px 8px;font-size:13px;}
th{text-align:left;}
.meta{font-size:12px;color:#555;}
.label{font-size:11px;text-transform:uppercase;letter-spacing:0.06em;color:#777;}
.num{text-align:right;}
.section-title{font-size:13px;font-weight:600;text-transform:uppercase;letter-spacing:0.06em;margin-bottom:4px;}
.two-col{display:flex;gap:24px;margin-bottom:12px;}
.two-col > div{flex:1;}
.totals-wrap{margin-top:16px;display:flex;justify-content:flex-end;}
.totals-table td{padding:4px 0;}
.totals-table .strong td{font-weight:600;}
.bank-note{margin-top:6px;}
.footer-note{font-size:11px;color:#777;margin-top:16px;}
.ndis-note{display:none;}
.print-actions{position:fixed;right:16px;bottom:16px;display:flex;gap:8px;z-index:1000;}
.print-btn{padding:10px 12px;border-radius:6px;background:var(--accent);color:#fff;border:none;cursor:pointer;font-weight:600;font-size:13px;}
.close-btn{padding:10px 12px;border-radius:6px;background:#eee;border:none;cursor:pointer;font-size:13px;}
@media print{.print-actions{display:none;}body{padding:0;}.page{margin:0;}}
`

const classicCSS = `
.header-bar{border-bottom:3px solid var(--accent);padding-bottom:12px;margin-bottom:16px;display:flex;justify-content:space-between;align-items:flex-end;}
.invoice-title{font-size:26px;font-weight:700;letter-spacing:0.08em;color:var(--accent);}
.bill-block{font-size:13px;text-align:right;}
.items-card{margin-top:16px;border-radius:6px;border:1px solid #e6e6e6;overflow:hidden;}
.items-card th{background:#f5f7ff;font-weight:600;border-bottom:1px solid #dfe4ff;}
.items-card td{border-bottom:1px solid #f0f0f0;}
.totals-card{width:340px;border-radius:6px;border:1px solid #e2e5f0;padding:10px 12px;background:#fbfcff;}
.total-row td{border-top:1px solid #d9def2;padding-top:6px;}
`

const modernCSS = `
body{background:#f4f6fb;}
.page{background:#fff;padding:24px 28px 28px;border-radius:10px;box-shadow:0 10px 30px rgba(15,20,40,0.12);}
.header-bar{background:var(--accent);color:#fff;border-radius:8px;padding:14px 18px;display:flex;justify-content:space-between;align-items:flex-end;margin-bottom:18px;}
.header-bar .meta,.header-bar .label{color:rgba(255,255,255,0.9);}
.invoice-title{font-size:24px;font-weight:700;letter-spacing:0.12em;}
.bill-block{text-align:right;font-size:13px;}
.two-col > div{border-radius:8px;border:1px solid #e4e7f2;padding:10px 12px;background:#fafbff;}
.items-card{border-radius:8px;border:1px solid #e9ecf7;overflow:hidden;margin-top:6px;}
.items-card th{background:#f3f4ff;border-bottom:1px solid #dde1ff;}
.items-card td{border-bottom:1px solid #f2f3fb;}
.totals-card{width:340px;border-radius:8px;border:1px solid #e0e4ff;padding:10px 12px;background:#f7f8ff;}
.total-row td{border-top:1px dashed #c0c7ff;padding-top:6px;}
`

const minimalCSS = `
.page{max-width:760px;}
.header-bar{display:flex;justify-content:space-between;margin-bottom:24px;}
.invoice-title{font-size:24px;font-weight:600;margin-bottom:6px;}
.label{color:#888;}
.meta{color:#444;}
.bill-block{text-align:right;font-size:13px;}
.items-card th{border-bottom:1px solid #ddd;font-weight:500;}
.items-card td{border-bottom:1px solid #f0f0f0;}
.totals-card{width:320px;}
.totals-table td{padding:2px 0;}
.total-row td{border-top:1px solid #ddd;padding-top:6px;}
`

const boxedCSS = `
body{background:#e8ecf6;padding:32px 0;}
.page{background:#ffffff;padding:22px 24px 26px;border-radius:10px;box-shadow:0 12px 32px rgba(10,20,50,0.18);border:2px solid var(--accent);}
.header-bar{display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:14px;}
.invoice-title{font-size:20px;font-weight:700;letter-spacing:0.14em;color:var(--accent);}
.meta{color:#333;}
.bill-block{text-align:right;font-size:13px;}
.two-col > div{border-radius:6px;border:1px solid #e3e6f0;padding:8px 10px;background:#f9fbff;}
.items-card th{background:#f4f5ff;border-bottom:1px solid #dfe1ff;}
.items-card td{border-bottom:1px solid #f0f0ff;}
.totals-card{width:300px;border-radius:6px;border:1px solid #dde1ff;padding:8px 10px;background:#f7f8ff;}
.total-row td{border-top:1px solid #c9cff5;padding-top:6px;}
`

const ndisCSS = `
body{background:#f5f0fb;}
.page{background:#fff;padding:22px 24px 26px;border-radius:8px;box-shadow:0 8px 24px rgba(40,0,80,0.18);}
.header-bar{display:flex;justify-content:space-between;align-items:flex-start;border-left:6px solid #6a1b9a;padding-left:14px;margin-bottom:14px;}
.invoice-title{font-size:22px;font-weight:700;color:#6a1b9a;text-transform:uppercase;letter-spacing:0.09em;}
.meta{color:#333;}
.bill-block{text-align:right;font-size:13px;}
.bill-block .label{color:#8051b5;}
.ndis-note{display:block;background:#f7eaff;border-radius:6px;padding:8px 10px;font-size:11px;color:#5b3b81;margin-bottom:10px;}
.items-card th{background:#f2e8ff;border-bottom:1px solid #ddcaff;}
.items-card td{border-bottom:1px solid #f3ecff;}
.totals-card{width:330px;border-radius:6px;border:1px solid #d8c6ff;padding:10px 11px;background:#faf6ff;}
.total-row td{border-top:1px solid #c3aef7;}
`

const darkCSS = `
body{background:#05060a;color:#f2f5ff;}
.page{background:#0f1117;padding:22px 24px 26px;border-radius:10px;box-shadow:0 16px 40px rgba(0,0,0,0.55);}
.header-bar{display:flex;justify-content:space-between;margin-bottom:18px;}
.invoice-title{font-size:24px;font-weight:700;letter-spacing:0.12em;color:var(--accent);}
.meta{color:#c2c6dd;}
.label{color:#8b8fa4;}
.bill-block{text-align:right;font-size:13px;}
.items-card{border-radius:8px;border:1px solid #22263b;overflow:hidden;margin-top:10px;}
.items-card th{background:#151827;color:#e5e8ff;border-bottom:1px solid #272a3c;}
.items-card td{border-bottom:1px solid #171a28;}
.totals-card{width:330px;border-radius:8px;background:#151827;padding:10px 12px;border:1px solid #313652;}
.totals-table td{color:#e2e6ff;}
.total-row td{border-top:1px solid #444a70;}
.footer-note{color:#858bb0;}
`

const compactCSS = `
body{font-size:12px;}
.page{max-width:760px;}
.header-bar{display:flex;justify-content:space-between;margin-bottom:10px;}
.invoice-title{font-size:18px;font-weight:700;color:var(--accent);}
.meta{font-size:11px;}
.bill-block{text-align:right;}
th,td{padding:4px 5px;font-size:11px;}
.items-card th{background:#f0f4ff;border-bottom:1px solid #d3ddff;}
.items-card td{border-bottom:1px solid #f3f5ff;}
.totals-card{width:300px;}
.totals-table td{padding:2px 0;}
.total-row td{border-top:1px solid #ccd3ff;}
`
