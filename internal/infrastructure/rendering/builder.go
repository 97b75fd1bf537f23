package rendering

import (
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"

	"github.com/srpos/backend/internal/domain/document"
	"github.com/srpos/backend/internal/domain/order"
	"github.com/srpos/backend/internal/domain/settings"
)

// Assets are the resolved media references for one document render. URLs
// are empty when the underlying attachment is unset or missing.
type Assets struct {
	// LogoURL is the company logo at medium size.
	LogoURL string
	// WatermarkSrc is a data URI when the image could be inlined,
	// otherwise a plain URL. Only used by the print view; PDF engines
	// apply the watermark natively.
	WatermarkSrc string
	// Font URLs for the browser-print @font-face rules.
	BengaliFontRegularURL string
	BengaliFontBoldURL    string
	CustomFontURL         string
	// ItemImageURL resolves a line item's image attachment to a
	// thumbnail URL. Nil disables item images regardless of settings.
	ItemImageURL func(id uuid.UUID) string
}

// Builder assembles the self-contained HTML document for one order. The
// same markup feeds both the browser print view and the PDF engines.
type Builder struct {
	Settings settings.Settings
	Assets   Assets
	// Locale selects the label language.
	Locale string
}

// Build renders the document. The print backend gets the HTML watermark
// layer and the @font-face rules; PDF backends handle both natively.
func (b *Builder) Build(o *order.Order, typ document.Type, backend document.Backend) string {
	s := b.Settings.Normalized()
	isPacking := typ == document.TypePackingSlip
	opacity := settings.NormalizeOpacity(s.WatermarkOpacity)

	css := buildCSS(styleParams{
		PrimaryColor:      s.PrimaryColor,
		StatusColor:       o.Status.Color(),
		WatermarkOpacity:  opacity,
		FontStack:         documentFontStack(b.Assets.CustomFontURL != ""),
		BengaliRegularURL: b.Assets.BengaliFontRegularURL,
		BengaliBoldURL:    b.Assets.BengaliFontBoldURL,
		CustomFontURL:     b.Assets.CustomFontURL,
	})

	var h strings.Builder
	h.WriteString(`<!doctype html><html><head><meta charset="utf-8"><style>`)
	h.WriteString(css)
	h.WriteString(`</style></head><body>`)
	h.WriteString(`<div class="wrap">`)
	if backend == document.BackendPrint && b.Assets.WatermarkSrc != "" {
		fmt.Fprintf(&h, `<div class="wm" aria-hidden="true"><img src="%s" alt="" /></div>`,
			html.EscapeString(b.Assets.WatermarkSrc))
	}
	h.WriteString(`<div class="content">`)

	b.writeHeader(&h, o, s, isPacking)
	b.writeCustomerSection(&h, o, s)
	b.writeItemsTable(&h, o, s, isPacking)
	if !isPacking {
		b.writeTotals(&h, o)
	}
	b.writeFooter(&h, s, isPacking)

	h.WriteString(`</div></div></body></html>`)
	return h.String()
}

// label resolves and escapes a bilingual label, with Bengali runs wrapped
// for the script-aware font rules.
func (b *Builder) label(key string) string {
	return WrapBengaliRuns(Label(key, b.Locale))
}

func (b *Builder) writeHeader(h *strings.Builder, o *order.Order, s settings.Settings, isPacking bool) {
	h.WriteString(`<div class="topline"><table class="headertable"><tr>`)

	h.WriteString(`<td style="width:60%">`)
	if b.Assets.LogoURL != "" {
		fmt.Fprintf(h, `<div class="logo"><img src="%s" alt="" /></div>`, html.EscapeString(b.Assets.LogoURL))
	}
	h.WriteString(`<div class="company"><h1>` + WrapBengaliRuns(Sanitize(s.CompanyName)) + `</h1>`)
	if addr := Sanitize(s.CompanyAddress); addr != "" {
		h.WriteString(`<div class="meta">` + WrapBengaliRuns(addr) + `</div>`)
	}
	if phone := CleanPhone(s.CompanyPhone); phone != "" {
		h.WriteString(`<div class="meta">` + b.label("phone") + html.EscapeString(phone) + `</div>`)
	}
	if email := Sanitize(s.CompanyEmail); email != "" {
		h.WriteString(`<div class="meta">` + b.label("email") + html.EscapeString(email) + `</div>`)
	}
	h.WriteString(`</div></td>`)

	h.WriteString(`<td style="width:40%; text-align:right;">`)
	title := "invoice"
	if isPacking {
		title = "packing"
	}
	h.WriteString(`<p class="doc-title">` + b.label(title) + `</p>`)
	h.WriteString(`<div class="orderbox"><table class="ordertable">`)
	fmt.Fprintf(h, `<tr><td class="k">%s</td><td class="v">#%s</td></tr>`,
		b.label("order_id"), html.EscapeString(o.Number))
	if !isPacking {
		fmt.Fprintf(h, `<tr><td class="k">%s</td><td class="v"><span class="badge">%s</span></td></tr>`,
			b.label("order_status"), html.EscapeString(o.Status.DisplayName()))
	}
	if !o.CreatedAt.IsZero() {
		fmt.Fprintf(h, `<tr><td class="k">%s</td><td class="v">%s</td></tr>`,
			b.label("order_date"), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	h.WriteString(`</table></div></td>`)

	h.WriteString(`</tr></table></div>`)
}

func (b *Builder) writeCustomerSection(h *strings.Builder, o *order.Order, s settings.Settings) {
	if !s.ShowCustomer {
		return
	}

	billBox := b.addressBox(o.Billing, "bill_to", true)

	if !s.ShowShipping {
		h.WriteString(`<div class="addrfull">` + billBox + `</div>`)
		return
	}

	shipBox := b.addressBox(o.Shipping, "ship_to", false)
	h.WriteString(`<table class="addrtable"><tr>`)
	h.WriteString(`<td class="addrcol addrpad-right">` + billBox + `</td>`)
	h.WriteString(`<td class="addrcol addrpad-left">` + shipBox + `</td>`)
	h.WriteString(`</tr></table>`)
}

// addressBox renders one address panel. Contact lines (phone, email) only
// appear on the billing panel.
func (b *Builder) addressBox(a order.Address, titleKey string, contact bool) string {
	var box strings.Builder
	box.WriteString(`<div class="addrbox">`)
	box.WriteString(`<div class="boxtitle">` + b.label(titleKey) + `</div>`)

	wroteAny := false
	if name := Sanitize(a.FullName()); name != "" {
		fmt.Fprintf(&box, `<div class="line"><span class="label">%s</span><span class="value">%s</span></div>`,
			b.label("name"), WrapBengaliRuns(name))
		wroteAny = true
	}
	if contact {
		if phone := CleanPhone(a.Phone); phone != "" {
			fmt.Fprintf(&box, `<div class="line"><span class="label">%s</span><span class="value">%s</span></div>`,
				b.label("phone"), WrapBengaliRuns(phone))
			wroteAny = true
		}
		if email := Sanitize(a.Email); email != "" {
			fmt.Fprintf(&box, `<div class="line"><span class="label">%s</span><span class="value">%s</span></div>`,
				b.label("email"), WrapBengaliRuns(email))
			wroteAny = true
		}
	}
	if addr := FormatAddressHTML(a); addr != "" {
		fmt.Fprintf(&box, `<div class="line"><span class="label">%s</span><span class="value">%s</span></div>`,
			b.label("address"), addr)
		wroteAny = true
	}
	if !wroteAny && !contact {
		box.WriteString(`<div class="line label">Same as billing address</div>`)
	}
	box.WriteString(`</div>`)
	return box.String()
}

// FormatAddressHTML renders a postal address as sanitized, script-wrapped
// lines joined by <br>. Country and state codes are resolved to names.
func FormatAddressHTML(a order.Address) string {
	var parts []string
	add := func(p string) {
		if p = Sanitize(p); p != "" {
			parts = append(parts, p)
		}
	}
	add(a.Line1)
	add(a.Line2)

	var cityParts []string
	for _, p := range []string{a.City, StateName(a.Country, a.Region), a.Postcode} {
		if p = Sanitize(p); p != "" {
			cityParts = append(cityParts, p)
		}
	}
	if len(cityParts) > 0 {
		parts = append(parts, strings.Join(cityParts, ", "))
	}
	add(CountryName(a.Country))

	if len(parts) == 0 {
		return ""
	}
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = WrapBengaliRuns(p)
	}
	return strings.Join(lines, "<br>")
}

func (b *Builder) writeItemsTable(h *strings.Builder, o *order.Order, s settings.Settings, isPacking bool) {
	showImg := s.ShowImage && b.Assets.ItemImageURL != nil

	h.WriteString(`<table class="itemstable"><thead><tr>`)
	if showImg {
		h.WriteString(`<th>Image</th>`)
	}
	h.WriteString(`<th>Product</th>`)
	if s.ShowSKU {
		h.WriteString(`<th>SKU</th>`)
	}
	h.WriteString(`<th>Qty</th>`)
	if !isPacking {
		h.WriteString(`<th>Price</th><th>Total</th>`)
	}
	h.WriteString(`</tr></thead><tbody>`)

	for _, item := range o.Items {
		h.WriteString(`<tr>`)
		if showImg {
			h.WriteString(`<td class="imgcell">`)
			if item.ImageID != uuid.Nil {
				if url := b.Assets.ItemImageURL(item.ImageID); url != "" {
					fmt.Fprintf(h, `<img src="%s" width="42" height="42" />`, html.EscapeString(url))
				}
			}
			h.WriteString(`</td>`)
		}
		h.WriteString(`<td class="namecell">` + WrapBengaliRuns(Sanitize(item.Name)) + `</td>`)
		if s.ShowSKU {
			h.WriteString(`<td class="skucell">` + html.EscapeString(item.SKU) + `</td>`)
		}
		fmt.Fprintf(h, `<td class="qtycell">%d</td>`, item.Quantity)
		if !isPacking {
			fmt.Fprintf(h, `<td class="pricecell">%s</td><td class="totalcell">%s</td>`,
				FormatMoney(item.UnitPrice, o.Currency), FormatMoney(item.Total, o.Currency))
		}
		h.WriteString(`</tr>`)
	}
	h.WriteString(`</tbody></table>`)
}

func (b *Builder) writeTotals(h *strings.Builder, o *order.Order) {
	h.WriteString(`<table class="summarywrap"><tr><td class="sumspacer"></td><td class="sumcol">`)
	h.WriteString(`<table class="summary">`)
	fmt.Fprintf(h, `<tr><td>%s</td><td class="sumval">%s</td></tr>`,
		b.label("subtotal"), FormatMoney(o.Subtotal, o.Currency))
	fmt.Fprintf(h, `<tr><td>%s</td><td class="sumval">%s</td></tr>`,
		b.label("shipping"), FormatMoney(o.ShippingTotal, o.Currency))
	fmt.Fprintf(h, `<tr><td>%s</td><td class="sumval">-%s</td></tr>`,
		b.label("discount"), FormatMoney(o.DisplayDiscount(), o.Currency))
	fmt.Fprintf(h, `<tr class="grand"><td>%s</td><td class="sumval">%s</td></tr>`,
		b.label("grand_total"), FormatMoney(o.GrandTotal, o.Currency))
	h.WriteString(`</table></td></tr></table>`)
}

func (b *Builder) writeFooter(h *strings.Builder, s settings.Settings, isPacking bool) {
	h.WriteString(`<div class="footer"><table class="footertable"><tr>`)
	h.WriteString(`<td class="footleft">`)
	if !isPacking {
		h.WriteString(`<div class="thanks">` + WrapBengaliRuns(Sanitize(s.ThankYou)) + `</div>`)
	}
	h.WriteString(`</td>`)
	h.WriteString(`<td class="footright"><div class="sign"><div class="sigline"></div><div class="sigtext">` +
		b.label("auth_sign") + `</div></div></td>`)
	h.WriteString(`</tr></table>`)
	if footer := Sanitize(s.FooterText); footer != "" {
		h.WriteString(`<div class="small">` + WrapBengaliRuns(footer) + `</div>`)
	}
	h.WriteString(`</div>`)
}
