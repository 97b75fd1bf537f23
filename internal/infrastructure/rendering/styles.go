package rendering

import (
	"fmt"
	"strings"
)

// baseCSS is the document stylesheet. Placeholders are substituted at build
// time so the Bengali font faces, watermark opacity and shop colors reach
// the browser print view without a separate asset request.
const baseCSS = `
{font_faces}
body{margin:0;padding:0;color:#111827;font-size:12px;}
.wrap{position:relative;}
.content{position:relative;z-index:1;padding:24px;}
.wm{position:fixed;top:0;left:0;right:0;bottom:0;z-index:0;display:flex;align-items:center;justify-content:center;opacity:{wm_opacity};}
.wm img{max-width:60%;max-height:60%;}
body, td, th, div, span, p{font-family:{font_stack};}
.bnrun{font-family:'notosansbengali','freeserif',{font_stack};}
h1{font-size:18px;margin:0 0 4px;color:{primary};}
.headertable{width:100%;border-collapse:collapse;}
.logo img{max-height:56px;margin-bottom:6px;}
.meta{font-size:11px;color:#4b5563;line-height:1.5;}
.doc-title{font-size:20px;font-weight:700;letter-spacing:1px;margin:0 0 8px;color:{primary};}
.orderbox{display:inline-block;text-align:left;}
.ordertable{border-collapse:collapse;font-size:11px;}
.ordertable .k{color:#4b5563;padding:2px 8px 2px 0;}
.ordertable .v{font-weight:600;}
.badge{display:inline-block;padding:2px 8px;border-radius:8px;background:{status_color};color:#fff;font-size:10px;font-weight:600;}
.addrtable{width:100%;border-collapse:collapse;margin:14px 0;}
.addrcol{width:50%;vertical-align:top;}
.addrpad-right{padding-right:8px;}
.addrpad-left{padding-left:8px;}
.addrfull{margin:14px 0;}
.addrbox{border:1px solid #e5e7eb;border-radius:10px;padding:10px 12px;}
.boxtitle{font-weight:700;margin-bottom:6px;color:{primary};}
.line{font-size:11px;line-height:1.6;}
.label{color:#4b5563;}
.itemstable{width:100%;border-collapse:collapse;margin:10px 0;}
.itemstable th{text-align:left;font-size:11px;color:#fff;background:{primary};padding:6px 8px;}
.itemstable td{font-size:11px;padding:6px 8px;border-bottom:1px solid #e5e7eb;vertical-align:middle;}
.imgcell{width:48px;}
.imgcell img{border-radius:6px;}
.qtycell{text-align:center;width:40px;}
.pricecell,.totalcell{text-align:right;white-space:nowrap;}
.summarywrap{width:100%;border-collapse:collapse;}
.sumspacer{width:55%;}
.summary{width:100%;border-collapse:collapse;font-size:11px;}
.summary td{padding:4px 8px;}
.sumval{text-align:right;white-space:nowrap;}
.summary .grand td{font-weight:700;font-size:13px;border-top:2px solid {primary};color:{primary};}
.footer{margin-top:28px;}
.footertable{width:100%;border-collapse:collapse;}
.footleft{vertical-align:bottom;}
.footright{text-align:right;vertical-align:bottom;width:200px;}
.thanks{font-size:12px;color:#4b5563;}
.sign{display:inline-block;text-align:center;}
.sigline{border-top:1px solid #9ca3af;width:180px;margin-bottom:4px;}
.sigtext{font-size:10px;color:#4b5563;}
.small{margin-top:10px;font-size:10px;color:#6b7280;}
@media print{.noprint{display:none !important;}}
`

// styleParams are the runtime values substituted into baseCSS.
type styleParams struct {
	PrimaryColor     string
	StatusColor      string
	WatermarkOpacity float64
	FontStack        string
	BengaliRegularURL string
	BengaliBoldURL    string
	CustomFontURL     string
}

func buildCSS(p styleParams) string {
	r := strings.NewReplacer(
		"{font_faces}", fontFaces(p),
		"{font_stack}", p.FontStack,
		"{wm_opacity}", fmt.Sprintf("%.3f", p.WatermarkOpacity),
		"{primary}", p.PrimaryColor,
		"{status_color}", p.StatusColor,
	)
	return r.Replace(baseCSS)
}

// fontFaces emits the browser-print @font-face rules. PDF engines embed
// fonts separately, so these only matter for the print view.
func fontFaces(p styleParams) string {
	var b strings.Builder
	if p.BengaliRegularURL != "" {
		fmt.Fprintf(&b, "@font-face{font-family:'notosansbengali';src:url('%s') format('truetype');font-weight:400;font-style:normal;}", p.BengaliRegularURL)
	}
	if p.BengaliBoldURL != "" {
		fmt.Fprintf(&b, "@font-face{font-family:'notosansbengali';src:url('%s') format('truetype');font-weight:700;font-style:normal;}", p.BengaliBoldURL)
	}
	if p.CustomFontURL != "" {
		fmt.Fprintf(&b, "@font-face{font-family:'%s';src:url('%s') format('truetype');font-weight:400;font-style:normal;}", FamilyCustom, p.CustomFontURL)
		fmt.Fprintf(&b, "@font-face{font-family:'%s';src:url('%s') format('truetype');font-weight:700;font-style:normal;}", FamilyCustom, p.CustomFontURL)
	}
	return b.String()
}

// documentFontStack keeps a Bengali-capable family early in the stack so bn
// labels and addresses never fall back to a tofu glyph, even when a custom
// font is configured.
func documentFontStack(hasCustomFont bool) string {
	stack := "'dejavusans','notosansbengali',sans-serif"
	if hasCustomFont {
		stack = "'" + FamilyCustom + "'," + stack
	}
	return stack
}
