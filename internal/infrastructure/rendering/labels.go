package rendering

import (
	"strings"

	"golang.org/x/text/language"
)

// labelPairs holds the stable bilingual vocabulary used on documents. The
// host translation catalog is deliberately bypassed: community translations
// mix scripts or duplicate label prefixes, and document labels must stay
// stable across host language-pack updates.
var labelPairs = map[string][2]string{
	"bill_to":      {"Bill To", "বিল টু"},
	"ship_to":      {"Ship To", "শিপ টু"},
	"name":         {"Name:", "নামঃ"},
	"phone":        {"Phone:", "ফোনঃ"},
	"email":        {"Email:", "ইমেইলঃ"},
	"address":      {"Address:", "ঠিকানাঃ"},
	"invoice":      {"INVOICE", "ইনভয়েস"},
	"packing":      {"PACKING SLIP", "প্যাকিং স্লিপ"},
	"order_id":     {"Order ID:", "অর্ডার আইডিঃ"},
	"order_status": {"Order Status:", "অর্ডার স্ট্যাটাসঃ"},
	"order_date":   {"Order Date:", "অর্ডার ডেটঃ"},
	"subtotal":     {"Subtotal", "সাবটোটাল"},
	"shipping":     {"Shipping", "শিপিং"},
	"discount":     {"Discount", "ডিসকাউন্ট"},
	"grand_total":  {"Grand Total", "গ্র্যান্ড টোটাল"},
	"auth_sign":    {"Authorized Signature", "অনুমোদিত স্বাক্ষর"},
	"thank_you":    {"Thank you for your purchase!", "আপনার ক্রয়ের জন্য ধন্যবাদ!"},
}

// inlineLabelKeys are rendered directly in front of a value. They carry a
// trailing NBSP so the label never visually sticks to the value in PDF
// output; callers must not add their own separator for these keys.
var inlineLabelKeys = map[string]bool{
	"name":    true,
	"phone":   true,
	"email":   true,
	"address": true,
}

// Label resolves a document label for the given locale tag. Unknown keys are
// returned verbatim.
func Label(key, locale string) string {
	pair, ok := labelPairs[key]
	if !ok {
		return key
	}
	out := pair[0]
	if IsBengaliLocale(locale) {
		out = pair[1]
	}
	out = Sanitize(out)
	if inlineLabelKeys[key] {
		out += "\u00a0"
	}
	return out
}

// IsBengaliLocale reports whether the locale tag selects Bengali label text.
// Any tag whose language subtag is "bn" (bn, bn-BD, bn_IN, ...) qualifies.
func IsBengaliLocale(locale string) bool {
	tag, err := language.Parse(locale)
	if err == nil {
		base, _ := tag.Base()
		return base.String() == "bn"
	}
	loc := strings.ToLower(locale)
	return loc == "bn" || strings.HasPrefix(loc, "bn-") || strings.HasPrefix(loc, "bn_")
}
