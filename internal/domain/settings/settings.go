package settings

import (
	"context"

	"github.com/google/uuid"
)

// Key is the single configuration key the whole settings record is stored under
const Key = "srpos_settings"

// Settings is the typed settings record for the POS and document pipeline.
// It is constructed once at the boundary with defaults filled in and passed
// immutably through the rendering pipeline; the core never reads process
// globals.
type Settings struct {
	// Company profile
	CompanyName    string    `json:"company_name"`
	CompanyAddress string    `json:"company_address"`
	CompanyPhone   string    `json:"company_phone"`
	CompanyEmail   string    `json:"company_email"`
	LogoID         uuid.UUID `json:"company_logo_id"`
	WatermarkID    uuid.UUID `json:"company_watermark_logo_id"`

	// Document rendering
	PrimaryColor     string  `json:"pdf_primary_color"`
	FontFamily       string  `json:"pdf_font_family"`
	CustomFontFile   string  `json:"pdf_font_file"` // relative to the uploads dir
	WatermarkOpacity float64 `json:"pdf_watermark_opacity"`
	ShowSKU          bool    `json:"pdf_show_sku"`
	ShowImage        bool    `json:"pdf_show_image"`
	ShowCustomer     bool    `json:"pdf_show_customer_details"`
	ShowShipping     bool    `json:"pdf_show_shipping_address"`
	FooterText       string  `json:"pdf_footer_text"`
	ThankYou         string  `json:"pdf_thank_you"`
	DefaultMode      string  `json:"pdf_click_action"` // print | view | download

	// POS defaults
	POSDefaultCustomer uuid.UUID `json:"pos_default_customer"`
	POSDefaultStatus   string    `json:"pos_default_status"`
	POSDefaultPayment  string    `json:"pos_default_payment"`
	POSEnableShipping  bool      `json:"pos_enable_shipping"`
	POSEnableDiscount  bool      `json:"pos_enable_discount"`

	// Transactional email attachments
	EmailAttachEnabled   bool     `json:"email_attach_enabled"`
	EmailAttachTargets   []string `json:"email_attach_targets"`
	PackingForAdminEmail bool     `json:"email_attach_packing_admin_only"`
}

// Defaults returns the settings record used before anything is saved
func Defaults() Settings {
	return Settings{
		PrimaryColor:         "#111827",
		FontFamily:           "notosansbengali",
		WatermarkOpacity:     0.08,
		ShowSKU:              true,
		ShowImage:            true,
		ShowCustomer:         true,
		ShowShipping:         true,
		ThankYou:             "Thank you for your purchase!",
		DefaultMode:          "print",
		POSDefaultStatus:     "processing",
		POSDefaultPayment:    "pos_cash",
		POSEnableShipping:    true,
		POSEnableDiscount:    true,
		PackingForAdminEmail: true,
	}
}

// Normalized returns a copy with malformed values repaired rather than
// rejected: opacity clamped/rescaled, empty strings replaced by defaults.
func (s Settings) Normalized() Settings {
	def := Defaults()
	s.WatermarkOpacity = NormalizeOpacity(s.WatermarkOpacity)
	if s.PrimaryColor == "" {
		s.PrimaryColor = def.PrimaryColor
	}
	if s.ThankYou == "" {
		s.ThankYou = def.ThankYou
	}
	if s.DefaultMode != "print" && s.DefaultMode != "view" && s.DefaultMode != "download" {
		s.DefaultMode = def.DefaultMode
	}
	if s.POSDefaultStatus == "" {
		s.POSDefaultStatus = def.POSDefaultStatus
	}
	if s.POSDefaultPayment == "" {
		s.POSDefaultPayment = def.POSDefaultPayment
	}
	return s
}

// NormalizeOpacity accepts either a fraction (0.08) or a percentage (8) and
// returns an opacity in [0,1]. Out-of-range values clamp instead of failing.
func NormalizeOpacity(raw float64) float64 {
	if raw > 1.0 {
		raw = raw / 100.0
	}
	if raw < 0.0 {
		return 0.0
	}
	if raw > 1.0 {
		return 1.0
	}
	return raw
}

// Repository loads and stores the single settings record
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}
