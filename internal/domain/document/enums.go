package document

// Type represents the kind of order document that can be produced
type Type string

const (
	TypeInvoice     Type = "invoice"
	TypePackingSlip Type = "packing"
)

// IsValid checks if the Type is a valid value
func (t Type) IsValid() bool {
	switch t {
	case TypeInvoice, TypePackingSlip:
		return true
	}
	return false
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}

// FileSlug returns the filename prefix used for generated PDF files
func (t Type) FileSlug() string {
	if t == TypePackingSlip {
		return "packing-slip"
	}
	return "invoice"
}

// ParseType maps a request value to a Type; anything unrecognized is an invoice
func ParseType(s string) Type {
	if Type(s) == TypePackingSlip {
		return TypePackingSlip
	}
	return TypeInvoice
}

// Mode represents how a rendered document is delivered to the caller
type Mode string

const (
	// ModePrint serves an HTML page with a client-side print trigger.
	// It works without any PDF engine installed.
	ModePrint Mode = "print"
	// ModeView streams the generated PDF inline
	ModeView Mode = "view"
	// ModeDownload streams the generated PDF as an attachment
	ModeDownload Mode = "download"
)

// IsValid checks if the Mode is a valid value
func (m Mode) IsValid() bool {
	switch m {
	case ModePrint, ModeView, ModeDownload:
		return true
	}
	return false
}

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// RequiresEngine reports whether the mode needs a working PDF engine
func (m Mode) RequiresEngine() bool {
	return m == ModeView || m == ModeDownload
}

// Backend identifies the rendering surface the document HTML targets.
// The print backend is a browser; the pdf backend is an engine with its own
// font tables and native watermarking.
type Backend string

const (
	BackendPrint Backend = "print"
	BackendPDF   Backend = "pdf"
)

// String returns the string representation of Backend
func (b Backend) String() string {
	return string(b)
}
