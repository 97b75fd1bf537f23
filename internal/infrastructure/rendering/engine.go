package rendering

import "errors"

// ErrEngineUnavailable is returned when no PDF engine can run on this host,
// for example when the configured engine is disabled or its runtime
// dependency is missing. Callers fall back to the print view.
var ErrEngineUnavailable = errors.New("pdf engine unavailable")

// FontSpec registers a TrueType face with an engine.
type FontSpec struct {
	// Family is the CSS family name the face answers to.
	Family string
	// Style is the gofpdf style selector: "", "B", "I" or "BI".
	Style string
	// File is the absolute path of the .ttf file.
	File string
	// Alias optionally registers the same face under a second family name.
	// Used to shadow an engine's built-in script fallback family.
	Alias string
}

// WatermarkSpec places a faded image behind the page content.
type WatermarkSpec struct {
	ImagePath string
	// Opacity is in [0, 1].
	Opacity float64
}

// Margins are page margins in millimetres.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// EngineConfig is the engine-independent document setup produced by the
// font configurator.
type EngineConfig struct {
	Fonts          []FontSpec
	DefaultFamily  string
	BackupFamilies []string
	Watermark      *WatermarkSpec
	PageSize       string
	Margins        Margins
}

// DefaultMargins match the document stylesheet.
func DefaultMargins() Margins {
	return Margins{Left: 10, Top: 10, Right: 10, Bottom: 14}
}

// Engine converts one HTML document into a PDF. An Engine is single-use:
// write the document, take the output, then Close.
type Engine interface {
	// WriteHTML appends rendered HTML to the document body.
	WriteHTML(html string) error
	// Output finalizes the document and returns the PDF bytes.
	Output() ([]byte, error)
	// OutputFile finalizes the document and writes it to path.
	OutputFile(path string) error
	// Close releases engine resources. Safe to call after Output.
	Close() error
}

// EngineFactory probes for and constructs a concrete engine.
type EngineFactory interface {
	Name() string
	// Available reports whether the engine can run on this host.
	Available() bool
	// New builds an engine for one document. Returns
	// ErrEngineUnavailable when Available is false.
	New(cfg EngineConfig) (Engine, error)
}

// DisabledFactory is selected when PDF output is turned off in
// configuration. Documents then always fall back to the print view.
type DisabledFactory struct{}

func (DisabledFactory) Name() string { return "none" }

func (DisabledFactory) Available() bool { return false }

func (DisabledFactory) New(EngineConfig) (Engine, error) {
	return nil, ErrEngineUnavailable
}
