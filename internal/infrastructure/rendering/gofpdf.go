package rendering

import (
	"fmt"
	"path/filepath"
	"strings"

	gofpdf "github.com/guimaraeslucas/gofpdf"
)

// pageSizesMM maps supported page sizes to width and height in millimetres,
// portrait orientation.
var pageSizesMM = map[string][2]float64{
	"a3":     {297, 420},
	"a4":     {210, 297},
	"a5":     {148, 210},
	"letter": {215.9, 279.4},
	"legal":  {215.9, 355.6},
}

// GofpdfFactory builds the embedded pure-Go engine. It has no runtime
// dependencies, so it is always available, but the library only carries the
// core Latin font set and cannot embed TrueType files. New refuses any
// configuration that needs a script substitution face; callers then fall
// back to the print view instead of serving documents with missing glyphs.
type GofpdfFactory struct{}

func (GofpdfFactory) Name() string { return "gofpdf" }

func (GofpdfFactory) Available() bool { return true }

func (GofpdfFactory) New(cfg EngineConfig) (Engine, error) {
	size := strings.ToLower(cfg.PageSize)
	if _, ok := pageSizesMM[size]; !ok {
		size = "a4"
	}
	doc := gofpdf.NewFpdf("P", "mm", size)
	doc.SetMargins(cfg.Margins.Left, cfg.Margins.Top, &cfg.Margins.Right)
	doc.SetAutoPageBreak(true, cfg.Margins.Bottom)

	e := &gofpdfEngine{doc: doc, pageSize: size}

	// The library only ships core font definitions and signals every
	// failure by panicking, so each registration is attempted in
	// isolation. Latin faces that fail downgrade to the core fallback. A
	// face carrying an Alias is a script substitution font; losing it
	// means whole scripts render as missing-glyph boxes, so that failure
	// makes the engine unusable for this configuration.
	registered := map[string]bool{}
	for _, spec := range cfg.Fonts {
		familyOK := false
		if err := e.addFont(spec.Family, spec); err == nil {
			familyOK = true
			registered[spec.Family] = true
		}
		if spec.Alias == "" {
			continue
		}
		aliasOK := false
		if err := e.addFont(spec.Alias, spec); err == nil {
			aliasOK = true
			registered[spec.Alias] = true
		}
		if !familyOK || !aliasOK {
			return nil, fmt.Errorf("gofpdf: cannot embed substitution font %s: %w",
				spec.Family, ErrEngineUnavailable)
		}
	}

	family := "helvetica"
	if registered[cfg.DefaultFamily] {
		family = cfg.DefaultFamily
	}
	if err := e.setFont(family); err != nil {
		if err = e.setFont("helvetica"); err != nil {
			return nil, fmt.Errorf("gofpdf: no usable font: %w", err)
		}
	}

	if cfg.Watermark != nil {
		e.installWatermark(*cfg.Watermark)
	}
	return e, nil
}

type gofpdfEngine struct {
	doc      *gofpdf.Fpdf
	pageSize string
	closed   bool
}

// capture converts the library's panic-based errors into a regular error.
func capture(errp *error) {
	if r := recover(); r != nil {
		*errp = fmt.Errorf("gofpdf: %v", r)
	}
}

func (e *gofpdfEngine) addFont(family string, spec FontSpec) (err error) {
	defer capture(&err)
	e.doc.AddFont(family, spec.Style, filepath.Base(spec.File), filepath.Dir(spec.File))
	return nil
}

func (e *gofpdfEngine) setFont(family string) (err error) {
	defer capture(&err)
	e.doc.SetFont(family, "", 10)
	return nil
}

// installWatermark draws the image centered behind the content of every
// page. The engine has no alpha channel support, so the configured opacity
// is not applied; an unreadable watermark image must not break the
// document, so draw failures are swallowed.
func (e *gofpdfEngine) installWatermark(w WatermarkSpec) {
	sz := pageSizesMM[e.pageSize]
	const side = 100.0
	x := (sz[0] - side) / 2
	y := (sz[1] - side) / 2
	e.doc.SetHeaderFunc(func() {
		defer func() { recover() }()
		e.doc.Image(w.ImagePath, x, y, side, 0, "", nil)
	})
}

func (e *gofpdfEngine) WriteHTML(html string) (err error) {
	if e.closed {
		return fmt.Errorf("gofpdf: engine is closed")
	}
	defer capture(&err)
	e.doc.WriteHTML(html)
	return nil
}

func (e *gofpdfEngine) Output() (out []byte, err error) {
	defer capture(&err)
	s, err := e.doc.Output("S", "")
	if err != nil {
		return nil, fmt.Errorf("gofpdf: %w", err)
	}
	e.closed = true
	return []byte(s), nil
}

func (e *gofpdfEngine) OutputFile(path string) (err error) {
	defer capture(&err)
	if _, err := e.doc.Output("F", path); err != nil {
		return fmt.Errorf("gofpdf: %w", err)
	}
	e.closed = true
	return nil
}

func (e *gofpdfEngine) Close() error {
	e.closed = true
	return nil
}
