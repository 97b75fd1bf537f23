package rendering

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srpos/backend/internal/domain/document"
	"github.com/srpos/backend/internal/domain/order"
)

// RenderInput carries everything one document render needs. The builder is
// already bound to the shop settings in force for this request.
type RenderInput struct {
	Order *order.Order
	Type  document.Type
	Mode  document.Mode
	// Builder produces the document HTML.
	Builder *Builder
	// CustomFontPath is the absolute path of a shop-uploaded font, empty
	// when unset.
	CustomFontPath string
	// Watermark configures the engine-native watermark, nil when unset.
	Watermark *WatermarkSpec
}

// Dispatcher routes a document request to the print view or a PDF engine
// based on the requested mode and engine availability. A missing engine
// never produces an error response; the document degrades to the print
// view instead.
type Dispatcher struct {
	Engines EngineFactory
	Fonts   FontConfigurator
	TempDir string
	Logger  *zap.Logger
	// DocumentURL builds the toolbar links on the print view. Nil hides
	// the PDF actions.
	DocumentURL func(orderID uuid.UUID, typ document.Type, mode document.Mode) string
}

// Dispatch writes the document response for the requested mode.
func (d *Dispatcher) Dispatch(w http.ResponseWriter, in RenderInput) error {
	hasEngine := d.Engines != nil && d.Engines.Available()

	if !in.Mode.RequiresEngine() || !hasEngine {
		backendHTML := in.Builder.Build(in.Order, in.Type, document.BackendPrint)
		d.servePrintPage(w, backendHTML, in, hasEngine)
		return nil
	}

	data, err := d.renderPDF(in)
	if err != nil {
		if errors.Is(err, ErrEngineUnavailable) {
			backendHTML := in.Builder.Build(in.Order, in.Type, document.BackendPrint)
			d.servePrintPage(w, backendHTML, in, false)
			return nil
		}
		return err
	}

	filename := fmt.Sprintf("%s-%s.pdf", in.Type.FileSlug(), in.Order.Number)
	disposition := "inline"
	if in.Mode == document.ModeDownload {
		disposition = "attachment"
	}
	noCacheHeaders(w)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, filename))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	return err
}

// GeneratedFile is a rendered PDF on disk. Close removes it.
type GeneratedFile struct {
	Path string
	// Name is the public attachment filename, without the random suffix.
	Name string
}

func (f *GeneratedFile) Close() error {
	err := os.Remove(f.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// GenerateFile renders the document to a uniquely named temp file, for use
// as an email attachment. Returns ErrEngineUnavailable when no engine can
// run; callers then skip the attachment rather than fail the email.
func (d *Dispatcher) GenerateFile(in RenderInput) (*GeneratedFile, error) {
	data, err := d.renderPDF(in)
	if err != nil {
		return nil, err
	}

	dir := d.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	slug := in.Type.FileSlug()
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	path := filepath.Join(dir, fmt.Sprintf("%s-%s-%s.pdf", slug, in.Order.Number, random))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write pdf file: %w", err)
	}
	return &GeneratedFile{
		Path: path,
		Name: fmt.Sprintf("%s-%s.pdf", slug, in.Order.Number),
	}, nil
}

func (d *Dispatcher) renderPDF(in RenderInput) ([]byte, error) {
	if d.Engines == nil || !d.Engines.Available() {
		return nil, ErrEngineUnavailable
	}
	cfg := d.Fonts.Configure(in.CustomFontPath, in.Watermark)
	eng, err := d.Engines.New(cfg)
	if err != nil {
		return nil, err
	}
	defer eng.Close()

	docHTML := in.Builder.Build(in.Order, in.Type, document.BackendPDF)
	if err := eng.WriteHTML(docHTML); err != nil {
		return nil, err
	}
	data, err := eng.Output()
	if err != nil {
		return nil, err
	}
	if d.Logger != nil {
		d.Logger.Info("document rendered",
			zap.String("engine", d.Engines.Name()),
			zap.String("type", string(in.Type)),
			zap.String("order", in.Order.Number),
			zap.Int("bytes", len(data)))
	}
	return data, nil
}

// servePrintPage wraps the document in a browser page with a non-printing
// toolbar and triggers the print dialog after load.
func (d *Dispatcher) servePrintPage(w http.ResponseWriter, docHTML string, in RenderInput, hasEngine bool) {
	title := "INVOICE"
	if in.Type == document.TypePackingSlip {
		title = "PACKING SLIP"
	}

	var b strings.Builder
	b.WriteString(`<!doctype html><html><head><meta charset="utf-8"><title>` + title + `</title>`)
	b.WriteString(`<style>
@media print{.noprint{display:none !important;}}
.noprint{margin:14px 0;font-family:system-ui, -apple-system, Segoe UI, Roboto, Arial;font-size:13px;}
.toolbar{display:flex;justify-content:space-between;align-items:center;gap:12px;padding:10px 12px;border:1px solid #e5e7eb;border-radius:12px;background:#f9fafb;}
.toolbar .left{display:flex;flex-direction:column;gap:2px;}
.toolbar .title{font-weight:700;color:#111827;}
.toolbar .hint{font-size:12px;color:#4b5563;}
.toolbar .actions{display:flex;flex-wrap:wrap;gap:8px;justify-content:flex-end;}
.toolbar a, .toolbar button{appearance:none;border:1px solid #d1d5db;background:#fff;border-radius:10px;padding:8px 10px;cursor:pointer;font-size:13px;text-decoration:none;color:#111827;line-height:1;}
.toolbar a:hover, .toolbar button:hover{background:#f3f4f6;}
</style></head><body>`)

	b.WriteString(`<div class="noprint"><div class="toolbar">`)
	b.WriteString(`<div class="left"><div class="title">` + title + `</div>`)
	b.WriteString(`<div class="hint">Print preview controls (won&#39;t appear on print).</div></div>`)
	b.WriteString(`<div class="actions">`)
	b.WriteString(`<button type="button" onclick="try{window.print();}catch(e){}">Print</button>`)
	if hasEngine && d.DocumentURL != nil {
		viewURL := d.DocumentURL(in.Order.ID, in.Type, document.ModeView)
		downloadURL := d.DocumentURL(in.Order.ID, in.Type, document.ModeDownload)
		b.WriteString(`<a href="` + html.EscapeString(viewURL) + `" target="_blank" rel="noopener">PDF View</a>`)
		b.WriteString(`<a href="` + html.EscapeString(downloadURL) + `" target="_blank" rel="noopener">Direct PDF Download</a>`)
	}
	b.WriteString(`</div></div>`)
	b.WriteString(`<div class="hint" style="margin-top:8px; color:#4b5563; font-size:12px;">Tip: Use your browser print dialog and choose &#8220;Save as PDF&#8221;. For clean output, turn off &#8220;Headers and footers&#8221;.</div>`)
	b.WriteString(`</div>`)

	b.WriteString(docHTML)
	b.WriteString(`<script>window.addEventListener("load",function(){setTimeout(function(){try{window.print();}catch(e){}},250);});</script>`)
	b.WriteString(`</body></html>`)

	noCacheHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(b.String()))
}

func noCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, must-revalidate, max-age=0")
	w.Header().Set("Expires", "Wed, 11 Jan 1984 05:00:00 GMT")
}
