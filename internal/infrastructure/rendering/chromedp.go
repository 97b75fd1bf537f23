package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const defaultChromeTimeout = 30 * time.Second

// chromeBinaries are probed on PATH to decide engine availability when no
// remote browser is configured.
var chromeBinaries = []string{
	"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell",
}

// ChromedpFactory builds the Chrome DevTools Protocol engine. It requires a
// local Chrome/Chromium binary or a remote browser endpoint.
type ChromedpFactory struct {
	// RemoteURL is the DevTools websocket URL of a remote browser. When
	// empty a local browser is launched per document.
	RemoteURL string
	// Timeout bounds one document render. Zero means the default.
	Timeout time.Duration
	Logger  *zap.Logger
}

func (f ChromedpFactory) Name() string { return "chromedp" }

func (f ChromedpFactory) Available() bool {
	if f.RemoteURL != "" {
		return true
	}
	for _, bin := range chromeBinaries {
		if _, err := exec.LookPath(bin); err == nil {
			return true
		}
	}
	return false
}

func (f ChromedpFactory) New(cfg EngineConfig) (Engine, error) {
	if !f.Available() {
		return nil, ErrEngineUnavailable
	}
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := f.Timeout
	if timeout == 0 {
		timeout = defaultChromeTimeout
	}
	return &chromedpEngine{cfg: cfg, remoteURL: f.RemoteURL, timeout: timeout, logger: logger}, nil
}

// chromedpEngine accumulates HTML and renders it in one browser session at
// Output time.
type chromedpEngine struct {
	cfg       EngineConfig
	remoteURL string
	timeout   time.Duration
	logger    *zap.Logger
	body      strings.Builder
	closed    bool
}

func (e *chromedpEngine) WriteHTML(html string) error {
	if e.closed {
		return fmt.Errorf("chromedp: engine is closed")
	}
	e.body.WriteString(html)
	return nil
}

func (e *chromedpEngine) Output() ([]byte, error) {
	if e.closed {
		return nil, fmt.Errorf("chromedp: engine is closed")
	}
	e.closed = true

	html := e.completeHTML()
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	var allocCtx context.Context
	var allocCancel context.CancelFunc
	if e.remoteURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, e.remoteURL)
	} else {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-first-run", true),
			chromedp.Flag("disable-extensions", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("font-render-hinting", "none"),
		)
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, opts...)
	}
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			e.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	size, ok := pageSizesMM[strings.ToLower(e.cfg.PageSize)]
	if !ok {
		size = pageSizesMM["a4"]
	}

	start := time.Now()
	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(mmToInches(size[0])).
				WithPaperHeight(mmToInches(size[1])).
				WithMarginTop(mmToInches(e.cfg.Margins.Top)).
				WithMarginRight(mmToInches(e.cfg.Margins.Right)).
				WithMarginBottom(mmToInches(e.cfg.Margins.Bottom)).
				WithMarginLeft(mmToInches(e.cfg.Margins.Left)).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("chromedp: render timed out after %v: %w", e.timeout, err)
		}
		e.logger.Error("chromedp rendering failed", zap.Error(err))
		return nil, fmt.Errorf("chromedp: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("chromedp: generated PDF is empty")
	}
	e.logger.Info("PDF rendered",
		zap.Int("bytes", len(pdfData)),
		zap.Duration("duration", time.Since(start)))
	return pdfData, nil
}

func (e *chromedpEngine) OutputFile(path string) error {
	data, err := e.Output()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (e *chromedpEngine) Close() error {
	e.closed = true
	return nil
}

// completeHTML wraps the accumulated body in a full document with the font
// faces and the watermark layer injected.
func (e *chromedpEngine) completeHTML() string {
	body := e.body.String()
	if strings.Contains(strings.ToLower(body), "<!doctype") ||
		strings.Contains(strings.ToLower(body), "<html") {
		return body
	}

	var buf strings.Builder
	buf.WriteString("<!DOCTYPE html><html><head><meta charset=\"UTF-8\"><style>")
	for _, f := range e.cfg.Fonts {
		writeFontFace(&buf, f.Family, f)
		if f.Alias != "" {
			writeFontFace(&buf, f.Alias, f)
		}
	}
	buf.WriteString("body{font-family:")
	buf.WriteString(fontStack(e.cfg))
	buf.WriteString(";margin:0;}")
	if w := e.cfg.Watermark; w != nil {
		fmt.Fprintf(&buf,
			".watermark{position:fixed;top:0;left:0;right:0;bottom:0;"+
				"background:url('file://%s') no-repeat center center;"+
				"background-size:60%%;opacity:%.3f;z-index:-1;}",
			w.ImagePath, w.Opacity)
	}
	buf.WriteString("</style></head><body>")
	if e.cfg.Watermark != nil {
		buf.WriteString(`<div class="watermark"></div>`)
	}
	buf.WriteString(body)
	buf.WriteString("</body></html>")
	return buf.String()
}

func writeFontFace(buf *strings.Builder, family string, f FontSpec) {
	fmt.Fprintf(buf, "@font-face{font-family:'%s';src:url('file://%s');", family, f.File)
	if strings.Contains(f.Style, "B") {
		buf.WriteString("font-weight:bold;")
	}
	if strings.Contains(f.Style, "I") {
		buf.WriteString("font-style:italic;")
	}
	buf.WriteString("}")
}

// fontStack builds the CSS family list: default first, then backups.
func fontStack(cfg EngineConfig) string {
	seen := map[string]bool{}
	var fams []string
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			fams = append(fams, "'"+f+"'")
		}
	}
	add(cfg.DefaultFamily)
	for _, f := range cfg.BackupFamilies {
		add(f)
	}
	fams = append(fams, "sans-serif")
	return strings.Join(fams, ",")
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}
