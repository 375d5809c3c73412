package chromedp

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// A4 landscape, dimensions in inches.
const (
	paperWidth  = 11.69
	paperHeight = 8.27
	margin      = 10 / 25.4

	viewportWidth     = 1123
	viewportHeight    = 794
	deviceScaleFactor = 2
)

type Exporter struct {
	execPath string
	headless bool
	timeout  time.Duration
}

// Export implements port.ReportExporter.
func (e *Exporter) Export(ctx context.Context, doc port.ReportDocument) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	allocatorOptions := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", e.headless),
		chromedp.DisableGPU,
	)

	if e.execPath != "" {
		allocatorOptions = append(allocatorOptions, chromedp.ExecPath(e.execPath))
	}

	allocatorCtx, cancelAllocator := chromedp.NewExecAllocator(ctx, allocatorOptions...)
	defer cancelAllocator()

	browserCtx, cancelBrowser := chromedp.NewContext(allocatorCtx)
	defer cancelBrowser()

	start := time.Now()

	var data []byte

	err := chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(viewportWidth, viewportHeight, deviceScaleFactor, false),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := page.SetDocumentContent(frameTree.Frame.ID, string(doc.HTML)).Do(ctx); err != nil {
				return errors.WithStack(err)
			}

			return nil
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			data = pdf

			return nil
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not print report")
	}

	slog.DebugContext(ctx, "report printed",
		slog.String("filename", doc.Filename),
		slog.String("size", humanize.Bytes(uint64(len(data)))),
		slog.Duration("duration", time.Since(start)),
	)

	return io.NopCloser(bytes.NewReader(data)), nil
}

type Options struct {
	ExecPath string
	Headless bool
	Timeout  time.Duration
}

type OptionFunc func(opts *Options)

func WithExecPath(path string) OptionFunc {
	return func(opts *Options) {
		opts.ExecPath = path
	}
}

func WithHeadless(headless bool) OptionFunc {
	return func(opts *Options) {
		opts.Headless = headless
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

func NewExporter(funcs ...OptionFunc) *Exporter {
	opts := &Options{
		Headless: true,
		Timeout:  time.Minute,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return &Exporter{
		execPath: opts.ExecPath,
		headless: opts.Headless,
		timeout:  opts.Timeout,
	}
}

var _ port.ReportExporter = &Exporter{}
