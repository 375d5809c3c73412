package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/command/common"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramStatus = "status"
	paramPDF    = "pdf"
)

func Command() *cli.Command {
	flags := common.WithCommonFlags(
		common.ProcuradorFlag(),
		common.MonthFlag(),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramStatus,
			Value: string(view.BucketAll),
			Usage: "Status bucket to filter by (all, active, finished)",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramPDF,
			Usage: "Export the report as a PDF document to the given path ('-' for stdout)",
		}),
	)
	return &cli.Command{
		Name:   "report",
		Usage:  "Print or export the tasks report",
		Flags:  flags,
		Before: altsrc.InitInputSourceWithContext(flags, common.NewResolverSourceFromFlagFunc("config")),
		Action: func(ctx *cli.Context) error {
			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create client")
			}

			month, err := common.GetMonth(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			filter := view.ReportFilter{
				Procurador: ctx.String(common.ParamProcurador),
				Status:     view.StatusBucket(ctx.String(paramStatus)),
				Month:      month,
			}

			if path := ctx.String(paramPDF); path != "" {
				return exportPDF(ctx, filter, path)
			}

			projection, err := client.Reports(ctx.Context, filter)
			if err != nil {
				return errors.Wrap(err, "could not retrieve report")
			}

			return common.PrintTasks(ctx.App.Writer, projection.Rows)
		},
	}
}

func exportPDF(ctx *cli.Context, filter view.ReportFilter, path string) error {
	client, err := common.GetClient(ctx)
	if err != nil {
		return errors.Wrap(err, "could not create client")
	}

	if path == "-" {
		if err := client.ExportReport(ctx.Context, filter, ctx.App.Writer); err != nil {
			return errors.Wrap(err, "could not export report")
		}

		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create file '%s'", path)
	}

	counter := &countingWriter{w: file}

	exportErr := client.ExportReport(ctx.Context, filter, counter)

	if err := file.Close(); err != nil && exportErr == nil {
		exportErr = errors.WithStack(err)
	}

	if exportErr == nil {
		exportErr = checkPDF(path)
	}

	if exportErr != nil {
		if err := os.Remove(path); err != nil {
			slog.WarnContext(ctx.Context, "could not remove incomplete report", slog.String("path", path), slogx.Error(errors.WithStack(err)))
		}

		return errors.Wrap(exportErr, "could not export report")
	}

	fmt.Fprintf(ctx.App.ErrWriter, "report exported to '%s' (%s) at %s\n", path, humanize.Bytes(counter.written), time.Now().Format(time.DateTime))

	return nil
}

func checkPDF(path string) error {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return errors.WithStack(err)
	}

	if !mime.Is("application/pdf") {
		return errors.Errorf("unexpected exported document type '%s'", mime.String())
	}

	return nil
}

type countingWriter struct {
	w       io.Writer
	written uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.written += uint64(n)
	return n, err
}
