package dashboard

import (
	"fmt"
	"strings"

	"github.com/bornholm/procuradoria/internal/command/common"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const paramDetails = "details"

func Command() *cli.Command {
	flags := common.WithCommonFlags(
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    paramDetails,
			Aliases: []string{"d"},
			Usage:   "Print the tasks behind a metric, formatted as <procurador>/<metric> (metrics: active, overdue, week)",
		}),
	)
	return &cli.Command{
		Name:   "dashboard",
		Usage:  "Print the workload of each attorney",
		Flags:  flags,
		Before: altsrc.InitInputSourceWithContext(flags, common.NewResolverSourceFromFlagFunc("config")),
		Action: func(ctx *cli.Context) error {
			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create client")
			}

			w := ctx.App.Writer

			if details := ctx.String(paramDetails); details != "" {
				procurador, metric, err := parseDetails(details)
				if err != nil {
					return errors.WithStack(err)
				}

				projection, err := client.Details(ctx.Context, procurador, metric)
				if err != nil {
					return errors.Wrap(err, "could not retrieve metric details")
				}

				fmt.Fprintf(w, "%s (%d)\n", projection.Title, len(projection.Tasks))

				return common.PrintTasks(w, projection.Tasks)
			}

			projection, err := client.Dashboard(ctx.Context)
			if err != nil {
				return errors.Wrap(err, "could not retrieve dashboard")
			}

			tw := common.NewTabWriter(w)

			fmt.Fprintln(tw, "PROCURADOR\tACTIVE\tOVERDUE\tDUE THIS WEEK")
			for _, a := range projection.Attorneys {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", a.Procurador, a.Active, a.Overdue, a.DueThisWeek)
			}

			if err := tw.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func parseDetails(raw string) (string, view.Metric, error) {
	procurador, rawMetric, found := strings.Cut(raw, "/")
	if !found || procurador == "" {
		return "", "", errors.Errorf("invalid details '%s', expected <procurador>/<metric>", raw)
	}

	metric := view.Metric(rawMetric)
	if !metric.Valid() {
		return "", "", errors.Errorf("unknown metric '%s'", rawMetric)
	}

	return procurador, metric, nil
}
