package distribution

import (
	"fmt"

	"github.com/bornholm/procuradoria/internal/command/common"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func Command() *cli.Command {
	flags := common.WithCommonFlags(
		common.ProcuradorFlag(),
		common.MonthFlag(),
	)
	return &cli.Command{
		Name:      "distribution",
		Usage:     "Print the pending work and recent intake of a route type",
		ArgsUsage: "<type>",
		Flags:     flags,
		Before:    altsrc.InitInputSourceWithContext(flags, common.NewResolverSourceFromFlagFunc("config")),
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return errors.New("expected exactly one route type (Judicial, Extrajudicial, ...)")
			}

			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create client")
			}

			month, err := common.GetMonth(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			projection, err := client.Distribution(ctx.Context, view.DistributionFilter{
				Type:       ctx.Args().First(),
				Procurador: ctx.String(common.ParamProcurador),
				Month:      month,
			})
			if err != nil {
				return errors.Wrap(err, "could not retrieve distribution")
			}

			w := ctx.App.Writer
			tw := common.NewTabWriter(w)

			fmt.Fprintln(tw, "PROCURADOR\tPENDING")
			for _, p := range projection.Pending {
				fmt.Fprintf(tw, "%s\t%d\n", p.Procurador, p.Count)
			}

			if err := tw.Flush(); err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(w)

			return common.PrintTasks(w, projection.Recent)
		},
	}
}
