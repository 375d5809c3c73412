package tasks

import (
	"fmt"

	"github.com/bornholm/procuradoria/internal/command/common"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const paramAssessor = "assessor"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Inspect the tasks of the procuradoria",
		Subcommands: []*cli.Command{
			listCommand(),
			boardCommand(),
		},
	}
}

func listCommand() *cli.Command {
	flags := common.WithCommonFlags()
	return &cli.Command{
		Name:   "list",
		Usage:  "List every task, most recently distributed first",
		Flags:  flags,
		Before: altsrc.InitInputSourceWithContext(flags, common.NewResolverSourceFromFlagFunc("config")),
		Action: func(ctx *cli.Context) error {
			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create client")
			}

			tasks, _, err := client.ListTasks(ctx.Context)
			if err != nil {
				return errors.Wrap(err, "could not list tasks")
			}

			return common.PrintTasks(ctx.App.Writer, model.SortTasks(tasks))
		},
	}
}

func boardCommand() *cli.Command {
	flags := common.WithCommonFlags(
		common.ProcuradorFlag(),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    paramAssessor,
			Aliases: []string{"a"},
			Value:   view.All,
			Usage:   "Assessor to filter by ('all' for every assessor, 'Unassigned' for tasks without assessor)",
		}),
	)
	return &cli.Command{
		Name:   "board",
		Usage:  "Print the desk of an attorney, column by column",
		Flags:  flags,
		Before: altsrc.InitInputSourceWithContext(flags, common.NewResolverSourceFromFlagFunc("config")),
		Action: func(ctx *cli.Context) error {
			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create client")
			}

			board, err := client.Board(ctx.Context, view.BoardFilter{
				Procurador: ctx.String(common.ParamProcurador),
				Assessor:   ctx.String(paramAssessor),
			})
			if err != nil {
				return errors.Wrap(err, "could not retrieve board")
			}

			w := ctx.App.Writer

			for _, column := range board.Columns {
				fmt.Fprintf(w, "== %s (%d)\n", column.Label, column.Count)

				if err := common.PrintTasks(w, column.Tasks); err != nil {
					return errors.WithStack(err)
				}

				fmt.Fprintln(w)
			}

			if len(board.Unplaced) > 0 {
				fmt.Fprintf(w, "== Outros (%d)\n", len(board.Unplaced))

				if err := common.PrintTasks(w, board.Unplaced); err != nil {
					return errors.WithStack(err)
				}
			}

			return nil
		},
	}
}
