package move

import (
	"context"
	"fmt"
	"time"

	"github.com/bornholm/procuradoria/internal/command/common"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramWait    = "wait"
	paramTimeout = "timeout"
)

func Command() *cli.Command {
	flags := common.WithCommonFlags(
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  paramWait,
			Value: false,
			Usage: "Wait for the desk to report the new status before returning",
		}),
		altsrc.NewDurationFlag(&cli.DurationFlag{
			Name:  paramTimeout,
			Value: 30 * time.Second,
			Usage: "Maximum time to wait when --wait is set",
		}),
	)
	return &cli.Command{
		Name:      "move",
		Usage:     "Move a task to another workflow status",
		ArgsUsage: "<task-id> <status>",
		Flags:     flags,
		Before:    altsrc.InitInputSourceWithContext(flags, common.NewResolverSourceFromFlagFunc("config")),
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 2 {
				return errors.New("expected a task id and a status")
			}

			id := model.TaskID(ctx.Args().Get(0))

			status := model.Status(ctx.Args().Get(1))
			if !status.Valid() {
				return errors.Errorf("unknown status '%s' (expected one of %v)", status, model.Statuses)
			}

			c, err := common.GetClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create client")
			}

			if err := c.MoveTask(ctx.Context, id, status); err != nil {
				if errors.Is(err, client.ErrNotFound) {
					return errors.Errorf("task '%s' does not exist", id)
				}

				return errors.Wrapf(err, "could not move task '%s'", id)
			}

			if ctx.Bool(paramWait) {
				waitCtx, cancel := context.WithTimeout(ctx.Context, ctx.Duration(paramTimeout))
				defer cancel()

				if _, err := c.WaitForStatus(waitCtx, id, status); err != nil {
					return errors.Wrapf(err, "task '%s' did not reach status '%s'", id, status)
				}
			}

			fmt.Fprintf(ctx.App.Writer, "%s -> %s\n", id, model.DisplayStatus(status))

			return nil
		},
	}
}
