package common

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/pkg/errors"
)

const emptyCell = "-"

func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PrintTasks writes tasks as an aligned table, one row per task.
func PrintTasks(w io.Writer, tasks []model.Task) error {
	tw := NewTabWriter(w)

	fmt.Fprintln(tw, "ID\tATTUS\tTYPE\tSTATUS\tPROCURADOR\tRESPONSIBLE\tDISTRIBUTED\tDUE")

	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			cell(t.AttusNumber),
			t.DisplayType(),
			cell(model.DisplayStatus(t.Status)),
			cell(t.AssignedProcurador),
			t.ResponsibleLabel(emptyCell),
			cell(model.FormatDate(t.DistributionDate)),
			cell(model.FormatDate(t.DueDate)),
		)
	}

	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func cell(value string) string {
	if value == "" {
		return emptyCell
	}

	return value
}
