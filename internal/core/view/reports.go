package view

import (
	"fmt"
	"time"

	"github.com/bornholm/procuradoria/internal/core/model"
)

// ReportTitle heads the report page and its exported document.
const ReportTitle = "Relatório de Processos - Procuradoria Legal"

type StatusBucket string

const (
	BucketAll      StatusBucket = All
	BucketActive   StatusBucket = "active"
	BucketFinished StatusBucket = "finished"
)

func (b StatusBucket) matches(t model.Task) bool {
	switch b {
	case BucketActive:
		return !t.IsFinished()
	case BucketFinished:
		return t.IsFinished()
	default:
		return true
	}
}

type ReportFilter struct {
	Procurador string       `json:"procurador"`
	Status     StatusBucket `json:"status"`
	Month      string       `json:"month"`
}

type ReportProjection struct {
	Filter ReportFilter `json:"filter"`
	Rows   []model.Task `json:"rows"`
}

// Reports selects the rows of the report table. The month is matched against
// the distribution date, or the due date for tasks never distributed.
func Reports(tasks []model.Task, f ReportFilter) ReportProjection {
	rows := filter(tasks,
		assignedTo(f.Procurador),
		f.Status.matches,
		func(t model.Task) bool {
			return matchesMonth(t.SortKey(), f.Month)
		},
	)

	return ReportProjection{
		Filter: f,
		Rows:   rows,
	}
}

// ReportFilename names an exported report.
func ReportFilename(procurador string, now time.Time) string {
	if procurador == "" {
		procurador = All
	}

	return fmt.Sprintf("Relatorio_Procuradoria_%s_%d.pdf", procurador, now.UnixMilli())
}
