package api

import (
	"net/http"

	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/pkg/errors"
)

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	projection := view.Board(h.desk.Tasks(), view.BoardFilter{
		Procurador: getQueryFilter(query, "procurador"),
		Assessor:   getQueryFilter(query, "assessor"),
	})

	writeJSON(w, r, http.StatusOK, projection)
}

type AssessorsResponse struct {
	Assessors []string `json:"assessors"`
}

func (h *Handler) getAssessors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, AssessorsResponse{
		Assessors: view.Assessors(h.desk.Tasks()),
	})
}

func (h *Handler) getDistribution(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	projection := view.Distribution(h.desk.Tasks(), h.desk.Roster(), view.DistributionFilter{
		Type:       r.PathValue("type"),
		Procurador: getQueryFilter(query, "procurador"),
		Month:      query.Get("month"),
	})

	writeJSON(w, r, http.StatusOK, projection)
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	projection := view.Dashboard(h.desk.Tasks(), h.desk.Roster(), h.desk.Now())

	writeJSON(w, r, http.StatusOK, projection)
}

func (h *Handler) getDetails(w http.ResponseWriter, r *http.Request) {
	metric := view.Metric(r.PathValue("metric"))
	if !metric.Valid() {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	projection := view.Details(h.desk.Tasks(), r.PathValue("procurador"), metric, h.desk.Now())

	writeJSON(w, r, http.StatusOK, projection)
}

func getReportFilter(r *http.Request) view.ReportFilter {
	query := r.URL.Query()

	return view.ReportFilter{
		Procurador: getQueryFilter(query, "procurador"),
		Status:     view.StatusBucket(getQueryFilter(query, "status")),
		Month:      query.Get("month"),
	}
}

func (h *Handler) getReports(w http.ResponseWriter, r *http.Request) {
	projection := view.Reports(h.desk.Tasks(), getReportFilter(r))

	writeJSON(w, r, http.StatusOK, projection)
}

func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.reporter.Export(ctx, getReportFilter(r))
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	defer report.Content.Close()

	serveReport(w, r, report)
}
