package relatorio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/relatorio/component"
)

func (h *Handler) getReportPage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.ReportPageVModel{
		Page:   common.NewPageVModel(w, r, h.desk, h.flashes, "Relatórios"),
		Roster: h.desk.Roster(),
		Report: view.Reports(h.desk.Tasks(), getReportFilter(r)),
	}

	reportPage := component.ReportPage(vmodel)

	templ.Handler(reportPage).ServeHTTP(w, r)
}

func getReportFilter(r *http.Request) view.ReportFilter {
	query := r.URL.Query()

	filter := view.ReportFilter{
		Procurador: query.Get("procurador"),
		Status:     view.StatusBucket(query.Get("status")),
		Month:      query.Get("month"),
	}

	if filter.Procurador == "" {
		filter.Procurador = view.All
	}

	if filter.Status == "" {
		filter.Status = view.BucketAll
	}

	return filter
}
