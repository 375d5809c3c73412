package dashboard

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/dashboard/component"
)

func (h *Handler) getDashboardPage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.DashboardPageVModel{
		Page:      common.NewPageVModel(w, r, h.desk, h.flashes, "Dashboard"),
		Dashboard: view.Dashboard(h.desk.Tasks(), h.desk.Roster(), h.desk.Now()),
		Metrics:   view.Metrics,
	}

	dashboardPage := component.DashboardPage(vmodel)

	templ.Handler(dashboardPage).ServeHTTP(w, r)
}
