package dashboard

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/dashboard/component"
	"github.com/pkg/errors"
)

func (h *Handler) getDetailsPage(w http.ResponseWriter, r *http.Request) {
	metric := view.Metric(r.PathValue("metric"))
	if !metric.Valid() {
		common.HandleError(w, r, errors.WithStack(common.ErrPageNotFound))
		return
	}

	procurador := r.PathValue("procurador")
	details := view.Details(h.desk.Tasks(), procurador, metric, h.desk.Now())

	vmodel := component.DetailsPageVModel{
		Page:    common.NewPageVModel(w, r, h.desk, h.flashes, details.Title),
		Details: details,
	}

	detailsPage := component.DetailsPage(vmodel)

	templ.Handler(detailsPage).ServeHTTP(w, r)
}
