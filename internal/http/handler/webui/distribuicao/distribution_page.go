package distribuicao

import (
	"context"
	"net/http"
	"slices"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/distribuicao/component"
	"github.com/pkg/errors"
)

func (h *Handler) getDistributionPage(w http.ResponseWriter, r *http.Request) {
	types := h.desk.Types()

	if taskType := r.PathValue("type"); !slices.Contains(types, taskType) {
		links := make([]commonComp.LinkItem, 0, len(types))
		for _, t := range types {
			links = append(links, commonComp.LinkItem{
				URL:   commonComp.BaseURL(r.Context(), commonComp.WithPath("/distribuicao/"+t)),
				Label: "Distribuição " + t,
			})
		}

		common.HandleError(w, r, errors.WithStack(common.ErrPageNotFound.WithLinks(links...)))
		return
	}

	vmodel, err := h.fillDistributionPageViewModel(w, r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	distributionPage := component.DistributionPage(*vmodel)

	templ.Handler(distributionPage).ServeHTTP(w, r)
}

func (h *Handler) fillDistributionPageViewModel(w http.ResponseWriter, r *http.Request) (*component.DistributionPageVModel, error) {
	vmodel := &component.DistributionPageVModel{
		Page: common.NewPageVModel(w, r, h.desk, h.flashes, "Distribuição "+r.PathValue("type")),
	}

	err := common.FillViewModel(
		r.Context(),
		vmodel, r,
		h.fillDistributionPageVModelProjection,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillDistributionPageVModelProjection(ctx context.Context, vmodel *component.DistributionPageVModel, r *http.Request) error {
	query := r.URL.Query()

	procurador := query.Get("procurador")
	if procurador == "" {
		procurador = view.All
	}

	vmodel.Roster = h.desk.Roster()
	vmodel.Distribution = view.Distribution(h.desk.Tasks(), vmodel.Roster, view.DistributionFilter{
		Type:       r.PathValue("type"),
		Procurador: procurador,
		Month:      query.Get("month"),
	})

	return nil
}
