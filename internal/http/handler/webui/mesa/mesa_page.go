package mesa

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/mesa/component"
	"github.com/pkg/errors"
)

func (h *Handler) getMesaPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillMesaPageViewModel(w, r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	mesaPage := component.MesaPage(*vmodel)

	templ.Handler(mesaPage).ServeHTTP(w, r)
}

func (h *Handler) fillMesaPageViewModel(w http.ResponseWriter, r *http.Request) (*component.MesaPageVModel, error) {
	vmodel := &component.MesaPageVModel{
		Page: common.NewPageVModel(w, r, h.desk, h.flashes, "Mesa do Procurador"),
	}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillMesaPageVModelFilter,
		h.fillMesaPageVModelBoard,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillMesaPageVModelFilter(ctx context.Context, vmodel *component.MesaPageVModel, r *http.Request) error {
	query := r.URL.Query()

	vmodel.Roster = h.desk.Roster()

	procurador := query.Get("procurador")
	if procurador == "" {
		procurador = view.All
		if len(vmodel.Roster) > 0 {
			procurador = vmodel.Roster[0]
		}
	}

	assessor := query.Get("assessor")
	if assessor == "" {
		assessor = view.All
	}

	vmodel.Filter = view.BoardFilter{
		Procurador: procurador,
		Assessor:   assessor,
	}

	vmodel.Mode = component.ModeKanban
	if query.Get("view") == string(component.ModeTable) {
		vmodel.Mode = component.ModeTable
	}

	return nil
}

func (h *Handler) fillMesaPageVModelBoard(ctx context.Context, vmodel *component.MesaPageVModel, r *http.Request) error {
	tasks := h.desk.Tasks()

	vmodel.Assessors = view.Assessors(tasks)
	vmodel.Board = view.Board(tasks, vmodel.Filter)

	return nil
}
