package task

import (
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/task/component"
	"github.com/pkg/errors"
)

func (h *Handler) renderTaskForm(w http.ResponseWriter, r *http.Request, task model.Task, errorMessage string, statusCode int) {
	title := "Novo Processo"
	if task.ID != "" {
		title = "Editar Processo " + task.AttusNumber
	}

	vmodel := component.TaskFormPageVModel{
		Page:       common.NewPageVModel(w, r, h.desk, h.flashes, title),
		Task:       task,
		Roster:     h.desk.Roster(),
		Types:      h.desk.Types(),
		Assessores: h.getAssessores(),
		Statuses:   model.Statuses,
		Error:      errorMessage,
	}

	formPage := component.TaskFormPage(vmodel)

	templ.Handler(formPage, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}

// getAssessores merges the configured staff with the staff currently
// handling tasks.
func (h *Handler) getAssessores() []string {
	assessores := slices.Clone(h.assessores)

	for _, a := range view.Assessors(h.desk.Tasks()) {
		if !slices.Contains(assessores, a) {
			assessores = append(assessores, a)
		}
	}

	slices.Sort(assessores)

	return assessores
}

func parseTaskForm(r *http.Request, task model.Task) (model.Task, error) {
	if err := r.ParseForm(); err != nil {
		return task, errors.WithStack(err)
	}

	value := func(name string) string {
		return strings.TrimSpace(r.PostFormValue(name))
	}

	task.AttusNumber = value("attusNumber")
	task.SEINumber = value("seiNumber")
	task.JudicialNumber = value("judicialNumber")
	task.InterestedParty = value("interestedParty")
	task.Type = value("type")
	task.AssignedProcurador = value("assignedProcurador")
	task.Responsible = value("responsible")
	task.DistributionDate = value("distributionDate")
	task.DueDate = value("dueDate")

	if status := model.Status(value("status")); status != "" {
		task.Status = status
	}

	return task, nil
}

func (h *Handler) handleSaveError(w http.ResponseWriter, r *http.Request, task model.Task, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTask):
		h.renderTaskForm(w, r, task, "O número ATTUS é obrigatório.", http.StatusUnprocessableEntity)
	default:
		h.renderTaskForm(w, r, task, "Erro ao salvar o processo.", http.StatusInternalServerError)
	}
}

func (h *Handler) redirectAfterSave(w http.ResponseWriter, r *http.Request, task model.Task) {
	h.flashes.Add(w, r, commonComp.FlashInfo, "Processo salvo com sucesso.")

	path := "/mesa/"
	if slices.Contains(h.desk.Types(), task.Type) {
		path = "/distribuicao/" + task.Type
	}

	redirectURL := commonComp.BaseURL(r.Context(), commonComp.WithPath(path))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
