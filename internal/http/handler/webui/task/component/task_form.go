package component

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/model"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var formTemplate = commonComp.NewTemplate(templates, "templates/*.gohtml")

type TaskFormPageVModel struct {
	Page       commonComp.PageVModel
	Task       model.Task
	Roster     []string
	Types      []string
	Assessores []string
	Statuses   []model.Status
	// Error is displayed above the form when the last submission failed.
	Error string
}

func (vm TaskFormPageVModel) IsNew() bool {
	return vm.Task.ID == ""
}

func TaskFormPage(vmodel TaskFormPageVModel) templ.Component {
	return commonComp.Render(formTemplate, "task_form_page", vmodel)
}
