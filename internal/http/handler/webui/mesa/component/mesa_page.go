package component

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var mesaTemplate = commonComp.NewTemplate(templates, "templates/*.gohtml")

type Mode string

const (
	ModeKanban Mode = "kanban"
	ModeTable  Mode = "table"
)

type MesaPageVModel struct {
	Page      commonComp.PageVModel
	Roster    []string
	Assessors []string
	Filter    view.BoardFilter
	Mode      Mode
	Board     view.BoardProjection
}

func MesaPage(vmodel MesaPageVModel) templ.Component {
	return commonComp.Render(mesaTemplate, "mesa_page", vmodel)
}
