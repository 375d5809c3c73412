package component

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var reportTemplate = commonComp.NewTemplate(templates, "templates/*.gohtml")

type ReportPageVModel struct {
	Page   commonComp.PageVModel
	Roster []string
	Report view.ReportProjection
}

func ReportPage(vmodel ReportPageVModel) templ.Component {
	return commonComp.Render(reportTemplate, "report_page", vmodel)
}
