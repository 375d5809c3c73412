package component

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var dashboardTemplate = commonComp.NewTemplate(templates, "templates/*.gohtml")

type DashboardPageVModel struct {
	Page      commonComp.PageVModel
	Dashboard view.DashboardProjection
	Metrics   []view.Metric
}

func DashboardPage(vmodel DashboardPageVModel) templ.Component {
	return commonComp.Render(dashboardTemplate, "dashboard_page", vmodel)
}

type DetailsPageVModel struct {
	Page    commonComp.PageVModel
	Details view.DetailsProjection
}

func DetailsPage(vmodel DetailsPageVModel) templ.Component {
	return commonComp.Render(dashboardTemplate, "details_page", vmodel)
}
