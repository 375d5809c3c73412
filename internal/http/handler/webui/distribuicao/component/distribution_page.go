package component

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/view"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var distributionTemplate = commonComp.NewTemplate(templates, "templates/*.gohtml")

type DistributionPageVModel struct {
	Page         commonComp.PageVModel
	Roster       []string
	Distribution view.DistributionProjection
}

func DistributionPage(vmodel DistributionPageVModel) templ.Component {
	return commonComp.Render(distributionTemplate, "distribution_page", vmodel)
}
