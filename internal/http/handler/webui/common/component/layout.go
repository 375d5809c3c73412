package component

import (
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/model"
)

type LinkItem struct {
	URL   templ.SafeURL
	Label string
}

type NavbarVModel struct {
	Types []string
	// User is the authenticated user name, empty without basic auth.
	User string
}

type FlashLevel string

const (
	FlashInfo  FlashLevel = "info"
	FlashError FlashLevel = "error"
)

type Flash struct {
	Level   FlashLevel
	Message string
}

// PageVModel carries what the layout needs on every page.
type PageVModel struct {
	Title   string
	Today   time.Time
	Navbar  NavbarVModel
	Flashes []Flash
	// Version is the desk version the page was derived from.
	Version uint64
}

type ErrorPageVModel struct {
	Page    PageVModel
	Message string
	Links   []LinkItem
}

var layoutTemplate = NewTemplate(nil)

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	if vmodel.Page.Title == "" {
		vmodel.Page.Title = "Erro"
	}

	return Render(layoutTemplate, "error_page", vmodel)
}

// TaskTableVModel feeds the shared task table.
type TaskTableVModel struct {
	Tasks []model.Task
	Today time.Time
}

type TaskCardVModel struct {
	Task  model.Task
	Today time.Time
}
