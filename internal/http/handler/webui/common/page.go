package common

import (
	"net/http"

	"github.com/bornholm/procuradoria/internal/core/service"
	httpCtx "github.com/bornholm/procuradoria/internal/http/context"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
)

// NewPageVModel prepares the layout data of a page and consumes the pending
// flash messages.
func NewPageVModel(w http.ResponseWriter, r *http.Request, desk *service.Desk, flashes *Flashes, title string) component.PageVModel {
	page := component.PageVModel{
		Title:   title,
		Today:   desk.Now(),
		Version: desk.Version(),
		Navbar: component.NavbarVModel{
			Types: desk.Types(),
			User:  httpCtx.User(r.Context()),
		},
	}

	if flashes != nil {
		page.Flashes = flashes.Pop(w, r)
	}

	return page
}
