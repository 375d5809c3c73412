package common

import (
	"net/http"

	"github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
)

// Error is an error whose message can be shown as is on the error page.
type Error struct {
	err         string
	userMessage string
	statusCode  int
	links       []component.LinkItem
}

func (e *Error) Error() string               { return e.err }
func (e *Error) UserMessage() string         { return e.userMessage }
func (e *Error) StatusCode() int             { return e.statusCode }
func (e *Error) Links() []component.LinkItem { return e.links }

// WithLinks returns a copy of the error offering the given links on the
// error page.
func (e *Error) WithLinks(links ...component.LinkItem) *Error {
	clone := *e
	clone.links = append(clone.links[:len(clone.links):len(clone.links)], links...)
	return &clone
}

func NewError(err string, userMessage string, statusCode int) *Error {
	return &Error{err: err, userMessage: userMessage, statusCode: statusCode}
}

var (
	_ UserFacingError = &Error{}
	_ HTTPError       = &Error{}
	_ WithErrorLinks  = &Error{}
)

var (
	ErrTaskNotFound = NewError("task not found", "Processo não encontrado.", http.StatusNotFound)
	ErrPageNotFound = NewError("page not found", "Página não encontrada.", http.StatusNotFound)
)
