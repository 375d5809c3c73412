package component

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var layoutFS embed.FS

// NewTemplate parses the shared layout along with the page templates matched
// by patterns in fsys.
func NewTemplate(fsys fs.FS, patterns ...string) *template.Template {
	tmpl := template.New("").Funcs(funcs(context.Background()))
	tmpl = template.Must(tmpl.ParseFS(layoutFS, "templates/*.gohtml"))

	if len(patterns) > 0 {
		tmpl = template.Must(tmpl.ParseFS(fsys, patterns...))
	}

	return tmpl
}

// Render returns a component executing the named template with data. The
// url helpers of the template are bound to the rendering context.
func Render(tmpl *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cloned, err := tmpl.Clone()
		if err != nil {
			return errors.WithStack(err)
		}

		if err := cloned.Funcs(funcs(ctx)).ExecuteTemplate(w, name, data); err != nil {
			return errors.Wrapf(err, "could not execute template '%s'", name)
		}

		return nil
	})
}

func funcs(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"baseURL": func(path string, pairs ...string) string {
			return string(BaseURL(ctx, WithPath(path), WithValues(pairs...)))
		},
		"currentURL": func(pairs ...string) string {
			return string(CurrentURL(ctx, WithValues(pairs...)))
		},
		"matchPath": func(path string) bool {
			return MatchPath(ctx, path)
		},
		"formatDate":  model.FormatDate,
		"statusLabel": model.DisplayStatus,
		"initials":    model.Initials,
		"isOverdue": func(dueDate string, today time.Time) bool {
			return model.IsOverdue(dueDate, today)
		},
		"taskTable": func(tasks []model.Task, today time.Time) TaskTableVModel {
			return TaskTableVModel{Tasks: tasks, Today: today}
		},
		"taskCard": func(task model.Task, today time.Time) TaskCardVModel {
			return TaskCardVModel{Task: task, Today: today}
		},
		"orDefault": func(fallback string, value string) string {
			if value == "" {
				return fallback
			}
			return value
		},
	}
}
