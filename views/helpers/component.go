package helpers

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// Component wraps an html/template execution as a templ.Component so
// pages compose with the rest of the templ-based view layer.
func Component(tmpl *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return tmpl.Execute(w, data)
	})
}

// Funcs is the shared FuncMap for page templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"price":      FormatPrice,
		"date":       FormatDate,
		"datetime":   FormatDateTime,
		"nullstring": NullString,
		"stars":      Stars,
		"last4":      CardLast4,
		"classes":    Classes,
	}
}

// Must parses a page template with the shared FuncMap.
func Must(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(Funcs()).Parse(text))
}
