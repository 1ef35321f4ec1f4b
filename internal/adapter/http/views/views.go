// Package views holds the server-rendered pages. Templates are embedded so
// the binary has no runtime file dependency.
package views

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/pkg"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var files embed.FS

// Funcs are available to every template.
var Funcs = template.FuncMap{
	"money": pkg.Money,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006 3:04 PM")
	},
	"isoDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(entities.DateLayout)
	},
	"ago": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		return humanize.Time(t)
	},
	"sqft": func(v float64) string {
		return humanize.Commaf(v)
	},
	"title": func(s string) string {
		words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(s))
		for i, w := range words {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
		return strings.Join(words, " ")
	},
	"join":  strings.Join,
	"yesno": entities.YesNo,
}

// Parse builds the template set.
func Parse() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "templates/*.html")
}
