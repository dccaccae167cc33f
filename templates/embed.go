package templates

import (
	"embed"
	"html/template"

	"wagecalc/models"
)

// FS embeds the page templates for server-side rendering.
//
//go:embed *.html
var FS embed.FS

// Pages lists the templates rendered inside base.html.
var Pages = []string{"calculator"}

var funcMap = template.FuncMap{
	"money":       models.FormatMoney,
	"number":      models.FormatNumber,
	"allowedRate": models.IsAllowedRate,
	"scale": func(c models.ChartData, v float64) int {
		return c.Scale(v, 100)
	},
	"isRate": func(current, option float64) bool {
		return current == option
	},
}

// Parse pairs every page with base.html, keyed by page name.
func Parse() (map[string]*template.Template, error) {
	parsed := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		t, err := template.New("").Funcs(funcMap).ParseFS(FS, "base.html", page+".html")
		if err != nil {
			return nil, err
		}
		parsed[page] = t
	}
	return parsed, nil
}
