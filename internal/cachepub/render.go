package cachepub

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
)

// mainPageTemplate is the rendered summary page stored under the "main"
// cache key and served verbatim by the read path.
var mainPageTemplate = template.Must(template.New("main").Parse(`<!DOCTYPE html>
<html>
<head><title>Device Statistics</title></head>
<body>
<h1>Device Statistics</h1>
<p>{{.Total}} devices seen in the last {{.WindowDays}} days. Generated {{.GeneratedAt}}.</p>
{{range .Columns}}
<h2>By {{.Name}}</h2>
<table>
<tr><th>{{.Name}}</th><th>devices</th></tr>
{{range .Entries}}<tr><td>{{.Value}}</td><td>{{.Total}}</td></tr>
{{end}}</table>
{{end}}
</body>
</html>
`))

type mainPageColumn struct {
	Name    string
	Entries models.RollupResult
}

type mainPageData struct {
	Total       int64
	WindowDays  int
	GeneratedAt string
	Columns     []mainPageColumn
}

func renderMainPage(byModel, byCountry models.RollupResult, total int64, windowDays int) (string, error) {
	var out strings.Builder
	data := mainPageData{
		Total:       total,
		WindowDays:  windowDays,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04"),
		Columns: []mainPageColumn{
			{Name: "model", Entries: byModel},
			{Name: "country", Entries: byCountry},
		},
	}
	if err := mainPageTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render main page: %w", err)
	}
	return out.String(), nil
}
