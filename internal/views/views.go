// Package views holds the page templates and the data they render.
package views

import (
	"embed"
	"html/template"

	"github.com/sheharyar/portfolio/internal/portfolio"
)

//go:embed templates/*.html
var templateFiles embed.FS

// StylesheetPath is relative so exported pages resolve it next to index.html.
const StylesheetPath = "static/site.css"

const fontsURL = "https://fonts.googleapis.com/css2?family=Inter:wght@400;600&family=PT+Serif:wght@400;700&display=swap"

// Page is the data for the index.html template.
type Page struct {
	Site       portfolio.Site
	Links      []portfolio.TagView
	Cards      []portfolio.Card
	Stylesheet string
	FontsURL   string
}

// NewPage builds the view data for site and its already rendered cards.
func NewPage(site portfolio.Site, cards []portfolio.Card) Page {
	return Page{
		Site:       site,
		Links:      site.LinkViews(),
		Cards:      cards,
		Stylesheet: StylesheetPath,
		FontsURL:   fontsURL,
	}
}

// Templates parses the embedded templates. It panics if they do not parse.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFiles, "templates/*.html"))
}

