package portfolio

import "html/template"

// Markup is a trusted rich-text fragment written by the site author.
// Templates emit it without escaping.
type Markup = template.HTML

// Tag is a small labeled badge, optionally an outbound link.
type Tag struct {
	Label string
	Href  string
}

// Entry describes one portfolio item.
type Entry struct {
	Title       string
	Subtitle    string
	Tags        []Tag
	Description Markup
}

// Site holds the copy shown around the portfolio list.
type Site struct {
	Title       string
	Name        string
	Role        string
	Tagline     string
	Description string
	About       Markup
	Links       []Tag
}
