// Package portfolio holds the site's static records and maps them to view descriptors.
package portfolio

// TagView is a tag ready for display.
type TagView struct {
	Label string
	Href  string
}

// Linked reports whether the tag navigates somewhere when activated.
func (t TagView) Linked() bool {
	return t.Href != ""
}

// Card is the rendered unit for one Entry.
type Card struct {
	Title    string
	Subtitle string
	Tags     []TagView
	Body     Markup
}

// HasTags reports whether the card needs a tag row.
func (c Card) HasTags() bool {
	return len(c.Tags) > 0
}

// Render returns one card per entry, in the same order.
func Render(entries []Entry) []Card {
	cards := make([]Card, len(entries))
	for i, e := range entries {
		cards[i] = Card{
			Title:    e.Title,
			Subtitle: e.Subtitle,
			Tags:     tagViews(e.Tags),
			Body:     e.Description,
		}
	}
	return cards
}

func tagViews(tags []Tag) []TagView {
	if len(tags) == 0 {
		return nil
	}
	views := make([]TagView, len(tags))
	for i, t := range tags {
		views[i] = TagView{Label: t.Label, Href: t.Href}
	}
	return views
}

// LinkViews returns the header buttons for the site.
func (s Site) LinkViews() []TagView {
	return tagViews(s.Links)
}
