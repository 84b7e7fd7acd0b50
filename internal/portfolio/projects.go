package portfolio

// Owner is the copy for the page header, hero and about block.
var Owner = Site{
	Title:       "Sheharyar",
	Name:        "Sheharyar Ahmed",
	Role:        "Software Developer",
	Tagline:     "Building modern digital experiences on Mobile and Web.",
	Description: "Portfolio site of Sheharyar",
	About:       AboutMe,
	Links: []Tag{
		{Label: "Github", Href: "https://example.com/github"},
		{Label: "Resume", Href: "https://example.com/resume.pdf"},
	},
}

// Projects is listed in presentation order.
var Projects = []Entry{
	{
		Title:    "Contactless Checkout",
		Subtitle: "Huma Production",
		Tags: []Tag{
			{Label: "Android"},
			{Label: "Live", Href: "https://example.com/apps/contactless-checkout"},
		},
		Description: ContactlessCheckout,
	},
	{
		Title:    "Event Tickets",
		Subtitle: "Freelance",
		Tags: []Tag{
			{Label: "iOS"},
			{Label: "Android"},
			{Label: "App Store", Href: "https://example.com/apps/event-tickets"},
		},
		Description: EventTickets,
	},
	{
		Title:    "Studio Website",
		Subtitle: "Huma Production",
		Tags: []Tag{
			{Label: "Web"},
			{Label: "Code", Href: "https://example.com/code/studio-site"},
		},
		Description: StudioSite,
	},
	{
		Title:       "Portfolio",
		Subtitle:    "Personal",
		Description: ThisSite,
	},
}
