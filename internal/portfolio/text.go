package portfolio

var (
	AboutMe Markup = `<p>I build mobile and web products end to end, from the first
	wireframe to the release on the store. Most of my work lives where product and
	engineering meet: checkout flows, onboarding, and the small details that decide
	whether an app feels fast.</p>
	<p>Lately I have been spending time with Kotlin Multiplatform and server-driven UI.</p>`

	ContactlessCheckout Markup = `<p>An Android point-of-sale companion that lets customers
	scan, pay and leave without queueing. Built with Jetpack Compose and a Kotlin backend,
	integrated with the store's existing inventory system.</p>`

	EventTickets Markup = `<p>A cross-platform ticketing app built with React Native. Handles
	seat selection, offline QR tickets and Apple/Google wallet passes for a regional
	events company.</p>`

	StudioSite Markup = `<p>The marketing site and booking flow for a production studio,
	written in Next.js with a headless CMS so the team can publish without a deploy.</p>`

	ThisSite Markup = `<p>The page you are reading: a Go server rendering static records into
	cards, styled with a handful of hand-written utility classes.</p>`
)
