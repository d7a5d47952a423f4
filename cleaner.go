package wordfreq

// Cleaner strips boilerplate (navigation, footers, sidebars) from a page
// before it is parsed.
type Cleaner interface {
	// Clean returns markup holding the main content of the page.
	// The page title is kept so the parsed Document still carries it.
	Clean(markup string) (string, error)
}
