package wordfreq

// Converter renders section content as Markdown.
type Converter interface {
	// Convert renders the nodes returned by Section as Markdown.
	Convert(nodes []*Node) (string, error)
}
