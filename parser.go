package wordfreq

// ParserKind names a document parser.
type ParserKind string

// Supported parsers.
const (
	ParserHTML ParserKind = "html"
	ParserXML  ParserKind = "xml"
)

// Parser turns raw markup into a document tree.
type Parser interface {
	// Parse builds a Document from markup. Malformed markup beyond the
	// parser's tolerance returns an EINVALID error.
	Parse(markup string) (*Document, error)
}
