package wordfreq

import "strings"

// Strategy names an extraction strategy.
type Strategy string

// Supported extraction strategies.
const (
	StrategyText    Strategy = "text"
	StrategyElement Strategy = "element"
)

// DefaultStrategy is the canonical extraction strategy.
const DefaultStrategy = StrategyText

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyText, StrategyElement}
}

// Extractor pulls the text fragments of one section out of a document tree.
// All strategies apply the same section membership and termination rules
// and agree on the resulting word set for well-formed documents whose
// closing heading is not nested inside section content.
type Extractor interface {
	// Extract returns the text fragments of the named section in document
	// order. Returns nil if the section does not exist.
	Extract(root *Node, section string) []string
}

// NewExtractor returns the Extractor for the given strategy.
func NewExtractor(s Strategy) (Extractor, error) {
	switch s {
	case StrategyText:
		return TextNodeExtractor{}, nil
	case StrategyElement:
		return ElementExtractor{}, nil
	default:
		return nil, Errorf(EINVALID, "unknown extraction strategy %q", s)
	}
}

// Ensure strategies implement Extractor at compile time.
var (
	_ Extractor = ElementExtractor{}
	_ Extractor = TextNodeExtractor{}
)

// ElementExtractor emits the inner text of every qualifying element inside
// the section. Noise elements and blank elements are skipped, and so is any
// element whose inner text is identical to that of one of its non-noise
// element children, so a wrapper around a single paragraph is not counted
// twice. An element entered inside the section that encloses the closing
// heading is emitted with its full inner text.
type ElementExtractor struct{}

// Extract implements Extractor.
func (ElementExtractor) Extract(root *Node, section string) []string {
	var fragments []string
	walkSection(root, section, true, func(n, _ *Node) {
		if IsNoise(n) {
			return
		}

		text := n.InnerText()
		if strings.TrimSpace(text) == "" {
			return
		}

		if isDuplicate(n, text) {
			return
		}

		fragments = append(fragments, text)
	})
	return fragments
}

// isDuplicate reports whether a direct element child of n carries exactly
// the same text as n.
func isDuplicate(n *Node, text string) bool {
	for _, c := range n.Children {
		if c.Kind != ElementNode || IsNoise(c) {
			continue
		}
		if ct := c.InnerText(); ct != "" && ct == text {
			return true
		}
	}
	return false
}

// TextNodeExtractor copies the section into a separate collection and emits
// the content of its text nodes. Text nodes never overlap, so no duplicate
// suppression is needed.
type TextNodeExtractor struct{}

// Extract implements Extractor.
func (TextNodeExtractor) Extract(root *Node, section string) []string {
	var fragments []string
	var collect func(n *Node)
	collect = func(n *Node) {
		if n.Kind == TextNode {
			if strings.TrimSpace(n.Data) != "" {
				fragments = append(fragments, n.Data)
			}
			return
		}
		for _, c := range n.Children {
			collect(c)
		}
	}

	for _, n := range Section(root, section) {
		collect(n)
	}
	return fragments
}
