package wordfreq

import (
	"slices"
	"strings"
	"unicode"
)

// SectionHeading is the element that opens and closes a section.
// Sections are bounded by level-2 headings only; deeper headings are part
// of the enclosing section's content.
const SectionHeading = "h2"

// noiseTags are elements whose own text is never emitted by the element
// walk: citation markers, links, inline spans and italics.
var noiseTags = map[string]bool{
	"sup":  true,
	"a":    true,
	"span": true,
	"i":    true,
}

// IsNoise reports whether n is an element whose text is excluded from extraction.
func IsNoise(n *Node) bool {
	return n.Kind == ElementNode && noiseTags[n.Tag]
}

// walkSection traverses root in document order and calls visit for every
// node inside the named section, including the opening heading. The section
// opens on a heading whose inner text equals name exactly and closes at the
// next heading; traversal stops there. Text nodes are skipped when
// elementsOnly is set.
//
// The returned nodes are the ancestors of the closing heading, outermost
// first. Returns nil if the section runs to the end of the document.
func walkSection(root *Node, name string, elementsOnly bool, visit func(n, parent *Node)) (open []*Node) {
	if root == nil {
		return nil
	}

	inSection := false
	var path []*Node
	var walk func(n, parent *Node) bool
	walk = func(n, parent *Node) bool {
		if n.IsElement(SectionHeading) {
			if n.InnerText() == name {
				inSection = true
			} else if inSection {
				open = slices.Clone(path)
				return false
			}
		}

		if inSection && n.Kind != DocumentNode && !(elementsOnly && n.Kind == TextNode) {
			visit(n, parent)
		}

		path = append(path, n)
		for _, c := range n.Children {
			if !walk(c, n) {
				return false
			}
		}
		path = path[:len(path)-1]
		return true
	}
	walk(root, nil)

	return open
}

// Section returns a copy of every node inside the named section.
// Copied nodes keep their relative structure: a node whose parent is also
// inside the section is attached to the parent's copy, anything else is
// returned at the top level. An element entered inside the section that
// encloses the closing heading is copied with its whole subtree, matching
// the element walk, which emits its full inner text.
// Returns nil if the section does not exist.
func Section(root *Node, name string) []*Node {
	var top []*Node
	copies := make(map[*Node]*Node)

	open := walkSection(root, name, false, func(n, parent *Node) {
		c := &Node{Kind: n.Kind, Tag: n.Tag, Data: n.Data}
		copies[n] = c
		if p, ok := copies[parent]; ok {
			p.Children = append(p.Children, c)
			return
		}
		top = append(top, c)
	})

	for _, n := range open {
		if c, ok := copies[n]; ok {
			c.Children = cloneChildren(n)
			break
		}
	}

	return top
}

func cloneChildren(n *Node) []*Node {
	if len(n.Children) == 0 {
		return nil
	}
	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = &Node{Kind: c.Kind, Tag: c.Tag, Data: c.Data, Children: cloneChildren(c)}
	}
	return children
}

// Anchor creates a URL-safe slug from a section title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func Anchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
