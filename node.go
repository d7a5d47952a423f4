package wordfreq

import "strings"

// NodeKind identifies the type of a Node.
type NodeKind int

// Node kinds.
const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
)

// Node is one node of a parsed document tree.
// Trees are built by a Parser and are only read by the extraction code.
type Node struct {
	Kind NodeKind

	// Tag is the element name for ElementNode, empty otherwise.
	Tag string

	// Data is the text content for TextNode, empty otherwise.
	Data string

	Children []*Node
}

// NewDocument returns a document root holding the given children.
func NewDocument(children ...*Node) *Node {
	return &Node{Kind: DocumentNode, Children: children}
}

// NewElement returns an element node with the given tag and children.
func NewElement(tag string, children ...*Node) *Node {
	return &Node{Kind: ElementNode, Tag: tag, Children: children}
}

// NewText returns a text node.
func NewText(data string) *Node {
	return &Node{Kind: TextNode, Data: data}
}

// IsElement reports whether n is an element with the given tag.
func (n *Node) IsElement(tag string) bool {
	return n.Kind == ElementNode && n.Tag == tag
}

// InnerText returns the concatenation of all descendant text, in document order.
func (n *Node) InnerText() string {
	if n.Kind == TextNode {
		return n.Data
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Kind == TextNode {
		b.WriteString(n.Data)
		return
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// Len returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Len() int {
	count := 1
	for _, c := range n.Children {
		count += c.Len()
	}
	return count
}

// Document is a parsed page.
type Document struct {
	// Title is the page title from <title>, if any.
	Title string

	// Root is the document node of the tree.
	Root *Node
}

// Headings returns the text of every section heading in document order.
func (d *Document) Headings() []string {
	if d == nil || d.Root == nil {
		return nil
	}
	var headings []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsElement(SectionHeading) {
			headings = append(headings, n.InnerText())
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(d.Root)
	return headings
}
