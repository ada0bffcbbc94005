// Package htmldoc backs render.Document with a golang.org/x/net/html tree.
package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/meur/foodlist/internal/render"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document
type Document struct {
	root *html.Node
}

// Element wraps an element node of a Document
type Element struct {
	node *html.Node
}

// Parse reads an HTML document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// Render serializes the document
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// GetElementByID returns the first element, in document order, whose id
// attribute equals id, or nil.
func (d *Document) GetElementByID(id string) render.Element {
	if n := findByID(d.root, id); n != nil {
		return &Element{node: n}
	}
	return nil
}

// CreateElement returns a new element that is not yet attached to the tree
func (d *Document) CreateElement(tag string) render.Element {
	tag = strings.ToLower(tag)
	return &Element{node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// SetTextContent replaces all children with a single text node
func (e *Element) SetTextContent(text string) {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// AppendChild moves child to the end of e's children.
// child must have been created by this package.
func (e *Element) AppendChild(child render.Element) {
	c, ok := child.(*Element)
	if !ok {
		panic(fmt.Sprintf("htmldoc: cannot append %T", child))
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// Tag returns the element name
func (e *Element) Tag() string {
	return e.node.Data
}

// TextContent returns the concatenated text of all descendants
func (e *Element) TextContent() string {
	var b strings.Builder
	collectText(e.node, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// Children returns the element children of e
func (e *Element) Children() []*Element {
	var children []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &Element{node: c})
		}
	}
	return children
}
