//go:build js
// +build js

// Package jsdom backs render.Document with the browser DOM.
package jsdom

import (
	"fmt"

	"github.com/meur/foodlist/internal/render"
	"honnef.co/go/js/dom"
)

// Document is the page the script runs in
type Document struct {
	doc dom.Document
}

// Element wraps a DOM element
type Element struct {
	el dom.Element
}

// Current returns the document of the running window
func Current() *Document {
	return &Document{doc: dom.GetWindow().Document()}
}

// GetElementByID returns nil when the page has no such element
func (d *Document) GetElementByID(id string) render.Element {
	el := d.doc.GetElementByID(id)
	if el == nil {
		return nil
	}
	return &Element{el: el}
}

// CreateElement creates a detached element
func (d *Document) CreateElement(tag string) render.Element {
	return &Element{el: d.doc.CreateElement(tag)}
}

// SetTextContent sets the element text
func (e *Element) SetTextContent(text string) {
	e.el.SetTextContent(text)
}

// AppendChild appends child, which must come from this package
func (e *Element) AppendChild(child render.Element) {
	c, ok := child.(*Element)
	if !ok {
		panic(fmt.Sprintf("jsdom: cannot append %T", child))
	}
	e.el.AppendChild(c.el)
}
