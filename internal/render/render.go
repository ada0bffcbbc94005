// Package render projects an ordered list of foods into list rows of a
// document tree.
//
// The document itself is supplied by the caller through the Document and
// Element interfaces, so the same code drives an x/net/html tree on the
// server and the live DOM in the browser.
package render

import (
	"errors"
	"fmt"

	"github.com/meur/foodlist/internal/models"
)

const (
	// ContainerID is the id of the element the food list is rendered into
	ContainerID = "food-list"
	// RowTag is the element created for each food
	RowTag = "li"
)

// ErrMissingTargetElement is returned when there is no container to render into
var ErrMissingTargetElement = errors.New("missing target element")

// MissingTargetElementError reports a failed container lookup
type MissingTargetElementError struct {
	ID string
}

func (e *MissingTargetElementError) Error() string {
	return fmt.Sprintf("%s: no element with id %q", ErrMissingTargetElement, e.ID)
}

// Is matches ErrMissingTargetElement
func (e *MissingTargetElementError) Is(target error) bool {
	return target == ErrMissingTargetElement
}

// Element is a node of a document that can hold text and children
type Element interface {
	SetTextContent(text string)
	AppendChild(child Element)
}

// Document creates and looks up elements.
// GetElementByID must return a nil interface when nothing matches.
type Document interface {
	GetElementByID(id string) Element
	CreateElement(tag string) Element
}

// Render appends one row per item to container, in order. The row text is
// the item name, untouched. Existing children of container are kept, so
// rendering twice yields every row twice.
func Render(doc Document, container Element, items []models.FoodItem) error {
	if container == nil {
		return ErrMissingTargetElement
	}
	for _, item := range items {
		row := doc.CreateElement(RowTag)
		row.SetTextContent(item.Name)
		container.AppendChild(row)
	}
	return nil
}

// RenderByID looks up the container by id and renders into it
func RenderByID(doc Document, id string, items []models.FoodItem) error {
	container := doc.GetElementByID(id)
	if container == nil {
		return &MissingTargetElementError{ID: id}
	}
	return Render(doc, container, items)
}
