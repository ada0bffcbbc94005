// Package page builds the food list page from an HTML template.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/meur/foodlist/internal/models"
	"github.com/meur/foodlist/internal/render"
	"github.com/meur/foodlist/internal/render/htmldoc"
)

//go:embed index.html
var defaultTemplate []byte

// Template returns a copy of the built-in page template
func Template() []byte {
	return append([]byte(nil), defaultTemplate...)
}

// LoadTemplate reads a template from path, or returns the built-in one when
// path is empty.
func LoadTemplate(path string) ([]byte, error) {
	if path == "" {
		return Template(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return data, nil
}

// Build renders items into the food list container of tmpl and returns the
// resulting document. Nothing is returned if the container is missing.
func Build(tmpl []byte, items []models.FoodItem) ([]byte, error) {
	doc, err := htmldoc.Parse(bytes.NewReader(tmpl))
	if err != nil {
		return nil, err
	}
	if err := render.RenderByID(doc, render.ContainerID, items); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders items into the HTML file at path, rewriting it in place.
// Rows already in the file are kept.
func RenderFile(path string, items []models.FoodItem) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	tmpl, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := Build(tmpl, items)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, out, info.Mode().Perm())
}
