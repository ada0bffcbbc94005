package render

import (
	"errors"
	"testing"

	"github.com/meur/foodlist/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	tag      string
	text     string
	children []*fakeElement
}

func (e *fakeElement) SetTextContent(text string) {
	e.children = nil
	e.text = text
}

func (e *fakeElement) AppendChild(child Element) {
	e.children = append(e.children, child.(*fakeElement))
}

type fakeDocument struct {
	byID    map[string]*fakeElement
	created int
}

func (d *fakeDocument) GetElementByID(id string) Element {
	if el, ok := d.byID[id]; ok {
		return el
	}
	return nil
}

func (d *fakeDocument) CreateElement(tag string) Element {
	d.created++
	return &fakeElement{tag: tag}
}

func newFakeDocument() (*fakeDocument, *fakeElement) {
	list := &fakeElement{tag: "ul"}
	return &fakeDocument{byID: map[string]*fakeElement{ContainerID: list}}, list
}

func rowTexts(e *fakeElement) []string {
	texts := []string{}
	for _, c := range e.children {
		texts = append(texts, c.text)
	}
	return texts
}

func TestRenderScenario(t *testing.T) {
	doc, list := newFakeDocument()
	items := []models.FoodItem{{Name: "Makanan Indonesia"}, {Name: "Nasi Goreng"}}

	require.NoError(t, Render(doc, list, items))
	require.Len(t, list.children, 2)
	for _, row := range list.children {
		assert.Equal(t, RowTag, row.tag)
	}
	assert.Equal(t, []string{"Makanan Indonesia", "Nasi Goreng"}, rowTexts(list))
}

func TestRenderEmpty(t *testing.T) {
	doc, list := newFakeDocument()

	assert.NoError(t, Render(doc, list, nil))
	assert.NoError(t, Render(doc, list, []models.FoodItem{}))
	assert.Empty(t, list.children)
	assert.Zero(t, doc.created)
}

func TestRenderTextIsExact(t *testing.T) {
	doc, list := newFakeDocument()
	names := []string{"  padded  ", "<b>bold</b>", "", "Soto & Bakso", "ñasi"}
	var items []models.FoodItem
	for _, n := range names {
		items = append(items, models.FoodItem{Name: n})
	}

	require.NoError(t, Render(doc, list, items))
	assert.Equal(t, names, rowTexts(list))
}

func TestRenderAppendsOnRepeat(t *testing.T) {
	doc, list := newFakeDocument()
	items := []models.FoodItem{{Name: "Nasi Goreng"}, {Name: "Nasi Goreng"}, {Name: "Gado-gado"}}

	require.NoError(t, Render(doc, list, items))
	require.NoError(t, Render(doc, list, items))
	assert.Equal(t, []string{
		"Nasi Goreng", "Nasi Goreng", "Gado-gado",
		"Nasi Goreng", "Nasi Goreng", "Gado-gado",
	}, rowTexts(list))
}

func TestRenderKeepsExistingChildren(t *testing.T) {
	doc, list := newFakeDocument()
	list.children = []*fakeElement{{tag: "li", text: "existing"}}

	require.NoError(t, Render(doc, list, []models.FoodItem{{Name: "Rendang"}}))
	assert.Equal(t, []string{"existing", "Rendang"}, rowTexts(list))
}

func TestRenderNilContainer(t *testing.T) {
	doc, _ := newFakeDocument()

	err := Render(doc, nil, models.DefaultFoods())
	assert.ErrorIs(t, err, ErrMissingTargetElement)
	assert.Zero(t, doc.created)
}

func TestRenderByID(t *testing.T) {
	doc, list := newFakeDocument()

	require.NoError(t, RenderByID(doc, ContainerID, models.DefaultFoods()))
	assert.Equal(t, []string{"Makanan Indonesia", "Nasi Goreng"}, rowTexts(list))
}

func TestRenderByIDMissing(t *testing.T) {
	doc, list := newFakeDocument()

	err := RenderByID(doc, "menu", models.DefaultFoods())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTargetElement))

	var missing *MissingTargetElementError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "menu", missing.ID)
	assert.Contains(t, err.Error(), `"menu"`)

	assert.Empty(t, list.children)
	assert.Zero(t, doc.created)
}
