package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFoods(t *testing.T) {
	foods := DefaultFoods()
	assert.Equal(t, []FoodItem{{Name: "Makanan Indonesia"}, {Name: "Nasi Goreng"}}, foods)

	foods[0].Name = "changed"
	assert.Equal(t, "Makanan Indonesia", DefaultFoods()[0].Name)
}

func TestItemsKeepsOrderAndDuplicates(t *testing.T) {
	foods := []Food{
		{ID: "1", Name: "Sate", Position: 0},
		{ID: "2", Name: "Rendang", Position: 1},
		{ID: "3", Name: "Sate", Position: 2},
	}
	assert.Equal(t, []FoodItem{{Name: "Sate"}, {Name: "Rendang"}, {Name: "Sate"}}, Items(foods))
	assert.Empty(t, Items(nil))
}
