package models

import "time"

// FoodItem is a single entry of the rendered food list
type FoodItem struct {
	Name string `json:"name"`
}

// Food is a catalog record kept by the store
type Food struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"` // 0-based display index
	CreatedAt time.Time `json:"created_at"`
}

// Item projects the catalog record to what the renderer needs
func (f Food) Item() FoodItem {
	return FoodItem{Name: f.Name}
}

// FoodList is a collection of foods
type FoodList struct {
	Items      []Food `json:"items"`
	TotalCount int    `json:"total_count"`
}

// FoodCreate is the request body for adding a food
type FoodCreate struct {
	Name string `json:"name"`
}

// Items projects a slice of catalog records, keeping order
func Items(foods []Food) []FoodItem {
	items := make([]FoodItem, 0, len(foods))
	for _, f := range foods {
		items = append(items, f.Item())
	}
	return items
}

// DefaultFoods returns the compiled-in menu. Each call returns a fresh slice.
func DefaultFoods() []FoodItem {
	return []FoodItem{
		{Name: "Makanan Indonesia"},
		{Name: "Nasi Goreng"},
	}
}
