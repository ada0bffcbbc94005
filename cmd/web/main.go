//go:build js
// +build js

// Command web is the browser build. It renders the default menu into the
// page's food list as soon as the script loads.
package main

import (
	"github.com/meur/foodlist/internal/models"
	"github.com/meur/foodlist/internal/render"
	"github.com/meur/foodlist/internal/render/jsdom"
)

func main() {
	if err := render.RenderByID(jsdom.Current(), render.ContainerID, models.DefaultFoods()); err != nil {
		panic(err)
	}
}
