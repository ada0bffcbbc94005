// Command render writes the food list into an HTML file.
//
// Without -out the file is rewritten in place. Rows are appended to whatever
// the list already holds, so running it twice lists every food twice.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/meur/foodlist/internal/config"
	"github.com/meur/foodlist/internal/models"
	"github.com/meur/foodlist/internal/page"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := cfg.Log.Logger()

	in := flag.String("in", "", "HTML file to render into (built-in template when empty)")
	out := flag.String("out", "", "Output file (rewrites -in when empty)")
	foodsPath := flag.String("foods", "", "JSON file with [{\"name\": ...}] (default menu when empty)")
	flag.Parse()

	if err := run(log, *in, *out, *foodsPath); err != nil {
		log.Fatal(err)
	}
}

func run(log logrus.FieldLogger, in, out, foodsPath string) error {
	items := models.DefaultFoods()
	if foodsPath != "" {
		data, err := os.ReadFile(foodsPath)
		if err != nil {
			return err
		}
		items = nil
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
	}

	if in != "" && out == "" {
		if err := page.RenderFile(in, items); err != nil {
			return err
		}
		log.WithField("count", len(items)).Infof("Rendered foods into %s", in)
		return nil
	}

	tmpl, err := page.LoadTemplate(in)
	if err != nil {
		return err
	}
	doc, err := page.Build(tmpl, items)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(doc)
		return err
	}
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		return err
	}
	log.WithField("count", len(items)).Infof("Wrote %s", out)
	return nil
}
