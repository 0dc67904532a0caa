package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Seed creates a demo project and a few starter material presets on first
// run. It is a no-op when any project already exists.
func Seed(app *pocketbase.PocketBase) error {
	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("projects collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(projectsCol)
	if err == nil && len(existing) > 0 {
		return nil
	}

	project := core.NewRecord(projectsCol)
	project.Set("name", "Demo Renovation")
	project.Set("client_name", "Demo Client")
	project.Set("status", "active")
	if err := app.Save(project); err != nil {
		return fmt.Errorf("failed to seed demo project: %w", err)
	}

	materialsCol, err := app.FindCollectionByNameOrId("saved_materials")
	if err != nil {
		return fmt.Errorf("saved_materials collection not found: %w", err)
	}

	presets := []struct {
		name     string
		category string
		params   map[string]string
	}{
		{
			name:     "Gypsum plaster 30 kg",
			category: "plaster",
			params: map[string]string{
				"thicknessMm": "20",
				"consumption": "0.9",
				"margin":      "10",
				"bagWeight":   "30",
				"price":       "420",
			},
		},
		{
			name:     "Finishing putty 25 kg",
			category: "putty",
			params: map[string]string{
				"thicknessMm": "2",
				"consumption": "1.2",
				"margin":      "10",
				"bagWeight":   "25",
				"price":       "680",
			},
		},
		{
			name:     "Standard wallpaper 1.06x10.05",
			category: "wallpaper",
			params: map[string]string{
				"rollWidth":  "1.06",
				"rollLength": "10.05",
				"rapport":    "0",
				"trim":       "0.05",
				"margin":     "5",
				"price":      "1500",
			},
		},
	}

	for _, p := range presets {
		record := core.NewRecord(materialsCol)
		record.Set("name", p.name)
		record.Set("category", p.category)
		record.Set("params", p.params)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("failed to seed material preset %q: %w", p.name, err)
		}
	}

	fmt.Println("Seeded demo project and starter material presets")
	return nil
}
