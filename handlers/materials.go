package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takeoff/services"
)

// SavedMaterial is a named, reusable preset of one estimator's input
// parameters. Presets are immutable once created; editing is
// delete-and-recreate.
type SavedMaterial struct {
	ID       string                    `json:"id"`
	Name     string                    `json:"name"`
	Category services.MaterialCategory `json:"category"`
	Params   map[string]string         `json:"params"`
	Created  string                    `json:"created"`
}

// HandleMaterialList returns saved material presets, optionally filtered by
// the ?category= query parameter.
func HandleMaterialList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filter := "id != ''"
		params := map[string]any{}

		if category := e.Request.URL.Query().Get("category"); category != "" {
			if !services.MaterialCategory(category).Valid() {
				return jsonError(e, http.StatusBadRequest, "Unknown material category")
			}
			filter = "category = {:category}"
			params["category"] = category
		}

		records, err := app.FindRecordsByFilter("saved_materials", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("material_list: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		materials := make([]SavedMaterial, 0, len(records))
		for _, rec := range records {
			m := SavedMaterial{
				ID:       rec.Id,
				Name:     rec.GetString("name"),
				Category: services.MaterialCategory(rec.GetString("category")),
				Created:  rec.GetDateTime("created").String(),
			}
			if err := rec.UnmarshalJSONField("params", &m.Params); err != nil {
				log.Printf("material_list: corrupt params in %s: %v", rec.Id, err)
				continue
			}
			materials = append(materials, m)
		}

		return e.JSON(http.StatusOK, materials)
	}
}

// MaterialSaveRequest adds one preset to the material library.
type MaterialSaveRequest struct {
	Name     string                    `json:"name"`
	Category services.MaterialCategory `json:"category"`
	Params   map[string]string         `json:"params"`
}

// HandleMaterialSave stores a new material preset.
func HandleMaterialSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req MaterialSaveRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}
		if strings.TrimSpace(req.Name) == "" {
			return jsonError(e, http.StatusBadRequest, "Material name is required")
		}
		if !req.Category.Valid() {
			return jsonError(e, http.StatusBadRequest, "Unknown material category")
		}

		col, err := app.FindCollectionByNameOrId("saved_materials")
		if err != nil {
			log.Printf("material_save: collection not found: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("name", strings.TrimSpace(req.Name))
		record.Set("category", string(req.Category))
		record.Set("params", req.Params)

		if err := app.Save(record); err != nil {
			log.Printf("material_save: could not save: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandleMaterialDelete removes one preset from the library.
func HandleMaterialDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing material ID")
		}

		record, err := app.FindRecordById("saved_materials", id)
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Material not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("material_delete: could not delete %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]string{"id": id})
	}
}
