package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takeoff/services"
)

// MaterializeRequest converts the current calculator results into a persisted
// estimate document under a project.
type MaterializeRequest struct {
	Name   string                   `json:"name"`
	Rooms  []services.Room          `json:"rooms"`
	Params services.EstimatorParams `json:"params"`
}

// MaterializeResponse reports the created estimate.
type MaterializeResponse struct {
	EstimateID string `json:"estimateId"`
	Number     string `json:"number"`
	ItemCount  int    `json:"itemCount"`
}

// HandleMaterializeEstimate computes the bill of materials and persists it as
// an estimate with one line item per material (group results expand into one
// item per sub-line). The estimate and its items are written in a single
// transaction — a failure leaves no partial estimate behind.
func HandleMaterializeEstimate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("projectId")
		if projectID == "" {
			return jsonError(e, http.StatusBadRequest, "Missing project ID")
		}

		project, err := app.FindRecordById("projects", projectID)
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Project not found")
		}

		var req MaterializeRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}
		if len(req.Rooms) == 0 {
			return jsonError(e, http.StatusBadRequest, "At least one room is required")
		}
		if !services.CanProceed(req.Rooms) {
			return jsonError(e, http.StatusBadRequest, "Fix the highlighted room fields first")
		}

		totals := services.AggregateRooms(req.Rooms)
		results := services.ComputeAll(totals, req.Params)
		items := services.BuildEstimateItems(results)
		if len(items) == 0 {
			return jsonError(e, http.StatusBadRequest, "Nothing to estimate — no material produced a result")
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = "Materials takeoff"
		}

		number, err := nextEstimateNumber(app, projectID)
		if err != nil {
			log.Printf("materialize: could not number estimate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var estimateID string
		err = app.RunInTransaction(func(txApp core.App) error {
			estimatesCol, err := txApp.FindCollectionByNameOrId("estimates")
			if err != nil {
				return fmt.Errorf("estimates collection: %w", err)
			}
			itemsCol, err := txApp.FindCollectionByNameOrId("estimate_items")
			if err != nil {
				return fmt.Errorf("estimate_items collection: %w", err)
			}

			estimate := core.NewRecord(estimatesCol)
			estimate.Set("project", project.Id)
			estimate.Set("name", name)
			estimate.Set("number", number)
			if err := txApp.Save(estimate); err != nil {
				return fmt.Errorf("save estimate: %w", err)
			}
			estimateID = estimate.Id

			for i, item := range items {
				record := core.NewRecord(itemsCol)
				record.Set("estimate", estimate.Id)
				record.Set("sort_order", i+1)
				record.Set("name", item.Name)
				record.Set("quantity", item.Quantity)
				record.Set("unit", item.Unit)
				record.Set("price", item.Price)
				record.Set("item_type", item.Type)
				record.Set("image", "")
				if err := txApp.Save(record); err != nil {
					return fmt.Errorf("save estimate item %d: %w", i+1, err)
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("materialize: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, MaterializeResponse{
			EstimateID: estimateID,
			Number:     number,
			ItemCount:  len(items),
		})
	}
}

// nextEstimateNumber produces a sequential per-project estimate number like
// "EST-003".
func nextEstimateNumber(app *pocketbase.PocketBase, projectID string) (string, error) {
	existing, err := app.FindRecordsByFilter(
		"estimates",
		"project = {:projectId}",
		"", 0, 0,
		map[string]any{"projectId": projectID},
	)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EST-%03d", len(existing)+1), nil
}
