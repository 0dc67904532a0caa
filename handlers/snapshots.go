package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takeoff/services"
)

// SavedEstimate is a named snapshot of the full room list at a point in
// time. Loading one replaces the current room list wholesale.
type SavedEstimate struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Rooms   []services.Room `json:"rooms"`
	Created string          `json:"created"`
}

// HandleSnapshotList returns all saved estimates, newest first.
func HandleSnapshotList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("saved_estimates", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("snapshot_list: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		snapshots := make([]SavedEstimate, 0, len(records))
		for _, rec := range records {
			snap := SavedEstimate{
				ID:      rec.Id,
				Name:    rec.GetString("name"),
				Created: rec.GetDateTime("created").String(),
			}
			if err := rec.UnmarshalJSONField("rooms", &snap.Rooms); err != nil {
				log.Printf("snapshot_list: corrupt rooms in %s: %v", rec.Id, err)
				continue
			}
			snapshots = append(snapshots, snap)
		}

		return e.JSON(http.StatusOK, snapshots)
	}
}

// SnapshotSaveRequest names a new snapshot of the given room list.
type SnapshotSaveRequest struct {
	Name  string          `json:"name"`
	Rooms []services.Room `json:"rooms"`
}

// HandleSnapshotSave stores a named snapshot of the room list.
func HandleSnapshotSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req SnapshotSaveRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}
		if strings.TrimSpace(req.Name) == "" {
			return jsonError(e, http.StatusBadRequest, "Snapshot name is required")
		}

		col, err := app.FindCollectionByNameOrId("saved_estimates")
		if err != nil {
			log.Printf("snapshot_save: collection not found: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("name", strings.TrimSpace(req.Name))
		record.Set("rooms", req.Rooms)

		if err := app.Save(record); err != nil {
			log.Printf("snapshot_save: could not save: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// HandleSnapshotDelete removes one saved estimate.
func HandleSnapshotDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing snapshot ID")
		}

		record, err := app.FindRecordById("saved_estimates", id)
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Snapshot not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("snapshot_delete: could not delete %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]string{"id": id})
	}
}
