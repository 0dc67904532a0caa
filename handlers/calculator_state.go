package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takeoff/services"
)

// CalculatorState is the autosaved calculator session: the full room list
// plus which room is open and which wizard step the user is on.
type CalculatorState struct {
	Rooms        []services.Room `json:"rooms"`
	ActiveRoomID string          `json:"activeRoomId"`
	Step         int             `json:"step"`
}

// findSessionRecord returns the singleton calculator_sessions record, or nil
// when none has been saved yet.
func findSessionRecord(app *pocketbase.PocketBase) *core.Record {
	records, err := app.FindRecordsByFilter("calculator_sessions", "id != ''", "-updated", 1, 0, nil)
	if err != nil || len(records) == 0 {
		return nil
	}
	return records[0]
}

// HandleStateLoad returns the saved calculator session. When nothing has
// been saved yet it returns a fresh default state with a single empty room
// (nothing is persisted until the client saves).
func HandleStateLoad(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := findSessionRecord(app)
		if record == nil {
			room := services.NewRoom("Room 1")
			return e.JSON(http.StatusOK, CalculatorState{
				Rooms:        []services.Room{room},
				ActiveRoomID: room.ID,
				Step:         0,
			})
		}

		var state CalculatorState
		if err := record.UnmarshalJSONField("rooms", &state.Rooms); err != nil {
			log.Printf("state_load: corrupt rooms payload: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Saved session could not be read")
		}
		state.ActiveRoomID = record.GetString("active_room_id")
		state.Step = record.GetInt("step")

		return e.JSON(http.StatusOK, state)
	}
}

// HandleStateSave persists the calculator session, overwriting the previous
// autosave.
func HandleStateSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var state CalculatorState
		if err := decodeJSON(e.Request, &state); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		record := findSessionRecord(app)
		if record == nil {
			col, err := app.FindCollectionByNameOrId("calculator_sessions")
			if err != nil {
				log.Printf("state_save: collection not found: %v", err)
				return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			record = core.NewRecord(col)
		}

		record.Set("rooms", state.Rooms)
		record.Set("active_room_id", state.ActiveRoomID)
		record.Set("step", state.Step)

		if err := app.Save(record); err != nil {
			log.Printf("state_save: could not save session: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}
