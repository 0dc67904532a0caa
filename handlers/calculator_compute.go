package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takeoff/services"
)

// ComputeRequest carries the full calculator input: the room list and every
// estimator's parameters.
type ComputeRequest struct {
	Rooms  []services.Room          `json:"rooms"`
	Params services.EstimatorParams `json:"params"`
}

// ComputeResponse is the full reactive recomputation output. Validation
// errors are returned alongside the results — they block progression in the
// client but never fail the request.
type ComputeResponse struct {
	PerRoom    map[string]services.RoomMetrics `json:"perRoom"`
	Totals     services.TotalMetrics           `json:"totals"`
	Results    []services.NamedResult          `json:"results"`
	TotalCost  float64                         `json:"totalCost"`
	Errors     map[string]map[string]string    `json:"errors"`
	CanProceed bool                            `json:"canProceed"`
}

// HandleCompute recomputes every room metric and every estimator result from
// the submitted state. The computation is pure; nothing is persisted.
func HandleCompute(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req ComputeRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		perRoom := make(map[string]services.RoomMetrics, len(req.Rooms))
		for _, room := range req.Rooms {
			perRoom[room.ID] = services.CalculateRoomMetrics(room)
		}

		totals := services.AggregateRooms(req.Rooms)
		results := services.ComputeAll(totals, req.Params)
		errors := services.ValidateRooms(req.Rooms)

		return e.JSON(http.StatusOK, ComputeResponse{
			PerRoom:    perRoom,
			Totals:     totals,
			Results:    results,
			TotalCost:  services.TotalCost(results),
			Errors:     errors,
			CanProceed: len(errors) == 0,
		})
	}
}

// HandleDefaults returns every estimator's default parameters, so clients
// can seed their forms.
func HandleDefaults(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, services.DefaultEstimatorParams())
	}
}

// ConvertUnitRequest asks for one room's stored dimensions to be rewritten
// into a different measurement unit.
type ConvertUnitRequest struct {
	Room services.Room `json:"room"`
	Unit services.Unit `json:"unit"`
}

// HandleConvertUnit rewrites a room's dimension strings into the target
// unit, preserving real-world magnitude, and returns the converted room.
func HandleConvertUnit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req ConvertUnitRequest
		if err := decodeJSON(e.Request, &req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}
		if !req.Unit.Valid() {
			return jsonError(e, http.StatusBadRequest, "Unsupported unit")
		}

		services.ConvertRoomUnit(&req.Room, req.Unit)
		return e.JSON(http.StatusOK, req.Room)
	}
}
