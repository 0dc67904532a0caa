package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"takeoff/services"
	"takeoff/testhelpers"
)

func postJSON(t *testing.T, url string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
}

func TestHandleCompute(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	room := services.NewRoom("Living room")
	room.Length = "4"
	room.Width = "5"
	room.Height = "2.8"
	room.Openings = []services.Opening{
		{Type: services.OpeningDoor, Width: "0.9", Height: "2.1", Count: "1"},
	}

	req := postJSON(t, "/api/calculator/compute", ComputeRequest{
		Rooms:  []services.Room{room},
		Params: services.DefaultEstimatorParams(),
	})
	rec := httptest.NewRecorder()

	if err := HandleCompute(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp ComputeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	metrics, ok := resp.PerRoom[room.ID]
	if !ok {
		t.Fatalf("missing per-room metrics for %s", room.ID)
	}
	if math.Abs(metrics.NetWallArea-48.51) > 1e-9 {
		t.Errorf("NetWallArea = %v, want 48.51", metrics.NetWallArea)
	}
	if resp.Totals.RoomCount != 1 {
		t.Errorf("RoomCount = %d, want 1", resp.Totals.RoomCount)
	}
	if len(resp.Results) != len(services.MaterialCategories) {
		t.Errorf("got %d results, want %d", len(resp.Results), len(services.MaterialCategories))
	}
	if !resp.CanProceed {
		t.Errorf("valid rooms should allow proceeding, errors = %v", resp.Errors)
	}
}

func TestHandleCompute_ValidationErrors(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	room := services.NewRoom("Broken")
	room.Length = "4"
	// Width and height left blank.

	req := postJSON(t, "/api/calculator/compute", ComputeRequest{
		Rooms:  []services.Room{room},
		Params: services.DefaultEstimatorParams(),
	})
	rec := httptest.NewRecorder()

	if err := HandleCompute(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp ComputeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.CanProceed {
		t.Error("invalid room should block proceeding")
	}
	fields, ok := resp.Errors[room.ID]
	if !ok {
		t.Fatalf("expected errors for room %s", room.ID)
	}
	if _, ok := fields["width"]; !ok {
		t.Errorf("expected width error, got %v", fields)
	}
}

func TestHandleCompute_BadBody(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/calculator/compute", strings.NewReader("nope"))
	rec := httptest.NewRecorder()

	if err := HandleCompute(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleDefaults(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calculator/defaults", nil)
	rec := httptest.NewRecorder()

	if err := HandleDefaults(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var params services.EstimatorParams
	if err := json.Unmarshal(rec.Body.Bytes(), &params); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if params.Plaster.ThicknessMm != "20" {
		t.Errorf("plaster thickness default = %q, want 20", params.Plaster.ThicknessMm)
	}
	if params.Flooring.PackArea != "2.22" {
		t.Errorf("flooring pack area default = %q, want 2.22", params.Flooring.PackArea)
	}
}

func TestHandleConvertUnit(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	room := services.NewRoom("Bedroom")
	room.Length = "4"
	room.Width = "3.5"
	room.Height = "2.7"

	req := postJSON(t, "/api/calculator/convert-unit", ConvertUnitRequest{
		Room: room,
		Unit: services.UnitCentimeter,
	})
	rec := httptest.NewRecorder()

	if err := HandleConvertUnit(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var converted services.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &converted); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if converted.Unit != services.UnitCentimeter {
		t.Errorf("unit = %q, want cm", converted.Unit)
	}
	if converted.Length != "400" {
		t.Errorf("length = %q, want 400", converted.Length)
	}
}

func TestHandleConvertUnit_UnknownUnit(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := postJSON(t, "/api/calculator/convert-unit", map[string]any{
		"room": services.NewRoom("R"),
		"unit": "ft",
	})
	rec := httptest.NewRecorder()

	if err := HandleConvertUnit(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
