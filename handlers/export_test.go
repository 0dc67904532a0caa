package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"takeoff/services"
	"takeoff/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "My Takeoff File", "My-Takeoff-File"},
		{"slashes to hyphens", "path/to/file", "path-to-file"},
		{"backslashes", "path\\to\\file", "path-to-file"},
		{"quotes stripped", `a "quoted" name`, "a-quoted-name"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildExport(t *testing.T) {
	room := services.NewRoom("Living room")
	room.Length = "4"
	room.Width = "5"
	room.Height = "2.8"

	data := buildExport(ExportRequest{
		Rooms:  []services.Room{room},
		Params: services.DefaultEstimatorParams(),
	})

	if data.Title != "Materials takeoff" {
		t.Errorf("default title = %q", data.Title)
	}
	if data.Summary.RoomCount != 1 {
		t.Errorf("RoomCount = %d, want 1", data.Summary.RoomCount)
	}
	if len(data.Rows) == 0 {
		t.Fatal("expected material rows for a fully dimensioned room")
	}
}

func exportRequestBody(t *testing.T) *bytes.Reader {
	t.Helper()

	room := services.NewRoom("Room 1")
	room.Length = "4"
	room.Width = "5"
	room.Height = "2.8"

	body, err := json.Marshal(ExportRequest{
		Title:  "Site A",
		Rooms:  []services.Room{room},
		Params: services.DefaultEstimatorParams(),
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return bytes.NewReader(body)
}

func TestHandleExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/pdf", exportRequestBody(t))
	rec := httptest.NewRecorder()

	if err := HandleExportPDF(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Site-A") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response is not a PDF")
	}
}

func TestHandleExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/excel", exportRequestBody(t))
	rec := httptest.NewRecorder()

	if err := HandleExportExcel(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty Excel response")
	}
}

func TestHandleExportCSV(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/csv", exportRequestBody(t))
	rec := httptest.NewRecorder()

	if err := HandleExportCSV(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "Material,Quantity,Cost") {
		t.Errorf("unexpected CSV header: %q", rec.Body.String())
	}
}

func TestHandleExportPDF_BadBody(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/pdf", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	if err := HandleExportPDF(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
