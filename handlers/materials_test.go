package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"takeoff/services"
	"takeoff/testhelpers"
)

func TestHandleMaterialSaveAndList(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	saveReq := postJSON(t, "/api/materials", MaterialSaveRequest{
		Name:     "Knauf MP75",
		Category: services.CategoryPlaster,
		Params:   map[string]string{"thicknessMm": "15", "bagWeight": "30", "price": "520"},
	})
	saveRec := httptest.NewRecorder()

	if err := HandleMaterialSave(app)(newTestRequestEvent(app, saveReq, saveRec)); err != nil {
		t.Fatalf("save error: %v", err)
	}
	if saveRec.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", saveRec.Code, saveRec.Body.String())
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	listRec := httptest.NewRecorder()

	if err := HandleMaterialList(app)(newTestRequestEvent(app, listReq, listRec)); err != nil {
		t.Fatalf("list error: %v", err)
	}

	var materials []SavedMaterial
	if err := json.Unmarshal(listRec.Body.Bytes(), &materials); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(materials) != 1 {
		t.Fatalf("got %d materials, want 1", len(materials))
	}
	if materials[0].Name != "Knauf MP75" || materials[0].Category != services.CategoryPlaster {
		t.Errorf("material = %+v", materials[0])
	}
	if materials[0].Params["thicknessMm"] != "15" {
		t.Errorf("params = %v", materials[0].Params)
	}
}

func TestHandleMaterialList_CategoryFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSavedMaterial(t, app, "Plaster A", "plaster", map[string]string{"price": "1"})
	testhelpers.CreateTestSavedMaterial(t, app, "Paint B", "paint", map[string]string{"price": "2"})

	req := httptest.NewRequest(http.MethodGet, "/api/materials?category=paint", nil)
	rec := httptest.NewRecorder()

	if err := HandleMaterialList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var materials []SavedMaterial
	if err := json.Unmarshal(rec.Body.Bytes(), &materials); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(materials) != 1 || materials[0].Name != "Paint B" {
		t.Errorf("filtered materials = %+v", materials)
	}
}

func TestHandleMaterialList_UnknownCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/materials?category=concrete", nil)
	rec := httptest.NewRecorder()

	if err := HandleMaterialList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleMaterialSave_Validation(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		name string
		req  MaterialSaveRequest
	}{
		{"blank name", MaterialSaveRequest{Name: " ", Category: services.CategoryPaint}},
		{"unknown category", MaterialSaveRequest{Name: "X", Category: "concrete"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := postJSON(t, "/api/materials", tt.req)
			rec := httptest.NewRecorder()

			if err := HandleMaterialSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleMaterialDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mat := testhelpers.CreateTestSavedMaterial(t, app, "Old preset", "putty", map[string]string{"price": "9"})

	req := httptest.NewRequest(http.MethodDelete, "/api/materials/"+mat.Id, nil)
	req.SetPathValue("id", mat.Id)
	rec := httptest.NewRecorder()

	if err := HandleMaterialDelete(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if _, err := app.FindRecordById("saved_materials", mat.Id); err == nil {
		t.Error("material record should be gone")
	}
}
