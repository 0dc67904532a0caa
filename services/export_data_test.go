package services

import (
	"strings"
	"testing"
)

func TestBuildExportData(t *testing.T) {
	totals := TotalMetrics{RoomCount: 2, FloorArea: 29, NetWallArea: 78.51, Perimeter: 30, AverageHeight: 2.65}
	results := []NamedResult{
		{CategoryPlaster, "Plaster", &MaterialResult{Quantity: "33 bags (960.5 kg)", Cost: 14850}},
		{CategoryPutty, "Putty", nil},
		{CategoryWallpaper, "Wallpaper", &MaterialResult{Error: "strip too long"}},
		{CategoryDrywall, "Drywall", &MaterialResult{
			Quantity: "10 sheets",
			Cost:     4060,
			IsGroup:  true,
			Items: []MaterialLineItem{
				{Name: "Drywall sheets", Quantity: "10 pcs", Unit: "pcs", Cost: 4000},
				{Name: "Screws", Quantity: "510 pcs", Unit: "pcs", Cost: 60},
			},
		}},
	}

	data := BuildExportData("Takeoff", "15 Jan 2026", totals, results)

	if data.Title != "Takeoff" || data.GeneratedDate != "15 Jan 2026" {
		t.Errorf("header = %q / %q", data.Title, data.GeneratedDate)
	}
	// Plaster, wallpaper error, two drywall sub-lines; nil putty skipped.
	if len(data.Rows) != 4 {
		t.Fatalf("got %d rows, want 4: %+v", len(data.Rows), data.Rows)
	}

	if data.Rows[0].MaterialName != "Plaster" || data.Rows[0].CostText != "14,850.00" {
		t.Errorf("plaster row = %+v", data.Rows[0])
	}

	// Error results keep their message in the quantity column with no cost.
	if data.Rows[1].QuantityText != "strip too long" || data.Rows[1].CostText == data.Rows[0].CostText {
		t.Errorf("error row = %+v", data.Rows[1])
	}

	// Group sub-lines are prefixed with the group name.
	if !strings.HasPrefix(data.Rows[2].MaterialName, "Drywall") || !strings.HasSuffix(data.Rows[2].MaterialName, "Drywall sheets") {
		t.Errorf("group row = %+v", data.Rows[2])
	}

	// Error result cost is excluded from the summary total.
	if data.Summary.TotalCost != 14850+4060 {
		t.Errorf("TotalCost = %v, want 18910", data.Summary.TotalCost)
	}
	if data.Summary.RoomCount != 2 {
		t.Errorf("RoomCount = %d, want 2", data.Summary.RoomCount)
	}
}
