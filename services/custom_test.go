package services

import (
	"math"
	"testing"
)

func TestCalcCustom(t *testing.T) {
	p := CustomParams{Items: []CustomItem{
		{Name: "Primer", Quantity: "3", Unit: "l", Price: "280"},
		{Name: "Masking tape", Quantity: "5", Price: "45"},
		{Name: "  ", Quantity: "2", Price: "100"},   // no name, skipped
		{Name: "Gloves", Quantity: "0", Price: "50"}, // zero quantity, skipped
		{Name: "Broken", Quantity: "abc", Price: "10"},
	}}

	r := CalcCustom(p)
	if r == nil {
		t.Fatal("expected a result")
	}
	if !r.IsGroup {
		t.Fatal("custom result must be a group")
	}
	if r.Quantity != "2 items" {
		t.Errorf("Quantity = %q", r.Quantity)
	}
	if len(r.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(r.Items))
	}

	if r.Items[0].Quantity != "3 l" {
		t.Errorf("first quantity = %q", r.Items[0].Quantity)
	}
	// Unit defaults to pcs when blank.
	if r.Items[1].Unit != "pcs" || r.Items[1].Quantity != "5 pcs" {
		t.Errorf("second item = %+v", r.Items[1])
	}

	// 3*280 + 5*45 = 1065.
	if math.Abs(r.Cost-1065) > tolerance {
		t.Errorf("Cost = %v, want 1065", r.Cost)
	}
}

func TestCalcCustom_Empty(t *testing.T) {
	if r := CalcCustom(CustomParams{}); r != nil {
		t.Errorf("expected nil, got %+v", r)
	}
	onlySkipped := CustomParams{Items: []CustomItem{{Name: "", Quantity: "1"}}}
	if r := CalcCustom(onlySkipped); r != nil {
		t.Errorf("expected nil when every line is skipped, got %+v", r)
	}
}

func TestCustomItemPresetRoundTrip(t *testing.T) {
	item := CustomItem{Name: "Primer", Quantity: "3", Unit: "l", Price: "280"}

	got := CustomItemFromPreset(item.PresetValues())
	if got != item {
		t.Errorf("round trip changed the item: %+v != %+v", got, item)
	}
}
