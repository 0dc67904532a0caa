package services

import (
	"fmt"
	"strings"
)

// CustomItem is one free-form material line: anything the built-in
// estimators don't cover.
type CustomItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Price    string `json:"price"` // per unit
}

type CustomParams struct {
	Items []CustomItem `json:"items"`
}

// CustomItemFromPreset builds a line from a saved preset, taking only the
// keys the preset defines.
func CustomItemFromPreset(values map[string]string) CustomItem {
	var item CustomItem
	applyPresetValues(values, map[string]*string{
		"name":     &item.Name,
		"quantity": &item.Quantity,
		"unit":     &item.Unit,
		"price":    &item.Price,
	})
	return item
}

// PresetValues renders the line back into the preset map form, for saving to
// the material library.
func (c CustomItem) PresetValues() map[string]string {
	return map[string]string{
		"name":     c.Name,
		"quantity": c.Quantity,
		"unit":     c.Unit,
		"price":    c.Price,
	}
}

// CalcCustom aggregates the free-form material lines into a group result.
// Lines without a name or with a non-positive quantity are skipped; an empty
// list yields no result.
func CalcCustom(p CustomParams) *MaterialResult {
	var items []MaterialLineItem
	var total float64
	for _, line := range p.Items {
		name := strings.TrimSpace(line.Name)
		qty := ParseDecimal(line.Quantity)
		if name == "" || qty <= 0 {
			continue
		}
		unit := strings.TrimSpace(line.Unit)
		if unit == "" {
			unit = "pcs"
		}
		cost := qty * ParseDecimal(line.Price)
		items = append(items, MaterialLineItem{
			Name:     name,
			Quantity: fmt.Sprintf("%s %s", FormatQty(qty), unit),
			Unit:     unit,
			Cost:     cost,
		})
		total += cost
	}
	if len(items) == 0 {
		return nil
	}

	return &MaterialResult{
		Quantity: fmt.Sprintf("%d items", len(items)),
		Cost:     total,
		IsGroup:  true,
		Items:    items,
	}
}
