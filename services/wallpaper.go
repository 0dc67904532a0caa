package services

import (
	"fmt"
	"math"
)

type WallpaperParams struct {
	RollWidth  string `json:"rollWidth"`  // meters
	RollLength string `json:"rollLength"` // meters
	Rapport    string `json:"rapport"`    // pattern repeat, meters; 0 = plain
	Trim       string `json:"trim"`       // per-strip trim allowance, meters
	Margin     string `json:"margin"`
	Price      string `json:"price"` // per roll
}

func DefaultWallpaperParams() WallpaperParams {
	return WallpaperParams{RollWidth: "1.06", RollLength: "10.05", Rapport: "0", Trim: "0.05", Margin: "5", Price: "0"}
}

func (p *WallpaperParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"rollWidth":  &p.RollWidth,
		"rollLength": &p.RollLength,
		"rapport":    &p.Rapport,
		"trim":       &p.Trim,
		"margin":     &p.Margin,
		"price":      &p.Price,
	})
}

// CalcWallpaper runs a roll-cutting simulation. Each vertical strip is
// height+trim long; with a pattern repeat (rapport) every strip after the
// first within a roll must start on a rapport boundary, so it consumes
// ceil(stripLen/rapport)*rapport of roll length. A new roll is opened only
// when the remainder cannot fit the next strip.
//
// A strip longer than the roll is a configuration error and is reported as
// an error result, never silently ignored.
func CalcWallpaper(m TotalMetrics, p WallpaperParams) *MaterialResult {
	rollWidth := ParseDecimal(p.RollWidth)
	rollLength := ParseDecimal(p.RollLength)
	rapport := ParseDecimal(p.Rapport)
	height := m.AverageHeight

	if m.Perimeter <= 0 || height <= 0 || rollWidth <= 0 || rollLength <= 0 {
		return nil
	}

	stripLength := height + ParseDecimal(p.Trim)
	if stripLength > rollLength {
		return &MaterialResult{
			Unit: "rolls",
			Error: fmt.Sprintf("Strip length %.2f m exceeds roll length %.2f m — choose longer rolls or split the strips",
				stripLength, rollLength),
		}
	}

	alignedLength := stripLength
	if rapport > 0 {
		alignedLength = math.Ceil(stripLength/rapport) * rapport
	}

	strips := int(math.Ceil(m.Perimeter / rollWidth))
	rolls := 0
	remaining := 0.0
	for i := 0; i < strips; i++ {
		if remaining >= stripLength {
			remaining -= alignedLength
			if remaining < 0 {
				remaining = 0
			}
		} else {
			rolls++
			remaining = rollLength - stripLength
		}
	}

	rolls = int(math.Ceil(float64(rolls) * (1 + ParseDecimal(p.Margin)/100)))
	if rolls == 0 {
		return nil
	}

	price := ParseDecimal(p.Price)
	return &MaterialResult{
		Quantity: fmt.Sprintf("%d rolls (%d strips)", rolls, strips),
		Cost:     float64(rolls) * price,
		Unit:     "rolls",
		Details: map[string]string{
			"Strips":              fmt.Sprintf("%d", strips),
			"Strip length":        fmt.Sprintf("%.2f m", stripLength),
			DetailPricePerPackage: fmt.Sprintf("%.2f", price),
		},
	}
}
