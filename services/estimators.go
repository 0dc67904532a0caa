package services

import (
	"fmt"
	"math"
	"strings"
)

// All estimators are pure functions (TotalMetrics, params) -> *MaterialResult.
// A nil return means "no result": a zero discrete quantity must never show up
// as a zero-quantity line. Packaged quantities always round up — a partial
// bag, can or pack is still a whole retail unit.
//
// Param structs hold raw form strings (the edit boundary is string-typed) and
// are parsed through ParseDecimal at calculation time.

// applyPresetValues overwrites only the fields the preset defines, leaving
// everything else at its current value.
func applyPresetValues(values map[string]string, fields map[string]*string) {
	for key, dst := range fields {
		if v, ok := values[key]; ok {
			*dst = v
		}
	}
}

// marginOrDefault honors the layout-linked margin rule: a blank margin field
// means "use the pattern's default", an explicit value always wins.
func marginOrDefault(raw string, def float64) float64 {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return ParseDecimal(raw)
}

// bagQuantity computes the shared bag/weight model: total weight from area,
// layer thickness and consumption rate, inflated by the waste margin, then
// ceiled into whole bags.
func bagQuantity(area, thicknessMm, consumptionKgPerMmM2, marginPct, bagWeightKg float64) (bags int, totalWeight float64) {
	if area <= 0 || thicknessMm <= 0 || consumptionKgPerMmM2 <= 0 || bagWeightKg <= 0 {
		return 0, 0
	}
	totalWeight = area * thicknessMm * consumptionKgPerMmM2 * (1 + marginPct/100)
	bags = int(math.Ceil(totalWeight / bagWeightKg))
	return bags, totalWeight
}

func baggedResult(bags int, totalWeight, price, thicknessMm float64) *MaterialResult {
	if bags == 0 {
		return nil
	}
	return &MaterialResult{
		Quantity: fmt.Sprintf("%d bags (%.1f kg)", bags, totalWeight),
		Cost:     float64(bags) * price,
		Unit:     "bags",
		Details: map[string]string{
			"Total weight":        fmt.Sprintf("%.1f kg", totalWeight),
			"Layer thickness":     fmt.Sprintf("%.0f mm", thicknessMm),
			DetailPricePerPackage: fmt.Sprintf("%.2f", price),
		},
	}
}

// ── Plaster ─────────────────────────────────────────────────────────────

type PlasterParams struct {
	ThicknessMm string `json:"thicknessMm"`
	Consumption string `json:"consumption"` // kg per mm layer per m²
	Margin      string `json:"margin"`      // waste percent
	BagWeight   string `json:"bagWeight"`   // kg
	Price       string `json:"price"`       // per bag
}

func DefaultPlasterParams() PlasterParams {
	return PlasterParams{ThicknessMm: "20", Consumption: "0.9", Margin: "10", BagWeight: "30", Price: "0"}
}

func (p *PlasterParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"thicknessMm": &p.ThicknessMm,
		"consumption": &p.Consumption,
		"margin":      &p.Margin,
		"bagWeight":   &p.BagWeight,
		"price":       &p.Price,
	})
}

// CalcPlaster estimates plaster bags from net wall area.
func CalcPlaster(m TotalMetrics, p PlasterParams) *MaterialResult {
	thickness := ParseDecimal(p.ThicknessMm)
	bags, weight := bagQuantity(m.NetWallArea, thickness, ParseDecimal(p.Consumption),
		ParseDecimal(p.Margin), ParseDecimal(p.BagWeight))
	return baggedResult(bags, weight, ParseDecimal(p.Price), thickness)
}

// ── Putty ───────────────────────────────────────────────────────────────

type PuttyParams struct {
	ThicknessMm string `json:"thicknessMm"`
	Consumption string `json:"consumption"`
	Margin      string `json:"margin"`
	BagWeight   string `json:"bagWeight"`
	Price       string `json:"price"`
}

func DefaultPuttyParams() PuttyParams {
	return PuttyParams{ThicknessMm: "2", Consumption: "1.2", Margin: "10", BagWeight: "25", Price: "0"}
}

func (p *PuttyParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"thicknessMm": &p.ThicknessMm,
		"consumption": &p.Consumption,
		"margin":      &p.Margin,
		"bagWeight":   &p.BagWeight,
		"price":       &p.Price,
	})
}

// CalcPutty estimates putty bags from net wall area.
func CalcPutty(m TotalMetrics, p PuttyParams) *MaterialResult {
	thickness := ParseDecimal(p.ThicknessMm)
	bags, weight := bagQuantity(m.NetWallArea, thickness, ParseDecimal(p.Consumption),
		ParseDecimal(p.Margin), ParseDecimal(p.BagWeight))
	return baggedResult(bags, weight, ParseDecimal(p.Price), thickness)
}

// ── Screed ──────────────────────────────────────────────────────────────

type ScreedParams struct {
	ThicknessMm string `json:"thicknessMm"`
	Consumption string `json:"consumption"`
	Margin      string `json:"margin"`
	BagWeight   string `json:"bagWeight"`
	Price       string `json:"price"`
}

func DefaultScreedParams() ScreedParams {
	return ScreedParams{ThicknessMm: "50", Consumption: "2", Margin: "10", BagWeight: "25", Price: "0"}
}

func (p *ScreedParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"thicknessMm": &p.ThicknessMm,
		"consumption": &p.Consumption,
		"margin":      &p.Margin,
		"bagWeight":   &p.BagWeight,
		"price":       &p.Price,
	})
}

// CalcScreed estimates floor screed bags from floor area.
func CalcScreed(m TotalMetrics, p ScreedParams) *MaterialResult {
	thickness := ParseDecimal(p.ThicknessMm)
	bags, weight := bagQuantity(m.FloorArea, thickness, ParseDecimal(p.Consumption),
		ParseDecimal(p.Margin), ParseDecimal(p.BagWeight))
	return baggedResult(bags, weight, ParseDecimal(p.Price), thickness)
}

// ── Paint ───────────────────────────────────────────────────────────────

// Surface selects which aggregated area an estimator paints or sheathes.
const (
	SurfaceWalls   = "walls"
	SurfaceCeiling = "ceiling"
)

type PaintParams struct {
	Surface     string `json:"surface"`     // walls | ceiling
	Consumption string `json:"consumption"` // liters per m² per layer
	Layers      string `json:"layers"`
	Margin      string `json:"margin"`
	CanVolume   string `json:"canVolume"` // liters
	Price       string `json:"price"`     // per can
}

func DefaultPaintParams() PaintParams {
	return PaintParams{Surface: SurfaceWalls, Consumption: "0.15", Layers: "2", Margin: "5", CanVolume: "9", Price: "0"}
}

func (p *PaintParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"surface":     &p.Surface,
		"consumption": &p.Consumption,
		"layers":      &p.Layers,
		"margin":      &p.Margin,
		"canVolume":   &p.CanVolume,
		"price":       &p.Price,
	})
}

// CalcPaint estimates paint cans. The ceiling surface uses floor area as the
// painted area.
func CalcPaint(m TotalMetrics, p PaintParams) *MaterialResult {
	area := m.NetWallArea
	if p.Surface == SurfaceCeiling {
		area = m.FloorArea
	}
	consumption := ParseDecimal(p.Consumption)
	layers := ParseDecimal(p.Layers)
	canVolume := ParseDecimal(p.CanVolume)
	if area <= 0 || consumption <= 0 || layers <= 0 || canVolume <= 0 {
		return nil
	}

	totalLiters := area * consumption * layers * (1 + ParseDecimal(p.Margin)/100)
	cans := int(math.Ceil(totalLiters / canVolume))
	if cans == 0 {
		return nil
	}

	price := ParseDecimal(p.Price)
	return &MaterialResult{
		Quantity: fmt.Sprintf("%d cans (%.1f l)", cans, totalLiters),
		Cost:     float64(cans) * price,
		Unit:     "cans",
		Details: map[string]string{
			"Total volume":        fmt.Sprintf("%.1f l", totalLiters),
			"Layers":              fmt.Sprintf("%.0f", layers),
			DetailPricePerPackage: fmt.Sprintf("%.2f", price),
		},
	}
}

// ── Tile ────────────────────────────────────────────────────────────────

// Layout patterns with their default waste margins.
const (
	PatternStraight = "straight"
	PatternDiagonal = "diagonal"
)

const (
	tileMarginStraight = 10
	tileMarginDiagonal = 15
)

type TileParams struct {
	Surface      string `json:"surface"`      // floor | walls
	TileWidthCm  string `json:"tileWidthCm"`
	TileHeightCm string `json:"tileHeightCm"`
	GroutMm      string `json:"groutMm"`
	TilesPerPack string `json:"tilesPerPack"`
	Pattern      string `json:"pattern"` // straight | diagonal
	Margin       string `json:"margin"`  // blank = pattern default
	Price        string `json:"price"`   // per pack
}

func DefaultTileParams() TileParams {
	return TileParams{Surface: "floor", TileWidthCm: "30", TileHeightCm: "30", GroutMm: "2", TilesPerPack: "10", Pattern: PatternStraight, Price: "0"}
}

func (p *TileParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"surface":      &p.Surface,
		"tileWidthCm":  &p.TileWidthCm,
		"tileHeightCm": &p.TileHeightCm,
		"groutMm":      &p.GroutMm,
		"tilesPerPack": &p.TilesPerPack,
		"pattern":      &p.Pattern,
		"margin":       &p.Margin,
		"price":        &p.Price,
	})
}

// TileDefaultMargin returns the waste margin implied by a layout pattern.
func TileDefaultMargin(pattern string) float64 {
	if pattern == PatternDiagonal {
		return tileMarginDiagonal
	}
	return tileMarginStraight
}

// CalcTile estimates tile packs. The per-tile footprint includes grout width
// on both dimensions.
func CalcTile(m TotalMetrics, p TileParams) *MaterialResult {
	area := m.FloorArea
	if p.Surface == SurfaceWalls {
		area = m.NetWallArea
	}
	tileW := ParseDecimal(p.TileWidthCm) / 100
	tileH := ParseDecimal(p.TileHeightCm) / 100
	grout := ParseDecimal(p.GroutMm) / 1000
	perPack := ParseDecimal(p.TilesPerPack)

	footprint := (tileW + grout) * (tileH + grout)
	if area <= 0 || footprint <= 0 || perPack <= 0 {
		return nil
	}

	margin := marginOrDefault(p.Margin, TileDefaultMargin(p.Pattern))
	totalTiles := int(math.Ceil(area * (1 + margin/100) / footprint))
	packs := int(math.Ceil(float64(totalTiles) / perPack))
	if packs == 0 {
		return nil
	}

	price := ParseDecimal(p.Price)
	return &MaterialResult{
		Quantity: fmt.Sprintf("%d packs (%d tiles)", packs, totalTiles),
		Cost:     float64(packs) * price,
		Unit:     "packs",
		Details: map[string]string{
			"Tiles":               fmt.Sprintf("%d", totalTiles),
			"Waste margin":        fmt.Sprintf("%.0f%%", margin),
			DetailPricePerPackage: fmt.Sprintf("%.2f", price),
		},
	}
}

// ── Flooring (laminate) ─────────────────────────────────────────────────

const (
	flooringMarginStraight = 7
	flooringMarginDiagonal = 10
)

type FlooringParams struct {
	Direction string `json:"direction"` // straight | diagonal
	PackArea  string `json:"packArea"`  // m² per pack
	Margin    string `json:"margin"`    // blank = direction default
	Price     string `json:"price"`     // per pack
}

func DefaultFlooringParams() FlooringParams {
	return FlooringParams{Direction: PatternStraight, PackArea: "2.22", Price: "0"}
}

func (p *FlooringParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"direction": &p.Direction,
		"packArea":  &p.PackArea,
		"margin":    &p.Margin,
		"price":     &p.Price,
	})
}

// FlooringDefaultMargin returns the waste margin implied by a laying direction.
func FlooringDefaultMargin(direction string) float64 {
	if direction == PatternDiagonal {
		return flooringMarginDiagonal
	}
	return flooringMarginStraight
}

// CalcFlooring estimates laminate packs from floor area.
func CalcFlooring(m TotalMetrics, p FlooringParams) *MaterialResult {
	packArea := ParseDecimal(p.PackArea)
	if m.FloorArea <= 0 || packArea <= 0 {
		return nil
	}

	margin := marginOrDefault(p.Margin, FlooringDefaultMargin(p.Direction))
	totalArea := m.FloorArea * (1 + margin/100)
	packs := int(math.Ceil(totalArea / packArea))
	if packs == 0 {
		return nil
	}

	price := ParseDecimal(p.Price)
	return &MaterialResult{
		Quantity: fmt.Sprintf("%d packs (%.1f m²)", packs, totalArea),
		Cost:     float64(packs) * price,
		Unit:     "packs",
		Details: map[string]string{
			"Area with margin":    fmt.Sprintf("%.1f m²", totalArea),
			"Waste margin":        fmt.Sprintf("%.0f%%", margin),
			DetailPricePerPackage: fmt.Sprintf("%.2f", price),
		},
	}
}

// ── Skirting ────────────────────────────────────────────────────────────

type SkirtingParams struct {
	PieceLength string `json:"pieceLength"` // meters
	Margin      string `json:"margin"`
	Price       string `json:"price"` // per piece
}

func DefaultSkirtingParams() SkirtingParams {
	return SkirtingParams{PieceLength: "2.5", Margin: "5", Price: "0"}
}

func (p *SkirtingParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"pieceLength": &p.PieceLength,
		"margin":      &p.Margin,
		"price":       &p.Price,
	})
}

// CalcSkirting estimates skirting pieces. Skirting does not run across
// doorways or excluded perimeter stretches; a fully consumed perimeter
// yields no result.
func CalcSkirting(m TotalMetrics, p SkirtingParams) *MaterialResult {
	effective := m.Perimeter - m.TotalDoorWidth - m.TotalExclusionPerimeter
	pieceLength := ParseDecimal(p.PieceLength)
	if effective <= 0 || pieceLength <= 0 {
		return nil
	}

	needed := effective * (1 + ParseDecimal(p.Margin)/100)
	pieces := int(math.Ceil(needed / pieceLength))
	if pieces == 0 {
		return nil
	}

	price := ParseDecimal(p.Price)
	return &MaterialResult{
		Quantity: fmt.Sprintf("%d pieces (%.1f m)", pieces, needed),
		Cost:     float64(pieces) * price,
		Unit:     "pieces",
		Details: map[string]string{
			"Effective perimeter": fmt.Sprintf("%.2f m", effective),
			DetailPricePerPackage: fmt.Sprintf("%.2f", price),
		},
	}
}
