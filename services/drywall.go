package services

import (
	"fmt"
	"math"
)

// Drywall accessory rules of thumb per m² of sheathed area. These are fixed
// trade heuristics, not user-editable parameters; the output is flagged as
// approximate.
const (
	drywallRackProfilePerM2 = 3.0  // meters
	drywallScrewsPerM2      = 17.0 // pieces
	drywallTapePerM2        = 1.5  // meters
	drywallJointPuttyPerM2  = 0.5  // kg
)

type DrywallParams struct {
	Surface     string `json:"surface"`     // walls | ceiling
	SheetWidth  string `json:"sheetWidth"`  // meters
	SheetLength string `json:"sheetLength"` // meters
	Margin      string `json:"margin"`
	SheetPrice  string `json:"sheetPrice"`
	// Accessory unit prices: per meter of profile/tape, per screw, per kg of putty.
	GuideProfilePrice string `json:"guideProfilePrice"`
	RackProfilePrice  string `json:"rackProfilePrice"`
	ScrewPrice        string `json:"screwPrice"`
	TapePrice         string `json:"tapePrice"`
	JointPuttyPrice   string `json:"jointPuttyPrice"`
}

func DefaultDrywallParams() DrywallParams {
	return DrywallParams{
		Surface:     SurfaceWalls,
		SheetWidth:  "1.2",
		SheetLength: "2.5",
		Margin:      "10",
		SheetPrice:  "0",
	}
}

func (p *DrywallParams) ApplyPreset(values map[string]string) {
	applyPresetValues(values, map[string]*string{
		"surface":           &p.Surface,
		"sheetWidth":        &p.SheetWidth,
		"sheetLength":       &p.SheetLength,
		"margin":            &p.Margin,
		"sheetPrice":        &p.SheetPrice,
		"guideProfilePrice": &p.GuideProfilePrice,
		"rackProfilePrice":  &p.RackProfilePrice,
		"screwPrice":        &p.ScrewPrice,
		"tapePrice":         &p.TapePrice,
		"jointPuttyPrice":   &p.JointPuttyPrice,
	})
}

// CalcDrywall produces a multi-line group result: sheets plus the accessory
// bill (guide profile along the perimeter, rack profile, screws, joint tape
// and joint putty scaled from the sheathed area).
func CalcDrywall(m TotalMetrics, p DrywallParams) *MaterialResult {
	area := m.NetWallArea
	if p.Surface == SurfaceCeiling {
		area = m.FloorArea
	}
	sheetArea := ParseDecimal(p.SheetWidth) * ParseDecimal(p.SheetLength)
	if area <= 0 || sheetArea <= 0 {
		return nil
	}

	sheets := int(math.Ceil(area * (1 + ParseDecimal(p.Margin)/100) / sheetArea))
	if sheets == 0 {
		return nil
	}

	guide := math.Ceil(m.Perimeter)
	rack := math.Ceil(area * drywallRackProfilePerM2)
	screws := math.Ceil(area * drywallScrewsPerM2)
	tape := math.Ceil(area * drywallTapePerM2)
	putty := area * drywallJointPuttyPerM2

	sheetPrice := ParseDecimal(p.SheetPrice)
	items := []MaterialLineItem{
		{
			Name:     "Drywall sheets",
			Quantity: fmt.Sprintf("%d pcs", sheets),
			Unit:     "pcs",
			Cost:     float64(sheets) * sheetPrice,
		},
		{
			Name:     "Guide profile",
			Quantity: fmt.Sprintf("%.0f m", guide),
			Unit:     "m",
			Cost:     guide * ParseDecimal(p.GuideProfilePrice),
		},
		{
			Name:     "Rack profile",
			Quantity: fmt.Sprintf("%.0f m", rack),
			Unit:     "m",
			Cost:     rack * ParseDecimal(p.RackProfilePrice),
		},
		{
			Name:     "Screws",
			Quantity: fmt.Sprintf("%.0f pcs", screws),
			Unit:     "pcs",
			Cost:     screws * ParseDecimal(p.ScrewPrice),
		},
		{
			Name:     "Joint tape",
			Quantity: fmt.Sprintf("%.0f m", tape),
			Unit:     "m",
			Cost:     tape * ParseDecimal(p.TapePrice),
		},
		{
			Name:     "Joint putty",
			Quantity: fmt.Sprintf("%.1f kg", putty),
			Unit:     "kg",
			Cost:     putty * ParseDecimal(p.JointPuttyPrice),
		},
	}

	var total float64
	for _, item := range items {
		total += item.Cost
	}

	return &MaterialResult{
		Quantity: fmt.Sprintf("%d sheets", sheets),
		Cost:     total,
		Unit:     "sheets",
		IsGroup:  true,
		Items:    items,
		Details: map[string]string{
			"Sheathed area":       fmt.Sprintf("%.1f m²", area),
			"Note":                "Accessory quantities are approximate",
			DetailPricePerPackage: fmt.Sprintf("%.2f", sheetPrice),
		},
	}
}
