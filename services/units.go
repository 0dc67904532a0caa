package services

import (
	"math"
	"strconv"
	"strings"
)

// Unit is a linear measurement unit. All calculations run in meters; rooms
// may store their dimensions in any supported unit.
type Unit string

const (
	UnitMeter      Unit = "m"
	UnitCentimeter Unit = "cm"
)

// Factor returns the number of units per meter.
func (u Unit) Factor() float64 {
	switch u {
	case UnitCentimeter:
		return 100
	default:
		return 1
	}
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	return u == UnitMeter || u == UnitCentimeter
}

// ParseDecimal parses a decimal form field, accepting both "." and "," as
// decimal separator. Malformed or non-finite input yields 0 — partially
// filled forms must never break a calculation. This is the single lenient
// parsing policy used across the whole core.
func ParseDecimal(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ToMeters parses a dimension string expressed in the given unit and returns
// its value in meters.
func ToMeters(s string, u Unit) float64 {
	return ParseDecimal(s) / u.Factor()
}

// FormatDimension renders a dimension value back to its string form with 15
// significant digits, so repeated unit switches round-trip without float
// drift accumulating in the stored strings.
func FormatDimension(v float64) string {
	return strconv.FormatFloat(v, 'g', 15, 64)
}

// ConvertRoomUnit rewrites every stored dimension field of the room (and its
// openings, exclusion zones and geometric elements) from the room's current
// unit to the target unit, preserving real-world magnitude. Blank fields stay
// blank, and an unsupported target unit leaves the room untouched. This is
// the only place stored values are mutated by a conversion.
func ConvertRoomUnit(room *Room, to Unit) {
	if !to.Valid() || room.Unit == to {
		return
	}
	from := room.Unit

	convert := func(field *string) {
		if strings.TrimSpace(*field) == "" {
			return
		}
		meters := ParseDecimal(*field) / from.Factor()
		*field = FormatDimension(meters * to.Factor())
	}

	convert(&room.Length)
	convert(&room.Width)
	convert(&room.Height)
	for i := range room.Openings {
		convert(&room.Openings[i].Width)
		convert(&room.Openings[i].Height)
		convert(&room.Openings[i].SillHeight)
	}
	for i := range room.Exclusions {
		convert(&room.Exclusions[i].Width)
		convert(&room.Exclusions[i].Height)
	}
	for i := range room.Elements {
		convert(&room.Elements[i].Width)
		convert(&room.Elements[i].Depth)
		convert(&room.Elements[i].Diameter)
		convert(&room.Elements[i].Height)
	}
	room.Unit = to
}
