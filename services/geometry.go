package services

import "math"

// CalculateRoomMetrics derives all per-room quantities from the room's raw
// dimensions, openings, exclusion zones and geometric elements. The function
// is pure; it never mutates the room.
//
// Two opening-area accumulators are kept deliberately: the raw total (for
// reporting) always uses the full opening height, while the modified total
// (actually subtracted from wall area) respects the window sill flag — area
// below the sill stays on the wall.
func CalculateRoomMetrics(room Room) RoomMetrics {
	length := ToMeters(room.Length, room.Unit)
	width := ToMeters(room.Width, room.Unit)
	height := ToMeters(room.Height, room.Unit)

	floorArea := length * width
	perimeter := 2 * (length + width)
	grossWallArea := perimeter * height

	var rawOpeningsArea, modifiedOpeningsArea, totalDoorWidth float64
	for _, op := range room.Openings {
		w := ToMeters(op.Width, room.Unit)
		h := ToMeters(op.Height, room.Unit)
		n := ParseDecimal(op.Count)

		area := w * h * n
		rawOpeningsArea += area

		subtracted := area
		if op.Type == OpeningWindow && op.IncludeSillArea {
			if sill := ToMeters(op.SillHeight, room.Unit); sill > 0 {
				subtracted = w * math.Max(0, h-sill) * n
			}
		}
		modifiedOpeningsArea += subtracted

		if op.Type == OpeningDoor {
			totalDoorWidth += w * n
		}
	}

	var exclusionWallArea, exclusionPerimeter float64
	for _, zone := range room.Exclusions {
		w := ToMeters(zone.Width, room.Unit)
		h := ToMeters(zone.Height, room.Unit)
		n := ParseDecimal(zone.Count)
		if zone.AffectsWallArea {
			exclusionWallArea += w * h * n
		}
		if zone.AffectsPerimeter {
			exclusionPerimeter += w * n
		}
	}

	var geometryWallAreaChange, perimeterChange, floorAreaChange float64
	for _, el := range room.Elements {
		h := ToMeters(el.Height, room.Unit)
		n := ParseDecimal(el.Count)
		switch el.Type {
		case ElementColumn:
			d := ToMeters(el.Diameter, room.Unit)
			// Cylindrical lateral surface; footprint carved out of the floor.
			geometryWallAreaChange += math.Pi * d * h * n
			perimeterChange += math.Pi * d * n
			floorAreaChange -= math.Pi * (d / 2) * (d / 2) * n
		case ElementNiche:
			w := ToMeters(el.Width, room.Unit)
			depth := ToMeters(el.Depth, room.Unit)
			// Back wall plus two side returns.
			geometryWallAreaChange += (w*h + 2*depth*h) * n
			perimeterChange += 2 * depth * n
		case ElementProtrusion:
			depth := ToMeters(el.Depth, room.Unit)
			// Side faces only; the front face replaces an equal stretch of wall.
			geometryWallAreaChange += 2 * depth * h * n
			perimeterChange += 2 * depth * n
		}
	}

	netWallArea := math.Max(0, grossWallArea-modifiedOpeningsArea-exclusionWallArea+geometryWallAreaChange)
	floorArea = math.Max(0, floorArea+floorAreaChange)
	perimeter = math.Max(0, perimeter+perimeterChange)

	return RoomMetrics{
		FloorArea:               floorArea,
		Perimeter:               perimeter,
		GrossWallArea:           grossWallArea,
		TotalOpeningsArea:       rawOpeningsArea,
		NetWallArea:             netWallArea,
		TotalDoorWidth:          totalDoorWidth,
		Height:                  height,
		TotalExclusionPerimeter: exclusionPerimeter,
		TotalExclusionWallArea:  exclusionWallArea,
		GeometryWallAreaChange:  geometryWallAreaChange,
	}
}
