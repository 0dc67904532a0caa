package services

// TotalMetrics is the project-level sum of per-room metrics. Estimators
// consume these aggregates, never individual rooms.
type TotalMetrics struct {
	RoomCount               int     `json:"roomCount"`
	FloorArea               float64 `json:"floorArea"`
	Perimeter               float64 `json:"perimeter"`
	GrossWallArea           float64 `json:"grossWallArea"`
	NetWallArea             float64 `json:"netWallArea"`
	TotalOpeningsArea       float64 `json:"totalOpeningsArea"`
	TotalDoorWidth          float64 `json:"totalDoorWidth"`
	TotalExclusionPerimeter float64 `json:"totalExclusionPerimeter"`
	AverageHeight           float64 `json:"averageHeight"`
}

// AggregateRooms computes each room's metrics and sums them field by field.
// Average ceiling height is a running weighted average updated incrementally
// as rooms are folded in.
func AggregateRooms(rooms []Room) TotalMetrics {
	var t TotalMetrics
	for _, room := range rooms {
		m := CalculateRoomMetrics(room)

		n := float64(t.RoomCount)
		t.AverageHeight = (t.AverageHeight*n + m.Height) / (n + 1)
		t.RoomCount++

		t.FloorArea += m.FloorArea
		t.Perimeter += m.Perimeter
		t.GrossWallArea += m.GrossWallArea
		t.NetWallArea += m.NetWallArea
		t.TotalOpeningsArea += m.TotalOpeningsArea
		t.TotalDoorWidth += m.TotalDoorWidth
		t.TotalExclusionPerimeter += m.TotalExclusionPerimeter
	}
	return t
}
