package services

import (
	"math"
	"testing"
)

func TestAggregateRooms_Empty(t *testing.T) {
	totals := AggregateRooms(nil)
	if totals.RoomCount != 0 {
		t.Errorf("RoomCount = %d, want 0", totals.RoomCount)
	}
	if totals.AverageHeight != 0 {
		t.Errorf("AverageHeight = %v, want 0", totals.AverageHeight)
	}
}

func TestAggregateRooms_SumsFields(t *testing.T) {
	roomA := simpleRoom("4", "5", "2.8")
	roomA.Openings = []Opening{
		{Type: OpeningDoor, Width: "0.9", Height: "2.1", Count: "1"},
	}
	roomB := simpleRoom("3", "3", "2.5")

	totals := AggregateRooms([]Room{roomA, roomB})

	if totals.RoomCount != 2 {
		t.Fatalf("RoomCount = %d, want 2", totals.RoomCount)
	}
	if math.Abs(totals.FloorArea-29) > tolerance {
		t.Errorf("FloorArea = %v, want 29", totals.FloorArea)
	}
	if math.Abs(totals.Perimeter-30) > tolerance {
		t.Errorf("Perimeter = %v, want 30", totals.Perimeter)
	}
	if math.Abs(totals.GrossWallArea-(50.4+30)) > tolerance {
		t.Errorf("GrossWallArea = %v, want 80.4", totals.GrossWallArea)
	}
	if math.Abs(totals.NetWallArea-(48.51+30)) > tolerance {
		t.Errorf("NetWallArea = %v, want 78.51", totals.NetWallArea)
	}
	if math.Abs(totals.TotalDoorWidth-0.9) > tolerance {
		t.Errorf("TotalDoorWidth = %v, want 0.9", totals.TotalDoorWidth)
	}
}

func TestAggregateRooms_WeightedAverageHeight(t *testing.T) {
	rooms := []Room{
		simpleRoom("3", "3", "2.5"),
		simpleRoom("3", "3", "3.1"),
		simpleRoom("3", "3", "2.8"),
	}

	totals := AggregateRooms(rooms)

	want := (2.5 + 3.1 + 2.8) / 3
	if math.Abs(totals.AverageHeight-want) > tolerance {
		t.Errorf("AverageHeight = %v, want %v", totals.AverageHeight, want)
	}
}

func TestAggregateRooms_MixedUnits(t *testing.T) {
	metric := simpleRoom("4", "5", "2.8")
	cm := simpleRoom("400", "500", "280")
	cm.Unit = UnitCentimeter

	totals := AggregateRooms([]Room{metric, cm})

	if math.Abs(totals.FloorArea-40) > tolerance {
		t.Errorf("FloorArea = %v, want 40", totals.FloorArea)
	}
	if math.Abs(totals.AverageHeight-2.8) > tolerance {
		t.Errorf("AverageHeight = %v, want 2.8", totals.AverageHeight)
	}
}
