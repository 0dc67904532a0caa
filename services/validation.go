package services

import (
	"fmt"
	"strconv"
	"strings"
)

// Room dimensions must fall inside this range after unit conversion.
const (
	MinDimensionMeters = 0.01
	MaxDimensionMeters = 100.0
)

// ValidateRoom checks one room and returns a field → message map. An empty
// map means the room is valid. Nested feature fields are keyed like
// "opening_0_width", "exclusion_1_name", "element_2_count".
func ValidateRoom(room Room) map[string]string {
	errs := make(map[string]string)

	checkDimension(errs, "length", room.Length, room.Unit)
	checkDimension(errs, "width", room.Width, room.Unit)
	checkDimension(errs, "height", room.Height, room.Unit)

	for i, op := range room.Openings {
		prefix := fmt.Sprintf("opening_%d_", i)
		checkPositive(errs, prefix+"width", op.Width, room.Unit)
		checkPositive(errs, prefix+"height", op.Height, room.Unit)
		checkCount(errs, prefix+"count", op.Count)
	}

	for i, zone := range room.Exclusions {
		prefix := fmt.Sprintf("exclusion_%d_", i)
		if strings.TrimSpace(zone.Name) == "" {
			errs[prefix+"name"] = "Name is required"
		}
		checkPositive(errs, prefix+"width", zone.Width, room.Unit)
		checkPositive(errs, prefix+"height", zone.Height, room.Unit)
		checkCount(errs, prefix+"count", zone.Count)
	}

	for i, el := range room.Elements {
		prefix := fmt.Sprintf("element_%d_", i)
		if el.Type == ElementColumn {
			checkPositive(errs, prefix+"diameter", el.Diameter, room.Unit)
		} else {
			checkPositive(errs, prefix+"width", el.Width, room.Unit)
			checkPositive(errs, prefix+"depth", el.Depth, room.Unit)
		}
		checkPositive(errs, prefix+"height", el.Height, room.Unit)
		checkCount(errs, prefix+"count", el.Count)
	}

	return errs
}

// ValidateRooms validates every room and returns a roomID → field → message
// map containing only rooms with at least one error.
func ValidateRooms(rooms []Room) map[string]map[string]string {
	all := make(map[string]map[string]string)
	for _, room := range rooms {
		if errs := ValidateRoom(room); len(errs) > 0 {
			all[room.ID] = errs
		}
	}
	return all
}

// CanProceed is the project-level gate to the estimator stage: true iff no
// validation errors exist across all rooms.
func CanProceed(rooms []Room) bool {
	return len(ValidateRooms(rooms)) == 0
}

func checkDimension(errs map[string]string, field, raw string, unit Unit) {
	v := ToMeters(raw, unit)
	if v < MinDimensionMeters || v > MaxDimensionMeters {
		errs[field] = fmt.Sprintf("Value must be between %g and %g m", MinDimensionMeters, MaxDimensionMeters)
	}
}

func checkPositive(errs map[string]string, field, raw string, unit Unit) {
	if ToMeters(raw, unit) <= 0 {
		errs[field] = "Value must be a positive number"
	}
}

func checkCount(errs map[string]string, field, raw string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		errs[field] = "Count must be a positive whole number"
	}
}
