// Package services contains the quantity-takeoff core: unit conversion,
// room geometry, validation, material estimators, aggregation and export
// generation. Everything here is pure calculation; persistence lives in
// the handlers layer.
package services

import "github.com/google/uuid"

// OpeningType distinguishes windows from doors. Doors additionally shorten
// the skirting run by their width.
type OpeningType string

const (
	OpeningWindow OpeningType = "window"
	OpeningDoor   OpeningType = "door"
)

// ElementType identifies a non-planar wall feature.
type ElementType string

const (
	ElementNiche      ElementType = "niche"
	ElementProtrusion ElementType = "protrusion"
	ElementColumn     ElementType = "column"
)

// Opening is a window or door subtracted from wall area. All dimension
// fields are raw form strings in the room's unit.
type Opening struct {
	ID              string      `json:"id"`
	Type            OpeningType `json:"type"`
	Width           string      `json:"width"`
	Height          string      `json:"height"`
	Count           string      `json:"count"`
	IncludeSillArea bool        `json:"includeSillArea"`
	SillHeight      string      `json:"sillHeight"`
}

// ExclusionZone is a named area (built-in cabinet, fireplace) excluded from
// wall area and/or perimeter.
type ExclusionZone struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Width            string `json:"width"`
	Height           string `json:"height"`
	Count            string `json:"count"`
	AffectsWallArea  bool   `json:"affectsWallArea"`
	AffectsPerimeter bool   `json:"affectsPerimeter"`
}

// GeometricElement is a niche, protrusion or column. Niches and protrusions
// use Width/Depth, columns use Diameter.
type GeometricElement struct {
	ID       string      `json:"id"`
	Type     ElementType `json:"type"`
	Width    string      `json:"width"`
	Depth    string      `json:"depth"`
	Diameter string      `json:"diameter"`
	Height   string      `json:"height"`
	Count    string      `json:"count"`
}

// Room is one physical space being estimated. Dimension fields are stored as
// strings in the room's own unit; conversion to meters happens only inside
// calculation functions.
type Room struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Length     string             `json:"length"`
	Width      string             `json:"width"`
	Height     string             `json:"height"`
	Unit       Unit               `json:"unit"`
	Openings   []Opening          `json:"openings"`
	Exclusions []ExclusionZone    `json:"exclusions"`
	Elements   []GeometricElement `json:"elements"`
}

// NewRoom returns a room with default values: meter unit, empty dimensions,
// no features.
func NewRoom(name string) Room {
	return Room{
		ID:   uuid.NewString(),
		Name: name,
		Unit: UnitMeter,
	}
}

// RoomMetrics is the output of the geometry engine for a single room.
// All values are in meters / square meters. GeometryWallAreaChange is the
// only signed field.
type RoomMetrics struct {
	FloorArea               float64 `json:"floorArea"`
	Perimeter               float64 `json:"perimeter"`
	GrossWallArea           float64 `json:"grossWallArea"`
	TotalOpeningsArea       float64 `json:"totalOpeningsArea"`
	NetWallArea             float64 `json:"netWallArea"`
	TotalDoorWidth          float64 `json:"totalDoorWidth"`
	Height                  float64 `json:"height"`
	TotalExclusionPerimeter float64 `json:"totalExclusionPerimeter"`
	TotalExclusionWallArea  float64 `json:"totalExclusionWallArea"`
	GeometryWallAreaChange  float64 `json:"geometryWallAreaChange"`
}

// MaterialLineItem is one discrete line inside a group result (drywall
// accessories, custom materials).
type MaterialLineItem struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost"`
}

// MaterialResult is the output of one material estimator. A nil result means
// the estimator produced nothing (zero quantity); a non-empty Error means the
// configuration was unusable (the result still participates in aggregation
// with zero cost).
type MaterialResult struct {
	Quantity string             `json:"quantity"`
	Cost     float64            `json:"cost"`
	Unit     string             `json:"unit,omitempty"`
	Details  map[string]string  `json:"details,omitempty"`
	IsGroup  bool               `json:"isGroup,omitempty"`
	Items    []MaterialLineItem `json:"items,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// DetailPricePerPackage is the details key holding the per-package price.
// Materialization reads the unit price back out of this field.
const DetailPricePerPackage = "Price per package"
