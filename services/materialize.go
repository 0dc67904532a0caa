package services

import "regexp"

// MaterialCategory scopes a saved preset (and a result) to one estimator.
type MaterialCategory string

const (
	CategoryPlaster   MaterialCategory = "plaster"
	CategoryPutty     MaterialCategory = "putty"
	CategoryPaint     MaterialCategory = "paint"
	CategoryWallpaper MaterialCategory = "wallpaper"
	CategoryTile      MaterialCategory = "tile"
	CategoryFlooring  MaterialCategory = "flooring"
	CategoryScreed    MaterialCategory = "screed"
	CategorySkirting  MaterialCategory = "skirting"
	CategoryDrywall   MaterialCategory = "drywall"
	CategoryCustom    MaterialCategory = "custom"
)

// MaterialCategories lists every category in display order. This order is
// fixed: summaries, exports and materialized estimates all follow it.
var MaterialCategories = []MaterialCategory{
	CategoryPlaster,
	CategoryPutty,
	CategoryPaint,
	CategoryWallpaper,
	CategoryTile,
	CategoryFlooring,
	CategoryScreed,
	CategorySkirting,
	CategoryDrywall,
	CategoryCustom,
}

// Valid reports whether c names a known material category.
func (c MaterialCategory) Valid() bool {
	for _, known := range MaterialCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns the human label of a category.
func (c MaterialCategory) DisplayName() string {
	switch c {
	case CategoryPlaster:
		return "Plaster"
	case CategoryPutty:
		return "Putty"
	case CategoryPaint:
		return "Paint"
	case CategoryWallpaper:
		return "Wallpaper"
	case CategoryTile:
		return "Tile"
	case CategoryFlooring:
		return "Flooring"
	case CategoryScreed:
		return "Floor screed"
	case CategorySkirting:
		return "Skirting"
	case CategoryDrywall:
		return "Drywall"
	case CategoryCustom:
		return "Other materials"
	default:
		return string(c)
	}
}

// EstimatorParams bundles the inputs of every estimator, as submitted by the
// client alongside the room list.
type EstimatorParams struct {
	Plaster   PlasterParams   `json:"plaster"`
	Putty     PuttyParams     `json:"putty"`
	Paint     PaintParams     `json:"paint"`
	Wallpaper WallpaperParams `json:"wallpaper"`
	Tile      TileParams      `json:"tile"`
	Flooring  FlooringParams  `json:"flooring"`
	Screed    ScreedParams    `json:"screed"`
	Skirting  SkirtingParams  `json:"skirting"`
	Drywall   DrywallParams   `json:"drywall"`
	Custom    CustomParams    `json:"custom"`
}

// DefaultEstimatorParams returns every estimator's default parameters.
func DefaultEstimatorParams() EstimatorParams {
	return EstimatorParams{
		Plaster:   DefaultPlasterParams(),
		Putty:     DefaultPuttyParams(),
		Paint:     DefaultPaintParams(),
		Wallpaper: DefaultWallpaperParams(),
		Tile:      DefaultTileParams(),
		Flooring:  DefaultFlooringParams(),
		Screed:    DefaultScreedParams(),
		Skirting:  DefaultSkirtingParams(),
		Drywall:   DefaultDrywallParams(),
	}
}

// NamedResult pairs a category with its (possibly nil) result.
type NamedResult struct {
	Category MaterialCategory `json:"category"`
	Name     string           `json:"name"`
	Result   *MaterialResult  `json:"result"`
}

// ComputeAll runs every estimator against the aggregated metrics and returns
// one entry per category in display order. Entries with a nil Result carry
// estimators that produced nothing.
func ComputeAll(m TotalMetrics, p EstimatorParams) []NamedResult {
	results := []NamedResult{
		{CategoryPlaster, CategoryPlaster.DisplayName(), CalcPlaster(m, p.Plaster)},
		{CategoryPutty, CategoryPutty.DisplayName(), CalcPutty(m, p.Putty)},
		{CategoryPaint, CategoryPaint.DisplayName(), CalcPaint(m, p.Paint)},
		{CategoryWallpaper, CategoryWallpaper.DisplayName(), CalcWallpaper(m, p.Wallpaper)},
		{CategoryTile, CategoryTile.DisplayName(), CalcTile(m, p.Tile)},
		{CategoryFlooring, CategoryFlooring.DisplayName(), CalcFlooring(m, p.Flooring)},
		{CategoryScreed, CategoryScreed.DisplayName(), CalcScreed(m, p.Screed)},
		{CategorySkirting, CategorySkirting.DisplayName(), CalcSkirting(m, p.Skirting)},
		{CategoryDrywall, CategoryDrywall.DisplayName(), CalcDrywall(m, p.Drywall)},
		{CategoryCustom, CategoryCustom.DisplayName(), CalcCustom(p.Custom)},
	}
	return results
}

// TotalCost sums the cost of every non-nil, non-error result.
func TotalCost(results []NamedResult) float64 {
	var total float64
	for _, nr := range results {
		if nr.Result != nil && nr.Result.Error == "" {
			total += nr.Result.Cost
		}
	}
	return total
}

// EstimateItem is one line of a materialized estimate, ready for the
// persistence boundary.
type EstimateItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"` // per unit
	Type     string  `json:"type"`
}

var quantityTokenPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// extractQuantity pulls the leading count token back out of a formatted
// quantity string like "4 bags (121.5 kg)".
func extractQuantity(s string) float64 {
	return ParseDecimal(quantityTokenPattern.FindString(s))
}

// BuildEstimateItems converts the estimator results into priced estimate
// line items, in display order. Group results contribute one item per
// sub-line; error results and nil results contribute nothing.
func BuildEstimateItems(results []NamedResult) []EstimateItem {
	var items []EstimateItem
	for _, nr := range results {
		r := nr.Result
		if r == nil || r.Error != "" {
			continue
		}

		if r.IsGroup {
			for _, line := range r.Items {
				qty := extractQuantity(line.Quantity)
				var unitPrice float64
				if qty > 0 {
					unitPrice = line.Cost / qty
				}
				items = append(items, EstimateItem{
					Name:     line.Name,
					Quantity: qty,
					Unit:     line.Unit,
					Price:    unitPrice,
					Type:     "material",
				})
			}
			continue
		}

		items = append(items, EstimateItem{
			Name:     nr.Name,
			Quantity: extractQuantity(r.Quantity),
			Unit:     r.Unit,
			Price:    ParseDecimal(r.Details[DetailPricePerPackage]),
			Type:     "material",
		})
	}
	return items
}
