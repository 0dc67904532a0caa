package services

// ExportRow is a single flattened row of the materials summary: one material
// (or one group sub-line) with its formatted quantity and cost.
type ExportRow struct {
	MaterialName string
	QuantityText string
	CostText     string
}

// ExportSummary holds the room-aggregate figures printed under the table.
type ExportSummary struct {
	RoomCount     int
	FloorArea     float64
	NetWallArea   float64
	Perimeter     float64
	AverageHeight float64
	TotalCost     float64
}

// ExportData holds everything the PDF/Excel/CSV generators need.
type ExportData struct {
	Title         string
	GeneratedDate string
	Rows          []ExportRow
	Summary       ExportSummary
}

// BuildExportData flattens the estimator results into export rows. Group
// results expand into one row per sub-line prefixed with the group name;
// error results keep their error text in the quantity column with no cost.
func BuildExportData(title, generatedDate string, totals TotalMetrics, results []NamedResult) ExportData {
	var rows []ExportRow
	for _, nr := range results {
		r := nr.Result
		if r == nil {
			continue
		}
		if r.Error != "" {
			rows = append(rows, ExportRow{
				MaterialName: nr.Name,
				QuantityText: r.Error,
				CostText:     "—",
			})
			continue
		}
		if r.IsGroup {
			for _, line := range r.Items {
				rows = append(rows, ExportRow{
					MaterialName: nr.Name + " — " + line.Name,
					QuantityText: line.Quantity,
					CostText:     FormatMoney(line.Cost),
				})
			}
			continue
		}
		rows = append(rows, ExportRow{
			MaterialName: nr.Name,
			QuantityText: r.Quantity,
			CostText:     FormatMoney(r.Cost),
		})
	}

	return ExportData{
		Title:         title,
		GeneratedDate: generatedDate,
		Rows:          rows,
		Summary: ExportSummary{
			RoomCount:     totals.RoomCount,
			FloorArea:     totals.FloorArea,
			NetWallArea:   totals.NetWallArea,
			Perimeter:     totals.Perimeter,
			AverageHeight: totals.AverageHeight,
			TotalCost:     TotalCost(results),
		},
	}
}
