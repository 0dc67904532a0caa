package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// GenerateCSV renders the materials summary as a CSV file: header row, one
// row per material, a blank row, then the aggregate summary.
func GenerateCSV(data ExportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Material", "Quantity", "Cost"},
	}
	for _, r := range data.Rows {
		records = append(records, []string{r.MaterialName, r.QuantityText, r.CostText})
	}
	records = append(records,
		[]string{},
		[]string{"Rooms", fmt.Sprintf("%d", data.Summary.RoomCount), ""},
		[]string{"Total floor area", FormatArea(data.Summary.FloorArea), ""},
		[]string{"Total wall area (net)", FormatArea(data.Summary.NetWallArea), ""},
		[]string{"Total perimeter", FormatLength(data.Summary.Perimeter), ""},
		[]string{"Average ceiling height", FormatLength(data.Summary.AverageHeight), ""},
		[]string{"Total materials cost", FormatMoney(data.Summary.TotalCost), ""},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
