package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a PDF of the materials summary using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, data)
	addPDFTableHeader(m)
	for _, r := range data.Rows {
		addPDFTableRow(m, r)
	}
	addPDFSummary(m, data)
	addPDFFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addPDFTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(5).Add(
				text.New("Material", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Quantity", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Cost", headerTextRight),
			).WithStyle(&headerCell),
		),
	)
}

func addPDFTableRow(m core.Maroto, r ExportRow) {
	baseText := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(5).Add(text.New(r.MaterialName, baseText)),
			col.New(4).Add(text.New(r.QuantityText, baseText)),
			col.New(3).Add(text.New(r.CostText, rightText)),
		),
	)
}

func addPDFSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Align: align.Left,
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Right,
	}

	summaryRow := func(label, value string) {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	summaryRow("Rooms", fmt.Sprintf("%d", data.Summary.RoomCount))
	summaryRow("Total floor area", FormatArea(data.Summary.FloorArea))
	summaryRow("Total wall area (net)", FormatArea(data.Summary.NetWallArea))
	summaryRow("Total perimeter", FormatLength(data.Summary.Perimeter))
	summaryRow("Average ceiling height", FormatLength(data.Summary.AverageHeight))

	boldLabel := labelStyle
	boldLabel.Style = fontstyle.Bold
	boldValue := valueStyle
	boldValue.Style = fontstyle.Bold
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Total materials cost", boldLabel),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatMoney(data.Summary.TotalCost), boldValue),
			).WithStyle(summaryCell),
		),
	)
}

func addPDFFooter(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
