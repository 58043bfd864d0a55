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

// modeLabels are the document headings per quote mode.
var modeLabels = map[Mode]string{
	ModeGeneral:  "Cotización General",
	ModePrint:    "Cotización de Impresión",
	ModeCombined: "Cotización Combinada",
}

// GeneratePDF renders a quote snapshot as a PDF document using
// maroto/v2 and returns the raw bytes.
func GeneratePDF(data Snapshot) ([]byte, error) {
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

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the title, client and date lines.
func addHeader(m core.Maroto, data Snapshot) {
	title := modeLabels[data.Mode]
	if title == "" {
		title = "Cotización"
	}
	if data.ProjectName != "" {
		title += " — " + data.ProjectName
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subText := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	subTextRight := subText
	subTextRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Cliente: %s", data.ClientName), subText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Fecha: %s", data.GeneratedDate), subTextRight),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row for the items table.
func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(
				text.New("Descripción", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Categoría", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Cant.", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Área ft²", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Costo", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Precio", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds a single item row. Cost-role and included items get
// a gray background so a reader can tell they do not add revenue.
func addTableRow(m core.Maroto, r SnapshotRow) {
	var cellStyle *props.Cell
	if r.Role == RoleCost || r.Included {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	areaStr := ""
	if r.AreaSqFt > 0 {
		areaStr = fmt.Sprintf("%.2f", r.AreaSqFt)
	}

	colDesc := col.New(4).Add(text.New(r.Description, leftText))
	colCategory := col.New(2).Add(text.New(string(r.Category), baseText))
	colQty := col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), rightText))
	colArea := col.New(1).Add(text.New(areaStr, rightText))
	colCost := col.New(2).Add(text.New(FormatDOP(r.Cost), rightText))
	colPrice := col.New(2).Add(text.New(FormatDOP(r.SalePrice), rightText))

	if cellStyle != nil {
		colDesc = colDesc.WithStyle(cellStyle)
		colCategory = colCategory.WithStyle(cellStyle)
		colQty = colQty.WithStyle(cellStyle)
		colArea = colArea.WithStyle(cellStyle)
		colCost = colCost.WithStyle(cellStyle)
		colPrice = colPrice.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colDesc,
			colCategory,
			colQty,
			colArea,
			colCost,
			colPrice,
		),
	)
}

// addSummary adds the totals, margin, commission and profit block.
func addSummary(m core.Maroto, data Snapshot) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	addSummaryRow := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addSummaryRow("Costo Total", FormatDOP(data.Totals.Cost))
	addSummaryRow("Precio de Venta Total", FormatDOP(data.Totals.Sale))
	addSummaryRow("Precio Final", FormatDOP(data.FinalPrice))
	addSummaryRow(
		fmt.Sprintf("Margen (%s)", FormatPercent(data.RealizedMarginPercent)),
		FormatDOP(data.FinalPrice-data.Totals.Cost),
	)
	addSummaryRow(
		fmt.Sprintf("Comisión (%s)", FormatPercent(data.CommissionPercent)),
		FormatDOP(data.Commission),
	)
	addSummaryRow("Ganancia Neta", FormatDOP(data.NetProfit))

	if data.Note != "" {
		m.AddRows(row.New(4))
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New("Nota: "+data.Note, props.Text{
						Size:  8,
						Align: align.Left,
					}),
				),
			),
		)
	}
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, data Snapshot) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generado el %s", data.GeneratedDate),
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
