package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel workbook from the quote snapshot and
// returns the file contents as a byte slice.
func GenerateExcel(data Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.ProjectName
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Cotización"
	}

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through F).
	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1] // "F"

	// Set column widths.
	widths := []float64{40, 14, 8, 10, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	// Title style: bold, 16pt.
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	// Subtitle style (client, date).
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Revenue item style: normal with borders.
	itemStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	// Cost-only / included item style: gray fill with borders.
	costItemStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size:  10,
			Color: "#555555",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#F5F5F5"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cost item style: %w", err)
	}

	// Summary label style: bold, right-aligned.
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	// Summary value style: bold.
	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	// Row 1: Title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	title := modeLabels[data.Mode]
	if data.ProjectName != "" {
		title += " — " + data.ProjectName
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 2: Client (if present).
	if data.ClientName != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge client: %w", err)
		}
		f.SetCellValue(sheetName, "A2", "Cliente: "+sanitizeExcelCell(data.ClientName))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	// Row 3: Date.
	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Fecha: "+data.GeneratedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"Descripción", "Categoría", "Cant.", "Área ft²", "Costo", "Precio"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(sheetName, "B"+rowStr, string(r.Category))
		f.SetCellValue(sheetName, "C"+rowStr, r.Quantity)
		if r.AreaSqFt > 0 {
			f.SetCellValue(sheetName, "D"+rowStr, r.AreaSqFt)
		}
		f.SetCellValue(sheetName, "E"+rowStr, FormatDOP(r.Cost))
		f.SetCellValue(sheetName, "F"+rowStr, FormatDOP(r.SalePrice))

		style := itemStyle
		if r.Role == RoleCost || r.Included {
			style = costItemStyle
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, style)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	// Skip a blank row.
	row++

	addSummary := func(label, value string) {
		summaryRow := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "D"+summaryRow, label)
		f.SetCellStyle(sheetName, "D"+summaryRow, "D"+summaryRow, summaryLabelStyle)
		f.SetCellValue(sheetName, "E"+summaryRow, value)
		f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryValueStyle)
		row++
	}

	addSummary("Costo Total:", FormatDOP(data.Totals.Cost))
	addSummary("Precio de Venta Total:", FormatDOP(data.Totals.Sale))
	addSummary("Precio Final:", FormatDOP(data.FinalPrice))
	addSummary(fmt.Sprintf("Margen (%s):", FormatPercent(data.RealizedMarginPercent)),
		FormatDOP(data.FinalPrice-data.Totals.Cost))
	addSummary(fmt.Sprintf("Comisión (%s):", FormatPercent(data.CommissionPercent)),
		FormatDOP(data.Commission))
	addSummary("Ganancia Neta:", FormatDOP(data.NetProfit))

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
