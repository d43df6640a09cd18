package excel

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Results"

var columnWidths = map[string]float64{
	"A": 28, // Filename
	"B": 40, // S3_URI
	"C": 60, // Question
	"D": 60, // Expected Answer
	"E": 60, // RAG Response
	"F": 20, // Status
	"G": 24, // Page/Section
	"H": 18, // Comparison Type
}

// Writer saves result records to a local xlsx workbook.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Path() string {
	return w.path
}

// Write replaces the workbook at the writer's path with records.
func (w *Writer) Write(records []models.ResultRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("unable to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &models.Columns); err != nil {
		return fmt.Errorf("unable to write header: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := record.Row()
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("unable to write row %d: %w", i+2, err)
		}
	}

	if err := format(f, len(records)); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("unable to save %s: %w", w.path, err)
	}
	return nil
}

func format(f *excelize.File, rows int) error {
	lastCol, err := excelize.ColumnNumberToName(len(models.Columns))
	if err != nil {
		return err
	}
	lastRow := rows + 1

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F5440"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("unable to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", header); err != nil {
		return fmt.Errorf("unable to style header: %w", err)
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("unable to set width of column %s: %w", col, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("unable to freeze header: %w", err)
	}

	if rows == 0 {
		return nil
	}

	body, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("unable to create body style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A2", fmt.Sprintf("%s%d", lastCol, lastRow), body); err != nil {
		return fmt.Errorf("unable to style body: %w", err)
	}

	if err := f.AutoFilter(sheetName, fmt.Sprintf("A1:%s%d", lastCol, lastRow), nil); err != nil {
		return fmt.Errorf("unable to add filter: %w", err)
	}

	statuses := make([]string, 0, len(models.GradedVerdicts))
	for _, v := range models.GradedVerdicts {
		statuses = append(statuses, string(v))
	}
	dv := excelize.NewDataValidation(true)
	dv.SetSqref(fmt.Sprintf("F2:F%d", lastRow))
	if err := dv.SetDropList(statuses); err != nil {
		return fmt.Errorf("unable to build status list: %w", err)
	}
	if err := f.AddDataValidation(sheetName, dv); err != nil {
		return fmt.Errorf("unable to add status validation: %w", err)
	}
	return nil
}
