package sheets

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

const maxTitleLength = 90

// Header is the column layout of an uploaded sheet.
var Header = []string{"REFERENCE", "QUERY", "STATUS", "Expected Response", "Generated Response"}

const statusColumn = 2

var columnPixels = []int64{180, 300, 150, 450, 450}

var (
	headerBackground = &sheetsv4.Color{Red: 0.12, Green: 0.33, Blue: 0.25}
	white            = &sheetsv4.Color{Red: 1, Green: 1, Blue: 1}
)

// Values maps records onto Header, header row first.
func Values(records []models.ResultRecord) [][]interface{} {
	values := make([][]interface{}, 0, len(records)+1)

	header := make([]interface{}, 0, len(Header))
	for _, h := range Header {
		header = append(header, h)
	}
	values = append(values, header)

	for _, r := range records {
		values = append(values, []interface{}{
			r.Location,
			r.Question,
			string(r.Status),
			r.ExpectedAnswer,
			r.RAGResponse,
		})
	}
	return values
}

// ComparisonTitle names the sheet for a comparison run.
func ComparisonTitle(paths []string) string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	title := strings.Join(names, " vs ")
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength-3] + "..."
	}
	return title
}

// TableName builds the native table name, e.g. METTA_table_1_mistral_large_417.
func TableName(user string, modelLabel string, suffix int) string {
	if modelLabel == "" {
		modelLabel = "unknown"
	}
	model := strings.NewReplacer("-", "_", ".", "_").Replace(modelLabel)
	return fmt.Sprintf("%s_table_1_%s_%d", user, model, suffix)
}

// formatRequests turns a freshly written range into a native table with a
// status dropdown and styled header.
func formatRequests(sheetID int64, table string, rows int64) []*sheetsv4.Request {
	cols := int64(len(Header))

	columns := make([]*sheetsv4.TableColumnProperties, 0, len(Header))
	for i, name := range Header {
		columns = append(columns, &sheetsv4.TableColumnProperties{
			ColumnIndex: int64(i),
			ColumnName:  name,
		})
	}

	statuses := make([]*sheetsv4.ConditionValue, 0, len(models.GradedVerdicts))
	for _, v := range models.GradedVerdicts {
		statuses = append(statuses, &sheetsv4.ConditionValue{UserEnteredValue: string(v)})
	}

	requests := []*sheetsv4.Request{
		{
			AddTable: &sheetsv4.AddTableRequest{
				Table: &sheetsv4.Table{
					Name:             table,
					Range:            gridRange(sheetID, 0, rows, 0, cols),
					ColumnProperties: columns,
				},
			},
		},
		{
			SetDataValidation: &sheetsv4.SetDataValidationRequest{
				Range: gridRange(sheetID, 1, rows, statusColumn, statusColumn+1),
				Rule: &sheetsv4.DataValidationRule{
					Condition: &sheetsv4.BooleanCondition{
						Type:   "ONE_OF_LIST",
						Values: statuses,
					},
					ShowCustomUi: true,
					Strict:       true,
				},
			},
		},
		{
			RepeatCell: &sheetsv4.RepeatCellRequest{
				Range: gridRange(sheetID, 0, 1, 0, cols),
				Cell: &sheetsv4.CellData{
					UserEnteredFormat: &sheetsv4.CellFormat{
						BackgroundColor:     headerBackground,
						TextFormat:          &sheetsv4.TextFormat{ForegroundColor: white, Bold: true},
						HorizontalAlignment: "CENTER",
						VerticalAlignment:   "MIDDLE",
					},
				},
				Fields: "userEnteredFormat(backgroundColor,textFormat,horizontalAlignment,verticalAlignment)",
			},
		},
	}

	for i, px := range columnPixels {
		requests = append(requests, &sheetsv4.Request{
			UpdateDimensionProperties: &sheetsv4.UpdateDimensionPropertiesRequest{
				Range: &sheetsv4.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: int64(i),
					EndIndex:   int64(i + 1),
				},
				Properties: &sheetsv4.DimensionProperties{PixelSize: px},
				Fields:     "pixelSize",
			},
		})
	}

	requests = append(requests, &sheetsv4.Request{
		RepeatCell: &sheetsv4.RepeatCellRequest{
			Range: gridRange(sheetID, 1, rows, 0, cols),
			Cell: &sheetsv4.CellData{
				UserEnteredFormat: &sheetsv4.CellFormat{
					WrapStrategy:      "WRAP",
					VerticalAlignment: "TOP",
				},
			},
			Fields: "userEnteredFormat(wrapStrategy,verticalAlignment)",
		},
	})

	return requests
}

func gridRange(sheetID, startRow, endRow, startCol, endCol int64) *sheetsv4.GridRange {
	return &sheetsv4.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    startRow,
		EndRowIndex:      endRow,
		StartColumnIndex: startCol,
		EndColumnIndex:   endCol,
		ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
	}
}
