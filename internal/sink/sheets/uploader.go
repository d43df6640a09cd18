package sheets

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Uploader writes result records into a Google Sheets spreadsheet, one
// worksheet per title.
type Uploader struct {
	spreadsheetID   string
	credentialsFile string
	userName        string
	logger          *zerolog.Logger

	mu         sync.Mutex
	modelLabel string
	service    *sheetsv4.Service
}

func NewUploader(spreadsheetID string, credentialsFile string, userName string, logger *zerolog.Logger) *Uploader {
	return &Uploader{
		spreadsheetID:   spreadsheetID,
		credentialsFile: credentialsFile,
		userName:        userName,
		logger:          logger,
	}
}

// SetModelLabel records the label of the pinned backend. It is used when
// Upload is called without one.
func (u *Uploader) SetModelLabel(label string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.modelLabel = label
}

func (u *Uploader) label(override string) string {
	if override != "" {
		return override
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.modelLabel
}

// Upload reports whether the records reached the spreadsheet. A missing
// spreadsheet ID or credentials file disables the upload.
func (u *Uploader) Upload(ctx context.Context, records []models.ResultRecord, sheetTitle string, modelLabel string) bool {
	if u.spreadsheetID == "" {
		u.logger.Debug().Msg("GOOGLE_SHEET_ID not set, skipping upload")
		return false
	}
	if !fileExists(u.credentialsFile) {
		u.logger.Warn().Str("credentials", u.credentialsFile).Msg("Google credentials file not found, skipping upload")
		return false
	}

	table := TableName(u.userName, u.label(modelLabel), 100+rand.IntN(900))
	if err := u.upload(ctx, records, sheetTitle, table); err != nil {
		u.logger.Error().Err(err).Str("sheet", sheetTitle).Msg("Google Sheets upload failed")
		return false
	}

	u.logger.Info().Str("sheet", sheetTitle).Str("table", table).Int("rows", len(records)).Msg("Uploaded results to Google Sheets")
	return true
}

func (u *Uploader) upload(ctx context.Context, records []models.ResultRecord, title string, table string) error {
	srv, err := u.client(ctx)
	if err != nil {
		return err
	}

	sheetID, err := u.prepareSheet(ctx, srv, title)
	if err != nil {
		return err
	}

	values := Values(records)
	_, err = srv.Spreadsheets.Values.
		Update(u.spreadsheetID, quoteTitle(title)+"!A1", &sheetsv4.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("unable to write values: %w", err)
	}

	_, err = srv.Spreadsheets.
		BatchUpdate(u.spreadsheetID, &sheetsv4.BatchUpdateSpreadsheetRequest{
			Requests: formatRequests(sheetID, table, int64(len(values))),
		}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("unable to format sheet: %w", err)
	}
	return nil
}

func (u *Uploader) client(ctx context.Context) (*sheetsv4.Service, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.service != nil {
		return u.service, nil
	}

	srv, err := sheetsv4.NewService(ctx, option.WithCredentialsFile(u.credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets client: %w", err)
	}
	u.service = srv
	return srv, nil
}

// prepareSheet clears the worksheet named title, creating it when absent,
// and returns its ID.
func (u *Uploader) prepareSheet(ctx context.Context, srv *sheetsv4.Service, title string) (int64, error) {
	spreadsheet, err := srv.Spreadsheets.Get(u.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("unable to open spreadsheet: %w", err)
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties == nil || s.Properties.Title != title {
			continue
		}
		_, err := srv.Spreadsheets.Values.
			Clear(u.spreadsheetID, quoteTitle(title), &sheetsv4.ClearValuesRequest{}).
			Context(ctx).
			Do()
		if err != nil {
			return 0, fmt.Errorf("unable to clear sheet %s: %w", title, err)
		}
		return s.Properties.SheetId, nil
	}

	resp, err := srv.Spreadsheets.
		BatchUpdate(u.spreadsheetID, &sheetsv4.BatchUpdateSpreadsheetRequest{
			Requests: []*sheetsv4.Request{{
				AddSheet: &sheetsv4.AddSheetRequest{
					Properties: &sheetsv4.SheetProperties{
						Title: title,
						GridProperties: &sheetsv4.GridProperties{
							RowCount:    100,
							ColumnCount: 10,
						},
					},
				},
			}},
		}).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("unable to add sheet %s: %w", title, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return 0, fmt.Errorf("add sheet %s returned no properties", title)
	}
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
