package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"nedhal-be/config"
	"nedhal-be/internal/hijri"
	"nedhal-be/internal/models"
	"nedhal-be/internal/scoring"
	"nedhal-be/internal/utils"
)

// Timestamps arrive as dd/mm/yyyy hh:mm:ss, sometimes without zero padding.
var timestampLayouts = []string{
	"02/01/2006 15:04:05",
	"2/1/2006 15:04:05",
	"02/01/2006 15:04",
	"2/1/2006 15:04",
}

var ErrRemoteFetch = errors.New("sheets: remote fetch failed")

// SheetsService fetches the raw submission rows, either from the Apps Script
// endpoint the dashboard always used or directly from the spreadsheet via
// the Sheets API.
type SheetsService struct {
	cfg    *config.Config
	client *http.Client
}

func NewSheetsService(cfg *config.Config) *SheetsService {
	return &SheetsService{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type rawRow struct {
	Timestamp string `json:"timestamp"`
	Email     string `json:"email"`
	Hours     string `json:"hours"`
	Extra     string `json:"extra"`
}

type scriptResponse struct {
	Success bool     `json:"success"`
	Data    []rawRow `json:"data"`
}

// FetchEntries pulls the full row set. A failed fetch abandons the refresh
// cycle; the caller keeps serving whatever it already has.
func (s *SheetsService) FetchEntries(ctx context.Context) ([]models.Entry, error) {
	var rows []rawRow
	var err error

	if s.cfg.SpreadsheetID != "" {
		rows, err = s.fetchFromSheets(ctx)
	} else {
		rows, err = s.fetchFromScript(ctx)
	}
	if err != nil {
		return nil, err
	}

	return s.parseRows(rows), nil
}

func (s *SheetsService) fetchFromScript(ctx context.Context) ([]rawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.AppScriptURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRemoteFetch, resp.StatusCode)
	}

	var result scriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: endpoint reported success=false", ErrRemoteFetch)
	}

	return result.Data, nil
}

func (s *SheetsService) fetchFromSheets(ctx context.Context) ([]rawRow, error) {
	var opts []option.ClientOption
	if s.cfg.GoogleServiceAccountJSON != "" {
		jwtCfg, err := google.JWTConfigFromJSON([]byte(s.cfg.GoogleServiceAccountJSON), sheets.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	} else {
		opts = append(opts, option.WithAPIKey(s.cfg.GoogleAPIKey))
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Spreadsheets.Values.Get(s.cfg.SpreadsheetID, s.cfg.SheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}

	rows := make([]rawRow, 0, len(resp.Values))
	for _, v := range resp.Values {
		rows = append(rows, rawRow{
			Timestamp: cell(v, 0),
			Email:     cell(v, 1),
			Hours:     cell(v, 2),
			Extra:     cell(v, 3),
		})
	}
	return rows, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return strings.TrimSpace(s)
}

func (s *SheetsService) parseRows(rows []rawRow) []models.Entry {
	entries := make([]models.Entry, 0, len(rows))
	for _, r := range rows {
		ts, err := parseTimestamp(r.Timestamp)
		if err != nil {
			// A row without a readable timestamp cannot be placed in any
			// season; drop it here rather than in the aggregator.
			continue
		}
		entries = append(entries, models.Entry{
			Timestamp: ts,
			Email:     strings.TrimSpace(r.Email),
			Hours:     strings.TrimSpace(r.Hours),
			Extra:     utils.SanitizeText(r.Extra),
		})
	}
	return entries
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, hijri.Zone); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// CheckEntries scans for implausible durations. Anything above 300 minutes
// is flagged for the admin page; above 1440 the hours column almost
// certainly holds minutes (a recurring form typo), so the row is repaired to
// "0:H:00" before scoring.
func CheckEntries(entries []models.Entry) ([]models.Entry, []models.AdminWarning) {
	var warnings []models.AdminWarning

	for i, e := range entries {
		minutes, err := scoring.DurationToMinutes(e.Hours)
		if err != nil || minutes <= 300 {
			continue
		}

		warning := models.AdminWarning{
			Timestamp: e.Timestamp,
			Name:      utils.EmailToName(e.Email),
			Hours:     e.Hours,
		}

		if minutes > 1440 {
			hh := strings.SplitN(e.Hours, ":", 2)[0]
			entries[i].Hours = "0:" + hh + ":00"
			warning.Repaired = true
		}

		warnings = append(warnings, warning)
	}

	return entries, warnings
}
