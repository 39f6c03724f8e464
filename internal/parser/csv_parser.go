package parser

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"panchayat/internal/models"
)

var errMissingColumn = errors.New("missing column")

// CSVParser reads a ballot list with "voter id" and "candidate id" columns.
// Header names are matched case-insensitively; underscores count as spaces.
type CSVParser struct {
	logger *slog.Logger
}

// NewCSVParser creates a new CSV ballot parser
func NewCSVParser(logger *slog.Logger) *CSVParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVParser{logger: logger}
}

// Format returns the parser encoding
func (p *CSVParser) Format() models.ScenarioFormat {
	return models.ScenarioFormatCSV
}

// Parse implements the Parser interface
func (p *CSVParser) Parse(ctx context.Context, r io.Reader) (*models.Scenario, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, NewParseError(StageHeader, fmt.Errorf("failed to read CSV headers: %w", err))
	}

	headerMap := make(map[string]int)
	for i, header := range headers {
		headerMap[normalizeHeader(header)] = i
	}
	voterIdx, ok := headerMap["voter id"]
	if !ok {
		return nil, NewParseError(StageHeader, fmt.Errorf("%w: voter id", errMissingColumn))
	}
	candidateIdx, ok := headerMap["candidate id"]
	if !ok {
		return nil, NewParseError(StageHeader, fmt.Errorf("%w: candidate id", errMissingColumn))
	}

	scenario := &models.Scenario{}
	line := 1
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := reader.Read()
		if err == io.EOF {
			p.logger.Debug("finished reading ballots", slog.Int("rows", len(scenario.Ballots)))
			return scenario, nil
		}
		line++
		if err != nil {
			return nil, NewParseError(StageRow, fmt.Errorf("line %d: %w", line, err))
		}

		ballot := models.Ballot{
			VoterID:     cell(row, voterIdx),
			CandidateID: cell(row, candidateIdx),
		}
		if err := ballot.Validate(); err != nil {
			return nil, NewParseError(StageValidate, fmt.Errorf("line %d: %w", line, err))
		}
		scenario.Ballots = append(scenario.Ballots, ballot)
	}
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, "_", " ")))
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
