package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"panchayat/internal/models"
)

// ParserManager manages the parsers for each scenario format
type ParserManager struct {
	parsers map[models.ScenarioFormat]Parser
	logger  *slog.Logger
}

// NewParserManager creates a manager with the JSON and CSV parsers registered
func NewParserManager(logger *slog.Logger) *ParserManager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &ParserManager{
		parsers: make(map[models.ScenarioFormat]Parser),
		logger:  logger,
	}
	m.RegisterParser(NewJSONParser())
	m.RegisterParser(NewCSVParser(logger))
	return m
}

// RegisterParser adds a new parser to the manager
func (m *ParserManager) RegisterParser(parser Parser) {
	m.parsers[parser.Format()] = parser
}

// GetParser retrieves a parser by format
func (m *ParserManager) GetParser(format models.ScenarioFormat) (Parser, error) {
	if err := models.ValidateScenarioFormat(format); err != nil {
		return nil, err
	}
	parser, ok := m.parsers[format]
	if !ok {
		return nil, fmt.Errorf("no parser found for format: %s", format)
	}
	return parser, nil
}

// ParseReader parses a scenario from r using the parser for format
func (m *ParserManager) ParseReader(ctx context.Context, format models.ScenarioFormat, r io.Reader) (*models.Scenario, error) {
	parser, err := m.GetParser(format)
	if err != nil {
		return nil, err
	}
	return parser.Parse(ctx, r)
}

// ParseFile parses the scenario at path, picking the parser from the file extension
func (m *ParserManager) ParseFile(ctx context.Context, path string) (*models.Scenario, error) {
	format := FormatFromPath(path)
	parser, err := m.GetParser(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewParseError(StageOpen, err)
	}
	defer f.Close()

	m.logger.Info("parsing scenario", slog.String("path", path), slog.String("format", string(format)))
	scenario, err := parser.Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return scenario, nil
}

// FormatFromPath derives the scenario format from a file extension
func FormatFromPath(path string) models.ScenarioFormat {
	return models.ScenarioFormat(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
}
