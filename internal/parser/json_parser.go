package parser

import (
	"context"
	"fmt"
	"io"

	"panchayat/internal/models"

	"github.com/goccy/go-json"
)

// JSONParser reads a complete scenario: roster, voter records, ballots and regions.
type JSONParser struct{}

// NewJSONParser creates a new JSON scenario parser
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Format returns the parser encoding
func (p *JSONParser) Format() models.ScenarioFormat {
	return models.ScenarioFormatJSON
}

// Parse implements the Parser interface
func (p *JSONParser) Parse(ctx context.Context, r io.Reader) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := json.NewDecoder(r).DecodeContext(ctx, &scenario); err != nil {
		return nil, NewParseError(StageDecode, err)
	}

	for i, c := range scenario.Candidates {
		if err := c.Validate(); err != nil {
			return nil, NewParseError(StageValidate, fmt.Errorf("candidate %d: %w", i, err))
		}
	}
	for i, b := range scenario.Ballots {
		if err := b.Validate(); err != nil {
			return nil, NewParseError(StageValidate, fmt.Errorf("ballot %d: %w", i, err))
		}
	}

	return &scenario, nil
}
