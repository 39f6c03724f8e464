// internal/parser/parser.go
package parser

import (
	"context"
	"fmt"
	"io"

	"panchayat/internal/models"
)

// Parse stages reported by ParseError
const (
	StageOpen     = "open"
	StageDecode   = "decode"
	StageHeader   = "header"
	StageRow      = "row"
	StageValidate = "validate"
)

// Parser defines the interface for different scenario encodings
type Parser interface {
	// Format returns the encoding handled (e.g., "json", "csv")
	Format() models.ScenarioFormat

	// Parse reads a scenario from r
	Parse(ctx context.Context, r io.Reader) (*models.Scenario, error)
}

// ParseError represents a parsing error with a specific stage
type ParseError struct {
	Stage string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s stage: %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(stage string, err error) *ParseError {
	return &ParseError{
		Stage: stage,
		Err:   err,
	}
}
