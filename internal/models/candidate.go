package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Candidate is one entry of an election's roster.
type Candidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
}

// Validate ensures the candidate can be looked up by id.
func (c Candidate) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

// Result is a candidate with the number of votes counted for it.
type Result struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
	Votes int    `json:"votes"`
}

// NewResult copies the candidate fields into a fresh result.
func NewResult(c Candidate, votes int) Result {
	return Result{
		ID:    c.ID,
		Name:  c.Name,
		Party: c.Party,
		Votes: votes,
	}
}

// Tally maps a candidate id to its vote count.
type Tally map[string]int
