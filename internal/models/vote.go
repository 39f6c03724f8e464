package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Vote is a recorded vote. It only comes into existence through a successful cast.
type Vote struct {
	VoterID     string `json:"voterId"`
	CandidateID string `json:"candidateId"`
}

// Ballot is a request to cast a vote, as read from a scenario.
type Ballot struct {
	VoterID     string `json:"voterId"`
	CandidateID string `json:"candidateId"`
}

// Validate ensures both ids are present.
func (b Ballot) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.VoterID, validation.Required),
		validation.Field(&b.CandidateID, validation.Required),
	)
}

// BallotOutcome records what happened to a single ballot during a replay.
type BallotOutcome struct {
	Ballot   Ballot `json:"ballot"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// Region is a node of an offline, hierarchical vote count.
type Region struct {
	Name       string    `json:"name"`
	Votes      int       `json:"votes"`
	SubRegions []*Region `json:"subRegions"`
}
