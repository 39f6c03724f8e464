package models

import "fmt"

// ScenarioFormat represents the encoding of a scenario file
type ScenarioFormat string

const (
	ScenarioFormatJSON ScenarioFormat = "json"
	ScenarioFormatCSV  ScenarioFormat = "csv"
)

// ValidateScenarioFormat checks if the scenario format is supported
func ValidateScenarioFormat(format ScenarioFormat) error {
	switch format {
	case ScenarioFormatJSON, ScenarioFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid scenario format: %s", format)
	}
}

// Scenario is everything needed to replay an election offline.
type Scenario struct {
	Candidates []Candidate `json:"candidates"`
	Voters     []Record    `json:"voters"`
	Ballots    []Ballot    `json:"ballots"`
	Regions    *Region     `json:"regions,omitempty"`
}

// Merge appends the voters and ballots of other to s. The roster and region
// tree of other are used only when s has none.
func (s *Scenario) Merge(other *Scenario) {
	if other == nil {
		return
	}
	if len(s.Candidates) == 0 {
		s.Candidates = other.Candidates
	}
	if s.Regions == nil {
		s.Regions = other.Regions
	}
	s.Voters = append(s.Voters, other.Voters...)
	s.Ballots = append(s.Ballots, other.Ballots...)
}

// Report summarises a replayed scenario.
type Report struct {
	ElectionID     string          `json:"electionId"`
	Registered     int             `json:"registered"`
	RejectedVoters int             `json:"rejectedVoters"`
	Outcomes       []BallotOutcome `json:"outcomes"`
	Results        []Result        `json:"results"`
	Winner         *Candidate      `json:"winner,omitempty"`
	Tally          Tally           `json:"tally"`
	RegionTotal    int             `json:"regionTotal"`
}

// Accepted counts the ballots that were recorded.
func (r Report) Accepted() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Accepted {
			n++
		}
	}
	return n
}
