package handlers

import (
	"context"
	"log/slog"

	"panchayat/internal/election"
	"panchayat/internal/models"
	"panchayat/internal/region"
)

// ElectionHandler replays scenario input into an election session.
type ElectionHandler struct {
	election *election.Election
	logger   *slog.Logger
}

// NewElectionHandler creates a handler that replays scenarios into e.
func NewElectionHandler(e *election.Election, logger *slog.Logger) *ElectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ElectionHandler{
		election: e,
		logger:   logger.With(slog.String("election_id", e.ID())),
	}
}

// HandleRegister registers each record and reports how many were accepted and rejected.
func (h *ElectionHandler) HandleRegister(records []models.Record) (registered, rejected int) {
	for _, record := range records {
		if h.election.RegisterRecord(record) {
			registered++
			continue
		}
		rejected++
	}
	h.logger.Info("voters processed", slog.Int("registered", registered), slog.Int("rejected", rejected))
	return registered, rejected
}

// HandleBallots casts each ballot in order and returns one outcome per ballot.
func (h *ElectionHandler) HandleBallots(ctx context.Context, ballots []models.Ballot) ([]models.BallotOutcome, error) {
	outcomes := make([]models.BallotOutcome, 0, len(ballots))
	for _, ballot := range ballots {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		outcome := election.CastVote(h.election, ballot.VoterID, ballot.CandidateID,
			func(models.Vote) models.BallotOutcome {
				return models.BallotOutcome{Ballot: ballot, Accepted: true}
			},
			func(reason string) models.BallotOutcome {
				h.logger.Warn("ballot rejected",
					slog.String("voter_id", ballot.VoterID),
					slog.String("candidate_id", ballot.CandidateID),
					slog.String("reason", reason))
				return models.BallotOutcome{Ballot: ballot, Reason: reason}
			},
		)
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// HandleScenario registers the scenario voters, casts its ballots and builds a report.
// The compare function orders the reported results; nil means by votes.
func (h *ElectionHandler) HandleScenario(ctx context.Context, s *models.Scenario, compare func(a, b models.Result) int) (models.Report, error) {
	report := models.Report{ElectionID: h.election.ID()}
	report.Registered, report.RejectedVoters = h.HandleRegister(s.Voters)

	outcomes, err := h.HandleBallots(ctx, s.Ballots)
	if err != nil {
		return report, err
	}
	report.Outcomes = outcomes
	report.Results = h.election.Results(compare)
	report.Tally = h.election.Tally()
	if winner, ok := h.election.Winner(); ok {
		report.Winner = &winner
	}
	report.RegionTotal = region.CountVotes(s.Regions)

	h.logger.Info("scenario replayed",
		slog.Int("ballots", len(outcomes)),
		slog.Int("accepted", report.Accepted()),
		slog.Int("region_total", report.RegionTotal))
	return report, nil
}
