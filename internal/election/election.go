// Package election implements a single election session: a fixed candidate
// roster, a registry of voters and an append-only ballot box, queried for
// results and a winner.
//
// A session is not safe for concurrent use. Callers sharing one across
// goroutines must serialise RegisterVoter and Cast themselves.
package election

import (
	"cmp"
	"log/slog"
	"slices"

	"panchayat/internal/models"
	"panchayat/internal/storage"
	"panchayat/internal/tally"
	"panchayat/internal/validator"

	"github.com/google/uuid"
)

// Election is an election session. Its registry and ballot box are reachable
// only through its methods.
type Election struct {
	id       string
	roster   []models.Candidate
	registry *storage.Registry
	ballots  *storage.BallotBox
	check    validator.Func
	minAge   int
	logger   *slog.Logger
}

// Option customises a new Election.
type Option func(*Election)

// WithLogger sets the logger used for registration and voting events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) {
		e.logger = logger
	}
}

// WithMinAge sets the youngest age accepted at registration. The default is
// models.MinVoterAge.
func WithMinAge(age int) Option {
	return func(e *Election) {
		e.minAge = age
	}
}

// WithValidator adds a registration predicate on top of the built-in checks.
func WithValidator(check validator.Func) Option {
	return func(e *Election) {
		e.check = check
	}
}

// New creates an election for the given roster. The roster is copied.
func New(candidates []models.Candidate, opts ...Option) *Election {
	e := &Election{
		id:       uuid.NewString(),
		roster:   slices.Clone(candidates),
		registry: storage.NewRegistry(),
		ballots:  storage.NewBallotBox(),
		minAge:   models.MinVoterAge,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.logger = e.logger.With(slog.String("election_id", e.id))
	return e
}

// ID returns the session identifier.
func (e *Election) ID() string {
	return e.id
}

// RegisterVoter adds the voter to the registry. It returns false, without
// changing anything, when the voter is under age, rejected by the configured
// validator or already registered.
func (e *Election) RegisterVoter(voter models.Voter) bool {
	if err := voter.ValidateAge(e.minAge); err != nil {
		e.logger.Debug("voter rejected", slog.String("voter_id", voter.ID), slog.Any("error", err))
		return false
	}
	if e.check != nil {
		if outcome := e.check(voter.Record()); !outcome.Valid {
			e.logger.Debug("voter rejected", slog.String("voter_id", voter.ID), slog.String("reason", outcome.Reason))
			return false
		}
	}
	if !e.registry.Add(voter) {
		e.logger.Debug("voter already registered", slog.String("voter_id", voter.ID))
		return false
	}
	e.logger.Debug("voter registered", slog.String("voter_id", voter.ID))
	return true
}

// RegisterRecord registers a loosely typed voter record. Records that do not
// have exactly the id, name and age fields are rejected. Empty or null id and
// name values are kept as empty strings.
func (e *Election) RegisterRecord(record models.Record) bool {
	voter, err := models.VoterFromRecord(record)
	if err != nil {
		e.logger.Debug("voter record rejected", slog.Any("error", err))
		return false
	}
	return e.RegisterVoter(voter)
}

// Cast records a vote. Checks run in order and the first failure is returned:
// ErrVoterNotFound, ErrCandidateNotFound, ErrAlreadyVoted.
func (e *Election) Cast(voterID, candidateID string) (models.Vote, error) {
	if !e.registry.Has(voterID) {
		return models.Vote{}, ErrVoterNotFound
	}
	if _, ok := e.candidate(candidateID); !ok {
		return models.Vote{}, ErrCandidateNotFound
	}
	if e.ballots.HasVoted(voterID) {
		return models.Vote{}, ErrAlreadyVoted
	}
	vote := models.Vote{VoterID: voterID, CandidateID: candidateID}
	e.ballots.Append(vote)
	e.logger.Debug("vote recorded", slog.String("voter_id", voterID), slog.String("candidate_id", candidateID))
	return vote, nil
}

// CastVote casts a vote and hands the outcome to exactly one of the
// callbacks, returning whatever that callback returns. onError receives the
// reason message.
func CastVote[R any](e *Election, voterID, candidateID string, onSuccess func(models.Vote) R, onError func(string) R) R {
	vote, err := e.Cast(voterID, candidateID)
	if err != nil {
		e.logger.Debug("vote rejected", slog.String("voter_id", voterID), slog.String("candidate_id", candidateID), slog.String("reason", err.Error()))
		if onError == nil {
			var zero R
			return zero
		}
		return onError(err.Error())
	}
	if onSuccess == nil {
		var zero R
		return zero
	}
	return onSuccess(vote)
}

// ByVotesDesc orders results by descending vote count.
func ByVotesDesc(a, b models.Result) int {
	return cmp.Compare(b.Votes, a.Votes)
}

// Results counts the ballot box for every roster candidate. Results are
// sorted stably with compare, or with ByVotesDesc when compare is nil, so
// equal entries keep roster order.
func (e *Election) Results(compare func(a, b models.Result) int) []models.Result {
	results := make([]models.Result, 0, len(e.roster))
	for _, c := range e.roster {
		results = append(results, models.NewResult(c, e.ballots.Count(c.ID)))
	}
	if compare == nil {
		compare = ByVotesDesc
	}
	slices.SortStableFunc(results, compare)
	return results
}

// Winner returns the candidate with the most votes, preferring the earliest
// listed among ties. It returns false while the ballot box is empty.
func (e *Election) Winner() (models.Candidate, bool) {
	if e.ballots.Len() == 0 {
		return models.Candidate{}, false
	}
	results := e.Results(nil)
	if len(results) == 0 {
		return models.Candidate{}, false
	}
	return e.candidate(results[0].ID)
}

// Tally returns a fresh candidate id to count mapping of the recorded votes.
func (e *Election) Tally() models.Tally {
	return tally.FromVotes(e.ballots.Votes())
}

// Candidates returns a copy of the roster.
func (e *Election) Candidates() []models.Candidate {
	return slices.Clone(e.roster)
}

// RegisteredVoters returns the number of registered voters.
func (e *Election) RegisteredVoters() int {
	return e.registry.Len()
}

// TotalVotes returns the number of recorded votes.
func (e *Election) TotalVotes() int {
	return e.ballots.Len()
}

func (e *Election) candidate(id string) (models.Candidate, bool) {
	i := slices.IndexFunc(e.roster, func(c models.Candidate) bool {
		return c.ID == id
	})
	if i < 0 {
		return models.Candidate{}, false
	}
	return e.roster[i], true
}
