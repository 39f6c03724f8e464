package storage

import (
	"slices"

	"panchayat/internal/models"

	"github.com/pocketbase/pocketbase/tools/store"
)

// BallotBox is the append-only list of recorded votes, indexed by voter so
// that a voter can appear at most once.
type BallotBox struct {
	votes   []models.Vote
	byVoter *store.Store[models.Vote]
}

// NewBallotBox creates an empty ballot box
func NewBallotBox() *BallotBox {
	return &BallotBox{
		byVoter: store.New(map[string]models.Vote{}),
	}
}

// Append records the vote. It returns false, leaving the box untouched, when
// the voter already has a recorded vote.
func (b *BallotBox) Append(vote models.Vote) bool {
	if b.byVoter.Has(vote.VoterID) {
		return false
	}
	b.byVoter.Set(vote.VoterID, vote)
	b.votes = append(b.votes, vote)
	return true
}

// HasVoted reports whether the voter already has a recorded vote.
func (b *BallotBox) HasVoted(voterID string) bool {
	return b.byVoter.Has(voterID)
}

// Count returns the number of votes recorded for the candidate.
func (b *BallotBox) Count(candidateID string) int {
	n := 0
	for _, v := range b.votes {
		if v.CandidateID == candidateID {
			n++
		}
	}
	return n
}

// Len returns the number of recorded votes.
func (b *BallotBox) Len() int {
	return len(b.votes)
}

// Votes returns a copy of the recorded votes in cast order.
func (b *BallotBox) Votes() []models.Vote {
	return slices.Clone(b.votes)
}
