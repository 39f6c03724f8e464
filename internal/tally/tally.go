// Package tally provides value-semantics helpers for candidate vote counts.
package tally

import (
	"maps"

	"panchayat/internal/models"
)

// Increment returns a copy of current with candidateID's count raised by one.
// current is never modified.
func Increment(current models.Tally, candidateID string) models.Tally {
	next := make(models.Tally, len(current)+1)
	maps.Copy(next, current)
	next[candidateID]++
	return next
}

// FromVotes folds votes into a fresh tally.
func FromVotes(votes []models.Vote) models.Tally {
	t := models.Tally{}
	for _, v := range votes {
		t = Increment(t, v.CandidateID)
	}
	return t
}
