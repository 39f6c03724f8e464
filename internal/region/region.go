// Package region sums offline vote counts over a tree of regions.
package region

import "panchayat/internal/models"

// CountVotes returns the votes of r and every region nested below it.
// A nil tree counts as zero.
func CountVotes(r *models.Region) int {
	if r == nil {
		return 0
	}
	total := r.Votes
	for _, sub := range r.SubRegions {
		total += CountVotes(sub)
	}
	return total
}
