package storage

import (
	"panchayat/internal/models"

	"github.com/pocketbase/pocketbase/tools/store"
)

// Registry holds the voters accepted by an election. It only grows.
type Registry struct {
	voters *store.Store[models.Voter]
}

// NewRegistry creates an empty voter registry
func NewRegistry() *Registry {
	return &Registry{
		voters: store.New(map[string]models.Voter{}),
	}
}

// Add stores the voter unless one with the same id is already present.
func (r *Registry) Add(voter models.Voter) bool {
	if r.voters.Has(voter.ID) {
		return false
	}
	r.voters.Set(voter.ID, voter)
	return true
}

// Has reports whether a voter with the given id is registered.
func (r *Registry) Has(id string) bool {
	return r.voters.Has(id)
}

// Len returns the number of registered voters.
func (r *Registry) Len() int {
	return r.voters.Length()
}
