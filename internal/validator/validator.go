// Package validator builds reusable voter record predicates from a rule set.
//
// The age check only applies to values that convert to a number. An age such
// as "old" is not compared and passes; a nil or numeric string age is compared
// as a number.
package validator

import (
	"slices"

	"panchayat/internal/models"

	"github.com/pocketbase/pocketbase/tools/list"
	"github.com/spf13/cast"
)

const (
	ReasonInvalidFields = "invalid fields"
	ReasonInvalidKeys   = "invalid keys"
	ReasonInvalidAge    = "invalid age"
)

// Rules configures a validator.
type Rules struct {
	MinAge         int      `json:"minAge"`
	RequiredFields []string `json:"requiredFields"`
}

// DefaultRules mirrors the checks an election applies at registration.
func DefaultRules() Rules {
	return Rules{
		MinAge:         models.MinVoterAge,
		RequiredFields: slices.Clone(models.VoterFields),
	}
}

// Func judges a single voter record.
type Func func(models.Record) models.Outcome

// New returns a validator bound to a private copy of rules.
func New(rules Rules) Func {
	minAge := rules.MinAge
	required := slices.Clone(rules.RequiredFields)

	return func(voter models.Record) models.Outcome {
		if len(voter) != len(required) {
			return models.Outcome{Valid: false, Reason: ReasonInvalidFields}
		}
		for key := range voter {
			if !list.ExistInSlice(key, required) {
				return models.Outcome{Valid: false, Reason: ReasonInvalidKeys}
			}
		}
		if raw, ok := voter["age"]; ok {
			if age, err := cast.ToIntE(raw); err == nil && age < minAge {
				return models.Outcome{Valid: false, Reason: ReasonInvalidAge}
			}
		}
		return models.Outcome{Valid: true}
	}
}
