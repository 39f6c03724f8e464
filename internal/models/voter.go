package models

import (
	"errors"
	"fmt"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"
)

// MinVoterAge is the youngest age accepted at registration.
const MinVoterAge = 18

// VoterFields lists the keys a well-formed voter record carries, no more and no less.
var VoterFields = []string{"id", "name", "age"}

// ErrMalformedVoter is returned when a record does not have the voter shape.
var ErrMalformedVoter = errors.New("malformed voter record")

// Record is a loosely typed voter record as supplied by a host program or scenario file.
type Record map[string]any

// Voter is a registered (or registrable) member of the electorate.
type Voter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Validate runs the built-in registration checks with MinVoterAge.
func (v Voter) Validate() error {
	return v.ValidateAge(MinVoterAge)
}

// ValidateAge checks that the voter is at least minAge years old. Empty ids
// and names are allowed; the field set of a struct is always complete.
func (v Voter) ValidateAge(minAge int) error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Age, validation.By(atLeast(minAge))),
	)
}

func atLeast(minAge int) validation.RuleFunc {
	return func(value any) error {
		age, _ := value.(int)
		if age < minAge {
			return fmt.Errorf("must be no less than %d", minAge)
		}
		return nil
	}
}

// Record returns the voter in record form.
func (v Voter) Record() Record {
	return Record{
		"id":   v.ID,
		"name": v.Name,
		"age":  v.Age,
	}
}

// VoterFromRecord decodes a record that has exactly the id, name and age keys.
func VoterFromRecord(r Record) (Voter, error) {
	if r == nil {
		return Voter{}, fmt.Errorf("%w: nil record", ErrMalformedVoter)
	}
	if len(r) != len(VoterFields) {
		return Voter{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedVoter, len(VoterFields), len(r))
	}
	for key := range r {
		if !slices.Contains(VoterFields, key) {
			return Voter{}, fmt.Errorf("%w: unexpected field %q", ErrMalformedVoter, key)
		}
	}

	id, err := cast.ToStringE(r["id"])
	if err != nil {
		return Voter{}, fmt.Errorf("%w: id: %v", ErrMalformedVoter, err)
	}
	name, err := cast.ToStringE(r["name"])
	if err != nil {
		return Voter{}, fmt.Errorf("%w: name: %v", ErrMalformedVoter, err)
	}
	age, err := cast.ToIntE(r["age"])
	if err != nil {
		return Voter{}, fmt.Errorf("%w: age: %v", ErrMalformedVoter, err)
	}

	return Voter{ID: id, Name: name, Age: age}, nil
}

// Outcome is the verdict of a voter validator. Reason is empty when Valid.
type Outcome struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
