package election

import "errors"

// The messages are part of the public contract and are kept verbatim.
var (
	ErrVoterNotFound     = errors.New("Voter does not exist")
	ErrCandidateNotFound = errors.New("Candidate does't exist")
	ErrAlreadyVoted      = errors.New("This candidate has already voted.")
)
