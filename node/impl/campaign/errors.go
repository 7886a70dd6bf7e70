package campaign

import (
	"errors"
)

// Failure kinds, also used as metric tags.
const (
	KindFile  = "file"
	KindStore = "store"
	KindChain = "chain"
)

// Steps of the workflow a failure can be attributed to.
const (
	StepRead    = "read"
	StepAdd     = "add"
	StepPin     = "pin"
	StepSigner  = "signer"
	StepGoal    = "goal"
	StepSubmit  = "submit"
	StepConfirm = "confirm"
)

// FileError is a failure to obtain the file contents.
type FileError struct {
	Err error
}

func (e *FileError) Error() string { return e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

// StoreError is a failure of the storage node, while adding or while copying
// into its file system.
type StoreError struct {
	Step string
	Err  error
}

func (e *StoreError) Error() string { return e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// ChainError is a failure on the chain side: no signer, an unusable goal, a
// rejected submission or a failed confirmation.
type ChainError struct {
	Step string
	Err  error
}

func (e *ChainError) Error() string { return e.Err.Error() }
func (e *ChainError) Unwrap() error { return e.Err }

// Classify returns the failure kind and step of a workflow error.
func Classify(err error) (kind, step string) {
	var fe *FileError
	var se *StoreError
	var ce *ChainError

	switch {
	case errors.As(err, &fe):
		return KindFile, StepRead
	case errors.As(err, &se):
		return KindStore, se.Step
	case errors.As(err, &ce):
		return KindChain, ce.Step
	default:
		return "", ""
	}
}

// UserMessage is the single message shown for any failed submission.
func UserMessage(err error) string {
	return "campaign creation failed: " + err.Error()
}

// SuccessMessage is shown once a campaign is confirmed.
const SuccessMessage = "Campaign created successfully"
