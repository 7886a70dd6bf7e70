package api

import (
	"errors"
	"reflect"

	"github.com/filecoin-project/go-jsonrpc"
)

const (
	EMissingTitle = iota + jsonrpc.FirstUserCode
	EMissingGoal
	EMissingFile
	ECampaignNotFound
)

var (
	RPCErrors = jsonrpc.NewErrors()

	_ error = (*ErrMissingTitle)(nil)
	_ error = (*ErrMissingGoal)(nil)
	_ error = (*ErrMissingFile)(nil)
	_ error = (*ErrCampaignNotFound)(nil)
)

func init() {
	RPCErrors.Register(EMissingTitle, new(*ErrMissingTitle))
	RPCErrors.Register(EMissingGoal, new(*ErrMissingGoal))
	RPCErrors.Register(EMissingFile, new(*ErrMissingFile))
	RPCErrors.Register(ECampaignNotFound, new(*ErrCampaignNotFound))
}

func ErrorIsIn(err error, errorTypes []error) bool {
	for _, etype := range errorTypes {
		tmp := reflect.New(reflect.PointerTo(reflect.ValueOf(etype).Elem().Type())).Interface()
		if errors.As(err, tmp) {
			return true
		}
	}
	return false
}

// ErrMissingTitle signals a campaign submitted without a title.
type ErrMissingTitle struct{}

func (ErrMissingTitle) Error() string { return "campaign title is required" }

// ErrMissingGoal signals a campaign submitted without a funding goal.
type ErrMissingGoal struct{}

func (ErrMissingGoal) Error() string { return "funding goal is required" }

// ErrMissingFile signals a campaign submitted without a file.
type ErrMissingFile struct{}

func (ErrMissingFile) Error() string { return "campaign file is required" }

// ErrCampaignNotFound signals a submission id the daemon does not remember.
type ErrCampaignNotFound struct{}

func (ErrCampaignNotFound) Error() string { return "campaign submission not found" }

// InvalidParams lists the errors a CampaignCreate call is rejected with
// before anything is stored.
var InvalidParams = []error{new(ErrMissingTitle), new(ErrMissingGoal), new(ErrMissingFile)}
