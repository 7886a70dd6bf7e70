package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/Borja291/Blockchain/build"
)

// APIVersion provides various build-time information
type APIVersion struct {
	Version string

	// APIVersion is a binary encoded semver version of the remote implementing
	// this api
	APIVersion build.Version
}

func (v APIVersion) String() string {
	return v.Version + "+api" + v.APIVersion.String()
}

// CampaignParams is one filled-in submission form.
type CampaignParams struct {
	Title string
	// Goal is a decimal amount of ether, "1.5" for one and a half.
	Goal     string
	FileName string
	File     []byte
}

// SubmissionRecord describes one campaign submission.
type SubmissionRecord struct {
	ID    uuid.UUID
	Title string
	Goal  string

	ContentID   string `json:",omitempty"`
	GatewayURL  string `json:",omitempty"`
	TxHash      string `json:",omitempty"`
	BlockNumber uint64 `json:",omitempty"`

	Stage string
	// FailureKind is one of "file", "store" or "chain" for failed
	// submissions, FailureStep the step that failed.
	FailureKind string `json:",omitempty"`
	FailureStep string `json:",omitempty"`
	// Message is the text shown to the user.
	Message string

	Started  time.Time
	Finished time.Time
}

func (r SubmissionRecord) Failed() bool {
	return r.FailureKind != ""
}

// FormSnapshot is the state of the submission form.
type FormSnapshot struct {
	Title    string
	Goal     string
	FileName string
	FileSize int

	ContentID  string `json:",omitempty"`
	GatewayURL string `json:",omitempty"`

	Stage   string
	Message string `json:",omitempty"`
}
