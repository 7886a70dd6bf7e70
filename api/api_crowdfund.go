package api

//go:generate go run github.com/golang/mock/mockgen -destination=mocks/mock_crowdfund.go -package=mocks . Crowdfund

import (
	"context"

	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/google/uuid"
)

//                       MODIFYING THE API INTERFACE
//
// When adding / changing methods in this file:
// * Do the change here
// * Adjust implementation in `node/`
// * Add the method with its permission to CrowdfundStruct in proxy_gen.go

// Crowdfund is the API served by the crowdfund daemon.
type Crowdfund interface {
	// Version returns the daemon and API versions.
	Version(context.Context) (APIVersion, error) //perm:read

	// CampaignCreate stores the file, copies it into the storage node's file
	// system, then registers the campaign on chain and waits for the
	// receipt. A submission that fails in the workflow still returns a
	// record, with Stage set to "failed" and the failure described.
	CampaignCreate(ctx context.Context, params CampaignParams) (*SubmissionRecord, error) //perm:sign

	// CampaignList returns the most recent submissions, newest first.
	CampaignList(context.Context) ([]SubmissionRecord, error) //perm:read

	// CampaignGet returns one remembered submission. Submissions that fell
	// out of the history fail with ErrCampaignNotFound.
	CampaignGet(ctx context.Context, id uuid.UUID) (*SubmissionRecord, error) //perm:read

	// FormState returns the state of the submission form.
	FormState(context.Context) (FormSnapshot, error) //perm:read

	// WalletAccounts lists the accounts the daemon was granted.
	WalletAccounts(context.Context) ([]string, error) //perm:read

	AuthVerify(ctx context.Context, token string) ([]auth.Permission, error) //perm:read
	AuthNew(ctx context.Context, perms []auth.Permission) ([]byte, error)    //perm:admin
}
