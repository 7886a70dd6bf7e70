package node

import (
	"bytes"
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/gbrlsnchs/jwt/v3"
	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/api"
	"github.com/Borja291/Blockchain/build"
	"github.com/Borja291/Blockchain/chain/wallet"
	"github.com/Borja291/Blockchain/node/impl/campaign"
	"github.com/Borja291/Blockchain/storage/ipfs"
)

var log = logging.Logger("node")

type CrowdfundAPI struct {
	Workflow *campaign.Workflow
	Wallet   wallet.Provider
	History  *History

	GatewayAddress string
	APISecret      *jwt.HMACSHA
}

var _ api.Crowdfund = &CrowdfundAPI{}

type jwtPayload struct {
	Allow []auth.Permission
}

func (a *CrowdfundAPI) AuthVerify(ctx context.Context, token string) ([]auth.Permission, error) {
	var payload jwtPayload
	if _, err := jwt.Verify([]byte(token), a.APISecret, &payload); err != nil {
		return nil, xerrors.Errorf("JWT Verification failed: %w", err)
	}

	return payload.Allow, nil
}

func (a *CrowdfundAPI) AuthNew(ctx context.Context, perms []auth.Permission) ([]byte, error) {
	p := jwtPayload{
		Allow: perms,
	}

	return jwt.Sign(&p, a.APISecret)
}

func (a *CrowdfundAPI) Version(context.Context) (api.APIVersion, error) {
	return api.APIVersion{
		Version:    build.UserVersion(),
		APIVersion: build.CrowdfundAPIVersion,
	}, nil
}

func (a *CrowdfundAPI) CampaignCreate(ctx context.Context, p api.CampaignParams) (*api.SubmissionRecord, error) {
	switch {
	case p.Title == "":
		return nil, &api.ErrMissingTitle{}
	case p.Goal == "":
		return nil, &api.ErrMissingGoal{}
	case p.File == nil:
		return nil, &api.ErrMissingFile{}
	}

	form := a.Workflow.Form()
	data, err := form.LoadFile(p.FileName, bytes.NewReader(p.File))
	if err != nil {
		return nil, xerrors.Errorf("loading file: %w", err)
	}

	res, err := a.Workflow.Submit(ctx, campaign.Input{
		Title:    p.Title,
		Goal:     p.Goal,
		FileName: p.FileName,
		File:     data,
	})

	rec := submissionRecord(p, res, err)
	a.History.Add(rec)

	return &rec, nil
}

func (a *CrowdfundAPI) CampaignList(context.Context) ([]api.SubmissionRecord, error) {
	return a.History.List(), nil
}

func (a *CrowdfundAPI) CampaignGet(_ context.Context, id uuid.UUID) (*api.SubmissionRecord, error) {
	rec, ok := a.History.Get(id)
	if !ok {
		return nil, &api.ErrCampaignNotFound{}
	}
	return &rec, nil
}

func (a *CrowdfundAPI) FormState(context.Context) (api.FormSnapshot, error) {
	s := a.Workflow.Form().Snapshot()

	out := api.FormSnapshot{
		Title:     s.Title,
		Goal:      s.Goal,
		FileName:  s.FileName,
		FileSize:  s.FileSize,
		ContentID: s.ContentID,
		Stage:     s.Stage.String(),
		Message:   s.Message,
	}
	if s.ContentID != "" {
		out.GatewayURL = ipfs.GatewayURL(a.GatewayAddress, s.ContentID)
	}
	return out, nil
}

func (a *CrowdfundAPI) WalletAccounts(context.Context) ([]string, error) {
	return lo.Map(a.Wallet.Accounts(), func(addr common.Address, _ int) string {
		return addr.Hex()
	}), nil
}

func submissionRecord(p api.CampaignParams, res *campaign.Result, err error) api.SubmissionRecord {
	rec := api.SubmissionRecord{
		ID:          res.ID,
		Title:       p.Title,
		Goal:        p.Goal,
		ContentID:   res.ContentID,
		GatewayURL:  res.GatewayURL,
		BlockNumber: res.BlockNumber,
		Started:     res.Started,
		Finished:    res.Finished,
	}
	if res.TxHash != (common.Hash{}) {
		rec.TxHash = res.TxHash.Hex()
	}

	if err != nil {
		rec.Stage = campaign.StageFailed.String()
		rec.FailureKind, rec.FailureStep = campaign.Classify(err)
		rec.Message = campaign.UserMessage(err)
		return rec
	}

	rec.Stage = campaign.StageSucceeded.String()
	rec.Message = campaign.SuccessMessage
	return rec
}
