package api

import (
	"context"

	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

var ErrNotSupported = xerrors.New("method not supported")

type CrowdfundStruct struct {
	Internal CrowdfundMethods
}

type CrowdfundMethods struct {
	AuthNew func(p0 context.Context, p1 []auth.Permission) ([]byte, error) `perm:"admin"`

	AuthVerify func(p0 context.Context, p1 string) ([]auth.Permission, error) `perm:"read"`

	CampaignCreate func(p0 context.Context, p1 CampaignParams) (*SubmissionRecord, error) `perm:"sign"`

	CampaignGet func(p0 context.Context, p1 uuid.UUID) (*SubmissionRecord, error) `perm:"read"`

	CampaignList func(p0 context.Context) ([]SubmissionRecord, error) `perm:"read"`

	FormState func(p0 context.Context) (FormSnapshot, error) `perm:"read"`

	Version func(p0 context.Context) (APIVersion, error) `perm:"read"`

	WalletAccounts func(p0 context.Context) ([]string, error) `perm:"read"`
}

type CrowdfundStub struct {
}

func (s *CrowdfundStruct) AuthNew(p0 context.Context, p1 []auth.Permission) ([]byte, error) {
	if s.Internal.AuthNew == nil {
		return *new([]byte), ErrNotSupported
	}
	return s.Internal.AuthNew(p0, p1)
}

func (s *CrowdfundStub) AuthNew(p0 context.Context, p1 []auth.Permission) ([]byte, error) {
	return *new([]byte), ErrNotSupported
}

func (s *CrowdfundStruct) AuthVerify(p0 context.Context, p1 string) ([]auth.Permission, error) {
	if s.Internal.AuthVerify == nil {
		return *new([]auth.Permission), ErrNotSupported
	}
	return s.Internal.AuthVerify(p0, p1)
}

func (s *CrowdfundStub) AuthVerify(p0 context.Context, p1 string) ([]auth.Permission, error) {
	return *new([]auth.Permission), ErrNotSupported
}

func (s *CrowdfundStruct) CampaignCreate(p0 context.Context, p1 CampaignParams) (*SubmissionRecord, error) {
	if s.Internal.CampaignCreate == nil {
		return nil, ErrNotSupported
	}
	return s.Internal.CampaignCreate(p0, p1)
}

func (s *CrowdfundStub) CampaignCreate(p0 context.Context, p1 CampaignParams) (*SubmissionRecord, error) {
	return nil, ErrNotSupported
}

func (s *CrowdfundStruct) CampaignGet(p0 context.Context, p1 uuid.UUID) (*SubmissionRecord, error) {
	if s.Internal.CampaignGet == nil {
		return nil, ErrNotSupported
	}
	return s.Internal.CampaignGet(p0, p1)
}

func (s *CrowdfundStub) CampaignGet(p0 context.Context, p1 uuid.UUID) (*SubmissionRecord, error) {
	return nil, ErrNotSupported
}

func (s *CrowdfundStruct) CampaignList(p0 context.Context) ([]SubmissionRecord, error) {
	if s.Internal.CampaignList == nil {
		return *new([]SubmissionRecord), ErrNotSupported
	}
	return s.Internal.CampaignList(p0)
}

func (s *CrowdfundStub) CampaignList(p0 context.Context) ([]SubmissionRecord, error) {
	return *new([]SubmissionRecord), ErrNotSupported
}

func (s *CrowdfundStruct) FormState(p0 context.Context) (FormSnapshot, error) {
	if s.Internal.FormState == nil {
		return *new(FormSnapshot), ErrNotSupported
	}
	return s.Internal.FormState(p0)
}

func (s *CrowdfundStub) FormState(p0 context.Context) (FormSnapshot, error) {
	return *new(FormSnapshot), ErrNotSupported
}

func (s *CrowdfundStruct) Version(p0 context.Context) (APIVersion, error) {
	if s.Internal.Version == nil {
		return *new(APIVersion), ErrNotSupported
	}
	return s.Internal.Version(p0)
}

func (s *CrowdfundStub) Version(p0 context.Context) (APIVersion, error) {
	return *new(APIVersion), ErrNotSupported
}

func (s *CrowdfundStruct) WalletAccounts(p0 context.Context) ([]string, error) {
	if s.Internal.WalletAccounts == nil {
		return *new([]string), ErrNotSupported
	}
	return s.Internal.WalletAccounts(p0)
}

func (s *CrowdfundStub) WalletAccounts(p0 context.Context) ([]string, error) {
	return *new([]string), ErrNotSupported
}

var _ Crowdfund = new(CrowdfundStruct)
var _ Crowdfund = new(CrowdfundStub)
