package crowdfunding

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

// Crowdfunding is a write binding to a deployed Crowdfunding contract.
type Crowdfunding struct {
	address  common.Address
	contract *bind.BoundContract
}

func NewCrowdfunding(address common.Address, backend bind.ContractBackend) (*Crowdfunding, error) {
	parsed, err := ParsedABI()
	if err != nil {
		return nil, xerrors.Errorf("parsing crowdfunding abi: %w", err)
	}

	return &Crowdfunding{
		address:  address,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

func (c *Crowdfunding) Address() common.Address {
	return c.address
}

// CreateCampaign signs and submits createCampaign(title, ipfsHash, goal). The
// returned transaction is only submitted, not yet confirmed.
func (c *Crowdfunding) CreateCampaign(opts *bind.TransactOpts, title string, ipfsHash string, goal *big.Int) (*types.Transaction, error) {
	return c.contract.Transact(opts, MethodCreateCampaign, title, ipfsHash, goal)
}

// PackCreateCampaign returns the call data of a createCampaign call.
func PackCreateCampaign(title string, ipfsHash string, goal *big.Int) ([]byte, error) {
	parsed, err := ParsedABI()
	if err != nil {
		return nil, err
	}
	return parsed.Pack(MethodCreateCampaign, title, ipfsHash, goal)
}
