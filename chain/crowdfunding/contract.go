// Package crowdfunding binds the Crowdfunding contract: the ABI of its
// createCampaign entry point and a typed wrapper to call it.
package crowdfunding

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

const MethodCreateCampaign = "createCampaign"

// ABI of the deployed Crowdfunding contract, trimmed to what is called from here.
const ABI = `[
	{
		"inputs": [
			{"internalType": "string", "name": "_title", "type": "string"},
			{"internalType": "string", "name": "_ipfsHash", "type": "string"},
			{"internalType": "uint256", "name": "_goal", "type": "uint256"}
		],
		"name": "createCampaign",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

var (
	parsedOnce sync.Once
	parsedABI  abi.ABI
	parsedErr  error
)

func ParsedABI() (abi.ABI, error) {
	parsedOnce.Do(func() {
		parsedABI, parsedErr = abi.JSON(strings.NewReader(ABI))
	})
	return parsedABI, parsedErr
}

// ParseAddress parses the hex address the contract is deployed at.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, xerrors.Errorf("invalid contract address %q", s)
	}
	a := common.HexToAddress(s)
	if a == (common.Address{}) {
		return common.Address{}, xerrors.Errorf("contract address must not be the zero address")
	}
	return a, nil
}
