package config

// Config is the daemon configuration, read from config.toml in the repo.
type Config struct {
	API     API
	IPFS    IPFS
	Chain   Chain
	Wallet  Wallet
	History History
}

// API contains configs for API endpoint
type API struct {
	// Address the form and the JSON-RPC API are served on.
	ListenAddress string
	// Bound on page, health and metrics requests. Campaign submissions are
	// not bounded by it.
	Timeout Duration
}

type IPFS struct {
	// Kubo RPC endpoint.
	APIAddress string
	// HTTP gateway used to build links to stored files.
	GatewayAddress string
	// Abort a submission when copying the stored file into the node's
	// file system fails. When false the failure is logged and the
	// submission goes on to the chain.
	PinFailureIsFatal bool
}

type Chain struct {
	// EVM JSON-RPC endpoint.
	RPCAddress string
	ChainID    uint64
	// Address of the deployed crowdfunding contract.
	ContractAddress string
	// Bound on waiting for a receipt. Zero waits until the request ends.
	ConfirmTimeout Duration
}

type Wallet struct {
	// Keystore account used to sign. Empty picks the first account.
	Account string
	// Name of the environment variable holding the keystore passphrase.
	PassphraseEnv string
	// Name of the environment variable holding a hex private key. When it
	// is set, the keystore is not used.
	PrivateKeyEnv string
}

type History struct {
	// Number of submissions remembered for `campaign list`.
	Size int
}
