package build

// EtherPrecision is the number of wei in one ether.
const EtherPrecision = 1_000_000_000_000_000_000

// EtherDecimals is the number of fractional digits EtherPrecision allows.
const EtherDecimals = 18

// Endpoints of a local development setup: a Kubo node and an EVM devnet.
const (
	DefaultIPFSAPIAddress     = "http://127.0.0.1:5001"
	DefaultIPFSGatewayAddress = "http://127.0.0.1:8080"
	DefaultEthRPCAddress      = "http://127.0.0.1:8545"
	DefaultChainID            = 1337

	DefaultAPIListenAddress = "/ip4/127.0.0.1/tcp/3456"
)
