package config

import (
	"encoding"
	"time"

	"github.com/Borja291/Blockchain/build"
)

// Default returns the default config
func Default() *Config {
	return &Config{
		API: API{
			ListenAddress: build.DefaultAPIListenAddress,
			Timeout:       Duration(30 * time.Second),
		},
		IPFS: IPFS{
			APIAddress:        build.DefaultIPFSAPIAddress,
			GatewayAddress:    build.DefaultIPFSGatewayAddress,
			PinFailureIsFatal: true,
		},
		Chain: Chain{
			RPCAddress: build.DefaultEthRPCAddress,
			ChainID:    build.DefaultChainID,
		},
		Wallet: Wallet{
			PassphraseEnv: "CROWDFUND_WALLET_PASSPHRASE",
			PrivateKeyEnv: "CROWDFUND_WALLET_KEY",
		},
		History: History{
			Size: 128,
		},
	}
}

var _ encoding.TextMarshaler = (*Duration)(nil)
var _ encoding.TextUnmarshaler = (*Duration)(nil)

// Duration is a wrapper type for time.Duration
// for decoding and encoding from/to TOML
type Duration time.Duration

// UnmarshalText implements interface for TOML decoding
func (dur *Duration) UnmarshalText(text []byte) error {
	d, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*dur = Duration(d)
	return err
}

func (dur Duration) MarshalText() ([]byte, error) {
	d := time.Duration(dur)
	return []byte(d.String()), nil
}
