package config

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/xerrors"
)

// EnvPrefix prefixes environment overrides, CROWDFUND_IPFS_APIADDRESS sets
// IPFS.APIAddress.
const EnvPrefix = "CROWDFUND"

// FromFile loads config from a specified file overriding defaults specified in
// the def parameter. If file does not exist or is empty defaults are assumed.
func FromFile(path string, def *Config) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, xerrors.Errorf("expanding config path: %w", err)
	}

	file, err := os.Open(path)
	switch {
	case os.IsNotExist(err):
		return FromReader(bytes.NewReader(nil), def)
	case err != nil:
		return nil, err
	}

	defer file.Close() //nolint:errcheck // The file is RO
	return FromReader(file, def)
}

// FromReader loads config from a reader instance.
func FromReader(reader io.Reader, def *Config) (*Config, error) {
	cfg := *def
	md, err := toml.NewDecoder(reader).Decode(&cfg)
	if err != nil {
		return nil, xerrors.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, xerrors.Errorf("unknown config keys: %v", undecoded)
	}

	err = envconfig.Process(EnvPrefix, &cfg)
	if err != nil {
		return nil, xerrors.Errorf("processing env vars overrides: %s", err)
	}

	return &cfg, nil
}

// ConfigComment renders cfg as TOML with every value commented out, leaving
// the section headers in place.
func ConfigComment(cfg *Config) ([]byte, error) {
	buf := new(bytes.Buffer)
	_, _ = buf.WriteString("# Default config:\n")
	e := toml.NewEncoder(buf)
	if err := e.Encode(cfg); err != nil {
		return nil, xerrors.Errorf("encoding config: %w", err)
	}
	b := buf.Bytes()
	b = bytes.ReplaceAll(b, []byte("\n"), []byte("\n#"))
	b = bytes.ReplaceAll(b, []byte("#["), []byte("["))
	return b, nil
}
