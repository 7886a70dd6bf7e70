package types

import (
	"math/big"
	"regexp"
	"strings"

	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/build"
)

// Ether is an amount in wei, the chain's smallest unit.
type Ether BigInt

func (e Ether) String() string {
	return e.Unitless() + " ETH"
}

func (e Ether) Unitless() string {
	if e.Int == nil {
		return "0"
	}
	r := new(big.Rat).SetFrac(e.Int, big.NewInt(build.EtherPrecision))
	if r.Sign() == 0 {
		return "0"
	}
	return strings.TrimRight(strings.TrimRight(r.FloatString(build.EtherDecimals), "0"), ".")
}

// Wei returns the amount as a plain integer, never nil.
func (e Ether) Wei() *big.Int {
	if e.Int == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(e.Int)
}

func (e Ether) MarshalJSON() ([]byte, error) {
	return BigInt(e).MarshalJSON()
}

func (e *Ether) UnmarshalJSON(b []byte) error {
	return (*BigInt)(e).UnmarshalJSON(b)
}

// big.Rat.SetString also takes fractions, exponents, base prefixes and digit
// separators; goals are plain decimals.
var decimalRe = regexp.MustCompile(`^-?([0-9]+\.?[0-9]*|\.[0-9]+)$`)

// ParseEther converts a human readable decimal amount of ether ("1.5") into
// wei. Values that do not land on a whole number of wei are rejected instead
// of being truncated.
func ParseEther(s string) (Ether, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "ETH"))
	if !decimalRe.MatchString(s) {
		return Ether{}, xerrors.Errorf("failed to parse %q as a decimal number", s)
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Ether{}, xerrors.Errorf("failed to parse %q as a decimal number", s)
	}
	if r.Sign() < 0 {
		return Ether{}, xerrors.Errorf("invalid ETH value: %q is negative", s)
	}

	r = r.Mul(r, big.NewRat(build.EtherPrecision, 1))
	if !r.IsInt() {
		return Ether{}, xerrors.Errorf("invalid ETH value: %q has more than %d decimals", s, build.EtherDecimals)
	}

	return Ether{r.Num()}, nil
}

func MustParseEther(s string) Ether {
	n, err := ParseEther(s)
	if err != nil {
		panic(err)
	}

	return n
}
