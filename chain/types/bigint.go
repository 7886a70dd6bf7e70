package types

import (
	"encoding/json"
	"fmt"
	"math/big"
)

type BigInt struct {
	*big.Int
}

func (bi BigInt) MarshalJSON() ([]byte, error) {
	if bi.Int == nil {
		return json.Marshal("0")
	}
	return json.Marshal(bi.String())
}

func (bi *BigInt) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	i, ok := big.NewInt(0).SetString(s, 10)
	if !ok {
		if s == "<nil>" {
			return nil
		}
		return fmt.Errorf("failed to parse bigint string")
	}

	bi.Int = i
	return nil
}
