package ipfs

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is the error body the Kubo RPC API sends with non 2xx responses.
type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"Message"`
	Code       int    `json:"Code"`
	Type       string `json:"Type"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return e.Message
}

func errorFromResponse(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	e := &Error{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(b, e); err != nil || e.Message == "" {
		e.Message = strings.TrimSpace(string(b))
	}
	return e
}
