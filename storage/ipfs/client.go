// Package ipfs talks to a Kubo node over its HTTP RPC API.
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"
)

var log = logging.Logger("ipfs")

const apiPrefix = "/api/v0"

// AddResult is what the node reports for a stored object. Hash is the content
// identifier exactly as returned by the node.
type AddResult struct {
	Name string
	Hash string
	Size string
}

type Client struct {
	base *url.URL
	hc   *http.Client

	pin bool
}

type Option func(*Client)

// WithHTTPClient replaces the default http client, mostly useful in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithPin sets the pin flag sent with add requests. Kubo pins by default.
func WithPin(pin bool) Option {
	return func(c *Client) {
		c.pin = pin
	}
}

func NewClient(apiAddr string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(apiAddr, "/"))
	if err != nil {
		return nil, xerrors.Errorf("parsing ipfs api address %q: %w", apiAddr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, xerrors.Errorf("ipfs api address %q: unsupported scheme %q", apiAddr, u.Scheme)
	}

	c := &Client{
		base: u,
		hc:   http.DefaultClient,
		pin:  true,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Add stores the content read from r and returns the identifier the node
// assigned to it.
func (c *Client) Add(ctx context.Context, r io.Reader) (AddResult, error) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	fw, err := mw.CreateFormFile("file", "file")
	if err != nil {
		return AddResult{}, xerrors.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return AddResult{}, xerrors.Errorf("reading content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return AddResult{}, xerrors.Errorf("closing multipart body: %w", err)
	}

	q := url.Values{}
	if c.pin {
		q.Set("pin", "true")
	} else {
		q.Set("pin", "false")
	}

	resp, err := c.post(ctx, "add", q, mw.FormDataContentType(), body)
	if err != nil {
		return AddResult{}, err
	}
	defer resp.Body.Close() //nolint:errcheck

	// the node streams one object per added entry, the last one is the root
	var out AddResult
	dec := json.NewDecoder(resp.Body)
	for {
		var res AddResult
		if err := dec.Decode(&res); err != nil {
			if err == io.EOF {
				break
			}
			return AddResult{}, xerrors.Errorf("decoding add response: %w", err)
		}
		out = res
	}

	if out.Hash == "" {
		return AddResult{}, xerrors.Errorf("add response carried no hash")
	}

	log.Debugw("added object", "hash", out.Hash, "size", out.Size)
	return out, nil
}

// FilesCp copies src (usually /ipfs/<cid>) to dst inside the node's mutable
// file system.
func (c *Client) FilesCp(ctx context.Context, src, dst string) error {
	q := url.Values{}
	q.Add("arg", src)
	q.Add("arg", dst)

	resp, err := c.post(ctx, "files/cp", q, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	_, _ = io.Copy(io.Discard, resp.Body)
	log.Debugw("copied into mfs", "src", src, "dst", dst)
	return nil
}

type VersionInfo struct {
	Version string
	Commit  string
	Repo    string
	System  string
	Golang  string
}

func (c *Client) Version(ctx context.Context) (VersionInfo, error) {
	resp, err := c.post(ctx, "version", nil, "", nil)
	if err != nil {
		return VersionInfo{}, err
	}
	defer resp.Body.Close() //nolint:errcheck

	var v VersionInfo
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return VersionInfo{}, xerrors.Errorf("decoding version response: %w", err)
	}
	return v, nil
}

func (c *Client) post(ctx context.Context, cmd string, q url.Values, contentType string, body io.Reader) (*http.Response, error) {
	u := *c.base
	u.Path = u.Path + apiPrefix + "/" + cmd
	if q != nil {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return nil, xerrors.Errorf("creating %s request: %w", cmd, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("ipfs %s: %w", cmd, err)
	}

	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close() //nolint:errcheck
		return nil, xerrors.Errorf("ipfs %s: %w", cmd, errorFromResponse(resp))
	}
	return resp, nil
}
