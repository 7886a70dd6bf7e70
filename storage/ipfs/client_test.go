package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"
)

func testCid(t *testing.T, data []byte) string {
	h, err := mh.Sum(data, mh.SHA2_256, -1)
	require.NoError(t, err)
	return cid.NewCidV0(h).String()
}

func TestAdd(t *testing.T) {
	data := []byte("0123456789")
	want := testCid(t, data)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v0/add", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("pin"))

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		got, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, data, got)

		_ = json.NewEncoder(w).Encode(AddResult{Name: want, Hash: want, Size: "18"})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	res, err := c.Add(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, want, res.Hash)
	require.Equal(t, "18", res.Size)
}

func TestAddLastObjectWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enc := json.NewEncoder(w)
		_ = enc.Encode(AddResult{Name: "a", Hash: "QmFirst"})
		_ = enc.Encode(AddResult{Name: "", Hash: "QmRoot"})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	res, err := c.Add(context.Background(), bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	require.Equal(t, "QmRoot", res.Hash)
}

func TestAddIdentifierIsOpaque(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Name":"x","Hash":"Qm123...","Size":"10"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	res, err := c.Add(context.Background(), bytes.NewReader(make([]byte, 10)))
	require.NoError(t, err)
	require.Equal(t, "Qm123...", res.Hash)
}

func TestAddNodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"Message":"no space left on device","Code":0,"Type":"error"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Add(context.Background(), bytes.NewReader([]byte("x")))
	require.Error(t, err)

	var ierr *Error
	require.ErrorAs(t, err, &ierr)
	require.Equal(t, http.StatusInternalServerError, ierr.StatusCode)
	require.Contains(t, err.Error(), "no space left on device")
}

func TestAddEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Add(context.Background(), bytes.NewReader([]byte("x")))
	require.ErrorContains(t, err, "no hash")
}

func TestAddNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c, err := NewClient(addr)
	require.NoError(t, err)

	_, err = c.Add(context.Background(), bytes.NewReader([]byte("x")))
	require.Error(t, err)
	require.Contains(t, err.Error(), "ipfs add")
}

func TestFilesCp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v0/files/cp", r.URL.Path)
		require.Equal(t, []string{"/ipfs/Qm123", "/Qm123"}, r.URL.Query()["arg"])
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL + "/")
	require.NoError(t, err)

	require.NoError(t, c.FilesCp(context.Background(), IPFSPath("Qm123"), MFSPath("Qm123")))
}

func TestFilesCpError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "directory already has entry by that name", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	err = c.FilesCp(context.Background(), "/ipfs/Qm123", "/Qm123")
	require.ErrorContains(t, err, "directory already has entry by that name")
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v0/version", r.URL.Path)
		_, _ = w.Write([]byte(`{"Version":"0.29.0","Commit":"","Repo":"15","System":"amd64/linux","Golang":"go1.22.4"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	require.Equal(t, "0.29.0", v.Version)
}

func TestNewClientRejectsScheme(t *testing.T) {
	_, err := NewClient("/ip4/127.0.0.1/tcp/5001")
	require.Error(t, err)
}

func TestGatewayURL(t *testing.T) {
	require.Equal(t, "http://127.0.0.1:8080/ipfs/Qm123", GatewayURL("http://127.0.0.1:8080/", "Qm123"))
	require.Equal(t, "/ipfs/Qm123", IPFSPath("Qm123"))
	require.Equal(t, "/Qm123", MFSPath("Qm123"))
}
