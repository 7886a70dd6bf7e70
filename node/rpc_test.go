package node

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Borja291/Blockchain/api"
	"github.com/Borja291/Blockchain/api/client"
	"github.com/Borja291/Blockchain/node/config"
)

func newTestServer(t *testing.T, tn *testNode) *httptest.Server {
	h, err := CrowdfundHandler(tn.api, HandlerConfig{
		Store:        tn.store,
		Permissioned: true,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func multipartBody(t *testing.T, fields map[string]string, fileName string, file []byte) (io.Reader, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func readBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close() //nolint:errcheck
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestFrontIndex(t *testing.T) {
	srv := newTestServer(t, newTestNode(t))

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="title"`)
	assert.Contains(t, body, `name="goal"`)
	assert.Contains(t, body, `type="file"`)
	assert.NotContains(t, body, "Content ID")
}

func TestFrontSubmit(t *testing.T) {
	tn := newTestNode(t)
	srv := newTestServer(t, tn)

	body, ct := multipartBody(t, map[string]string{"title": "Test Campaign", "goal": "2.0"}, "poster.png", []byte("0123456789"))
	resp, err := http.Post(srv.URL+"/campaign", ct, body)
	require.NoError(t, err)
	page := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Campaign created successfully")
	assert.Contains(t, page, testCID)
	assert.Contains(t, page, "http://127.0.0.1:8080/ipfs/"+testCID)
	assert.Equal(t, []string{"Test Campaign/" + testCID}, tn.registry.calls)
}

func TestFrontSubmitFailure(t *testing.T) {
	tn := newTestNode(t)
	tn.store.addErr = errors.New("connection refused")
	srv := newTestServer(t, tn)

	body, ct := multipartBody(t, map[string]string{"title": "Test Campaign", "goal": "2.0"}, "poster.png", []byte("0123456789"))
	resp, err := http.Post(srv.URL+"/campaign", ct, body)
	require.NoError(t, err)
	page := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "campaign creation failed: connection refused")
	assert.NotContains(t, page, "Content ID")
}

func TestFrontSubmitWithoutFile(t *testing.T) {
	tn := newTestNode(t)
	srv := newTestServer(t, tn)

	body, ct := multipartBody(t, map[string]string{"title": "Test Campaign", "goal": "2.0"}, "", nil)
	resp, err := http.Post(srv.URL+"/campaign", ct, body)
	require.NoError(t, err)
	page := readBody(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, page, "campaign file is required")
	assert.Empty(t, tn.store.added)
}

func TestHealth(t *testing.T) {
	tn := newTestNode(t)
	srv := newTestServer(t, tn)

	resp, err := http.Get(srv.URL + "/health/livez")
	require.NoError(t, err)
	_ = readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/health/readyz")
	require.NoError(t, err)
	assert.Contains(t, readBody(t, resp), "0.29.0")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tn.store.version = errors.New("connection refused")
	resp, err = http.Get(srv.URL + "/health/readyz")
	require.NoError(t, err)
	_ = readBody(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, newTestNode(t))

	resp, err := http.Get(srv.URL + "/debug/metrics")
	require.NoError(t, err)
	_ = readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRPCPermissions(t *testing.T) {
	tn := newTestNode(t)
	srv := newTestServer(t, tn)
	ctx := context.Background()
	addr := "ws://" + strings.TrimPrefix(srv.URL, "http://") + "/rpc/v0"

	// no token: read only
	anon, closer, err := client.NewCrowdfundRPC(ctx, addr, nil)
	require.NoError(t, err)
	defer closer()

	v, err := anon.Version(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, v.Version)

	_, err = anon.CampaignCreate(ctx, testParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing permission")
	assert.Empty(t, tn.store.added)

	tok, err := tn.api.AuthNew(ctx, api.PermsUpTo(api.PermSign))
	require.NoError(t, err)

	headers := http.Header{}
	headers.Add("Authorization", "Bearer "+string(tok))
	signer, closer2, err := client.NewCrowdfundRPC(ctx, addr, headers)
	require.NoError(t, err)
	defer closer2()

	rec, err := signer.CampaignCreate(ctx, testParams())
	require.NoError(t, err)
	assert.Equal(t, "succeeded", rec.Stage)
	assert.Equal(t, testCID, rec.ContentID)

	p := testParams()
	p.Goal = ""
	_, err = signer.CampaignCreate(ctx, p)
	require.Error(t, err)
	assert.True(t, api.ErrorIsIn(err, api.InvalidParams))

	list, err := anon.CampaignList(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)

	got, err := anon.CampaignGet(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.TxHash, got.TxHash)

	_, err = anon.CampaignGet(ctx, uuid.New())
	var nf *api.ErrCampaignNotFound
	require.ErrorAs(t, err, &nf)

	_, err = signer.AuthNew(ctx, api.AllPermissions)
	require.Error(t, err, "admin is needed to mint tokens")
}

func TestSubmissionOutlivesRequestTimeout(t *testing.T) {
	def := config.Default()
	require.Zero(t, def.Chain.ConfirmTimeout, "confirmation waits are unbounded by default")

	tn := newTestNode(t)
	tn.registry.confirmDelay = 300 * time.Millisecond

	h, err := CrowdfundHandler(tn.api, HandlerConfig{
		Store:        tn.store,
		Timeout:      50 * time.Millisecond,
		Permissioned: true,
	})
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	body, ct := multipartBody(t, map[string]string{"title": "Test Campaign", "goal": "2.0"}, "poster.png", []byte("0123456789"))
	resp, err := http.Post(srv.URL+"/campaign", ct, body)
	require.NoError(t, err)
	page := readBody(t, resp)
	assert.Contains(t, page, "Campaign created successfully")
	assert.NotContains(t, page, "deadline exceeded")

	ctx := context.Background()
	tok, err := tn.api.AuthNew(ctx, api.PermsUpTo(api.PermSign))
	require.NoError(t, err)
	headers := http.Header{}
	headers.Add("Authorization", "Bearer "+string(tok))

	addr := "ws://" + strings.TrimPrefix(srv.URL, "http://") + "/rpc/v0"
	c, closer, err := client.NewCrowdfundRPC(ctx, addr, headers)
	require.NoError(t, err)
	defer closer()

	rec, err := c.CampaignCreate(ctx, testParams())
	require.NoError(t, err)
	assert.Equal(t, "succeeded", rec.Stage)
	assert.Empty(t, rec.FailureKind)

	// the page itself is still served under the timeout
	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	readBody(t, resp)
}
