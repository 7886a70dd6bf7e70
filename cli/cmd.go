package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/filecoin-project/go-jsonrpc"
	logging "github.com/ipfs/go-log/v2"
	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/api"
	"github.com/Borja291/Blockchain/api/client"
	"github.com/Borja291/Blockchain/node/repo"
)

var log = logging.Logger("cli")

const (
	metadataContext = "context"
	metadataTestAPI = "test-crowdfund-api"

	// EnvAPIInfo holds "token:multiaddr" of a daemon to talk to instead of
	// the one recorded in the repo.
	EnvAPIInfo = "CROWDFUND_API_INFO"
)

var Commands = []*cli.Command{
	campaignCmd,
	walletCmd,
	etherCmd,
	cidCmd,
	authCmd,
	versionCmd,
}

// APIInfo is how a client reaches the daemon.
type APIInfo struct {
	Addr  string
	Token []byte
}

func ParseAPIInfo(s string) (APIInfo, error) {
	var tok []byte
	if sp := strings.SplitN(s, ":", 2); len(sp) == 2 && !strings.HasPrefix(s, "/") {
		tok = []byte(sp[0])
		s = sp[1]
	}

	if _, err := multiaddr.NewMultiaddr(s); err != nil {
		return APIInfo{}, xerrors.Errorf("parsing api address %q: %w", s, err)
	}
	return APIInfo{Addr: s, Token: tok}, nil
}

// DialArgs returns the websocket url of the JSON-RPC endpoint.
func (a APIInfo) DialArgs() (string, error) {
	ma, err := multiaddr.NewMultiaddr(a.Addr)
	if err != nil {
		return "", err
	}

	_, addr, err := manet.DialArgs(ma)
	if err != nil {
		return "", xerrors.Errorf("resolving api address: %w", err)
	}
	return "ws://" + addr + "/rpc/v0", nil
}

func (a APIInfo) AuthHeader() http.Header {
	if len(a.Token) == 0 {
		log.Warn("API Token not set and requested, capabilities might be limited.")
		return nil
	}

	headers := http.Header{}
	headers.Add("Authorization", "Bearer "+string(a.Token))
	return headers
}

// GetAPIInfo reads the API info from the environment, falling back to the
// endpoint and token the daemon wrote into its repo.
func GetAPIInfo(cctx *cli.Context) (APIInfo, error) {
	if env, ok := os.LookupEnv(EnvAPIInfo); ok {
		return ParseAPIInfo(env)
	}

	r, err := repo.NewFS(cctx.String("repo"))
	if err != nil {
		return APIInfo{}, xerrors.Errorf("opening repo: %w", err)
	}

	ma, err := r.APIEndpoint()
	if err != nil {
		return APIInfo{}, xerrors.Errorf("could not get api endpoint: %w", err)
	}

	token, err := r.APIToken()
	if err != nil {
		log.Warnf("Couldn't load CLI token, capabilities may be limited: %v", err)
	}

	return APIInfo{Addr: ma.String(), Token: token}, nil
}

func GetCrowdfundAPI(cctx *cli.Context) (api.Crowdfund, jsonrpc.ClientCloser, error) {
	if tn, ok := cctx.App.Metadata[metadataTestAPI]; ok {
		return tn.(api.Crowdfund), func() {}, nil
	}

	ainfo, err := GetAPIInfo(cctx)
	if err != nil {
		return nil, nil, err
	}

	addr, err := ainfo.DialArgs()
	if err != nil {
		return nil, nil, xerrors.Errorf("could not get DialArgs: %w", err)
	}

	log.Debugf("using crowdfund API at %s", addr)
	return client.NewCrowdfundRPC(cctx.Context, addr, ainfo.AuthHeader())
}

// ReqContext returns context for cli execution. Calling it for the first time
// installs SIGTERM handler that will close returned context.
// Not safe for concurrent execution.
func ReqContext(cctx *cli.Context) context.Context {
	if uctx, ok := cctx.App.Metadata[metadataContext]; ok {
		// unchecked cast as if something else is in there
		// it is crash worthy either way
		return uctx.(context.Context)
	}

	tCtx := cctx.Context
	if tCtx == nil {
		tCtx = context.Background()
	}

	ctx, done := context.WithCancel(tCtx)
	sigChan := make(chan os.Signal, 2)
	go func() {
		<-sigChan
		done()
	}()
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	cctx.App.Metadata[metadataContext] = ctx
	return ctx
}
