package node

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/filecoin-project/go-jsonrpc"
	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/gorilla/mux"
	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"go.opencensus.io/tag"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/api"
	"github.com/Borja291/Blockchain/metrics"
	"github.com/Borja291/Blockchain/metrics/proxy"
)

// HandlerConfig configures the daemon's HTTP surface.
type HandlerConfig struct {
	// Store is probed by the readiness check.
	Store StoreVersioner
	// Timeout bounds the page, health and metrics requests, zero leaves them
	// unbounded. Campaign submissions over the form or the API are bounded
	// only by the request context.
	Timeout time.Duration
	// Permissioned enables token checks on the JSON-RPC API.
	Permissioned bool
}

// CrowdfundHandler returns a handler serving the submission form, the
// JSON-RPC API, metrics and health endpoints.
func CrowdfundHandler(a api.Crowdfund, cfg HandlerConfig) (http.Handler, error) {
	m := mux.NewRouter()

	rpcServer := jsonrpc.NewServer(jsonrpc.WithServerErrors(api.RPCErrors))

	wapi := proxy.MetricedCrowdfundAPI(a)
	f := &front{api: wapi}

	if cfg.Permissioned {
		wapi = api.PermissionedCrowdfundAPI(wapi)
	}

	rpcServer.Register("Crowdfund", wapi)

	var rpc http.Handler = rpcServer
	if cfg.Permissioned {
		rpc = &auth.Handler{
			Verify: a.AuthVerify,
			Next:   rpcServer.ServeHTTP,
		}
	}
	m.Handle("/rpc/v0", rpc)

	exporter, err := metrics.Exporter()
	if err != nil {
		return nil, err
	}
	m.Handle("/debug/metrics", withTimeout(exporter, cfg.Timeout))

	m.Handle("/health/livez", withTimeout(NewLiveHandler(), cfg.Timeout))
	m.Handle("/health/readyz", withTimeout(NewReadyHandler(cfg.Store), cfg.Timeout))

	m.Handle("/", withTimeout(http.HandlerFunc(f.index), cfg.Timeout)).Methods(http.MethodGet)
	m.HandleFunc("/campaign", f.submit).Methods(http.MethodPost)

	return m, nil
}

func withTimeout(h http.Handler, d time.Duration) http.Handler {
	if d <= 0 {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ServeRPC serves an HTTP handler over the supplied listen multiaddr.
//
// This function spawns a goroutine to run the server, and returns immediately.
// It returns the stop function to be called to terminate the endpoint and the
// address the server actually listens on.
//
// The supplied ID is used in tracing, by inserting a tag in the context.
func ServeRPC(h http.Handler, id string, addr multiaddr.Multiaddr) (StopFunc, multiaddr.Multiaddr, error) {
	// Start listening to the addr; if invalid or occupied, we will fail early.
	lst, err := manet.Listen(addr)
	if err != nil {
		return nil, nil, xerrors.Errorf("could not listen: %w", err)
	}

	// Instantiate the server and start listening.
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 30 * time.Second,
		BaseContext: func(listener net.Listener) context.Context {
			ctx, _ := tag.New(context.Background(), tag.Upsert(metrics.APIInterface, id))
			return ctx
		},
	}

	go func() {
		err := srv.Serve(manet.NetListener(lst))
		if err != http.ErrServerClosed {
			log.Warnf("rpc server failed: %s", err)
		}
	}()

	return srv.Shutdown, lst.Multiaddr(), err
}
