package node

import (
	"context"
	"net/http"

	"github.com/Borja291/Blockchain/storage/ipfs"
)

// StoreVersioner is the storage node probe readiness depends on.
type StoreVersioner interface {
	Version(ctx context.Context) (ipfs.VersionInfo, error)
}

// NewLiveHandler reports the process is up.
func NewLiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// NewReadyHandler reports ready once the storage node answers.
func NewReadyHandler(store StoreVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := store.Version(r.Context())
		if err != nil {
			log.Warnf("readiness check: ipfs node unavailable: %s", err)
			http.Error(w, "ipfs node unavailable: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok, ipfs " + v.Version))
	}
}
