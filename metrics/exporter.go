package metrics

import (
	"net/http"
	"sync"

	"contrib.go.opencensus.io/exporter/prometheus"
	promclient "github.com/prometheus/client_golang/prometheus"
	"golang.org/x/xerrors"
)

var (
	exporterOnce sync.Once
	exporter     http.Handler
	exporterErr  error
)

// Exporter returns the prometheus handler serving every registered view. The
// exporter is registered with the default registry once per process.
func Exporter() (http.Handler, error) {
	exporterOnce.Do(func() {
		registry, ok := promclient.DefaultRegisterer.(*promclient.Registry)
		if !ok {
			exporterErr = xerrors.Errorf("unexpected default registerer type %T", promclient.DefaultRegisterer)
			return
		}

		exporter, exporterErr = prometheus.NewExporter(prometheus.Options{
			Registry:  registry,
			Namespace: "crowdfund",
		})
		if exporterErr != nil {
			exporterErr = xerrors.Errorf("could not create the prometheus stats exporter: %w", exporterErr)
		}
	})
	return exporter, exporterErr
}
