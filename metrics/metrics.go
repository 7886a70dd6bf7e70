package metrics

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"

	rpcmetrics "github.com/filecoin-project/go-jsonrpc/metrics"
)

// Distributions
var defaultMillisecondsDistribution = view.Distribution(
	0.01, 0.05, 0.1, 0.3, 0.6, 0.8, 1, 2, 3, 4, 5, 6, 8, // Very short intervals for fast operations
	10, 20, 30, 40, 50, 60, 70, 80, 90, 100, // 10 ms intervals up to 100 ms
	150, 200, 250, 300, 350, 400, 450, 500, // 50 ms intervals from 100 to 500 ms
	600, 700, 800, 900, 1000, // 100 ms intervals from 500 to 1000 ms
	2000, 3000, 4000, 5000, 6000, 8000, 10000, 13000, 16000, 20000, 25000, 30000, 40000, 50000, 65000, 80000, 100000,
)

// confirmation waits span one or more blocks
var confirmMillisecondsDistribution = view.Distribution(
	100, 250, 500, 1000, 2000, 3000, 5000, 8000, 12_000, 15_000, 20_000, 30_000, 45_000, 60_000,
	2*60_000, 5*60_000, 10*60_000, 30*60_000,
)

var fileSizeDistribution = view.Distribution(
	0, 1<<10, 16<<10, 64<<10, 256<<10, 1<<20, 4<<20, 16<<20, 64<<20, 256<<20, 1<<30,
)

// Tags
var (
	Version, _      = tag.NewKey("version")
	Commit, _       = tag.NewKey("commit")
	FailureType, _  = tag.NewKey("failure_type")
	Step, _         = tag.NewKey("step")
	Endpoint, _     = tag.NewKey("endpoint")
	APIInterface, _ = tag.NewKey("api")
)

// Measures
var (
	CrowdfundInfo      = stats.Int64("info", "Arbitrary counter to tag crowdfund info to", stats.UnitDimensionless)
	APIRequestDuration = stats.Float64("api/request_duration_ms", "Duration of API requests", stats.UnitMilliseconds)

	CampaignSubmitted     = stats.Int64("campaign/submitted", "Counter for campaign submissions", stats.UnitDimensionless)
	CampaignSucceeded     = stats.Int64("campaign/succeeded", "Counter for campaigns confirmed on chain", stats.UnitDimensionless)
	CampaignFailed        = stats.Int64("campaign/failed", "Counter for failed campaign submissions", stats.UnitDimensionless)
	CampaignFileSize      = stats.Int64("campaign/file_size", "Size of files submitted with campaigns", stats.UnitBytes)
	PinFailureIgnored     = stats.Int64("campaign/pin_failure_ignored", "Counter for mfs copy failures downgraded to warnings", stats.UnitDimensionless)
	StoreDuration         = stats.Float64("campaign/store_ms", "Duration of adding a file to ipfs", stats.UnitMilliseconds)
	PinDuration           = stats.Float64("campaign/pin_ms", "Duration of copying a file into mfs", stats.UnitMilliseconds)
	ChainSubmitDuration   = stats.Float64("campaign/chain_submit_ms", "Duration of signing and submitting the campaign transaction", stats.UnitMilliseconds)
	ChainConfirmDuration  = stats.Float64("campaign/chain_confirm_ms", "Duration of waiting for the campaign transaction receipt", stats.UnitMilliseconds)
	WalletAuthorizeFailed = stats.Int64("wallet/authorize_failed", "Counter for refused wallet account access", stats.UnitDimensionless)
)

var (
	InfoView = &view.View{
		Name:        "info",
		Description: "Crowdfund node information",
		Measure:     CrowdfundInfo,
		Aggregation: view.LastValue(),
		TagKeys:     []tag.Key{Version, Commit},
	}
	APIRequestDurationView = &view.View{
		Measure:     APIRequestDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{APIInterface, Endpoint},
	}
	CampaignSubmittedView = &view.View{
		Measure:     CampaignSubmitted,
		Aggregation: view.Count(),
	}
	CampaignSucceededView = &view.View{
		Measure:     CampaignSucceeded,
		Aggregation: view.Count(),
	}
	CampaignFailedView = &view.View{
		Measure:     CampaignFailed,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{FailureType, Step},
	}
	CampaignFileSizeView = &view.View{
		Measure:     CampaignFileSize,
		Aggregation: fileSizeDistribution,
	}
	PinFailureIgnoredView = &view.View{
		Measure:     PinFailureIgnored,
		Aggregation: view.Count(),
	}
	StoreDurationView = &view.View{
		Measure:     StoreDuration,
		Aggregation: defaultMillisecondsDistribution,
	}
	PinDurationView = &view.View{
		Measure:     PinDuration,
		Aggregation: defaultMillisecondsDistribution,
	}
	ChainSubmitDurationView = &view.View{
		Measure:     ChainSubmitDuration,
		Aggregation: defaultMillisecondsDistribution,
	}
	ChainConfirmDurationView = &view.View{
		Measure:     ChainConfirmDuration,
		Aggregation: confirmMillisecondsDistribution,
	}
	WalletAuthorizeFailedView = &view.View{
		Measure:     WalletAuthorizeFailed,
		Aggregation: view.Count(),
	}
)

var views = []*view.View{
	InfoView,
	APIRequestDurationView,
}

// DefaultViews is an array of OpenCensus views for metric gathering purposes
var DefaultViews = func() []*view.View {
	return views
}()

// RegisterViews adds views to the default list without modifying this file.
func RegisterViews(v ...*view.View) {
	views = append(views, v...)
}

func init() {
	RegisterViews(rpcmetrics.DefaultViews...)
}

var CampaignViews = append([]*view.View{
	CampaignSubmittedView,
	CampaignSucceededView,
	CampaignFailedView,
	CampaignFileSizeView,
	PinFailureIgnoredView,
	StoreDurationView,
	PinDurationView,
	ChainSubmitDurationView,
	ChainConfirmDurationView,
	WalletAuthorizeFailedView,
}, DefaultViews...)

// SinceInMilliseconds returns the duration of time since the provide time as a float64.
func SinceInMilliseconds(startTime time.Time) float64 {
	return float64(time.Since(startTime).Milliseconds())
}

// Timer is a function stopwatch, calling it starts the timer,
// calling the returned function will record the duration.
func Timer(ctx context.Context, m *stats.Float64Measure) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		stats.Record(ctx, m.M(SinceInMilliseconds(start)))
		return time.Since(start)
	}
}

// RecordFailure counts a failed submission under its failure kind and step.
func RecordFailure(ctx context.Context, kind, step string) {
	_ = stats.RecordWithTags(ctx, []tag.Mutator{
		tag.Upsert(FailureType, kind),
		tag.Upsert(Step, step),
	}, CampaignFailed.M(1))
}
