package main

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"

	"github.com/Borja291/Blockchain/build"
	lcli "github.com/Borja291/Blockchain/cli"
	"github.com/Borja291/Blockchain/lib/cflog"
	"github.com/Borja291/Blockchain/metrics"
	"github.com/Borja291/Blockchain/node/repo"
)

var log = logging.Logger("crowdfund")

func main() {
	cflog.SetupLogLevels()

	local := []*cli.Command{
		DaemonCmd,
		configCmd,
	}

	// Record the build info as a gauge in opencensus.
	ctx, _ := tag.New(context.Background(),
		tag.Insert(metrics.Version, build.BuildVersion),
		tag.Insert(metrics.Commit, build.CurrentCommit),
	)
	stats.Record(ctx, metrics.CrowdfundInfo.M(1))

	app := &cli.App{
		Name:                 "crowdfund",
		Usage:                "Store campaign files on IPFS and register crowdfunding campaigns on chain",
		Version:              build.UserVersion(),
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				EnvVars: []string{repo.EnvPath},
				Value:   repo.DefaultPath,
				Usage:   "repo directory holding config, keystore and API info",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
			},
		},
		Before: func(cctx *cli.Context) error {
			return logging.SetLogLevel("crowdfund", cctx.String("log-level"))
		},

		Commands: append(local, lcli.Commands...),
	}

	lcli.RunApp(app)
}
