package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var versionCmd = &cli.Command{
	Name:  "version",
	Usage: "Print version",
	Action: func(cctx *cli.Context) error {
		capi, closer, err := GetCrowdfundAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)

		v, err := capi.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, "Daemon: ", v)

		fmt.Fprint(cctx.App.Writer, "Local: ")
		cli.VersionPrinter(cctx)
		return nil
	},
}

