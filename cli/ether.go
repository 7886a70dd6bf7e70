package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Borja291/Blockchain/chain/types"
)

var etherCmd = &cli.Command{
	Name:  "ether",
	Usage: "Ether amount utilities",
	Subcommands: []*cli.Command{
		etherParse,
	},
}

var etherParse = &cli.Command{
	Name:      "parse",
	Usage:     "Print the wei value of a decimal ether amount",
	ArgsUsage: "[amount]",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		v, err := types.ParseEther(cctx.Args().First())
		if err != nil {
			return ShowHelp(cctx, err)
		}

		fmt.Fprintln(cctx.App.Writer, v.Wei().String())
		return nil
	},
}
