package cli

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

var cidCmd = &cli.Command{
	Name:  "cid",
	Usage: "Content identifier utilities",
	Subcommands: []*cli.Command{
		cidInspect,
	},
}

var cidInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "Decode a content identifier offline",
	ArgsUsage: "[cid]",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		c, err := cid.Decode(cctx.Args().First())
		if err != nil {
			return xerrors.Errorf("decoding cid: %w", err)
		}

		dmh, err := multihash.Decode(c.Hash())
		if err != nil {
			return xerrors.Errorf("decoding multihash: %w", err)
		}

		w := cctx.App.Writer
		fmt.Fprintf(w, "Version: %d\n", c.Version())
		fmt.Fprintf(w, "Codec: %s (0x%x)\n", codecName(c.Type()), c.Type())
		fmt.Fprintf(w, "Multihash: %s (%d bytes)\n", dmh.Name, dmh.Length)
		fmt.Fprintf(w, "Digest: %x\n", dmh.Digest)
		if c.Version() == 0 {
			fmt.Fprintf(w, "CIDv1: %s\n", cid.NewCidV1(c.Type(), c.Hash()))
		}
		return nil
	},
}

func codecName(code uint64) string {
	switch code {
	case cid.DagProtobuf:
		return "dag-pb"
	case cid.Raw:
		return "raw"
	case cid.DagCBOR:
		return "dag-cbor"
	default:
		return "unknown"
	}
}
