package main

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/node/config"
	"github.com/Borja291/Blockchain/node/repo"
)

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "Manage daemon config",
	Subcommands: []*cli.Command{
		configDefaultCmd,
		configUpdatedCmd,
	},
}

var configDefaultCmd = &cli.Command{
	Name:  "default",
	Usage: "Print default daemon config",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "no-comment",
			Usage: "don't comment default values",
		},
	},
	Action: func(cctx *cli.Context) error {
		return printConfig(cctx, config.Default(), !cctx.Bool("no-comment"))
	},
}

var configUpdatedCmd = &cli.Command{
	Name:  "updated",
	Usage: "Print the config in effect, with file and environment overrides applied",
	Action: func(cctx *cli.Context) error {
		r, err := repo.NewFS(cctx.String("repo"))
		if err != nil {
			return err
		}

		ok, err := r.Exists()
		if err != nil {
			return err
		}
		if !ok {
			return xerrors.Errorf("repo not initialized")
		}

		cfg, err := r.Config()
		if err != nil {
			return xerrors.Errorf("loading repo config: %w", err)
		}
		return printConfig(cctx, cfg, false)
	},
}

func printConfig(cctx *cli.Context, cfg *config.Config, comment bool) error {
	if comment {
		cb, err := config.ConfigComment(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cctx.App.Writer, string(cb))
		return err
	}

	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return xerrors.Errorf("encoding config: %w", err)
	}
	_, err := fmt.Fprintln(cctx.App.Writer, buf.String())
	return err
}
