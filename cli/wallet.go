package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/chain/wallet"
	"github.com/Borja291/Blockchain/node/repo"
)

var walletCmd = &cli.Command{
	Name:  "wallet",
	Usage: "Manage the keystore accounts campaigns are signed with",
	Subcommands: []*cli.Command{
		walletNew,
		walletList,
	},
}

func openRepo(cctx *cli.Context) (*repo.FsRepo, error) {
	r, err := repo.NewFS(cctx.String("repo"))
	if err != nil {
		return nil, xerrors.Errorf("opening repo: %w", err)
	}
	if err := r.Init(); err != nil && !xerrors.Is(err, repo.ErrRepoExists) {
		return nil, xerrors.Errorf("initializing repo: %w", err)
	}
	return r, nil
}

var walletNew = &cli.Command{
	Name:  "new",
	Usage: "Generate a new account in the repo keystore",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 0 {
			return IncorrectNumArgs(cctx)
		}

		r, err := openRepo(cctx)
		if err != nil {
			return err
		}

		cfg, err := r.Config()
		if err != nil {
			return xerrors.Errorf("loading config: %w", err)
		}

		pass, err := ReadPassphrase(cfg.Wallet.PassphraseEnv, "Passphrase: ")
		if err != nil {
			return err
		}

		addr, err := wallet.NewAccount(wallet.OpenKeystore(r.KeystorePath()), pass)
		if err != nil {
			return err
		}

		fmt.Fprintln(cctx.App.Writer, addr.Hex())
		return nil
	},
}

var walletList = &cli.Command{
	Name:  "list",
	Usage: "List accounts in the repo keystore",
	Action: func(cctx *cli.Context) error {
		r, err := openRepo(cctx)
		if err != nil {
			return err
		}

		for _, addr := range wallet.ListAccounts(wallet.OpenKeystore(r.KeystorePath())) {
			fmt.Fprintln(cctx.App.Writer, addr.Hex())
		}
		return nil
	},
}
