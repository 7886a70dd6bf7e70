package cli

import (
	"fmt"

	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/api"
)

var authCmd = &cli.Command{
	Name:  "auth",
	Usage: "Manage RPC permissions",
	Subcommands: []*cli.Command{
		AuthCreateAdminToken,
	},
}

var AuthCreateAdminToken = &cli.Command{
	Name:  "create-token",
	Usage: "Create token",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "perm",
			Usage: "permission to assign to the token, one of: read, write, sign, admin",
		},
	},

	Action: func(cctx *cli.Context) error {
		capi, closer, err := GetCrowdfundAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)

		if !cctx.IsSet("perm") {
			return xerrors.New("--perm flag not set")
		}

		// 'sign' gives you [read, write, sign]
		perms := api.PermsUpTo(auth.Permission(cctx.String("perm")))
		if perms == nil {
			return fmt.Errorf("--perm flag has to be one of: %s", api.AllPermissions)
		}

		token, err := capi.AuthNew(ctx, perms)
		if err != nil {
			return err
		}

		fmt.Fprintln(cctx.App.Writer, string(token))
		return nil
	},
}
