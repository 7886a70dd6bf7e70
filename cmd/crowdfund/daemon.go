package main

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gbrlsnchs/jwt/v3"
	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/stats"
	"go.uber.org/multierr"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/api"
	"github.com/Borja291/Blockchain/chain/crowdfunding"
	"github.com/Borja291/Blockchain/chain/wallet"
	lcli "github.com/Borja291/Blockchain/cli"
	"github.com/Borja291/Blockchain/metrics"
	"github.com/Borja291/Blockchain/node"
	"github.com/Borja291/Blockchain/node/config"
	"github.com/Borja291/Blockchain/node/impl/campaign"
	"github.com/Borja291/Blockchain/node/repo"
	"github.com/Borja291/Blockchain/storage/ipfs"
)

// DaemonCmd is the `crowdfund daemon` command
var DaemonCmd = &cli.Command{
	Name:  "daemon",
	Usage: "Start the submission form and API",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "api",
			Usage: "listen multiaddr, overrides API.ListenAddress",
		},
		&cli.BoolFlag{
			Name:  "disable-auth",
			Usage: "serve the JSON-RPC API without token checks",
		},
	},
	Action: func(cctx *cli.Context) (err error) {
		ctx := lcli.ReqContext(cctx)

		r, err := repo.NewFS(cctx.String("repo"))
		if err != nil {
			return xerrors.Errorf("opening fs repo: %w", err)
		}
		if err := r.Init(); err != nil && !xerrors.Is(err, repo.ErrRepoExists) {
			return xerrors.Errorf("repo init error: %w", err)
		}

		lr, err := r.Lock()
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, lr.Close())
		}()

		cfg, err := lr.Config()
		if err != nil {
			return xerrors.Errorf("loading config: %w", err)
		}
		if cctx.IsSet("api") {
			cfg.API.ListenAddress = cctx.String("api")
		}

		store, err := ipfs.NewClient(cfg.IPFS.APIAddress)
		if err != nil {
			return err
		}

		contract, err := crowdfunding.ParseAddress(cfg.Chain.ContractAddress)
		if err != nil {
			return xerrors.Errorf("Chain.ContractAddress: %w", err)
		}

		registry, ethc, err := crowdfunding.Dial(ctx, cfg.Chain.RPCAddress, contract)
		if err != nil {
			return err
		}
		defer ethc.Close()

		provider, err := walletProvider(cfg, lr.KeystorePath())
		if err != nil {
			return err
		}

		// Access is requested once. A refusal is remembered by the provider
		// and surfaces when a submission asks for a signer.
		if accts, err := provider.RequestAccounts(ctx); err != nil {
			stats.Record(ctx, metrics.WalletAuthorizeFailed.M(1))
			log.Errorf("wallet access refused, campaigns cannot be signed: %s", err)
		} else {
			log.Infow("wallet access granted", "accounts", len(accts))
		}

		hist, err := node.NewHistory(cfg.History.Size)
		if err != nil {
			return err
		}

		secret, err := lr.JWTSecret()
		if err != nil {
			return err
		}

		capi := &node.CrowdfundAPI{
			Workflow: campaign.New(store, registry, provider, campaign.Config{
				GatewayAddress:    cfg.IPFS.GatewayAddress,
				PinFailureIsFatal: cfg.IPFS.PinFailureIsFatal,
				ConfirmTimeout:    time.Duration(cfg.Chain.ConfirmTimeout),
			}),
			Wallet:         provider,
			History:        hist,
			GatewayAddress: cfg.IPFS.GatewayAddress,
			APISecret:      jwt.NewHS256(secret),
		}

		token, err := capi.AuthNew(ctx, api.AllPermissions)
		if err != nil {
			return xerrors.Errorf("creating admin token: %w", err)
		}
		if err := lr.SetAPIToken(token); err != nil {
			return xerrors.Errorf("writing api token: %w", err)
		}

		h, err := node.CrowdfundHandler(capi, node.HandlerConfig{
			Store:        store,
			Timeout:      time.Duration(cfg.API.Timeout),
			Permissioned: !cctx.Bool("disable-auth"),
		})
		if err != nil {
			return xerrors.Errorf("failed to instantiate rpc handler: %w", err)
		}

		endpoint, err := multiaddr.NewMultiaddr(cfg.API.ListenAddress)
		if err != nil {
			return xerrors.Errorf("parsing API.ListenAddress: %w", err)
		}

		stop, listening, err := node.ServeRPC(h, "crowdfund-daemon", endpoint)
		if err != nil {
			return xerrors.Errorf("failed to start json-rpc endpoint: %s", err)
		}
		if err := lr.SetAPIEndpoint(listening); err != nil {
			return xerrors.Errorf("writing api endpoint: %w", err)
		}

		log.Infow("crowdfund daemon started", "api", listening, "ipfs", cfg.IPFS.APIAddress, "chain", cfg.Chain.RPCAddress, "contract", contract.Hex())
		if _, hostport, err := manet.DialArgs(listening); err == nil {
			fmt.Fprintf(cctx.App.Writer, "Submission form at http://%s/\n", hostport) //nolint:errcheck
		}

		// Monitor for shutdown.
		finishCh := node.MonitorShutdown(ctx.Done(),
			node.ShutdownHandler{Component: "rpc server", StopFunc: stop},
		)
		<-finishCh
		return nil
	},
}

func walletProvider(cfg *config.Config, keystoreDir string) (wallet.Provider, error) {
	chainID := new(big.Int).SetUint64(cfg.Chain.ChainID)

	if key := os.Getenv(cfg.Wallet.PrivateKeyEnv); key != "" {
		log.Warnf("signing with the raw key from %s", cfg.Wallet.PrivateKeyEnv)
		kp, err := wallet.NewKeyProvider(key, chainID)
		if err != nil {
			return nil, xerrors.Errorf("%s: %w", cfg.Wallet.PrivateKeyEnv, err)
		}
		return kp, nil
	}

	var account common.Address
	if cfg.Wallet.Account != "" {
		if !common.IsHexAddress(cfg.Wallet.Account) {
			return nil, xerrors.Errorf("Wallet.Account %q is not an address", cfg.Wallet.Account)
		}
		account = common.HexToAddress(cfg.Wallet.Account)
	}

	ks := wallet.OpenKeystore(keystoreDir)
	return wallet.NewKeystoreProvider(ks, account, os.Getenv(cfg.Wallet.PassphraseEnv), chainID), nil
}

