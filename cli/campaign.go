package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/api"
)

var campaignCmd = &cli.Command{
	Name:  "campaign",
	Usage: "Create and inspect crowdfunding campaigns",
	Subcommands: []*cli.Command{
		CampaignCreateCmd,
		CampaignListCmd,
		CampaignGetCmd,
		CampaignFormCmd,
	},
}

var CampaignCreateCmd = &cli.Command{
	Name:      "create",
	Usage:     "Store a file and register a campaign referencing it",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "title",
			Usage:    "campaign title",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "goal",
			Usage:    "funding goal in ETH, e.g. 1.5",
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		path := cctx.Args().First()
		data, err := os.ReadFile(path)
		if err != nil {
			return xerrors.Errorf("reading campaign file: %w", err)
		}

		capi, closer, err := GetCrowdfundAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		rec, err := capi.CampaignCreate(ctx, api.CampaignParams{
			Title:    cctx.String("title"),
			Goal:     cctx.String("goal"),
			FileName: filepath.Base(path),
			File:     data,
		})
		if err != nil {
			return err
		}

		w := cctx.App.Writer
		if rec.ContentID != "" {
			fmt.Fprintf(w, "Content ID: %s\n", rec.ContentID)
			fmt.Fprintf(w, "Link: %s\n", rec.GatewayURL)
		}
		if rec.TxHash != "" {
			fmt.Fprintf(w, "Transaction: %s\n", rec.TxHash)
		}

		if rec.Failed() {
			return xerrors.New(rec.Message)
		}

		fmt.Fprintln(w, color.GreenString(rec.Message))
		return nil
	},
}

var CampaignListCmd = &cli.Command{
	Name:  "list",
	Usage: "List recent campaign submissions",
	Action: func(cctx *cli.Context) error {
		capi, closer, err := GetCrowdfundAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		recs, err := capi.CampaignList(ctx)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cctx.App.Writer, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "ID\tTitle\tGoal\tContent ID\tStage\tTook\tMessage\n")
		for _, r := range recs {
			stage := color.GreenString(r.Stage)
			if r.Failed() {
				stage = color.RedString(r.Stage)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s ETH\t%s\t%s\t%s\t%s\n",
				r.ID, r.Title, r.Goal, orDash(r.ContentID), stage, Took(r.Started, r.Finished), r.Message)
		}
		return tw.Flush()
	},
}

var CampaignGetCmd = &cli.Command{
	Name:      "get",
	Usage:     "Show one campaign submission",
	ArgsUsage: "[id]",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		id, err := uuid.Parse(cctx.Args().First())
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing submission id: %w", err))
		}

		capi, closer, err := GetCrowdfundAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		r, err := capi.CampaignGet(ctx, id)
		if err != nil {
			return err
		}

		w := cctx.App.Writer
		fmt.Fprintf(w, "ID: %s\n", r.ID)
		fmt.Fprintf(w, "Title: %s\n", r.Title)
		fmt.Fprintf(w, "Goal: %s ETH\n", r.Goal)
		fmt.Fprintf(w, "Content ID: %s\n", orDash(r.ContentID))
		if r.GatewayURL != "" {
			fmt.Fprintf(w, "Link: %s\n", r.GatewayURL)
		}
		fmt.Fprintf(w, "Transaction: %s\n", orDash(r.TxHash))
		if r.BlockNumber != 0 {
			fmt.Fprintf(w, "Block: %d\n", r.BlockNumber)
		}
		if r.Failed() {
			fmt.Fprintf(w, "Stage: %s (%s, %s)\n", color.RedString(r.Stage), r.FailureKind, r.FailureStep)
		} else {
			fmt.Fprintf(w, "Stage: %s\n", color.GreenString(r.Stage))
		}
		fmt.Fprintf(w, "Took: %s\n", Took(r.Started, r.Finished))
		fmt.Fprintf(w, "Message: %s\n", r.Message)
		return nil
	},
}

var CampaignFormCmd = &cli.Command{
	Name:  "form",
	Usage: "Show the state of the submission form",
	Action: func(cctx *cli.Context) error {
		capi, closer, err := GetCrowdfundAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		fs, err := capi.FormState(ctx)
		if err != nil {
			return err
		}

		w := cctx.App.Writer
		fmt.Fprintf(w, "Stage: %s\n", fs.Stage)
		fmt.Fprintf(w, "Title: %s\n", orDash(fs.Title))
		fmt.Fprintf(w, "Goal: %s\n", orDash(fs.Goal))
		if fs.FileName != "" {
			fmt.Fprintf(w, "File: %s (%s)\n", fs.FileName, humanize.IBytes(uint64(fs.FileSize)))
		} else {
			fmt.Fprintf(w, "File: -\n")
		}
		fmt.Fprintf(w, "Content ID: %s\n", orDash(fs.ContentID))
		if fs.GatewayURL != "" {
			fmt.Fprintf(w, "Link: %s\n", fs.GatewayURL)
		}
		if fs.Message != "" {
			fmt.Fprintf(w, "Message: %s\n", fs.Message)
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
