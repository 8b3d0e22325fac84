package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/usecases"
)

// ErrWorkflowFailed is returned when a tip or claim did not succeed, so the
// process exits non-zero.
var ErrWorkflowFailed = errors.New("workflow did not succeed")

// NewResolveCommand creates the resolve command.
func NewResolveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <tweet-url>",
		Short: "Ask the oracle for a tweet's author id",
		Long: `Request ingestion of the tweet and poll the chain until the oracle
has written its author id.

Example:
  tipctl resolve https://x.com/RoochNetwork/status/1800000000000000`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeFn, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			ref, err := domain.ParseTweetReference(args[0], a.Config.Tweets.AllowedHosts)
			if err != nil {
				return err
			}
			res, err := a.Resolver.Execute(cmd.Context(), ref)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), res,
				fmt.Sprintf("tweet %s: author %s (%d attempts)", res.TweetID, res.AuthorID, res.Attempts))
		},
	}
}

// NewTipCommand creates the tip command.
func NewTipCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tip <tweet-url> <amount>",
		Short: "Send RGAS to the author of a tweet",
		Long: `Send RGAS to the author of a tweet. The amount is in RGAS with up to
8 decimals.

Example:
  tipctl tip https://x.com/RoochNetwork/status/1800000000000000 0.5 --wallet bridge`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeFn, err := opts.connect(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := a.Tip.Execute(cmd.Context(), usecases.TipRequest{URL: args[0], Amount: args[1]})
			if err != nil {
				return err
			}
			return opts.report(cmd, res)
		},
	}
}

// NewClaimCommand creates the claim command.
func NewClaimCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "claim",
		Short:         "Claim the tips received by the connected account",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeFn, err := opts.connect(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := a.Claim.Execute(cmd.Context())
			if err != nil {
				return err
			}
			return opts.report(cmd, res)
		},
	}
}

// report prints a workflow result and fails unless it succeeded.
func (o *RootOptions) report(cmd *cobra.Command, res usecases.Result) error {
	var lines []string
	if res.Notice != nil {
		lines = append(lines, res.Notice.Message)
	} else {
		lines = append(lines, string(res.Outcome))
	}
	if res.TxHash != "" {
		lines = append(lines, "tx: "+res.TxHash)
	}
	if err := o.print(cmd.OutOrStdout(), res, strings.Join(lines, "\n")); err != nil {
		return err
	}
	if res.Outcome != domain.OutcomeSucceeded {
		return fmt.Errorf("%w: %s", ErrWorkflowFailed, res.Outcome)
	}
	return nil
}

// NewWalletsCommand creates the wallets command.
func NewWalletsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "wallets",
		Short:         "List the configured wallets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeFn, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			if opts.Format == "json" {
				return opts.print(cmd.OutOrStdout(), a.Config.Wallets, "")
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tURL")
			for _, w := range a.Config.Wallets {
				fmt.Fprintf(tw, "%s\t%s\n", w.Name, w.URL)
			}
			return tw.Flush()
		},
	}
}

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	TweetID string
	Limit   int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "Show recorded tips and claims",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeFn, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			if a.Ledger == nil {
				return errors.New("no ledger configured")
			}
			var entries []domain.LedgerEntry
			if opts.TweetID != "" {
				entries, err = a.Ledger.ByTweet(cmd.Context(), opts.TweetID)
			} else {
				entries, err = a.Ledger.Recent(cmd.Context(), opts.Limit)
			}
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				return opts.print(cmd.OutOrStdout(), entries, "")
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tEVENT\tTWEET\tAMOUNT\tTX")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					e.CreatedAt.Format("2006-01-02 15:04:05"), e.EventName(), e.TweetID, e.Amount, e.TxHash)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.TweetID, "tweet", "", "only entries for this tweet id")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "number of entries")

	return cmd
}
