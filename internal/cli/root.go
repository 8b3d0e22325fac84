package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"tweet-tipping/internal/app"
	"tweet-tipping/internal/config"
	"tweet-tipping/pkg/log"
	"tweet-tipping/pkg/log/transporters"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Wallet     string
	Format     string // "json" | "text"
	Verbose    bool

	// newApp builds the services; replaced in tests.
	newApp func(ctx context.Context, cfg *config.Config, logger *log.Logger) (*app.App, error)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for tipctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{
		newApp: func(ctx context.Context, cfg *config.Config, logger *log.Logger) (*app.App, error) {
			return app.New(ctx, cfg, logger, app.Options{NoPreview: true})
		},
	}

	cmd := &cobra.Command{
		Use:   "tipctl",
		Short: "Tip tweet authors and claim tips on Rooch",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $TIPPING_CONFIG or "+config.DefaultPath+")")
	cmd.PersistentFlags().StringVar(&opts.Wallet, "wallet", "", "wallet to sign with (default: first configured)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewTipCommand(opts))
	cmd.AddCommand(NewClaimCommand(opts))
	cmd.AddCommand(NewWalletsCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// open loads the config and wires the services. The returned func closes
// both the services and the logger.
func (o *RootOptions) open(cmd *cobra.Command) (*app.App, func(), error) {
	cfg, err := config.Load(config.Path(o.ConfigPath))
	if err != nil {
		return nil, nil, err
	}

	level := log.Error
	if o.Verbose {
		level, _ = log.ParseLevel(cfg.LogLevel)
	}
	logger := log.New(level, transporters.NewTextWithWriter(cmd.ErrOrStderr()))
	log.SetDefault(logger)

	a, err := o.newApp(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Close()
		return nil, nil, err
	}
	return a, func() {
		if err := a.Close(); err != nil {
			logger.Error("close services", "error", err)
		}
		logger.Close()
	}, nil
}

// connect opens the services and connects the selected wallet.
func (o *RootOptions) connect(cmd *cobra.Command) (*app.App, func(), error) {
	a, closeFn, err := o.open(cmd)
	if err != nil {
		return nil, nil, err
	}
	if _, err := a.Session.Connect(cmd.Context(), o.Wallet); err != nil {
		closeFn()
		return nil, nil, err
	}
	return a, closeFn, nil
}

// print writes v as JSON, or text as is.
func (o *RootOptions) print(w io.Writer, v any, text string) error {
	if o.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
