package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/LeJamon/goXRPLwallet/internal/config"
	"github.com/LeJamon/goXRPLwallet/internal/core/explain"
	"github.com/LeJamon/goXRPLwallet/internal/logging"
	"github.com/LeJamon/goXRPLwallet/internal/lookup"
)

// Version is set at build time with -ldflags.
var Version = "0.1.0-dev"

// app holds what every command shares once flags and configuration are read.
type app struct {
	// Global flags
	configFile string
	debug      bool
	output     string

	cfg *config.Config
	log *zap.Logger

	// openLookup connects the ledger lookup used by validate.
	openLookup func(ctx context.Context, cfg config.LookupConfig, log *zap.Logger) (explain.LedgerLookup, io.Closer, error)
}

func newApp() *app {
	return &app{openLookup: lookup.Open}
}

// rootCmd builds the command tree
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "xrplwallet",
		Short: "xrplwallet - XRP Ledger transaction toolkit",
		Long: `xrplwallet models XRP Ledger transactions and ledger objects the way a
wallet shows them: it decodes currencies and amounts, explains transactions
with their balance changes, checks them against the live ledger before
submission and prints the bytes to sign.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "conf", "", "configuration file path (default ./"+config.DefaultConfigName+" when present)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable normally suppressed debug logging")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text or json (overrides the configuration)")

	root.AddCommand(
		a.currencyCmd(),
		a.amountCmd(),
		a.nftCmd(),
		a.explainCmd(),
		a.validateCmd(),
		a.signingPayloadCmd(),
		a.versionCmd(),
	)
	return root
}

// Execute runs the command line. This is called by main.main().
func Execute() {
	if err := newApp().rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads the configuration file and environment and builds the
// logger
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.output != "" {
		if err := config.ValidateOutputFormat(a.output); err != nil {
			return err
		}
		cfg.Output.Format = a.output
	}

	log, err := logging.New(cfg.Log, a.debug)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded",
		zap.String("path", cfg.GetConfigPath()),
		zap.String("command", cmd.Name()))

	a.cfg = cfg
	a.log = log
	return nil
}

// view builds the explanation viewpoint from configuration and flags
func (a *app) view(account, lang string) (explain.View, error) {
	v := explain.View{Account: a.cfg.Explain.Account}
	if account != "" {
		v.Account = account
	}

	tag, err := a.cfg.Explain.LanguageTag()
	if err != nil {
		return explain.View{}, err
	}
	if lang != "" {
		if tag, err = language.Parse(lang); err != nil {
			return explain.View{}, fmt.Errorf("invalid language %q: %w", lang, err)
		}
	}
	v.Language = tag
	return v, nil
}

// print writes v as indented JSON or through text
func (a *app) print(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if !a.cfg.JSONOutput() {
		text(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readInput reads a file argument, "-" meaning standard input
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
