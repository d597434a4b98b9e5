package cli

import (
	"fmt"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/meenmo/rateindex/calendar"
	"github.com/meenmo/rateindex/index"
	"github.com/meenmo/rateindex/internal/config"
	"github.com/meenmo/rateindex/internal/indexdata"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"

	// Set by the root command before any subcommand runs.
	registry  *index.Registry
	calendars *calendar.Set
}

const defaultConfigPath = "ovnidx.toml"

// NewRootCommand creates the root command for the ovnidx CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ovnidx",
		Short: "Overnight rate index dates",
		Long: `Look up overnight rate indices such as GBP-SONIA or USD-SOFR and derive
their publication, effective and maturity dates from a fixing date.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", defaultConfigPath, "path to configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (json|text)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewDatesCommand(opts))
	cmd.AddCommand(NewFixingCommand(opts))
	cmd.AddCommand(NewCalendarCommand(opts))

	return cmd
}

// setup loads configuration, installs the logger and builds the registry.
func setup(cmd *cobra.Command, opts *RootOptions) error {
	required := cmd.Flags().Changed("config")
	cfg, err := config.Load(opts.ConfigPath, required)
	if err != nil {
		return err
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts.Format = cfg.Format

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	dataOpts := indexdata.Options{
		Holidays:    cfg.Holidays,
		Definitions: cfg.Definitions,
		Logger:      logger,
	}
	cals, err := indexdata.Calendars(dataOpts)
	if err != nil {
		return fmt.Errorf("load calendars: %w", err)
	}
	reg, err := indexdata.Registry(cals, dataOpts)
	if err != nil {
		return fmt.Errorf("load indices: %w", err)
	}
	opts.calendars = cals
	opts.registry = reg
	return nil
}
