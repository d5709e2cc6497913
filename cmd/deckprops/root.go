package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pyyyc/deckprops/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix prefixes environment overrides, e.g. DECKPROPS_OUTPUT_FORMAT.
const envPrefix = "DECKPROPS"

// rootOptions holds global flags and the settings store shared by subcommands.
type rootOptions struct {
	cfgFile string
	verbose bool
	v       *viper.Viper
}

// newRootCmd builds the application entry point with all subcommands.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "deckprops",
		Short: "Validate meetup presentation descriptions",
		Long: `deckprops checks YAML descriptions of meetup presentations, slides
and decks against typed schemas. Every field is validated and coerced
on construction, and valid entities report a summary, time per slide
and whether their colors strain the eyes.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			initConfig(opts)
			setupLogging(opts.verbose)
		},
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.deckprops/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newCheckCmd(opts),
		newSchemaCmd(opts),
		newKindsCmd(opts),
		newNewCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// configureEnv enables DECKPROPS_* overrides for dotted keys.
func configureEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// initConfig loads configuration from the config file and environment.
func initConfig(opts *rootOptions) {
	if opts.cfgFile != "" {
		opts.v.SetConfigFile(opts.cfgFile)
	} else {
		path, err := system.DefaultConfigPath()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}
		opts.v.SetConfigFile(path)
	}
	opts.v.SetConfigType("yaml")

	configureEnv(opts.v)

	if err := opts.v.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", opts.v.ConfigFileUsed())
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
