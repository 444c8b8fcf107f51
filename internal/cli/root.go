package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CodeStranger-Fred/rlmetrics/internal/config"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var (
	configFile string
	settings   = config.New()
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rlmetrics",
	Short: "Live charts of reinforcement-learning episode metrics",
	Long: `rlmetrics records reward, loss, discount factor and exploration rate for
each finished episode and redraws a stacked line chart after every one.

The chart can be kept in a file (HTML or PNG), redrawn in the terminal, or
served over HTTP for a browser to follow.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(settings, configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))
		slog.SetDefault(logger)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rlmetrics %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./rlmetrics.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	bindFlag(settings, "log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(replayCmd)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}
