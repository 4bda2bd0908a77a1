package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bibbank/claims-dashboard/internal/infrastructure/config"
	"github.com/bibbank/claims-dashboard/pkg/observability"
)

var version = "dev"

// app carries state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	cfgFile string
	envFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "claimsd",
		Short: "Insurance claims triage dashboard",
		Long: `claimsd evaluates insurance claims for fraud risk and claim size and
serves an interactive dashboard, a JSON API and a gRPC service over them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded into the environment if present")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "json", "log format (json, text)")
	root.PersistentFlags().String("source", config.SourceFixture, "claims source (fixture, file, postgres)")
	root.PersistentFlags().String("claims-file", "", "YAML claims file for --source=file")

	_ = a.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", root.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("claims_source", root.PersistentFlags().Lookup("source"))
	_ = a.v.BindPFlag("claims_file", root.PersistentFlags().Lookup("claims-file"))

	root.AddCommand(a.serveCmd())
	root.AddCommand(a.claimsCmd())
	root.AddCommand(a.migrateCmd())
	root.AddCommand(a.seedCmd())
	root.AddCommand(versionCmd())

	return root
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFile(a.envFile); err != nil {
		return err
	}
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	a.logger = observability.InitLogger(observability.LogConfig{
		Output: cmd.ErrOrStderr(),
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	return nil
}

// loadEnvFile exports the variables in path without overriding ones already
// set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "claimsd %s\n", version)
		},
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
