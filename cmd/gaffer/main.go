package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gafferbot/fplgaffer/internal/app"
	"github.com/gafferbot/fplgaffer/internal/config"
	"github.com/gafferbot/fplgaffer/internal/platform/logging"
)

func main() {
	// Missing .env is fine; environment variables alone can configure a run.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer logger.Sync()
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg, logger).ExecuteContext(ctx); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, logger *logging.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "gaffer",
		Short:         "Fantasy Premier League transfer and wildcard decision aid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTransferCmd(cfg, logger))
	root.AddCommand(newWildcardCmd(cfg, logger))
	return root
}

func newTransferCmd(cfg config.Config, logger *logging.Logger) *cobra.Command {
	var (
		teamID       int64
		replacements int
		profile      string
		noAI         bool
	)
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Rate your current squad and suggest affordable upgrades",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.New(cfg, logger).RunTransfer(cmd.Context(), teamID, replacements, profile, noAI)
		},
	}
	cmd.Flags().Int64Var(&teamID, "team-id", 0, "manager entry id (defaults to FPL_TEAM_ID)")
	cmd.Flags().IntVar(&replacements, "replacements", 0, "candidates per squad member (defaults to REPLACEMENT_LIMIT)")
	cmd.Flags().StringVar(&profile, "profile", "", "weight profile override: transfer or wildcard")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "skip the AI verdict section")
	return cmd
}

func newWildcardCmd(cfg config.Config, logger *logging.Logger) *cobra.Command {
	var (
		squadValue float64
		profile    string
		noAI       bool
	)
	cmd := &cobra.Command{
		Use:   "wildcard",
		Short: "Rate the full player pool for a from-scratch squad build",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.New(cfg, logger).RunWildcard(cmd.Context(), squadValue, profile, noAI)
		},
	}
	cmd.Flags().Float64Var(&squadValue, "squad-value", 100.0, "total budget in millions")
	cmd.Flags().StringVar(&profile, "profile", "", "weight profile override: transfer or wildcard")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "skip the AI verdict section")
	return cmd
}
