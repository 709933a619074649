package app

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/gafferbot/fplgaffer/external/fplapi"
	"github.com/gafferbot/fplgaffer/external/groq"
	"github.com/gafferbot/fplgaffer/internal/config"
	"github.com/gafferbot/fplgaffer/internal/interfaces/report"
	"github.com/gafferbot/fplgaffer/internal/platform/logging"
	"github.com/gafferbot/fplgaffer/internal/platform/resilience"
	"github.com/gafferbot/fplgaffer/internal/usecase"
)

// App wires the gateways and services for one CLI invocation.
type App struct {
	cfg             config.Config
	logger          *logging.Logger
	recommendations *usecase.RecommendationService
	advisor         *usecase.AdvisorService
	aiEnabled       bool
}

func New(cfg config.Config, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}

	breakerCfg := resilience.CircuitBreakerConfig{
		Enabled:          cfg.FPLCircuitEnabled,
		FailureThreshold: cfg.FPLCircuitFailureCount,
		OpenTimeout:      cfg.FPLCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenReq,
	}

	fplClient := fplapi.NewClient(fplapi.ClientConfig{
		BaseURL:        cfg.FPLBaseURL,
		Timeout:        cfg.FPLTimeout,
		MaxRetries:     cfg.FPLMaxRetries,
		Logger:         logger,
		CircuitBreaker: breakerCfg,
	})
	groqClient := groq.NewClient(groq.ClientConfig{
		BaseURL:        cfg.GroqBaseURL,
		FreeAPIKey:     cfg.GroqFreeAPIKey,
		PaidAPIKey:     cfg.GroqPaidAPIKey,
		Model:          cfg.AIModel,
		MaxTokens:      cfg.AIMaxTokens,
		Timeout:        cfg.AITimeout,
		Logger:         logger,
		CircuitBreaker: breakerCfg,
	})

	snapshots := usecase.NewSnapshotService(fplClient, cfg.FixtureHorizon, logger)
	recommendations := usecase.NewRecommendationService(
		snapshots, fplClient, cfg.RatingStrategy, cfg.ReplacementLimit, logger)
	advisor := usecase.NewAdvisorService(groqClient, logger)

	return &App{
		cfg:             cfg,
		logger:          logger,
		recommendations: recommendations,
		advisor:         advisor,
		aiEnabled:       cfg.AIEnabled(),
	}
}

// RunTransfer produces the transfer report for the configured squad and
// writes it to the report directory while echoing it to stdout.
func (a *App) RunTransfer(ctx context.Context, teamID int64, replacements int, profile string, noAI bool) error {
	if teamID == 0 {
		teamID = a.cfg.TeamID
	}
	review, err := a.recommendations.Transfer(ctx, usecase.TransferInput{
		TeamID:       teamID,
		Replacements: replacements,
		Profile:      profile,
	})
	if err != nil {
		return err
	}

	advice := a.adviceOrSkip(ctx, noAI, func(ctx context.Context) (string, error) {
		return a.advisor.TransferAdvice(ctx, review)
	})

	sink, err := report.NewSink(a.cfg.ReportDir, review.Gameweek, os.Stdout)
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := report.NewRenderer(sink).Transfer(review, advice); err != nil {
		return errors.Wrap(err, "render transfer report")
	}
	a.logger.InfoContext(ctx, "transfer report written", "path", sink.Path())
	return nil
}

// RunWildcard produces the wildcard report for the given budget.
func (a *App) RunWildcard(ctx context.Context, squadValue float64, profile string, noAI bool) error {
	review, err := a.recommendations.Wildcard(ctx, usecase.WildcardInput{
		SquadValue: squadValue,
		Profile:    profile,
	})
	if err != nil {
		return err
	}

	advice := a.adviceOrSkip(ctx, noAI, func(ctx context.Context) (string, error) {
		return a.advisor.WildcardAdvice(ctx, review)
	})

	sink, err := report.NewSink(a.cfg.ReportDir, review.Gameweek, os.Stdout)
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := report.NewRenderer(sink).Wildcard(review, advice); err != nil {
		return errors.Wrap(err, "render wildcard report")
	}
	a.logger.InfoContext(ctx, "wildcard report written", "path", sink.Path())
	return nil
}

// adviceOrSkip runs the advisor unless AI is disabled; advisor failures are
// logged and degrade to a report without a verdict.
func (a *App) adviceOrSkip(ctx context.Context, noAI bool, fn func(context.Context) (string, error)) string {
	if noAI || !a.aiEnabled {
		a.logger.InfoContext(ctx, "ai verdict skipped", "configured", a.aiEnabled)
		return ""
	}
	advice, err := fn(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "ai verdict unavailable", "error", err)
		return ""
	}
	return advice
}
