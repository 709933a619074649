package usecase

import (
	"context"

	"github.com/gafferbot/fplgaffer/internal/domain/fixture"
	"github.com/gafferbot/fplgaffer/internal/domain/player"
	"github.com/gafferbot/fplgaffer/internal/domain/squad"
	"github.com/gafferbot/fplgaffer/internal/domain/team"
)

// GameState is the bootstrap document mapped into domain terms. Player
// records still lack team context; the snapshot service joins it on after
// fixture aggregation.
type GameState struct {
	CurrentGameweek int
	Teams           []team.Team
	Players         []player.Player
}

// FPLGateway abstracts the upstream fantasy API from use cases.
type FPLGateway interface {
	FetchGameState(ctx context.Context) (GameState, error)
	FetchFixtures(ctx context.Context) ([]fixture.Fixture, error)
	FetchPicks(ctx context.Context, teamID int64, gameweek int) (squad.Picks, error)
}

// AIGateway abstracts the language-model provider.
type AIGateway interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
