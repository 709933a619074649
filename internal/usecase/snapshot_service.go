package usecase

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/gafferbot/fplgaffer/internal/domain/fixture"
	"github.com/gafferbot/fplgaffer/internal/domain/player"
	"github.com/gafferbot/fplgaffer/internal/domain/team"
	"github.com/gafferbot/fplgaffer/internal/platform/logging"
)

const defaultAggregationWorkers = 8

// Snapshot is a fully joined view of the league at one moment: every
// player carries its team name, strength and upcoming fixture difficulty.
type Snapshot struct {
	Gameweek int
	Players  []player.Player
	Teams    map[int64]team.Context
}

// SnapshotService pulls the bootstrap and fixture documents, aggregates
// per-team fixture difficulty and joins the results onto each player.
type SnapshotService struct {
	gateway FPLGateway
	horizon int
	workers int
	logger  *logging.Logger
}

func NewSnapshotService(gateway FPLGateway, horizon int, logger *logging.Logger) *SnapshotService {
	if horizon <= 0 {
		horizon = fixture.DefaultHorizon
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SnapshotService{
		gateway: gateway,
		horizon: horizon,
		workers: defaultAggregationWorkers,
		logger:  logger,
	}
}

// Build fetches game state and fixtures concurrently, then assembles the
// joined snapshot.
func (s *SnapshotService) Build(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "SnapshotService.Build")
	defer span.End()

	var (
		state    GameState
		fixtures []fixture.Fixture
	)

	fetch := pool.New().WithContext(ctx).WithCancelOnError()
	fetch.Go(func(ctx context.Context) error {
		var err error
		state, err = s.gateway.FetchGameState(ctx)
		return errors.Wrap(err, "fetch game state")
	})
	fetch.Go(func(ctx context.Context) error {
		var err error
		fixtures, err = s.gateway.FetchFixtures(ctx)
		return errors.Wrap(err, "fetch fixtures")
	})
	if err := fetch.Wait(); err != nil {
		return Snapshot{}, err
	}

	contexts, err := s.aggregateTeamContexts(state.Teams, fixtures)
	if err != nil {
		return Snapshot{}, err
	}

	players := make([]player.Player, len(state.Players))
	for i, p := range state.Players {
		if tc, ok := contexts[p.TeamID]; ok {
			p.TeamName = tc.Team.Short
			p.TeamStrength = tc.Team.Strength
			p.FixtureDifficulty = tc.FixtureDifficulty
		} else {
			p.FixtureDifficulty = fixture.NeutralDifficulty
		}
		players[i] = p
	}

	s.logger.InfoContext(ctx, "snapshot built",
		"gameweek", state.CurrentGameweek,
		"players", len(players),
		"teams", len(contexts),
	)
	return Snapshot{
		Gameweek: state.CurrentGameweek,
		Players:  players,
		Teams:    contexts,
	}, nil
}

// aggregateTeamContexts averages upcoming fixture difficulty for every team
// on a shared worker pool.
func (s *SnapshotService) aggregateTeamContexts(teams []team.Team, fixtures []fixture.Fixture) (map[int64]team.Context, error) {
	workers := s.workers
	if workers > len(teams) && len(teams) > 0 {
		workers = len(teams)
	}
	if workers <= 0 {
		workers = 1
	}

	antsPool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "create aggregation pool")
	}
	defer antsPool.Release()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		contexts = make(map[int64]team.Context, len(teams))
	)
	for _, t := range teams {
		t := t
		wg.Add(1)
		submitErr := antsPool.Submit(func() {
			defer wg.Done()
			difficulty := fixture.UpcomingDifficulty(fixtures, t.ID, s.horizon)
			mu.Lock()
			contexts[t.ID] = team.Context{Team: t, FixtureDifficulty: difficulty}
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return nil, errors.Wrap(submitErr, "submit aggregation task")
		}
	}
	wg.Wait()
	return contexts, nil
}
