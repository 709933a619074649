package fplapi

import (
	"context"
	"time"

	"github.com/gafferbot/fplgaffer/internal/domain/fixture"
	"github.com/gafferbot/fplgaffer/internal/domain/player"
	"github.com/gafferbot/fplgaffer/internal/domain/squad"
	"github.com/gafferbot/fplgaffer/internal/domain/team"
	"github.com/gafferbot/fplgaffer/internal/usecase"
)

// FetchGameState pulls the bootstrap document and maps it into domain terms.
// Players come back without team context; ingestion joins it on.
func (c *Client) FetchGameState(ctx context.Context) (usecase.GameState, error) {
	raw, err := c.fetchBootstrap(ctx)
	if err != nil {
		return usecase.GameState{}, err
	}

	teams := make([]team.Team, 0, len(raw.Teams))
	for _, t := range raw.Teams {
		teams = append(teams, team.Team{
			ID:       t.ID,
			Name:     t.Name,
			Short:    t.ShortName,
			Strength: float64(t.Strength),
		})
	}

	players := make([]player.Player, 0, len(raw.Elements))
	for _, e := range raw.Elements {
		players = append(players, mapElement(e))
	}

	return usecase.GameState{
		CurrentGameweek: currentGameweek(raw),
		Teams:           teams,
		Players:         players,
	}, nil
}

// FetchFixtures pulls the season fixture list mapped into domain terms.
func (c *Client) FetchFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	raw, err := c.fetchFixtures(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]fixture.Fixture, 0, len(raw))
	for _, f := range raw {
		out = append(out, mapFixture(f))
	}
	return out, nil
}

// FetchPicks pulls a manager's squad for the gameweek. Bank converts from
// tenths of a million to £m for display and budget arithmetic.
func (c *Client) FetchPicks(ctx context.Context, teamID int64, gameweek int) (squad.Picks, error) {
	raw, err := c.fetchPicks(ctx, teamID, gameweek)
	if err != nil {
		return squad.Picks{}, err
	}
	ids := make([]int64, 0, len(raw.Picks))
	for _, pick := range raw.Picks {
		ids = append(ids, pick.Element)
	}
	return squad.Picks{
		Gameweek:  gameweek,
		Bank:      float64(raw.EntryHistory.Bank) / 10,
		PlayerIDs: ids,
	}, nil
}

// mapElement crosses the parse-or-default boundary: decimal-string stats go
// through ParseStat and come out unknown when empty or malformed.
func mapElement(e Element) player.Player {
	return player.Player{
		ID:          e.ID,
		Name:        e.WebName,
		ElementType: e.ElementType,
		TeamID:      e.Team,
		Price:       e.NowCost,
		Status:      player.Status(e.Status),
		News:        e.News,

		ChanceOfPlaying:   player.StatFromPtr(e.ChanceOfPlayingNextRound),
		SelectedByPercent: player.ParseStat(e.SelectedByPercent),

		Minutes:                  player.StatOf(float64(e.Minutes)),
		GoalsScored:              player.StatOf(float64(e.GoalsScored)),
		Assists:                  player.StatOf(float64(e.Assists)),
		Bonus:                    player.StatOf(float64(e.Bonus)),
		BPS:                      player.StatOf(float64(e.BPS)),
		TotalPoints:              player.StatOf(float64(e.TotalPoints)),
		CleanSheets:              player.StatOf(float64(e.CleanSheets)),
		Saves:                    player.StatOf(float64(e.Saves)),
		PenaltiesSaved:           player.StatOf(float64(e.PenaltiesSaved)),
		GoalsConceded:            player.StatOf(float64(e.GoalsConceded)),
		PointsPerGame:            player.ParseStat(e.PointsPerGame),
		Form:                     player.ParseStat(e.Form),
		EPNext:                   player.ParseStat(e.EPNext),
		ValueForm:                player.ParseStat(e.ValueForm),
		ValueSeason:              player.ParseStat(e.ValueSeason),
		ExpectedGoals:            player.ParseStat(e.ExpectedGoals),
		ExpectedAssists:          player.ParseStat(e.ExpectedAssists),
		ExpectedGoalInvolvements: player.ParseStat(e.ExpectedGoalInvolvements),
		ExpectedGoalsConceded:    player.ParseStat(e.ExpectedGoalsConceded),
		ICTIndex:                 player.ParseStat(e.ICTIndex),
		Influence:                player.ParseStat(e.Influence),
		Creativity:               player.ParseStat(e.Creativity),
		Threat:                   player.ParseStat(e.Threat),
		ExpectedGoalsPer90:       player.StatOf(e.ExpectedGoalsPer90),
		ExpectedAssistsPer90:     player.StatOf(e.ExpectedAssistsPer90),
		ExpectedGoalInvPer90:     player.StatOf(e.ExpectedGoalInvPer90),
		ExpectedGoalsConcededP90: player.StatOf(e.ExpectedGoalsConcP90),
		GoalsConcededPer90:       player.StatOf(e.GoalsConcededPer90),
		SavesPer90:               player.StatOf(e.SavesPer90),
		CleanSheetsPer90:         player.StatOf(e.CleanSheetsPer90),
	}
}

func mapFixture(f Fixture) fixture.Fixture {
	out := fixture.Fixture{
		ID:             f.ID,
		HomeTeamID:     f.TeamH,
		AwayTeamID:     f.TeamA,
		Finished:       f.Finished,
		HomeDifficulty: float64(f.TeamHDifficulty),
		AwayDifficulty: float64(f.TeamADifficulty),
	}
	if f.Event != nil {
		out.Event = *f.Event
	}
	if f.KickoffTime != nil {
		if ts, err := time.Parse(time.RFC3339, *f.KickoffTime); err == nil {
			out.KickoffTime = ts
		}
	}
	return out
}
