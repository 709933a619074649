package fplapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

func TestMapElementParseBoundary(t *testing.T) {
	chance := 75
	e := Element{
		ID:                       100,
		WebName:                  "Saka",
		ElementType:              3,
		Team:                     1,
		NowCost:                  102,
		Status:                   "a",
		ChanceOfPlayingNextRound: &chance,
		SelectedByPercent:        "45.3",
		Minutes:                  540,
		GoalsScored:              4,
		Form:                     "7.2",
		EPNext:                   "",    // feed ships empty strings pre-season
		ICTIndex:                 "n/a", // and occasionally garbage
		ExpectedGoals:            "3.41",
		ExpectedGoalsPer90:       0.62,
	}

	p := mapElement(e)

	assert.Equal(t, int64(100), p.ID)
	assert.Equal(t, player.StatusAvailable, p.Status)
	assert.Equal(t, player.PositionMidfielder, p.Position())

	require.True(t, p.ChanceOfPlaying.Known)
	assert.Equal(t, 75.0, p.ChanceOfPlaying.Value)

	require.True(t, p.Form.Known)
	assert.Equal(t, 7.2, p.Form.Value)

	assert.False(t, p.EPNext.Known, "empty string must map to unknown, not zero")
	assert.False(t, p.ICTIndex.Known, "garbage must map to unknown, not zero")

	require.True(t, p.ExpectedGoals.Known)
	assert.Equal(t, 3.41, p.ExpectedGoals.Value)
	require.True(t, p.ExpectedGoalsPer90.Known)
	assert.Equal(t, 0.62, p.ExpectedGoalsPer90.Value)
}

func TestMapElementMissingChanceStaysUnknown(t *testing.T) {
	p := mapElement(Element{ID: 1})
	assert.False(t, p.ChanceOfPlaying.Known)
	assert.Equal(t, 100.0, p.ChancePercent())
}

func TestMapFixture(t *testing.T) {
	event := 7
	kickoff := "2025-09-13T14:00:00Z"
	f := mapFixture(Fixture{
		ID:              9,
		Event:           &event,
		TeamH:           1,
		TeamA:           2,
		KickoffTime:     &kickoff,
		TeamHDifficulty: 2,
		TeamADifficulty: 4,
	})

	assert.Equal(t, 7, f.Event)
	assert.Equal(t, time.Date(2025, time.September, 13, 14, 0, 0, 0, time.UTC), f.KickoffTime)
	assert.Equal(t, 2.0, f.DifficultyFor(1))
	assert.Equal(t, 4.0, f.DifficultyFor(2))
}

func TestMapFixtureUnscheduled(t *testing.T) {
	f := mapFixture(Fixture{ID: 9, TeamH: 1, TeamA: 2})
	assert.Zero(t, f.Event)
	assert.True(t, f.KickoffTime.IsZero())

	bad := "not-a-date"
	f = mapFixture(Fixture{ID: 10, KickoffTime: &bad})
	assert.True(t, f.KickoffTime.IsZero(), "unparseable kickoff must read as unscheduled")
}
