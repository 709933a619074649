package squad

import (
	"testing"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

func candidate(id int64, price int64, rating float64) player.Player {
	return player.Player{
		ID:               id,
		ElementType:      3,
		Price:            price,
		Status:           player.StatusAvailable,
		NormalizedRating: rating,
	}
}

func poolsOf(players ...player.Player) player.Pools {
	return player.SortIntoPools(players)
}

func TestFindReplacementsRespectsBudgetCeiling(t *testing.T) {
	owned := candidate(1, 55, 40)
	// 5.5m player plus 0.5m bank buys up to 6.0m
	affordable := candidate(2, 55, 70)
	tooExpensive := candidate(3, 65, 95)
	pools := poolsOf(owned, affordable, tooExpensive)

	got := FindReplacements(owned, 0.5, pools, map[int64]struct{}{1: {}}, 4)
	if len(got) != 1 {
		t.Fatalf("candidates = %d, want 1", len(got))
	}
	if got[0].ID != 2 {
		t.Errorf("candidate = %d, want 2 (6.5m player must be out of budget)", got[0].ID)
	}
}

func TestFindReplacementsEnforcesPriceFloor(t *testing.T) {
	owned := candidate(1, 50, 40)
	cheap := candidate(2, 39, 90) // below the cheapest legal price
	pools := poolsOf(owned, cheap)

	if got := FindReplacements(owned, 10, pools, map[int64]struct{}{1: {}}, 4); len(got) != 0 {
		t.Errorf("candidates = %d, want 0", len(got))
	}
}

func TestFindReplacementsExcludesOwnedPlayers(t *testing.T) {
	owned := candidate(1, 50, 40)
	teammate := candidate(2, 50, 80)
	outsider := candidate(3, 50, 60)
	pools := poolsOf(owned, teammate, outsider)

	got := FindReplacements(owned, 0, pools, map[int64]struct{}{1: {}, 2: {}}, 4)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("candidates = %v, want only player 3", ids(got))
	}
}

func TestFindReplacementsRequiresFullAvailability(t *testing.T) {
	owned := candidate(1, 50, 40)

	injured := candidate(2, 50, 90)
	injured.Status = player.StatusInjured

	doubtful := candidate(3, 50, 85)
	doubtful.ChanceOfPlaying = player.StatOf(75)

	certain := candidate(4, 50, 60)
	certain.ChanceOfPlaying = player.StatOf(100)

	implied := candidate(5, 50, 55) // chance never reported, reads as 100

	pools := poolsOf(owned, injured, doubtful, certain, implied)
	got := FindReplacements(owned, 0, pools, map[int64]struct{}{1: {}}, 4)

	want := []int64{4, 5}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("candidates = %v, want %v", ids(got), want)
			break
		}
	}
}

func TestFindReplacementsSortsAndTruncates(t *testing.T) {
	owned := candidate(1, 100, 10)
	pool := []player.Player{owned}
	for i := int64(2); i <= 8; i++ {
		pool = append(pool, candidate(i, 50, float64(i*10)))
	}

	got := FindReplacements(owned, 0, poolsOf(pool...), map[int64]struct{}{1: {}}, 3)
	if len(got) != 3 {
		t.Fatalf("candidates = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].NormalizedRating > got[i-1].NormalizedRating {
			t.Errorf("candidates out of order: %v", ids(got))
		}
	}
	if got[0].ID != 8 {
		t.Errorf("best candidate = %d, want 8", got[0].ID)
	}
}

func TestFindReplacementsSamePositionOnly(t *testing.T) {
	owned := candidate(1, 50, 40)
	striker := candidate(2, 50, 99)
	striker.ElementType = 4
	pools := poolsOf(owned, striker)

	if got := FindReplacements(owned, 10, pools, map[int64]struct{}{1: {}}, 4); len(got) != 0 {
		t.Errorf("candidates = %v, want none from other positions", ids(got))
	}
}

func TestFindReplacementsEmptyResultIsNormal(t *testing.T) {
	owned := candidate(1, 40, 40)
	pools := poolsOf(owned)

	got := FindReplacements(owned, 0, pools, map[int64]struct{}{1: {}}, 4)
	if len(got) != 0 {
		t.Errorf("candidates = %v, want none", ids(got))
	}
}

func ids(players []player.Player) []int64 {
	out := make([]int64, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}
