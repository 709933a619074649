package squad

// Picks is the user's current squad state for one gameweek: the owned
// player ids and the unspent bank in £m.
type Picks struct {
	Gameweek  int
	Bank      float64
	PlayerIDs []int64
}

// IDSet indexes the owned ids for membership checks.
func (p Picks) IDSet() map[int64]struct{} {
	out := make(map[int64]struct{}, len(p.PlayerIDs))
	for _, id := range p.PlayerIDs {
		out[id] = struct{}{}
	}
	return out
}
