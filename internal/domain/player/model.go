package player

import "math"

// Position represents the four fantasy roles a player can hold.
type Position string

const (
	PositionGoalkeeper Position = "GKP"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// AllPositions is the closed set of roles the pipeline recognises. Players
// whose element type maps to nothing here are excluded from every pool.
var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// PositionByElementType maps the upstream feed's role codes onto positions.
var PositionByElementType = map[int]Position{
	1: PositionGoalkeeper,
	2: PositionDefender,
	3: PositionMidfielder,
	4: PositionForward,
}

// Status is the upstream availability code for a player.
type Status string

const (
	StatusAvailable  Status = "a"
	StatusDoubtful   Status = "d"
	StatusInjured    Status = "i"
	StatusSuspended  Status = "s"
	StatusUnavail    Status = "u"
	StatusNotInSquad Status = "n"
)

var statusLabels = map[Status]string{
	StatusAvailable:  "available",
	StatusDoubtful:   "doubtful",
	StatusInjured:    "injured",
	StatusSuspended:  "suspended",
	StatusUnavail:    "unavailable",
	StatusNotInSquad: "not in squad",
}

// Label returns the display string for a status code. Unknown codes read as
// available, matching the upstream feed's default.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "available"
}

// Stat is one numeric attribute from the upstream feed. Known is false when
// the source value was missing or non-numeric; such values still score as
// zero but are excluded from population range building.
type Stat struct {
	Value float64
	Known bool
}

// StatOf wraps a value that is always present.
func StatOf(v float64) Stat {
	return Stat{Value: v, Known: true}
}

// Player is an immutable snapshot of one league player. Every numeric field
// has already been through the parse-or-default boundary, so downstream
// components never see raw feed values.
type Player struct {
	ID          int64
	Name        string
	ElementType int
	TeamID      int64
	TeamName    string
	Price       int64 // tenths of a million
	Status      Status
	News        string

	ChanceOfPlaying   Stat // 0-100, missing reads as full availability
	TeamStrength      float64
	FixtureDifficulty float64
	SelectedByPercent Stat

	Minutes                  Stat
	GoalsScored              Stat
	Assists                  Stat
	Bonus                    Stat
	BPS                      Stat
	TotalPoints              Stat
	PointsPerGame            Stat
	Form                     Stat
	EPNext                   Stat
	ValueForm                Stat
	ValueSeason              Stat
	ExpectedGoals            Stat
	ExpectedAssists          Stat
	ExpectedGoalInvolvements Stat
	ExpectedGoalsPer90       Stat
	ExpectedAssistsPer90     Stat
	ExpectedGoalInvPer90     Stat
	ICTIndex                 Stat
	Influence                Stat
	Creativity               Stat
	Threat                   Stat
	CleanSheets              Stat
	CleanSheetsPer90         Stat
	Saves                    Stat
	SavesPer90               Stat
	PenaltiesSaved           Stat
	GoalsConceded            Stat
	GoalsConcededPer90       Stat
	ExpectedGoalsConceded    Stat
	ExpectedGoalsConcededP90 Stat

	// Derived by the rating pipeline, never fetched.
	RawRating        float64
	NormalizedRating float64
}

// Position resolves the player's role, or "" when the element type is
// unknown.
func (p Player) Position() Position {
	return PositionByElementType[p.ElementType]
}

// PriceMillions is the display price in £m.
func (p Player) PriceMillions() float64 {
	return math.Round(float64(p.Price)) / 10
}

// ChancePercent treats a missing chance-of-playing as full availability.
func (p Player) ChancePercent() float64 {
	if !p.ChanceOfPlaying.Known {
		return 100
	}
	return p.ChanceOfPlaying.Value
}

// PointsPerMillion is total points per £1m of price, the value-for-money
// column on printed tables.
func (p Player) PointsPerMillion() float64 {
	if p.Price <= 0 {
		return 0
	}
	return math.Round(p.TotalPoints.Value/float64(p.Price)*10*100) / 100
}
