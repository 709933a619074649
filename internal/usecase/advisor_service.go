package usecase

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
	"github.com/gafferbot/fplgaffer/internal/platform/logging"
)

const transferSystemPrompt = `You are a fantasy premier league expert making data-driven transfer calls.
For each squad member you receive the player's current numbers and a short list of affordable
replacement candidates in the same position. Recommend at most two transfers for the coming
gameweek. For every recommendation name the player out, the player in, and justify it with the
numbers provided (rating, form, expected points, fixtures, availability). If no transfer clearly
improves the squad, say so and recommend rolling the free transfer. Be concise.`

const wildcardSystemPrompt = `You are a fantasy premier league expert drafting a full wildcard squad.
You receive the strongest available players per position with their ratings and stats, plus a total
budget in millions. Pick exactly 15 players: 2 goalkeepers, 5 defenders, 5 midfielders, 3 forwards,
with no more than 3 players from any one club and total cost within budget. Present the squad as a
list per position with prices, state the total cost, and briefly justify the premium picks. Be concise.`

// Wildcard prompts carry only the head of each positional pool.
var wildcardPoolSizes = map[player.Position]int{
	player.PositionGoalkeeper: 5,
	player.PositionDefender:   15,
	player.PositionMidfielder: 15,
	player.PositionForward:    10,
}

// promptPlayer is the trimmed player view serialized into AI prompts.
type promptPlayer struct {
	Name              string  `json:"web_name"`
	Position          string  `json:"pos"`
	Team              string  `json:"team_name"`
	Price             float64 `json:"now_cost_m"`
	Rating            float64 `json:"rating"`
	Status            string  `json:"status"`
	Chance            float64 `json:"chance_of_playing"`
	FixtureDifficulty float64 `json:"team_fix_dif"`
	Minutes           float64 `json:"minutes"`
	GoalsScored       float64 `json:"goals_scored"`
	Assists           float64 `json:"assists"`
	CleanSheets       float64 `json:"clean_sheets"`
	TotalPoints       float64 `json:"total_points"`
	Form              float64 `json:"form"`
	EPNext            float64 `json:"ep_next"`
	XGIPer90          float64 `json:"expected_goal_involvements_per_90"`
	XGCPer90          float64 `json:"expected_goals_conceded_per_90"`
	SelectedBy        float64 `json:"selected_by_percent"`
	News              string  `json:"news,omitempty"`
}

func toPromptPlayer(p player.Player) promptPlayer {
	return promptPlayer{
		Name:              p.Name,
		Position:          string(p.Position()),
		Team:              p.TeamName,
		Price:             p.PriceMillions(),
		Rating:            p.NormalizedRating,
		Status:            p.Status.Label(),
		Chance:            p.ChancePercent(),
		FixtureDifficulty: p.FixtureDifficulty,
		Minutes:           p.Minutes.Value,
		GoalsScored:       p.GoalsScored.Value,
		Assists:           p.Assists.Value,
		CleanSheets:       p.CleanSheets.Value,
		TotalPoints:       p.TotalPoints.Value,
		Form:              p.Form.Value,
		EPNext:            p.EPNext.Value,
		XGIPer90:          p.ExpectedGoalInvPer90.Value,
		XGCPer90:          p.ExpectedGoalsConcededP90.Value,
		SelectedBy:        p.SelectedByPercent.Value,
		News:              p.News,
	}
}

// transferPromptEntry pairs one owned player with their candidates.
type transferPromptEntry struct {
	Current      promptPlayer   `json:"current"`
	Replacements []promptPlayer `json:"replacements"`
}

// AdvisorService turns a finished review into an AI-written recommendation.
type AdvisorService struct {
	ai     AIGateway
	logger *logging.Logger
}

func NewAdvisorService(ai AIGateway, logger *logging.Logger) *AdvisorService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdvisorService{ai: ai, logger: logger}
}

// TransferAdvice asks the model which of the suggested replacements to act on.
func (s *AdvisorService) TransferAdvice(ctx context.Context, review TransferReview) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "AdvisorService.TransferAdvice")
	defer span.End()

	entries := make(map[string]transferPromptEntry, len(review.Suggestions))
	for _, suggestion := range review.Suggestions {
		candidates := make([]promptPlayer, 0, len(suggestion.Candidates))
		for _, c := range suggestion.Candidates {
			candidates = append(candidates, toPromptPlayer(c))
		}
		entries[suggestion.Out.Name] = transferPromptEntry{
			Current:      toPromptPlayer(suggestion.Out),
			Replacements: candidates,
		}
	}

	payload, err := sonic.Marshal(entries)
	if err != nil {
		return "", errors.Wrap(err, "marshal transfer prompt")
	}
	userPrompt := fmt.Sprintf("Gameweek %d, bank %.1fm. Squad and candidates:\n%s",
		review.Gameweek, review.Bank, payload)

	advice, err := s.ai.Complete(ctx, transferSystemPrompt, userPrompt)
	if err != nil {
		return "", errors.Wrap(err, "transfer advice")
	}
	s.logger.InfoContext(ctx, "transfer advice generated", "gameweek", review.Gameweek)
	return advice, nil
}

// WildcardAdvice asks the model to draft a full squad from the rated pools.
func (s *AdvisorService) WildcardAdvice(ctx context.Context, review WildcardReview) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "AdvisorService.WildcardAdvice")
	defer span.End()

	shortlist := make(map[string][]promptPlayer, len(wildcardPoolSizes))
	for pos, size := range wildcardPoolSizes {
		pool := review.Pools[pos]
		if len(pool) > size {
			pool = pool[:size]
		}
		entries := make([]promptPlayer, 0, len(pool))
		for _, p := range pool {
			entries = append(entries, toPromptPlayer(p))
		}
		shortlist[string(pos)] = entries
	}

	payload, err := sonic.Marshal(shortlist)
	if err != nil {
		return "", errors.Wrap(err, "marshal wildcard prompt")
	}
	userPrompt := fmt.Sprintf("Gameweek %d, budget %.1fm. Player pools:\n%s",
		review.Gameweek, review.SquadValue, payload)

	advice, err := s.ai.Complete(ctx, wildcardSystemPrompt, userPrompt)
	if err != nil {
		return "", errors.Wrap(err, "wildcard advice")
	}
	s.logger.InfoContext(ctx, "wildcard advice generated", "gameweek", review.Gameweek)
	return advice, nil
}
