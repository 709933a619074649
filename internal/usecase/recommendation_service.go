package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
	"github.com/gafferbot/fplgaffer/internal/domain/rating"
	"github.com/gafferbot/fplgaffer/internal/domain/squad"
	"github.com/gafferbot/fplgaffer/internal/platform/logging"
)

// Rating strategies accepted by the recommendation service.
const (
	StrategyWeighted = "weighted"
	StrategyQuantile = "quantile"
)

// TransferInput identifies the manager squad to review. Profile defaults to
// the transfer weight set when empty.
type TransferInput struct {
	TeamID       int64  `validate:"required,gt=0"`
	Replacements int    `validate:"gte=0,lte=15"`
	Profile      string `validate:"omitempty,oneof=transfer wildcard"`
}

// WildcardInput parameterises a full-squad rebuild review. Profile defaults
// to the wildcard weight set when empty.
type WildcardInput struct {
	SquadValue float64 `validate:"gt=0,lte=200"`
	Profile    string  `validate:"omitempty,oneof=transfer wildcard"`
}

// ReplacementSuggestion pairs an owned player with the best affordable
// upgrades for the same position.
type ReplacementSuggestion struct {
	Out        player.Player
	Candidates []player.Player
}

// TransferReview is everything a transfer report needs: the rated squad in
// ascending rating order plus candidate replacements for each member.
type TransferReview struct {
	Gameweek    int
	Bank        float64
	Pools       player.Pools
	Spans       map[player.Position]player.RatingSpan
	Squad       []player.Player
	Suggestions []ReplacementSuggestion
}

// WildcardReview carries the rated pools for a from-scratch squad build.
type WildcardReview struct {
	Gameweek   int
	SquadValue float64
	Pools      player.Pools
	Spans      map[player.Position]player.RatingSpan
}

// RecommendationService runs the rating pipeline and derives transfer or
// wildcard recommendations from the results.
type RecommendationService struct {
	snapshots        *SnapshotService
	gateway          FPLGateway
	validate         *validator.Validate
	strategy         string
	replacementLimit int
	logger           *logging.Logger
}

func NewRecommendationService(snapshots *SnapshotService, gateway FPLGateway, strategy string, replacementLimit int, logger *logging.Logger) *RecommendationService {
	if strategy == "" {
		strategy = StrategyWeighted
	}
	if replacementLimit <= 0 {
		replacementLimit = squad.DefaultCandidateLimit
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RecommendationService{
		snapshots:        snapshots,
		gateway:          gateway,
		validate:         validator.New(validator.WithRequiredStructEnabled()),
		strategy:         strategy,
		replacementLimit: replacementLimit,
		logger:           logger,
	}
}

// Transfer rates the full player pool against the transfer profile and, for
// every member of the manager's current squad, searches out affordable
// higher-rated replacements in the same position.
func (s *RecommendationService) Transfer(ctx context.Context, in TransferInput) (TransferReview, error) {
	ctx, span := startUsecaseSpan(ctx, "RecommendationService.Transfer")
	defer span.End()

	if err := s.validate.Struct(in); err != nil {
		return TransferReview{}, errors.Mark(errors.Wrap(err, "transfer input"), ErrInvalidInput)
	}
	limit := in.Replacements
	if limit == 0 {
		limit = s.replacementLimit
	}

	snapshot, err := s.snapshots.Build(ctx)
	if err != nil {
		return TransferReview{}, err
	}
	picks, err := s.gateway.FetchPicks(ctx, in.TeamID, snapshot.Gameweek)
	if err != nil {
		return TransferReview{}, err
	}

	profile := rating.TransferProfile()
	if in.Profile != "" {
		profile, _ = rating.ProfileByName(in.Profile)
	}
	pools, err := s.ratePools(snapshot.Players, profile)
	if err != nil {
		return TransferReview{}, err
	}

	ids := picks.IDSet()
	owned := pools.OwnedByID(ids)
	if len(owned) == 0 {
		return TransferReview{}, errors.Mark(errors.Newf("no squad members found for team %d", in.TeamID), ErrNotFound)
	}

	suggestions := make([]ReplacementSuggestion, 0, len(owned))
	for _, member := range owned {
		candidates := squad.FindReplacements(member, picks.Bank, pools, ids, limit)
		suggestions = append(suggestions, ReplacementSuggestion{Out: member, Candidates: candidates})
	}

	s.logger.InfoContext(ctx, "transfer review ready",
		"gameweek", snapshot.Gameweek,
		"squad", len(owned),
		"bank", picks.Bank,
	)
	return TransferReview{
		Gameweek:    snapshot.Gameweek,
		Bank:        picks.Bank,
		Pools:       pools,
		Spans:       pools.RatingSpans(),
		Squad:       owned,
		Suggestions: suggestions,
	}, nil
}

// Wildcard rates the full player pool against the wildcard profile and
// returns the sorted positional pools to draft a new squad from.
func (s *RecommendationService) Wildcard(ctx context.Context, in WildcardInput) (WildcardReview, error) {
	ctx, span := startUsecaseSpan(ctx, "RecommendationService.Wildcard")
	defer span.End()

	if err := s.validate.Struct(in); err != nil {
		return WildcardReview{}, errors.Mark(errors.Wrap(err, "wildcard input"), ErrInvalidInput)
	}

	snapshot, err := s.snapshots.Build(ctx)
	if err != nil {
		return WildcardReview{}, err
	}
	profile := rating.WildcardProfile()
	if in.Profile != "" {
		profile, _ = rating.ProfileByName(in.Profile)
	}
	pools, err := s.ratePools(snapshot.Players, profile)
	if err != nil {
		return WildcardReview{}, err
	}

	s.logger.InfoContext(ctx, "wildcard review ready",
		"gameweek", snapshot.Gameweek,
		"squad_value", in.SquadValue,
	)
	return WildcardReview{
		Gameweek:   snapshot.Gameweek,
		SquadValue: in.SquadValue,
		Pools:      pools,
		Spans:      pools.RatingSpans(),
	}, nil
}

// ratePools runs rate, normalize and positional sort over one population.
func (s *RecommendationService) ratePools(players []player.Player, profile rating.Profile) (player.Pools, error) {
	rater, err := s.buildRater(players)
	if err != nil {
		return nil, err
	}
	rated, err := rating.RateAll(players, rater, profile)
	if err != nil {
		return nil, errors.Wrap(err, "rate players")
	}
	normalized, err := rating.NormalizeAll(rated)
	if err != nil {
		return nil, errors.Wrap(err, "normalize ratings")
	}
	return player.SortIntoPools(normalized), nil
}

func (s *RecommendationService) buildRater(players []player.Player) (rating.Rater, error) {
	switch s.strategy {
	case StrategyWeighted:
		return rating.NewWeightedRater(rating.BuildRanges(players)), nil
	case StrategyQuantile:
		return rating.NewQuantileRater(players), nil
	default:
		return nil, errors.Mark(errors.Newf("unknown rating strategy %q", s.strategy), ErrInvalidInput)
	}
}
