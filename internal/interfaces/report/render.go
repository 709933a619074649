package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
	"github.com/gafferbot/fplgaffer/internal/usecase"
)

const bannerWidth = 60

// Renderer prints transfer and wildcard reviews as plain-text tables.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Transfer renders the rated squad, per-member replacement candidates and an
// optional AI verdict.
func (r *Renderer) Transfer(review usecase.TransferReview, advice string) error {
	r.banner(fmt.Sprintf("GAMEWEEK %d TRANSFER REVIEW", review.Gameweek))
	fmt.Fprintf(r.w, "Bank: %.1fm\n\n", review.Bank)

	r.banner("CURRENT SQUAD (weakest first)")
	if err := r.table(review.Squad); err != nil {
		return err
	}
	r.spans(review.Spans)

	r.banner("REPLACEMENT CANDIDATES")
	for _, suggestion := range review.Suggestions {
		fmt.Fprintf(r.w, "\nOut: %s (%s, %.1fm, rating %.2f)\n",
			suggestion.Out.Name, suggestion.Out.TeamName,
			suggestion.Out.PriceMillions(), suggestion.Out.NormalizedRating)
		if len(suggestion.Candidates) == 0 {
			fmt.Fprintln(r.w, "  no affordable upgrade found")
			continue
		}
		if err := r.table(suggestion.Candidates); err != nil {
			return err
		}
		for _, candidate := range suggestion.Candidates {
			fmt.Fprintf(r.w, "  %s -> %s: %s, rating %+.2f\n",
				suggestion.Out.Name, candidate.Name,
				costImpact(candidate.PriceMillions()-suggestion.Out.PriceMillions()),
				candidate.NormalizedRating-suggestion.Out.NormalizedRating)
		}
	}

	r.advice(advice)
	return nil
}

// Wildcard renders the rated positional pools and an optional AI squad draft.
func (r *Renderer) Wildcard(review usecase.WildcardReview, advice string) error {
	r.banner(fmt.Sprintf("GAMEWEEK %d WILDCARD REVIEW", review.Gameweek))
	fmt.Fprintf(r.w, "Budget: %.1fm\n\n", review.SquadValue)

	for _, pos := range []player.Position{
		player.PositionGoalkeeper,
		player.PositionDefender,
		player.PositionMidfielder,
		player.PositionForward,
	} {
		r.banner(fmt.Sprintf("TOP %s", positionHeading(pos)))
		pool := review.Pools[pos]
		if len(pool) > 15 {
			pool = pool[:15]
		}
		if err := r.table(pool); err != nil {
			return err
		}
	}
	r.spans(review.Spans)

	r.advice(advice)
	return nil
}

func (r *Renderer) banner(title string) {
	line := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(r.w, "%s\n%s\n%s\n", line, title, line)
}

func (r *Renderer) table(players []player.Player) error {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tTeam\tPos\tCost\tRating\tForm\tExpPts\tPts\tMins\tPts/m\tOwned%\tChance\tNews")
	for _, p := range players {
		news := p.News
		if len(news) > 40 {
			news = news[:40] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%.2f\t%.1f\t%.1f\t%.0f\t%.0f\t%.2f\t%.1f\t%.0f\t%s\n",
			p.Name, p.TeamName, p.Position(),
			p.PriceMillions(), p.NormalizedRating,
			p.Form.Value, p.EPNext.Value,
			p.TotalPoints.Value, p.Minutes.Value,
			p.PointsPerMillion(), p.SelectedByPercent.Value,
			p.ChancePercent(), news)
	}
	return tw.Flush()
}

func (r *Renderer) spans(spans map[player.Position]player.RatingSpan) {
	fmt.Fprintln(r.w)
	for _, pos := range []player.Position{
		player.PositionGoalkeeper,
		player.PositionDefender,
		player.PositionMidfielder,
		player.PositionForward,
	} {
		span, ok := spans[pos]
		if !ok {
			continue
		}
		fmt.Fprintf(r.w, "%s ratings: %.2f - %.2f\n", pos, span.Min, span.Max)
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) advice(advice string) {
	if advice == "" {
		return
	}
	r.banner("AI VERDICT")
	fmt.Fprintln(r.w, strings.TrimSpace(advice))
}

func costImpact(diff float64) string {
	switch {
	case diff > 0:
		return fmt.Sprintf("£%.1fm more", diff)
	case diff < 0:
		return fmt.Sprintf("£%.1fm less", -diff)
	default:
		return "Same price"
	}
}

func positionHeading(pos player.Position) string {
	switch pos {
	case player.PositionGoalkeeper:
		return "GOALKEEPERS"
	case player.PositionDefender:
		return "DEFENDERS"
	case player.PositionMidfielder:
		return "MIDFIELDERS"
	case player.PositionForward:
		return "FORWARDS"
	default:
		return string(pos)
	}
}
