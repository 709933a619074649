package player

import "testing"

func TestPositionByElementType(t *testing.T) {
	tests := []struct {
		code int
		want Position
	}{
		{1, PositionGoalkeeper},
		{2, PositionDefender},
		{3, PositionMidfielder},
		{4, PositionForward},
		{5, ""},
		{0, ""},
	}
	for _, tc := range tests {
		p := Player{ElementType: tc.code}
		if got := p.Position(); got != tc.want {
			t.Errorf("element type %d resolved to %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusInjured.Label(); got != "injured" {
		t.Errorf("injured label = %q", got)
	}
	if got := Status("x").Label(); got != "available" {
		t.Errorf("unknown status label = %q, want available", got)
	}
}

func TestChancePercent(t *testing.T) {
	missing := Player{}
	if got := missing.ChancePercent(); got != 100 {
		t.Errorf("missing chance = %v, want 100", got)
	}

	zero := Player{ChanceOfPlaying: StatOf(0)}
	if got := zero.ChancePercent(); got != 0 {
		t.Errorf("explicit zero chance = %v, want 0", got)
	}

	partial := Player{ChanceOfPlaying: StatOf(25)}
	if got := partial.ChancePercent(); got != 25 {
		t.Errorf("partial chance = %v, want 25", got)
	}
}

func TestPriceMillions(t *testing.T) {
	p := Player{Price: 125}
	if got := p.PriceMillions(); got != 12.5 {
		t.Errorf("PriceMillions = %v, want 12.5", got)
	}
}

func TestPointsPerMillion(t *testing.T) {
	p := Player{Price: 50, TotalPoints: StatOf(100)}
	if got := p.PointsPerMillion(); got != 20 {
		t.Errorf("PointsPerMillion = %v, want 20", got)
	}

	free := Player{Price: 0, TotalPoints: StatOf(100)}
	if got := free.PointsPerMillion(); got != 0 {
		t.Errorf("zero price PointsPerMillion = %v, want 0", got)
	}
}

func TestAttributeRegistryCoversNamedAttributes(t *testing.T) {
	p := Player{ID: 7, Price: 55, Form: StatOf(3.2)}

	stat, ok := p.Attribute(AttrForm)
	if !ok || stat.Value != 3.2 {
		t.Errorf("Attribute(form) = %+v, %v", stat, ok)
	}
	stat, ok = p.Attribute(AttrID)
	if !ok || stat.Value != 7 {
		t.Errorf("Attribute(id) = %+v, %v", stat, ok)
	}
	if _, ok := p.Attribute("web_name"); ok {
		t.Error("free-text field exposed as a numeric attribute")
	}
}
