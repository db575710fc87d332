package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/engine"
)

func allZones() []engine.CourtZone {
	return []engine.CourtZone{
		engine.Baseline, engine.MidCourt, engine.Net,
		engine.WideLeft, engine.WideRight,
	}
}

func TestCourtPosInsideCourt(t *testing.T) {
	r := core.NewRect(0, 0, courtW, courtH)

	for _, z := range allZones() {
		for _, far := range []bool{false, true} {
			x, y := courtPos(r, z, far)
			if !r.Contains(x, y) {
				t.Errorf("courtPos(%v, far=%v) = (%d, %d), outside %dx%d court", z, far, x, y, courtW, courtH)
			}
		}
	}
}

func TestCourtPosHalves(t *testing.T) {
	r := core.NewRect(0, 0, courtW, courtH)
	netY := courtH / 2

	for _, z := range allZones() {
		_, farY := courtPos(r, z, true)
		_, nearY := courtPos(r, z, false)
		if farY >= netY {
			t.Errorf("far %v at y=%d, want above net y=%d", z, farY, netY)
		}
		if nearY <= netY {
			t.Errorf("near %v at y=%d, want below net y=%d", z, nearY, netY)
		}
	}
}

func TestCourtPosWideZonesMirror(t *testing.T) {
	r := core.NewRect(0, 0, courtW, courtH)

	nearLeft, _ := courtPos(r, engine.WideLeft, false)
	farLeft, _ := courtPos(r, engine.WideLeft, true)
	cx, _ := r.Center()

	if nearLeft >= cx {
		t.Errorf("near WideLeft at x=%d, want left of center %d", nearLeft, cx)
	}
	if farLeft <= cx {
		t.Errorf("far WideLeft at x=%d, want right of center %d (mirrored)", farLeft, cx)
	}
}

func TestDrawCourtMarkers(t *testing.T) {
	s := core.NewScreen(60, 24)
	DrawCourt(s, 0, 0, engine.Baseline, engine.Net, engine.Human)

	text := s.String()
	for _, marker := range []string{"Y", "O", "*"} {
		if !strings.Contains(text, marker) {
			t.Errorf("court output missing marker %q", marker)
		}
	}
}

func TestStaminaBar(t *testing.T) {
	tests := []struct {
		stamina float64
		width   int
		want    string
	}{
		{1.0, 6, "[####]"},
		{0.0, 6, "[----]"},
		{0.5, 6, "[##--]"},
		{1.5, 6, "[####]"}, // clamped
		{0.5, 1, ""},
	}

	for _, tt := range tests {
		if got := StaminaBar(tt.stamina, tt.width); got != tt.want {
			t.Errorf("StaminaBar(%v, %d) = %q, want %q", tt.stamina, tt.width, got, tt.want)
		}
	}
}

func TestDigitIndex(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"1", 0},
		{"9", 8},
		{"0", -1},
		{"a", -1},
		{"enter", -1},
	}

	for _, tt := range tests {
		if got := digitIndex(tt.key); got != tt.want {
			t.Errorf("digitIndex(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	s := core.NewScreen(10, 4)
	s.DrawTextColored(0, 0, "hello", core.ColorGreen)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("rendered %d newlines, want 3", got)
	}
}
