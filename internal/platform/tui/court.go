package tui

import (
	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/engine"
)

// Court drawing: a top-down view with the opponent on the far side and the
// player on the near side. Markers move between the discrete zones the
// engine tracks; the ball sits with whoever plays next.

const (
	courtW = 37
	courtH = 17
)

// zoneOffsets places a zone inside one half of the court. dy is measured
// from the half's baseline toward the net, dx from the center line.
var zoneOffsets = map[engine.CourtZone]struct{ dx, dy int }{
	engine.Baseline:  {0, 0},
	engine.MidCourt:  {0, 3},
	engine.Net:       {0, 6},
	engine.WideLeft:  {-12, 0},
	engine.WideRight: {12, 0},
}

// courtPos returns the screen position of a zone. The far half belongs to the
// opponent, so its wide zones mirror horizontally to keep left and right from
// the player's point of view.
func courtPos(r core.Rect, z engine.CourtZone, far bool) (int, int) {
	off := zoneOffsets[z]
	cx, _ := r.Center()

	if far {
		return cx - off.dx, r.Y + 1 + off.dy
	}
	return cx + off.dx, r.Bottom() - 2 - off.dy
}

// DrawCourt draws the court at (x, y) with both players and the ball.
// ballWith is the side due to play next, or NoPlayer between points.
func DrawCourt(s *core.Screen, x, y int, player, opponent engine.CourtZone, ballWith engine.PlayerID) {
	r := core.NewRect(x, y, courtW, courtH)
	s.DrawBox(r, core.ColorGreen)

	// Net across the middle.
	netY := y + courtH/2
	s.DrawHLine(x+1, netY, courtW-2, '═', core.ColorWhite)

	// Singles sidelines.
	s.DrawVLine(x+4, y+1, courtH-2, '·', core.ColorGray)
	s.DrawVLine(x+courtW-5, y+1, courtH-2, '·', core.ColorGray)

	// Service lines and the center service line.
	s.DrawHLine(x+5, netY-3, courtW-10, '-', core.ColorGray)
	s.DrawHLine(x+5, netY+3, courtW-10, '-', core.ColorGray)
	cx, _ := r.Center()
	s.DrawVLine(cx, netY-3, 3, '·', core.ColorGray)
	s.DrawVLine(cx, netY+1, 3, '·', core.ColorGray)

	// Markers. Opponent plays the far half.
	ox, oy := courtPos(r, opponent, true)
	px, py := courtPos(r, player, false)
	s.SetColored(ox, oy, 'O', core.ColorRed)
	s.SetColored(px, py, 'Y', core.ColorBrightGreen)

	switch ballWith {
	case engine.Human:
		s.SetColored(px+2, py, '*', core.ColorBrightYellow)
	case engine.Opponent:
		s.SetColored(ox+2, oy, '*', core.ColorBrightYellow)
	}
}

// StaminaBar renders a fixed-width bar like [######----] for the HUD.
func StaminaBar(stamina float64, width int) string {
	if width < 2 {
		return ""
	}
	inner := width - 2
	filled := int(stamina*float64(inner) + 0.5)
	filled = core.Clamp(filled, 0, inner)

	bar := make([]rune, 0, width)
	bar = append(bar, '[')
	for i := 0; i < inner; i++ {
		if i < filled {
			bar = append(bar, '#')
		} else {
			bar = append(bar, '-')
		}
	}
	bar = append(bar, ']')
	return string(bar)
}
