package engine

import "math/rand"

// Opponent policy: weighted shot selection keyed by style. Styles are plain
// weight tables, not subtypes, so they can be tuned as data.

// styleShotBias multiplies a shot's weight when the style favors or avoids it.
var styleShotBias = map[Style]map[ShotType]float64{
	AggressiveBaseliner: {
		ForehandDownTheLine: 1.5,
		BackhandDownTheLine: 1.5,
		DropShot:            0.7,
	},
	DefensiveBaseliner: {
		ForehandCrossCourt: 1.5,
		BackhandCrossCourt: 1.5,
		ApproachShot:       0.5,
		Volley:             0.5,
	},
	ServeAndVolleyer: {
		ApproachShot: 2.0,
		Volley:       2.0,
	},
	AllCourt: {},
	ForehandDominant: {
		ForehandCrossCourt:  1.8,
		ForehandDownTheLine: 1.8,
	},
	BackhandDominant: {
		BackhandCrossCourt:  1.8,
		BackhandDownTheLine: 1.8,
	},
}

// impatientStyles press for the finish in long rallies.
var impatientStyles = map[Style]bool{
	AggressiveBaseliner: true,
	ForehandDominant:    true,
}

// ChooseShot picks the computer's next shot: a weighted draw over the shots
// legal from its current zone. Weights combine squared skill, the style's
// bias table, and rally context. The legal set is non-empty for every zone
// by construction, so a shot is always returned.
func ChooseShot(rng *rand.Rand, opp *PlayerState, ctx RallyContext) ShotType {
	legal := LegalShots(opp.Zone)
	weights := make([]float64, len(legal))
	total := 0.0

	for i, shot := range legal {
		w := 1.0

		// Skill emphasis: square so the bot leans on its weapons.
		skill := opp.Profile.Skill(shot) * 2 // 0.5 skill is neutral
		w *= skill * skill

		if bias, ok := styleShotBias[opp.Profile.Style][shot]; ok {
			w *= bias
		}

		// Change direction after a cross-court exchange.
		if ctx.LastShot != nil && isCrossCourt(ctx.LastShot.Type) && isDownTheLine(shot) {
			w *= 1.3
		}

		// At the net everything but the volley is a scramble.
		if opp.Zone == Net {
			if shot == Volley {
				w *= 3.0
			} else {
				w *= 0.2
			}
		}

		// Throw it over a net player's head.
		if ctx.ReceiverZone == Net && shot == Lob {
			w *= 2.0
		}

		// Aggressive styles get impatient deep into a rally.
		if ctx.RallyLength > 6 && impatientStyles[opp.Profile.Style] {
			if isDownTheLine(shot) || shot == DropShot {
				w *= 1.0 + float64(ctx.RallyLength-6)*0.1
			}
		}

		weights[i] = w
		total += w
	}

	if total <= 0 {
		// Degenerate weights; fall back to the always-legal cross-court.
		return ForehandCrossCourt
	}

	roll := rng.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return legal[i]
		}
	}
	return legal[len(legal)-1]
}

func isCrossCourt(s ShotType) bool {
	return s == ForehandCrossCourt || s == BackhandCrossCourt
}

func isDownTheLine(s ShotType) bool {
	return s == ForehandDownTheLine || s == BackhandDownTheLine
}
