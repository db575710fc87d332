package config

import (
	_ "embed"
)

//go:embed defaults/tennis.yaml
var defaultTennisYAML []byte

// DefaultConfig returns the shipped balance. It matches defaults/tennis.yaml
// and backs the loader when the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Match: MatchConfig{
			BestOf: 3,
		},
		Tuning: TuningConfig{
			MinFloor:        0.10,
			MaxCeiling:      0.95,
			StrengthBonus:   1.15,
			FatigueBase:     0.55,
			FatigueScale:    0.45,
			WinnerBand:      0.15,
			MomentumPerShot: 0.01,
			MomentumCap:     0.05,
			Risk: map[string]float64{
				"first_serve":            0.25,
				"second_serve":           0.10,
				"forehand_crosscourt":    0.10,
				"forehand_down_the_line": 0.20,
				"backhand_crosscourt":    0.15,
				"backhand_down_the_line": 0.25,
				"drop_shot":              0.35,
				"lob":                    0.30,
				"slice":                  0.15,
				"approach_shot":          0.25,
				"volley":                 0.20,
			},
			AceChance: map[string]float64{
				"first_serve":  0.15,
				"second_serve": 0.05,
			},
			AceSkillScale: 0.2,
		},
		Fatigue: FatigueConfig{
			Floor:          0.25,
			ShotCost:       0.04,
			SpecialCost:    0.02,
			LongRallyCost:  0.01,
			LongRallyAfter: 4,
			Recovery:       0.30,
		},
		Opponent: OpponentConfig{
			SkillMin: 0.3,
			SkillMax: 0.9,
		},
	}
}
