package config

import "fmt"

// DifficultyPreset names a coarse opponent strength level selectable from
// the command line.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyPro    DifficultyPreset = "pro"
)

// Presets returns every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyPro}
}

// ParsePreset resolves a command-line difficulty name.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q (easy, normal, hard, pro)", name)
}

// ApplyPreset narrows the generated opponent's skill range for the preset.
// Normal keeps the configured range untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Opponent.SkillMin = 0.2
		cfg.Opponent.SkillMax = 0.5
	case DifficultyHard:
		cfg.Opponent.SkillMin = 0.6
		cfg.Opponent.SkillMax = 0.9
	case DifficultyPro:
		cfg.Opponent.SkillMin = 0.75
		cfg.Opponent.SkillMax = 0.95
	}
}
