// Package config provides YAML-based configuration loading for the tennis
// simulation: match format, shot resolution tuning, fatigue costs and
// opponent generation, with difficulty presets layered on top.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-tennis/internal/engine"
)

// Config is the full engine configuration as loaded from YAML.
type Config struct {
	Match    MatchConfig    `yaml:"match"`
	Tuning   TuningConfig   `yaml:"tuning"`
	Fatigue  FatigueConfig  `yaml:"fatigue"`
	Opponent OpponentConfig `yaml:"opponent"`
}

// MatchConfig defines the match format.
type MatchConfig struct {
	BestOf int `yaml:"best_of"`
}

// TuningConfig mirrors the shot resolution coefficients. Shot tables are
// keyed by the snake_case shot names listed in ShotKeys.
type TuningConfig struct {
	MinFloor        float64            `yaml:"min_floor"`
	MaxCeiling      float64            `yaml:"max_ceiling"`
	StrengthBonus   float64            `yaml:"strength_bonus"`
	FatigueBase     float64            `yaml:"fatigue_base"`
	FatigueScale    float64            `yaml:"fatigue_scale"`
	WinnerBand      float64            `yaml:"winner_band"`
	MomentumPerShot float64            `yaml:"momentum_per_shot"`
	MomentumCap     float64            `yaml:"momentum_cap"`
	Risk            map[string]float64 `yaml:"risk"`
	AceChance       map[string]float64 `yaml:"ace_chance"`
	AceSkillScale   float64            `yaml:"ace_skill_scale"`
}

// FatigueConfig mirrors the stamina model.
type FatigueConfig struct {
	Floor          float64 `yaml:"floor"`
	ShotCost       float64 `yaml:"shot_cost"`
	SpecialCost    float64 `yaml:"special_cost"`
	LongRallyCost  float64 `yaml:"long_rally_cost"`
	LongRallyAfter int     `yaml:"long_rally_after"`
	Recovery       float64 `yaml:"recovery"`
}

// OpponentConfig bounds generated opponent skills.
type OpponentConfig struct {
	SkillMin float64 `yaml:"skill_min"`
	SkillMax float64 `yaml:"skill_max"`
}

// shotKeys maps YAML keys onto shot types.
var shotKeys = map[string]engine.ShotType{
	"first_serve":            engine.FirstServe,
	"second_serve":           engine.SecondServe,
	"forehand_crosscourt":    engine.ForehandCrossCourt,
	"forehand_down_the_line": engine.ForehandDownTheLine,
	"backhand_crosscourt":    engine.BackhandCrossCourt,
	"backhand_down_the_line": engine.BackhandDownTheLine,
	"drop_shot":              engine.DropShot,
	"lob":                    engine.Lob,
	"slice":                  engine.Slice,
	"approach_shot":          engine.ApproachShot,
	"volley":                 engine.Volley,
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Tuning.MinFloor <= 0 || c.Tuning.MaxCeiling <= c.Tuning.MinFloor || c.Tuning.MaxCeiling > 1 {
		return fmt.Errorf("config: probability bounds [%.2f, %.2f] invalid", c.Tuning.MinFloor, c.Tuning.MaxCeiling)
	}
	if c.Fatigue.Floor <= 0 || c.Fatigue.Floor >= 1 {
		return fmt.Errorf("config: fatigue floor %.2f outside (0,1)", c.Fatigue.Floor)
	}
	if c.Opponent.SkillMin < 0 || c.Opponent.SkillMax > 1 || c.Opponent.SkillMax < c.Opponent.SkillMin {
		return fmt.Errorf("config: opponent skill range [%.2f, %.2f] invalid", c.Opponent.SkillMin, c.Opponent.SkillMax)
	}
	for key := range c.Tuning.Risk {
		if _, ok := shotKeys[key]; !ok {
			return fmt.Errorf("config: unknown shot %q in risk table", key)
		}
	}
	for key := range c.Tuning.AceChance {
		if _, ok := shotKeys[key]; !ok {
			return fmt.Errorf("config: unknown shot %q in ace table", key)
		}
	}
	return nil
}

// EngineTuning converts the YAML coefficients into the engine form. Shots
// missing from the risk table inherit the shipped default so partial
// overrides work.
func (c Config) EngineTuning() engine.Tuning {
	t := engine.DefaultTuning()
	t.MinFloor = c.Tuning.MinFloor
	t.MaxCeiling = c.Tuning.MaxCeiling
	t.StrengthBonus = c.Tuning.StrengthBonus
	t.FatigueBase = c.Tuning.FatigueBase
	t.FatigueScale = c.Tuning.FatigueScale
	t.WinnerBand = c.Tuning.WinnerBand
	t.MomentumPerShot = c.Tuning.MomentumPerShot
	t.MomentumCap = c.Tuning.MomentumCap
	t.AceSkillScale = c.Tuning.AceSkillScale
	for key, v := range c.Tuning.Risk {
		t.Risk[shotKeys[key]] = v
	}
	for key, v := range c.Tuning.AceChance {
		t.AceChance[shotKeys[key]] = v
	}
	return t
}

// EngineFatigue converts the YAML fatigue section into the engine form.
func (c Config) EngineFatigue() engine.FatigueModel {
	return engine.FatigueModel{
		Floor:          c.Fatigue.Floor,
		ShotCost:       c.Fatigue.ShotCost,
		SpecialCost:    c.Fatigue.SpecialCost,
		LongRallyCost:  c.Fatigue.LongRallyCost,
		LongRallyAfter: c.Fatigue.LongRallyAfter,
		Recovery:       c.Fatigue.Recovery,
	}
}

// OpponentSkillRange converts the opponent section into the engine form.
func (c Config) OpponentSkillRange() engine.SkillRange {
	return engine.SkillRange{Min: c.Opponent.SkillMin, Max: c.Opponent.SkillMax}
}
