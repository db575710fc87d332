package engine

import "fmt"

// Profile is the static attribute set supplied by the caller at match start:
// per-shot proficiency in [0,1], a set of strength shots that get a success
// boost, and the opponent's playing style.
type Profile struct {
	Name      string
	Skills    map[ShotType]float64
	Strengths map[ShotType]bool
	Style     Style
}

// Skill returns the proficiency for a shot type, 0 if absent.
func (p Profile) Skill(shot ShotType) float64 {
	return p.Skills[shot]
}

// IsStrength reports whether the shot is one of the profile's strengths.
func (p Profile) IsStrength(shot ShotType) bool {
	return p.Strengths[shot]
}

// Validate checks that every shot type has a skill entry in [0,1].
// Returns ErrMalformedProfile wrapped with the offending entry.
func (p Profile) Validate() error {
	if p.Skills == nil {
		return fmt.Errorf("%w: no skills", ErrMalformedProfile)
	}
	for _, shot := range AllShots() {
		v, ok := p.Skills[shot]
		if !ok {
			return fmt.Errorf("%w: missing skill for %s", ErrMalformedProfile, shot)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: skill %.2f for %s outside [0,1]", ErrMalformedProfile, v, shot)
		}
	}
	for shot := range p.Strengths {
		if _, ok := p.Skills[shot]; !ok {
			return fmt.Errorf("%w: strength %s has no skill entry", ErrMalformedProfile, shot)
		}
	}
	return nil
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	out := Profile{Name: p.Name, Style: p.Style}
	out.Skills = make(map[ShotType]float64, len(p.Skills))
	for k, v := range p.Skills {
		out.Skills[k] = v
	}
	out.Strengths = make(map[ShotType]bool, len(p.Strengths))
	for k, v := range p.Strengths {
		if v {
			out.Strengths[k] = true
		}
	}
	return out
}

// DefaultPlayerProfile is the fixed human profile: strong forehand, handy
// drop shot, weak volley, average everything else.
func DefaultPlayerProfile() Profile {
	return Profile{
		Name: "You",
		Skills: map[ShotType]float64{
			FirstServe:          0.50,
			SecondServe:         0.50,
			ForehandCrossCourt:  0.80,
			ForehandDownTheLine: 0.80,
			BackhandCrossCourt:  0.50,
			BackhandDownTheLine: 0.50,
			DropShot:            0.70,
			Lob:                 0.50,
			Slice:               0.50,
			ApproachShot:        0.55,
			Volley:              0.30,
		},
		Strengths: map[ShotType]bool{
			ForehandCrossCourt:  true,
			ForehandDownTheLine: true,
		},
		Style: AllCourt,
	}
}

// SkillSummary lists the scouting-report categories with the shot type that
// stands in for each one.
var SkillSummary = []struct {
	Label string
	Shot  ShotType
}{
	{"Serve", FirstServe},
	{"Forehand", ForehandCrossCourt},
	{"Backhand", BackhandCrossCourt},
	{"Volley", Volley},
	{"Drop Shot", DropShot},
	{"Lob", Lob},
}

// SkillLabel describes a proficiency value in scouting-report terms.
func SkillLabel(v float64) string {
	switch {
	case v < 0.35:
		return "Poor"
	case v < 0.45:
		return "Below Average"
	case v < 0.55:
		return "Average"
	case v < 0.7:
		return "Good"
	case v < 0.85:
		return "Excellent"
	default:
		return "Outstanding"
	}
}
