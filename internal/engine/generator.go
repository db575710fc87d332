package engine

import "math/rand"

// SkillRange bounds the per-category proficiency of a generated opponent.
type SkillRange struct {
	Min float64
	Max float64
}

// DefaultSkillRange mirrors the original scouting spread (3..9 on a 1-10 scale).
func DefaultSkillRange() SkillRange {
	return SkillRange{Min: 0.3, Max: 0.9}
}

// RandomOpponent generates an opponent profile: per-category skills drawn
// uniformly from the range, two strength shots, and a random style. Serve,
// groundstroke and net skills are generated as categories and fanned out to
// the shot types they cover, so a big forehand is big both cross-court and
// down the line.
func RandomOpponent(rng *rand.Rand, name string, r SkillRange) Profile {
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	draw := func() float64 {
		return r.Min + rng.Float64()*(r.Max-r.Min)
	}

	serve := draw()
	forehand := draw()
	backhand := draw()
	volley := draw()
	drop := draw()
	lob := draw()

	p := Profile{
		Name: name,
		Skills: map[ShotType]float64{
			FirstServe:          serve,
			SecondServe:         clamp01(serve + 0.1), // second serves are safer for everyone
			ForehandCrossCourt:  forehand,
			ForehandDownTheLine: forehand,
			BackhandCrossCourt:  backhand,
			BackhandDownTheLine: backhand,
			DropShot:            drop,
			Lob:                 lob,
			Slice:               (backhand + 0.5) / 2,
			ApproachShot:        (forehand + volley) / 2,
			Volley:              volley,
		},
		Strengths: map[ShotType]bool{},
		Style:     Styles()[rng.Intn(len(Styles()))],
	}

	// Two distinct strength shots.
	shots := RallyShots()
	first := shots[rng.Intn(len(shots))]
	second := first
	for second == first {
		second = shots[rng.Intn(len(shots))]
	}
	p.Strengths[first] = true
	p.Strengths[second] = true

	return p
}

var opponentNames = []string{
	"Marat", "Goran", "Gustavo", "Amelie", "Justine", "Kim",
	"Paradorn", "Younes", "Tommy", "Elena", "Dinara", "Fernando",
	"Nikolay", "Svetlana", "Guillermo", "Jelena", "Magnus", "Conchita",
}

// OpponentName draws a name for a generated opponent.
func OpponentName(rng *rand.Rand) string {
	return opponentNames[rng.Intn(len(opponentNames))]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
