package engine

import "math/rand"

// Tuning collects every numeric coefficient of the shot resolution model.
// The shapes (monotonicity, clamping) are fixed; the numbers are loaded from
// configuration so the simulation can be rebalanced without code changes.
type Tuning struct {
	// Success probability is clamped into [MinFloor, MaxCeiling] so no shot
	// is ever a guaranteed make or a guaranteed miss.
	MinFloor   float64
	MaxCeiling float64

	// StrengthBonus multiplies the probability when the shot is one of the
	// hitter's strengths.
	StrengthBonus float64

	// Fatigue factor is FatigueBase + FatigueScale*stamina, monotone
	// increasing in stamina and equal to 1.0 at full freshness.
	FatigueBase  float64
	FatigueScale float64

	// WinnerBand is the top fraction of the success region that resolves as
	// an outright winner instead of a returnable ball.
	WinnerBand float64

	// Long rallies slightly favor continuation: the probability is scaled by
	// 1 + min(MomentumCap, MomentumPerShot*(length-3)).
	MomentumPerShot float64
	MomentumCap     float64

	// Risk is the per-shot risk term; the risk factor applied is 1-Risk.
	Risk map[ShotType]float64

	// AceChance is the unreturnable-serve chance per serve type, adjusted by
	// AceSkillScale*(serveSkill-0.5).
	AceChance     map[ShotType]float64
	AceSkillScale float64
}

// DefaultTuning returns the shipped balance, taken from the prototype's
// shot table.
func DefaultTuning() Tuning {
	return Tuning{
		MinFloor:        0.10,
		MaxCeiling:      0.95,
		StrengthBonus:   1.15,
		FatigueBase:     0.55,
		FatigueScale:    0.45,
		WinnerBand:      0.15,
		MomentumPerShot: 0.01,
		MomentumCap:     0.05,
		Risk: map[ShotType]float64{
			FirstServe:          0.25,
			SecondServe:         0.10,
			ForehandCrossCourt:  0.10,
			ForehandDownTheLine: 0.20,
			BackhandCrossCourt:  0.15,
			BackhandDownTheLine: 0.25,
			DropShot:            0.35,
			Lob:                 0.30,
			Slice:               0.15,
			ApproachShot:        0.25,
			Volley:              0.20,
		},
		AceChance: map[ShotType]float64{
			FirstServe:  0.15,
			SecondServe: 0.05,
		},
		AceSkillScale: 0.2,
	}
}

// Outcome is the result of resolving one shot.
type Outcome int

const (
	OutcomeError Outcome = iota // unforced error, hitter loses the point
	OutcomeReturnable
	OutcomeWinner // outright winner, hitter wins the point
	OutcomeFault  // serve out; second serve or double fault
	OutcomeAce    // unreturnable serve
)

func (o Outcome) String() string {
	switch o {
	case OutcomeError:
		return "error"
	case OutcomeReturnable:
		return "returnable"
	case OutcomeWinner:
		return "winner"
	case OutcomeFault:
		return "fault"
	case OutcomeAce:
		return "ace"
	default:
		return "unknown"
	}
}

// RallyContext is what the resolver may consult besides the hitter itself.
type RallyContext struct {
	RallyLength  int
	LastShot     *ShotEvent
	HitterZone   CourtZone
	ReceiverZone CourtZone
}

// Resolver samples shot outcomes from the composite probability model.
type Resolver struct {
	tuning Tuning
	rng    *rand.Rand
}

// NewResolver creates a resolver drawing from the given seeded source.
func NewResolver(t Tuning, rng *rand.Rand) *Resolver {
	return &Resolver{tuning: t, rng: rng}
}

// SuccessProbability computes the clamped make probability for a rally shot.
// Deterministic for fixed inputs; exported so tests can pin the shape.
func (r *Resolver) SuccessProbability(p Profile, stamina float64, shot ShotType, ctx RallyContext) float64 {
	prob := p.Skill(shot)

	if p.IsStrength(shot) {
		prob *= r.tuning.StrengthBonus
	}

	prob *= r.tuning.FatigueBase + r.tuning.FatigueScale*stamina
	prob *= r.positionalFitness(shot, ctx)
	prob *= 1 - r.tuning.Risk[shot]

	// Rally momentum: long exchanges bias toward continuation.
	if ctx.RallyLength > 3 {
		m := r.tuning.MomentumPerShot * float64(ctx.RallyLength-3)
		if m > r.tuning.MomentumCap {
			m = r.tuning.MomentumCap
		}
		prob *= 1 + m
	}

	return r.clamp(prob)
}

// positionalFitness scores how well the shot fits the current geometry.
func (r *Resolver) positionalFitness(shot ShotType, ctx RallyContext) float64 {
	f := 1.0

	switch shot {
	case DropShot:
		if ctx.ReceiverZone == Baseline {
			f *= 1.15 // most ground to cover
		}
		if ctx.ReceiverZone == Net {
			f *= 0.70 // dropping on a net player feeds the putaway
		}
	case Lob:
		if ctx.ReceiverZone == Net {
			f *= 1.20
		}
	case Volley:
		if ctx.HitterZone != Net {
			f *= 0.75 // stretching volley from mid-court
		}
	}

	// Hitting on the run from a wide position is harder.
	if ctx.HitterZone == WideLeft || ctx.HitterZone == WideRight {
		f *= 0.90
	}

	// Shot-sequence context carried over from the prototype.
	if ctx.LastShot != nil {
		if ctx.LastShot.Type == DropShot && shot == Lob {
			f *= 1.10
		}
		if ctx.LastShot.Type == Lob && shot == Volley {
			f *= 1.10
		}
	}

	return f
}

// ServeProbability computes the clamped in-probability for a serve.
func (r *Resolver) ServeProbability(p Profile, stamina float64, serve ShotType) float64 {
	prob := p.Skill(serve)
	if p.IsStrength(serve) {
		prob *= r.tuning.StrengthBonus
	}
	prob *= r.tuning.FatigueBase + r.tuning.FatigueScale*stamina
	prob *= 1 - r.tuning.Risk[serve]
	return r.clamp(prob)
}

// ResolveRallyShot samples the outcome of a non-serve shot. The top
// WinnerBand fraction of the success region resolves as an outright winner.
func (r *Resolver) ResolveRallyShot(p Profile, stamina float64, shot ShotType, ctx RallyContext) Outcome {
	prob := r.SuccessProbability(p, stamina, shot, ctx)
	roll := r.rng.Float64()

	switch {
	case roll > prob:
		return OutcomeError
	case roll > prob*(1-r.tuning.WinnerBand):
		return OutcomeWinner
	default:
		return OutcomeReturnable
	}
}

// ResolveServe samples a serve: fault, ace, or a returnable ball. A fault on
// a first serve triggers a second serve; on a second serve it is a double
// fault and the point goes to the receiver.
func (r *Resolver) ResolveServe(p Profile, stamina float64, serve ShotType) Outcome {
	prob := r.ServeProbability(p, stamina, serve)
	if r.rng.Float64() > prob {
		return OutcomeFault
	}

	ace := r.tuning.AceChance[serve] + r.tuning.AceSkillScale*(p.Skill(serve)-0.5)
	if ace < 0 {
		ace = 0
	}
	if r.rng.Float64() < ace {
		return OutcomeAce
	}
	return OutcomeReturnable
}

func (r *Resolver) clamp(prob float64) float64 {
	if prob < r.tuning.MinFloor {
		return r.tuning.MinFloor
	}
	if prob > r.tuning.MaxCeiling {
		return r.tuning.MaxCeiling
	}
	return prob
}
