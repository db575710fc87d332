package engine

// FatigueModel governs stamina drain within a rally and recovery between
// points. Stamina lives in [Floor, 1]; a fatigued player gets less accurate
// (see Tuning.FatigueFactor), never immobile.
type FatigueModel struct {
	Floor          float64 // stamina never drops below this; must be > 0
	ShotCost       float64 // flat cost per shot hit
	SpecialCost    float64 // extra cost for drop shots and lobs
	LongRallyCost  float64 // extra cost per shot beyond LongRallyAfter
	LongRallyAfter int
	Recovery       float64 // recovered between points, capped at 1.0
}

// DefaultFatigueModel carries the original prototype's costs, normalized to
// the [0,1] stamina scale.
func DefaultFatigueModel() FatigueModel {
	return FatigueModel{
		Floor:          0.25,
		ShotCost:       0.04,
		SpecialCost:    0.02,
		LongRallyCost:  0.01,
		LongRallyAfter: 4,
		Recovery:       0.30,
	}
}

// ApplyShot returns the stamina after hitting the given shot with the rally
// at the given length. Monotone non-increasing, floored.
func (f FatigueModel) ApplyShot(stamina float64, shot ShotType, rallyLength int) float64 {
	cost := f.ShotCost
	if shot == DropShot || shot == Lob {
		cost += f.SpecialCost
	}
	if shot.IsServe() {
		// Serves cost less than a full exchange.
		cost = f.ShotCost * 0.6
	}
	if rallyLength > f.LongRallyAfter {
		cost += f.LongRallyCost * float64(rallyLength-f.LongRallyAfter)
	}
	stamina -= cost
	if stamina < f.Floor {
		stamina = f.Floor
	}
	return stamina
}

// Recover returns the stamina after the between-point rest.
func (f FatigueModel) Recover(stamina float64) float64 {
	stamina += f.Recovery
	if stamina > 1 {
		stamina = 1
	}
	return stamina
}

// FatigueLabel describes a stamina value for the HUD.
func FatigueLabel(stamina float64) string {
	switch {
	case stamina > 0.8:
		return "Fresh"
	case stamina > 0.6:
		return "Slightly Tired"
	case stamina > 0.45:
		return "Tiring"
	case stamina > 0.3:
		return "Very Tired"
	default:
		return "Exhausted"
	}
}
