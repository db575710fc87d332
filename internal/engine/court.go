package engine

// Court position model: deterministic lookup tables mapping a shot to the
// hitter's resulting zone and to the zone the receiver is forced to play
// from. All randomness lives in shot resolution, none here.

// HitterZone returns the hitter's position after playing the shot.
func HitterZone(cur CourtZone, shot ShotType) CourtZone {
	switch shot {
	case FirstServe, SecondServe:
		return Baseline
	case ForehandCrossCourt, BackhandCrossCourt:
		// Cross-court exchanges recover the hitter to the center baseline.
		return Baseline
	case ForehandDownTheLine, BackhandDownTheLine:
		return towardNet(cur)
	case DropShot:
		return MidCourt
	case Lob:
		return Baseline
	case Slice:
		return cur
	case ApproachShot:
		return Net
	case Volley:
		return Net
	default:
		return cur
	}
}

// ReceiverZone returns the zone a successful shot forces the receiver into
// for their next play.
func ReceiverZone(cur CourtZone, shot ShotType) CourtZone {
	switch shot {
	case FirstServe, SecondServe:
		return Baseline
	case ForehandCrossCourt:
		return WideLeft
	case BackhandCrossCourt:
		return WideRight
	case ForehandDownTheLine, BackhandDownTheLine:
		return Baseline
	case DropShot:
		// A good drop drags the receiver forward.
		return towardNet(cur)
	case Lob:
		return Baseline
	case Slice:
		return Baseline
	case ApproachShot:
		return Baseline
	case Volley:
		return MidCourt
	default:
		return cur
	}
}

// towardNet advances one step: wide zones first recover to mid-court.
func towardNet(z CourtZone) CourtZone {
	switch z {
	case Baseline, WideLeft, WideRight:
		return MidCourt
	case MidCourt, Net:
		return Net
	default:
		return MidCourt
	}
}

// legalShotsByZone holds the shot vocabulary reachable from each position.
// Cross-court groundstrokes are legal everywhere so a shot set is never
// empty; volleys require being at or inside mid-court.
var legalShotsByZone = map[CourtZone][]ShotType{
	Baseline: {
		ForehandCrossCourt, ForehandDownTheLine,
		BackhandCrossCourt, BackhandDownTheLine,
		DropShot, Lob, Slice, ApproachShot,
	},
	MidCourt: {
		ForehandCrossCourt, ForehandDownTheLine,
		BackhandCrossCourt, BackhandDownTheLine,
		DropShot, Slice, ApproachShot, Volley,
	},
	Net: {
		ForehandCrossCourt, BackhandCrossCourt,
		Volley, DropShot, Lob,
	},
	WideLeft: {
		ForehandCrossCourt, ForehandDownTheLine,
		BackhandCrossCourt, BackhandDownTheLine,
		Lob, Slice,
	},
	WideRight: {
		ForehandCrossCourt, ForehandDownTheLine,
		BackhandCrossCourt, BackhandDownTheLine,
		Lob, Slice,
	},
}

// LegalShots returns the rally shots playable from the zone.
// The returned slice is shared; callers must not mutate it.
func LegalShots(zone CourtZone) []ShotType {
	return legalShotsByZone[zone]
}

// ShotLegal reports whether the rally shot may be played from the zone.
// Serves are never legal mid-rally.
func ShotLegal(zone CourtZone, shot ShotType) bool {
	for _, s := range legalShotsByZone[zone] {
		if s == shot {
			return true
		}
	}
	return false
}
