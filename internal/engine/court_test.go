package engine

import "testing"

func allZones() []CourtZone {
	return []CourtZone{Baseline, MidCourt, Net, WideLeft, WideRight}
}

func TestZoneTransitionsDeterministic(t *testing.T) {
	for _, zone := range allZones() {
		for _, shot := range AllShots() {
			a, b := HitterZone(zone, shot), HitterZone(zone, shot)
			if a != b {
				t.Fatalf("HitterZone(%v, %v) unstable: %v vs %v", zone, shot, a, b)
			}
			a, b = ReceiverZone(zone, shot), ReceiverZone(zone, shot)
			if a != b {
				t.Fatalf("ReceiverZone(%v, %v) unstable: %v vs %v", zone, shot, a, b)
			}
		}
	}
}

func TestHitterZoneTransitions(t *testing.T) {
	cases := []struct {
		from CourtZone
		shot ShotType
		want CourtZone
	}{
		{Baseline, ApproachShot, Net},
		{Baseline, ForehandDownTheLine, MidCourt},
		{MidCourt, BackhandDownTheLine, Net},
		{Net, Volley, Net},
		{WideLeft, ForehandCrossCourt, Baseline},
		{WideRight, Slice, WideRight},
		{Net, Lob, Baseline},
		{Baseline, DropShot, MidCourt},
	}
	for _, c := range cases {
		if got := HitterZone(c.from, c.shot); got != c.want {
			t.Errorf("HitterZone(%v, %v) = %v, want %v", c.from, c.shot, got, c.want)
		}
	}
}

func TestReceiverZoneTransitions(t *testing.T) {
	cases := []struct {
		from CourtZone
		shot ShotType
		want CourtZone
	}{
		{Baseline, ForehandCrossCourt, WideLeft},
		{Baseline, BackhandCrossCourt, WideRight},
		{WideLeft, ForehandDownTheLine, Baseline},
		{Baseline, DropShot, MidCourt},
		{MidCourt, DropShot, Net},
		{Net, Lob, Baseline},
		{Baseline, FirstServe, Baseline},
		{Net, Volley, MidCourt},
	}
	for _, c := range cases {
		if got := ReceiverZone(c.from, c.shot); got != c.want {
			t.Errorf("ReceiverZone(%v, %v) = %v, want %v", c.from, c.shot, got, c.want)
		}
	}
}

func TestEveryZoneHasLegalShots(t *testing.T) {
	for _, zone := range allZones() {
		shots := LegalShots(zone)
		if len(shots) == 0 {
			t.Errorf("no legal shots from %v", zone)
		}
		for _, s := range shots {
			if s.IsServe() {
				t.Errorf("serve %v listed as rally shot for %v", s, zone)
			}
			if !ShotLegal(zone, s) {
				t.Errorf("ShotLegal(%v, %v) = false for listed shot", zone, s)
			}
		}
	}
}

func TestShotLegality(t *testing.T) {
	cases := []struct {
		zone  CourtZone
		shot  ShotType
		legal bool
	}{
		{Baseline, Volley, false},
		{WideLeft, Volley, false},
		{MidCourt, Volley, true},
		{Net, Volley, true},
		{Net, ApproachShot, false},
		{Net, Slice, false},
		{WideRight, DropShot, false},
		{Baseline, ForehandCrossCourt, true},
		{Net, ForehandCrossCourt, true},
		{WideLeft, Lob, true},
	}
	for _, c := range cases {
		if got := ShotLegal(c.zone, c.shot); got != c.legal {
			t.Errorf("ShotLegal(%v, %v) = %v, want %v", c.zone, c.shot, got, c.legal)
		}
	}
}

func TestCrossCourtLegalEverywhere(t *testing.T) {
	// The weighted opponent policy and the error-free fallback both rely on
	// cross-court groundstrokes never being illegal.
	for _, zone := range allZones() {
		if !ShotLegal(zone, ForehandCrossCourt) || !ShotLegal(zone, BackhandCrossCourt) {
			t.Errorf("cross-court not legal from %v", zone)
		}
	}
}
