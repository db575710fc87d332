package engine

import (
	"math/rand"
	"testing"
)

func policyOpponent(style Style, zone CourtZone) *PlayerState {
	p := DefaultPlayerProfile()
	p.Style = style
	return &PlayerState{ID: Opponent, Profile: p, Stamina: 1, Zone: zone}
}

func TestChooseShotAlwaysLegal(t *testing.T) {
	for _, style := range Styles() {
		for _, zone := range allZones() {
			rng := rand.New(rand.NewSource(int64(style)*100 + int64(zone)))
			opp := policyOpponent(style, zone)
			ctx := RallyContext{RallyLength: 3, HitterZone: zone, ReceiverZone: Baseline}

			for i := 0; i < 500; i++ {
				shot := ChooseShot(rng, opp, ctx)
				if shot.IsServe() {
					t.Fatalf("%v at %v chose serve %v mid-rally", style, zone, shot)
				}
				if !ShotLegal(zone, shot) {
					t.Fatalf("%v at %v chose illegal %v", style, zone, shot)
				}
			}
		}
	}
}

func TestChooseShotDeterministicPerSeed(t *testing.T) {
	opp := policyOpponent(AllCourt, Baseline)
	ctx := RallyContext{RallyLength: 2, HitterZone: Baseline, ReceiverZone: Baseline}

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a, b := ChooseShot(r1, opp, ctx), ChooseShot(r2, opp, ctx)
		if a != b {
			t.Fatalf("draw %d diverged: %v vs %v", i, a, b)
		}
	}
}

func sampleShots(t *testing.T, style Style, zone CourtZone, ctx RallyContext, n int) map[ShotType]int {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	opp := policyOpponent(style, zone)
	counts := map[ShotType]int{}
	for i := 0; i < n; i++ {
		counts[ChooseShot(rng, opp, ctx)]++
	}
	return counts
}

func TestStyleBiasShowsInFrequencies(t *testing.T) {
	ctx := RallyContext{RallyLength: 2, HitterZone: Baseline, ReceiverZone: Baseline}
	const n = 5000

	// A serve-and-volleyer approaches far more often than a defensive baseliner.
	sv := sampleShots(t, ServeAndVolleyer, Baseline, ctx, n)
	db := sampleShots(t, DefensiveBaseliner, Baseline, ctx, n)
	if sv[ApproachShot] <= db[ApproachShot] {
		t.Errorf("approach counts: serve-and-volley %d, defensive %d", sv[ApproachShot], db[ApproachShot])
	}

	// A forehand-dominant player leans on the forehand wing.
	fh := sampleShots(t, ForehandDominant, Baseline, ctx, n)
	if fh[ForehandCrossCourt]+fh[ForehandDownTheLine] <= fh[BackhandCrossCourt]+fh[BackhandDownTheLine] {
		t.Errorf("forehand-dominant did not favor forehands: %v", fh)
	}
}

func TestNetPlayerPrefersVolley(t *testing.T) {
	ctx := RallyContext{RallyLength: 3, HitterZone: Net, ReceiverZone: Baseline}
	counts := sampleShots(t, AllCourt, Net, ctx, 5000)

	for shot, c := range counts {
		if shot != Volley && c >= counts[Volley] {
			t.Errorf("at net, %v chosen %d times vs volley %d", shot, c, counts[Volley])
		}
	}
}

func TestLobsNetPlayer(t *testing.T) {
	deep := RallyContext{RallyLength: 3, HitterZone: Baseline, ReceiverZone: Baseline}
	netted := RallyContext{RallyLength: 3, HitterZone: Baseline, ReceiverZone: Net}

	base := sampleShots(t, AllCourt, Baseline, deep, 5000)
	vsNet := sampleShots(t, AllCourt, Baseline, netted, 5000)
	if vsNet[Lob] <= base[Lob] {
		t.Errorf("lob counts: vs net %d, vs baseline %d", vsNet[Lob], base[Lob])
	}
}
