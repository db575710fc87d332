package engine

import (
	"errors"
	"testing"
)

func newTestMatch(t *testing.T, seed int64) *Match {
	t.Helper()
	m, err := NewMatch(DefaultPlayerProfile(), DefaultPlayerProfile(), MatchConfig{
		Seed:        seed,
		FirstServer: Human,
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// step advances the match one action: the due serve, the first legal human
// shot, or the computer's turn. Fully deterministic for a fixed seed.
func step(t *testing.T, m *Match) RallyUpdate {
	t.Helper()
	var (
		u   RallyUpdate
		err error
	)
	switch m.Turn() {
	case TurnHumanServe:
		serve := FirstServe
		if m.SecondServe() {
			serve = SecondServe
		}
		u, err = m.ServeChoice(serve)
	case TurnHumanShot:
		u, err = m.PlayShot(m.HumanShots()[0])
	case TurnOpponent:
		u, err = m.ContinueRally()
	default:
		t.Fatal("stepping a finished match")
	}
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	return u
}

func TestNewMatchValidatesProfiles(t *testing.T) {
	bad := DefaultPlayerProfile()
	delete(bad.Skills, Volley)

	if _, err := NewMatch(bad, DefaultPlayerProfile(), MatchConfig{}); !errors.Is(err, ErrMalformedProfile) {
		t.Errorf("player validation: err = %v", err)
	}
	if _, err := NewMatch(DefaultPlayerProfile(), bad, MatchConfig{}); !errors.Is(err, ErrMalformedProfile) {
		t.Errorf("opponent validation: err = %v", err)
	}

	bad = DefaultPlayerProfile()
	bad.Skills[Lob] = 1.5
	if _, err := NewMatch(bad, DefaultPlayerProfile(), MatchConfig{}); !errors.Is(err, ErrMalformedProfile) {
		t.Errorf("out-of-range skill: err = %v", err)
	}
}

func TestServeOrderEnforced(t *testing.T) {
	m := newTestMatch(t, 1)
	before := m.Snapshot()

	if _, err := m.ServeChoice(SecondServe); !errors.Is(err, ErrInvalidShotForZone) {
		t.Errorf("second serve first: err = %v", err)
	}
	if _, err := m.ServeChoice(ForehandCrossCourt); !errors.Is(err, ErrInvalidShotForZone) {
		t.Errorf("groundstroke as serve: err = %v", err)
	}
	if _, err := m.PlayShot(ForehandCrossCourt); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("rally shot before serve: err = %v", err)
	}
	if _, err := m.ContinueRally(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("opponent turn while player serves: err = %v", err)
	}

	if m.Snapshot() != before {
		t.Errorf("rejected calls mutated match state")
	}
}

func TestOpponentErrorScoresForServer(t *testing.T) {
	for seed := int64(0); seed < 2000; seed++ {
		m := newTestMatch(t, seed)
		u, err := m.ServeChoice(FirstServe)
		if err != nil {
			t.Fatal(err)
		}
		if u.Status != StatusInProgress || m.Turn() != TurnOpponent || m.Snapshot().Serving {
			continue // fault or ace, try another seed
		}

		u, err = m.ContinueRally()
		if err != nil {
			t.Fatal(err)
		}
		if u.PointWinner != Human || u.Status != StatusPointOver {
			continue // opponent got the return back
		}

		if got := u.Score.Points; got != [2]string{"15", "0"} {
			t.Errorf("score after opponent error = %v, want 15-0", got)
		}
		if u.Score.Server != Human {
			t.Errorf("server changed mid-game: %v", u.Score.Server)
		}
		if m.Turn() != TurnHumanServe || m.SecondServe() {
			t.Errorf("next point does not start on a first serve")
		}
		return
	}
	t.Fatal("no seed produced serve-in then immediate opponent error")
}

func TestDoubleFaultScoresForReceiver(t *testing.T) {
	for seed := int64(0); seed < 2000; seed++ {
		m := newTestMatch(t, seed)
		u, err := m.ServeChoice(FirstServe)
		if err != nil {
			t.Fatal(err)
		}
		if !m.SecondServe() {
			continue // first serve landed
		}
		if u.Status != StatusInProgress || u.PointWinner != NoPlayer {
			t.Fatalf("first fault ended the point: %+v", u)
		}

		// Only the second serve is accepted now.
		before := m.Snapshot()
		if _, err := m.ServeChoice(FirstServe); !errors.Is(err, ErrInvalidShotForZone) {
			t.Fatalf("first serve accepted on second-serve ball: %v", err)
		}
		if m.Snapshot() != before {
			t.Fatal("rejected serve mutated state")
		}

		u, err = m.ServeChoice(SecondServe)
		if err != nil {
			t.Fatal(err)
		}
		if u.PointWinner != Opponent {
			continue // second serve landed or aced, not a double fault
		}
		if got := u.Score.Points; got != [2]string{"0", "15"} {
			t.Errorf("score after double fault = %v, want 0-15", got)
		}
		return
	}
	t.Fatal("no seed produced a double fault")
}

func TestIllegalRallyShotRejectedWithoutMutation(t *testing.T) {
	m := newTestMatch(t, 3)
	for i := 0; i < 10000 && m.Turn() != TurnHumanShot; i++ {
		step(t, m)
		if m.Turn() == TurnDone {
			t.Fatal("match finished before the player hit a rally shot")
		}
	}
	if m.Turn() != TurnHumanShot {
		t.Fatal("never reached a player rally turn")
	}

	zone := m.Player(Human).Zone
	var illegal ShotType
	found := false
	for _, s := range RallyShots() {
		if !ShotLegal(zone, s) {
			illegal, found = s, true
			break
		}
	}
	if !found {
		t.Fatalf("every rally shot legal from %v", zone)
	}

	before := m.Snapshot()
	if _, err := m.PlayShot(illegal); !errors.Is(err, ErrInvalidShotForZone) {
		t.Fatalf("illegal %v from %v: err = %v", illegal, zone, err)
	}
	if _, err := m.PlayShot(FirstServe); !errors.Is(err, ErrInvalidShotForZone) {
		t.Fatalf("serve mid-rally: err = %v", err)
	}
	if _, err := m.ServeChoice(FirstServe); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("serve during rally: err = %v", err)
	}
	if m.Snapshot() != before {
		t.Error("rejected calls mutated match state")
	}
}

func TestStaminaDrainsInRallyAndRecovers(t *testing.T) {
	m := newTestMatch(t, 5)

	u := RallyUpdate{PlayerStamina: 1, OpponentStamina: 1}
	lowest := 1.0
	for i := 0; i < 10000 && m.Turn() != TurnDone; i++ {
		prev := u
		u = step(t, m)
		if u.PlayerStamina < lowest {
			lowest = u.PlayerStamina
		}
		if u.PointWinner != NoPlayer {
			// Between points both sides rest.
			if u.PlayerStamina < prev.PlayerStamina && u.OpponentStamina < prev.OpponentStamina {
				t.Fatalf("no recovery after point: %+v", u)
			}
		}
		if u.PlayerStamina < DefaultFatigueModel().Floor || u.OpponentStamina < DefaultFatigueModel().Floor {
			t.Fatalf("stamina under floor: %+v", u)
		}
	}
	if lowest >= 1 {
		t.Error("player stamina never dropped over a full match")
	}
}

func TestFullMatchDeterminism(t *testing.T) {
	m1 := newTestMatch(t, 1234)
	m2 := newTestMatch(t, 1234)

	for i := 0; i < 200000; i++ {
		if m1.Turn() == TurnDone {
			break
		}
		step(t, m1)
		step(t, m2)
		if s1, s2 := m1.Snapshot(), m2.Snapshot(); s1 != s2 {
			t.Fatalf("step %d diverged:\n%+v\n%+v", i, s1, s2)
		}
	}
	if m1.Turn() != TurnDone {
		t.Fatal("match did not finish")
	}
	if m1.Snapshot().Winner == NoPlayer {
		t.Error("finished match has no winner")
	}
}

func TestFinishedMatchRejectsEverything(t *testing.T) {
	m := newTestMatch(t, 42)
	for i := 0; i < 200000 && m.Turn() != TurnDone; i++ {
		step(t, m)
	}
	if m.Turn() != TurnDone {
		t.Fatal("match did not finish")
	}

	if _, err := m.ServeChoice(FirstServe); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("ServeChoice after match: %v", err)
	}
	if _, err := m.PlayShot(ForehandCrossCourt); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("PlayShot after match: %v", err)
	}
	if _, err := m.ContinueRally(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("ContinueRally after match: %v", err)
	}
}

func TestCoinFlipServerDeterministicPerSeed(t *testing.T) {
	a, err := NewMatch(DefaultPlayerProfile(), DefaultPlayerProfile(), MatchConfig{Seed: 9, FirstServer: NoPlayer})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewMatch(DefaultPlayerProfile(), DefaultPlayerProfile(), MatchConfig{Seed: 9, FirstServer: NoPlayer})
	if err != nil {
		t.Fatal(err)
	}
	if a.Score().Server != b.Score().Server {
		t.Errorf("coin flip differs for same seed: %v vs %v", a.Score().Server, b.Score().Server)
	}
}
