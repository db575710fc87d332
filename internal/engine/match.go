package engine

import (
	"fmt"
	"math/rand"
)

// MatchConfig configures a new match. Zero values fall back to defaults:
// best of 3, coin-flip opening server, shipped tuning and fatigue numbers.
type MatchConfig struct {
	BestOf      int
	Seed        int64
	FirstServer PlayerID // NoPlayer flips a coin
	Tuning      Tuning
	Fatigue     FatigueModel
}

// Turn identifies whose input the match expects next.
type Turn int

const (
	TurnHumanServe Turn = iota // human is serving: call ServeChoice
	TurnHumanShot              // human is in the rally: call PlayShot
	TurnOpponent               // computer acts next: call ContinueRally
	TurnDone                   // match decided
)

// RallyUpdate is returned by every engine call: the resolved shot, both
// players' position and stamina, the score snapshot and how far the match
// advanced.
type RallyUpdate struct {
	Status          Status
	LastShot        ShotEvent
	PointWinner     PlayerID // NoPlayer while the point is live
	PlayerZone      CourtZone
	OpponentZone    CourtZone
	PlayerStamina   float64
	OpponentStamina float64
	Score           ScoreSnapshot
	Message         string
}

// Match owns all state of one running match. There is no process-wide match;
// multiple instances can run side by side and never share state. All calls
// are synchronous and single-threaded.
type Match struct {
	rng      *rand.Rand
	resolver *Resolver
	fatigue  FatigueModel

	players [2]*PlayerState
	score   *Score

	rally       *Rally // nil between points
	serving     bool
	secondServe bool

	lastEvent ShotEvent
	history   []string
}

// NewMatch validates both profiles and starts a match. Profile validation
// fails fast: no point is ever played against a malformed profile.
func NewMatch(player, opponent Profile, cfg MatchConfig) (*Match, error) {
	if err := player.Validate(); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	if err := opponent.Validate(); err != nil {
		return nil, fmt.Errorf("opponent: %w", err)
	}

	if cfg.Tuning.MaxCeiling == 0 {
		cfg.Tuning = DefaultTuning()
	}
	if cfg.Fatigue.Floor == 0 {
		cfg.Fatigue = DefaultFatigueModel()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	server := cfg.FirstServer
	if server != Human && server != Opponent {
		server = PlayerID(rng.Intn(2))
	}

	m := &Match{
		rng:      rng,
		resolver: NewResolver(cfg.Tuning, rng),
		fatigue:  cfg.Fatigue,
		players: [2]*PlayerState{
			{ID: Human, Profile: player.Clone(), Stamina: 1, Zone: Baseline},
			{ID: Opponent, Profile: opponent.Clone(), Stamina: 1, Zone: Baseline},
		},
		score:   NewScore(cfg.BestOf, server),
		serving: true,
	}
	m.log("New match. %s serving first.", sideName(server))
	return m, nil
}

// Player returns a copy of the given side's live state.
func (m *Match) Player(id PlayerID) PlayerState {
	return *m.players[id]
}

// Score returns the current score snapshot.
func (m *Match) Score() ScoreSnapshot {
	return m.score.Snapshot()
}

// Turn reports whose input the match expects.
func (m *Match) Turn() Turn {
	switch {
	case m.score.Done():
		return TurnDone
	case m.serving && m.score.Server == Human:
		return TurnHumanServe
	case m.serving:
		return TurnOpponent
	case m.rally != nil && m.rally.Hitter == Human:
		return TurnHumanShot
	default:
		return TurnOpponent
	}
}

// SecondServe reports whether the next serve is a second serve.
func (m *Match) SecondServe() bool {
	return m.serving && m.secondServe
}

// RallyLength returns the number of shots in the live rally, 0 between points.
func (m *Match) RallyLength() int {
	if m.rally == nil {
		return 0
	}
	return m.rally.Length()
}

// HumanShots lists the shots the human may legally submit right now.
func (m *Match) HumanShots() []ShotType {
	switch m.Turn() {
	case TurnHumanServe:
		if m.secondServe {
			return []ShotType{SecondServe}
		}
		return []ShotType{FirstServe}
	case TurnHumanShot:
		return LegalShots(m.players[Human].Zone)
	default:
		return nil
	}
}

// History returns up to n most recent event log lines, oldest first.
func (m *Match) History(n int) []string {
	if n <= 0 || n >= len(m.history) {
		return m.history
	}
	return m.history[len(m.history)-n:]
}

// ServeChoice resolves the human's serve. Only the serve type currently due
// is accepted; anything else is rejected with no state change.
func (m *Match) ServeChoice(serve ShotType) (RallyUpdate, error) {
	if m.score.Done() {
		return m.update(StatusMatchOver, NoPlayer), ErrInvalidOperation
	}
	if !m.serving || m.score.Server != Human {
		return m.update(StatusInProgress, NoPlayer), ErrInvalidOperation
	}
	if err := m.checkServeType(serve); err != nil {
		return m.update(StatusInProgress, NoPlayer), err
	}
	return m.resolveServe(Human, serve), nil
}

// PlayShot resolves the human's rally shot. Shots illegal from the human's
// current zone are rejected with ErrInvalidShotForZone and no mutation.
func (m *Match) PlayShot(shot ShotType) (RallyUpdate, error) {
	if m.score.Done() {
		return m.update(StatusMatchOver, NoPlayer), ErrInvalidOperation
	}
	if m.serving || m.rally == nil || m.rally.Hitter != Human {
		return m.update(StatusInProgress, NoPlayer), ErrInvalidOperation
	}
	if shot.IsServe() || !ShotLegal(m.players[Human].Zone, shot) {
		return m.update(StatusInProgress, NoPlayer), ErrInvalidShotForZone
	}
	return m.resolveRallyShot(Human, shot), nil
}

// ContinueRally advances the computer's turn: its serve (first or second as
// due) or a policy-chosen rally shot.
func (m *Match) ContinueRally() (RallyUpdate, error) {
	if m.score.Done() {
		return m.update(StatusMatchOver, NoPlayer), ErrInvalidOperation
	}

	if m.serving {
		if m.score.Server != Opponent {
			return m.update(StatusInProgress, NoPlayer), ErrInvalidOperation
		}
		serve := FirstServe
		if m.secondServe {
			serve = SecondServe
		}
		return m.resolveServe(Opponent, serve), nil
	}

	if m.rally == nil || m.rally.Hitter != Opponent {
		return m.update(StatusInProgress, NoPlayer), ErrInvalidOperation
	}

	opp := m.players[Opponent]
	shot := ChooseShot(m.rng, opp, m.rallyContext(Opponent))
	return m.resolveRallyShot(Opponent, shot), nil
}

func (m *Match) checkServeType(serve ShotType) error {
	if m.secondServe && serve != SecondServe {
		return ErrInvalidShotForZone
	}
	if !m.secondServe && serve != FirstServe {
		return ErrInvalidShotForZone
	}
	return nil
}

func (m *Match) rallyContext(hitter PlayerID) RallyContext {
	ctx := RallyContext{
		HitterZone:   m.players[hitter].Zone,
		ReceiverZone: m.players[hitter.Other()].Zone,
	}
	if m.rally != nil {
		ctx.RallyLength = m.rally.Length()
		ctx.LastShot = m.rally.LastShot()
	}
	return ctx
}

func (m *Match) resolveServe(server PlayerID, serve ShotType) RallyUpdate {
	srv := m.players[server]
	outcome := m.resolver.ResolveServe(srv.Profile, srv.Stamina, serve)
	srv.Stamina = m.fatigue.ApplyShot(srv.Stamina, serve, 0)
	m.log("%s: %s", sideName(server), serve)

	switch outcome {
	case OutcomeFault:
		if !m.secondServe {
			m.secondServe = true
			m.record(ShotEvent{Type: serve, Hitter: server, ResultingZone: srv.Zone})
			m.log("Fault! Second serve.")
			return m.update(StatusInProgress, NoPlayer)
		}
		m.record(ShotEvent{Type: serve, Hitter: server, ResultingZone: srv.Zone})
		m.log("Double fault!")
		return m.awardPoint(server.Other())

	case OutcomeAce:
		m.record(ShotEvent{Type: serve, Hitter: server, Success: true, Winner: true, ResultingZone: srv.Zone})
		m.log("Ace!")
		return m.awardPoint(server)

	default: // returnable
		m.serving = false
		m.secondServe = false
		recv := m.players[server.Other()]
		srv.Zone = HitterZone(srv.Zone, serve)
		recv.Zone = ReceiverZone(recv.Zone, serve)

		ev := ShotEvent{Type: serve, Hitter: server, Success: true, ResultingZone: srv.Zone}
		m.rally = &Rally{
			Shots:    []ShotEvent{ev},
			Hitter:   server.Other(),
			BallZone: recv.Zone,
		}
		m.lastEvent = ev
		return m.update(StatusInProgress, NoPlayer)
	}
}

func (m *Match) resolveRallyShot(hitter PlayerID, shot ShotType) RallyUpdate {
	h := m.players[hitter]
	ctx := m.rallyContext(hitter)
	outcome := m.resolver.ResolveRallyShot(h.Profile, h.Stamina, shot, ctx)
	h.Stamina = m.fatigue.ApplyShot(h.Stamina, shot, ctx.RallyLength+1)
	m.log("Rally #%d: %s hits %s", ctx.RallyLength+1, sideName(hitter), shot)

	switch outcome {
	case OutcomeError:
		m.record(ShotEvent{Type: shot, Hitter: hitter, ResultingZone: h.Zone})
		m.log("%s nets the %s.", sideName(hitter), shot)
		return m.awardPoint(hitter.Other())

	case OutcomeWinner:
		h.Zone = HitterZone(h.Zone, shot)
		m.record(ShotEvent{Type: shot, Hitter: hitter, Success: true, Winner: true, ResultingZone: h.Zone})
		m.log("%s winner!", shot)
		return m.awardPoint(hitter)

	default: // returnable
		recv := m.players[hitter.Other()]
		h.Zone = HitterZone(h.Zone, shot)
		recv.Zone = ReceiverZone(recv.Zone, shot)

		ev := ShotEvent{Type: shot, Hitter: hitter, Success: true, ResultingZone: h.Zone}
		m.rally.Shots = append(m.rally.Shots, ev)
		m.rally.Hitter = hitter.Other()
		m.rally.BallZone = recv.Zone
		m.lastEvent = ev
		return m.update(StatusInProgress, NoPlayer)
	}
}

// awardPoint commits the point, rests both players and resets for the next
// serve. The rally is discarded; ShotEvent history never persists.
func (m *Match) awardPoint(w PlayerID) RallyUpdate {
	status, err := m.score.AddPoint(w)
	if err != nil {
		// Unreachable: callers check Done before resolving.
		return m.update(StatusMatchOver, NoPlayer)
	}
	m.log("Point %s.", sideName(w))

	for _, p := range m.players {
		p.Stamina = m.fatigue.Recover(p.Stamina)
		p.Zone = Baseline
	}
	m.rally = nil
	m.serving = true
	m.secondServe = false

	switch status {
	case StatusGameOver:
		m.log("Game %s. Games %d-%d.", sideName(w), m.score.Games[Human], m.score.Games[Opponent])
	case StatusSetOver:
		m.log("Set %s. Sets %d-%d.", sideName(w), m.score.Sets[Human], m.score.Sets[Opponent])
	case StatusMatchOver:
		m.log("Match %s!", sideName(w))
	}
	return m.update(status, w)
}

func (m *Match) record(ev ShotEvent) {
	if m.rally != nil {
		m.rally.Shots = append(m.rally.Shots, ev)
	}
	m.lastEvent = ev
}

func (m *Match) update(status Status, pointWinner PlayerID) RallyUpdate {
	msg := ""
	if len(m.history) > 0 {
		msg = m.history[len(m.history)-1]
	}
	return RallyUpdate{
		Status:          status,
		LastShot:        m.lastEvent,
		PointWinner:     pointWinner,
		PlayerZone:      m.players[Human].Zone,
		OpponentZone:    m.players[Opponent].Zone,
		PlayerStamina:   m.players[Human].Stamina,
		OpponentStamina: m.players[Opponent].Stamina,
		Score:           m.score.Snapshot(),
		Message:         msg,
	}
}

func (m *Match) log(format string, args ...any) {
	m.history = append(m.history, fmt.Sprintf(format, args...))
}

func sideName(p PlayerID) string {
	switch p {
	case Human:
		return "You"
	case Opponent:
		return "Opponent"
	default:
		return "Nobody"
	}
}
