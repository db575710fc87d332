package engine

// MatchSnapshot is a flat, comparable view of the whole match state. Stamina
// is scaled to integer thousandths so snapshots of two deterministic runs can
// be compared with == and no float noise.
type MatchSnapshot struct {
	Turn        Turn
	Serving     bool
	SecondServe bool
	RallyLength int

	PlayerZone      CourtZone
	OpponentZone    CourtZone
	PlayerStamina   int // thousandths
	OpponentStamina int

	Points   [2]int
	Games    [2]int
	Sets     [2]int
	Server   PlayerID
	Tiebreak bool
	Done     bool
	Winner   PlayerID
}

// Snapshot captures the current match state.
func (m *Match) Snapshot() MatchSnapshot {
	return MatchSnapshot{
		Turn:            m.Turn(),
		Serving:         m.serving,
		SecondServe:     m.secondServe,
		RallyLength:     m.RallyLength(),
		PlayerZone:      m.players[Human].Zone,
		OpponentZone:    m.players[Opponent].Zone,
		PlayerStamina:   milli(m.players[Human].Stamina),
		OpponentStamina: milli(m.players[Opponent].Stamina),
		Points:          m.score.Points,
		Games:           m.score.Games,
		Sets:            m.score.Sets,
		Server:          m.score.Server,
		Tiebreak:        m.score.Tiebreak,
		Done:            m.score.Done(),
		Winner:          m.score.Winner(),
	}
}

func milli(v float64) int {
	return int(v*1000 + 0.5)
}
