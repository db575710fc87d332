package engine

import "strconv"

// Score is the tennis scoring state machine: points into games, games into
// sets, sets into the match, with deuce/advantage, per-game server rotation
// and a 12-point tiebreak at six games all. It is mutated only through
// AddPoint and never represents an illegal score.
type Score struct {
	BestOf int // sets to play, 3 or 5

	Points [2]int
	Games  [2]int
	Sets   [2]int

	Server   PlayerID
	Tiebreak bool

	tbFirstServer PlayerID // server of the first tiebreak point
	done          bool
	winner        PlayerID
}

// NewScore starts a match score with the given format and opening server.
func NewScore(bestOf int, firstServer PlayerID) *Score {
	if bestOf != 5 {
		bestOf = 3
	}
	return &Score{
		BestOf: bestOf,
		Server: firstServer,
		winner: NoPlayer,
	}
}

// SetsToWin returns the sets required to take the match.
func (s *Score) SetsToWin() int {
	return s.BestOf/2 + 1
}

// Done reports whether the match is decided.
func (s *Score) Done() bool {
	return s.done
}

// Winner returns the match winner, or NoPlayer while undecided.
func (s *Score) Winner() PlayerID {
	return s.winner
}

// AddPoint awards one point and advances the machine, returning how far the
// match progressed (point, game, set or match). Calling it on a decided
// match returns ErrInvalidOperation without mutation.
func (s *Score) AddPoint(w PlayerID) (Status, error) {
	if s.done {
		return StatusMatchOver, ErrInvalidOperation
	}
	if w != Human && w != Opponent {
		return StatusInProgress, ErrInvalidOperation
	}

	if s.Tiebreak {
		return s.addTiebreakPoint(w), nil
	}

	s.Points[w]++
	l := s.Points[w.Other()]

	// Game requires four points and a two-point lead; from deuce that means
	// advantage then game, and losing advantage reverts to deuce.
	if s.Points[w] >= 4 && s.Points[w]-l >= 2 {
		return s.winGame(w), nil
	}
	return StatusPointOver, nil
}

// addTiebreakPoint runs the separate tiebreak counting scheme: first to 7,
// win by 2, serve alternating every two points after the opening point.
func (s *Score) addTiebreakPoint(w PlayerID) Status {
	s.Points[w]++
	l := s.Points[w.Other()]

	if s.Points[w] >= 7 && s.Points[w]-l >= 2 {
		s.Games[w]++ // 7-6
		return s.winSet(w)
	}

	// Rotate the serve for the next point.
	total := s.Points[Human] + s.Points[Opponent]
	if ((total+1)/2)%2 == 0 {
		s.Server = s.tbFirstServer
	} else {
		s.Server = s.tbFirstServer.Other()
	}
	return StatusPointOver
}

func (s *Score) winGame(w PlayerID) Status {
	s.Games[w]++
	s.Points = [2]int{}
	s.Server = s.Server.Other()

	l := s.Games[w.Other()]
	switch {
	case s.Games[w] >= 6 && s.Games[w]-l >= 2:
		return s.winSet(w)
	case s.Games[w] == 6 && l == 6:
		s.Tiebreak = true
		s.tbFirstServer = s.Server
		return StatusGameOver
	default:
		return StatusGameOver
	}
}

func (s *Score) winSet(w PlayerID) Status {
	s.Sets[w]++
	s.Points = [2]int{}
	s.Games = [2]int{}
	if s.Tiebreak {
		// The side that received first in the tiebreak opens the next set.
		s.Server = s.tbFirstServer.Other()
		s.Tiebreak = false
	}

	if s.Sets[w] >= s.SetsToWin() {
		s.done = true
		s.winner = w
		return StatusMatchOver
	}
	return StatusSetOver
}

// ScoreSnapshot is the read-only view handed to the presentation layer.
type ScoreSnapshot struct {
	Points    [2]string // tennis point names, or raw counts in a tiebreak
	Games     [2]int
	Sets      [2]int
	Server    PlayerID
	Tiebreak  bool
	Deuce     bool
	Advantage PlayerID // NoPlayer unless one side holds advantage
	Done      bool
	Winner    PlayerID
}

var pointNames = [4]string{"0", "15", "30", "40"}

// Snapshot derives the display view of the current score.
func (s *Score) Snapshot() ScoreSnapshot {
	snap := ScoreSnapshot{
		Games:     s.Games,
		Sets:      s.Sets,
		Server:    s.Server,
		Tiebreak:  s.Tiebreak,
		Advantage: NoPlayer,
		Done:      s.done,
		Winner:    s.winner,
	}

	if s.Tiebreak {
		snap.Points[Human] = strconv.Itoa(s.Points[Human])
		snap.Points[Opponent] = strconv.Itoa(s.Points[Opponent])
		return snap
	}

	h, o := s.Points[Human], s.Points[Opponent]
	switch {
	case h >= 3 && o >= 3 && h == o:
		snap.Deuce = true
		snap.Points = [2]string{"40", "40"}
	case h >= 3 && o >= 3 && h > o:
		snap.Advantage = Human
		snap.Points = [2]string{"Ad", "40"}
	case h >= 3 && o >= 3 && o > h:
		snap.Advantage = Opponent
		snap.Points = [2]string{"40", "Ad"}
	default:
		snap.Points = [2]string{pointNames[min(h, 3)], pointNames[min(o, 3)]}
	}
	return snap
}
