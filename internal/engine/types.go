// Package engine implements the turn-based tennis match simulation: shot
// resolution, fatigue and court position tracking, the computer opponent
// policy, and the standard tennis scoring state machine. It contains pure
// logic with no I/O; randomness comes from an injected seeded source so
// matches are fully reproducible.
package engine

// PlayerID identifies a side of the court.
type PlayerID int

const (
	// NoPlayer marks "no side", e.g. advantage at deuce or an undecided match.
	NoPlayer PlayerID = iota - 1
	Human
	Opponent
)

// Other returns the opposing side.
func (p PlayerID) Other() PlayerID {
	if p == Human {
		return Opponent
	}
	return Human
}

func (p PlayerID) String() string {
	switch p {
	case Human:
		return "player"
	case Opponent:
		return "opponent"
	default:
		return "none"
	}
}

// ShotType enumerates every shot the engine can resolve.
type ShotType int

const (
	FirstServe ShotType = iota
	SecondServe
	ForehandCrossCourt
	ForehandDownTheLine
	BackhandCrossCourt
	BackhandDownTheLine
	DropShot
	Lob
	Slice
	ApproachShot
	Volley
)

func (s ShotType) String() string {
	switch s {
	case FirstServe:
		return "First Serve"
	case SecondServe:
		return "Second Serve"
	case ForehandCrossCourt:
		return "Forehand Cross-court"
	case ForehandDownTheLine:
		return "Forehand Down-the-line"
	case BackhandCrossCourt:
		return "Backhand Cross-court"
	case BackhandDownTheLine:
		return "Backhand Down-the-line"
	case DropShot:
		return "Drop Shot"
	case Lob:
		return "Lob"
	case Slice:
		return "Slice"
	case ApproachShot:
		return "Approach Shot"
	case Volley:
		return "Volley"
	default:
		return "unknown"
	}
}

// IsServe reports whether the shot is a serve.
func (s ShotType) IsServe() bool {
	return s == FirstServe || s == SecondServe
}

// RallyShots returns every non-serve shot type.
func RallyShots() []ShotType {
	return []ShotType{
		ForehandCrossCourt, ForehandDownTheLine,
		BackhandCrossCourt, BackhandDownTheLine,
		DropShot, Lob, Slice, ApproachShot, Volley,
	}
}

// AllShots returns every shot type including serves.
func AllShots() []ShotType {
	return append([]ShotType{FirstServe, SecondServe}, RallyShots()...)
}

// CourtZone is the discrete positional state of a player.
type CourtZone int

const (
	Baseline CourtZone = iota
	MidCourt
	Net
	WideLeft
	WideRight
)

func (z CourtZone) String() string {
	switch z {
	case Baseline:
		return "baseline"
	case MidCourt:
		return "mid-court"
	case Net:
		return "net"
	case WideLeft:
		return "wide left"
	case WideRight:
		return "wide right"
	default:
		return "unknown"
	}
}

// Style tags the computer opponent's shot-selection tendency.
type Style int

const (
	AggressiveBaseliner Style = iota
	DefensiveBaseliner
	ServeAndVolleyer
	AllCourt
	ForehandDominant
	BackhandDominant
)

func (s Style) String() string {
	switch s {
	case AggressiveBaseliner:
		return "Aggressive Baseliner"
	case DefensiveBaseliner:
		return "Defensive Baseliner"
	case ServeAndVolleyer:
		return "Serve-and-Volleyer"
	case AllCourt:
		return "All-Court Player"
	case ForehandDominant:
		return "Forehand Dominant"
	case BackhandDominant:
		return "Backhand Dominant"
	default:
		return "unknown"
	}
}

// Styles returns every opponent style.
func Styles() []Style {
	return []Style{
		AggressiveBaseliner, DefensiveBaseliner, ServeAndVolleyer,
		AllCourt, ForehandDominant, BackhandDominant,
	}
}

// StyleByName resolves a display name back to a Style.
func StyleByName(name string) (Style, bool) {
	for _, s := range Styles() {
		if s.String() == name {
			return s, true
		}
	}
	return AllCourt, false
}

// ShotEvent is one recorded shot within a rally. Immutable once appended.
type ShotEvent struct {
	Type          ShotType
	Hitter        PlayerID
	Success       bool
	Winner        bool // outright winner: the receiver never gets a play on it
	ResultingZone CourtZone
}

// Rally is the shot sequence of a single point. Created when the ball is put
// in play and discarded once the point is decided.
type Rally struct {
	Shots    []ShotEvent
	Hitter   PlayerID  // side due to hit next
	BallZone CourtZone // zone the incoming ball forces the hitter to play from
}

// Length returns the number of shots played in the rally so far.
func (r *Rally) Length() int {
	return len(r.Shots)
}

// LastShot returns the most recent shot, or nil for a fresh rally.
func (r *Rally) LastShot() *ShotEvent {
	if len(r.Shots) == 0 {
		return nil
	}
	return &r.Shots[len(r.Shots)-1]
}

// Status reports how far a completed call advanced the match.
type Status int

const (
	StatusInProgress Status = iota
	StatusPointOver
	StatusGameOver
	StatusSetOver
	StatusMatchOver
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusPointOver:
		return "point over"
	case StatusGameOver:
		return "game over"
	case StatusSetOver:
		return "set over"
	case StatusMatchOver:
		return "match over"
	default:
		return "unknown"
	}
}

// PlayerState is the mutable per-match state of one side: the static profile
// plus stamina and court position, both updated on every shot.
type PlayerState struct {
	ID      PlayerID
	Profile Profile
	Stamina float64
	Zone    CourtZone
}
