package events

// AttackEvent is one resolved attack inside a match.
type AttackEvent struct {
	MatchID string
	Row     int
	Col     int
	Result  string
}

// MatchEndEvent is the terminal state of one match.
type MatchEndEvent struct {
	MatchID  string
	Winner   string
	ForfeitA bool
	ForfeitB bool
}

// RoundEvent is a finished tournament round with its leaderboard order.
type RoundEvent struct {
	RoundNum int
	Leaders  []string
}

type Bus struct {
	Attacks   chan AttackEvent
	MatchEnds chan MatchEndEvent
	Rounds    chan RoundEvent
}

func NewBus() *Bus {
	return &Bus{
		Attacks:   make(chan AttackEvent, 256),
		MatchEnds: make(chan MatchEndEvent, 32),
		Rounds:    make(chan RoundEvent, 10),
	}
}
