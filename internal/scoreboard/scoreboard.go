// Package scoreboard aggregates match outcomes from concurrent match workers
// into per-player running statistics and per-round leaderboards. It does not
// validate player names; callers are trusted to report real registered
// players.
package scoreboard

import (
	"fmt"
	"sync"

	"battlefleet/internal/game"
)

// Scoreboard is the single shared structure between match workers and the
// reporting consumer. The score table and the finished-rounds queue are
// guarded by separate locks so the consumer never contends with score updates
// from unrelated rounds.
type Scoreboard struct {
	playersPerRound int

	// scoreMu guards score, registered, reported and tracked.
	scoreMu    sync.Mutex
	score      map[string]PlayerStatistics
	registered map[string]int
	reported   map[string]int
	tracked    map[int][]PlayerStatistics

	// queueMu guards queue and closed; cond signals new finished rounds.
	queueMu sync.Mutex
	cond    *sync.Cond
	queue   []*RoundResults
	closed  bool
}

// New builds a scoreboard for the given players. A round is finished once
// every player has filed one report for it.
func New(players []string) *Scoreboard {
	s := &Scoreboard{
		playersPerRound: len(players),
		score:           make(map[string]PlayerStatistics, len(players)),
		registered:      make(map[string]int, len(players)),
		reported:        make(map[string]int, len(players)),
		tracked:         make(map[int][]PlayerStatistics),
	}
	s.cond = sync.NewCond(&s.queueMu)
	for _, name := range players {
		s.score[name] = NewPlayerStatistics(name)
	}
	return s
}

// RegisterMatch records that the two players are scheduled against each
// other. Not safe for concurrent use: all registration happens during setup,
// before any match runs.
func (s *Scoreboard) RegisterMatch(playerA, playerB string) {
	s.registered[playerA]++
	s.registered[playerB]++
}

// PlayerEnlistedMatches returns how many matches the player is registered
// for, 0 for an unknown player. Safe for concurrent use.
func (s *Scoreboard) PlayerEnlistedMatches(player string) int {
	s.scoreMu.Lock()
	defer s.scoreMu.Unlock()
	return s.registered[player]
}

// UpdateWithGameResults applies one finished match to both players' running
// statistics. Both players' records update atomically with respect to each
// other. Rounds that complete here are pushed to the finished-rounds queue
// and any blocked consumer is woken. Safe for concurrent use.
func (s *Scoreboard) UpdateWithGameResults(results *game.Results, playerAName, playerBName string) {
	s.scoreMu.Lock()
	finished := make([]*RoundResults, 0, 2)
	if rr := s.updatePlayerGameResults(playerAName, results.PointsA, results.PointsB,
		results.Winner == game.WinnerA, results.Winner == game.WinnerB); rr != nil {
		finished = append(finished, rr)
	}
	if rr := s.updatePlayerGameResults(playerBName, results.PointsB, results.PointsA,
		results.Winner == game.WinnerB, results.Winner == game.WinnerA); rr != nil {
		finished = append(finished, rr)
	}
	// Push before releasing scoreMu so rounds enter the queue in completion
	// order. Lock order is always scoreMu then queueMu; the consumer side
	// takes queueMu alone, so this cannot deadlock.
	if len(finished) > 0 {
		s.queueMu.Lock()
		s.queue = append(s.queue, finished...)
		s.queueMu.Unlock()
	}
	s.scoreMu.Unlock()

	if len(finished) > 0 {
		s.cond.Broadcast()
	}
}

// updatePlayerGameResults folds one player's share of a match into the score
// table and the round accumulation. The player's report lands in the round
// matching their own finished-match count, so a player ahead of the pack
// accumulates into a later round. Returns the round's results when this
// report completes it. Caller holds scoreMu.
func (s *Scoreboard) updatePlayerGameResults(name string, pointsFor, pointsAgainst int, isWin, isLose bool) *RoundResults {
	stats, ok := s.score[name]
	if !ok {
		stats = NewPlayerStatistics(name)
	}
	next := stats.Update(pointsFor, pointsAgainst, isWin, isLose)
	s.score[name] = next

	s.reported[name]++
	round := s.reported[name]
	s.tracked[round] = append(s.tracked[round], next)

	if len(s.tracked[round]) > s.playersPerRound {
		// Duplicate reporting breaks the round invariant upstream; surface it.
		panic(fmt.Sprintf("scoreboard: round %d accumulated %d reports, expected at most %d",
			round, len(s.tracked[round]), s.playersPerRound))
	}
	if len(s.tracked[round]) < s.playersPerRound {
		return nil
	}

	frozen := make([]PlayerStatistics, len(s.tracked[round]))
	copy(frozen, s.tracked[round])
	sortStatistics(frozen)
	delete(s.tracked, round)
	return &RoundResults{RoundNum: round, Statistics: frozen}
}

// WaitOnRoundResults blocks until at least one finished round is queued, then
// drains the queue through fn in FIFO order. Returns false once the
// scoreboard is closed and fully drained.
func (s *Scoreboard) WaitOnRoundResults(fn func(*RoundResults)) bool {
	s.queueMu.Lock()
	for len(s.queue) == 0 && !s.closed {
		s.cond.Wait()
	}
	if len(s.queue) == 0 {
		s.queueMu.Unlock()
		return false
	}
	drained := s.queue
	s.queue = nil
	s.queueMu.Unlock()

	for _, rr := range drained {
		fn(rr)
	}
	return true
}

// RoundResultsQueue exposes the finished-rounds queue directly. Intended for
// a consumer that was just woken and is doing its own draining; producers
// must not be mutating the queue while the caller inspects it.
func (s *Scoreboard) RoundResultsQueue() []*RoundResults {
	return s.queue
}

// Close marks the tournament finished and wakes blocked consumers so they can
// drain and exit.
func (s *Scoreboard) Close() {
	s.queueMu.Lock()
	s.closed = true
	s.queueMu.Unlock()
	s.cond.Broadcast()
}

// Standings returns a rating-ordered snapshot of the live score table. Safe
// for concurrent use.
func (s *Scoreboard) Standings() []PlayerStatistics {
	s.scoreMu.Lock()
	stats := make([]PlayerStatistics, 0, len(s.score))
	for _, st := range s.score {
		stats = append(stats, st)
	}
	s.scoreMu.Unlock()
	sortStatistics(stats)
	return stats
}
