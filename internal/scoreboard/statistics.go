package scoreboard

import "sort"

// PlayerStatistics is an immutable snapshot of one player's running totals.
// Updates build a new snapshot, so a published value can be read without
// holding the scoreboard's lock.
type PlayerStatistics struct {
	Name          string
	PointsFor     int
	PointsAgainst int
	Wins          int
	Loses         int
	Rating        float64
}

func NewPlayerStatistics(name string) PlayerStatistics {
	return PlayerStatistics{Name: name}
}

// Update returns a new snapshot with the deltas applied and the rating
// recomputed. Counters only grow.
func (s PlayerStatistics) Update(addedPointsFor, addedPointsAgainst int, isWin, isLose bool) PlayerStatistics {
	next := PlayerStatistics{
		Name:          s.Name,
		PointsFor:     s.PointsFor + addedPointsFor,
		PointsAgainst: s.PointsAgainst + addedPointsAgainst,
		Wins:          s.Wins,
		Loses:         s.Loses,
	}
	if isWin {
		next.Wins++
	}
	if isLose {
		next.Loses++
	}
	next.Rating = rating(next.Wins, next.Loses)
	return next
}

// rating is the player's win percentage. Mutual-forfeit matches record
// neither a win nor a loss and leave the rating untouched.
func rating(wins, loses int) float64 {
	games := wins + loses
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}

// RoundResults is the frozen leaderboard of one finished round, ordered by
// rating descending with name as the deterministic tiebreak.
type RoundResults struct {
	RoundNum   int
	Statistics []PlayerStatistics
}

func sortStatistics(stats []PlayerStatistics) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Rating != stats[j].Rating {
			return stats[i].Rating > stats[j].Rating
		}
		return stats[i].Name < stats[j].Name
	})
}
