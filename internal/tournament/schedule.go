package tournament

// Pairing is one scheduled match.
type Pairing struct {
	PlayerA string
	PlayerB string
}

// Schedule builds a round-robin schedule over the players, repeated for the
// given number of cycles. Each returned slice is one tournament round; with
// an odd player count one player sits each round.
func Schedule(players []string, cycles int) [][]Pairing {
	var rounds [][]Pairing
	for c := 0; c < cycles; c++ {
		rounds = append(rounds, roundRobin(players)...)
	}
	return rounds
}

func roundRobin(players []string) [][]Pairing {
	n := len(players)
	if n < 2 {
		return nil
	}

	// With an odd count, an empty name marks the bye slot.
	ring := make([]string, n)
	copy(ring, players)
	if n%2 != 0 {
		ring = append(ring, "")
		n++
	}

	rounds := make([][]Pairing, 0, n-1)
	for i := 0; i < n-1; i++ {
		round := make([]Pairing, 0, n/2)
		for j := 0; j < n/2; j++ {
			a := ring[j]
			b := ring[n-1-j]
			if a != "" && b != "" {
				round = append(round, Pairing{PlayerA: a, PlayerB: b})
			}
		}
		rounds = append(rounds, round)

		// Rotate everyone but the first slot.
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}
	return rounds
}
