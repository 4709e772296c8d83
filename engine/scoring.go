package engine

// NoWinner marks a shared victory (or a game still in progress).
const NoWinner int8 = -1

// FinalScores computes each seat's score and the winner.
//
// A seat's score is the sum of its earned value tokens plus the sum of
// its earned bonus token values. Once the game has terminated, the
// seat holding strictly more camels receives a one-time +5 bonus (a
// tie awards nothing), and the winner is decided in order: higher
// score; more bonus tokens by count; more value tokens by count; else
// a shared victory.
//
// Calling before termination is permitted: it returns the
// currently-known token sums with no camel bonus and no winner, since
// the camel majority is only meaningful at game end.
func (g *GameState) FinalScores() (scores [NumSeats]int, winner int8) {
	for seat := 0; seat < NumSeats; seat++ {
		p := &g.Players[seat]
		scores[seat] = p.TokenSum() + p.BonusSum()
	}
	if !g.IsTerminated() {
		return scores, NoWinner
	}

	c0 := g.Players[0].CamelCount()
	c1 := g.Players[1].CamelCount()
	if c0 > c1 {
		scores[0] += CamelBonus
	} else if c1 > c0 {
		scores[1] += CamelBonus
	}

	switch {
	case scores[0] > scores[1]:
		return scores, 0
	case scores[1] > scores[0]:
		return scores, 1
	}

	b0, b1 := g.Players[0].BonusCount(), g.Players[1].BonusCount()
	switch {
	case b0 > b1:
		return scores, 0
	case b1 > b0:
		return scores, 1
	}

	t0, t1 := g.Players[0].TokensLen, g.Players[1].TokensLen
	switch {
	case t0 > t1:
		return scores, 0
	case t1 > t0:
		return scores, 1
	}

	return scores, NoWinner
}
