package engine

// IsTerminated reports whether the game has ended: the deck is empty,
// or at least three of the six value-token stacks are depleted. Cards
// and tokens are only ever removed, so once true it stays true.
func (g *GameState) IsTerminated() bool {
	return g.DeckLen == 0 || g.Bank.EmptyStacks() >= 3
}
