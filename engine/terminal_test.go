package engine

import "testing"

// TestNotTerminatedAtDeal verifies a fresh game is live.
func TestNotTerminatedAtDeal(t *testing.T) {
	g := newDealtGame(t)
	if g.IsTerminated() {
		t.Error("fresh game reports terminated")
	}
}

// TestTerminatedOnEmptyDeck verifies the empty-deck trigger.
func TestTerminatedOnEmptyDeck(t *testing.T) {
	g := newDealtGame(t)
	g.DeckLen = 0
	if !g.IsTerminated() {
		t.Error("empty deck did not terminate the game")
	}
}

// TestTerminatedOnThreeEmptyStacks verifies the token-stack trigger
// regardless of deck size.
func TestTerminatedOnThreeEmptyStacks(t *testing.T) {
	g := newDealtGame(t)
	g.Bank.Lens[GoodLeather] = 0
	g.Bank.Lens[GoodSpice] = 0

	if g.IsTerminated() {
		t.Error("two empty stacks terminated the game")
	}

	g.Bank.Lens[GoodDiamond] = 0
	if !g.IsTerminated() {
		t.Error("three empty stacks did not terminate the game")
	}
	if g.DeckLen == 0 {
		t.Fatal("test setup: deck should be non-empty here")
	}
}

// TestTerminationMonotonic verifies termination cannot be undone by the
// only mutation path left open to callers.
func TestTerminationMonotonic(t *testing.T) {
	g := newDealtGame(t)
	g.Bank.Lens[GoodLeather] = 0
	g.Bank.Lens[GoodSpice] = 0
	g.Bank.Lens[GoodCloth] = 0

	if !g.IsTerminated() {
		t.Fatal("expected terminated state")
	}
	if err := g.Apply(TakeCamels()); err == nil {
		t.Error("Apply succeeded after termination")
	}
	if !g.IsTerminated() {
		t.Error("termination flipped back to false")
	}
}
