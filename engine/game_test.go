package engine

import "testing"

// newDealtGame creates a standard game that has been dealt, ready to play.
func newDealtGame(t *testing.T) *GameState {
	t.Helper()
	g := NewGame(42)
	g.Deal()
	return &g
}

// setHand replaces a seat's hand for scenario setup.
func setHand(g *GameState, seat uint8, cards ...Good) {
	p := &g.Players[seat]
	p.HandLen = uint8(len(cards))
	copy(p.Hand[:], cards)
}

// setMarket replaces the market for scenario setup.
func setMarket(g *GameState, cards ...Good) {
	g.MarketLen = uint8(len(cards))
	copy(g.Market[:], cards)
}

// totalCards counts every card in deck, market, and both hands.
func totalCards(g *GameState) int {
	n := int(g.DeckLen) + int(g.MarketLen)
	for seat := 0; seat < NumSeats; seat++ {
		n += int(g.Players[seat].HandLen)
	}
	return n
}

// TestNewGameDeckComposition verifies the unshuffled deck card counts.
func TestNewGameDeckComposition(t *testing.T) {
	g := NewGame(42)

	if g.DeckLen != DeckSize {
		t.Fatalf("DeckLen = %d, want %d", g.DeckLen, DeckSize)
	}

	var counts [NumGoodTypes]int
	for i := uint8(0); i < g.DeckLen; i++ {
		counts[g.Deck[i]]++
	}
	want := [NumGoodTypes]int{10, 8, 8, 6, 6, 6, 8}
	for good := Good(0); good < NumGoodTypes; good++ {
		if counts[good] != want[good] {
			t.Errorf("deck %s count = %d, want %d", good, counts[good], want[good])
		}
	}
}

// TestNewGameTokenBank verifies the initial token stacks.
func TestNewGameTokenBank(t *testing.T) {
	g := NewGame(42)

	wantDepths := [NumSellable]uint8{9, 7, 7, 5, 5, 5}
	wantTop := [NumSellable]uint8{4, 5, 5, 5, 6, 7}
	for good := Good(0); good < GoodCamel; good++ {
		if got := g.Bank.Depth(good); got != wantDepths[good] {
			t.Errorf("%s depth = %d, want %d", good, got, wantDepths[good])
		}
		if got := g.Bank.Values[good][g.Bank.Lens[good]-1]; got != wantTop[good] {
			t.Errorf("%s top value = %d, want %d", good, got, wantTop[good])
		}
	}

	wantBonus := [NumTiers]uint8{7, 6, 5}
	for tier := 0; tier < NumTiers; tier++ {
		if got := g.BonusBank.Remaining(tier); got != wantBonus[tier] {
			t.Errorf("bonus tier %d remaining = %d, want %d", tier+3, got, wantBonus[tier])
		}
	}
}

// TestDealSetup verifies market, hands, deck, and seat after Deal.
func TestDealSetup(t *testing.T) {
	g := newDealtGame(t)

	if g.MarketLen != MarketSize {
		t.Fatalf("MarketLen = %d, want %d", g.MarketLen, MarketSize)
	}
	camels := 0
	for i := uint8(0); i < g.MarketLen; i++ {
		if g.Market[i] == GoodCamel {
			camels++
		}
	}
	if camels < MarketCamels {
		t.Errorf("market camels = %d, want at least %d", camels, MarketCamels)
	}

	for seat := uint8(0); seat < NumSeats; seat++ {
		p := &g.Players[seat]
		if p.HandLen != InitialHandSize {
			t.Errorf("seat %d HandLen = %d, want %d", seat, p.HandLen, InitialHandSize)
		}
		for i := uint8(1); i < p.HandLen; i++ {
			if p.Hand[i] < p.Hand[i-1] {
				t.Errorf("seat %d hand not sorted: %v", seat, p.Hand[:p.HandLen])
				break
			}
		}
	}

	wantDeck := uint8(DeckSize - (MarketSize - MarketCamels) - NumSeats*InitialHandSize)
	if g.DeckLen != wantDeck {
		t.Errorf("DeckLen = %d, want %d", g.DeckLen, wantDeck)
	}
	if g.CurrentSeat > 1 {
		t.Errorf("CurrentSeat = %d, want 0 or 1", g.CurrentSeat)
	}
	if got := totalCards(g); got != TotalCards {
		t.Errorf("total cards = %d, want %d", got, TotalCards)
	}
}

// TestDealDeterministic verifies that equal seeds produce identical games.
func TestDealDeterministic(t *testing.T) {
	g1 := NewGame(99)
	g1.Deal()
	g2 := NewGame(99)
	g2.Deal()

	if g1 != g2 {
		t.Error("same seed produced different game states")
	}

	g3 := NewGame(100)
	g3.Deal()
	if g1 == g3 {
		t.Error("different seeds produced identical game states")
	}
}

// TestNewGameSeedZero verifies that seed 0 is corrected (xorshift can't start at 0).
func TestNewGameSeedZero(t *testing.T) {
	g := NewGame(0)
	if g.RNG == 0 {
		t.Error("RNG is 0 after seed=0")
	}
}

// TestLastActionBeforeAnyAction verifies that LastAction reports absence at setup.
func TestLastActionBeforeAnyAction(t *testing.T) {
	g := newDealtGame(t)
	if _, ok := g.LastAction(); ok {
		t.Error("LastAction reported an action before any was applied")
	}
}
