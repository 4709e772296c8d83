// Package engine implements the rules of a two-player goods-trading
// card game: deck, market, and hand bookkeeping, the four action
// handlers, turn alternation, termination detection, and scoring.
//
// GameState is a flat value type (fixed arrays, no pointers or slices)
// so a plain struct copy is a full snapshot and two states can be
// compared with ==. The engine never renders, never chooses moves, and
// never persists anything; renderers, agents, and training harnesses
// drive it through Apply, Snapshot, IsTerminated, and FinalScores.
package engine

const (
	// NumSeats is fixed: the rules assume exactly two players.
	NumSeats = 2
	// DeckSize is the draw deck at setup: 10 leather, 8 spice, 8 cloth,
	// 6 silver, 6 gold, 6 diamond, 8 camels.
	DeckSize = 52
	// MarketSize is the capacity of the face-up offer row.
	MarketSize = 5
	// MarketCamels are pre-placed in the market at deal time.
	MarketCamels = 3
	// TotalCards is every card in the game: the deck plus the market camels.
	TotalCards = DeckSize + MarketCamels
	// TotalCamels counts camels across deck and market.
	TotalCamels = 11

	// InitialHandSize is dealt to each seat at setup.
	InitialHandSize = 5
	// HandGoodsLimit caps the non-camel cards a hand may hold.
	HandGoodsLimit = 7
	// MaxHandSize bounds any reachable hand: 7 goods plus every camel.
	MaxHandSize = HandGoodsLimit + TotalCamels

	// MaxTokens bounds the value tokens one seat could ever earn
	// (the whole bank: 9+7+7+5+5+5).
	MaxTokens = 38

	// CamelBonus is added to the seat holding strictly more camels at game end.
	CamelBonus = 5
)

// TokenBank holds the per-good value-token stacks. Stacks are sorted
// ascending and popped from the end, so values decay as a good is sold.
type TokenBank struct {
	Values [NumSellable][MaxTokenStack]uint8
	Lens   [NumSellable]uint8
}

// BonusBank holds the per-tier bonus-token stacks, shuffled at deal
// time and never replenished.
type BonusBank struct {
	Values [NumTiers][MaxBonusStack]uint8
	Lens   [NumTiers]uint8
}

// PlayerState is one seat's ledger: the sorted hand plus earned tokens.
type PlayerState struct {
	Hand    [MaxHandSize]Good
	HandLen uint8

	Tokens    [MaxTokens]uint8
	TokensLen uint8

	Bonus    [NumTiers][MaxBonusStack]uint8
	BonusLen [NumTiers]uint8
}

// GoodCount returns the number of non-camel cards in the hand.
func (p *PlayerState) GoodCount() uint8 {
	var n uint8
	for i := uint8(0); i < p.HandLen; i++ {
		if p.Hand[i] != GoodCamel {
			n++
		}
	}
	return n
}

// CamelCount returns the number of camels in the hand.
func (p *PlayerState) CamelCount() uint8 {
	return p.HandLen - p.GoodCount()
}

// TokenSum returns the total value of earned value tokens.
func (p *PlayerState) TokenSum() int {
	sum := 0
	for i := uint8(0); i < p.TokensLen; i++ {
		sum += int(p.Tokens[i])
	}
	return sum
}

// BonusSum returns the total value of earned bonus tokens.
func (p *PlayerState) BonusSum() int {
	sum := 0
	for t := 0; t < NumTiers; t++ {
		for i := uint8(0); i < p.BonusLen[t]; i++ {
			sum += int(p.Bonus[t][i])
		}
	}
	return sum
}

// BonusCount returns the number of earned bonus tokens across tiers.
func (p *PlayerState) BonusCount() int {
	n := 0
	for t := 0; t < NumTiers; t++ {
		n += int(p.BonusLen[t])
	}
	return n
}

// GameState is the complete, self-contained state of one game. It is
// the single source of truth: no other component holds its own copy.
type GameState struct {
	Bank      TokenBank
	BonusBank BonusBank

	Deck    [DeckSize]Good
	DeckLen uint8

	Market    [MarketSize]Good
	MarketLen uint8

	Players [NumSeats]PlayerState

	CurrentSeat uint8
	TurnNumber  uint16
	LastAct     LastActionInfo

	// SoldCount tracks cards removed from play by sales, so
	// deck + market + hands + sold always equals TotalCards.
	SoldCount uint8

	RNG uint64
}

// ---------------------------------------------------------------------------
// xorshift64 RNG — inline, no interface
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// NewGame initializes a game with the given seed. The token banks are
// filled and the deck is built, but nothing is shuffled or dealt until
// Deal. Equal seeds produce identical games.
func NewGame(seed uint64) GameState {
	var g GameState
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}

	for good := 0; good < NumSellable; good++ {
		vals := tokenValues[good]
		copy(g.Bank.Values[good][:], vals)
		g.Bank.Lens[good] = uint8(len(vals))
	}
	for tier := 0; tier < NumTiers; tier++ {
		vals := bonusValues[tier]
		copy(g.BonusBank.Values[tier][:], vals)
		g.BonusBank.Lens[tier] = uint8(len(vals))
	}

	idx := 0
	for good := Good(0); good < NumGoodTypes; good++ {
		for c := uint8(0); c < deckCounts[good]; c++ {
			g.Deck[idx] = good
			idx++
		}
	}
	g.DeckLen = DeckSize

	return g
}

// Deal shuffles the bonus stacks and the deck, seeds the market with
// three camels plus two draws, deals five cards to each seat, and
// picks a random starting seat.
func (g *GameState) Deal() {
	for tier := 0; tier < NumTiers; tier++ {
		vals := g.BonusBank.Values[tier][:g.BonusBank.Lens[tier]]
		for i := len(vals) - 1; i > 0; i-- {
			j := int(g.randN(uint64(i + 1)))
			vals[i], vals[j] = vals[j], vals[i]
		}
	}

	// Fisher-Yates shuffle.
	for i := int(g.DeckLen) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
	}

	for i := 0; i < MarketCamels; i++ {
		g.Market[i] = GoodCamel
	}
	g.MarketLen = MarketCamels
	for g.MarketLen < MarketSize {
		card, _ := g.drawOne()
		g.Market[g.MarketLen] = card
		g.MarketLen++
	}

	for seat := uint8(0); seat < NumSeats; seat++ {
		for c := 0; c < InitialHandSize; c++ {
			card, _ := g.drawOne()
			g.Players[seat].Hand[g.Players[seat].HandLen] = card
			g.Players[seat].HandLen++
		}
		g.sortHand(seat)
	}

	g.CurrentSeat = uint8(g.randN(NumSeats))
}

// drawOne removes and returns the top deck card, or false when empty.
func (g *GameState) drawOne() (Good, bool) {
	if g.DeckLen == 0 {
		return 0, false
	}
	g.DeckLen--
	return g.Deck[g.DeckLen], true
}

// replenishMarket attempts exactly one draw and appends it to the
// market. An empty deck is tolerated: the market simply runs short,
// which is itself one of the end-of-game triggers.
func (g *GameState) replenishMarket() {
	if g.MarketLen >= MarketSize {
		return
	}
	card, ok := g.drawOne()
	if !ok {
		return
	}
	g.Market[g.MarketLen] = card
	g.MarketLen++
}

// sortHand keeps the seat's hand sorted by Good for stable indexing.
func (g *GameState) sortHand(seat uint8) {
	hand := g.Players[seat].Hand[:g.Players[seat].HandLen]
	for i := 1; i < len(hand); i++ {
		for j := i; j > 0 && hand[j] < hand[j-1]; j-- {
			hand[j], hand[j-1] = hand[j-1], hand[j]
		}
	}
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// OpponentOf returns the other seat.
func (g *GameState) OpponentOf(seat uint8) uint8 { return 1 - seat }

// LastAction returns the most recently applied action, if any action
// has been applied yet.
func (g *GameState) LastAction() (LastActionInfo, bool) {
	return g.LastAct, g.TurnNumber > 0
}
