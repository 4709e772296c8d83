package engine

// StateView is a read-only projection of the game for one seat.
// The market and the viewer's own hand are concrete; of the opponent's
// hand only the camel count and non-camel count are visible, since
// camels are public and everything else is hidden. All slices are
// copies — a view never aliases engine-owned storage.
type StateView struct {
	Seat   uint8
	MyTurn bool

	DeckRemaining uint8
	Market        []Good

	Hand        []Good
	Tokens      []uint8
	BonusCounts [NumTiers]uint8

	OppGoodCount  uint8
	OppCamelCount uint8

	BankDepth      [NumSellable]uint8
	BonusRemaining [NumTiers]uint8

	Terminated bool
}

// Snapshot returns the current seat's view.
func (g *GameState) Snapshot() StateView {
	return g.SnapshotFor(g.CurrentSeat)
}

// SnapshotFor returns the view from the given seat's perspective.
func (g *GameState) SnapshotFor(seat uint8) StateView {
	p := &g.Players[seat]
	opp := &g.Players[g.OpponentOf(seat)]

	v := StateView{
		Seat:          seat,
		MyTurn:        seat == g.CurrentSeat,
		DeckRemaining: g.DeckLen,
		Market:        append([]Good(nil), g.Market[:g.MarketLen]...),
		Hand:          append([]Good(nil), p.Hand[:p.HandLen]...),
		Tokens:        append([]uint8(nil), p.Tokens[:p.TokensLen]...),
		OppGoodCount:  opp.GoodCount(),
		OppCamelCount: opp.CamelCount(),
		Terminated:    g.IsTerminated(),
	}
	for tier := 0; tier < NumTiers; tier++ {
		v.BonusCounts[tier] = p.BonusLen[tier]
		v.BonusRemaining[tier] = g.BonusBank.Lens[tier]
	}
	for good := 0; good < NumSellable; good++ {
		v.BankDepth[good] = g.Bank.Lens[good]
	}
	return v
}

// GoodCount returns the number of non-camel cards in the viewed hand.
func (v *StateView) GoodCount() int {
	n := 0
	for _, c := range v.Hand {
		if c != GoodCamel {
			n++
		}
	}
	return n
}

// CamelCount returns the number of camels in the viewed hand.
func (v *StateView) CamelCount() int {
	return len(v.Hand) - v.GoodCount()
}

// HandIndicesOf returns the hand indices holding the given good.
func (v *StateView) HandIndicesOf(good Good) []uint8 {
	var idxs []uint8
	for i, c := range v.Hand {
		if c == good {
			idxs = append(idxs, uint8(i))
		}
	}
	return idxs
}

// MarketIndicesOf returns the market slots holding the given good.
func (v *StateView) MarketIndicesOf(good Good) []uint8 {
	var idxs []uint8
	for i, c := range v.Market {
		if c == good {
			idxs = append(idxs, uint8(i))
		}
	}
	return idxs
}
