package engine

import "fmt"

// Apply validates and applies one action for the current seat. On
// success the acting hand is re-sorted, the action is recorded for
// observers, and the turn flips to the other seat. On any failure the
// returned error wraps one of the Err sentinels and the GameState is
// left byte-for-byte unchanged: validation completes before any
// mutation begins.
func (g *GameState) Apply(a Action) error {
	if g.IsTerminated() {
		return ErrGameOver
	}

	var err error
	switch a.Type {
	case ActionTakeCamels:
		err = g.takeCamels()
	case ActionGrab:
		err = g.grab(a.MarketIndex)
	case ActionSell:
		err = g.sell(a.HandIndices)
	case ActionTrade:
		err = g.trade(a.MarketIndices, a.HandIndices)
	default:
		return fmt.Errorf("unknown action type %d", a.Type)
	}
	if err != nil {
		return err
	}

	g.advanceTurn()
	return nil
}

// advanceTurn finishes a successful action: re-sort the acting hand,
// bump the turn counter, flip the seat.
func (g *GameState) advanceTurn() {
	g.sortHand(g.CurrentSeat)
	g.TurnNumber++
	g.CurrentSeat = g.OpponentOf(g.CurrentSeat)
}

// takeCamels moves every camel in the market to the acting hand,
// replenishing the market once per camel taken.
func (g *GameState) takeCamels() error {
	var count uint8
	for i := uint8(0); i < g.MarketLen; i++ {
		if g.Market[i] == GoodCamel {
			count++
		}
	}
	if count == 0 {
		return ErrNoCamelsAvailable
	}

	p := &g.Players[g.CurrentSeat]
	keep := uint8(0)
	for i := uint8(0); i < g.MarketLen; i++ {
		if g.Market[i] == GoodCamel {
			p.Hand[p.HandLen] = GoodCamel
			p.HandLen++
			continue
		}
		g.Market[keep] = g.Market[i]
		keep++
	}
	g.MarketLen = keep
	for i := uint8(0); i < count; i++ {
		g.replenishMarket()
	}

	g.LastAct = LastActionInfo{
		Type:  ActionTakeCamels,
		Seat:  g.CurrentSeat,
		Good:  GoodCamel,
		Count: count,
	}
	return nil
}

// grab moves one non-camel market card into the acting hand and
// replenishes the market by exactly one draw.
func (g *GameState) grab(idx uint8) error {
	if idx >= g.MarketLen {
		return fmt.Errorf("%w: market slot %d (market has %d cards)", ErrIndexOutOfRange, idx, g.MarketLen)
	}
	card := g.Market[idx]
	if card == GoodCamel {
		return fmt.Errorf("%w: market slot %d", ErrCannotGrabCamel, idx)
	}
	p := &g.Players[g.CurrentSeat]
	if p.GoodCount() >= HandGoodsLimit {
		return ErrHandFull
	}

	g.removeFromMarket(idx)
	p.Hand[p.HandLen] = card
	p.HandLen++
	g.replenishMarket()

	g.LastAct = LastActionInfo{
		Type:        ActionGrab,
		Seat:        g.CurrentSeat,
		Good:        card,
		Count:       1,
		MarketIndex: idx,
	}
	return nil
}

// sell removes the referenced same-type cards from the acting hand,
// pops one value token per card (nothing when depleted), and awards a
// bonus token for sales of 3, 4, or 5-or-more.
func (g *GameState) sell(idxs []uint8) error {
	if len(idxs) == 0 {
		return ErrNoIndices
	}
	p := &g.Players[g.CurrentSeat]
	if err := checkIndices(idxs, p.HandLen, "hand"); err != nil {
		return err
	}
	sellType := p.Hand[idxs[0]]
	for _, i := range idxs[1:] {
		if p.Hand[i] != sellType {
			return fmt.Errorf("%w: got both %s and %s", ErrMixedTypes, sellType, p.Hand[i])
		}
	}
	if sellType == GoodCamel {
		return ErrCamelNotSellable
	}
	if sellType.Gem() && len(idxs) < 2 {
		return fmt.Errorf("%w: %s", ErrBelowMinimumForGem, sellType)
	}

	// Remove from the highest index down so earlier indices stay valid.
	ordered := append([]uint8(nil), idxs...)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j] > ordered[j-1]; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	for _, i := range ordered {
		g.removeFromHand(g.CurrentSeat, i)
	}
	g.SoldCount += uint8(len(idxs))

	var awarded uint8
	for range idxs {
		if v, ok := g.Bank.Pop(sellType); ok {
			p.Tokens[p.TokensLen] = v
			p.TokensLen++
			awarded += v
		}
	}

	var bonusTier uint8
	if tier := tierIndex(len(idxs)); tier >= 0 {
		if v, ok := g.BonusBank.Pop(tier); ok {
			p.Bonus[tier][p.BonusLen[tier]] = v
			p.BonusLen[tier]++
			bonusTier = tierSize(tier)
		}
	}

	info := LastActionInfo{
		Type:          ActionSell,
		Seat:          g.CurrentSeat,
		Good:          sellType,
		Count:         uint8(len(idxs)),
		TokensAwarded: awarded,
		BonusTier:     bonusTier,
	}
	copy(info.HandIndices[:], idxs)
	g.LastAct = info
	return nil
}

// trade swaps market cards for hand cards positionally. The market and
// deck sizes are unaffected: it is a swap, not a draw.
func (g *GameState) trade(marketIdxs, handIdxs []uint8) error {
	if len(marketIdxs) != len(handIdxs) {
		return fmt.Errorf("%w: %d market vs %d hand", ErrLengthMismatch, len(marketIdxs), len(handIdxs))
	}
	if len(marketIdxs) < 2 {
		return ErrTooFewCards
	}
	p := &g.Players[g.CurrentSeat]
	if err := checkIndices(marketIdxs, g.MarketLen, "market"); err != nil {
		return err
	}
	if err := checkIndices(handIdxs, p.HandLen, "hand"); err != nil {
		return err
	}

	var taking, giving [NumGoodTypes]bool
	for _, i := range marketIdxs {
		if g.Market[i] == GoodCamel {
			return fmt.Errorf("%w: market slot %d", ErrCannotTakeCamelFromMarket, i)
		}
		taking[g.Market[i]] = true
	}
	camelsGiven := 0
	for _, i := range handIdxs {
		giving[p.Hand[i]] = true
		if p.Hand[i] == GoodCamel {
			camelsGiven++
		}
	}
	for good := 0; good < NumGoodTypes; good++ {
		if taking[good] && giving[good] {
			return fmt.Errorf("%w: %s", ErrOverlappingTypes, Good(good))
		}
	}

	// Giving camels is allowed, but the resulting good count may not
	// exceed the hand limit.
	goodsAfter := int(p.GoodCount()) - (len(handIdxs) - camelsGiven) + len(marketIdxs)
	if goodsAfter > HandGoodsLimit {
		return fmt.Errorf("%w: trade would leave %d goods", ErrHandLimitExceeded, goodsAfter)
	}

	for k := range marketIdxs {
		mi, hi := marketIdxs[k], handIdxs[k]
		g.Market[mi], p.Hand[hi] = p.Hand[hi], g.Market[mi]
	}

	info := LastActionInfo{
		Type:  ActionTrade,
		Seat:  g.CurrentSeat,
		Count: uint8(len(marketIdxs)),
	}
	copy(info.MarketIndices[:], marketIdxs)
	copy(info.HandIndices[:], handIdxs)
	g.LastAct = info
	return nil
}

// checkIndices rejects duplicate or out-of-range indices before any
// mutation happens.
func checkIndices(idxs []uint8, length uint8, where string) error {
	var seen [MaxHandSize]bool
	for _, i := range idxs {
		if i >= length {
			return fmt.Errorf("%w: %s index %d (only %d cards)", ErrIndexOutOfRange, where, i, length)
		}
		if seen[i] {
			return fmt.Errorf("%w: %s index %d", ErrDuplicateIndex, where, i)
		}
		seen[i] = true
	}
	return nil
}

// removeFromHand removes the card at idx, shifting later cards left.
func (g *GameState) removeFromHand(seat, idx uint8) Good {
	p := &g.Players[seat]
	card := p.Hand[idx]
	for i := idx; i < p.HandLen-1; i++ {
		p.Hand[i] = p.Hand[i+1]
	}
	p.HandLen--
	return card
}

// removeFromMarket removes the card at idx, shifting later cards left.
func (g *GameState) removeFromMarket(idx uint8) Good {
	card := g.Market[idx]
	for i := idx; i < g.MarketLen-1; i++ {
		g.Market[i] = g.Market[i+1]
	}
	g.MarketLen--
	return card
}
