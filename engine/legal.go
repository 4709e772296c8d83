package engine

// Legality helpers on StateView. Agents build requests from the public
// projection, so these mirror the Apply preconditions without touching
// engine state. They are advisory — Apply remains the authority.

// CanTakeCamels reports whether the market holds at least one camel.
func (v *StateView) CanTakeCamels() bool {
	for _, c := range v.Market {
		if c == GoodCamel {
			return true
		}
	}
	return false
}

// CanGrab reports whether any market card may be grabbed: a non-camel
// is on offer and the hand is under the 7-good limit.
func (v *StateView) CanGrab() bool {
	if v.GoodCount() >= HandGoodsLimit {
		return false
	}
	for _, c := range v.Market {
		if c != GoodCamel {
			return true
		}
	}
	return false
}

// CanSellGood reports whether the viewed hand can legally sell the
// good right now: at least one card, and at least two for gems.
func (v *StateView) CanSellGood(good Good) bool {
	if !good.Sellable() {
		return false
	}
	n := len(v.HandIndicesOf(good))
	if good.Gem() {
		return n >= 2
	}
	return n >= 1
}

// SellableGoods returns the good types with a currently legal sale.
func (v *StateView) SellableGoods() []Good {
	var goods []Good
	for good := Good(0); good < GoodCamel; good++ {
		if v.CanSellGood(good) {
			goods = append(goods, good)
		}
	}
	return goods
}

// CanTrade reports whether some legal trade exists: at least two hand
// cards, and at least two market goods of types the hand does not
// hold. This is conservative (a finer partition can sometimes trade
// when this says no), matching how the scripted players probe trades.
func (v *StateView) CanTrade() bool {
	if len(v.Hand) < 2 {
		return false
	}
	var held [NumGoodTypes]bool
	for _, c := range v.Hand {
		held[c] = true
	}
	n := 0
	for _, c := range v.Market {
		if c != GoodCamel && !held[c] {
			n++
		}
	}
	return n >= 2
}
