package agent

import (
	"math/rand/v2"

	"github.com/kmfrost/jaipur/engine"
)

// Greedy maximizes the immediate token payout: the best-priced sale
// first, then the most valuable grab, then camels. It never trades and
// looks exactly zero turns ahead.
type Greedy struct{}

// Name implements Agent.
func (Greedy) Name() string { return "greedy" }

// ChooseAction implements Agent.
func (Greedy) ChooseAction(v engine.StateView, rng *rand.Rand) engine.Action {
	if good, payout, ok := bestSale(&v); ok && payout > 0 {
		return engine.Sell(v.HandIndicesOf(good)...)
	}
	if v.CanGrab() {
		return engine.Grab(bestGrab(&v))
	}
	if v.CanTakeCamels() {
		return engine.TakeCamels()
	}
	// Depleted stacks can price every sale at zero; sell anyway if that
	// is what is left.
	if good, _, ok := bestSale(&v); ok {
		return engine.Sell(v.HandIndicesOf(good)...)
	}
	return Random{}.ChooseAction(v, rng)
}

// bestSale prices a whole-holding sale of each sellable type against
// the public token stacks and returns the most valuable one. Ties go
// to the larger sale for the extra bonus-token shot.
func bestSale(v *engine.StateView) (best engine.Good, payout int, ok bool) {
	bestCount := 0
	for _, good := range v.SellableGoods() {
		count := len(v.HandIndicesOf(good))
		p := engine.SaleValue(good, v.BankDepth[good], count)
		if !ok || p > payout || (p == payout && count > bestCount) {
			best, payout, bestCount, ok = good, p, count, true
		}
	}
	return best, payout, ok
}

// bestGrab returns the market slot whose good has the most valuable
// token on top, preferring the scarcer stack on ties.
func bestGrab(v *engine.StateView) uint8 {
	slots := goodSlots(v.Market)
	best := slots[0]
	for _, slot := range slots[1:] {
		g, bg := v.Market[slot], v.Market[best]
		p, bp := engine.SaleValue(g, v.BankDepth[g], 1), engine.SaleValue(bg, v.BankDepth[bg], 1)
		if p > bp || (p == bp && v.BankDepth[g] < v.BankDepth[bg]) {
			best = slot
		}
	}
	return best
}
