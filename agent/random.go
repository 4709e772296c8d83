package agent

import (
	"math/rand/v2"

	"github.com/kmfrost/jaipur/engine"
)

// Random picks uniformly among the legal action types, then fills in
// the details at random: grabs a random market good, sells a whole
// holding of one sellable type, trades a random same-size swap. Used
// mostly for testing, and for making the other agents feel good about
// themselves.
type Random struct{}

// Name implements Agent.
func (Random) Name() string { return "random" }

// tradeTries bounds the search for a random valid swap before the
// agent gives up and picks another action type.
const tradeTries = 10

// ChooseAction implements Agent.
func (Random) ChooseAction(v engine.StateView, rng *rand.Rand) engine.Action {
	var kinds []engine.ActionType
	if v.CanTakeCamels() {
		kinds = append(kinds, engine.ActionTakeCamels)
	}
	if v.CanGrab() {
		kinds = append(kinds, engine.ActionGrab)
	}
	sellable := v.SellableGoods()
	if len(sellable) > 0 {
		kinds = append(kinds, engine.ActionSell)
	}
	if v.CanTrade() {
		kinds = append(kinds, engine.ActionTrade)
	}

	for len(kinds) > 0 {
		k := rng.IntN(len(kinds))
		kind := kinds[k]
		switch kind {
		case engine.ActionTakeCamels:
			return engine.TakeCamels()
		case engine.ActionGrab:
			slots := goodSlots(v.Market)
			return engine.Grab(slots[rng.IntN(len(slots))])
		case engine.ActionSell:
			good := sellable[rng.IntN(len(sellable))]
			return engine.Sell(v.HandIndicesOf(good)...)
		case engine.ActionTrade:
			if a, ok := findTrade(v, rng); ok {
				return a
			}
			// No swap found within the try budget: drop trade and
			// re-pick among what remains.
			kinds = append(kinds[:k], kinds[k+1:]...)
		}
	}
	// Unreachable in a live game: some action type is always legal.
	return engine.TakeCamels()
}

// findTrade searches for a random same-size swap that the engine will
// accept: distinct indices on both sides, no camels taken, no type
// traded for itself, hand goods limit respected.
func findTrade(v engine.StateView, rng *rand.Rand) (engine.Action, bool) {
	marketGoods := goodSlots(v.Market)
	maxTrade := len(marketGoods)
	if len(v.Hand) < maxTrade {
		maxTrade = len(v.Hand)
	}
	if maxTrade < 2 {
		return engine.Action{}, false
	}

	for try := 0; try < tradeTries; try++ {
		size := 2 + rng.IntN(maxTrade-1)

		give := sampleIndices(rng, len(v.Hand), size)
		var giving [engine.NumGoodTypes]bool
		goodsGiven := 0
		for _, i := range give {
			c := v.Hand[i]
			giving[c] = true
			if c != engine.GoodCamel {
				goodsGiven++
			}
		}

		// Only market goods of types not being given away qualify.
		var options []uint8
		for _, slot := range marketGoods {
			if !giving[v.Market[slot]] {
				options = append(options, slot)
			}
		}
		if len(options) < size {
			continue
		}
		if v.GoodCount()-goodsGiven+size > engine.HandGoodsLimit {
			continue
		}

		take := make([]uint8, size)
		for i, pick := range sampleIndices(rng, len(options), size) {
			take[i] = options[pick]
		}
		return engine.Trade(take, give), true
	}
	return engine.Action{}, false
}

// goodSlots returns the market slots holding non-camel cards.
func goodSlots(market []engine.Good) []uint8 {
	var slots []uint8
	for i, c := range market {
		if c != engine.GoodCamel {
			slots = append(slots, uint8(i))
		}
	}
	return slots
}
