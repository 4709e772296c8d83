package engine

// Pop removes and returns the highest remaining value token for the
// good. A depleted stack is not an error: selling still succeeds with
// nothing awarded, so the caller just checks ok.
func (b *TokenBank) Pop(good Good) (uint8, bool) {
	if !good.Sellable() {
		return 0, false
	}
	if b.Lens[good] == 0 {
		return 0, false
	}
	b.Lens[good]--
	return b.Values[good][b.Lens[good]], true
}

// Depth returns the number of value tokens remaining for the good.
func (b *TokenBank) Depth(good Good) uint8 {
	if !good.Sellable() {
		return 0
	}
	return b.Lens[good]
}

// EmptyStacks counts the depleted good stacks. Three or more ends the game.
func (b *TokenBank) EmptyStacks() int {
	n := 0
	for good := 0; good < NumSellable; good++ {
		if b.Lens[good] == 0 {
			n++
		}
	}
	return n
}

// Pop removes and returns the next shuffled bonus value for the tier
// index (0..2 for sale sizes 3, 4, 5+). Running out of bonus tokens is
// expected late-game behavior, not a failure.
func (b *BonusBank) Pop(tier int) (uint8, bool) {
	if tier < 0 || tier >= NumTiers {
		return 0, false
	}
	if b.Lens[tier] == 0 {
		return 0, false
	}
	b.Lens[tier]--
	return b.Values[tier][b.Lens[tier]], true
}

// Remaining returns the number of bonus tokens left in the tier.
func (b *BonusBank) Remaining(tier int) uint8 {
	if tier < 0 || tier >= NumTiers {
		return 0
	}
	return b.Lens[tier]
}

// SaleValue returns the value-token payout for selling count cards of
// the good when its stack still holds depth tokens. The stacks are
// public knowledge, so agents use this to price a sale without
// touching engine state.
func SaleValue(good Good, depth uint8, count int) int {
	if !good.Sellable() {
		return 0
	}
	vals := tokenValues[good]
	if int(depth) > len(vals) {
		depth = uint8(len(vals))
	}
	sum := 0
	for i := 0; i < count && int(depth)-1-i >= 0; i++ {
		sum += int(vals[int(depth)-1-i])
	}
	return sum
}
