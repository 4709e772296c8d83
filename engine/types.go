package engine

// Good identifies a card type. The first six are sellable goods;
// GoodCamel is a distinguished non-sellable type.
type Good uint8

const (
	GoodLeather Good = iota
	GoodSpice
	GoodCloth
	GoodSilver
	GoodGold
	GoodDiamond
	GoodCamel
)

const (
	// NumSellable counts the good types with a token stack (camel excluded).
	NumSellable = 6
	// NumGoodTypes counts all card types including the camel.
	NumGoodTypes = 7
)

var goodNames = [NumGoodTypes]string{
	"leather", "spice", "cloth", "silver", "gold", "diamond", "camel",
}

func (g Good) String() string {
	if g < NumGoodTypes {
		return goodNames[g]
	}
	return "unknown"
}

// Sellable reports whether the good has a value-token stack.
func (g Good) Sellable() bool { return g < GoodCamel }

// Gem reports whether the good requires a minimum sale of two cards.
func (g Good) Gem() bool { return g == GoodSilver || g == GoodGold || g == GoodDiamond }

// deckCounts is the per-type card count of the draw deck. Three more
// camels are pre-placed in the market at deal time, for 11 camels total.
var deckCounts = [NumGoodTypes]uint8{10, 8, 8, 6, 6, 6, 8}

// tokenValues holds the initial per-good token stacks, sorted ascending
// so the highest remaining value is always popped from the end.
var tokenValues = [NumSellable][]uint8{
	{1, 1, 1, 1, 1, 1, 2, 3, 4}, // leather
	{1, 1, 2, 2, 3, 3, 5},       // spice
	{1, 1, 2, 2, 3, 3, 5},       // cloth
	{5, 5, 5, 5, 5},             // silver
	{5, 5, 5, 6, 6},             // gold
	{5, 5, 5, 7, 7},             // diamond
}

// bonusValues holds the per-tier bonus token pools, shuffled at deal time.
// Tiers are indexed 0..2 for sale sizes 3, 4, and 5-or-more.
var bonusValues = [NumTiers][]uint8{
	{1, 1, 2, 2, 2, 3, 3},
	{4, 4, 5, 5, 6, 6},
	{8, 8, 9, 10, 10},
}

const (
	// NumTiers counts the bonus tiers (sales of 3, 4, and 5+).
	NumTiers = 3
	// MaxTokenStack is the deepest value-token stack (leather).
	MaxTokenStack = 9
	// MaxBonusStack is the deepest bonus-tier stack (tier 3).
	MaxBonusStack = 7
)

// tierIndex maps a sale size to a bonus tier index, or -1 for sales of
// one or two cards.
func tierIndex(saleSize int) int {
	switch {
	case saleSize >= 5:
		return 2
	case saleSize == 4:
		return 1
	case saleSize == 3:
		return 0
	default:
		return -1
	}
}

// tierSize converts a tier index back to its sale-size label (3, 4, 5).
func tierSize(tier int) uint8 { return uint8(tier + 3) }

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// ActionType identifies one of the four action request shapes.
type ActionType uint8

const (
	ActionTakeCamels ActionType = iota
	ActionGrab
	ActionSell
	ActionTrade
)

var actionNames = [4]string{"take_camels", "grab", "sell", "trade"}

func (t ActionType) String() string {
	if int(t) < len(actionNames) {
		return actionNames[t]
	}
	return "unknown"
}

// Action is a single move request. Build one with TakeCamels, Grab,
// Sell, or Trade rather than filling fields by hand: the constructors
// make an absent index distinguishable from a zero index.
type Action struct {
	Type          ActionType
	MarketIndex   uint8   // Grab target slot.
	HandIndices   []uint8 // Sell cards, or the hand side of a Trade.
	MarketIndices []uint8 // The market side of a Trade.
}

// TakeCamels builds a take-all-camels request.
func TakeCamels() Action { return Action{Type: ActionTakeCamels} }

// Grab builds a request to take the market card at the given slot.
func Grab(marketIdx uint8) Action {
	return Action{Type: ActionGrab, MarketIndex: marketIdx}
}

// Sell builds a request to sell the hand cards at the given indices.
func Sell(handIdxs ...uint8) Action {
	return Action{Type: ActionSell, HandIndices: handIdxs}
}

// Trade builds a positional swap of market cards for hand cards.
func Trade(marketIdxs, handIdxs []uint8) Action {
	return Action{Type: ActionTrade, MarketIndices: marketIdxs, HandIndices: handIdxs}
}

// ---------------------------------------------------------------------------
// LastActionInfo — public observation of the most recent action.
// ---------------------------------------------------------------------------

// LastActionInfo is a fully observable summary of the last applied
// action, recorded for observers ("opponent just did X"). Index arrays
// are fixed-size so GameState stays a flat comparable value.
type LastActionInfo struct {
	Type ActionType
	Seat uint8

	// Good is the card type grabbed or sold. TakeCamels records GoodCamel.
	Good Good
	// Count is the number of camels taken, cards sold, or pairs swapped.
	Count uint8

	MarketIndex   uint8                 // Grab slot.
	HandIndices   [HandGoodsLimit]uint8 // Sell indices or trade give side.
	MarketIndices [MarketSize]uint8     // Trade take side.

	TokensAwarded uint8 // Sum of value tokens popped by a sell.
	BonusTier     uint8 // 3, 4, or 5 when a bonus token was awarded; 0 otherwise.
}
