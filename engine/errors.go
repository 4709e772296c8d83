package engine

import "errors"

// Validation failures returned by Apply. Every one guarantees the
// GameState was left unchanged; callers may adjust the request and
// resubmit in the same turn. Match with errors.Is — Apply wraps these
// with positional detail.
var (
	ErrGameOver = errors.New("game is already over")

	// TakeCamels
	ErrNoCamelsAvailable = errors.New("no camels available in the market")

	// Grab
	ErrHandFull        = errors.New("hand already holds 7 goods")
	ErrCannotGrabCamel = errors.New("cannot grab a camel")

	// Shared by Sell and Trade
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDuplicateIndex  = errors.New("duplicate index")

	// Sell
	ErrNoIndices          = errors.New("no cards selected")
	ErrMixedTypes         = errors.New("all sold cards must share one type")
	ErrCamelNotSellable   = errors.New("camels cannot be sold")
	ErrBelowMinimumForGem = errors.New("silver, gold, and diamond sell in lots of at least 2")

	// Trade
	ErrLengthMismatch            = errors.New("trade sides must have equal length")
	ErrTooFewCards               = errors.New("trades exchange at least 2 cards")
	ErrCannotTakeCamelFromMarket = errors.New("cannot take a camel in a trade")
	ErrOverlappingTypes          = errors.New("a type cannot appear on both sides of a trade")
	ErrHandLimitExceeded         = errors.New("trade would exceed the 7-good hand limit")
)
