package errs

import "errors"

// Sentinel errors shared by the auction house and its callers. Handlers map
// these with errors.Is; anything unmatched is reported as an internal error.
var (
	// Stock errors
	ErrOutOfStock = errors.New("out of stock")

	// Account errors
	ErrEmailTaken        = errors.New("email taken")
	ErrInvalidClient     = errors.New("invalid client")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Auction errors
	ErrBidTooLow = errors.New("bid too low")

	// Input errors
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidID           = errors.New("invalid id")
)
