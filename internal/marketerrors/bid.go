package marketerrors

import "github.com/shopspring/decimal"

// BidTooLowError carries the smallest amount the auction would accept
type BidTooLowError struct {
	Minimum decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return "bid must be at least " + e.Minimum.String()
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}
