package auction

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/domain"
)

// Bid is the currently winning bid of an auction. Displaced bids are not
// retained, they are refunded and overwritten in place.
type Bid struct {
	Bidder   domain.Address `json:"bidder" bson:"bidder"`
	PayToken domain.Address `json:"payToken" bson:"payToken"`
	// Amount is in display units of PayToken, RawAmount is the integer
	// amount actually escrowed on chain.
	Amount    string    `json:"amount" bson:"amount"`
	RawAmount string    `json:"rawAmount" bson:"rawAmount"`
	// Normalized is the valuation in the auction's base token, used for all
	// comparisons between bids.
	Normalized string    `json:"normalized" bson:"normalized"`
	BidTime    time.Time `json:"bidTime" bson:"bidTime"`
}

func (b *Bid) NormalizedDecimal() decimal.Decimal {
	return decimal.RequireFromString(b.Normalized)
}
