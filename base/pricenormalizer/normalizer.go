package pricenormalizer

import (
	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

// Normalizer converts an amount denominated in a source payment token into
// the auction's base valuation token through a registered price feed.
type Normalizer interface {
	// Normalize returns the amount valued in the base token, floor-rounded to
	// the feed's declared precision. Rounding never favors the bidder.
	Normalize(c bCtx.Ctx, chainId domain.ChainId, amount decimal.Decimal, source, base domain.Address) (decimal.Decimal, error)
}
