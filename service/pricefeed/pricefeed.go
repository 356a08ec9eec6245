package pricefeed

import (
	"math/big"

	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

// Service reads the latest answer of a price-feed aggregator. Answers are
// read fresh on every call: normalization trusts a single oracle read and
// must never serve a stale rate.
type Service interface {
	LatestAnswer(c bCtx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error)
}
