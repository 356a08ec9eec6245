package logic

import (
	"time"

	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/upgrade"
)

// v2 keeps v1's bidding rules and additionally persists the winning
// normalized valuation at settlement, appended as a trailing field.
type v2 struct {
	v1
}

func NewV2(extensionWindow time.Duration) upgrade.Logic {
	return &v2{v1{extensionWindow: extensionWindow}}
}

func (l *v2) Version() int { return 2 }

func (l *v2) StorageLayout() []string {
	return append(l.v1.StorageLayout(), "settledValuation")
}

func (l *v2) SettlementPatch(a *auction.Auction) *auction.PatchableAuction {
	patch := &auction.PatchableAuction{}
	if a.HasBid() {
		valuation := a.HighestBid.Normalized
		patch.SettledValuation = &valuation
	}
	return patch
}
