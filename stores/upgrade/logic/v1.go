package logic

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/upgrade"
)

// baseLayout is the ordered auction record layout as first shipped. Later
// revisions may only append to it.
var baseLayout = []string{
	"auctionId",
	"chainId",
	"collection",
	"tokenId",
	"seller",
	"payToken",
	"reservePrice",
	"minIncrement",
	"startTime",
	"endTime",
	"highestBid",
	"state",
	"logicVersion",
	"createdAt",
	"updatedAt",
}

type v1 struct {
	extensionWindow time.Duration
}

func NewV1(extensionWindow time.Duration) upgrade.Logic {
	return &v1{extensionWindow: extensionWindow}
}

func (l *v1) Version() int { return 1 }

func (l *v1) StorageLayout() []string {
	return append([]string{}, baseLayout...)
}

func (l *v1) ValidateBid(a *auction.Auction, normalized decimal.Decimal) error {
	if !a.HasBid() {
		// first bid has to meet the reserve
		if normalized.LessThan(a.CurrentValuation()) {
			return domain.ErrBidTooLow
		}
		return nil
	}
	floor := a.CurrentValuation().Add(a.MinIncrementDecimal())
	if normalized.LessThanOrEqual(a.CurrentValuation()) || normalized.LessThan(floor) {
		return domain.ErrBidTooLow
	}
	return nil
}

func (l *v1) ExtendedDeadline(a *auction.Auction, now time.Time) (time.Time, bool) {
	if a.EndTime.Sub(now) >= l.extensionWindow {
		return a.EndTime, false
	}
	extended := now.Add(l.extensionWindow)
	if extended.Before(a.EndTime) {
		return a.EndTime, false
	}
	return extended, true
}

func (l *v1) SettlementPatch(a *auction.Auction) *auction.PatchableAuction {
	return &auction.PatchableAuction{}
}
