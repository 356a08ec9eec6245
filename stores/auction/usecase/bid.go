package usecase

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/event"
)

func (im *impl) PlaceBid(c ctx.Ctx, bidder domain.Address, id domain.AuctionId, payToken domain.Address, amount decimal.Decimal) (*auction.Auction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	bidder = bidder.ToLower()
	payToken = payToken.ToLower()

	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if a.State != auction.StateActive {
		return nil, domain.ErrAuctionNotActive
	}
	now := timeNow()
	if !now.Before(a.EndTime) {
		return nil, domain.ErrAuctionExpired
	}

	normalized, err := im.normalizer.Normalize(c, a.ChainId, amount, payToken, a.PayToken)
	if err != nil {
		return nil, err
	}

	logic := im.gate.Active()
	if err := logic.ValidateBid(a, normalized); err != nil {
		return nil, err
	}

	token, err := im.payToken.FindOne(c, a.ChainId, payToken)
	if err != nil {
		return nil, err
	}
	raw := toRawAmount(amount, token.TokenDecimals)

	allowance, err := im.erc20.Allowance(c, a.ChainId, payToken, bidder, im.custody)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
			"bidder":    bidder,
		}).Error("erc20.Allowance failed")
		return nil, domain.ErrTransferFailed
	}
	if allowance.Cmp(raw) < 0 {
		return nil, domain.ErrTransferFailed
	}

	// escrow first: a failed pull rejects the bid with no state change
	if err := im.erc20.TransferFrom(c, a.ChainId, payToken, bidder, im.custody, raw); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
			"bidder":    bidder,
		}).Error("erc20.TransferFrom failed")
		return nil, domain.ErrTransferFailed
	}

	if a.HasBid() {
		if err := im.refundDisplacedBid(c, a); err != nil {
			if im.strictRefunds {
				// give the freshly escrowed amount back before failing
				if err := im.erc20.Transfer(c, a.ChainId, payToken, bidder, raw); err != nil {
					c.WithFields(log.Fields{
						"err":       err,
						"auctionId": id,
						"bidder":    bidder,
					}).Error("escrow return failed")
				}
				return nil, domain.ErrTransferFailed
			}
			im.recordFailedRefund(c, a, err)
		}
	}

	bid := &auction.Bid{
		Bidder:     bidder,
		PayToken:   payToken,
		Amount:     amount.String(),
		RawAmount:  raw.String(),
		Normalized: normalized.String(),
		BidTime:    now,
	}

	patch := &auction.PatchableAuction{
		HighestBid: bid,
		UpdatedAt:  &now,
	}

	deadline, extended := logic.ExtendedDeadline(a, now)
	if extended {
		patch.EndTime = &deadline
	}

	if err := im.auction.Patch(c, id, patch); err != nil {
		c.WithField("err", err).Error("auction.Patch failed")
		return nil, err
	}

	im.emit(c, event.TypeBidPlaced, id, map[string]interface{}{
		"bidder":     bidder,
		"payToken":   payToken,
		"amount":     bid.Amount,
		"normalized": bid.Normalized,
	})
	if extended {
		im.emit(c, event.TypeAuctionExtended, id, map[string]interface{}{
			"endTime": deadline,
		})
	}

	a.HighestBid = bid
	a.UpdatedAt = now
	if extended {
		a.EndTime = deadline
	}
	return a, nil
}

// refundDisplacedBid returns the previously escrowed amount, in its original
// currency, to the displaced bidder.
func (im *impl) refundDisplacedBid(c ctx.Ctx, a *auction.Auction) error {
	prev := a.HighestBid
	raw, ok := new(big.Int).SetString(prev.RawAmount, 10)
	if !ok {
		c.WithField("rawAmount", prev.RawAmount).Error("invalid raw amount")
		return domain.ErrTransferFailed
	}
	if err := im.erc20.Transfer(c, a.ChainId, prev.PayToken, prev.Bidder, raw); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.AuctionId,
			"bidder":    prev.Bidder,
		}).Error("erc20.Transfer failed")
		return err
	}
	return nil
}

// recordFailedRefund parks the obligation on the ledger so the displaced
// bidder can pull it later.
func (im *impl) recordFailedRefund(c ctx.Ctx, a *auction.Auction, cause error) {
	prev := a.HighestBid
	entry := &auction.RefundEntry{
		Id:          uuid.New().String(),
		AuctionId:   a.AuctionId,
		ChainId:     a.ChainId,
		PayToken:    prev.PayToken,
		Beneficiary: prev.Bidder,
		Amount:      prev.Amount,
		RawAmount:   prev.RawAmount,
		Reason:      cause.Error(),
		CreatedAt:   timeNow(),
	}
	if err := im.refund.Insert(c, entry); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.AuctionId,
		}).Error("refund.Insert failed")
	}
	im.emit(c, event.TypeRefundFailed, a.AuctionId, map[string]interface{}{
		"beneficiary": prev.Bidder,
		"amount":      prev.Amount,
		"payToken":    prev.PayToken,
		"reason":      cause.Error(),
	})
}
