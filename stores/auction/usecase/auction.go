package usecase

import (
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/pricenormalizer"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/access"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/event"
	"github.com/x-xyz/auctionhouse/domain/upgrade"
	"github.com/x-xyz/auctionhouse/service/chain/contract"
)

var timeNow = time.Now

type AuctionUseCaseCfg struct {
	AuctionRepo  auction.Repo
	RefundRepo   auction.RefundRepo
	EventRepo    event.Repo
	PayTokenRepo domain.PayTokenRepo
	Access       access.Usecase
	Normalizer   pricenormalizer.Normalizer
	Erc20        contract.Erc20Contract
	Erc721       contract.Erc721Contract
	Gate         upgrade.Gate

	// Custody holds escrowed payments and is the approved operator for
	// settlement transfers.
	Custody domain.Address

	// StrictRefunds makes a failed displaced-bid refund reject the new bid
	// instead of deferring the refund to the ledger.
	StrictRefunds bool
}

type impl struct {
	auction    auction.Repo
	refund     auction.RefundRepo
	event      event.Repo
	payToken   domain.PayTokenRepo
	accessUC   access.Usecase
	normalizer pricenormalizer.Normalizer
	erc20      contract.Erc20Contract
	erc721     contract.Erc721Contract
	gate       upgrade.Gate

	custody       domain.Address
	strictRefunds bool

	// serializes every state-mutating call, matching the single-writer
	// execution model the settlement rules assume
	mu sync.Mutex
}

func NewAuction(cfg *AuctionUseCaseCfg) auction.Usecase {
	return &impl{
		auction:       cfg.AuctionRepo,
		refund:        cfg.RefundRepo,
		event:         cfg.EventRepo,
		payToken:      cfg.PayTokenRepo,
		accessUC:      cfg.Access,
		normalizer:    cfg.Normalizer,
		erc20:         cfg.Erc20,
		erc721:        cfg.Erc721,
		gate:          cfg.Gate,
		custody:       cfg.Custody,
		strictRefunds: cfg.StrictRefunds,
	}
}

func (im *impl) emit(c ctx.Ctx, typ event.Type, auctionId domain.AuctionId, payload map[string]interface{}) {
	ev := &event.Event{
		Id:        uuid.New().String(),
		Type:      typ,
		AuctionId: auctionId,
		Payload:   payload,
		CreatedAt: timeNow(),
	}
	if err := im.event.Insert(c, ev); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"type":      typ,
			"auctionId": auctionId,
		}).Error("event.Insert failed")
	}
}

func (im *impl) Create(c ctx.Ctx, seller domain.Address, params *auction.CreateParams) (*auction.Auction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	approved, err := im.accessUC.IsApproved(c, params.ChainId, params.Collection)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, domain.ErrCollectionNotApproved
	}
	if params.Duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	is721, err := im.erc721.Supports721Interface(c, params.ChainId, params.Collection)
	if err != nil {
		c.WithField("err", err).Error("erc721.Supports721Interface failed")
		return nil, err
	}
	if !is721 {
		return nil, domain.ErrBadParamInput
	}

	id, err := im.auction.NextId(c)
	if err != nil {
		c.WithField("err", err).Error("auction.NextId failed")
		return nil, err
	}

	now := timeNow()
	a := &auction.Auction{
		AuctionId:    id,
		ChainId:      params.ChainId,
		Collection:   params.Collection.ToLower(),
		TokenId:      params.TokenId,
		Seller:       seller.ToLower(),
		PayToken:     params.PayToken.ToLower(),
		ReservePrice: params.ReservePrice.String(),
		MinIncrement: params.MinIncrement.String(),
		StartTime:    now,
		EndTime:      now.Add(params.Duration),
		State:        auction.StateActive,
		LogicVersion: im.gate.Version(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := im.auction.Insert(c, a); err != nil {
		c.WithField("err", err).Error("auction.Insert failed")
		return nil, err
	}

	im.emit(c, event.TypeAuctionCreated, id, map[string]interface{}{
		"seller":     a.Seller,
		"collection": a.Collection,
		"tokenId":    a.TokenId,
		"endTime":    a.EndTime,
	})
	return a, nil
}

func (im *impl) Get(c ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	return im.auction.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptions) ([]*auction.Auction, error) {
	return im.auction.FindAll(c, opts...)
}

func (im *impl) Cancel(c ctx.Ctx, caller domain.Address, id domain.AuctionId) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return err
	}
	if a.State != auction.StateActive {
		return domain.ErrAlreadySettled
	}
	if a.HasBid() {
		return domain.ErrAuctionHasBids
	}

	if !a.Seller.Equals(caller) {
		isAdmin, err := im.accessUC.IsAdministrator(c, caller)
		if err != nil {
			return err
		}
		if !isAdmin {
			return domain.ErrUnauthorized
		}
	}

	now := timeNow()
	cancelled := auction.StateCancelled
	if err := im.auction.Patch(c, id, &auction.PatchableAuction{
		State:     &cancelled,
		UpdatedAt: &now,
	}); err != nil {
		c.WithField("err", err).Error("auction.Patch failed")
		return err
	}

	im.emit(c, event.TypeAuctionCancelled, id, map[string]interface{}{
		"caller": caller.ToLower(),
	})
	return nil
}

func (im *impl) Finalize(c ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if a.State != auction.StateActive {
		return nil, domain.ErrAlreadySettled
	}
	now := timeNow()
	if now.Before(a.EndTime) {
		return nil, domain.ErrTooEarly
	}

	if a.HasBid() {
		if err := im.settle(c, a); err != nil {
			return nil, err
		}
	}

	settled := auction.StateSettled
	patch := im.gate.Active().SettlementPatch(a)
	patch.State = &settled
	patch.UpdatedAt = &now
	if err := im.auction.Patch(c, id, patch); err != nil {
		c.WithField("err", err).Error("auction.Patch failed")
		return nil, err
	}

	payload := map[string]interface{}{}
	if a.HasBid() {
		payload["winner"] = a.HighestBid.Bidder
		payload["amount"] = a.HighestBid.Amount
		payload["payToken"] = a.HighestBid.PayToken
	}
	im.emit(c, event.TypeAuctionSettled, id, payload)

	a.State = auction.StateSettled
	a.UpdatedAt = now
	if patch.SettledValuation != nil {
		a.SettledValuation = *patch.SettledValuation
	}
	return a, nil
}

// settle moves the asset to the winner and the escrowed payment to the
// seller. Any transfer failure aborts the finalize with no state change.
func (im *impl) settle(c ctx.Ctx, a *auction.Auction) error {
	tokenId, err := a.TokenId.ToBigInt()
	if err != nil {
		c.WithField("err", err).Error("TokenId.ToBigInt failed")
		return err
	}

	owner, err := im.erc721.OwnerOf(c, a.ChainId, a.Collection, tokenId)
	if err != nil {
		c.WithField("err", err).Error("erc721.OwnerOf failed")
		return domain.ErrTransferFailed
	}
	if !owner.Equals(a.Seller) {
		c.WithFields(log.Fields{
			"owner":  owner,
			"seller": a.Seller,
		}).Error("seller no longer owns the asset")
		return domain.ErrTransferFailed
	}

	approvedAll, err := im.erc721.IsApprovedForAll(c, a.ChainId, a.Collection, a.Seller, im.custody)
	if err != nil {
		c.WithField("err", err).Error("erc721.IsApprovedForAll failed")
		return domain.ErrTransferFailed
	}
	if !approvedAll {
		operator, err := im.erc721.GetApproved(c, a.ChainId, a.Collection, tokenId)
		if err != nil {
			c.WithField("err", err).Error("erc721.GetApproved failed")
			return domain.ErrTransferFailed
		}
		if !operator.Equals(im.custody) {
			c.WithFields(log.Fields{
				"operator":  operator,
				"auctionId": a.AuctionId,
			}).Error("custody not approved for the asset")
			return domain.ErrTransferFailed
		}
	}

	if err := im.erc721.TransferFrom(c, a.ChainId, a.Collection, a.Seller, a.HighestBid.Bidder, tokenId); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.AuctionId,
		}).Error("erc721.TransferFrom failed")
		return domain.ErrTransferFailed
	}

	raw, ok := new(big.Int).SetString(a.HighestBid.RawAmount, 10)
	if !ok {
		c.WithField("rawAmount", a.HighestBid.RawAmount).Error("invalid raw amount")
		return domain.ErrTransferFailed
	}
	if err := im.erc20.Transfer(c, a.ChainId, a.HighestBid.PayToken, a.Seller, raw); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.AuctionId,
		}).Error("erc20.Transfer failed")
		return domain.ErrTransferFailed
	}
	return nil
}

func (im *impl) ListRefunds(c ctx.Ctx, beneficiary domain.Address) ([]*auction.RefundEntry, error) {
	return im.refund.FindUnclaimed(c, beneficiary)
}

func (im *impl) ClaimRefunds(c ctx.Ctx, beneficiary domain.Address) (int, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	entries, err := im.refund.FindUnclaimed(c, beneficiary)
	if err != nil {
		return 0, err
	}

	claimed := 0
	for _, entry := range entries {
		raw, ok := new(big.Int).SetString(entry.RawAmount, 10)
		if !ok {
			c.WithField("rawAmount", entry.RawAmount).Error("invalid raw amount")
			continue
		}
		if err := im.erc20.Transfer(c, entry.ChainId, entry.PayToken, entry.Beneficiary, raw); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"id":  entry.Id,
			}).Error("erc20.Transfer failed")
			continue
		}
		if err := im.refund.MarkClaimed(c, entry.Id); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"id":  entry.Id,
			}).Error("refund.MarkClaimed failed")
			continue
		}
		im.emit(c, event.TypeRefundClaimed, entry.AuctionId, map[string]interface{}{
			"beneficiary": entry.Beneficiary,
			"amount":      entry.Amount,
			"payToken":    entry.PayToken,
		})
		claimed++
	}
	return claimed, nil
}

// toRawAmount scales a display amount to the integer the custody contract
// expects, truncating sub-precision dust.
func toRawAmount(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}
