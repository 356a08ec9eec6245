package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/access"
	"github.com/x-xyz/auctionhouse/domain/event"
)

var timeNow = time.Now

type AccessUseCaseCfg struct {
	AccessRepo   access.Repo
	PayTokenRepo domain.PayTokenRepo
	EventRepo    event.Repo
}

type impl struct {
	access   access.Repo
	payToken domain.PayTokenRepo
	event    event.Repo
}

func NewAccess(cfg *AccessUseCaseCfg) access.Usecase {
	return &impl{
		access:   cfg.AccessRepo,
		payToken: cfg.PayTokenRepo,
		event:    cfg.EventRepo,
	}
}

func (im *impl) emit(c ctx.Ctx, typ event.Type, payload map[string]interface{}) {
	ev := &event.Event{
		Id:        uuid.New().String(),
		Type:      typ,
		Payload:   payload,
		CreatedAt: timeNow(),
	}
	if err := im.event.Insert(c, ev); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"type": typ,
		}).Error("event.Insert failed")
	}
}

func (im *impl) requireAdmin(c ctx.Ctx, caller domain.Address) error {
	ok, err := im.IsAdministrator(c, caller)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

func (im *impl) SetAdministrator(c ctx.Ctx, caller, newAdmin domain.Address) error {
	current, err := im.access.GetAdmin(c)
	if err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("access.GetAdmin failed")
		return err
	}
	// first call on an empty registry bootstraps the admin
	if current != nil && !current.Address.Equals(caller) {
		return domain.ErrUnauthorized
	}

	if err := im.access.SetAdmin(c, &access.Admin{
		Address:   newAdmin.ToLower(),
		UpdatedAt: timeNow(),
	}); err != nil {
		c.WithField("err", err).Error("access.SetAdmin failed")
		return err
	}

	im.emit(c, event.TypeAdminChanged, map[string]interface{}{
		"caller":   caller.ToLower(),
		"newAdmin": newAdmin.ToLower(),
	})
	c.WithField("newAdmin", newAdmin.ToLower()).Info("administrator changed")
	return nil
}

func (im *impl) GetAdministrator(c ctx.Ctx) (domain.Address, error) {
	admin, err := im.access.GetAdmin(c)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return admin.Address, nil
}

func (im *impl) IsAdministrator(c ctx.Ctx, caller domain.Address) (bool, error) {
	admin, err := im.access.GetAdmin(c)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("access.GetAdmin failed")
		return false, err
	}
	return admin.Address.Equals(caller), nil
}

func (im *impl) ApproveCollection(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, collection domain.Address) error {
	return im.setCollectionApproval(c, caller, chainId, collection, true)
}

func (im *impl) RevokeCollection(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, collection domain.Address) error {
	return im.setCollectionApproval(c, caller, chainId, collection, false)
}

func (im *impl) setCollectionApproval(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, collection domain.Address, approved bool) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}

	if err := im.access.UpsertCollection(c, &access.ApprovedCollection{
		ChainId:   chainId,
		Address:   collection.ToLower(),
		Approved:  approved,
		UpdatedAt: timeNow(),
	}); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"chainId":    chainId,
			"collection": collection,
		}).Error("access.UpsertCollection failed")
		return err
	}

	typ := event.TypeCollectionApproved
	if !approved {
		typ = event.TypeCollectionRevoked
	}
	im.emit(c, typ, map[string]interface{}{
		"chainId":    chainId,
		"collection": collection.ToLower(),
	})
	return nil
}

func (im *impl) IsApproved(c ctx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error) {
	res, err := im.access.FindCollection(c, &access.CollectionId{
		ChainId: chainId,
		Address: collection.ToLower(),
	})
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("access.FindCollection failed")
		return false, err
	}
	return res.Approved, nil
}

func (im *impl) RegisterPriceFeed(c ctx.Ctx, caller domain.Address, feed *access.PriceFeed) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}

	feed.Base = feed.Base.ToLower()
	feed.Quote = feed.Quote.ToLower()
	feed.FeedAddress = feed.FeedAddress.ToLower()
	feed.UpdatedAt = timeNow()
	if err := im.access.UpsertFeed(c, feed); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  feed.ToId(),
		}).Error("access.UpsertFeed failed")
		return err
	}

	im.emit(c, event.TypePriceFeedUpdated, map[string]interface{}{
		"chainId":     feed.ChainId,
		"base":        feed.Base,
		"quote":       feed.Quote,
		"feedAddress": feed.FeedAddress,
		"decimals":    feed.Decimals,
	})
	return nil
}

func (im *impl) GetFeed(c ctx.Ctx, chainId domain.ChainId, base, quote domain.Address) (*access.PriceFeed, error) {
	feed, err := im.access.FindFeed(c, &access.FeedId{
		ChainId: chainId,
		Base:    base.ToLower(),
		Quote:   quote.ToLower(),
	})
	if err == domain.ErrNotFound {
		return nil, domain.ErrFeedNotFound
	} else if err != nil {
		c.WithField("err", err).Error("access.FindFeed failed")
		return nil, err
	}
	return feed, nil
}

func (im *impl) RegisterPayToken(c ctx.Ctx, caller domain.Address, payToken *domain.PayToken) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}

	payToken.Address = payToken.Address.ToLower()
	if err := im.payToken.Upsert(c, payToken); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  payToken.ToId(),
		}).Error("payToken.Upsert failed")
		return err
	}

	im.emit(c, event.TypePayTokenRegistered, map[string]interface{}{
		"chainId": payToken.ChainId,
		"address": payToken.Address,
		"symbol":  payToken.Symbol,
	})
	return nil
}
