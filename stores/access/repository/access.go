package repository

import (
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/access"
	"github.com/x-xyz/auctionhouse/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type accessImpl struct {
	q query.Mongo
}

func NewAccess(q query.Mongo) access.Repo {
	return &accessImpl{q}
}

func (im *accessImpl) GetAdmin(c bCtx.Ctx) (*access.Admin, error) {
	admin := &access.Admin{}
	// singleton document
	if err := im.q.FindOne(c, domain.TableAdmin, bson.M{}, admin); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return admin, nil
}

func (im *accessImpl) SetAdmin(c bCtx.Ctx, admin *access.Admin) error {
	if err := im.q.Upsert(c, domain.TableAdmin, bson.M{}, admin); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"admin": admin,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *accessImpl) FindCollection(c bCtx.Ctx, id *access.CollectionId) (*access.ApprovedCollection, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &access.ApprovedCollection{}
	if err := im.q.FindOne(c, domain.TableApprovedCollections, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *accessImpl) UpsertCollection(c bCtx.Ctx, collection *access.ApprovedCollection) error {
	selector, err := mongoclient.MakeBsonM(collection.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Upsert(c, domain.TableApprovedCollections, selector, collection); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  collection.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *accessImpl) FindFeed(c bCtx.Ctx, id *access.FeedId) (*access.PriceFeed, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &access.PriceFeed{}
	if err := im.q.FindOne(c, domain.TablePriceFeeds, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *accessImpl) UpsertFeed(c bCtx.Ctx, feed *access.PriceFeed) error {
	selector, err := mongoclient.MakeBsonM(feed.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Upsert(c, domain.TablePriceFeeds, selector, feed); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  feed.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
