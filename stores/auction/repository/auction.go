package repository

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

const auctionIdCounterKey = "auctionId"

type idCounter struct {
	Key string `bson:"key"`
	Seq int64  `bson:"seq"`
}

func makeFindQuery(optFns ...auction.FindAllOptions) (bson.M, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.ChainId != nil {
		query["chainId"] = *opts.ChainId
	}

	if opts.Collection != nil {
		query["collection"] = *opts.Collection
	}

	if opts.Seller != nil {
		query["seller"] = *opts.Seller
	}

	if opts.State != nil {
		query["state"] = *opts.State
	}

	return query, nil
}

type auctionImpl struct {
	q query.Mongo
}

func NewAuction(q query.Mongo) auction.Repo {
	return &auctionImpl{q}
}

func (im *auctionImpl) NextId(c ctx.Ctx) (domain.AuctionId, error) {
	res := &idCounter{}
	selector := bson.M{"key": auctionIdCounterKey}
	if err := im.q.Increment(c, domain.TableCounters, selector, res, "seq", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return domain.AuctionId(res.Seq), nil
}

func (im *auctionImpl) Insert(c ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, a); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *auctionImpl) FindOne(c ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	res := &auction.Auction{}
	if err := im.q.FindOne(c, domain.TableAuctions, bson.M{"auctionId": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionImpl) FindAll(c ctx.Ctx, optFns ...auction.FindAllOptions) ([]*auction.Auction, error) {
	res := []*auction.Auction{}

	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return res, err
	}

	offset := int(0)
	limit := int(0)
	sort := "auctionId"

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		return res, err
	}

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	if opts.SortBy != nil && opts.SortDir != nil {
		sort = *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	if err := im.q.Search(c, domain.TableAuctions, offset, limit, sort, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}

	return res, nil
}

func (im *auctionImpl) Patch(c ctx.Ctx, id domain.AuctionId, patchable *auction.PatchableAuction) error {
	update, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableAuctions, bson.M{"auctionId": id}, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return err
	}
	return nil
}
