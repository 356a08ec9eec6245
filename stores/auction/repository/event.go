package repository

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/event"
	"github.com/x-xyz/auctionhouse/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type eventImpl struct {
	q query.Mongo
}

func NewEvent(q query.Mongo) event.Repo {
	return &eventImpl{q}
}

func (im *eventImpl) Insert(c ctx.Ctx, ev *event.Event) error {
	if err := im.q.Insert(c, domain.TableAuctionEvents, ev); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *eventImpl) FindByAuction(c ctx.Ctx, id domain.AuctionId) ([]*event.Event, error) {
	res := []*event.Event{}
	qry := bson.M{"auctionId": id}
	if err := im.q.Search(c, domain.TableAuctionEvents, 0, 0, "createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
