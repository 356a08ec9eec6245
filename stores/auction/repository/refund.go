package repository

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type refundImpl struct {
	q query.Mongo
}

func NewRefund(q query.Mongo) auction.RefundRepo {
	return &refundImpl{q}
}

func (im *refundImpl) Insert(c ctx.Ctx, entry *auction.RefundEntry) error {
	if err := im.q.Insert(c, domain.TableRefundLedger, entry); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *refundImpl) FindUnclaimed(c ctx.Ctx, beneficiary domain.Address) ([]*auction.RefundEntry, error) {
	res := []*auction.RefundEntry{}
	qry := bson.M{
		"beneficiary": beneficiary.ToLower(),
		"claimed":     false,
	}
	if err := im.q.Search(c, domain.TableRefundLedger, 0, 0, "createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *refundImpl) MarkClaimed(c ctx.Ctx, id string) error {
	now := time.Now()
	update := bson.M{
		"claimed":   true,
		"claimedAt": now,
	}
	if err := im.q.Patch(c, domain.TableRefundLedger, bson.M{"id": id}, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
