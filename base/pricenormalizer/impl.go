package pricenormalizer

import (
	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/access"
	"github.com/x-xyz/auctionhouse/service/pricefeed"
)

type NormalizerCfg struct {
	Access access.Usecase
	Oracle pricefeed.Service
}

type impl struct {
	access access.Usecase
	oracle pricefeed.Service
}

func NewNormalizer(cfg *NormalizerCfg) Normalizer {
	return &impl{
		access: cfg.Access,
		oracle: cfg.Oracle,
	}
}

func (im *impl) Normalize(c bCtx.Ctx, chainId domain.ChainId, amount decimal.Decimal, source, base domain.Address) (decimal.Decimal, error) {
	if source.Equals(base) {
		return amount, nil
	}

	feed, err := im.access.GetFeed(c, chainId, source, base)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"source":  source,
			"base":    base,
		}).Error("access.GetFeed failed")
		return decimal.Zero, err
	}

	answer, err := im.oracle.LatestAnswer(c, chainId, feed.FeedAddress)
	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"chainId":     chainId,
			"feedAddress": feed.FeedAddress,
		}).Error("oracle.LatestAnswer failed")
		return decimal.Zero, domain.ErrOracleUnavailable
	}
	if answer.Sign() <= 0 {
		c.WithFields(log.Fields{
			"chainId":     chainId,
			"feedAddress": feed.FeedAddress,
			"answer":      answer.String(),
		}).Error("oracle returned non-positive answer")
		return decimal.Zero, domain.ErrOracleUnavailable
	}

	rate := decimal.NewFromBigInt(answer, -feed.Decimals)
	return amount.Mul(rate).RoundFloor(feed.Decimals), nil
}
