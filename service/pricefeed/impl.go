package pricefeed

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/auctionhouse/base/abi"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/service/chain"
)

type impl struct {
	chainClient chain.Client
}

func New(chainClient chain.Client) Service {
	return &impl{
		chainClient: chainClient,
	}
}

func (im *impl) LatestAnswer(c bCtx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error) {
	feedAddr := common.HexToAddress(string(feedAddress))

	res, err := im.chainClient.Call(c, int32(chainId), feedAddr, nil, abi.PriceFeedABI, "latestAnswer")
	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"chainId":     chainId,
			"feedAddress": feedAddress,
		}).Error("chainClient.Call failed")
		return nil, err
	}

	return res[0].(*big.Int), nil
}
