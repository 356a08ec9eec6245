package domain

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
)

type PayTokenId struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken is a fungible asset accepted for bidding. TokenDecimals scales
// display amounts to the raw integer amounts the custody contract expects.
type PayToken struct {
	Name          string  `bson:"name"`
	Symbol        string  `bson:"symbol"`
	TokenDecimals int32   `bson:"tokenDecimals"`
	ChainId       ChainId `bson:"chainId"`
	Address       Address `bson:"address"`
}

func (t *PayToken) ToId() *PayTokenId {
	return &PayTokenId{
		ChainId: t.ChainId,
		Address: t.Address.ToLower(),
	}
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Create(ctx.Ctx, *PayToken) error
	Upsert(ctx.Ctx, *PayToken) error
}
