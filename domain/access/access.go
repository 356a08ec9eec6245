package access

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

// Admin is the singleton administrator document. Every privileged call in the
// engine is gated on this one record.
type Admin struct {
	Address   domain.Address `bson:"address"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

type CollectionId struct {
	ChainId domain.ChainId `bson:"chainId"`
	Address domain.Address `bson:"address"`
}

// ApprovedCollection flags an asset collection as auctionable.
type ApprovedCollection struct {
	ChainId   domain.ChainId `bson:"chainId"`
	Address   domain.Address `bson:"address"`
	Approved  bool           `bson:"approved"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

func (c *ApprovedCollection) ToId() *CollectionId {
	return &CollectionId{
		ChainId: c.ChainId,
		Address: c.Address.ToLower(),
	}
}

type FeedId struct {
	ChainId domain.ChainId `bson:"chainId"`
	Base    domain.Address `bson:"base"`
	Quote   domain.Address `bson:"quote"`
}

// PriceFeed maps an ordered (base, quote) pay-token pair to its oracle
// aggregator. Decimals is the precision of the answers the feed returns.
type PriceFeed struct {
	ChainId     domain.ChainId `bson:"chainId"`
	Base        domain.Address `bson:"base"`
	Quote       domain.Address `bson:"quote"`
	FeedAddress domain.Address `bson:"feedAddress"`
	Decimals    int32          `bson:"decimals"`
	UpdatedAt   time.Time      `bson:"updatedAt"`
}

func (f *PriceFeed) ToId() *FeedId {
	return &FeedId{
		ChainId: f.ChainId,
		Base:    f.Base.ToLower(),
		Quote:   f.Quote.ToLower(),
	}
}

type Repo interface {
	GetAdmin(ctx.Ctx) (*Admin, error)
	SetAdmin(ctx.Ctx, *Admin) error
	FindCollection(ctx.Ctx, *CollectionId) (*ApprovedCollection, error)
	UpsertCollection(ctx.Ctx, *ApprovedCollection) error
	FindFeed(ctx.Ctx, *FeedId) (*PriceFeed, error)
	UpsertFeed(ctx.Ctx, *PriceFeed) error
}

type Usecase interface {
	// SetAdministrator replaces the administrator identity. The first call on
	// an empty registry bootstraps the admin, afterwards only the current
	// administrator may call it.
	SetAdministrator(c ctx.Ctx, caller, newAdmin domain.Address) error
	GetAdministrator(c ctx.Ctx) (domain.Address, error)
	// IsAdministrator reports whether caller is the current administrator.
	IsAdministrator(c ctx.Ctx, caller domain.Address) (bool, error)

	ApproveCollection(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, collection domain.Address) error
	RevokeCollection(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, collection domain.Address) error
	IsApproved(c ctx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error)

	RegisterPriceFeed(c ctx.Ctx, caller domain.Address, feed *PriceFeed) error
	GetFeed(c ctx.Ctx, chainId domain.ChainId, base, quote domain.Address) (*PriceFeed, error)

	RegisterPayToken(c ctx.Ctx, caller domain.Address, payToken *domain.PayToken) error
}
