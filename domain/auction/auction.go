package auction

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

type State string

const (
	StateActive    State = "active"
	StateSettled   State = "settled"
	StateCancelled State = "cancelled"
)

// Auction is the durable record of a single english auction. Fields are
// append-only across logic revisions: new revisions may add trailing fields
// but must never insert, remove or reorder the existing ones, so records
// written before an upgrade decode identically after it.
type Auction struct {
	AuctionId    domain.AuctionId `json:"auctionId" bson:"auctionId"`
	ChainId      domain.ChainId   `json:"chainId" bson:"chainId"`
	Collection   domain.Address   `json:"collection" bson:"collection"`
	TokenId      domain.TokenId   `json:"tokenId" bson:"tokenId"`
	Seller       domain.Address   `json:"seller" bson:"seller"`
	PayToken     domain.Address   `json:"payToken" bson:"payToken"`
	ReservePrice string           `json:"reservePrice" bson:"reservePrice"`
	MinIncrement string           `json:"minIncrement" bson:"minIncrement"`
	StartTime    time.Time        `json:"startTime" bson:"startTime"`
	EndTime      time.Time        `json:"endTime" bson:"endTime"`
	HighestBid   *Bid             `json:"highestBid,omitempty" bson:"highestBid,omitempty"`
	State        State            `json:"state" bson:"state"`
	LogicVersion int              `json:"logicVersion" bson:"logicVersion"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt" bson:"updatedAt"`

	// appended by logic v2, zero for records written by v1
	SettledValuation string `json:"settledValuation,omitempty" bson:"settledValuation,omitempty"`
}

// CurrentValuation is the valuation a new bid has to beat: the highest bid's
// normalized amount, or the reserve price while no bid exists.
func (a *Auction) CurrentValuation() decimal.Decimal {
	if a.HighestBid != nil {
		return decimal.RequireFromString(a.HighestBid.Normalized)
	}
	return decimal.RequireFromString(a.ReservePrice)
}

func (a *Auction) MinIncrementDecimal() decimal.Decimal {
	if a.MinIncrement == "" {
		return decimal.Zero
	}
	return decimal.RequireFromString(a.MinIncrement)
}

func (a *Auction) HasBid() bool {
	return a.HighestBid != nil && !a.HighestBid.Bidder.IsEmpty()
}

// PatchableAuction carries the mutable subset of an auction record. Empty
// fields are skipped when building the update, see mongoclient.MakeBsonM.
type PatchableAuction struct {
	EndTime          *time.Time `bson:"endTime,omitempty"`
	HighestBid       *Bid       `bson:"highestBid,omitempty"`
	State            *State     `bson:"state,omitempty"`
	UpdatedAt        *time.Time `bson:"updatedAt,omitempty"`
	SettledValuation *string    `bson:"settledValuation,omitempty"`
}

type CreateParams struct {
	ChainId      domain.ChainId  `json:"chainId" validate:"required"`
	Collection   domain.Address  `json:"collection" validate:"required"`
	TokenId      domain.TokenId  `json:"tokenId" validate:"required"`
	PayToken     domain.Address  `json:"payToken" validate:"required"`
	ReservePrice decimal.Decimal `json:"reservePrice"`
	MinIncrement decimal.Decimal `json:"minIncrement"`
	Duration     time.Duration   `json:"duration" validate:"required"`
}

type findAllOptions struct {
	SortBy     *string
	SortDir    *domain.SortDir
	Offset     *int32
	Limit      *int32
	ChainId    *domain.ChainId
	Collection *domain.Address
	Seller     *domain.Address
	State      *State
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSort(sortby string, sortdir domain.SortDir) FindAllOptions {
	return func(options *findAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithChainId(chainId domain.ChainId) FindAllOptions {
	return func(options *findAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithCollection(collection domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		lowered := collection.ToLower()
		options.Collection = &lowered
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		lowered := seller.ToLower()
		options.Seller = &lowered
		return nil
	}
}

func WithState(state State) FindAllOptions {
	return func(options *findAllOptions) error {
		options.State = &state
		return nil
	}
}

type Repo interface {
	// NextId allocates the next sequential auction id
	NextId(c ctx.Ctx) (domain.AuctionId, error)
	Insert(c ctx.Ctx, a *Auction) error
	FindOne(c ctx.Ctx, id domain.AuctionId) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Auction, error)
	Patch(c ctx.Ctx, id domain.AuctionId, patchable *PatchableAuction) error
}

type Usecase interface {
	Create(c ctx.Ctx, seller domain.Address, params *CreateParams) (*Auction, error)
	Get(c ctx.Ctx, id domain.AuctionId) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Auction, error)
	// Cancel withdraws a bidless auction. Only the seller or the
	// administrator may cancel.
	Cancel(c ctx.Ctx, caller domain.Address, id domain.AuctionId) error
	// Finalize settles an ended auction, anyone may call it.
	Finalize(c ctx.Ctx, id domain.AuctionId) (*Auction, error)
	PlaceBid(c ctx.Ctx, bidder domain.Address, id domain.AuctionId, payToken domain.Address, amount decimal.Decimal) (*Auction, error)

	ListRefunds(c ctx.Ctx, beneficiary domain.Address) ([]*RefundEntry, error)
	// ClaimRefunds pays out every unclaimed refund owed to beneficiary and
	// returns the number of entries settled.
	ClaimRefunds(c ctx.Ctx, beneficiary domain.Address) (int, error)
}
