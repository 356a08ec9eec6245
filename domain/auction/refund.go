package auction

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

// RefundEntry records a refund that could not be pushed to a displaced
// bidder. The obligation stays on the ledger until the beneficiary claims it,
// it is never silently dropped.
type RefundEntry struct {
	Id          string           `json:"id" bson:"id"`
	AuctionId   domain.AuctionId `json:"auctionId" bson:"auctionId"`
	ChainId     domain.ChainId   `json:"chainId" bson:"chainId"`
	PayToken    domain.Address   `json:"payToken" bson:"payToken"`
	Beneficiary domain.Address   `json:"beneficiary" bson:"beneficiary"`
	Amount      string           `json:"amount" bson:"amount"`
	RawAmount   string           `json:"rawAmount" bson:"rawAmount"`
	Reason      string           `json:"reason" bson:"reason"`
	Claimed     bool             `json:"claimed" bson:"claimed"`
	CreatedAt   time.Time        `json:"createdAt" bson:"createdAt"`
	ClaimedAt   *time.Time       `json:"claimedAt,omitempty" bson:"claimedAt,omitempty"`
}

type RefundRepo interface {
	Insert(c ctx.Ctx, entry *RefundEntry) error
	FindUnclaimed(c ctx.Ctx, beneficiary domain.Address) ([]*RefundEntry, error)
	MarkClaimed(c ctx.Ctx, id string) error
}
