package event

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

type Type string

const (
	TypeAuctionCreated   Type = "auction_created"
	TypeBidPlaced        Type = "bid_placed"
	TypeAuctionExtended  Type = "auction_extended"
	TypeAuctionSettled   Type = "auction_settled"
	TypeAuctionCancelled Type = "auction_cancelled"
	TypeRefundFailed     Type = "refund_failed"
	TypeRefundClaimed    Type = "refund_claimed"

	TypeAdminChanged       Type = "admin_changed"
	TypeCollectionApproved Type = "collection_approved"
	TypeCollectionRevoked  Type = "collection_revoked"
	TypePriceFeedUpdated   Type = "price_feed_updated"
	TypePayTokenRegistered Type = "pay_token_registered"
	TypeUpgradeAuthorized  Type = "upgrade_authorized"
)

// Event is a persisted change notification. Every state mutation of the
// engine appends one, so external consumers can reconstruct what happened
// without scraping logs.
type Event struct {
	Id        string                 `json:"id" bson:"id"`
	Type      Type                   `json:"type" bson:"type"`
	AuctionId domain.AuctionId       `json:"auctionId,omitempty" bson:"auctionId,omitempty"`
	Payload   map[string]interface{} `json:"payload" bson:"payload"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	Insert(c ctx.Ctx, ev *Event) error
	FindByAuction(c ctx.Ctx, id domain.AuctionId) ([]*Event, error)
}
