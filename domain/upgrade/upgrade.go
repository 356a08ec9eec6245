package upgrade

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
)

// Logic is a swappable revision of the settlement rules. A Logic never owns
// auction storage, it only reads and derives from records handed to it, so
// activating a new revision cannot orphan persisted state.
type Logic interface {
	Version() int

	// StorageLayout declares the ordered auction record fields this revision
	// reads. A new revision's layout must extend the active one as a prefix.
	StorageLayout() []string

	// ValidateBid decides whether a normalized valuation beats the
	// auction's current state. Returns domain.ErrBidTooLow if not.
	ValidateBid(a *auction.Auction, normalized decimal.Decimal) error

	// ExtendedDeadline applies the anti-snipe rule: the returned end time is
	// never earlier than the current one, and the bool reports whether the
	// deadline moved.
	ExtendedDeadline(a *auction.Auction, now time.Time) (time.Time, bool)

	// SettlementPatch returns the revision-specific fields persisted when an
	// auction settles.
	SettlementPatch(a *auction.Auction) *auction.PatchableAuction
}

type Gate interface {
	// Register makes a logic revision available for activation.
	Register(logic Logic) error

	// AuthorizeUpgrade switches dispatch to the given revision.
	// Administrator only, and the revision's storage layout must extend the
	// active one.
	AuthorizeUpgrade(c ctx.Ctx, caller domain.Address, version int) error

	// Active returns the revision currently dispatched to.
	Active() Logic

	Version() int
}
