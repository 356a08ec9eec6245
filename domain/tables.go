package domain

// Table is a mongo collection name
type Table string

const (
	TableAdmin               Table = "admin"
	TableApprovedCollections Table = "approved_collections"
	TablePriceFeeds          Table = "price_feeds"
	TablePayTokens           Table = "pay_tokens"
	TableAuctions            Table = "auctions"
	TableAuctionEvents       Table = "auction_events"
	TableRefundLedger        Table = "refund_ledger"
	TableCounters            Table = "counters"
)
