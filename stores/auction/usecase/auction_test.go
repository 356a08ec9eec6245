package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/event"
	"github.com/x-xyz/auctionhouse/domain/mocks"
	"github.com/x-xyz/auctionhouse/stores/upgrade/logic"
	upgradeUC "github.com/x-xyz/auctionhouse/stores/upgrade/usecase"
)

var (
	sellerAddr  = domain.Address("0xc37c41601bc88c91b6569c701f08d37fa0f565f0")
	bidderAddr  = domain.Address("0x9a38dec0590abc8c883d72e52391090e948ddf12")
	bidder2Addr = domain.Address("0xef88c71f5be29c4b30bf89625bd9be8f263e940c")
	custodyAddr = domain.Address("0x0f0eae91990140c560d4156db4f00c854dc8f09e")
	collection  = domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	wethAddr    = domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")

	frozenNow = time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
)

type engineMocks struct {
	auctionRepo *mocks.AuctionRepo
	refundRepo  *mocks.RefundRepo
	eventRepo   *mocks.EventRepo
	payToken    *mocks.PayTokenRepo
	accessUC    *mocks.AccessUsecase
	normalizer  *mocks.Normalizer
	erc20       *mocks.Erc20Contract
	erc721      *mocks.Erc721Contract
}

func newEngine(t *testing.T, strictRefunds bool) (auction.Usecase, *engineMocks) {
	t.Helper()

	m := &engineMocks{
		auctionRepo: &mocks.AuctionRepo{},
		refundRepo:  &mocks.RefundRepo{},
		eventRepo:   &mocks.EventRepo{},
		payToken:    &mocks.PayTokenRepo{},
		accessUC:    &mocks.AccessUsecase{},
		normalizer:  &mocks.Normalizer{},
		erc20:       &mocks.Erc20Contract{},
		erc721:      &mocks.Erc721Contract{},
	}

	gate := upgradeUC.NewGate(&upgradeUC.GateCfg{Access: m.accessUC, Event: m.eventRepo})
	require.NoError(t, gate.Register(logic.NewV1(15*time.Minute)))
	require.NoError(t, gate.Register(logic.NewV2(15*time.Minute)))

	uc := NewAuction(&AuctionUseCaseCfg{
		AuctionRepo:   m.auctionRepo,
		RefundRepo:    m.refundRepo,
		EventRepo:     m.eventRepo,
		PayTokenRepo:  m.payToken,
		Access:        m.accessUC,
		Normalizer:    m.normalizer,
		Erc20:         m.erc20,
		Erc721:        m.erc721,
		Gate:          gate,
		Custody:       custodyAddr,
		StrictRefunds: strictRefunds,
	})
	return uc, m
}

func freezeTime(t *testing.T) {
	t.Helper()
	timeNow = func() time.Time { return frozenNow }
	t.Cleanup(func() { timeNow = time.Now })
}

func activeAuction() *auction.Auction {
	return &auction.Auction{
		AuctionId:    1,
		ChainId:      1,
		Collection:   collection,
		TokenId:      "42",
		Seller:       sellerAddr,
		PayToken:     wethAddr,
		ReservePrice: "1",
		MinIncrement: "0.1",
		StartTime:    frozenNow.Add(-time.Hour),
		EndTime:      frozenNow.Add(time.Hour),
		State:        auction.StateActive,
		LogicVersion: 1,
	}
}

func TestCreateRejectsUnapprovedCollection(t *testing.T) {
	req := require.New(t)
	uc, m := newEngine(t, false)
	m.accessUC.On("IsApproved", mock.Anything, domain.ChainId(1), collection).Return(false, nil)

	_, err := uc.Create(bCtx.Background(), sellerAddr, &auction.CreateParams{
		ChainId:      1,
		Collection:   collection,
		TokenId:      "42",
		PayToken:     wethAddr,
		ReservePrice: decimal.RequireFromString("1"),
		Duration:     time.Hour,
	})
	req.ErrorIs(err, domain.ErrCollectionNotApproved)
	m.auctionRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateRejectsInvalidDuration(t *testing.T) {
	req := require.New(t)
	uc, m := newEngine(t, false)
	m.accessUC.On("IsApproved", mock.Anything, domain.ChainId(1), collection).Return(true, nil)

	_, err := uc.Create(bCtx.Background(), sellerAddr, &auction.CreateParams{
		ChainId:    1,
		Collection: collection,
		TokenId:    "42",
		PayToken:   wethAddr,
		Duration:   0,
	})
	req.ErrorIs(err, domain.ErrInvalidDuration)
}

func TestCreateAssignsSequentialIdAndLogicVersion(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	m.accessUC.On("IsApproved", mock.Anything, domain.ChainId(1), collection).Return(true, nil)
	m.erc721.On("Supports721Interface", mock.Anything, domain.ChainId(1), collection).Return(true, nil)
	m.auctionRepo.On("NextId", mock.Anything).Return(domain.AuctionId(7), nil)
	m.auctionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	a, err := uc.Create(bCtx.Background(), sellerAddr, &auction.CreateParams{
		ChainId:      1,
		Collection:   collection,
		TokenId:      "42",
		PayToken:     wethAddr,
		ReservePrice: decimal.RequireFromString("1"),
		MinIncrement: decimal.RequireFromString("0.1"),
		Duration:     time.Hour,
	})
	req.NoError(err)
	req.Equal(domain.AuctionId(7), a.AuctionId)
	req.Equal(1, a.LogicVersion)
	req.Equal(auction.StateActive, a.State)
	req.Equal(frozenNow.Add(time.Hour), a.EndTime)
	req.True(a.EndTime.After(a.StartTime))
}

func TestCreateRejectsNonErc721Collection(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	m.accessUC.On("IsApproved", mock.Anything, domain.ChainId(1), collection).Return(true, nil)
	m.erc721.On("Supports721Interface", mock.Anything, domain.ChainId(1), collection).Return(false, nil)

	_, err := uc.Create(bCtx.Background(), sellerAddr, &auction.CreateParams{
		ChainId:      1,
		Collection:   collection,
		TokenId:      "42",
		PayToken:     wethAddr,
		ReservePrice: decimal.RequireFromString("1"),
		Duration:     time.Hour,
	})
	req.ErrorIs(err, domain.ErrBadParamInput)
	m.auctionRepo.AssertNotCalled(t, "NextId", mock.Anything)
	m.auctionRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPlaceBidFirstBidMustMeetReserve(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.normalizer.On("Normalize", mock.Anything, domain.ChainId(1), mock.Anything, wethAddr, wethAddr).
		Return(decimal.RequireFromString("0.5"), nil)

	_, err := uc.PlaceBid(bCtx.Background(), bidderAddr, 1, wethAddr, decimal.RequireFromString("0.5"))
	req.ErrorIs(err, domain.ErrBidTooLow)
	m.auctionRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
	m.erc20.AssertNotCalled(t, "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceBidBelowIncrementRejected(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.HighestBid = &auction.Bid{
		Bidder:     bidderAddr,
		PayToken:   wethAddr,
		Amount:     "2",
		RawAmount:  "2000000000000000000",
		Normalized: "2",
		BidTime:    frozenNow.Add(-time.Minute),
	}
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	// 2.05 beats 2 but not 2 + 0.1
	m.normalizer.On("Normalize", mock.Anything, domain.ChainId(1), mock.Anything, wethAddr, wethAddr).
		Return(decimal.RequireFromString("2.05"), nil)

	_, err := uc.PlaceBid(bCtx.Background(), bidder2Addr, 1, wethAddr, decimal.RequireFromString("2.05"))
	req.ErrorIs(err, domain.ErrBidTooLow)
	m.auctionRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceBidEscrowFailureLeavesStateUntouched(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.normalizer.On("Normalize", mock.Anything, domain.ChainId(1), mock.Anything, wethAddr, wethAddr).
		Return(decimal.RequireFromString("2"), nil)
	m.payToken.On("FindOne", mock.Anything, domain.ChainId(1), wethAddr).
		Return(&domain.PayToken{ChainId: 1, Address: wethAddr, TokenDecimals: 18}, nil)
	m.erc20.On("Allowance", mock.Anything, domain.ChainId(1), wethAddr, bidderAddr, custodyAddr).
		Return(big.NewInt(0).Mul(big.NewInt(10), big.NewInt(1e18)), nil)
	m.erc20.On("TransferFrom", mock.Anything, domain.ChainId(1), wethAddr, bidderAddr, custodyAddr, mock.Anything).
		Return(errors.New("transfer reverted"))

	_, err := uc.PlaceBid(bCtx.Background(), bidderAddr, 1, wethAddr, decimal.RequireFromString("2"))
	req.ErrorIs(err, domain.ErrTransferFailed)
	m.auctionRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
	m.eventRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPlaceBidInsufficientAllowanceRejected(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.normalizer.On("Normalize", mock.Anything, domain.ChainId(1), mock.Anything, wethAddr, wethAddr).
		Return(decimal.RequireFromString("2"), nil)
	m.payToken.On("FindOne", mock.Anything, domain.ChainId(1), wethAddr).
		Return(&domain.PayToken{ChainId: 1, Address: wethAddr, TokenDecimals: 18}, nil)
	m.erc20.On("Allowance", mock.Anything, domain.ChainId(1), wethAddr, bidderAddr, custodyAddr).
		Return(big.NewInt(1), nil)

	_, err := uc.PlaceBid(bCtx.Background(), bidderAddr, 1, wethAddr, decimal.RequireFromString("2"))
	req.ErrorIs(err, domain.ErrTransferFailed)
	m.erc20.AssertNotCalled(t, "TransferFrom",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.auctionRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceBidRefundsDisplacedBidder(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.HighestBid = &auction.Bid{
		Bidder:     bidderAddr,
		PayToken:   wethAddr,
		Amount:     "2",
		RawAmount:  "2000000000000000000",
		Normalized: "2",
		BidTime:    frozenNow.Add(-time.Minute),
	}
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.normalizer.On("Normalize", mock.Anything, domain.ChainId(1), mock.Anything, wethAddr, wethAddr).
		Return(decimal.RequireFromString("3"), nil)
	m.payToken.On("FindOne", mock.Anything, domain.ChainId(1), wethAddr).
		Return(&domain.PayToken{ChainId: 1, Address: wethAddr, TokenDecimals: 18}, nil)
	m.erc20.On("Allowance", mock.Anything, domain.ChainId(1), wethAddr, bidder2Addr, custodyAddr).
		Return(big.NewInt(0).Mul(big.NewInt(3), big.NewInt(1e18)), nil)
	m.erc20.On("TransferFrom", mock.Anything, domain.ChainId(1), wethAddr, bidder2Addr, custodyAddr,
		big.NewInt(0).Mul(big.NewInt(3), big.NewInt(1e18))).Return(nil)
	m.erc20.On("Transfer", mock.Anything, domain.ChainId(1), wethAddr, bidderAddr,
		big.NewInt(0).Mul(big.NewInt(2), big.NewInt(1e18))).Return(nil)
	m.auctionRepo.On("Patch", mock.Anything, domain.AuctionId(1), mock.MatchedBy(func(p *auction.PatchableAuction) bool {
		return p.HighestBid != nil && p.HighestBid.Bidder == bidder2Addr && p.HighestBid.Normalized == "3"
	})).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.PlaceBid(bCtx.Background(), bidder2Addr, 1, wethAddr, decimal.RequireFromString("3"))
	req.NoError(err)
	req.Equal(bidder2Addr, got.HighestBid.Bidder)
	m.erc20.AssertCalled(t, "Transfer", mock.Anything, domain.ChainId(1), wethAddr, bidderAddr,
		big.NewInt(0).Mul(big.NewInt(2), big.NewInt(1e18)))
}

func TestPlaceBidRefundFailureIsIsolated(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.HighestBid = &auction.Bid{
		Bidder:     bidderAddr,
		PayToken:   wethAddr,
		Amount:     "2",
		RawAmount:  "2000000000000000000",
		Normalized: "2",
		BidTime:    frozenNow.Add(-time.Minute),
	}
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.normalizer.On("Normalize", mock.Anything, domain.ChainId(1), mock.Anything, wethAddr, wethAddr).
		Return(decimal.RequireFromString("3"), nil)
	m.payToken.On("FindOne", mock.Anything, domain.ChainId(1), wethAddr).
		Return(&domain.PayToken{ChainId: 1, Address: wethAddr, TokenDecimals: 18}, nil)
	m.erc20.On("Allowance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(big.NewInt(0).Mul(big.NewInt(10), big.NewInt(1e18)), nil)
	m.erc20.On("TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.erc20.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("paused token"))
	m.refundRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.RefundEntry) bool {
		return e.Beneficiary == bidderAddr && e.RawAmount == "2000000000000000000" && !e.Claimed
	})).Return(nil)
	m.auctionRepo.On("Patch", mock.Anything, domain.AuctionId(1), mock.Anything).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.PlaceBid(bCtx.Background(), bidder2Addr, 1, wethAddr, decimal.RequireFromString("3"))
	req.NoError(err)
	req.Equal(bidder2Addr, got.HighestBid.Bidder)
	m.refundRepo.AssertCalled(t, "Insert", mock.Anything, mock.Anything)

	failedEvents := 0
	for _, call := range m.eventRepo.Calls {
		if ev, ok := call.Arguments.Get(1).(*event.Event); ok && ev.Type == event.TypeRefundFailed {
			failedEvents++
		}
	}
	req.Equal(1, failedEvents)
}

func TestPlaceBidStrictRefundsBlocks(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, true)

	a := activeAuction()
	a.HighestBid = &auction.Bid{
		Bidder:     bidderAddr,
		PayToken:   wethAddr,
		Amount:     "2",
		RawAmount:  "2000000000000000000",
		Normalized: "2",
		BidTime:    frozenNow.Add(-time.Minute),
	}
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.normalizer.On("Normalize", mock.Anything, domain.ChainId(1), mock.Anything, wethAddr, wethAddr).
		Return(decimal.RequireFromString("3"), nil)
	m.payToken.On("FindOne", mock.Anything, domain.ChainId(1), wethAddr).
		Return(&domain.PayToken{ChainId: 1, Address: wethAddr, TokenDecimals: 18}, nil)
	m.erc20.On("Allowance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(big.NewInt(0).Mul(big.NewInt(10), big.NewInt(1e18)), nil)
	m.erc20.On("TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.erc20.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("paused token"))

	_, err := uc.PlaceBid(bCtx.Background(), bidder2Addr, 1, wethAddr, decimal.RequireFromString("3"))
	req.ErrorIs(err, domain.ErrTransferFailed)
	m.auctionRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
	m.refundRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPlaceBidAntiSnipeExtension(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.EndTime = frozenNow.Add(10 * time.Minute)
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.normalizer.On("Normalize", mock.Anything, domain.ChainId(1), mock.Anything, wethAddr, wethAddr).
		Return(decimal.RequireFromString("2"), nil)
	m.payToken.On("FindOne", mock.Anything, domain.ChainId(1), wethAddr).
		Return(&domain.PayToken{ChainId: 1, Address: wethAddr, TokenDecimals: 18}, nil)
	m.erc20.On("Allowance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(big.NewInt(0).Mul(big.NewInt(10), big.NewInt(1e18)), nil)
	m.erc20.On("TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.auctionRepo.On("Patch", mock.Anything, domain.AuctionId(1), mock.MatchedBy(func(p *auction.PatchableAuction) bool {
		return p.EndTime != nil && p.EndTime.Equal(frozenNow.Add(15*time.Minute))
	})).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.PlaceBid(bCtx.Background(), bidderAddr, 1, wethAddr, decimal.RequireFromString("2"))
	req.NoError(err)
	// never shortens
	req.True(got.EndTime.After(a.StartTime))
	req.Equal(frozenNow.Add(15*time.Minute), got.EndTime)

	extendedEvents := 0
	for _, call := range m.eventRepo.Calls {
		if ev, ok := call.Arguments.Get(1).(*event.Event); ok && ev.Type == event.TypeAuctionExtended {
			extendedEvents++
		}
	}
	req.Equal(1, extendedEvents)
}

func TestPlaceBidOnExpiredAuction(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.EndTime = frozenNow.Add(-time.Minute)
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)

	_, err := uc.PlaceBid(bCtx.Background(), bidderAddr, 1, wethAddr, decimal.RequireFromString("2"))
	req.ErrorIs(err, domain.ErrAuctionExpired)
}

func TestPlaceBidOnSettledAuction(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.State = auction.StateSettled
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)

	_, err := uc.PlaceBid(bCtx.Background(), bidderAddr, 1, wethAddr, decimal.RequireFromString("2"))
	req.ErrorIs(err, domain.ErrAuctionNotActive)
}

func TestFinalizeTooEarly(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(activeAuction(), nil)

	_, err := uc.Finalize(bCtx.Background(), 1)
	req.ErrorIs(err, domain.ErrTooEarly)
}

func TestFinalizeTwice(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.State = auction.StateSettled
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)

	_, err := uc.Finalize(bCtx.Background(), 1)
	req.ErrorIs(err, domain.ErrAlreadySettled)
}

func TestFinalizeWithoutBids(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.EndTime = frozenNow.Add(-time.Minute)
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.auctionRepo.On("Patch", mock.Anything, domain.AuctionId(1), mock.MatchedBy(func(p *auction.PatchableAuction) bool {
		return p.State != nil && *p.State == auction.StateSettled
	})).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.Finalize(bCtx.Background(), 1)
	req.NoError(err)
	req.Equal(auction.StateSettled, got.State)
	// nothing entered custody, nothing to move
	m.erc721.AssertNotCalled(t, "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.erc20.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalizeSettlesWinner(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.EndTime = frozenNow.Add(-time.Minute)
	a.HighestBid = &auction.Bid{
		Bidder:     bidderAddr,
		PayToken:   wethAddr,
		Amount:     "2",
		RawAmount:  "2000000000000000000",
		Normalized: "2",
		BidTime:    frozenNow.Add(-time.Hour),
	}
	tokenId := big.NewInt(42)
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.erc721.On("OwnerOf", mock.Anything, domain.ChainId(1), collection, tokenId).Return(sellerAddr, nil)
	m.erc721.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), collection, sellerAddr, custodyAddr).Return(true, nil)
	m.erc721.On("TransferFrom", mock.Anything, domain.ChainId(1), collection, sellerAddr, bidderAddr, tokenId).Return(nil)
	m.erc20.On("Transfer", mock.Anything, domain.ChainId(1), wethAddr, sellerAddr,
		big.NewInt(0).Mul(big.NewInt(2), big.NewInt(1e18))).Return(nil)
	m.auctionRepo.On("Patch", mock.Anything, domain.AuctionId(1), mock.Anything).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.Finalize(bCtx.Background(), 1)
	req.NoError(err)
	req.Equal(auction.StateSettled, got.State)
	m.erc721.AssertCalled(t, "TransferFrom", mock.Anything, domain.ChainId(1), collection, sellerAddr, bidderAddr, tokenId)
}

func TestFinalizeSettlesAfterCollectionRevoked(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	// revocation blocks new auctions only, an existing one still settles
	m.accessUC.On("IsApproved", mock.Anything, domain.ChainId(1), collection).Return(false, nil)

	a := activeAuction()
	a.EndTime = frozenNow.Add(-time.Minute)
	a.HighestBid = &auction.Bid{
		Bidder:     bidderAddr,
		PayToken:   wethAddr,
		Amount:     "2",
		RawAmount:  "2000000000000000000",
		Normalized: "2",
		BidTime:    frozenNow.Add(-time.Hour),
	}
	tokenId := big.NewInt(42)
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.erc721.On("OwnerOf", mock.Anything, domain.ChainId(1), collection, tokenId).Return(sellerAddr, nil)
	m.erc721.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), collection, sellerAddr, custodyAddr).Return(true, nil)
	m.erc721.On("TransferFrom", mock.Anything, domain.ChainId(1), collection, sellerAddr, bidderAddr, tokenId).Return(nil)
	m.erc20.On("Transfer", mock.Anything, domain.ChainId(1), wethAddr, sellerAddr,
		big.NewInt(0).Mul(big.NewInt(2), big.NewInt(1e18))).Return(nil)
	m.auctionRepo.On("Patch", mock.Anything, domain.AuctionId(1), mock.Anything).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.Finalize(bCtx.Background(), 1)
	req.NoError(err)
	req.Equal(auction.StateSettled, got.State)
}

func TestFinalizeAbortsWhenCustodyNotApproved(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.EndTime = frozenNow.Add(-time.Minute)
	a.HighestBid = &auction.Bid{
		Bidder:     bidderAddr,
		PayToken:   wethAddr,
		Amount:     "2",
		RawAmount:  "2000000000000000000",
		Normalized: "2",
		BidTime:    frozenNow.Add(-time.Hour),
	}
	tokenId := big.NewInt(42)
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.erc721.On("OwnerOf", mock.Anything, domain.ChainId(1), collection, tokenId).Return(sellerAddr, nil)
	m.erc721.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), collection, sellerAddr, custodyAddr).Return(false, nil)
	m.erc721.On("GetApproved", mock.Anything, domain.ChainId(1), collection, tokenId).Return(domain.EmptyAddress, nil)

	_, err := uc.Finalize(bCtx.Background(), 1)
	req.ErrorIs(err, domain.ErrTransferFailed)
	m.auctionRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel(t *testing.T) {
	freezeTime(t)
	req := require.New(t)

	t.Run("seller cancels bidless auction", func(t *testing.T) {
		uc, m := newEngine(t, false)
		m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(activeAuction(), nil)
		m.auctionRepo.On("Patch", mock.Anything, domain.AuctionId(1), mock.MatchedBy(func(p *auction.PatchableAuction) bool {
			return p.State != nil && *p.State == auction.StateCancelled
		})).Return(nil)
		m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		req.NoError(uc.Cancel(bCtx.Background(), sellerAddr, 1))
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		uc, m := newEngine(t, false)
		m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(activeAuction(), nil)
		m.accessUC.On("IsAdministrator", mock.Anything, bidderAddr).Return(false, nil)

		req.ErrorIs(uc.Cancel(bCtx.Background(), bidderAddr, 1), domain.ErrUnauthorized)
	})

	t.Run("auction with bids cannot be cancelled", func(t *testing.T) {
		uc, m := newEngine(t, false)
		a := activeAuction()
		a.HighestBid = &auction.Bid{Bidder: bidderAddr, Normalized: "2"}
		m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)

		req.ErrorIs(uc.Cancel(bCtx.Background(), sellerAddr, 1), domain.ErrAuctionHasBids)
	})
}

func TestClaimRefunds(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	entries := []*auction.RefundEntry{
		{Id: "r1", AuctionId: 1, ChainId: 1, PayToken: wethAddr, Beneficiary: bidderAddr, Amount: "2", RawAmount: "2000000000000000000"},
		{Id: "r2", AuctionId: 2, ChainId: 1, PayToken: wethAddr, Beneficiary: bidderAddr, Amount: "1", RawAmount: "1000000000000000000"},
	}
	m.refundRepo.On("FindUnclaimed", mock.Anything, bidderAddr).Return(entries, nil)
	// first payout succeeds, second still fails
	m.erc20.On("Transfer", mock.Anything, domain.ChainId(1), wethAddr, bidderAddr,
		big.NewInt(0).Mul(big.NewInt(2), big.NewInt(1e18))).Return(nil)
	m.erc20.On("Transfer", mock.Anything, domain.ChainId(1), wethAddr, bidderAddr,
		big.NewInt(0).Mul(big.NewInt(1), big.NewInt(1e18))).Return(errors.New("paused token"))
	m.refundRepo.On("MarkClaimed", mock.Anything, "r1").Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	claimed, err := uc.ClaimRefunds(bCtx.Background(), bidderAddr)
	req.NoError(err)
	req.Equal(1, claimed)
	m.refundRepo.AssertNotCalled(t, "MarkClaimed", mock.Anything, "r2")
}

func TestUpgradePreservesAuctionFields(t *testing.T) {
	freezeTime(t)
	req := require.New(t)
	uc, m := newEngine(t, false)

	a := activeAuction()
	a.EndTime = frozenNow.Add(-time.Minute)
	a.HighestBid = &auction.Bid{
		Bidder:     bidderAddr,
		PayToken:   wethAddr,
		Amount:     "2",
		RawAmount:  "2000000000000000000",
		Normalized: "2",
		BidTime:    frozenNow.Add(-time.Hour),
	}
	before := *a

	// switch to v2 then settle: pre-existing fields must read identically
	m.accessUC.On("IsAdministrator", mock.Anything, sellerAddr).Return(true, nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	engine := uc.(*impl)
	req.NoError(engine.gate.AuthorizeUpgrade(bCtx.Background(), sellerAddr, 2))

	tokenId := big.NewInt(42)
	m.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId(1)).Return(a, nil)
	m.erc721.On("OwnerOf", mock.Anything, domain.ChainId(1), collection, tokenId).Return(sellerAddr, nil)
	m.erc721.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), collection, sellerAddr, custodyAddr).Return(true, nil)
	m.erc721.On("TransferFrom", mock.Anything, domain.ChainId(1), collection, sellerAddr, bidderAddr, tokenId).Return(nil)
	m.erc20.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.auctionRepo.On("Patch", mock.Anything, domain.AuctionId(1), mock.MatchedBy(func(p *auction.PatchableAuction) bool {
		return p.SettledValuation != nil && *p.SettledValuation == "2"
	})).Return(nil)

	got, err := uc.Finalize(bCtx.Background(), 1)
	req.NoError(err)
	req.Equal("2", got.SettledValuation)
	req.Equal(before.AuctionId, got.AuctionId)
	req.Equal(before.Seller, got.Seller)
	req.Equal(before.ReservePrice, got.ReservePrice)
	req.Equal(before.HighestBid.Bidder, got.HighestBid.Bidder)
	req.Equal(before.CreatedAt, got.CreatedAt)
}
