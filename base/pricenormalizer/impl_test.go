package pricenormalizer

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/access"
	"github.com/x-xyz/auctionhouse/domain/mocks"
)

func TestNormalize(t *testing.T) {
	chainId := domain.ChainId(1)
	wbtc := domain.Address("0x2260fac5e5542a773aa44fbcfedf7c193bc2c599")
	weth := domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	feedAddr := domain.Address("0xdeb288f737066589598e9214e782fa5a8ed689e8")

	tests := []struct {
		name      string
		amount    string
		feed      *access.PriceFeed
		feedErr   error
		answer    *big.Int
		answerErr error
		want      string
		wantErr   error
	}{
		{
			name:   "cross-token conversion",
			amount: "1.5",
			feed: &access.PriceFeed{
				ChainId:     chainId,
				Base:        wbtc,
				Quote:       weth,
				FeedAddress: feedAddr,
				Decimals:    8,
			},
			// 14.12345678 wETH per wBTC
			answer: big.NewInt(1412345678),
			want:   "21.18518517",
		},
		{
			name:   "result floors to feed decimals",
			amount: "1.333",
			feed: &access.PriceFeed{
				ChainId:     chainId,
				Base:        wbtc,
				Quote:       weth,
				FeedAddress: feedAddr,
				Decimals:    8,
			},
			// exact product is 18.82656788774, the trailing 774 is dropped
			answer: big.NewInt(1412345678),
			want:   "18.82656788",
		},
		{
			name:    "missing feed",
			amount:  "1",
			feedErr: domain.ErrFeedNotFound,
			wantErr: domain.ErrFeedNotFound,
		},
		{
			name:   "oracle read failure",
			amount: "1",
			feed: &access.PriceFeed{
				ChainId:     chainId,
				Base:        wbtc,
				Quote:       weth,
				FeedAddress: feedAddr,
				Decimals:    8,
			},
			answerErr: errors.New("rpc timeout"),
			wantErr:   domain.ErrOracleUnavailable,
		},
		{
			name:   "non-positive answer",
			amount: "1",
			feed: &access.PriceFeed{
				ChainId:     chainId,
				Base:        wbtc,
				Quote:       weth,
				FeedAddress: feedAddr,
				Decimals:    8,
			},
			answer:  big.NewInt(0),
			wantErr: domain.ErrOracleUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			accessUC := &mocks.AccessUsecase{}
			oracle := &mocks.PricefeedService{}
			accessUC.On("GetFeed", mock.Anything, chainId, wbtc, weth).Return(tt.feed, tt.feedErr)
			if tt.feedErr == nil {
				oracle.On("LatestAnswer", mock.Anything, chainId, feedAddr).Return(tt.answer, tt.answerErr)
			}

			n := NewNormalizer(&NormalizerCfg{Access: accessUC, Oracle: oracle})
			got, err := n.Normalize(bCtx.Background(), chainId, decimal.RequireFromString(tt.amount), wbtc, weth)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got.String())
		})
	}
}

func TestNormalizeIdentity(t *testing.T) {
	req := require.New(t)
	weth := domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")

	// no feed lookup, no oracle read
	n := NewNormalizer(&NormalizerCfg{Access: &mocks.AccessUsecase{}, Oracle: &mocks.PricefeedService{}})
	amount := decimal.RequireFromString("0.123456789012345678")
	got, err := n.Normalize(bCtx.Background(), 1, amount, weth, weth)
	req.NoError(err)
	req.True(amount.Equal(got))
}
