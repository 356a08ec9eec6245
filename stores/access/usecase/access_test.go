package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/access"
	"github.com/x-xyz/auctionhouse/domain/mocks"
)

var (
	adminAddr    = domain.Address("0xc37c41601bc88c91b6569c701f08d37fa0f565f0")
	strangerAddr = domain.Address("0x9a38dec0590abc8c883d72e52391090e948ddf12")
	collAddr     = domain.Address("0xef88c71f5be29c4b30bf89625bd9be8f263e940c")
)

func newAccessUC(repo *mocks.AccessRepo, payToken *mocks.PayTokenRepo, ev *mocks.EventRepo) access.Usecase {
	return NewAccess(&AccessUseCaseCfg{
		AccessRepo:   repo,
		PayTokenRepo: payToken,
		EventRepo:    ev,
	})
}

func TestSetAdministratorBootstrap(t *testing.T) {
	req := require.New(t)
	repo := &mocks.AccessRepo{}
	ev := &mocks.EventRepo{}

	repo.On("GetAdmin", mock.Anything).Return(nil, domain.ErrNotFound)
	repo.On("SetAdmin", mock.Anything, mock.MatchedBy(func(a *access.Admin) bool {
		return a.Address == adminAddr
	})).Return(nil)
	ev.On("Insert", mock.Anything, mock.Anything).Return(nil)

	uc := newAccessUC(repo, &mocks.PayTokenRepo{}, ev)
	req.NoError(uc.SetAdministrator(bCtx.Background(), strangerAddr, adminAddr))
	repo.AssertCalled(t, "SetAdmin", mock.Anything, mock.Anything)
}

func TestSetAdministratorRequiresCurrentAdmin(t *testing.T) {
	req := require.New(t)
	repo := &mocks.AccessRepo{}

	repo.On("GetAdmin", mock.Anything).Return(&access.Admin{Address: adminAddr}, nil)

	uc := newAccessUC(repo, &mocks.PayTokenRepo{}, &mocks.EventRepo{})
	err := uc.SetAdministrator(bCtx.Background(), strangerAddr, strangerAddr)
	req.ErrorIs(err, domain.ErrUnauthorized)
	repo.AssertNotCalled(t, "SetAdmin", mock.Anything, mock.Anything)
}

func TestApproveCollectionGating(t *testing.T) {
	req := require.New(t)
	repo := &mocks.AccessRepo{}
	ev := &mocks.EventRepo{}

	repo.On("GetAdmin", mock.Anything).Return(&access.Admin{Address: adminAddr}, nil)
	repo.On("UpsertCollection", mock.Anything, mock.MatchedBy(func(ac *access.ApprovedCollection) bool {
		return ac.Approved && ac.Address == collAddr && ac.ChainId == 1
	})).Return(nil)
	ev.On("Insert", mock.Anything, mock.Anything).Return(nil)

	uc := newAccessUC(repo, &mocks.PayTokenRepo{}, ev)

	req.ErrorIs(uc.ApproveCollection(bCtx.Background(), strangerAddr, 1, collAddr), domain.ErrUnauthorized)
	req.NoError(uc.ApproveCollection(bCtx.Background(), adminAddr, 1, collAddr))
}

func TestIsApproved(t *testing.T) {
	req := require.New(t)
	repo := &mocks.AccessRepo{}

	repo.On("FindCollection", mock.Anything, &access.CollectionId{ChainId: 1, Address: collAddr}).
		Return(&access.ApprovedCollection{ChainId: 1, Address: collAddr, Approved: true}, nil).Once()
	repo.On("FindCollection", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	uc := newAccessUC(repo, &mocks.PayTokenRepo{}, &mocks.EventRepo{})

	ok, err := uc.IsApproved(bCtx.Background(), 1, collAddr)
	req.NoError(err)
	req.True(ok)

	// unknown collection is simply not approved
	ok, err = uc.IsApproved(bCtx.Background(), 1, strangerAddr)
	req.NoError(err)
	req.False(ok)
}

func TestGetFeedMissing(t *testing.T) {
	req := require.New(t)
	repo := &mocks.AccessRepo{}

	repo.On("FindFeed", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	uc := newAccessUC(repo, &mocks.PayTokenRepo{}, &mocks.EventRepo{})
	_, err := uc.GetFeed(bCtx.Background(), 1, collAddr, strangerAddr)
	req.ErrorIs(err, domain.ErrFeedNotFound)
}
