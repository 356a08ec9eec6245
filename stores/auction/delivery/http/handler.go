package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/event"
	"github.com/x-xyz/auctionhouse/middleware"
)

type handler struct {
	auction auction.Usecase
	event   event.Repo
	metrics metrics.Service
}

func New(e *echo.Echo, auctionUC auction.Usecase, eventRepo event.Repo) {
	h := &handler{
		auction: auctionUC,
		event:   eventRepo,
		metrics: metrics.New("auction"),
	}

	e.POST("/auctions", h.create)
	e.GET("/auctions", h.list)
	e.GET("/auction/:id", h.get)
	e.GET("/auction/:id/events", h.events)
	e.POST("/auction/:id/bid", h.placeBid)
	e.POST("/auction/:id/finalize", h.finalize)
	e.POST("/auction/:id/cancel", h.cancel)

	e.GET("/refunds/:address", h.listRefunds, middleware.IsValidAddress("address"))
	e.POST("/refunds/claim/:address", h.claimRefunds, middleware.IsValidAddress("address"))
}

func statusOf(err error) int {
	switch err {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrBadParamInput,
		domain.ErrCollectionNotApproved,
		domain.ErrInvalidDuration,
		domain.ErrAuctionNotActive,
		domain.ErrAuctionExpired,
		domain.ErrAuctionHasBids,
		domain.ErrBidTooLow,
		domain.ErrFeedNotFound,
		domain.ErrUnknownPayToken,
		domain.ErrTooEarly,
		domain.ErrAlreadySettled:
		return http.StatusBadRequest
	case domain.ErrTransferFailed, domain.ErrOracleUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Seller          domain.Address `json:"seller" validate:"required"`
		ChainId         domain.ChainId `json:"chainId" validate:"required"`
		Collection      domain.Address `json:"collection" validate:"required"`
		TokenId         domain.TokenId `json:"tokenId" validate:"required"`
		PayToken        domain.Address `json:"payToken" validate:"required"`
		ReservePrice    string         `json:"reservePrice" validate:"required"`
		MinIncrement    string         `json:"minIncrement"`
		DurationSeconds int64          `json:"durationSeconds" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	reserve, err := decimal.NewFromString(p.ReservePrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	increment := decimal.Zero
	if p.MinIncrement != "" {
		if increment, err = decimal.NewFromString(p.MinIncrement); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
	}

	defer h.metrics.BumpTime("create.time").End()

	res, err := h.auction.Create(ctx, p.Seller, &auction.CreateParams{
		ChainId:      p.ChainId,
		Collection:   p.Collection,
		TokenId:      p.TokenId,
		PayToken:     p.PayToken,
		ReservePrice: reserve,
		MinIncrement: increment,
		Duration:     time.Duration(p.DurationSeconds) * time.Second,
	})
	if err != nil {
		h.metrics.BumpSum("create.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId    *domain.ChainId `query:"chainId"`
		Collection *domain.Address `query:"collection"`
		Seller     *domain.Address `query:"seller"`
		State      *auction.State  `query:"state"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auction.FindAllOptions{}
	if p.ChainId != nil {
		opts = append(opts, auction.WithChainId(*p.ChainId))
	}
	if p.Collection != nil {
		opts = append(opts, auction.WithCollection(*p.Collection))
	}
	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}
	if p.State != nil {
		opts = append(opts, auction.WithState(*p.State))
	}
	if p.Limit > 0 {
		opts = append(opts, auction.WithPagination(p.Offset, p.Limit))
	}

	if res, err := h.auction.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Id domain.AuctionId `param:"id" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.Get(ctx, p.Id); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) events(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Id domain.AuctionId `param:"id" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.event.FindByAuction(ctx, p.Id); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Id       domain.AuctionId `param:"id" validate:"required"`
		Bidder   domain.Address   `json:"bidder" validate:"required"`
		PayToken domain.Address   `json:"payToken" validate:"required"`
		Amount   string           `json:"amount" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil || !amount.IsPositive() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	defer h.metrics.BumpTime("placebid.time").End()

	res, err := h.auction.PlaceBid(ctx, p.Bidder, p.Id, p.PayToken, amount)
	if err != nil {
		h.metrics.BumpSum("placebid.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) finalize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Id domain.AuctionId `param:"id" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	defer h.metrics.BumpTime("finalize.time").End()

	res, err := h.auction.Finalize(ctx, p.Id)
	if err != nil {
		h.metrics.BumpSum("finalize.err", 1)
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Id     domain.AuctionId `param:"id" validate:"required"`
		Caller domain.Address   `json:"caller" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.Cancel(ctx, p.Caller, p.Id); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) listRefunds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `param:"address" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.ListRefunds(ctx, p.Address); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) claimRefunds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `param:"address" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	claimed, err := h.auction.ClaimRefunds(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{"claimed": claimed})
}
