package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/access"
)

type handler struct {
	access access.Usecase
}

// New registers the administrator endpoints. Caller identity comes from the
// request payload, the usecase decides whether it is privileged.
func New(e *echo.Echo, access access.Usecase) {
	h := &handler{access}

	e.GET("/admin", h.getAdmin)
	e.POST("/admin", h.setAdmin)

	e.POST("/collection/:chainId/:address/approve", h.approveCollection)
	e.POST("/collection/:chainId/:address/revoke", h.revokeCollection)

	e.POST("/pricefeed", h.registerPriceFeed)
	e.POST("/paytoken", h.registerPayToken)
}

func statusOf(err error) int {
	switch err {
	case domain.ErrUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) getAdmin(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.access.GetAdministrator(ctx); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) setAdmin(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Caller   domain.Address `json:"caller" validate:"required"`
		NewAdmin domain.Address `json:"newAdmin" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.access.SetAdministrator(ctx, p.Caller, p.NewAdmin); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) approveCollection(c echo.Context) error {
	return h.setCollectionApproval(c, true)
}

func (h *handler) revokeCollection(c echo.Context) error {
	return h.setCollectionApproval(c, false)
}

func (h *handler) setCollectionApproval(c echo.Context, approved bool) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
		Address domain.Address `param:"address" validate:"required"`
		Caller  domain.Address `json:"caller" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var err error
	if approved {
		err = h.access.ApproveCollection(ctx, p.Caller, p.ChainId, p.Address)
	} else {
		err = h.access.RevokeCollection(ctx, p.Caller, p.ChainId, p.Address)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) registerPriceFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Caller      domain.Address `json:"caller" validate:"required"`
		ChainId     domain.ChainId `json:"chainId" validate:"required"`
		Base        domain.Address `json:"base" validate:"required"`
		Quote       domain.Address `json:"quote" validate:"required"`
		FeedAddress domain.Address `json:"feedAddress" validate:"required"`
		Decimals    int32          `json:"decimals" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	feed := &access.PriceFeed{
		ChainId:     p.ChainId,
		Base:        p.Base,
		Quote:       p.Quote,
		FeedAddress: p.FeedAddress,
		Decimals:    p.Decimals,
	}
	if err := h.access.RegisterPriceFeed(ctx, p.Caller, feed); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) registerPayToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Caller        domain.Address `json:"caller" validate:"required"`
		ChainId       domain.ChainId `json:"chainId" validate:"required"`
		Address       domain.Address `json:"address" validate:"required"`
		Name          string         `json:"name"`
		Symbol        string         `json:"symbol" validate:"required"`
		TokenDecimals int32          `json:"tokenDecimals" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	payToken := &domain.PayToken{
		Name:          p.Name,
		Symbol:        p.Symbol,
		TokenDecimals: p.TokenDecimals,
		ChainId:       p.ChainId,
		Address:       p.Address,
	}
	if err := h.access.RegisterPayToken(ctx, p.Caller, payToken); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
