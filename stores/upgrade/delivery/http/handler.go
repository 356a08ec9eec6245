package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/upgrade"
)

type handler struct {
	gate upgrade.Gate
}

func New(e *echo.Echo, gate upgrade.Gate) {
	h := &handler{gate}

	e.GET("/version", h.version)
	e.POST("/upgrade", h.authorize)
}

func (h *handler) version(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{
		"version": h.gate.Version(),
	})
}

func (h *handler) authorize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Caller  domain.Address `json:"caller" validate:"required"`
		Version int            `json:"version" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.gate.AuthorizeUpgrade(ctx, p.Caller, p.Version); err != nil {
		switch err {
		case domain.ErrUnauthorized:
			return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
		case domain.ErrUnknownLogicVersion, domain.ErrIncompatibleLayout:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		default:
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{
		"version": h.gate.Version(),
	})
}
