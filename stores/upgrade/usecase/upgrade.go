package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/access"
	"github.com/x-xyz/auctionhouse/domain/event"
	"github.com/x-xyz/auctionhouse/domain/upgrade"
)

var timeNow = time.Now

type GateCfg struct {
	Access access.Usecase
	Event  event.Repo
}

type impl struct {
	accessUC access.Usecase
	event    event.Repo

	mu     sync.RWMutex
	logics map[int]upgrade.Logic
	active upgrade.Logic
}

// NewGate builds an empty gate. The first registered logic becomes active.
func NewGate(cfg *GateCfg) upgrade.Gate {
	return &impl{
		accessUC: cfg.Access,
		event:    cfg.Event,
		logics:   map[int]upgrade.Logic{},
	}
}

func (im *impl) Register(logic upgrade.Logic) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if _, ok := im.logics[logic.Version()]; ok {
		return domain.ErrConflict
	}
	im.logics[logic.Version()] = logic
	if im.active == nil {
		im.active = logic
	}
	return nil
}

func (im *impl) AuthorizeUpgrade(c ctx.Ctx, caller domain.Address, version int) error {
	ok, err := im.accessUC.IsAdministrator(c, caller)
	if err != nil {
		c.WithField("err", err).Error("accessUC.IsAdministrator failed")
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	next, registered := im.logics[version]
	if !registered {
		return domain.ErrUnknownLogicVersion
	}

	if err := checkLayout(im.active.StorageLayout(), next.StorageLayout()); err != nil {
		c.WithFields(log.Fields{
			"err":           err,
			"activeVersion": im.active.Version(),
			"nextVersion":   version,
		}).Error("storage layout check failed")
		return err
	}

	im.active = next

	ev := &event.Event{
		Id:   uuid.New().String(),
		Type: event.TypeUpgradeAuthorized,
		Payload: map[string]interface{}{
			"caller":  caller.ToLower(),
			"version": version,
		},
		CreatedAt: timeNow(),
	}
	if err := im.event.Insert(c, ev); err != nil {
		c.WithField("err", err).Error("event.Insert failed")
	}
	c.WithField("version", version).Info("logic upgrade authorized")
	return nil
}

func (im *impl) Active() upgrade.Logic {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.active
}

func (im *impl) Version() int {
	im.mu.RLock()
	defer im.mu.RUnlock()
	if im.active == nil {
		return 0
	}
	return im.active.Version()
}

// checkLayout enforces additive-only storage evolution: the next layout has
// to start with the active layout, field for field, in order.
func checkLayout(active, next []string) error {
	if len(next) < len(active) {
		return domain.ErrIncompatibleLayout
	}
	for i, field := range active {
		if next[i] != field {
			return domain.ErrIncompatibleLayout
		}
	}
	return nil
}
