package usecase

import (
	"context"
	"sync"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"
	"smartorders/pkg/logger"
)

// IDraftUseCase runs draft composer operations for a client, keeping the
// draft in a repository between calls.
type IDraftUseCase interface {
	Get(ctx context.Context, clientID int64) (*entities.DraftOrder, error)
	Start(ctx context.Context, clientID int64) (*entities.DraftOrder, error)
	Clear(ctx context.Context, clientID int64) error
	AddDevice(ctx context.Context, clientID, deviceID int64, quantity int) (*entities.DraftOrder, error)
	SetQuantity(ctx context.Context, clientID, deviceID int64, quantity int) (*entities.DraftOrder, error)
	RemoveDevice(ctx context.Context, clientID, deviceID int64) (*entities.DraftOrder, error)
	AddService(ctx context.Context, clientID int64, service entities.ServiceLine) (*entities.DraftOrder, error)
	RemoveService(ctx context.Context, clientID, serviceID int64) (*entities.DraftOrder, error)
	Submit(ctx context.Context, clientID int64, address string) (entities.RemoteOrder, error)
}

type DraftUseCase struct {
	drafts    interfaces.IDraftRepository
	devices   interfaces.IDeviceRepository
	syncs     *SynchronizerRegistry
	autoStart bool
	log       *logger.Logger

	locks sync.Map // client id -> *sync.Mutex
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

// NewDraftUseCase wires the draft flow. With autoStart a draft is opened on
// the first AddDevice; otherwise Start must be called first.
func NewDraftUseCase(drafts interfaces.IDraftRepository, devices interfaces.IDeviceRepository, syncs *SynchronizerRegistry, autoStart bool, log *logger.Logger) *DraftUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DraftUseCase{
		drafts:    drafts,
		devices:   devices,
		syncs:     syncs,
		autoStart: autoStart,
		log:       log.With("component", "DraftUseCase"),
	}
}

func (u *DraftUseCase) Get(ctx context.Context, clientID int64) (*entities.DraftOrder, error) {
	if clientID <= 0 {
		return nil, ErrInvalidClientID
	}
	return u.drafts.Get(ctx, clientID)
}

func (u *DraftUseCase) Start(ctx context.Context, clientID int64) (*entities.DraftOrder, error) {
	return u.withComposer(ctx, clientID, func(c *DraftComposer) error {
		return c.StartDraft(clientID)
	})
}

func (u *DraftUseCase) Clear(ctx context.Context, clientID int64) error {
	_, err := u.withComposer(ctx, clientID, func(c *DraftComposer) error {
		c.ClearDraft()
		return nil
	})
	return err
}

func (u *DraftUseCase) AddDevice(ctx context.Context, clientID, deviceID int64, quantity int) (*entities.DraftOrder, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if deviceID <= 0 {
		return nil, ErrInvalidDeviceID
	}
	device, err := u.devices.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if device.ID == 0 {
		return nil, ErrDeviceNotFound
	}
	if !device.IsActive {
		return nil, ErrDeviceInactive
	}

	return u.withComposer(ctx, clientID, func(c *DraftComposer) error {
		if !c.HasDraft() && u.autoStart {
			if err := c.StartDraft(clientID); err != nil {
				return err
			}
		}
		return c.AddDevice(device, quantity)
	})
}

func (u *DraftUseCase) SetQuantity(ctx context.Context, clientID, deviceID int64, quantity int) (*entities.DraftOrder, error) {
	return u.withComposer(ctx, clientID, func(c *DraftComposer) error {
		return c.SetQuantity(deviceID, quantity)
	})
}

func (u *DraftUseCase) RemoveDevice(ctx context.Context, clientID, deviceID int64) (*entities.DraftOrder, error) {
	return u.withComposer(ctx, clientID, func(c *DraftComposer) error {
		return c.RemoveDevice(deviceID)
	})
}

func (u *DraftUseCase) AddService(ctx context.Context, clientID int64, service entities.ServiceLine) (*entities.DraftOrder, error) {
	return u.withComposer(ctx, clientID, func(c *DraftComposer) error {
		if !c.HasDraft() && u.autoStart {
			if err := c.StartDraft(clientID); err != nil {
				return err
			}
		}
		return c.AddService(service)
	})
}

func (u *DraftUseCase) RemoveService(ctx context.Context, clientID, serviceID int64) (*entities.DraftOrder, error) {
	return u.withComposer(ctx, clientID, func(c *DraftComposer) error {
		return c.RemoveService(serviceID)
	})
}

// Submit hands the client's draft to its order synchronizer. The stored
// draft is removed only when the order was formed. Once formed, the order is
// returned even if removing the stored draft fails.
func (u *DraftUseCase) Submit(ctx context.Context, clientID int64, address string) (entities.RemoteOrder, error) {
	if clientID <= 0 {
		return entities.RemoteOrder{}, ErrInvalidClientID
	}
	mu := u.lockFor(clientID)
	mu.Lock()
	defer mu.Unlock()

	stored, err := u.drafts.Get(ctx, clientID)
	if err != nil {
		u.log.Error("[draft][usecase] load failed", "client_id", clientID, "err", err)
		return entities.RemoteOrder{}, err
	}
	c := NewDraftComposer()
	c.Restore(stored)

	formed, err := u.syncs.For(clientID).SubmitDraft(ctx, c, address)
	if err != nil {
		return entities.RemoteOrder{}, err
	}
	if stored != nil {
		if err := u.drafts.Delete(ctx, clientID); err != nil {
			u.log.Warn("[draft][usecase] formed order but stored draft was not removed",
				"client_id", clientID, "draft_id", stored.ID, "order_id", formed.ID, "err", err)
		}
	}
	return formed, nil
}

// withComposer loads the client's draft into a composer, runs fn and stores
// the result. When fn fails nothing is written.
func (u *DraftUseCase) withComposer(ctx context.Context, clientID int64, fn func(c *DraftComposer) error) (*entities.DraftOrder, error) {
	if clientID <= 0 {
		return nil, ErrInvalidClientID
	}
	mu := u.lockFor(clientID)
	mu.Lock()
	defer mu.Unlock()

	stored, err := u.drafts.Get(ctx, clientID)
	if err != nil {
		u.log.Error("[draft][usecase] load failed", "client_id", clientID, "err", err)
		return nil, err
	}
	c := NewDraftComposer()
	c.Restore(stored)

	if err := fn(c); err != nil {
		return nil, err
	}

	snap := c.Snapshot()
	if snap == nil {
		if stored != nil {
			if err := u.drafts.Delete(ctx, clientID); err != nil {
				u.log.Error("[draft][usecase] delete failed", "client_id", clientID, "err", err)
				return nil, err
			}
		}
		return nil, nil
	}
	if err := u.drafts.Save(ctx, snap); err != nil {
		u.log.Error("[draft][usecase] save failed", "client_id", clientID, "draft_id", snap.ID, "err", err)
		return nil, err
	}
	u.log.Debug("[draft][usecase] saved", "client_id", clientID, "draft_id", snap.ID, "items", len(snap.Items), "total", snap.Total)
	return snap, nil
}

func (u *DraftUseCase) lockFor(clientID int64) *sync.Mutex {
	v, _ := u.locks.LoadOrStore(clientID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
