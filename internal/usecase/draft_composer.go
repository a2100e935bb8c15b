package usecase

import (
	"errors"
	"time"

	"smartorders/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrInvalidState    = errors.New("invalid draft state")
	ErrNoActiveDraft   = errors.New("no active draft")
	ErrItemNotFound    = errors.New("item not found in draft")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrInvalidDevice   = errors.New("invalid device")
	ErrInvalidService  = errors.New("invalid service")
)

// DraftHolder is what the order synchronizer needs from a draft owner.
type DraftHolder interface {
	Snapshot() *entities.DraftOrder
	ClearDraft()
}

// DraftComposer holds zero or one draft order and keeps its totals derived
// from its lines.
//
// Lines are keyed by id so a device or service can never appear twice; the
// key slices keep insertion order for display. Every mutating method either
// fully applies or returns an error without touching state.
//
// A DraftComposer is not safe for concurrent use.
type DraftComposer struct {
	draft *draftState
	now   func() time.Time
	newID func() string
}

type draftState struct {
	id        string
	clientID  int64
	createdAt time.Time

	items     map[int64]entities.LineItem
	itemOrder []int64

	services     map[int64]entities.ServiceLine
	serviceOrder []int64

	traffic float64
	total   float64
}

var _ DraftHolder = (*DraftComposer)(nil)

func NewDraftComposer() *DraftComposer {
	return &DraftComposer{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// StartDraft opens an empty draft owned by clientID. A draft that already has
// lines must be cleared first; an existing empty draft is simply replaced.
func (c *DraftComposer) StartDraft(clientID int64) error {
	if clientID <= 0 {
		return ErrInvalidClientID
	}
	if c.draft != nil && (len(c.draft.items) > 0 || len(c.draft.services) > 0) {
		return ErrInvalidState
	}
	c.draft = &draftState{
		id:        c.newID(),
		clientID:  clientID,
		createdAt: c.now(),
		items:     map[int64]entities.LineItem{},
		services:  map[int64]entities.ServiceLine{},
	}
	return nil
}

// HasDraft reports whether a draft is active.
func (c *DraftComposer) HasDraft() bool {
	return c.draft != nil
}

// AddDevice merges quantity into the line for device.ID, or appends a new
// line snapshotting the device name and rate.
func (c *DraftComposer) AddDevice(device entities.Device, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if device.ID <= 0 {
		return ErrInvalidDevice
	}
	if c.draft == nil {
		return ErrNoActiveDraft
	}

	d := c.draft
	if it, ok := d.items[device.ID]; ok {
		it.Quantity += quantity
		d.items[device.ID] = it
	} else {
		d.items[device.ID] = entities.LineItem{
			DeviceID:    device.ID,
			DeviceName:  device.Name,
			Quantity:    quantity,
			DataPerHour: device.DataPerHour,
		}
		d.itemOrder = append(d.itemOrder, device.ID)
	}
	d.recalculate()
	return nil
}

// SetQuantity sets the quantity of an existing line. Non-positive quantities
// remove the line.
func (c *DraftComposer) SetQuantity(deviceID int64, quantity int) error {
	if c.draft == nil {
		return ErrNoActiveDraft
	}
	it, ok := c.draft.items[deviceID]
	if !ok {
		return ErrItemNotFound
	}
	if quantity <= 0 {
		c.draft.removeItem(deviceID)
	} else {
		it.Quantity = quantity
		c.draft.items[deviceID] = it
	}
	c.draft.recalculate()
	return nil
}

// RemoveDevice drops the line for deviceID. Removing an absent line is not an error.
func (c *DraftComposer) RemoveDevice(deviceID int64) error {
	if c.draft == nil {
		return ErrNoActiveDraft
	}
	c.draft.removeItem(deviceID)
	c.draft.recalculate()
	return nil
}

// AddService adds a service line. A service already present keeps its
// original name and price.
func (c *DraftComposer) AddService(service entities.ServiceLine) error {
	if service.ID <= 0 || service.Price < 0 {
		return ErrInvalidService
	}
	if c.draft == nil {
		return ErrNoActiveDraft
	}
	if _, ok := c.draft.services[service.ID]; !ok {
		c.draft.services[service.ID] = service
		c.draft.serviceOrder = append(c.draft.serviceOrder, service.ID)
	}
	c.draft.recalculate()
	return nil
}

func (c *DraftComposer) RemoveService(serviceID int64) error {
	if c.draft == nil {
		return ErrNoActiveDraft
	}
	if _, ok := c.draft.services[serviceID]; ok {
		delete(c.draft.services, serviceID)
		c.draft.serviceOrder = removeID(c.draft.serviceOrder, serviceID)
	}
	c.draft.recalculate()
	return nil
}

// ClearDraft discards the draft.
func (c *DraftComposer) ClearDraft() {
	c.draft = nil
}

// Snapshot returns a copy of the current draft, or nil when there is none.
func (c *DraftComposer) Snapshot() *entities.DraftOrder {
	if c.draft == nil {
		return nil
	}
	d := c.draft
	out := &entities.DraftOrder{
		ID:           d.id,
		Status:       entities.OrderStatusDraft,
		ClientID:     d.clientID,
		Items:        make([]entities.LineItem, 0, len(d.itemOrder)),
		Services:     make([]entities.ServiceLine, 0, len(d.serviceOrder)),
		TotalTraffic: d.traffic,
		Total:        d.total,
		CreatedAt:    d.createdAt,
	}
	for _, id := range d.itemOrder {
		out.Items = append(out.Items, d.items[id])
	}
	for _, id := range d.serviceOrder {
		out.Services = append(out.Services, d.services[id])
	}
	return out
}

// Restore replaces the composer state with a previously snapshotted draft.
// Duplicate lines are merged and totals are derived again rather than trusted.
// A nil draft clears the composer.
func (c *DraftComposer) Restore(draft *entities.DraftOrder) {
	if draft == nil {
		c.draft = nil
		return
	}
	d := &draftState{
		id:        draft.ID,
		clientID:  draft.ClientID,
		createdAt: draft.CreatedAt,
		items:     make(map[int64]entities.LineItem, len(draft.Items)),
		services:  make(map[int64]entities.ServiceLine, len(draft.Services)),
	}
	for _, it := range draft.Items {
		if it.Quantity <= 0 {
			continue
		}
		if cur, ok := d.items[it.DeviceID]; ok {
			cur.Quantity += it.Quantity
			d.items[it.DeviceID] = cur
			continue
		}
		d.items[it.DeviceID] = it
		d.itemOrder = append(d.itemOrder, it.DeviceID)
	}
	for _, s := range draft.Services {
		if _, ok := d.services[s.ID]; ok {
			continue
		}
		d.services[s.ID] = s
		d.serviceOrder = append(d.serviceOrder, s.ID)
	}
	d.recalculate()
	c.draft = d
}

func (d *draftState) removeItem(deviceID int64) {
	if _, ok := d.items[deviceID]; !ok {
		return
	}
	delete(d.items, deviceID)
	d.itemOrder = removeID(d.itemOrder, deviceID)
}

// recalculate derives both totals from the current lines. It is the only
// place totals are written.
func (d *draftState) recalculate() {
	items := make([]entities.LineItem, 0, len(d.itemOrder))
	for _, id := range d.itemOrder {
		items = append(items, d.items[id])
	}
	services := make([]entities.ServiceLine, 0, len(d.serviceOrder))
	for _, id := range d.serviceOrder {
		services = append(services, d.services[id])
	}
	d.traffic, d.total = entities.ComputeTotals(items, services)
}

func removeID(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
