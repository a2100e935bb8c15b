package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderForbidden    = errors.New("order belongs to another client")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidOrderItems = errors.New("invalid order items")
	ErrAddressRequired   = errors.New("address is required to form an order")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrModeratorRequired = errors.New("moderator access required")
	ErrUnauthenticated   = errors.New("authentication required")
)

// IOrderServiceUseCase is the server side of the order gateway: it owns the
// persisted order lifecycle.
//
//	draft --form--> formed --complete--> completed
//	                       --reject----> rejected
//	draft | formed --delete--> deleted
type IOrderServiceUseCase interface {
	ListOrders(ctx context.Context, p entities.Principal, filter entities.OrderFilter) ([]entities.RemoteOrder, error)
	GetOrder(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error)
	SaveOrder(ctx context.Context, p entities.Principal, id int64, patch entities.OrderPatch) (entities.RemoteOrder, error)
	FormOrder(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error)
	CompleteOrder(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error)
	RejectOrder(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error)
	DeleteOrder(ctx context.Context, p entities.Principal, id int64) error
}

type OrderServiceUseCase struct {
	repo interfaces.IOrderRepository
	now  func() time.Time
}

var _ IOrderServiceUseCase = (*OrderServiceUseCase)(nil)

func NewOrderServiceUseCase(repo interfaces.IOrderRepository) *OrderServiceUseCase {
	return &OrderServiceUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *OrderServiceUseCase) ListOrders(ctx context.Context, p entities.Principal, filter entities.OrderFilter) ([]entities.RemoteOrder, error) {
	if p.ClientID <= 0 {
		return nil, ErrUnauthenticated
	}

	var (
		orders []entities.RemoteOrder
		err    error
	)
	if p.IsModerator {
		orders, err = u.repo.ListAll(ctx)
	} else {
		orders, err = u.repo.ListByClientID(ctx, p.ClientID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.RemoteOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status == entities.OrderStatusDeleted {
			continue
		}
		// Moderators never see other people's drafts.
		if p.IsModerator && o.Status == entities.OrderStatusDraft {
			continue
		}
		if !matchesFilter(o, filter) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (u *OrderServiceUseCase) GetOrder(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error) {
	return u.load(ctx, p, id)
}

// SaveOrder creates a draft record for p when id is 0, otherwise patches the
// order. Items and services can only be replaced while the order is a draft.
func (u *OrderServiceUseCase) SaveOrder(ctx context.Context, p entities.Principal, id int64, patch entities.OrderPatch) (entities.RemoteOrder, error) {
	if p.ClientID <= 0 {
		return entities.RemoteOrder{}, ErrUnauthenticated
	}
	if id < 0 {
		return entities.RemoteOrder{}, ErrInvalidOrderID
	}

	var items []entities.OrderItem
	if patch.Items != nil {
		merged, err := mergeOrderItems(patch.Items)
		if err != nil {
			return entities.RemoteOrder{}, err
		}
		items = merged
	}

	if id == 0 {
		newID, err := u.repo.NextID(ctx)
		if err != nil {
			return entities.RemoteOrder{}, err
		}
		if items == nil {
			items = []entities.OrderItem{}
		}
		o := entities.RemoteOrder{
			ID:           newID,
			Status:       entities.OrderStatusDraft,
			Address:      strings.TrimSpace(patch.Address),
			TotalTraffic: entities.OrderTraffic(items),
			ClientID:     p.ClientID,
			ClientName:   p.Username,
			CreatedAt:    u.now(),
			Items:        items,
			Services:     mergeServices(patch.Services),
		}
		return u.repo.Put(ctx, o)
	}

	o, err := u.load(ctx, p, id)
	if err != nil {
		return entities.RemoteOrder{}, err
	}
	if a := strings.TrimSpace(patch.Address); a != "" {
		o.Address = a
	}
	if items != nil || patch.Services != nil {
		if o.Status != entities.OrderStatusDraft {
			return entities.RemoteOrder{}, ErrInvalidTransition
		}
		if items != nil {
			o.Items = items
			o.TotalTraffic = entities.OrderTraffic(items)
		}
		if patch.Services != nil {
			o.Services = mergeServices(patch.Services)
		}
	}
	return u.repo.Put(ctx, o)
}

func (u *OrderServiceUseCase) FormOrder(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error) {
	o, err := u.load(ctx, p, id)
	if err != nil {
		return entities.RemoteOrder{}, err
	}
	if o.Status != entities.OrderStatusDraft {
		return entities.RemoteOrder{}, ErrInvalidTransition
	}
	if strings.TrimSpace(o.Address) == "" {
		return entities.RemoteOrder{}, ErrAddressRequired
	}

	now := u.now()
	o.Status = entities.OrderStatusFormed
	o.FormedAt = &now
	return u.repo.Put(ctx, o)
}

// CompleteOrder closes a formed order and recomputes its traffic with the
// per-device-kind coefficients.
func (u *OrderServiceUseCase) CompleteOrder(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error) {
	return u.moderate(ctx, p, id, entities.OrderStatusCompleted)
}

func (u *OrderServiceUseCase) RejectOrder(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error) {
	return u.moderate(ctx, p, id, entities.OrderStatusRejected)
}

func (u *OrderServiceUseCase) moderate(ctx context.Context, p entities.Principal, id int64, status entities.OrderStatus) (entities.RemoteOrder, error) {
	if p.ClientID <= 0 {
		return entities.RemoteOrder{}, ErrUnauthenticated
	}
	if !p.IsModerator {
		return entities.RemoteOrder{}, ErrModeratorRequired
	}
	o, err := u.load(ctx, p, id)
	if err != nil {
		return entities.RemoteOrder{}, err
	}
	if o.Status != entities.OrderStatusFormed {
		return entities.RemoteOrder{}, ErrInvalidTransition
	}

	now := u.now()
	moderatorID := p.ClientID
	o.Status = status
	o.CompletedAt = &now
	o.ModeratorID = &moderatorID
	o.ModeratorName = p.Username
	if status == entities.OrderStatusCompleted {
		o.TotalTraffic = CompletedTraffic(o.Items)
	}
	return u.repo.Put(ctx, o)
}

// DeleteOrder soft-deletes a draft or formed order. Deleting an order that
// is already deleted succeeds without writing.
func (u *OrderServiceUseCase) DeleteOrder(ctx context.Context, p entities.Principal, id int64) error {
	o, err := u.loadAny(ctx, p, id)
	if err != nil {
		return err
	}
	switch o.Status {
	case entities.OrderStatusDeleted:
		return nil
	case entities.OrderStatusDraft, entities.OrderStatusFormed:
	default:
		return ErrInvalidTransition
	}
	o.Status = entities.OrderStatusDeleted
	_, err = u.repo.Put(ctx, o)
	return err
}

// load fetches a live order visible to p.
func (u *OrderServiceUseCase) load(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error) {
	o, err := u.loadAny(ctx, p, id)
	if err != nil {
		return entities.RemoteOrder{}, err
	}
	if o.Status == entities.OrderStatusDeleted {
		return entities.RemoteOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// loadAny is load including soft-deleted orders.
func (u *OrderServiceUseCase) loadAny(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error) {
	if p.ClientID <= 0 {
		return entities.RemoteOrder{}, ErrUnauthenticated
	}
	if id <= 0 {
		return entities.RemoteOrder{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RemoteOrder{}, err
	}
	if o.ID == 0 {
		return entities.RemoteOrder{}, ErrOrderNotFound
	}
	if !p.IsModerator && o.ClientID != p.ClientID {
		return entities.RemoteOrder{}, ErrOrderForbidden
	}
	return o, nil
}

var trafficCoefficients = []struct {
	marker string
	k      float64
}{
	{"Хаб", 1.3},
	{"Датчик", 0.7},
	{"Лампочка", 1.1},
	{"Розетка", 0.9},
	{"Выключатель", 0.8},
}

// CompletedTraffic weighs each item's rate×quantity by a coefficient chosen
// from the device name. Unknown kinds weigh 1.
func CompletedTraffic(items []entities.OrderItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		k := 1.0
		for _, c := range trafficCoefficients {
			if strings.Contains(it.DeviceName, c.marker) {
				k = c.k
				break
			}
		}
		base := decimal.NewFromFloat(it.DataPerHour).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(base.Mul(decimal.NewFromFloat(k)))
	}
	return total.InexactFloat64()
}

func mergeOrderItems(in []entities.OrderItem) ([]entities.OrderItem, error) {
	out := make([]entities.OrderItem, 0, len(in))
	index := make(map[int64]int, len(in))
	for _, it := range in {
		if it.DeviceID <= 0 || it.Quantity <= 0 || it.DataPerHour < 0 {
			return nil, ErrInvalidOrderItems
		}
		if i, ok := index[it.DeviceID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.DeviceID] = len(out)
		out = append(out, it)
	}
	return out, nil
}

func mergeServices(in []entities.ServiceLine) []entities.ServiceLine {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(in))
	out := make([]entities.ServiceLine, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		seen[s.ID] = struct{}{}
		out = append(out, s)
	}
	return out
}

func matchesFilter(o entities.RemoteOrder, f entities.OrderFilter) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.DateFrom == nil && f.DateTo == nil {
		return true
	}
	if o.FormedAt == nil {
		return false
	}
	if f.DateFrom != nil && o.FormedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && !o.FormedAt.Before(f.DateTo.AddDate(0, 0, 1)) {
		return false
	}
	return true
}
