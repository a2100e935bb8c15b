package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"
	"smartorders/pkg/logger"
)

var (
	ErrRemoteRequestFailed = errors.New("remote request failed")
	ErrPartialSubmission   = errors.New("order persisted but not formed")
	ErrEmptyDraft          = errors.New("draft has no items")
	ErrInvalidAddress      = errors.New("invalid address")
)

// RequestKind identifies one of the four synchronizer request kinds.
type RequestKind string

const (
	RequestFetchAll RequestKind = "fetchAll"
	RequestCreate   RequestKind = "create"
	RequestUpdate   RequestKind = "update"
	RequestDelete   RequestKind = "delete"
)

var requestKinds = []RequestKind{RequestFetchAll, RequestCreate, RequestUpdate, RequestDelete}

type RequestStatus string

const (
	RequestIdle      RequestStatus = "idle"
	RequestPending   RequestStatus = "pending"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestRejected  RequestStatus = "rejected"
)

// RemoteError wraps any failure of the order gateway. errors.Is matches both
// ErrRemoteRequestFailed and the underlying cause.
type RemoteError struct {
	Op  RequestKind
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool { return target == ErrRemoteRequestFailed }

// PartialSubmissionError reports a submission whose order record was saved
// but could not be formed. OrderID is the saved record.
type PartialSubmissionError struct {
	OrderID int64
	Err     error
}

func (e *PartialSubmissionError) Error() string {
	return fmt.Sprintf("order %d persisted but not formed: %v", e.OrderID, e.Err)
}

func (e *PartialSubmissionError) Unwrap() error { return e.Err }

func (e *PartialSubmissionError) Is(target error) bool { return target == ErrPartialSubmission }

// OrdersState is a read-only copy of the synchronizer state. Version grows
// with every change so subscribers can drop out-of-order deliveries.
type OrdersState struct {
	Orders   []entities.RemoteOrder
	Loading  bool
	Error    string
	Requests map[RequestKind]RequestStatus
	Version  uint64
}

// OrderSynchronizer owns a client's list of remote orders and the status of
// the requests that change it.
//
// Requests of the same kind may overlap. Each one takes a sequence number and
// only the newest request of a kind writes the status and error fields; a
// superseded fetch result is dropped. Create/update/delete results are always
// folded into the list because the server has confirmed them.
// State is only mutated when a request resolves, never before the gateway
// call returns.
type OrderSynchronizer struct {
	gateway interfaces.IOrderGateway
	metrics interfaces.ISyncMetrics
	log     *logger.Logger

	mu       sync.Mutex
	orders   []entities.RemoteOrder
	errMsg   string
	requests map[RequestKind]RequestStatus
	seq      map[RequestKind]uint64
	version  uint64

	// set after a submission saved its record but failed to form it, so a
	// retry of the same draft patches that record instead of creating another
	unformedID      int64
	unformedDraftID string

	subs    map[int]func(OrdersState)
	nextSub int
}

func NewOrderSynchronizer(gateway interfaces.IOrderGateway, metrics interfaces.ISyncMetrics, log *logger.Logger) *OrderSynchronizer {
	if log == nil {
		log = logger.Nop()
	}
	s := &OrderSynchronizer{
		gateway:  gateway,
		metrics:  metrics,
		log:      log.With("component", "OrderSynchronizer"),
		requests: make(map[RequestKind]RequestStatus, len(requestKinds)),
		seq:      make(map[RequestKind]uint64, len(requestKinds)),
		subs:     map[int]func(OrdersState){},
	}
	for _, k := range requestKinds {
		s.requests[k] = RequestIdle
	}
	return s
}

// State returns a copy of the current state.
func (s *OrderSynchronizer) State() OrdersState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive the state after every change. The
// returned func removes the subscription.
func (s *OrderSynchronizer) Subscribe(fn func(OrdersState)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// FetchOrders replaces the local list with the server list. On failure the
// previous list is kept and only the error is recorded.
func (s *OrderSynchronizer) FetchOrders(ctx context.Context) error {
	seq := s.begin(RequestFetchAll)
	s.log.Debug("[orders][sync] fetch start", "seq", seq)

	orders, err := s.gateway.ListOrders(ctx)
	if err != nil {
		rerr := &RemoteError{Op: RequestFetchAll, Err: err}
		s.log.Warn("[orders][sync] fetch failed", "seq", seq, "err", err)
		s.finish(RequestFetchAll, seq, rerr, nil)
		return rerr
	}

	s.finish(RequestFetchAll, seq, nil, func() {
		s.orders = cloneOrders(orders)
	})
	s.log.Debug("[orders][sync] fetch done", "seq", seq, "count", len(orders))
	return nil
}

// SubmitDraft saves the draft with address as an order record and then forms
// it. On success the formed order is appended and the draft is cleared.
//
// If the record was saved but forming failed, a *PartialSubmissionError is
// returned and the draft is kept. Nothing is rolled back on the server.
func (s *OrderSynchronizer) SubmitDraft(ctx context.Context, draft DraftHolder, address string) (entities.RemoteOrder, error) {
	snap := draft.Snapshot()
	if snap == nil {
		return entities.RemoteOrder{}, ErrNoActiveDraft
	}
	if len(snap.Items) == 0 {
		return entities.RemoteOrder{}, ErrEmptyDraft
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return entities.RemoteOrder{}, ErrInvalidAddress
	}

	seq := s.begin(RequestCreate)

	s.mu.Lock()
	id := int64(0)
	if s.unformedDraftID == snap.ID {
		id = s.unformedID
	}
	s.mu.Unlock()

	s.log.Info("[orders][sync] submit start", "seq", seq, "draft_id", snap.ID, "order_id", id, "items", len(snap.Items))
	saved, err := s.gateway.SaveOrder(ctx, id, entities.OrderPatch{
		Address:  address,
		Items:    snap.OrderItems(),
		Services: snap.Services,
	})
	if err != nil {
		rerr := &RemoteError{Op: RequestCreate, Err: err}
		s.log.Warn("[orders][sync] submit save failed", "seq", seq, "draft_id", snap.ID, "err", err)
		s.finish(RequestCreate, seq, rerr, nil)
		return entities.RemoteOrder{}, rerr
	}

	formed, err := s.gateway.FormOrder(ctx, saved.ID)
	if err != nil {
		perr := &PartialSubmissionError{OrderID: saved.ID, Err: &RemoteError{Op: RequestCreate, Err: err}}
		s.log.Error("[orders][sync] submit form failed", "seq", seq, "order_id", saved.ID, "err", err)
		s.finish(RequestCreate, seq, perr, func() {
			s.unformedID = saved.ID
			s.unformedDraftID = snap.ID
		})
		return entities.RemoteOrder{}, perr
	}

	s.finish(RequestCreate, seq, nil, func() {
		s.orders = upsertOrder(s.orders, formed)
		if s.unformedDraftID == snap.ID {
			s.unformedID = 0
			s.unformedDraftID = ""
		}
	})
	draft.ClearDraft()
	s.log.Info("[orders][sync] submit done", "seq", seq, "order_id", formed.ID, "status", formed.Status)
	return formed, nil
}

// UpdateOrder patches a remote order and replaces the matching local entry.
func (s *OrderSynchronizer) UpdateOrder(ctx context.Context, id int64, patch entities.OrderPatch) (entities.RemoteOrder, error) {
	if id <= 0 {
		return entities.RemoteOrder{}, ErrInvalidOrderID
	}
	seq := s.begin(RequestUpdate)

	updated, err := s.gateway.SaveOrder(ctx, id, patch)
	if err != nil {
		rerr := &RemoteError{Op: RequestUpdate, Err: err}
		s.log.Warn("[orders][sync] update failed", "seq", seq, "order_id", id, "err", err)
		s.finish(RequestUpdate, seq, rerr, nil)
		return entities.RemoteOrder{}, rerr
	}

	s.finish(RequestUpdate, seq, nil, func() {
		for i := range s.orders {
			if s.orders[i].ID == updated.ID {
				s.orders[i] = cloneOrder(updated)
				break
			}
		}
	})
	return updated, nil
}

// DeleteOrder deletes a remote order and, once the server confirmed it,
// removes it from the local list. An id missing locally is not an error.
func (s *OrderSynchronizer) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}
	seq := s.begin(RequestDelete)

	if err := s.gateway.DeleteOrder(ctx, id); err != nil {
		rerr := &RemoteError{Op: RequestDelete, Err: err}
		s.log.Warn("[orders][sync] delete failed", "seq", seq, "order_id", id, "err", err)
		s.finish(RequestDelete, seq, rerr, nil)
		return rerr
	}

	s.finish(RequestDelete, seq, nil, func() {
		out := s.orders[:0]
		for _, o := range s.orders {
			if o.ID != id {
				out = append(out, o)
			}
		}
		s.orders = out
	})
	return nil
}

func (s *OrderSynchronizer) begin(kind RequestKind) uint64 {
	s.mu.Lock()
	s.seq[kind]++
	seq := s.seq[kind]
	s.requests[kind] = RequestPending
	s.errMsg = ""
	s.version++
	st, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, st)
	return seq
}

// finish resolves request seq of kind. apply runs under the lock; it is
// skipped for a superseded fetch.
func (s *OrderSynchronizer) finish(kind RequestKind, seq uint64, err error, apply func()) {
	s.mu.Lock()
	latest := s.seq[kind] == seq
	if apply != nil && (latest || kind != RequestFetchAll) {
		apply()
	}

	outcome := "stale"
	if latest {
		if err != nil {
			s.requests[kind] = RequestRejected
			s.errMsg = err.Error()
			outcome = "rejected"
		} else {
			s.requests[kind] = RequestFulfilled
			outcome = "fulfilled"
		}
	}
	s.version++
	st, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ObserveRequest(string(kind), outcome)
	}
	notify(subs, st)
}

// busy reports whether a request is in flight or someone is subscribed.
func (s *OrderSynchronizer) busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.subs) > 0 {
		return true
	}
	for _, v := range s.requests {
		if v == RequestPending {
			return true
		}
	}
	return false
}

func (s *OrderSynchronizer) snapshotLocked() OrdersState {
	st := OrdersState{
		Orders:   cloneOrders(s.orders),
		Error:    s.errMsg,
		Requests: make(map[RequestKind]RequestStatus, len(s.requests)),
		Version:  s.version,
	}
	for k, v := range s.requests {
		st.Requests[k] = v
		if v == RequestPending {
			st.Loading = true
		}
	}
	return st
}

func (s *OrderSynchronizer) subscribersLocked() []func(OrdersState) {
	out := make([]func(OrdersState), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(OrdersState), st OrdersState) {
	for _, fn := range subs {
		fn(st)
	}
}

func upsertOrder(orders []entities.RemoteOrder, o entities.RemoteOrder) []entities.RemoteOrder {
	for i := range orders {
		if orders[i].ID == o.ID {
			orders[i] = cloneOrder(o)
			return orders
		}
	}
	return append(orders, cloneOrder(o))
}

func cloneOrders(in []entities.RemoteOrder) []entities.RemoteOrder {
	out := make([]entities.RemoteOrder, 0, len(in))
	for _, o := range in {
		out = append(out, cloneOrder(o))
	}
	return out
}

func cloneOrder(o entities.RemoteOrder) entities.RemoteOrder {
	o.Items = append([]entities.OrderItem(nil), o.Items...)
	if o.Services != nil {
		o.Services = append([]entities.ServiceLine(nil), o.Services...)
	}
	return o
}

const defaultSyncIdleTTL = 30 * time.Minute

// SynchronizerRegistry hands out one OrderSynchronizer per client.
//
// A synchronizer unused for the idle TTL is dropped on a later sweep unless
// it has a pending request or a subscriber, so the map is bounded by the
// clients active within one TTL. An evicted client starts over with an empty
// list and refetches.
type SynchronizerRegistry struct {
	gateway interfaces.IOrderGateway
	metrics interfaces.ISyncMetrics
	log     *logger.Logger
	idleTTL time.Duration
	now     func() time.Time

	mu        sync.Mutex
	byClient  map[int64]*registryEntry
	lastSweep time.Time
}

type registryEntry struct {
	sync     *OrderSynchronizer
	lastUsed time.Time
}

func NewSynchronizerRegistry(gateway interfaces.IOrderGateway, metrics interfaces.ISyncMetrics, log *logger.Logger) *SynchronizerRegistry {
	return &SynchronizerRegistry{
		gateway:  gateway,
		metrics:  metrics,
		log:      log,
		idleTTL:  defaultSyncIdleTTL,
		now:      time.Now,
		byClient: map[int64]*registryEntry{},
	}
}

// SetIdleTTL changes how long an unused synchronizer is kept. Zero or less
// disables eviction.
func (r *SynchronizerRegistry) SetIdleTTL(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idleTTL = d
}

func (r *SynchronizerRegistry) For(clientID int64) *OrderSynchronizer {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.idleTTL > 0 && now.Sub(r.lastSweep) >= r.idleTTL {
		r.evictIdleLocked(now)
		r.lastSweep = now
	}

	e, ok := r.byClient[clientID]
	if !ok {
		l := r.log
		if l != nil {
			l = l.With("client_id", clientID)
		}
		e = &registryEntry{sync: NewOrderSynchronizer(r.gateway, r.metrics, l)}
		r.byClient[clientID] = e
	}
	e.lastUsed = now
	return e.sync
}

// Len reports how many clients currently hold a synchronizer.
func (r *SynchronizerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byClient)
}

func (r *SynchronizerRegistry) evictIdleLocked(now time.Time) {
	evicted := 0
	for id, e := range r.byClient {
		if now.Sub(e.lastUsed) < r.idleTTL || e.sync.busy() {
			continue
		}
		delete(r.byClient, id)
		evicted++
	}
	if evicted > 0 && r.log != nil {
		r.log.Debug("[orders][sync] evicted idle synchronizers", "count", evicted, "remaining", len(r.byClient))
	}
}

// IOrderSyncUseCase exposes each client's order synchronizer.
type IOrderSyncUseCase interface {
	State(clientID int64) OrdersState
	Refresh(ctx context.Context, clientID int64) (OrdersState, error)
	Update(ctx context.Context, clientID, id int64, patch entities.OrderPatch) (entities.RemoteOrder, error)
	Delete(ctx context.Context, clientID, id int64) error
}

var _ IOrderSyncUseCase = (*SynchronizerRegistry)(nil)

func (r *SynchronizerRegistry) State(clientID int64) OrdersState {
	return r.For(clientID).State()
}

// Refresh fetches the client's orders. The returned state is valid even when
// the fetch failed.
func (r *SynchronizerRegistry) Refresh(ctx context.Context, clientID int64) (OrdersState, error) {
	s := r.For(clientID)
	err := s.FetchOrders(ctx)
	return s.State(), err
}

func (r *SynchronizerRegistry) Update(ctx context.Context, clientID, id int64, patch entities.OrderPatch) (entities.RemoteOrder, error) {
	return r.For(clientID).UpdateOrder(ctx, id, patch)
}

func (r *SynchronizerRegistry) Delete(ctx context.Context, clientID, id int64) error {
	return r.For(clientID).DeleteOrder(ctx, id)
}
