package repository

import (
	"context"
	"testing"
	"time"

	"smartorders/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestDraftRedis(t *testing.T, ttl time.Duration) (*DraftRedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewDraftRedisRepository(rdb, ttl), mr
}

func TestDraftRedisRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing draft is nil", func(t *testing.T) {
		r, _ := newTestDraftRedis(t, time.Hour)
		got, err := r.Get(ctx, 42)
		if err != nil || got != nil {
			t.Fatalf("expected no draft, got %+v, %v", got, err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		r, mr := newTestDraftRedis(t, time.Hour)
		d := &entities.DraftOrder{
			ID:       "d1",
			ClientID: 42,
			Status:   entities.OrderStatusDraft,
			Items:    []entities.LineItem{{DeviceID: 1, DeviceName: "Хаб", Quantity: 2, DataPerHour: 0.5}},
			Services: []entities.ServiceLine{{ID: 3, Name: "Монтаж", Price: 100}},
		}
		if err := r.Save(ctx, d); err != nil {
			t.Fatalf("save: %v", err)
		}
		if !mr.Exists("draft:42") {
			t.Fatalf("expected key draft:42, have %v", mr.Keys())
		}

		got, err := r.Get(ctx, 42)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got == nil || got.ID != "d1" || got.Status != entities.OrderStatusDraft {
			t.Fatalf("unexpected draft: %+v", got)
		}
		if len(got.Items) != 1 || got.Items[0].Quantity != 2 || got.Items[0].DataPerHour != 0.5 {
			t.Fatalf("unexpected items: %+v", got.Items)
		}
		if len(got.Services) != 1 || got.Services[0].Price != 100 {
			t.Fatalf("unexpected services: %+v", got.Services)
		}
	})

	t.Run("save refreshes ttl", func(t *testing.T) {
		r, mr := newTestDraftRedis(t, time.Hour)
		d := &entities.DraftOrder{ID: "d1", ClientID: 7}
		if err := r.Save(ctx, d); err != nil {
			t.Fatalf("save: %v", err)
		}
		if ttl := mr.TTL("draft:7"); ttl != time.Hour {
			t.Fatalf("expected 1h ttl, got %v", ttl)
		}

		mr.FastForward(40 * time.Minute)
		if err := r.Save(ctx, d); err != nil {
			t.Fatalf("save: %v", err)
		}
		if ttl := mr.TTL("draft:7"); ttl != time.Hour {
			t.Fatalf("expected ttl reset to 1h, got %v", ttl)
		}
	})

	t.Run("expired draft is nil", func(t *testing.T) {
		r, mr := newTestDraftRedis(t, time.Minute)
		if err := r.Save(ctx, &entities.DraftOrder{ID: "d1", ClientID: 7}); err != nil {
			t.Fatalf("save: %v", err)
		}
		mr.FastForward(2 * time.Minute)

		got, err := r.Get(ctx, 7)
		if err != nil || got != nil {
			t.Fatalf("expected expired draft to be gone, got %+v, %v", got, err)
		}
	})

	t.Run("default ttl", func(t *testing.T) {
		r, mr := newTestDraftRedis(t, 0)
		if err := r.Save(ctx, &entities.DraftOrder{ID: "d1", ClientID: 7}); err != nil {
			t.Fatalf("save: %v", err)
		}
		if ttl := mr.TTL("draft:7"); ttl != defaultDraftTTL {
			t.Fatalf("expected default ttl, got %v", ttl)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, mr := newTestDraftRedis(t, time.Hour)
		if err := r.Save(ctx, &entities.DraftOrder{ID: "d1", ClientID: 42}); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := r.Delete(ctx, 42); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if mr.Exists("draft:42") {
			t.Fatalf("expected key removed")
		}
		if err := r.Delete(ctx, 42); err != nil {
			t.Fatalf("second delete: %v", err)
		}
	})

	t.Run("corrupt value", func(t *testing.T) {
		r, mr := newTestDraftRedis(t, time.Hour)
		if err := mr.Set("draft:42", "{not json"); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := r.Get(ctx, 42); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("server down", func(t *testing.T) {
		r, mr := newTestDraftRedis(t, time.Hour)
		mr.Close()
		if _, err := r.Get(ctx, 42); err == nil {
			t.Fatalf("expected connection error")
		}
	})
}
