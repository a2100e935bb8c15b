package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"smartorders/internal/adapter/http/handlers/mocks"
	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func orderServiceRouter(t *testing.T, p *entities.Principal) (*gin.Engine, *mocks.MockIOrderServiceUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderServiceUseCase(ctrl)
	h := NewOrderServiceHandler(uc)

	r := newTestRouter(p)
	g := r.Group("/v1/smart-orders")
	g.GET("", h.ListOrders)
	g.GET("/:id", h.GetOrder)
	g.PUT("/:id", h.SaveOrder)
	g.PUT("/:id/form", h.FormOrder)
	g.PUT("/:id/complete", h.CompleteOrder)
	g.PUT("/:id/reject", h.RejectOrder)
	g.DELETE("/:id", h.DeleteOrder)
	return r, uc
}

func TestOrderServiceHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filter is parsed", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &moderator)
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ListOrders(gomock.Any(), moderator, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Principal, f entities.OrderFilter) ([]entities.RemoteOrder, error) {
				if f.Status != entities.OrderStatusFormed || f.DateFrom == nil || !f.DateFrom.Equal(from) || f.DateTo != nil {
					t.Fatalf("unexpected filter %+v", f)
				}
				return []entities.RemoteOrder{{ID: 1, Status: entities.OrderStatusFormed}}, nil
			})
		w := serve(r, http.MethodGet, "/v1/smart-orders?status=formed&date_from=2025-03-01", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r, _ := orderServiceRouter(t, &moderator)
		if w := serve(r, http.MethodGet, "/v1/smart-orders?date_to=01.03.2025", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderServiceHandler_SaveOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("id zero creates", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &caller)
		uc.EXPECT().SaveOrder(gomock.Any(), caller, int64(0), gomock.Any()).Return(entities.RemoteOrder{ID: 11, Status: entities.OrderStatusDraft}, nil)
		w := serve(r, http.MethodPut, "/v1/smart-orders/0", `{"address":"a","items":[{"device_id":1,"quantity":2,"data_per_hour":0.5}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &caller)
		uc.EXPECT().SaveOrder(gomock.Any(), caller, int64(11), entities.OrderPatch{Address: "b"}).Return(entities.RemoteOrder{ID: 11}, nil)
		if w := serve(r, http.MethodPut, "/v1/smart-orders/11", `{"address":"b"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("items after forming", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &caller)
		uc.EXPECT().SaveOrder(gomock.Any(), caller, int64(11), gomock.Any()).Return(entities.RemoteOrder{}, usecase.ErrInvalidTransition)
		if w := serve(r, http.MethodPut, "/v1/smart-orders/11", `{"items":[]}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderServiceHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("form without address", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &caller)
		uc.EXPECT().FormOrder(gomock.Any(), caller, int64(3)).Return(entities.RemoteOrder{}, usecase.ErrAddressRequired)
		if w := serve(r, http.MethodPut, "/v1/smart-orders/3/form", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("complete needs moderator", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &caller)
		uc.EXPECT().CompleteOrder(gomock.Any(), caller, int64(3)).Return(entities.RemoteOrder{}, usecase.ErrModeratorRequired)
		if w := serve(r, http.MethodPut, "/v1/smart-orders/3/complete", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("reject", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &moderator)
		uc.EXPECT().RejectOrder(gomock.Any(), moderator, int64(3)).Return(entities.RemoteOrder{ID: 3, Status: entities.OrderStatusRejected}, nil)
		if w := serve(r, http.MethodPut, "/v1/smart-orders/3/reject", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &caller)
		uc.EXPECT().GetOrder(gomock.Any(), caller, int64(3)).Return(entities.RemoteOrder{}, usecase.ErrOrderNotFound)
		if w := serve(r, http.MethodGet, "/v1/smart-orders/3", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &caller)
		uc.EXPECT().DeleteOrder(gomock.Any(), caller, int64(3)).Return(nil)
		if w := serve(r, http.MethodDelete, "/v1/smart-orders/3", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		r, uc := orderServiceRouter(t, &caller)
		uc.EXPECT().DeleteOrder(gomock.Any(), caller, int64(3)).Return(errDynamo)
		if w := serve(r, http.MethodDelete, "/v1/smart-orders/3", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
