package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"smartorders/internal/adapter/http/handlers/mocks"
	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func draftRouter(t *testing.T, p *entities.Principal) (*gin.Engine, *mocks.MockIDraftUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDraftUseCase(ctrl)
	h := NewDraftHandler(uc, nil)

	r := newTestRouter(p)
	r.GET("/v1/draft", h.GetDraft)
	r.POST("/v1/draft", h.StartDraft)
	r.DELETE("/v1/draft", h.ClearDraft)
	r.POST("/v1/draft/devices", h.AddDevice)
	r.PUT("/v1/draft/devices/:device_id", h.SetQuantity)
	r.DELETE("/v1/draft/devices/:device_id", h.RemoveDevice)
	r.POST("/v1/draft/services", h.AddService)
	r.DELETE("/v1/draft/services/:service_id", h.RemoveService)
	r.POST("/v1/draft/submit", h.SubmitDraft)
	return r, uc
}

func sampleDraft() *entities.DraftOrder {
	return &entities.DraftOrder{
		ID:       "d-1",
		Status:   entities.OrderStatusDraft,
		ClientID: 42,
		Items:    []entities.LineItem{{DeviceID: 1, DeviceName: "Хаб", Quantity: 2, DataPerHour: 0.5}},
		Total:    1,
	}
}

func TestDraftHandler_GetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unauthenticated", func(t *testing.T) {
		r, _ := draftRouter(t, nil)
		w := serve(r, http.MethodGet, "/v1/draft", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("no draft", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)
		w := serve(r, http.MethodGet, "/v1/draft", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("draft with counters", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().Get(gomock.Any(), int64(42)).Return(sampleDraft(), nil)
		w := serve(r, http.MethodGet, "/v1/draft", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ItemCount   int    `json:"item_count"`
			StatusLabel string `json:"status_label"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.ItemCount != 2 || body.StatusLabel != "Черновик" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestDraftHandler_StartAndClear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().Start(gomock.Any(), int64(42)).Return(&entities.DraftOrder{ID: "d-2", ClientID: 42, Status: entities.OrderStatusDraft}, nil)
		w := serve(r, http.MethodPost, "/v1/draft", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("start over a non-empty draft", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().Start(gomock.Any(), int64(42)).Return(nil, usecase.ErrInvalidState)
		w := serve(r, http.MethodPost, "/v1/draft", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().Clear(gomock.Any(), int64(42)).Return(nil)
		w := serve(r, http.MethodDelete, "/v1/draft", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestDraftHandler_AddDevice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := draftRouter(t, &caller)
		w := serve(r, http.MethodPost, "/v1/draft/devices", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().AddDevice(gomock.Any(), int64(42), int64(1), 1).Return(sampleDraft(), nil)
		w := serve(r, http.MethodPost, "/v1/draft/devices", `{"device_id":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("inactive device", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().AddDevice(gomock.Any(), int64(42), int64(3), 2).Return(nil, usecase.ErrDeviceInactive)
		w := serve(r, http.MethodPost, "/v1/draft/devices", `{"device_id":3,"quantity":2}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("no active draft", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().AddDevice(gomock.Any(), int64(42), int64(1), 1).Return(nil, usecase.ErrNoActiveDraft)
		w := serve(r, http.MethodPost, "/v1/draft/devices", `{"device_id":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDraftHandler_Lines(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("set quantity to zero", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().SetQuantity(gomock.Any(), int64(42), int64(1), 0).Return(&entities.DraftOrder{ID: "d-1", ClientID: 42}, nil)
		w := serve(r, http.MethodPut, "/v1/draft/devices/1", `{"quantity":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("set quantity without body value", func(t *testing.T) {
		r, _ := draftRouter(t, &caller)
		w := serve(r, http.MethodPut, "/v1/draft/devices/1", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad device id", func(t *testing.T) {
		r, _ := draftRouter(t, &caller)
		w := serve(r, http.MethodDelete, "/v1/draft/devices/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove missing device", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().RemoveDevice(gomock.Any(), int64(42), int64(9)).Return(nil, usecase.ErrItemNotFound)
		w := serve(r, http.MethodDelete, "/v1/draft/devices/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("add and remove service", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().AddService(gomock.Any(), int64(42), entities.ServiceLine{ID: 3, Name: "Монтаж", Price: 150}).Return(sampleDraft(), nil)
		uc.EXPECT().RemoveService(gomock.Any(), int64(42), int64(3)).Return(sampleDraft(), nil)

		if w := serve(r, http.MethodPost, "/v1/draft/services", `{"id":3,"name":" Монтаж ","price":150}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := serve(r, http.MethodDelete, "/v1/draft/services/3", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDraftHandler_SubmitDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing address", func(t *testing.T) {
		r, _ := draftRouter(t, &caller)
		w := serve(r, http.MethodPost, "/v1/draft/submit", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("formed", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().Submit(gomock.Any(), int64(42), "Москва").Return(entities.RemoteOrder{ID: 10, Status: entities.OrderStatusFormed, TotalTraffic: 1.1}, nil)
		w := serve(r, http.MethodPost, "/v1/draft/submit", `{"address":"Москва"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			ID          int64  `json:"id"`
			StatusLabel string `json:"status_label"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ID != 10 || body.StatusLabel != "Сформирована" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("partial submission", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().Submit(gomock.Any(), int64(42), "Москва").
			Return(entities.RemoteOrder{}, &usecase.PartialSubmissionError{OrderID: 10, Err: errors.New("timeout")})
		w := serve(r, http.MethodPost, "/v1/draft/submit", `{"address":"Москва"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PARTIAL_SUBMISSION" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("empty draft", func(t *testing.T) {
		r, uc := draftRouter(t, &caller)
		uc.EXPECT().Submit(gomock.Any(), int64(42), "Москва").Return(entities.RemoteOrder{}, usecase.ErrEmptyDraft)
		w := serve(r, http.MethodPost, "/v1/draft/submit", `{"address":"Москва"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
