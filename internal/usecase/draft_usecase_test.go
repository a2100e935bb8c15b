package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartorders/internal/domain/entities"
	mock_interfaces "smartorders/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type draftFixture struct {
	uc      *DraftUseCase
	drafts  *mock_interfaces.MockIDraftRepository
	devices *mock_interfaces.MockIDeviceRepository
	gateway *mock_interfaces.MockIOrderGateway
}

func newDraftFixture(t *testing.T, autoStart bool) draftFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := draftFixture{
		drafts:  mock_interfaces.NewMockIDraftRepository(ctrl),
		devices: mock_interfaces.NewMockIDeviceRepository(ctrl),
		gateway: mock_interfaces.NewMockIOrderGateway(ctrl),
	}
	f.uc = NewDraftUseCase(f.drafts, f.devices, NewSynchronizerRegistry(f.gateway, nil, nil), autoStart, nil)
	return f
}

func storedDraft(items ...entities.LineItem) *entities.DraftOrder {
	return &entities.DraftOrder{
		ID:        "draft-7",
		Status:    entities.OrderStatusDraft,
		ClientID:  42,
		Items:     items,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

var activeHub = entities.Device{ID: 1, Name: "Хаб", DataPerHour: 0.5, IsActive: true}

func TestDraftUseCase_AddDevice(t *testing.T) {
	t.Run("auto starts a draft", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.devices.EXPECT().GetByID(gomock.Any(), int64(1)).Return(activeHub, nil)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)
		f.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *entities.DraftOrder) error {
			assert.Equal(t, int64(42), d.ClientID)
			assert.NotEmpty(t, d.ID)
			return nil
		})

		d, err := f.uc.AddDevice(context.Background(), 42, 1, 3)
		require.NoError(t, err)
		require.Len(t, d.Items, 1)
		assert.Equal(t, 3, d.Items[0].Quantity)
		assert.Equal(t, 1.5, d.Total)
	})

	t.Run("merges into stored draft", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.devices.EXPECT().GetByID(gomock.Any(), int64(1)).Return(activeHub, nil)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(storedDraft(entities.LineItem{DeviceID: 1, DeviceName: "Хаб", Quantity: 1, DataPerHour: 0.5}), nil)
		f.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		d, err := f.uc.AddDevice(context.Background(), 42, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "draft-7", d.ID)
		require.Len(t, d.Items, 1)
		assert.Equal(t, 3, d.Items[0].Quantity)
	})

	t.Run("no draft without auto start", func(t *testing.T) {
		f := newDraftFixture(t, false)
		f.devices.EXPECT().GetByID(gomock.Any(), int64(1)).Return(activeHub, nil)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)

		_, err := f.uc.AddDevice(context.Background(), 42, 1, 1)
		assert.ErrorIs(t, err, ErrNoActiveDraft)
	})

	t.Run("unknown device", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.devices.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Device{}, nil)

		_, err := f.uc.AddDevice(context.Background(), 42, 9, 1)
		assert.ErrorIs(t, err, ErrDeviceNotFound)
	})

	t.Run("inactive device", func(t *testing.T) {
		f := newDraftFixture(t, true)
		inactive := activeHub
		inactive.IsActive = false
		f.devices.EXPECT().GetByID(gomock.Any(), int64(1)).Return(inactive, nil)

		_, err := f.uc.AddDevice(context.Background(), 42, 1, 1)
		assert.ErrorIs(t, err, ErrDeviceInactive)
	})

	t.Run("bad input", func(t *testing.T) {
		f := newDraftFixture(t, true)
		_, err := f.uc.AddDevice(context.Background(), 42, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		_, err = f.uc.AddDevice(context.Background(), 42, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidDeviceID)
	})

	t.Run("save failure", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.devices.EXPECT().GetByID(gomock.Any(), int64(1)).Return(activeHub, nil)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)
		f.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := f.uc.AddDevice(context.Background(), 42, 1, 1)
		assert.EqualError(t, err, "redis down")
	})
}

func TestDraftUseCase_SetQuantity(t *testing.T) {
	f := newDraftFixture(t, true)
	f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(storedDraft(entities.LineItem{DeviceID: 1, Quantity: 2, DataPerHour: 0.5}), nil).Times(2)
	f.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	d, err := f.uc.SetQuantity(context.Background(), 42, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, d.Items)
	assert.Zero(t, d.Total)

	_, err = f.uc.SetQuantity(context.Background(), 42, 5, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDraftUseCase_Start(t *testing.T) {
	f := newDraftFixture(t, true)
	f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(storedDraft(entities.LineItem{DeviceID: 1, Quantity: 1}), nil)

	_, err := f.uc.Start(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = f.uc.Start(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidClientID)
}

func TestDraftUseCase_Clear(t *testing.T) {
	t.Run("stored draft is deleted", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(storedDraft(), nil)
		f.drafts.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)
		require.NoError(t, f.uc.Clear(context.Background(), 42))
	})

	t.Run("nothing stored", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)
		require.NoError(t, f.uc.Clear(context.Background(), 42))
	})
}

func TestDraftUseCase_Services(t *testing.T) {
	f := newDraftFixture(t, true)
	f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)
	f.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	d, err := f.uc.AddService(context.Background(), 42, entities.ServiceLine{ID: 3, Name: "Монтаж", Price: 150})
	require.NoError(t, err)
	require.Len(t, d.Services, 1)
	assert.Equal(t, 150.0, d.Total)
}

func TestDraftUseCase_Submit(t *testing.T) {
	line := entities.LineItem{DeviceID: 1, DeviceName: "Хаб", Quantity: 2, DataPerHour: 0.5}

	t.Run("formed order removes stored draft", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(storedDraft(line), nil)
		f.gateway.EXPECT().SaveOrder(gomock.Any(), int64(0), gomock.Any()).Return(entities.RemoteOrder{ID: 10, Status: entities.OrderStatusDraft}, nil)
		f.gateway.EXPECT().FormOrder(gomock.Any(), int64(10)).Return(entities.RemoteOrder{ID: 10, Status: entities.OrderStatusFormed, TotalTraffic: 1}, nil)
		f.drafts.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)

		o, err := f.uc.Submit(context.Background(), 42, "addr")
		require.NoError(t, err)
		assert.Equal(t, int64(10), o.ID)
		assert.Equal(t, entities.OrderStatusFormed, o.Status)

		st := f.uc.syncs.For(42).State()
		require.Len(t, st.Orders, 1)
	})

	t.Run("formed order survives a failed draft removal", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(storedDraft(line), nil)
		f.gateway.EXPECT().SaveOrder(gomock.Any(), int64(0), gomock.Any()).Return(entities.RemoteOrder{ID: 11, Status: entities.OrderStatusDraft}, nil)
		f.gateway.EXPECT().FormOrder(gomock.Any(), int64(11)).Return(entities.RemoteOrder{ID: 11, Status: entities.OrderStatusFormed}, nil)
		f.drafts.EXPECT().Delete(gomock.Any(), int64(42)).Return(errors.New("redis down"))

		o, err := f.uc.Submit(context.Background(), 42, "addr")
		require.NoError(t, err)
		assert.Equal(t, int64(11), o.ID)
		assert.Equal(t, entities.OrderStatusFormed, o.Status)
		assert.Len(t, f.uc.syncs.For(42).State().Orders, 1)
	})

	t.Run("partial submission keeps stored draft", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(storedDraft(line), nil)
		f.gateway.EXPECT().SaveOrder(gomock.Any(), int64(0), gomock.Any()).Return(entities.RemoteOrder{ID: 10}, nil)
		f.gateway.EXPECT().FormOrder(gomock.Any(), int64(10)).Return(entities.RemoteOrder{}, errors.New("timeout"))

		_, err := f.uc.Submit(context.Background(), 42, "addr")
		assert.ErrorIs(t, err, ErrPartialSubmission)
	})

	t.Run("no draft", func(t *testing.T) {
		f := newDraftFixture(t, true)
		f.drafts.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)

		_, err := f.uc.Submit(context.Background(), 42, "addr")
		assert.ErrorIs(t, err, ErrNoActiveDraft)
	})
}
