package order

import (
	"context"
	"errors"
	"testing"

	"challengecart/internal/domain/anomaly"
	"challengecart/internal/domain/gateway"
	"challengecart/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingDispatcher struct {
	dispatched []Order
}

func (d *recordingDispatcher) Dispatch(_ context.Context, o Order) {
	d.dispatched = append(d.dispatched, o)
}

type recordingSink struct {
	reported []anomaly.Anomaly
}

func (s *recordingSink) Report(_ context.Context, a anomaly.Anomaly) error {
	s.reported = append(s.reported, a)
	return nil
}

func orderService(t *testing.T) (*Service, *MockRepo, *recordingDispatcher, *recordingSink) {
	t.Helper()

	mockRepo := NewMockRepo(gomock.NewController(t))
	dispatcher := &recordingDispatcher{}
	sink := &recordingSink{}
	service := NewService(mockRepo, dispatcher, sink, logger.New("error", "json"))

	return service, mockRepo, dispatcher, sink
}

func TestService_ProcessGatewayEvent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	approvedEvent := gateway.Event{
		Type:          gateway.EventApproved,
		OrderRef:      "#10042",
		Status:        "approved",
		TransactionID: "tx_1",
		Amount:        499,
		Currency:      "USD",
	}

	t.Run("should transition and dispatch on approved event", func(t *testing.T) {
		service, mockRepo, dispatcher, _ := orderService(t)
		existing := Order{
			ID:          uuid.New(),
			OrderNumber: "#10042",
			TotalPrice:  499,
			Status:      StatusPending,
		}

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#10042").Return(existing, nil)
		mockRepo.EXPECT().UpdateStatus(ctx, existing.ID, StatusCompleted, "tx_1").Return(nil)

		err := service.ProcessGatewayEvent(ctx, approvedEvent)

		require.NoError(t, err)
		require.Len(t, dispatcher.dispatched, 1)
		assert.Equal(t, StatusCompleted, dispatcher.dispatched[0].Status)
		assert.Equal(t, "tx_1", dispatcher.dispatched[0].TransactionID)
	})

	t.Run("should skip the status write on redelivery but still dispatch", func(t *testing.T) {
		service, mockRepo, dispatcher, _ := orderService(t)
		existing := Order{
			ID:          uuid.New(),
			OrderNumber: "#10042",
			TotalPrice:  499,
			Status:      StatusCompleted,
		}

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#10042").Return(existing, nil)

		err := service.ProcessGatewayEvent(ctx, approvedEvent)

		require.NoError(t, err)
		assert.Len(t, dispatcher.dispatched, 1)
	})

	t.Run("should heal diverged price before dispatching", func(t *testing.T) {
		service, mockRepo, dispatcher, sink := orderService(t)
		existing := Order{
			ID:          uuid.New(),
			OrderNumber: "#10042",
			TotalPrice:  499,
			Status:      StatusPending,
			Metadata:    Metadata{MetaTotalPrice: 399.0},
		}

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#10042").Return(existing, nil)
		mockRepo.EXPECT().HealMetadataPrice(ctx, existing.ID, gomock.Any()).Return(nil)
		mockRepo.EXPECT().UpdateStatus(ctx, existing.ID, StatusCompleted, "tx_1").Return(nil)

		err := service.ProcessGatewayEvent(ctx, approvedEvent)

		require.NoError(t, err)
		require.Len(t, dispatcher.dispatched, 1)
		assert.Equal(t, 499.0, dispatcher.dispatched[0].Metadata[MetaTotalPrice])
		require.Len(t, sink.reported, 1)
		assert.Equal(t, anomaly.KindPriceDivergence, sink.reported[0].Kind)
	})

	t.Run("should continue when the price heal write fails", func(t *testing.T) {
		service, mockRepo, dispatcher, _ := orderService(t)
		existing := Order{
			ID:          uuid.New(),
			OrderNumber: "#10042",
			TotalPrice:  499,
			Status:      StatusCompleted,
			Metadata:    Metadata{MetaTotalPrice: 399.0},
		}

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#10042").Return(existing, nil)
		mockRepo.EXPECT().HealMetadataPrice(ctx, existing.ID, gomock.Any()).Return(errors.New("write failed"))

		err := service.ProcessGatewayEvent(ctx, approvedEvent)

		require.NoError(t, err)
		assert.Len(t, dispatcher.dispatched, 1)
	})

	t.Run("should flag unknown orders and skip dispatch", func(t *testing.T) {
		service, mockRepo, dispatcher, sink := orderService(t)

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#10042").Return(Order{}, ErrNotFound)

		err := service.ProcessGatewayEvent(ctx, approvedEvent)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, dispatcher.dispatched)
		require.Len(t, sink.reported, 1)
		assert.Equal(t, anomaly.KindOrderNotFound, sink.reported[0].Kind)
	})

	t.Run("should propagate repository failures", func(t *testing.T) {
		service, mockRepo, dispatcher, _ := orderService(t)

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#10042").Return(Order{}, errors.New("connection lost"))

		err := service.ProcessGatewayEvent(ctx, approvedEvent)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Empty(t, dispatcher.dispatched)
	})

	t.Run("should propagate status update failures", func(t *testing.T) {
		service, mockRepo, dispatcher, _ := orderService(t)
		existing := Order{ID: uuid.New(), OrderNumber: "#10042", Status: StatusPending}

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#10042").Return(existing, nil)
		mockRepo.EXPECT().UpdateStatus(ctx, existing.ID, StatusCompleted, "tx_1").Return(errors.New("write failed"))

		err := service.ProcessGatewayEvent(ctx, approvedEvent)

		assert.Error(t, err)
		assert.Empty(t, dispatcher.dispatched)
	})
}

func TestService_GetByOrderNumber(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should return the order", func(t *testing.T) {
		service, mockRepo, _, _ := orderService(t)
		existing := Order{ID: uuid.New(), OrderNumber: "#1"}

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#1").Return(existing, nil)

		o, err := service.GetByOrderNumber(ctx, "#1")

		require.NoError(t, err)
		assert.Equal(t, existing, o)
	})

	t.Run("should pass through not found", func(t *testing.T) {
		service, mockRepo, _, _ := orderService(t)

		mockRepo.EXPECT().GetByOrderNumber(ctx, "#1").Return(Order{}, ErrNotFound)

		_, err := service.GetByOrderNumber(ctx, "#1")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
