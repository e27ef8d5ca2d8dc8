package fulfillment

import (
	"context"
	"errors"
	"testing"

	"challengecart/internal/domain/anomaly"
	"challengecart/internal/domain/mapping"
	"challengecart/internal/domain/order"
	"challengecart/pkg/logger"
	"challengecart/pkg/pointers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSender struct {
	sent []OrderPayload
	err  error
}

func (f *fakeSender) SendOrder(_ context.Context, p OrderPayload) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, p)
	return nil
}

func backofficeStep(t *testing.T) (*BackofficeStep, *fakeSender, *mapping.MockRepo) {
	t.Helper()

	log := logger.New("error", "json")
	mockRepo := mapping.NewMockRepo(gomock.NewController(t))
	resolver := mapping.NewResolver(mockRepo, anomaly.NopSink{}, log)
	sender := &fakeSender{}
	return NewBackofficeStep(sender, resolver, mockRepo, log), sender, mockRepo
}

func completedOrder(programID, tierID uuid.UUID) order.Order {
	return order.Order{
		ID:            uuid.New(),
		OrderNumber:   "#10042",
		Email:         "jo@example.com",
		FirstName:     "Jo",
		LastName:      "Doe",
		Address1:      "1 Main St",
		City:          "Austin",
		State:         "TX",
		Postcode:      "78701",
		Country:       "US",
		PurchasePrice: 499,
		TotalPrice:    499,
		Currency:      "USD",
		PurchaseType:  order.PurchaseOriginal,
		ProgramID:     programID,
		PlatformSlug:  "mt5",
		AccountSize:   "100k",
		TierID:        pointers.Ptr(tierID),
		Status:        order.StatusCompleted,
		Metadata:      order.Metadata{},
	}
}

func TestBackofficeStep_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	programID := uuid.New()
	tierID := uuid.New()

	resolved := mapping.ProductMapping{
		ProgramID:    programID,
		TierID:       pointers.Ptr(tierID),
		PlatformSlug: "mt5",
		ProductID:    1001,
		VariationID:  2001,
	}

	t.Run("should assemble and send the order payload", func(t *testing.T) {
		step, sender, mockRepo := backofficeStep(t)
		m := resolved

		mockRepo.EXPECT().GetMapping(ctx, programID, tierID, "mt5").Return(&m, nil)

		res := step.Run(ctx, completedOrder(programID, tierID))

		assert.Equal(t, OutcomeSent, res.Status)
		require.Len(t, sender.sent, 1)
		p := sender.sent[0]
		assert.Equal(t, "#10042", p.ID)
		assert.Equal(t, "processing", p.Status)
		assert.Equal(t, "USD", p.Currency)
		assert.Equal(t, "499", p.Total)
		assert.Equal(t, "jo@example.com", p.Billing.Email)
		assert.Equal(t, "Jo", p.Billing.FirstName)
		require.Len(t, p.Lines, 1)
		assert.Equal(t, int64(1001), p.Lines[0].ProductID)
		assert.Equal(t, int64(2001), p.Lines[0].VariationID)
		assert.Equal(t, "499", p.Lines[0].Total)
	})

	t.Run("should format fractional amounts without padding", func(t *testing.T) {
		step, sender, mockRepo := backofficeStep(t)
		m := resolved
		o := completedOrder(programID, tierID)
		o.PurchasePrice = 124.75

		mockRepo.EXPECT().GetMapping(ctx, programID, tierID, "mt5").Return(&m, nil)

		step.Run(ctx, o)

		require.Len(t, sender.sent, 1)
		assert.Equal(t, "124.75", sender.sent[0].Total)
	})

	t.Run("should skip non-completed orders", func(t *testing.T) {
		step, sender, _ := backofficeStep(t)
		o := completedOrder(programID, tierID)
		o.Status = order.StatusFailed

		res := step.Run(ctx, o)

		assert.Equal(t, OutcomeSkipped, res.Status)
		assert.Empty(t, sender.sent)
	})

	t.Run("should send a flagged zero-ID line when the mapping is unresolved", func(t *testing.T) {
		step, sender, mockRepo := backofficeStep(t)

		mockRepo.EXPECT().GetMapping(ctx, programID, tierID, "mt5").Return(nil, nil)
		mockRepo.EXPECT().ListLegacyByPlatform(ctx, "mt5").Return(nil, nil)

		res := step.Run(ctx, completedOrder(programID, tierID))

		assert.Equal(t, OutcomeSent, res.Status)
		assert.Contains(t, res.Detail, "unresolved")
		require.Len(t, sender.sent, 1)
		assert.Equal(t, int64(0), sender.sent[0].Lines[0].ProductID)
	})

	t.Run("should attach fee lines for resolvable add-ons and drop stale ones", func(t *testing.T) {
		step, sender, mockRepo := backofficeStep(t)
		m := resolved
		o := completedOrder(programID, tierID)
		goodID, staleID := uuid.New(), uuid.New()
		o.AddOns = []order.AddOnSelection{
			{AddOnID: goodID, Percentage: 25},
			{AddOnID: staleID, Percentage: 10},
		}

		mockRepo.EXPECT().GetMapping(ctx, programID, tierID, "mt5").Return(&m, nil)
		mockRepo.EXPECT().AddOnKey(ctx, goodID).Return("double-leverage", nil)
		mockRepo.EXPECT().AddOnKey(ctx, staleID).Return("", mapping.ErrAddOnNotFound)

		res := step.Run(ctx, o)

		assert.Equal(t, OutcomeSent, res.Status)
		require.Len(t, sender.sent, 1)
		require.Len(t, sender.sent[0].FeeLines, 1)
		assert.Equal(t, []MetaKV{
			{Key: "addon_key", Value: "double-leverage"},
			{Key: "addon_percentage", Value: "25"},
		}, sender.sent[0].FeeLines[0].MetaData)
	})

	t.Run("should carry the account id on reset orders", func(t *testing.T) {
		step, sender, mockRepo := backofficeStep(t)
		m := resolved
		m.ResetFeeProductID = 4001
		o := completedOrder(programID, tierID)
		o.PurchaseType = order.PurchaseReset
		o.Metadata = order.Metadata{order.MetaAccountID: "acct-77"}

		mockRepo.EXPECT().GetMapping(ctx, programID, tierID, "mt5").Return(&m, nil)

		step.Run(ctx, o)

		require.Len(t, sender.sent, 1)
		p := sender.sent[0]
		assert.Equal(t, int64(4001), p.Lines[0].ProductID)
		assert.Equal(t, []MetaKV{{Key: "account_id", Value: "acct-77"}}, p.MetaData)
	})

	t.Run("should fail when the back office rejects the order", func(t *testing.T) {
		step, sender, mockRepo := backofficeStep(t)
		m := resolved
		sender.err = errors.New("502")

		mockRepo.EXPECT().GetMapping(ctx, programID, tierID, "mt5").Return(&m, nil)

		res := step.Run(ctx, completedOrder(programID, tierID))

		assert.Equal(t, OutcomeFailed, res.Status)
	})
}
