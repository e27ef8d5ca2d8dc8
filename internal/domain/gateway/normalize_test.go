package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("should normalize flat approved payload", func(t *testing.T) {
		raw := []byte(`{
			"event": "approved",
			"order_id": "#10042",
			"status": "approved",
			"transaction_id": "tx_1",
			"amount": 499,
			"currency": "USD"
		}`)

		ev, err := Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, EventApproved, ev.Type)
		assert.Equal(t, "#10042", ev.OrderRef)
		assert.Equal(t, "approved", ev.Status)
		assert.Equal(t, "tx_1", ev.TransactionID)
		assert.Equal(t, 499.0, ev.Amount)
		assert.Equal(t, "USD", ev.Currency)
	})

	t.Run("should read fields from nested charge attributes", func(t *testing.T) {
		raw := []byte(`{
			"event_type": "charge.approved",
			"data": {
				"charge": {
					"attributes": {
						"reference": "#555",
						"state": "paid",
						"charge_id": "ch_99",
						"total": 120.5
					}
				}
			}
		}`)

		ev, err := Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, EventApproved, ev.Type)
		assert.Equal(t, "#555", ev.OrderRef)
		assert.Equal(t, "paid", ev.Status)
		assert.Equal(t, "ch_99", ev.TransactionID)
		assert.Equal(t, 120.5, ev.Amount)
	})

	t.Run("should prefer inner scope over top level", func(t *testing.T) {
		raw := []byte(`{
			"event": "approved",
			"order_id": "outer",
			"data": {"order_id": "inner"}
		}`)

		ev, err := Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, "inner", ev.OrderRef)
	})

	t.Run("should default status to event type when absent", func(t *testing.T) {
		raw := []byte(`{"event": "declined", "order_id": "#7"}`)

		ev, err := Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, EventDeclined, ev.Type)
		assert.Equal(t, string(EventDeclined), ev.Status)
	})

	t.Run("should reject unrecognized event types", func(t *testing.T) {
		raw := []byte(`{"event": "cashier.session.close", "order_id": "#7"}`)

		_, err := Normalize(raw)

		assert.ErrorIs(t, err, ErrUnrecognizedEvent)
	})

	t.Run("should treat missing event type as unrecognized", func(t *testing.T) {
		raw := []byte(`{"order_id": "#7"}`)

		_, err := Normalize(raw)

		assert.ErrorIs(t, err, ErrUnrecognizedEvent)
	})

	t.Run("should reject empty body", func(t *testing.T) {
		_, err := Normalize([]byte("  "))

		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("should reject non-JSON body", func(t *testing.T) {
		_, err := Normalize([]byte("not json"))

		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("should reject payload without order reference", func(t *testing.T) {
		raw := []byte(`{"event": "approved", "amount": 10}`)

		_, err := Normalize(raw)

		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("should reject type mismatch instead of coercing", func(t *testing.T) {
		raw := []byte(`{"event": "approved", "order_id": 10042}`)

		_, err := Normalize(raw)

		assert.ErrorIs(t, err, ErrMalformedPayload)
	})
}
