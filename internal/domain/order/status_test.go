package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapGatewayStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw      string
		expected Status
	}{
		{"approved", StatusCompleted},
		{"paid", StatusCompleted},
		{"succeeded", StatusCompleted},
		{"success", StatusCompleted},
		{"completed", StatusCompleted},
		{"APPROVED", StatusCompleted},
		{"declined", StatusFailed},
		{"failed", StatusFailed},
		{"rejected", StatusFailed},
		{"error", StatusFailed},
		{"cancelled", StatusCancelled},
		{"canceled", StatusCancelled},
		{"voided", StatusCancelled},
		{"refunded", StatusCancelled},
		{"something-new", StatusPending},
		{"", StatusPending},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapGatewayStatus(tc.raw))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusCancelled.Terminal())
}
