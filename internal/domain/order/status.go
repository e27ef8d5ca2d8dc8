package order

import "strings"

// MapGatewayStatus collapses the gateway's status vocabulary into the
// internal enum. This is the single place gateway vocabulary changes are
// absorbed; the function is total and defaults to pending.
func MapGatewayStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved", "paid", "succeeded", "success", "completed":
		return StatusCompleted
	case "declined", "failed", "rejected", "error":
		return StatusFailed
	case "cancelled", "canceled", "voided", "refunded":
		return StatusCancelled
	default:
		return StatusPending
	}
}
