package coupon

import "errors"

var (
	ErrNotFound           = errors.New("coupon not found")
	ErrInactive           = errors.New("coupon is inactive")
	ErrNotStarted         = errors.New("coupon is not valid yet")
	ErrExpired            = errors.New("coupon has expired")
	ErrProgramRestricted  = errors.New("coupon does not apply to this program")
	ErrUsageLimitReached  = errors.New("coupon usage limit reached")
	ErrUserLimitReached   = errors.New("coupon per-user limit reached")
	ErrAffiliateConflict  = errors.New("coupon is bound to a different affiliate")
	ErrManualEntryBlocked = errors.New("coupon cannot be entered manually")
)
