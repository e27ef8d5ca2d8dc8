package coupon

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"challengecart/pkg/logger"

	"github.com/google/uuid"
)

// CartContext is the order context a coupon validates against.
type CartContext struct {
	ProgramID     uuid.UUID
	AccountSize   string
	OrderAmount   float64
	CustomerEmail string
}

// urlCodePattern is the heuristic for unlabelled URL coupon codes.
var urlCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,20}$`)

// namedURLParams are checked before the heuristic kicks in.
var namedURLParams = []string{"coupon", "discount", "promo"}

type Service struct {
	repo        Repo
	usage       UsageLedger
	attribution AttributionSource
	log         *logger.Logger
}

func NewService(repo Repo, usage UsageLedger, attribution AttributionSource, log *logger.Logger) *Service {
	return &Service{repo: repo, usage: usage, attribution: attribution, log: log}
}

// Validate runs the full coupon check against a cart context: status,
// validity window, program restriction, usage ledger and affiliate binding.
// It does NOT gate manual entry; that is a separate authorization path
// (see ValidateManualCode).
func (s *Service) Validate(ctx context.Context, c *Coupon, cart CartContext) error {
	now := time.Now()

	switch c.Status {
	case StatusActive:
	case StatusScheduled:
		return ErrNotStarted
	default:
		return ErrInactive
	}

	if now.Before(c.ValidFrom) {
		return ErrNotStarted
	}
	if c.ValidTo != nil && now.After(*c.ValidTo) {
		return ErrExpired
	}

	if !c.AppliesToProgram(cart.ProgramID) {
		return ErrProgramRestricted
	}

	if c.TotalUsageLimit != nil {
		total, err := s.usage.CountTotal(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("count coupon usage: %w", err)
		}
		if total >= *c.TotalUsageLimit {
			return ErrUsageLimitReached
		}
	}
	if c.UsagePerUser != nil && cart.CustomerEmail != "" {
		used, err := s.usage.CountByCustomer(ctx, c.ID, cart.CustomerEmail)
		if err != nil {
			return fmt.Errorf("count customer coupon usage: %w", err)
		}
		if used >= *c.UsagePerUser {
			return ErrUserLimitReached
		}
	}

	if c.AffiliateID != nil && cart.CustomerEmail != "" {
		first, err := s.attribution.FirstAffiliate(ctx, cart.CustomerEmail)
		if err != nil {
			return fmt.Errorf("look up customer attribution: %w", err)
		}
		// First attribution is sticky: a customer already attributed to
		// another affiliate cannot redeem this affiliate's coupon.
		if first != nil && *first != *c.AffiliateID {
			return ErrAffiliateConflict
		}
	}

	return nil
}

// ValidateManualCode is the manual-entry path: the typed code is looked up
// case-insensitively and auto-apply-only coupons are rejected before the
// shared validation runs.
func (s *Service) ValidateManualCode(ctx context.Context, code string, cart CartContext) (Coupon, error) {
	c, err := s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Coupon{}, err
	}

	if c.AutoApply && c.PreventManualEntry {
		return Coupon{}, ErrManualEntryBlocked
	}

	if err := s.Validate(ctx, &c, cart); err != nil {
		return Coupon{}, err
	}
	return c, nil
}

// FindAutoApplyCoupons returns every currently-valid auto-apply coupon for
// the cart, sorted by priority descending.
func (s *Service) FindAutoApplyCoupons(ctx context.Context, cart CartContext) ([]Coupon, error) {
	candidates, err := s.repo.FindAutoApply(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("find auto-apply coupons: %w", err)
	}

	valid := make([]Coupon, 0, len(candidates))
	for i := range candidates {
		if err := s.Validate(ctx, &candidates[i], cart); err != nil {
			if isRejection(err) {
				s.log.DebugContext(ctx, "auto-apply candidate rejected",
					"code", candidates[i].Code, "reason", err.Error())
				continue
			}
			return nil, err
		}
		valid = append(valid, candidates[i])
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].AutoApplyPriority > valid[j].AutoApplyPriority
	})
	return valid, nil
}

// BestAutoApplyCoupon returns the highest-priority valid auto-apply coupon,
// or nil when none validates.
func (s *Service) BestAutoApplyCoupon(ctx context.Context, cart CartContext) (*Coupon, error) {
	coupons, err := s.FindAutoApplyCoupons(ctx, cart)
	if err != nil {
		return nil, err
	}
	if len(coupons) == 0 {
		return nil, nil
	}
	return &coupons[0], nil
}

// CheckURLCoupon extracts a candidate code from landing-page query params.
// Explicitly named parameters win; otherwise any value matching a plain
// alphanumeric 3-20 character pattern is tried, in sorted key order so the
// pick is deterministic. An unknown or invalid code is not an error.
func (s *Service) CheckURLCoupon(ctx context.Context, params map[string]string, cart CartContext) (*Coupon, error) {
	for _, candidate := range urlCandidates(params) {
		c, err := s.ValidateManualCode(ctx, candidate, cart)
		if err != nil {
			if errors.Is(err, ErrNotFound) || isRejection(err) {
				continue
			}
			return nil, err
		}
		return &c, nil
	}
	return nil, nil
}

func urlCandidates(params map[string]string) []string {
	for _, name := range namedURLParams {
		if v, ok := params[name]; ok && v != "" {
			return []string{v}
		}
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		if urlCodePattern.MatchString(params[k]) {
			out = append(out, params[k])
		}
	}
	return out
}

// isRejection distinguishes a business rejection from an infrastructure
// failure: rejections skip the candidate, failures abort resolution.
func isRejection(err error) bool {
	for _, rejection := range []error{
		ErrInactive, ErrNotStarted, ErrExpired, ErrProgramRestricted,
		ErrUsageLimitReached, ErrUserLimitReached, ErrAffiliateConflict,
		ErrManualEntryBlocked,
	} {
		if errors.Is(err, rejection) {
			return true
		}
	}
	return false
}
