// Package health aggregates readiness checks for the process's dependencies.
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single readiness evaluation.
const DefaultTimeout = 5 * time.Second

// Checker probes one dependency. A nil error means the dependency is usable.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}
