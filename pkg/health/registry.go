package health

import (
	"context"
	"sync"
)

// Registry holds the process's readiness checkers.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// Report is the aggregated readiness state. Checks maps a component name to
// "ok" or the failure message.
type Report struct {
	Ready  bool              `json:"ready"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Report probes every checker concurrently and collects the results.
func (r *Registry) Report(ctx context.Context) Report {
	report := Report{Ready: true}
	if len(r.checkers) == 0 {
		return report
	}

	report.Checks = make(map[string]string, len(r.checkers))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, c := range r.checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			state := "ok"
			if err := c.Check(ctx); err != nil {
				state = err.Error()
			}
			mu.Lock()
			if state != "ok" {
				report.Ready = false
			}
			report.Checks[c.Name()] = state
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	return report
}
