package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/thoreinstein/munconf/internal/logging"
)

// Check is the interface that diagnostic checks must implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check (e.g., "config", "catalog").
	Category() string

	// Run executes the diagnostic check and returns its result.
	Run(ctx context.Context) *CheckResult
}

// Runner executes diagnostic checks in registration order.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner creates a runner for checks.
func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks, now: time.Now}
}

// AddCheck registers a diagnostic check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every check and returns the report. A check that panics or
// returns nil is recorded as an error result.
func (r *Runner) Run(ctx context.Context) *Report {
	logger := logging.FromContext(ctx)
	report := &Report{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		start := r.now()
		result := runOne(ctx, check)
		logger.Debug("doctor check",
			"check", check.Name(),
			"status", result.Status.String(),
			"elapsed", r.now().Sub(start))

		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	return report
}

func runOne(ctx context.Context, check Check) (result *CheckResult) {
	defer func() {
		if p := recover(); p != nil {
			result = &CheckResult{
				Name:     check.Name(),
				Category: check.Category(),
				Status:   SeverityError,
				Message:  fmt.Sprintf("check panicked: %v", p),
			}
		}
	}()

	result = check.Run(ctx)
	if result == nil {
		return &CheckResult{
			Name:     check.Name(),
			Category: check.Category(),
			Status:   SeverityError,
			Message:  "check returned no result",
		}
	}
	if result.Name == "" {
		result.Name = check.Name()
	}
	if result.Category == "" {
		result.Category = check.Category()
	}
	return result
}

// Report aggregates all check results with a summary.
type Report struct {
	// Timestamp is when the diagnostic run started.
	Timestamp time.Time `json:"timestamp"`

	// Results contains the outcome of each check.
	Results []*CheckResult `json:"results"`

	// Summary contains counts by severity level.
	Summary Summary `json:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
