package domain

import "time"

// AccountKind classifies a seeded demo account by the behavior the
// storefront shows it at login time.
type AccountKind string

const (
	// AccountStandard logs in and lands on the inventory page.
	AccountStandard AccountKind = "standard"
	// AccountLocked is rejected with a visible "locked out" error.
	AccountLocked AccountKind = "locked"
	// AccountProblem logs in but the site serves it broken assets.
	// For login purposes it behaves like a standard account.
	AccountProblem AccountKind = "problem"
)

// Credential is a seeded username/password pair used to drive a login
// scenario. All demo accounts share one constant password.
type Credential struct {
	Username string
	Password string
	Kind     AccountKind
}

// OutcomeKind discriminates the expected result of a login attempt.
type OutcomeKind string

const (
	// OutcomeBlocked expects a visible error indicator on the login page.
	OutcomeBlocked OutcomeKind = "blocked"
	// OutcomeAdmitted expects navigation away from the login page.
	OutcomeAdmitted OutcomeKind = "admitted"
)

// Outcome is the declarative expectation for a login attempt. Exactly one
// of the substring fields is meaningful, selected by Kind:
// MessageSubstring for blocked accounts, LocationSubstring for admitted.
type Outcome struct {
	Kind              OutcomeKind
	MessageSubstring  string
	LocationSubstring string
}

// ScenarioResult records the outcome of one executed scenario for the
// run report.
type ScenarioResult struct {
	Suite    string        `json:"suite"`
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Skipped  bool          `json:"skipped"`
	Duration time.Duration `json:"duration"`
	Failure  string        `json:"failure,omitempty"`
}

// RunSummary aggregates an entire suite run for reporting.
type RunSummary struct {
	Title      string           `json:"title"`
	BaseURL    string           `json:"base_url"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Results    []ScenarioResult `json:"results"`
}

// Passed reports whether every non-skipped scenario passed.
func (s *RunSummary) Passed() bool {
	for _, r := range s.Results {
		if !r.Skipped && !r.Passed {
			return false
		}
	}
	return true
}

// Counts returns the number of passed, failed and skipped scenarios.
func (s *RunSummary) Counts() (passed, failed, skipped int) {
	for _, r := range s.Results {
		switch {
		case r.Skipped:
			skipped++
		case r.Passed:
			passed++
		default:
			failed++
		}
	}
	return passed, failed, skipped
}
