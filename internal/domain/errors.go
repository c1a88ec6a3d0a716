package domain

import "fmt"

// StepError is the base error type with browser context.
type StepError struct {
	Phase    string // "config", "launch", "navigate", "fill", "click", "read"
	Selector string
	URL      string
	Message  string
	Cause    error
}

func (e *StepError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.URL != "" {
		s += fmt.Sprintf(" %s", e.URL)
	}
	if e.Selector != "" {
		s += fmt.Sprintf(" %q", e.Selector)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// NewError creates a new StepError.
func NewError(phase, selector, url, message string, cause error) *StepError {
	return &StepError{
		Phase:    phase,
		Selector: selector,
		URL:      url,
		Message:  message,
		Cause:    cause,
	}
}
