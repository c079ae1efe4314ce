package organize

import (
	"specsort/internal/history"
)

// Outcome records what happened to one file during a run.
type Outcome struct {
	Name        string
	Destination string
	Action      history.Action
	Err         error
}

// Report accumulates the outcomes of a full pass over a directory.
type Report struct {
	RunID    string
	Root     string
	Outcomes []Outcome
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Count returns how many outcomes carry the given action.
func (r *Report) Count(action history.Action) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == action {
			n++
		}
	}
	return n
}

// Failures returns the outcomes that ended in an error.
func (r *Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Action == history.ActionFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// HasFailures reports whether any file could not be processed.
func (r *Report) HasFailures() bool {
	for _, o := range r.Outcomes {
		if o.Action == history.ActionFailed {
			return true
		}
	}
	return false
}
