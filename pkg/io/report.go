package io

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/superperm/pkg/errors"
)

// Milestone is one solved goal.
type Milestone struct {
	Goal      int   `json:"goal" toml:"goal"`
	Distance  int   `json:"distance" toml:"distance"`
	Open      int   `json:"open" toml:"open"`
	Closed    int   `json:"closed" toml:"closed"`
	Expanded  int   `json:"expanded" toml:"expanded"`
	ElapsedMS int64 `json:"elapsed_ms" toml:"elapsed_ms"`
}

// Report describes a solve from seed to the last milestone reached.
type Report struct {
	RunID      string      `json:"run_id" toml:"run_id"`
	Version    string      `json:"version,omitempty" toml:"version,omitempty"`
	Symbols    int         `json:"symbols" toml:"symbols"`
	Complete   bool        `json:"complete" toml:"complete"`
	Distance   int         `json:"distance" toml:"distance"`
	Length     int         `json:"length" toml:"length"`
	StartedAt  time.Time   `json:"started_at" toml:"started_at"`
	ElapsedMS  int64       `json:"elapsed_ms" toml:"elapsed_ms"`
	Milestones []Milestone `json:"milestones" toml:"milestone"`
}

// NewReport starts a report for an alphabet of the given size with a fresh
// run identifier.
func NewReport(symbols int) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Symbols:   symbols,
		Length:    symbols,
		StartedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// Record appends a milestone and updates the running totals.
func (r *Report) Record(m Milestone) {
	r.Milestones = append(r.Milestones, m)
	r.Distance = m.Distance
	r.Length = r.Symbols + m.Distance
	r.ElapsedMS = m.ElapsedMS
}

// Finish marks the report complete when every permutation was reached.
func (r *Report) Finish(maxPermutations int) {
	if n := len(r.Milestones); n > 0 && r.Milestones[n-1].Goal == maxPermutations {
		r.Complete = true
	}
}

// Validate checks the invariants a decoded report must satisfy: a parseable
// run identifier, supported alphabet, consecutive goals starting at 2 and
// non-decreasing distances that match the totals.
func (r *Report) Validate() error {
	if _, err := uuid.Parse(r.RunID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidReport, err, "run id %q", r.RunID)
	}
	if err := errors.ValidateSymbols(r.Symbols); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidReport, err, "symbols")
	}
	prev := 0
	for i, m := range r.Milestones {
		if m.Goal != i+2 {
			return errors.New(errors.ErrCodeInvalidReport, "milestone %d has goal %d, want %d", i, m.Goal, i+2)
		}
		if m.Distance < prev {
			return errors.New(errors.ErrCodeInvalidReport, "milestone %d distance %d below previous %d", i, m.Distance, prev)
		}
		prev = m.Distance
	}
	if r.Distance != prev {
		return errors.New(errors.ErrCodeInvalidReport, "distance %d does not match last milestone %d", r.Distance, prev)
	}
	if r.Length != r.Symbols+r.Distance {
		return errors.New(errors.ErrCodeInvalidReport, "length %d, want %d", r.Length, r.Symbols+r.Distance)
	}
	return nil
}

// Summary returns a one-line description.
func (r *Report) Summary() string {
	status := "partial"
	if r.Complete {
		status = "complete"
	}
	return fmt.Sprintf("n=%d length=%d distance=%d milestones=%d (%s)", r.Symbols, r.Length, r.Distance, len(r.Milestones), status)
}
