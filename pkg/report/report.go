// Package report aggregates check results into an ordered report with
// per-category summaries and a JSON rendering.
package report

import (
	"encoding/json"
	"io"

	"github.com/m101tools/setupcheck/pkg/check"
)

// Entry is one check result with the category it was recorded under.
type Entry struct {
	Category string
	Result   check.Result
}

// Summary holds pass/fail counts.
type Summary struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Report is an ordered collection of check results. Entry order is
// insertion order, which equals execution order.
type Report struct {
	entries []Entry
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Add records a result under a category.
func (r *Report) Add(category string, result check.Result) {
	r.entries = append(r.entries, Entry{Category: category, Result: result})
}

// Entries returns the recorded entries in execution order.
func (r *Report) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded entries.
func (r *Report) Len() int {
	return len(r.entries)
}

// OK returns true if every recorded check passed.
func (r *Report) OK() bool {
	for _, e := range r.entries {
		if !e.Result.OK() {
			return false
		}
	}
	return true
}

// Overall returns pass/fail counts across all entries.
func (r *Report) Overall() Summary {
	var s Summary
	for _, e := range r.entries {
		if e.Result.OK() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// Summary returns pass/fail counts for one category.
func (r *Report) Summary(category string) Summary {
	var s Summary
	for _, e := range r.entries {
		if e.Category != category {
			continue
		}
		if e.Result.OK() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// Categories returns the recorded categories in first-seen order.
func (r *Report) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range r.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

type entryJSON struct {
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Details  []string `json:"details,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type reportJSON struct {
	OK      bool        `json:"ok"`
	Summary Summary     `json:"summary"`
	Checks  []entryJSON `json:"checks"`
}

// MarshalJSON renders the report as a stable JSON document.
func (r *Report) MarshalJSON() ([]byte, error) {
	doc := reportJSON{
		OK:      r.OK(),
		Summary: r.Overall(),
		Checks:  make([]entryJSON, 0, len(r.entries)),
	}
	for _, e := range r.entries {
		ej := entryJSON{
			Category: e.Category,
			Name:     e.Result.Name,
			Passed:   e.Result.OK(),
			Details:  e.Result.Details,
		}
		if e.Result.Err != nil {
			ej.Error = e.Result.Err.Error()
		}
		doc.Checks = append(doc.Checks, ej)
	}
	return json.Marshal(doc)
}

// WriteJSON writes the indented JSON rendering of the report.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
