// Package search filters and groups lead collections. Every function is pure:
// inputs are never mutated and output order follows input order.
package search

import (
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"strings"
)

// Column is one board bucket.
type Column struct {
	Stage pipeline.Stage `json:"stage"`
	Title string         `json:"title"`
	Leads []store.Lead   `json:"leads"`
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// List keeps leads whose display name or email contains term
// (case-insensitive) and, when status is set, whose status equals it.
func List(leads []store.Lead, term string, status *pipeline.Stage) []store.Lead {
	needle := strings.ToLower(term)
	out := make([]store.Lead, 0, len(leads))
	for _, l := range leads {
		if status != nil && l.Status != *status {
			continue
		}
		if needle != "" && !containsFold(l.DisplayName(), needle) && !containsFold(l.Email, needle) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Board keeps leads whose display name, email or source contains term.
func Board(leads []store.Lead, term string) []store.Lead {
	needle := strings.ToLower(term)
	if needle == "" {
		out := make([]store.Lead, len(leads))
		copy(out, leads)
		return out
	}
	out := make([]store.Lead, 0, len(leads))
	for _, l := range leads {
		if containsFold(l.DisplayName(), needle) || containsFold(l.Email, needle) || containsFold(l.SourceValue(), needle) {
			out = append(out, l)
		}
	}
	return out
}

// Columns buckets leads into one column per stage, in stage order.
// Leads with an unknown status are dropped.
func Columns(leads []store.Lead) []Column {
	stages := pipeline.Stages()
	cols := make([]Column, len(stages))
	for i, st := range stages {
		cols[i] = Column{Stage: st, Title: st.Title(), Leads: []store.Lead{}}
	}
	for _, l := range leads {
		if i := l.Status.Index(); i >= 0 {
			cols[i].Leads = append(cols[i].Leads, l)
		}
	}
	return cols
}
