// Package pipeline defines the lead pipeline stages and their display order.
//
// Any stage may move to any other stage; closed stages are not terminal.
package pipeline

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// Stage is a lead status. Only the six values in Stages are valid.
type Stage string

const (
	StageNew        Stage = "new"
	StageContacted  Stage = "contacted"
	StageQualified  Stage = "qualified"
	StageProposal   Stage = "proposal"
	StageClosedWon  Stage = "closed_won"
	StageClosedLost Stage = "closed_lost"
)

var ErrInvalidStage = errors.New("invalid pipeline stage")

var stages = [...]Stage{
	StageNew,
	StageContacted,
	StageQualified,
	StageProposal,
	StageClosedWon,
	StageClosedLost,
}

var titles = map[Stage]string{
	StageNew:        "New",
	StageContacted:  "Contacted",
	StageQualified:  "Qualified",
	StageProposal:   "Proposal",
	StageClosedWon:  "Closed Won",
	StageClosedLost: "Closed Lost",
}

// Stages returns the stages in board order. The slice is a copy.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages[:])
	return out
}

// Parse converts a literal token into a Stage.
func Parse(s string) (Stage, error) {
	st := Stage(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStage, s)
	}
	return st, nil
}

// Valid reports whether s is one of the six stages.
func (s Stage) Valid() bool {
	_, ok := titles[s]
	return ok
}

// Index is the board column position of s, or -1.
func (s Stage) Index() int {
	for i, st := range stages {
		if st == s {
			return i
		}
	}
	return -1
}

// Title is the column heading shown for s.
func (s Stage) Title() string {
	if t, ok := titles[s]; ok {
		return t
	}
	return strings.ReplaceAll(string(s), "_", " ")
}

func (s Stage) String() string {
	return string(s)
}

// CanTransition reports whether a lead may move from one stage to another.
// Every valid pair is allowed, including moving out of a closed stage.
func CanTransition(from, to Stage) bool {
	return from.Valid() && to.Valid()
}

// Value implements driver.Valuer so stages bind as plain text.
func (s Stage) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStage, string(s))
	}
	return string(s), nil
}

// Scan implements sql.Scanner, rejecting anything outside the stage set.
func (s *Stage) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported type for Stage: %T", value)
	}
	st, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// UnmarshalText rejects unknown tokens when decoding JSON or form values.
func (s *Stage) UnmarshalText(text []byte) error {
	st, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// MarshalText emits the literal token.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s), nil
}
