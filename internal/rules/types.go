// Package rules evaluates badge and daily-challenge predicates against a
// progress snapshot. Every predicate is pure and independent; the evaluator
// only reports which ids are satisfied and never mutates state.
package rules

import (
	"github.com/blackwell-systems/gameverse/internal/model"
)

// Snapshot is a read-only view of the progress document.
type Snapshot = model.GameData

// Predicate decides whether a single badge or challenge is satisfied.
type Predicate func(snap Snapshot) bool

// Comparator is the relation a Threshold checks.
type Comparator int

const (
	AtLeast Comparator = iota
	AtMost
	Equal
)

// WorstValue stands in for an unrecorded personal best under AtMost and
// Equal comparisons, so that "best time <= 300" is false until a time exists.
const WorstValue = 1e9

// Threshold is a declarative comparison of one stat field, optionally
// combined with a second comparison that must also hold.
type Threshold struct {
	Field string
	Cmp   Comparator
	Value float64
	And   *Threshold
}

// Eval applies the threshold to a game's statistics. A nil record behaves
// like a record with nothing set.
func (t Threshold) Eval(s model.Stats) bool {
	v := t.resolve(s)
	var ok bool
	switch t.Cmp {
	case AtLeast:
		ok = v >= t.Value
	case AtMost:
		ok = v <= t.Value
	case Equal:
		ok = v == t.Value
	}
	if !ok {
		return false
	}
	if t.And != nil {
		return t.And.Eval(s)
	}
	return true
}

// resolve returns the field value, substituting the neutral value when the
// field is absent. Best-fields treat zero as absent.
func (t Threshold) resolve(s model.Stats) float64 {
	v, ok := s.Get(t.Field)
	if model.IsBestField(t.Field) && (!ok || v == 0) {
		if t.Cmp == AtLeast {
			return 0
		}
		return WorstValue
	}
	if !ok {
		return 0
	}
	return v
}

func atLeast(field string, v float64) Threshold {
	return Threshold{Field: field, Cmp: AtLeast, Value: v}
}

func atMost(field string, v float64) Threshold {
	return Threshold{Field: field, Cmp: AtMost, Value: v}
}

func equal(field string, v float64) Threshold {
	return Threshold{Field: field, Cmp: Equal, Value: v}
}

func both(a, b Threshold) Threshold {
	a.And = &b
	return a
}

// onGame lifts a threshold over one game's record into a snapshot predicate.
func onGame(gameID string, t Threshold) Predicate {
	return func(snap Snapshot) bool {
		return t.Eval(snap.GameProgress[gameID])
	}
}

// namedRule pairs an id with its predicate; tables are kept as ordered
// slices so they can be listed and tested entry by entry.
type namedRule struct {
	ID        string
	Predicate Predicate
}
