package rules

import (
	"io"
	"log/slog"
	"time"
)

// Evaluator runs all registered badge and challenge predicates against a
// snapshot and collects the satisfied ids.
type Evaluator struct {
	badges     map[string]Predicate
	challenges map[string]Predicate
	logger     *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used to report failing predicates.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithBadgeRule registers or replaces the predicate for a badge id.
func WithBadgeRule(id string, p Predicate) Option {
	return func(e *Evaluator) { e.badges[id] = p }
}

// WithChallengeRule registers or replaces the predicate for a challenge id.
func WithChallengeRule(id string, p Predicate) Option {
	return func(e *Evaluator) { e.challenges[id] = p }
}

// NewEvaluator creates an evaluator with all built-in rules registered.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		badges:     make(map[string]Predicate, len(badgeRules)),
		challenges: make(map[string]Predicate, len(challengeRules)),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, r := range badgeRules {
		e.badges[r.ID] = r.Predicate
	}
	for _, r := range challengeRules {
		e.challenges[r.ID] = r.Predicate
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvaluateBadges returns the ids of locked badges whose predicate holds, in
// snapshot order. Badges without a rule never qualify.
func (e *Evaluator) EvaluateBadges(snap Snapshot) []string {
	var ids []string
	for _, b := range snap.Badges {
		if b.Unlocked {
			continue
		}
		p, ok := e.badges[b.ID]
		if !ok {
			continue
		}
		if e.eval("badge", b.ID, p, snap) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// EvaluateChallenges returns the ids of open, unexpired challenges whose
// predicate holds at now, in snapshot order.
func (e *Evaluator) EvaluateChallenges(snap Snapshot, now time.Time) []string {
	var ids []string
	for _, c := range snap.Challenges {
		if c.Completed || c.Expired(now) {
			continue
		}
		p, ok := e.challenges[c.ID]
		if !ok {
			continue
		}
		if e.eval("challenge", c.ID, p, snap) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// eval runs one predicate. A panicking predicate counts as unsatisfied so
// it cannot affect any other rule.
func (e *Evaluator) eval(kind, id string, p Predicate, snap Snapshot) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("rule evaluation failed", "kind", kind, "rule", id, "panic", r)
			ok = false
		}
	}()
	return p(snap)
}

// BadgeRule returns the built-in predicate for a badge id.
func BadgeRule(id string) (Predicate, bool) {
	return lookup(badgeRules, id)
}

// ChallengeRule returns the built-in predicate for a challenge id.
func ChallengeRule(id string) (Predicate, bool) {
	return lookup(challengeRules, id)
}

// BadgeRuleIDs lists the badge ids that have built-in rules.
func BadgeRuleIDs() []string {
	return ids(badgeRules)
}

// ChallengeRuleIDs lists the challenge ids that have built-in rules.
func ChallengeRuleIDs() []string {
	return ids(challengeRules)
}

func lookup(table []namedRule, id string) (Predicate, bool) {
	for _, r := range table {
		if r.ID == id {
			return r.Predicate, true
		}
	}
	return nil, false
}

func ids(table []namedRule) []string {
	out := make([]string, len(table))
	for i, r := range table {
		out[i] = r.ID
	}
	return out
}
