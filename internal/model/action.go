package model

import (
	"fmt"
	"strings"
)

// ActionKind is the disposition an action recommends.
type ActionKind string

// Action kinds.
const (
	ActionCompost ActionKind = "compost"
	ActionReuse   ActionKind = "reuse"
	ActionSell    ActionKind = "sell"
	ActionDispose ActionKind = "dispose"
)

// ActionKinds lists every known kind.
var ActionKinds = []ActionKind{ActionCompost, ActionReuse, ActionSell, ActionDispose}

// ParseActionKind resolves a kind case-insensitively.
func ParseActionKind(s string) (ActionKind, error) {
	k := ActionKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown action kind %q", s)
	}
	return k, nil
}

// Valid reports whether k is a known kind.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionCompost, ActionReuse, ActionSell, ActionDispose:
		return true
	}
	return false
}

// Action is a single recommended disposition. Lower priority is preferred.
type Action struct {
	Kind        ActionKind `yaml:"kind" json:"kind"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Priority    int        `yaml:"priority" json:"priority"`
}

// Validate ensures the action has valid data.
func (a *Action) Validate() error {
	if !a.Kind.Valid() {
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("action title is required")
	}
	if a.Priority < 1 {
		return fmt.Errorf("priority must be positive, got %d", a.Priority)
	}
	return nil
}

// RankedAction is an action placed in preference order.
type RankedAction struct {
	Action
	Rank int  `json:"rank"`
	Best bool `json:"best"`
}

// RankedActions is the ordered output of the ranker.
type RankedActions []RankedAction

// Best returns the top-ranked action, or nil if empty.
func (r RankedActions) Best() *RankedAction {
	if len(r) == 0 {
		return nil
	}
	return &r[0]
}

// Actions strips the ranking metadata.
func (r RankedActions) Actions() []Action {
	out := make([]Action, len(r))
	for i, ra := range r {
		out[i] = ra.Action
	}
	return out
}

// Sell returns the first sell action in ranked order, if any.
func (r RankedActions) Sell() (*RankedAction, bool) {
	for i := range r {
		if r[i].Kind == ActionSell {
			return &r[i], true
		}
	}
	return nil, false
}
