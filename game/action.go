package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	NoneAction ActionType = iota // Placeholder, ignored by Apply
	WaitAction
	GrowAction
	SeedAction
	CompleteAction
)

var verbs = map[ActionType]string{
	WaitAction:     "WAIT",
	GrowAction:     "GROW",
	SeedAction:     "SEED",
	CompleteAction: "COMPLETE",
}

func (t ActionType) String() string {
	if verb, ok := verbs[t]; ok {
		return verb
	}
	return "NULL"
}

// Action is a comparable value usable as a map key. Grow and Complete use Target,
// Seed uses both Origin and Target.
type Action struct {
	Type   ActionType
	Origin int
	Target int
}

// Wait is the action that ends a player's day.
var Wait = Action{Type: WaitAction}

func NewGrow(cell int) Action {
	return Action{Type: GrowAction, Target: cell}
}

func NewComplete(cell int) Action {
	return Action{Type: CompleteAction, Target: cell}
}

func NewSeed(origin, target int) Action {
	return Action{Type: SeedAction, Origin: origin, Target: target}
}

// String returns the canonical protocol form of the action.
func (a Action) String() string {
	switch a.Type {
	case GrowAction, CompleteAction:
		return fmt.Sprintf("%s %d", a.Type, a.Target)
	case SeedAction:
		return fmt.Sprintf("%s %d %d", a.Type, a.Origin, a.Target)
	default:
		return a.Type.String()
	}
}

// CompareActions orders actions by their canonical form.
func CompareActions(a, b Action) int {
	return strings.Compare(a.String(), b.String())
}

var ErrUnknownVerb = errors.New("unknown action verb")

// ParseAction reads an action in its canonical protocol form.
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action: %w", ErrUnknownVerb)
	}

	var t ActionType
	for candidate, verb := range verbs {
		if fields[0] == verb {
			t = candidate
		}
	}
	if t == NoneAction {
		if hint := closestVerb(fields[0]); hint != "" {
			return Action{}, fmt.Errorf("%q (did you mean %s?): %w", s, hint, ErrUnknownVerb)
		}
		return Action{}, fmt.Errorf("%q: %w", s, ErrUnknownVerb)
	}

	args := make([]int, 0, 2)
	for _, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Action{}, fmt.Errorf("action %q: %w", s, err)
		}
		args = append(args, n)
	}

	want := map[ActionType]int{WaitAction: 0, GrowAction: 1, CompleteAction: 1, SeedAction: 2}[t]
	if len(args) != want {
		return Action{}, fmt.Errorf("action %q: expected %d arguments, got %d", s, want, len(args))
	}

	switch t {
	case GrowAction:
		return NewGrow(args[0]), nil
	case CompleteAction:
		return NewComplete(args[0]), nil
	case SeedAction:
		return NewSeed(args[0], args[1]), nil
	default:
		return Wait, nil
	}
}

// closestVerb suggests a verb within a small edit distance of the input.
func closestVerb(input string) string {
	input = strings.ToUpper(input)
	best, bestDist := "", 3
	for _, t := range []ActionType{WaitAction, GrowAction, SeedAction, CompleteAction} {
		if dist := levenshtein.ComputeDistance(input, verbs[t]); dist < bestDist {
			best, bestDist = verbs[t], dist
		}
	}
	return best
}
