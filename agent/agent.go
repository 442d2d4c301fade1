package agent

import (
	"photosynthesis/game"
	"photosynthesis/searcher"
)

type Agent interface {
	// FindAction returns the planner's decision for the turn. offered is the
	// referee's list of legal actions and may be empty.
	FindAction(state *game.GameState, offered []game.Action) searcher.Decision
}
