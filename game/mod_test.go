package game

import "testing"

// newTestState builds a state on the standard board with the given trees.
func newTestState(t *testing.T, day int, sun int, trees ...Tree) *GameState {
	t.Helper()
	forest := Forest{}
	for _, tree := range trees {
		forest[tree.Cell] = tree
	}
	gs := NewGameState(CreateBoard(BoardRadius), day, 20, forest)
	gs.Sun = [2]int{sun, sun}
	return gs
}

func containsAction(actions []Action, a Action) bool {
	for _, b := range actions {
		if a == b {
			return true
		}
	}
	return false
}
