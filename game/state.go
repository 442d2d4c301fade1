package game

import "fmt"

// GameState is the dynamic state of the game: everything except the board, which is static.
type GameState struct {
	Board     *Board              // Reference to the static board
	Trees     Forest              // Trees per cell
	Day       int                 // Current day, the game ends at LastDay
	Nutrients int                 // Base value of the next Complete, shared by both players
	Sun       [2]int              // Sun balance per player
	Score     [2]int              // Score per player
	Waiting   [2]bool             // Whether a player has waited this cycle
	Counts    [2][MaxSize + 1]int // Trees per size per player, cached from Trees
	LastDay   [2]int              // Last day whose sun income was collected per player
}

// NewGameState initializes a state on the board for the given day. Income for that
// day is considered already collected.
func NewGameState(b *Board, day, nutrients int, trees Forest) *GameState {
	if trees == nil {
		trees = Forest{}
	}
	return &GameState{
		Board:     b,
		Trees:     trees,
		Day:       day,
		Nutrients: nutrients,
		Counts:    trees.Counts(),
		LastDay:   [2]int{day, day},
	}
}

// Copy returns a deep copy of the state. The board is shared since it is immutable.
func (gs *GameState) Copy() *GameState {
	c := *gs
	c.Trees = gs.Trees.Copy()
	return &c
}

// TreeCount returns how many trees a player owns.
func (gs *GameState) TreeCount(player Player) int {
	total := 0
	for _, n := range gs.Counts[player] {
		total += n
	}
	return total
}

// Over reports the end-of-game condition: last day reached with both players waiting.
func (gs *GameState) Over() bool {
	return gs.Day >= LastDay && gs.Waiting[Me] && gs.Waiting[Opponent]
}

func (gs *GameState) String() string {
	return fmt.Sprintf("day: %d, sun: %d, nutrients: %d, score: %d", gs.Day, gs.Sun[Me], gs.Nutrients, gs.Score[Me])
}
