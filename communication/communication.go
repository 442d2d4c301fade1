package communication

import "photosynthesis/game"

// Turn is everything the referee sends for one turn.
type Turn struct {
	State   *game.GameState
	Offered []game.Action // Actions the referee reports as legal
}

// Communicator is an interface that abstracts the communication mechanism.
type Communicator interface {
	// ReadBoard reads the static board sent once at the start of the game.
	ReadBoard() (*game.Board, error)
	// ReadTurn reads one turn. It returns io.EOF when the referee closes the stream.
	ReadTurn(board *game.Board) (*Turn, error)
	// SendAction writes the chosen action followed by a diagnostic message.
	SendAction(action game.Action, message string) error
}
