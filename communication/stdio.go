package communication

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"photosynthesis/game"
	"strconv"
	"strings"
)

var ErrNegativeCount = errors.New("negative count")

// StdioCommunicator speaks the line based referee protocol over a reader and a writer.
type StdioCommunicator struct {
	in   *bufio.Scanner
	out  io.Writer
	line int
}

func NewStdioCommunicator(r io.Reader, w io.Writer) *StdioCommunicator {
	return &StdioCommunicator{in: bufio.NewScanner(r), out: w}
}

func (c *StdioCommunicator) ReadBoard() (*game.Board, error) {
	n, err := c.readInt()
	if err != nil {
		return nil, fmt.Errorf("reading number of cells: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("line %d: %w: %d cells", c.line, ErrNegativeCount, n)
	}

	cells := make([]game.Cell, n)
	for i := range cells {
		fields, err := c.readInts(2 + game.Directions)
		if err != nil {
			return nil, fmt.Errorf("reading cell %d: %w", i, err)
		}
		cell := game.Cell{Index: fields[0], Richness: fields[1]}
		copy(cell.Neighbors[:], fields[2:])
		cells[i] = cell
	}
	return game.NewBoard(cells)
}

func (c *StdioCommunicator) ReadTurn(board *game.Board) (*Turn, error) {
	day, err := c.readInt()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading day: %w", err)
	}
	nutrients, err := c.readInt()
	if err != nil {
		return nil, fmt.Errorf("reading nutrients: %w", err)
	}
	mine, err := c.readInts(2)
	if err != nil {
		return nil, fmt.Errorf("reading sun and score: %w", err)
	}
	theirs, err := c.readInts(3)
	if err != nil {
		return nil, fmt.Errorf("reading opponent sun, score and waiting: %w", err)
	}

	numTrees, err := c.readInt()
	if err != nil {
		return nil, fmt.Errorf("reading number of trees: %w", err)
	}
	if numTrees < 0 {
		return nil, fmt.Errorf("line %d: %w: %d trees", c.line, ErrNegativeCount, numTrees)
	}
	forest := game.Forest{}
	for i := 0; i < numTrees; i++ {
		fields, err := c.readInts(4)
		if err != nil {
			return nil, fmt.Errorf("reading tree %d: %w", i, err)
		}
		tree := game.Tree{Cell: fields[0], Size: fields[1], Owner: game.Opponent, Dormant: fields[3] == 1}
		if fields[2] == 1 {
			tree.Owner = game.Me
		}
		if tree.Cell < 0 || tree.Cell >= board.Size() {
			return nil, fmt.Errorf("tree %d on cell %d outside the board", i, tree.Cell)
		}
		if tree.Size < 0 || tree.Size > game.MaxSize {
			return nil, fmt.Errorf("tree %d has size %d", i, tree.Size)
		}
		if forest.Occupied(tree.Cell) {
			return nil, fmt.Errorf("tree %d: cell %d already holds a tree", i, tree.Cell)
		}
		forest[tree.Cell] = tree
	}

	numActions, err := c.readInt()
	if err != nil {
		return nil, fmt.Errorf("reading number of actions: %w", err)
	}
	if numActions < 0 {
		return nil, fmt.Errorf("line %d: %w: %d actions", c.line, ErrNegativeCount, numActions)
	}
	offered := make([]game.Action, 0, numActions)
	for i := 0; i < numActions; i++ {
		text, err := c.readLine()
		if err != nil {
			return nil, fmt.Errorf("reading action %d: %w", i, err)
		}
		action, err := game.ParseAction(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", c.line, err)
		}
		offered = append(offered, action)
	}

	state := game.NewGameState(board, day, nutrients, forest)
	state.Sun = [2]int{mine[0], theirs[0]}
	state.Score = [2]int{mine[1], theirs[1]}
	state.Waiting[game.Opponent] = theirs[2] == 1
	return &Turn{State: state, Offered: offered}, nil
}

func (c *StdioCommunicator) SendAction(action game.Action, message string) error {
	var err error
	if message == "" {
		_, err = fmt.Fprintln(c.out, action)
	} else {
		_, err = fmt.Fprintf(c.out, "%v %s\n", action, message)
	}
	return err
}

func (c *StdioCommunicator) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	c.line++
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *StdioCommunicator) readInt() (int, error) {
	fields, err := c.readInts(1)
	if err != nil {
		return 0, err
	}
	return fields[0], nil
}

func (c *StdioCommunicator) readInts(n int) ([]int, error) {
	text, err := c.readLine()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, fmt.Errorf("line %d: expected %d fields, got %d in %q", c.line, n, len(fields), text)
	}
	values := make([]int, n)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", c.line, err)
		}
		values[i] = v
	}
	return values, nil
}
