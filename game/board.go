package game

import "fmt"

// Cell is a single hexagon of the board.
type Cell struct {
	Index     int             // Unique identifier for the cell
	Richness  int             // 0 if the cell is unusable, 1-3 for usable cells
	Neighbors [Directions]int // Neighbor per direction, NoCell at the edge
}

// Board is the static topology of the game. It is built once and never mutated.
type Board struct {
	Cells []Cell // Indexed by cell index
}

// NewBoard validates the cells and returns a board indexed by cell index.
func NewBoard(cells []Cell) (*Board, error) {
	b := &Board{Cells: make([]Cell, len(cells))}
	seen := make([]bool, len(cells))
	for _, cell := range cells {
		if cell.Index < 0 || cell.Index >= len(cells) {
			return nil, fmt.Errorf("cell index %d out of range [0,%d)", cell.Index, len(cells))
		}
		if seen[cell.Index] {
			return nil, fmt.Errorf("duplicate cell index %d", cell.Index)
		}
		if cell.Richness < 0 || cell.Richness > MaxRichness {
			return nil, fmt.Errorf("cell %d: richness %d out of range", cell.Index, cell.Richness)
		}
		for dir, n := range cell.Neighbors {
			if n != NoCell && (n < 0 || n >= len(cells)) {
				return nil, fmt.Errorf("cell %d: neighbor %d in direction %d out of range", cell.Index, n, dir)
			}
		}
		seen[cell.Index] = true
		b.Cells[cell.Index] = cell
	}
	return b, nil
}

// Size returns the number of cells.
func (b *Board) Size() int {
	return len(b.Cells)
}

// Richness returns the soil quality of the cell, 0 when unusable.
func (b *Board) Richness(cell int) int {
	return b.Cells[cell].Richness
}

// Neighbor returns the adjacent cell in the given direction, or NoCell.
func (b *Board) Neighbor(cell, dir int) int {
	return b.Cells[cell].Neighbors[dir]
}

// Usable reports whether a tree can ever stand on the cell.
func (b *Board) Usable(cell int) bool {
	return cell != NoCell && b.Cells[cell].Richness > 0
}

// cube coordinates of a hexagon, x+y+z == 0
type cube struct{ x, y, z int }

func (c cube) add(o cube, times int) cube {
	return cube{c.x + o.x*times, c.y + o.y*times, c.z + o.z*times}
}

// Unit steps per direction, counter-clockwise from the east. The opposite of
// direction d is (d+3)%6.
var cubeDirections = [Directions]cube{
	{1, -1, 0}, {1, 0, -1}, {0, 1, -1}, {-1, 1, 0}, {-1, 0, 1}, {0, -1, 1},
}

// CreateBoard builds the standard hexagonal board of the given radius: cell 0 in
// the center, then every ring spiralling outward. Richness is 3 for the center and
// first ring, 2 for the second ring and 1 beyond.
func CreateBoard(radius int) *Board {
	coords := []cube{{}}
	rings := []int{0}
	for r := 1; r <= radius; r++ {
		c := cube{}.add(cubeDirections[0], r)
		for side := 0; side < Directions; side++ {
			step := cubeDirections[(side+2)%Directions]
			for i := 0; i < r; i++ {
				coords = append(coords, c)
				rings = append(rings, r)
				c = c.add(step, 1)
			}
		}
	}

	index := make(map[cube]int, len(coords))
	for i, c := range coords {
		index[c] = i
	}

	cells := make([]Cell, len(coords))
	for i, c := range coords {
		cells[i] = Cell{Index: i, Richness: ringRichness(rings[i])}
		for dir := range cubeDirections {
			n, ok := index[c.add(cubeDirections[dir], 1)]
			if !ok {
				n = NoCell
			}
			cells[i].Neighbors[dir] = n
		}
	}

	b, err := NewBoard(cells)
	if err != nil {
		panic(err)
	}
	return b
}

func ringRichness(ring int) int {
	switch ring {
	case 0, 1:
		return 3
	case 2:
		return 2
	default:
		return 1
	}
}
