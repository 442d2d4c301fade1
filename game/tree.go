package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Tree is keyed by its cell in a Forest.
type Tree struct {
	Cell    int
	Size    int
	Owner   Player
	Dormant bool
}

func (t Tree) String() string {
	return fmt.Sprintf("%d: owner: %s, dormant: %t, size: %d", t.Cell, t.Owner, t.Dormant, t.Size)
}

// Forest maps a cell index to the tree standing on it.
type Forest map[int]Tree

// Copy returns an independent forest; mutating it never affects the receiver.
func (f Forest) Copy() Forest {
	c := make(Forest, len(f))
	for cell, tree := range f {
		c[cell] = tree
	}
	return c
}

// Occupied reports whether a tree stands on the cell.
func (f Forest) Occupied(cell int) bool {
	_, ok := f[cell]
	return ok
}

// Cells returns the occupied cells in ascending order so iteration is reproducible
// under a seeded generator.
func (f Forest) Cells() []int {
	cells := make([]int, 0, len(f))
	for cell := range f {
		cells = append(cells, cell)
	}
	slices.Sort(cells)
	return cells
}

// Counts tallies trees per size for each player.
func (f Forest) Counts() [2][MaxSize + 1]int {
	var counts [2][MaxSize + 1]int
	for _, tree := range f {
		counts[tree.Owner][tree.Size]++
	}
	return counts
}

// mustGet returns the tree on a cell that has to be occupied by invariant.
func (f Forest) mustGet(cell int) Tree {
	tree, ok := f[cell]
	if !ok {
		panic(fmt.Sprintf("no tree on cell %d", cell))
	}
	return tree
}
