package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateBoard(t *testing.T) {
	b := CreateBoard(BoardRadius)

	t.Run("standard board has 37 cells", func(t *testing.T) {
		require.Equal(t, 37, b.Size())
	})

	t.Run("center neighbors spiral from the east", func(t *testing.T) {
		for dir := 0; dir < Directions; dir++ {
			require.Equal(t, dir+1, b.Neighbor(0, dir), "Center neighbor in direction %d", dir)
		}
	})

	t.Run("adjacency is symmetric", func(t *testing.T) {
		for _, cell := range b.Cells {
			for dir, n := range cell.Neighbors {
				if n == NoCell {
					continue
				}
				require.Equal(t, cell.Index, b.Neighbor(n, (dir+3)%Directions),
					"Cell %d should be the opposite neighbor of cell %d", cell.Index, n)
			}
		}
	})

	t.Run("richness decreases by ring", func(t *testing.T) {
		require.Equal(t, 3, b.Richness(0))
		require.Equal(t, 3, b.Richness(6))
		require.Equal(t, 2, b.Richness(7))
		require.Equal(t, 2, b.Richness(18))
		require.Equal(t, 1, b.Richness(19))
		require.Equal(t, 1, b.Richness(36))
	})

	t.Run("eastern line reaches the edge", func(t *testing.T) {
		require.Equal(t, 7, b.Neighbor(1, 0))
		require.Equal(t, 19, b.Neighbor(7, 0))
		require.Equal(t, NoCell, b.Neighbor(19, 0))
	})
}

func TestNewBoard(t *testing.T) {
	t.Run("rejects duplicate cells", func(t *testing.T) {
		_, err := NewBoard([]Cell{
			{Index: 0, Neighbors: [Directions]int{-1, -1, -1, -1, -1, -1}},
			{Index: 0, Neighbors: [Directions]int{-1, -1, -1, -1, -1, -1}},
		})
		require.Error(t, err)
	})

	t.Run("rejects neighbors outside the board", func(t *testing.T) {
		_, err := NewBoard([]Cell{
			{Index: 0, Neighbors: [Directions]int{4, -1, -1, -1, -1, -1}},
		})
		require.Error(t, err)
	})

	t.Run("rejects invalid richness", func(t *testing.T) {
		_, err := NewBoard([]Cell{
			{Index: 0, Richness: 4, Neighbors: [Directions]int{-1, -1, -1, -1, -1, -1}},
		})
		require.Error(t, err)
	})

	t.Run("indexes cells regardless of input order", func(t *testing.T) {
		b, err := NewBoard([]Cell{
			{Index: 1, Richness: 2, Neighbors: [Directions]int{-1, -1, -1, 0, -1, -1}},
			{Index: 0, Richness: 0, Neighbors: [Directions]int{1, -1, -1, -1, -1, -1}},
		})
		require.NoError(t, err)
		require.Equal(t, 2, b.Richness(1))
		require.False(t, b.Usable(0), "Richness 0 cells are unusable")
		require.True(t, b.Usable(1))
		require.False(t, b.Usable(NoCell))
	})
}
