package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// On day 3 the sun lies in direction 0: cell 1 looks towards 7 then 19.
const eastDay = 3

func TestSunIncome(t *testing.T) {
	t.Run("unshaded tree yields its size", func(t *testing.T) {
		for size := 1; size <= MaxSize; size++ {
			gs := newTestState(t, eastDay, 0, Tree{Cell: 1, Size: size, Owner: Me})
			require.Equal(t, size, SunIncome(gs.Board, gs.Trees, Me, eastDay))
		}
	})

	t.Run("seeds yield nothing", func(t *testing.T) {
		gs := newTestState(t, eastDay, 0, Tree{Cell: 1, Size: 0, Owner: Me})
		require.Zero(t, SunIncome(gs.Board, gs.Trees, Me, eastDay))
	})

	t.Run("adjacent equal tree shades fully", func(t *testing.T) {
		gs := newTestState(t, eastDay, 0,
			Tree{Cell: 1, Size: 3, Owner: Me},
			Tree{Cell: 7, Size: 3, Owner: Opponent},
		)
		require.Zero(t, SunIncome(gs.Board, gs.Trees, Me, eastDay))
		require.Equal(t, 3, SunIncome(gs.Board, gs.Trees, Opponent, eastDay),
			"Cell 7 looks towards 19 which is empty")
	})

	t.Run("shorter adjacent tree does not shade", func(t *testing.T) {
		gs := newTestState(t, eastDay, 0,
			Tree{Cell: 1, Size: 3, Owner: Me},
			Tree{Cell: 7, Size: 2, Owner: Me},
		)
		require.Equal(t, 3+2, SunIncome(gs.Board, gs.Trees, Me, eastDay))
	})

	t.Run("distant tree must reach the cell", func(t *testing.T) {
		gs := newTestState(t, eastDay, 0,
			Tree{Cell: 1, Size: 2, Owner: Me},
			Tree{Cell: 19, Size: 1, Owner: Opponent},
		)
		require.Equal(t, 2, SunIncome(gs.Board, gs.Trees, Me, eastDay), "Size 1 does not reach two cells")

		gs.Trees[19] = Tree{Cell: 19, Size: 2, Owner: Opponent}
		require.Zero(t, SunIncome(gs.Board, gs.Trees, Me, eastDay), "Size 2 reaches two cells")
	})

	t.Run("sun direction follows the day", func(t *testing.T) {
		gs := newTestState(t, 0, 0,
			Tree{Cell: 1, Size: 3, Owner: Me},
			Tree{Cell: 7, Size: 3, Owner: Opponent},
		)
		require.Equal(t, 3, SunIncome(gs.Board, gs.Trees, Me, eastDay+1))
		require.Zero(t, SunIncome(gs.Board, gs.Trees, Me, eastDay+Directions))
	})
}
