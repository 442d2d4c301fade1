package game

// Shaping weights of ScoreAction
const (
	harvestDay     = 15 // Nutrients only count for completes after this day
	lateGameDay    = 20
	lateGameBonus  = 10
	growSeedBonus  = 10
	growDayBonus   = 5
	crowdedPenalty = 2
	lastCell       = 36
)

// ScoreAction estimates the long-term value of an action the primary player is
// about to take. It is evaluated on the state before the action is applied and is
// added to the primary score as a shaping reward.
func ScoreAction(gs *GameState, action Action) int {
	switch action.Type {
	case CompleteAction:
		tree := gs.Trees.mustGet(action.Target)
		score := -shadowValue(gs, tree, gs.Day+1, false) - shadowValue(gs, tree, gs.Day+2, false)
		if gs.Day > harvestDay {
			score += gs.Nutrients + richnessBonus(gs.Board.Richness(tree.Cell))
		}
		return score + gs.Day/lateGameDay*lateGameBonus

	case GrowAction:
		tree := gs.Trees.mustGet(action.Target)
		score := shadowValue(gs, tree, gs.Day+1, true) + shadowValue(gs, tree, gs.Day+2, true)
		if tree.Size == 0 {
			score += growSeedBonus
		}
		return score + gs.Day/LastDay*(growDayBonus+tree.Size+1)

	case SeedAction:
		crowded := 0
		for dir := 0; dir < Directions; dir++ {
			n := gs.Board.Neighbor(action.Target, dir)
			if n != NoCell && (!gs.Board.Usable(n) || gs.Trees.Occupied(n)) {
				crowded++
			}
		}
		return -crowdedPenalty*crowded + (lastCell-action.Target)/10 + gs.Board.Richness(action.Target)
	}
	return 0
}

func richnessBonus(richness int) int {
	switch richness {
	case 2:
		return 2
	case 3:
		return 4
	default:
		return 0
	}
}

// shadowValue sums the sizes of trees in the shadow the tree casts on the given day,
// opponent trees counting positive and own trees negative. The shadow spans one
// cell more than the tree size; with frontierOnly only that farthest cell counts,
// which is what a grow adds.
func shadowValue(gs *GameState, tree Tree, day int, frontierOnly bool) int {
	dir := day % Directions
	cell := tree.Cell
	value := 0
	for hop := 0; hop <= tree.Size; hop++ {
		cell = gs.Board.Neighbor(cell, dir)
		if cell == NoCell {
			break
		}
		if frontierOnly && hop != tree.Size {
			continue
		}
		if other, ok := gs.Trees[cell]; ok {
			if other.Owner == Me {
				value -= other.Size
			} else {
				value += other.Size
			}
		}
	}
	return value
}
