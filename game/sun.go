package game

// SunIncome returns the sun a player collects at the start of the given day. Each
// tree of size > 0 yields its size unless a tree within ShadowReach cells towards the
// sun is tall enough to reach it and at least as tall as itself.
func SunIncome(b *Board, trees Forest, player Player, day int) int {
	towardsSun := (day + 3) % Directions
	income := 0
	for _, tree := range trees {
		if tree.Owner != player || tree.Size == 0 {
			continue
		}
		if !shaded(b, trees, tree, towardsSun) {
			income += tree.Size
		}
	}
	return income
}

func shaded(b *Board, trees Forest, tree Tree, towardsSun int) bool {
	cell := tree.Cell
	for hop := 0; hop < ShadowReach; hop++ {
		cell = b.Neighbor(cell, towardsSun)
		if cell == NoCell {
			return false
		}
		other, ok := trees[cell]
		if ok && other.Size > hop && other.Size >= tree.Size {
			return true
		}
	}
	return false
}
