package game

import "golang.org/x/exp/rand"

// SeedWindow draws the day below which seeding is still considered.
func SeedWindow(rng *rand.Rand) int {
	return SeedWindowMin + rng.Intn(SeedWindowMax-SeedWindowMin)
}

// Actions returns the legal actions of a player, drawing a fresh seed window for
// this call.
func Actions(gs *GameState, player Player, rng *rand.Rand) []Action {
	return LegalActions(gs, player, SeedWindow(rng))
}

// LegalActions returns all legal actions of a player. Seeds are only considered
// while the player owns fewer than SeedTreeLimit trees and the day is below
// seedWindow. A player short of sun, or without any other option, can only wait.
func LegalActions(gs *GameState, player Player, seedWindow int) []Action {
	if gs.Sun[player] < CompleteCost {
		return []Action{Wait}
	}

	actions := gs.growActions(player)
	actions = append(actions, gs.completeActions(player)...)
	if gs.TreeCount(player) < SeedTreeLimit && gs.Day < seedWindow {
		actions = append(actions, gs.seedActions(player)...)
	}

	if len(actions) == 0 {
		return []Action{Wait}
	}
	return actions
}

// GrowCost is the price of growing a tree of the given size: a base cost for the
// resulting size plus one per tree of that size the player already owns.
func (gs *GameState) GrowCost(player Player, size int) int {
	return growBaseCost[size+1] + gs.Counts[player][size+1]
}

// SeedCost is the number of seeds the player already owns.
func (gs *GameState) SeedCost(player Player) int {
	return gs.Counts[player][0]
}

// actors returns the player's awake trees in cell order.
func (gs *GameState) actors(player Player) []Tree {
	var trees []Tree
	for _, cell := range gs.Trees.Cells() {
		tree := gs.Trees[cell]
		if tree.Owner == player && !tree.Dormant {
			trees = append(trees, tree)
		}
	}
	return trees
}

func (gs *GameState) growActions(player Player) []Action {
	var actions []Action
	for _, tree := range gs.actors(player) {
		if tree.Size < MaxSize && gs.GrowCost(player, tree.Size) <= gs.Sun[player] {
			actions = append(actions, NewGrow(tree.Cell))
		}
	}
	return actions
}

func (gs *GameState) completeActions(player Player) []Action {
	if gs.Sun[player] < CompleteCost {
		return nil
	}
	var actions []Action
	for _, tree := range gs.actors(player) {
		if tree.Size == MaxSize {
			actions = append(actions, NewComplete(tree.Cell))
		}
	}
	return actions
}

func (gs *GameState) seedActions(player Player) []Action {
	if gs.Sun[player] < gs.SeedCost(player) {
		return nil
	}
	var actions []Action
	for _, tree := range gs.actors(player) {
		if tree.Size == 0 {
			continue
		}
		for _, target := range gs.seedTargets(tree) {
			actions = append(actions, NewSeed(tree.Cell, target))
		}
	}
	return actions
}

// seedTargets walks outward from the tree up to its size in hops and collects
// every free usable cell on the way, each once.
func (gs *GameState) seedTargets(tree Tree) []int {
	var targets []int
	visited := map[int]bool{tree.Cell: true}
	frontier := []int{tree.Cell}
	for hop := 0; hop < tree.Size; hop++ {
		var next []int
		for _, cell := range frontier {
			for dir := 0; dir < Directions; dir++ {
				n := gs.Board.Neighbor(cell, dir)
				if n == NoCell || visited[n] {
					continue
				}
				visited[n] = true
				next = append(next, n)
				if gs.Board.Usable(n) && !gs.Trees.Occupied(n) {
					targets = append(targets, n)
				}
			}
		}
		frontier = next
	}
	return targets
}
