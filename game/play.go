package game

import "fmt"

// Cost returns the sun the player pays for the action in the current state.
func Cost(gs *GameState, action Action, player Player) int {
	switch action.Type {
	case CompleteAction:
		return CompleteCost
	case SeedAction:
		return gs.SeedCost(player)
	case GrowAction:
		tree := gs.Trees.mustGet(action.Target)
		if tree.Size >= MaxSize {
			panic(fmt.Sprintf("cannot grow tree on cell %d beyond size %d", tree.Cell, MaxSize))
		}
		return gs.GrowCost(player, tree.Size)
	default:
		return 0
	}
}

// CollectSun pays the player's income for the current day if it has not been
// collected yet and returns the amount paid. Primary income is also banked into
// score before BankingDayLimit.
func CollectSun(gs *GameState, player Player) int {
	if gs.LastDay[player] == gs.Day {
		return 0
	}
	gs.LastDay[player] = gs.Day

	income := SunIncome(gs.Board, gs.Trees, player, gs.Day)
	gs.Sun[player] += income
	if player == Me && gs.Day < BankingDayLimit {
		gs.Score[Me] += income
	}
	return income
}

// Apply plays the action for the player, mutating the state in place.
func Apply(gs *GameState, action Action, player Player) {
	gs.Sun[player] -= Cost(gs, action, player)

	switch action.Type {
	case GrowAction:
		tree := gs.Trees.mustGet(action.Target)
		gs.Counts[player][tree.Size]--
		tree.Size++
		gs.Counts[player][tree.Size]++
		tree.Dormant = true
		gs.Trees[tree.Cell] = tree

	case SeedAction:
		gs.Trees[action.Target] = Tree{Cell: action.Target, Size: 0, Owner: player, Dormant: true}
		origin := gs.Trees.mustGet(action.Origin)
		origin.Dormant = true
		gs.Trees[origin.Cell] = origin
		gs.Counts[player][0]++

	case CompleteAction:
		tree := gs.Trees.mustGet(action.Target)
		gs.Counts[player][tree.Size]--
		delete(gs.Trees, tree.Cell)
		gs.Nutrients = max(gs.Nutrients-1, 0)

	case WaitAction:
		gs.Waiting[player] = true
		if gs.Waiting[Me] && gs.Waiting[Opponent] {
			gs.nextDay()
		}
	}
}

// nextDay starts a new day and wakes every tree.
func (gs *GameState) nextDay() {
	gs.Day++
	for cell, tree := range gs.Trees {
		tree.Dormant = false
		gs.Trees[cell] = tree
	}
}
