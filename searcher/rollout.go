package searcher

import (
	"photosynthesis/game"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// rollout plays one randomized continuation on a copy of base. The first
// ply sweeps the sorted candidates by rollout number n; later plies are
// uniformly random. It returns the first action, the primary player's
// score where the rollout stopped and whether it reached the end of the game.
func (p *Planner) rollout(base *game.GameState, rng *rand.Rand, n int) (game.Action, int, bool) {
	gs := base.Copy()
	horizon := min(game.LastDay, base.Day+p.horizon)
	window := 0
	if p.seedWindow == PerRollout {
		window = game.SeedWindow(rng)
	}

	player := game.Me
	first := p.ply(gs, player, rng, window, func(actions []game.Action) game.Action {
		sorted := slices.Clone(actions)
		slices.SortFunc(sorted, game.CompareActions)
		return sorted[n%len(sorted)]
	})

	for gs.Day < horizon {
		player = player.Other()
		p.ply(gs, player, rng, window, func(actions []game.Action) game.Action {
			return actions[rng.Intn(len(actions))]
		})
	}

	full := false
	if gs.Over() {
		gs.Score[game.Me] += gs.Sun[game.Me] / 3
		full = true
	}
	return first, gs.Score[game.Me], full
}

// ply collects income for player, picks one of its legal actions, scores it
// when player is the primary and applies it.
func (p *Planner) ply(gs *game.GameState, player game.Player, rng *rand.Rand, window int,
	pick func([]game.Action) game.Action) game.Action {
	game.CollectSun(gs, player)

	var actions []game.Action
	if p.seedWindow == PerRollout {
		actions = game.LegalActions(gs, player, window)
	} else {
		actions = game.Actions(gs, player, rng)
	}
	action := pick(actions)
	if player == game.Me {
		gs.Score[game.Me] += game.ScoreAction(gs, action)
	}
	game.Apply(gs, action, player)
	return action
}
