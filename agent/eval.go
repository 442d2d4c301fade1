package agent

import (
	"photosynthesis/game"
	"photosynthesis/searcher"
	"photosynthesis/utils"

	"github.com/rs/zerolog/log"
)

type evaluationAgent struct {
	planner *searcher.Planner
}

// NewEvaluationAgent returns a new agent for actual game play.
func NewEvaluationAgent(planner *searcher.Planner) Agent {
	return evaluationAgent{planner: planner}
}

func (a evaluationAgent) FindAction(state *game.GameState, offered []game.Action) searcher.Decision {
	decision := a.planner.Plan(state)
	if len(offered) > 0 && utils.FindIndex(offered, decision.Action) < 0 {
		log.Warn().Msgf("day %d: %v is not among the %d offered actions", state.Day, decision.Action, len(offered))
	}
	return decision
}
