package engine

import (
	"errors"
	"fmt"
	"io"
	"photosynthesis/agent"
	"photosynthesis/communication"
	"photosynthesis/experiments/metrics"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	comm  communication.Communicator
	agent agent.Agent
}

func NewLocalEngine(comm communication.Communicator, agent agent.Agent) *LocalEngine {
	return &LocalEngine{comm: comm, agent: agent}
}

// Run reads the board once, then answers every turn with the agent's decision.
func (e *LocalEngine) Run() ([]metrics.TurnMetric, error) {
	board, err := e.comm.ReadBoard()
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}
	log.Info().Msgf("read board with %d cells", board.Size())

	var turnMetrics []metrics.TurnMetric
	for turn := 1; ; turn++ {
		t, err := e.comm.ReadTurn(board)
		if errors.Is(err, io.EOF) {
			log.Info().Msgf("input closed after %d turns", turn-1)
			return turnMetrics, nil
		}
		if err != nil {
			return turnMetrics, fmt.Errorf("failed to read turn %d: %w", turn, err)
		}

		decision := e.agent.FindAction(t.State, t.Offered)
		turnMetrics = append(turnMetrics, metrics.TurnMetric{
			Turn:         turn,
			Day:          t.State.Day,
			SearchMetric: decision.Metric,
		})

		message := fmt.Sprintf("score: %.2f choices: %d (%d) Rolls: %d Time: %d",
			decision.Score, decision.Choices, len(t.Offered), decision.Rollouts, decision.Elapsed.Milliseconds())
		if err := e.comm.SendAction(decision.Action, message); err != nil {
			return turnMetrics, fmt.Errorf("failed to send action for turn %d: %w", turn, err)
		}
	}
}
