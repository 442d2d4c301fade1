package searcher

import (
	"fmt"
	"photosynthesis/experiments/metrics"
	"photosynthesis/game"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	DefaultDuration = 95 * time.Millisecond
	DefaultHorizon  = 10
)

// SeedWindowMode controls how often the random seeding cutoff day is drawn.
type SeedWindowMode int

const (
	PerPly SeedWindowMode = iota
	PerRollout
)

func (m SeedWindowMode) String() string {
	if m == PerRollout {
		return "per_rollout"
	}
	return "per_ply"
}

func ParseSeedWindowMode(s string) (SeedWindowMode, error) {
	switch s {
	case "", "per_ply":
		return PerPly, nil
	case "per_rollout":
		return PerRollout, nil
	}
	return PerPly, fmt.Errorf("unknown seed window mode %q", s)
}

type Option func(p *Planner)

// Planner picks an action by running randomized rollouts from the current
// state and ranking first actions by their mean primary score.
type Planner struct {
	goroutines int
	duration   time.Duration
	rollouts   int
	horizon    int
	seedWindow SeedWindowMode
	rng        *rand.Rand
	metrics    metrics.Collector
}

// Decision is the outcome of one planning call.
type Decision struct {
	Action   game.Action
	Score    float64
	Choices  int
	Rollouts int
	Elapsed  time.Duration
	Metric   metrics.SearchMetric
}

func (d Decision) String() string {
	return fmt.Sprintf("%v score: %.2f choices: %d Rolls: %d Time: %d",
		d.Action, d.Score, d.Choices, d.Rollouts, d.Elapsed.Milliseconds())
}

func WithDuration(duration time.Duration) Option {
	return func(p *Planner) {
		if duration > 0 {
			p.duration = duration
		}
	}
}

// WithRollouts fixes the number of rollouts and disables the time budget.
func WithRollouts(rollouts int) Option {
	return func(p *Planner) {
		if rollouts > 0 {
			p.rollouts = rollouts
			p.duration = 0
		}
	}
}

func WithHorizon(days int) Option {
	return func(p *Planner) {
		if days > 0 {
			p.horizon = days
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(p *Planner) {
		if goroutines > 0 {
			p.goroutines = goroutines
		}
	}
}

func WithSeedWindow(mode SeedWindowMode) Option {
	return func(p *Planner) {
		p.seedWindow = mode
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(p *Planner) {
		if rng != nil {
			p.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(p *Planner) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(p *Planner) {
		p.metrics = metrics.NewCollector()
	}
}

func NewPlanner(options ...Option) *Planner {
	p := &Planner{ // Default values
		goroutines: 1,
		duration:   DefaultDuration,
		horizon:    DefaultHorizon,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(p)
	}
	if p.rollouts <= 0 && p.duration <= 0 {
		panic("Must specify rollouts or duration")
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return p
}

// Plan never mutates state.
func (p *Planner) Plan(state *game.GameState) Decision {
	start := time.Now()
	p.metrics.Start(p.goroutines, p.horizon)
	res := p.search(state, start)
	metric := p.metrics.Complete(len(res.outcomes))

	decision := Decision{
		Action:   game.Wait,
		Choices:  len(res.outcomes),
		Rollouts: res.rollouts(),
		Metric:   metric,
	}
	if best, ok := res.best(); ok {
		decision.Action = best.Action
		decision.Score = best.Mean
	} else {
		log.Warn().Msgf("no rollouts completed on day %d, falling back to %v", state.Day, game.Wait)
	}
	decision.Elapsed = time.Since(start)
	log.Debug().Msgf("%v", decision)
	return decision
}

func (p *Planner) search(state *game.GameState, start time.Time) *results {
	var counter atomic.Int64
	// budget hands out rollout numbers to one worker. With a fixed rollout
	// count worker i plays i, i+g, i+2g, ... so the split does not depend
	// on scheduling. Time boxed workers share a counter and are not
	// reproducible across runs.
	budget := func(worker int) func() (int, bool) {
		if p.rollouts > 0 {
			n := worker - p.goroutines
			return func() (int, bool) {
				n += p.goroutines
				return n, n < p.rollouts
			}
		}
		return func() (int, bool) {
			if time.Since(start) >= p.duration {
				return 0, false
			}
			return int(counter.Add(1)) - 1, true
		}
	}

	if p.goroutines <= 1 {
		return p.work(state, p.rng, budget(0))
	}

	// Each worker owns a generator derived from the planner's.
	rngs := make([]*rand.Rand, p.goroutines)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(p.rng.Uint64()))
	}
	partials := make([]*results, p.goroutines)
	var wg sync.WaitGroup
	for i := 0; i < p.goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			partials[i] = p.work(state, rngs[i], budget(i))
		}(i)
	}
	wg.Wait()

	res := newResults()
	for _, partial := range partials {
		res.merge(partial)
	}
	return res
}

func (p *Planner) work(state *game.GameState, rng *rand.Rand, next func() (int, bool)) *results {
	res := newResults()
	for {
		n, ok := next()
		if !ok {
			return res
		}
		first, score, full := p.rollout(state, rng, n)
		res.record(first, score)
		p.metrics.AddRollout()
		if full {
			p.metrics.AddFullPlayout()
		}
	}
}
