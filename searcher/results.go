package searcher

import "photosynthesis/game"

// Outcome is the running mean of rollout scores for one first action.
type Outcome struct {
	Action game.Action
	Count  int
	Mean   float64
}

// results keeps outcomes in first-seen order so that ties resolve to the
// action that was sampled first.
type results struct {
	index    map[game.Action]int
	outcomes []Outcome
}

func newResults() *results {
	return &results{index: make(map[game.Action]int)}
}

func (r *results) record(action game.Action, score int) {
	i, ok := r.index[action]
	if !ok {
		i = len(r.outcomes)
		r.index[action] = i
		r.outcomes = append(r.outcomes, Outcome{Action: action})
	}
	o := &r.outcomes[i]
	o.Count++
	o.Mean += (float64(score) - o.Mean) / float64(o.Count)
}

// merge folds other into r, weighting each mean by its sample count.
func (r *results) merge(other *results) {
	for _, o := range other.outcomes {
		i, ok := r.index[o.Action]
		if !ok {
			r.index[o.Action] = len(r.outcomes)
			r.outcomes = append(r.outcomes, o)
			continue
		}
		mine := &r.outcomes[i]
		total := mine.Count + o.Count
		mine.Mean = (mine.Mean*float64(mine.Count) + o.Mean*float64(o.Count)) / float64(total)
		mine.Count = total
	}
}

func (r *results) best() (Outcome, bool) {
	if len(r.outcomes) == 0 {
		return Outcome{}, false
	}
	best := r.outcomes[0]
	for _, o := range r.outcomes[1:] {
		if o.Mean > best.Mean {
			best = o
		}
	}
	return best, true
}

func (r *results) rollouts() int {
	n := 0
	for _, o := range r.outcomes {
		n += o.Count
	}
	return n
}
