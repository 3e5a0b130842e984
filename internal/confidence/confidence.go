package confidence

import (
	"slices"

	"github.com/abhisek/dermatype/internal/archetype"
	"github.com/abhisek/dermatype/internal/consult"
)

// Tier is the coarse confidence bucket derived from the gap between the
// top two archetype scores.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Tier thresholds on the 0–100 confidence scale.
const (
	HighThreshold   = 85.0
	MediumThreshold = 60.0
)

// TierFor buckets a confidence value.
func TierFor(confidence float64) Tier {
	switch {
	case confidence >= HighThreshold:
		return TierHigh
	case confidence >= MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// Rank is one entry of a ranked archetype distribution.
type Rank struct {
	ArchetypeID string  `json:"archetype_id"`
	Probability float64 `json:"probability"`
}

// Snapshot is the derived confidence state of a session, recomputed on
// every step. Probabilities are non-negative and sum to 1.
type Snapshot struct {
	// Distribution maps every archetype ID to its normalized score.
	Distribution map[string]float64 `json:"distribution"`

	// Confidence is 0–100, measuring the lead of the first-place
	// archetype over the runner-up.
	Confidence float64 `json:"confidence"`

	Tier Tier `json:"tier"`

	// Leader and RunnerUp are the top two archetype IDs, tie-broken by
	// archetype priority order.
	Leader   string `json:"leader"`
	RunnerUp string `json:"runner_up"`
}

// Ranked returns the distribution ordered by probability descending,
// ties broken by archetype priority order. Deterministic.
func (s Snapshot) Ranked() []Rank {
	ranks := make([]Rank, 0, len(s.Distribution))
	for id, p := range s.Distribution {
		ranks = append(ranks, Rank{ArchetypeID: id, Probability: p})
	}
	slices.SortFunc(ranks, func(a, b Rank) int {
		switch {
		case a.Probability > b.Probability:
			return -1
		case a.Probability < b.Probability:
			return 1
		default:
			return archetype.PriorityRank(a.ArchetypeID) - archetype.PriorityRank(b.ArchetypeID)
		}
	})
	return ranks
}

// Compute scores a partial answer set into a confidence snapshot.
//
// It is a pure function: no side effects, safe to call repeatedly and
// speculatively. Raw scores accumulate additively per chosen option (order
// never biases the total), demographic multipliers apply as a final pass,
// negatives clip to zero, and the result normalizes to a distribution.
// An all-zero total falls back to a uniform distribution, a recoverable
// case, never an error. Answers referencing unknown questions or options
// are skipped here; callers validate via consult.ValidateAnswers.
func Compute(sess consult.Session) Snapshot {
	raw := make(map[string]float64, archetype.Count())
	for _, a := range archetype.All() {
		raw[a.ID] = 0
	}

	for _, ans := range sess.Answers {
		q, err := sess.Bank.Question(ans.QuestionID)
		if err != nil {
			continue
		}
		o, ok := q.Option(ans.OptionID)
		if !ok {
			continue
		}
		for id, delta := range o.Deltas {
			raw[id] += delta
		}
	}

	applyModifiers(raw, sess.EffectiveDemographics())

	// Clip and normalize.
	sum := 0.0
	for id, v := range raw {
		if v < 0 {
			raw[id] = 0
			continue
		}
		sum += v
	}

	dist := make(map[string]float64, len(raw))
	if sum == 0 {
		uniform := 1.0 / float64(len(raw))
		for id := range raw {
			dist[id] = uniform
		}
	} else {
		for id, v := range raw {
			dist[id] = v / sum
		}
	}

	snap := Snapshot{Distribution: dist}
	ranked := snap.Ranked()
	snap.Leader = ranked[0].ArchetypeID
	snap.RunnerUp = ranked[1].ArchetypeID

	// A large gap between first and second place means high confidence;
	// a near-tie means low. Scaled by the leader's share so the measure
	// stays in 0–100 regardless of how many archetypes hold score.
	p1, p2 := ranked[0].Probability, ranked[1].Probability
	if p1 > 0 {
		snap.Confidence = 100 * (p1 - p2) / p1
	}
	snap.Tier = TierFor(snap.Confidence)
	return snap
}
