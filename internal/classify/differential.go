package classify

import (
	"slices"

	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/questionbank"
)

// topContributions returns the answers that contributed the most raw score
// to the given archetype, strongest first, capped at limit. Ties keep
// submission order, so the output is deterministic.
func topContributions(bank *questionbank.Bank, answers consult.History, archetypeID string, limit int) []KeyAnswer {
	keys := answerDeltas(bank, answers, func(deltas map[string]float64) float64 {
		return deltas[archetypeID]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// pullAway returns the answers that most separated the primary archetype
// from a differential candidate: large (primary delta minus candidate delta)
// means the answer pulled the score away from the candidate.
func pullAway(bank *questionbank.Bank, answers consult.History, primaryID, candidateID string, limit int) []KeyAnswer {
	keys := answerDeltas(bank, answers, func(deltas map[string]float64) float64 {
		return deltas[primaryID] - deltas[candidateID]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// answerDeltas scores every answer with the given measure, drops
// non-positive contributions, and sorts descending (stable on submission
// order).
func answerDeltas(bank *questionbank.Bank, answers consult.History, measure func(map[string]float64) float64) []KeyAnswer {
	var keys []KeyAnswer
	for _, a := range answers {
		q, err := bank.Question(a.QuestionID)
		if err != nil {
			continue
		}
		o, ok := q.Option(a.OptionID)
		if !ok {
			continue
		}
		c := measure(o.Deltas)
		if c <= 0 {
			continue
		}
		keys = append(keys, KeyAnswer{
			QuestionID:   a.QuestionID,
			OptionID:     a.OptionID,
			Contribution: c,
		})
	}
	slices.SortStableFunc(keys, func(a, b KeyAnswer) int {
		switch {
		case a.Contribution > b.Contribution:
			return -1
		case a.Contribution < b.Contribution:
			return 1
		default:
			return 0
		}
	})
	return keys
}
