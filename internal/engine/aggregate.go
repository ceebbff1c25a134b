package engine

import "revim/internal/model"

// aggregate computes each category's net score and splits the weighted
// contributions into the period's utility and cost streams. Switching
// cost components and direct-cost items are handled elsewhere and are
// skipped here.
func (r *run) aggregate(weights map[string]float64) (utility, cost float64, results []model.CategoryResult) {
	results = make([]model.CategoryResult, 0, len(r.schema.Categories))

	for _, cat := range r.schema.Categories {
		var (
			utilSum, utilWeight float64
			costSum, costWeight float64
			answered, skipped   int
		)
		for _, q := range cat.Questions {
			if q.IsDirectCost || q.IsSwitchingCostComponent {
				continue
			}
			a, present := r.answer(q.ID)
			v, isNA := r.normalize(q, a, present)
			if isNA {
				skipped++
				continue
			}
			answered++
			w := q.Weight
			if w <= 0 {
				w = 1
			}
			if q.IsCost {
				costSum += v * w
				costWeight += w
			} else {
				utilSum += v * w
				utilWeight += w
			}
		}

		res := model.CategoryResult{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Weight:     weights[cat.ID],
			Answered:   answered,
			Skipped:    skipped,
		}
		if answered == 0 {
			r.warn(model.DiagEmptyCategory, "", cat.ID,
				"every question in "+cat.Name+" was skipped, category contributes nothing")
		} else {
			if utilWeight > 0 {
				res.AvgUtility = utilSum / utilWeight
			}
			if costWeight > 0 {
				res.AvgCost = costSum / costWeight
			}
			res.NetScore = res.AvgUtility - res.AvgCost
			res.WeightedContribution = res.NetScore * res.Weight * r.cfg.ScalingFactor
		}

		if res.WeightedContribution > 0 {
			utility += res.WeightedContribution
		} else {
			cost += -res.WeightedContribution
		}
		r.logf("category %s: net %.3f, weight %.3f, contribution %.3f",
			cat.Name, res.NetScore, res.Weight, res.WeightedContribution)
		results = append(results, res)
	}
	return utility, cost, results
}
