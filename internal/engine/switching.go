package engine

import "math"

// switchingCost values the accumulated investment that would be lost
// by leaving: the average costliness fraction across the flagged
// questions, scaled to model points and by the dedicated importance
// rating, then capped both absolutely and relative to the NPV it is
// added to.
func (r *run) switchingCost(npvBefore float64) float64 {
	sum, n := 0.0, 0
	for _, cat := range r.schema.Categories {
		for _, q := range cat.Questions {
			if !q.IsSwitchingCostComponent {
				continue
			}
			if f, ok := r.fraction(q, q.ID); ok {
				sum += f
				n++
			}
		}
	}
	for _, sec := range r.schema.Sections {
		for _, q := range sec.Questions {
			if !q.IsSwitchingCostComponent {
				continue
			}
			if f, ok := r.fraction(q, q.ID); ok {
				sum += f
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}

	importance := 1.0
	if v, ok := r.roleValue(r.schema.Roles.SwitchingCostImportance); ok {
		importance = 1 + v*r.cfg.ImportanceSpread
	}
	scaled := sum / float64(n) * r.cfg.SwitchingCostMaxBase * importance

	relative := math.Abs(npvBefore) * r.cfg.SwitchingCostRelativeCap
	if npvBefore == 0 {
		relative = r.cfg.SwitchingCostZeroNPVBase
	}
	cost := math.Min(scaled, math.Min(relative, r.cfg.SwitchingCostMaxBase))
	r.logf("switching cost: base %.3f, importance x%.2f, capped to %.3f", sum/float64(n), importance, cost)
	return math.Max(0, cost)
}
