package engine

import (
	"math"

	"revim/internal/model"
)

// applyAdjustments layers the cross-category corrections on top of the
// aggregated first-period utility and cost. Cost is clamped at 0 after
// every step that can lower it.
func (r *run) applyAdjustments(utility, cost float64, results []model.CategoryResult) (float64, float64, model.AdjustmentBreakdown) {
	var b model.AdjustmentBreakdown
	byID := make(map[string]model.CategoryResult, len(results))
	for _, res := range results {
		byID[res.CategoryID] = res
	}
	roleResult := func(role model.CategoryRole) (model.CategoryResult, bool) {
		cat, ok := r.schema.CategoryByRole(role)
		if !ok {
			return model.CategoryResult{}, false
		}
		res, ok := byID[cat.ID]
		return res, ok
	}

	comm, hasComm := roleResult(model.RoleCommunication)
	conflict, hasConflict := roleResult(model.RoleConflictResolution)
	cultural, hasCultural := roleResult(model.RoleCulturalBackground)

	if hasComm && hasConflict &&
		comm.NetScore > r.cfg.SynergyThreshold && conflict.NetScore > r.cfg.SynergyThreshold {
		avgWeight := (comm.Weight + conflict.Weight) / 2
		b.SynergyBonus = comm.NetScore * conflict.NetScore * r.cfg.ScalingFactor * r.cfg.SynergyBonus * avgWeight
		utility += b.SynergyBonus
		r.logf("synergy: communication and conflict handling reinforce each other, +%.3f utility", b.SynergyBonus)
	}

	if hasComm && hasCultural &&
		comm.NetScore > r.cfg.SynergyThreshold && cultural.NetScore < -r.cfg.SynergyThreshold {
		culturalCost := math.Abs(cultural.NetScore) * cultural.Weight * r.cfg.ScalingFactor
		b.ConflictMitigation = culturalCost * comm.NetScore * r.cfg.MitigationCoef
		cost = math.Max(0, cost-b.ConflictMitigation)
		r.logf("mitigation: strong communication softens background friction, -%.3f cost", b.ConflictMitigation)
	}

	for _, cat := range r.schema.Categories {
		for _, q := range cat.Questions {
			if !q.IsDirectCost {
				continue
			}
			f, ok := r.fraction(q, q.ID)
			if !ok {
				continue
			}
			add := f * r.cfg.DirectCostCap
			b.DirectCost += add
			cost += add
		}
	}
	if b.DirectCost > 0 {
		r.logf("direct cost items: +%.3f cost", b.DirectCost)
	}

	gap, okGap := r.roleValue(r.schema.Roles.AttractionGap)
	partner, okPartner := r.roleValue(r.schema.Roles.PartnerAttraction)
	self, okSelf := r.roleValue(r.schema.Roles.SelfAttraction)
	if okGap && okPartner && okSelf &&
		gap > r.cfg.AttractionGapThreshold &&
		partner < r.cfg.AttractionPartnerThreshold &&
		self > r.cfg.AttractionSelfThreshold {
		b.AttractionAsymmetry = (gap + math.Abs(partner) + self) / 3 * r.cfg.AttractionCostCoef
		cost += b.AttractionAsymmetry
		r.logf("attraction asymmetry: +%.3f cost", b.AttractionAsymmetry)
	}

	attraction, okAttraction := r.roleValue(r.schema.Roles.InitialAttraction)
	noAlt, okNoAlt := r.roleValue(r.schema.Roles.NoAlternativeStart)
	if okAttraction && okNoAlt &&
		attraction < -r.cfg.MotivationThreshold && noAlt > r.cfg.MotivationThreshold {
		b.InitialMotivation = (math.Abs(attraction) + noAlt) * r.cfg.MotivationPenaltyCoef
		cost += b.InitialMotivation
		r.logf("initial motivation: the relationship started from a lack of alternatives, +%.3f cost", b.InitialMotivation)
	}

	selfAge, okSelfAge := r.rawNumber(r.schema.Roles.SelfAge)
	partnerAge, okPartnerAge := r.rawNumber(r.schema.Roles.PartnerAge)
	if okSelfAge && okPartnerAge {
		diff := math.Abs(selfAge - partnerAge)
		if diff > r.cfg.AgeGapThresholdYears {
			netFlow := utility - cost
			base := math.Max(r.cfg.AgeGapMinBase, math.Abs(netFlow))
			b.AgeGapCost = base * math.Min(diff*r.cfg.AgeGapRatePerYear, r.cfg.AgeGapRateCap)
			cost += b.AgeGapCost
			r.logf("age gap of %.0f years: +%.3f cost", diff, b.AgeGapCost)
		}
	}

	if avg, ok := r.outlookAverage(); ok && avg < -r.cfg.OutlookPenaltyThreshold {
		factor := math.Abs(avg) * r.cfg.OutlookPenaltyCoef
		net := utility - cost
		b.OutlookPenalty = math.Abs(net) * factor
		if net > 0 {
			utility -= b.OutlookPenalty
		} else {
			cost += b.OutlookPenalty
		}
		r.logf("pessimistic outlook: penalty %.3f", b.OutlookPenalty)
	}

	intimacy, hasIntimacy := roleResult(model.RoleIntimacy)
	conf, okConf := r.roleValue(r.schema.Roles.BATNAConfidence)
	if hasIntimacy && okConf && okGap &&
		conf > r.cfg.OpportunityConfThreshold &&
		intimacy.NetScore < r.cfg.OpportunityNetThreshold &&
		gap > r.cfg.AttractionGapThreshold {
		b.OpportunityCost = conf * gap * r.cfg.OpportunityCostCoef
		cost += b.OpportunityCost
		r.logf("confident alternative plus a felt attraction gap: +%.3f opportunity cost", b.OpportunityCost)
	}

	return utility, math.Max(0, cost), b
}

// outlookAverage averages whichever of the three forward-looking
// answers are available.
func (r *run) outlookAverage() (float64, bool) {
	sum, n := 0.0, 0
	for _, id := range []string{r.schema.Roles.Optimism, r.schema.Roles.BenefitGrowth, r.schema.Roles.CostReduction} {
		if v, ok := r.roleValue(id); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
