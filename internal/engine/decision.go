package engine

import (
	"math"

	"revim/internal/model"
)

// alternativeNPV values the best perceivable alternative. The default
// mode shifts the relationship's own NPV by a delta scaled by the
// effective BATNA quality; the simple mode projects a flat single-life
// or new-partner utility stream instead.
func (r *run) alternativeNPV(npvBefore, grossUtility, baseRate float64, horizon int) float64 {
	if r.cfg.AlternativeMode == AlternativeSimple {
		return r.simpleAlternativeNPV(grossUtility, baseRate, horizon)
	}

	batna, ok := r.roleValue(r.schema.Roles.BATNA)
	if !ok {
		return npvBefore
	}
	effective := batna
	if conf, ok := r.roleValue(r.schema.Roles.BATNAConfidence); ok {
		effective = clamp(batna*(conf+1)/1.5, -1, 1)
	}
	if math.Abs(effective) < r.cfg.BATNADeadZone {
		return npvBefore
	}
	delta := math.Max(math.Abs(npvBefore)*r.cfg.BATNADeltaFraction, r.cfg.BATNADeltaMinimum)
	return npvBefore + delta*effective
}

func (r *run) simpleAlternativeNPV(grossUtility, baseRate float64, horizon int) float64 {
	uSingle := float64(singleLifeUtilityDefault)
	if label, ok := r.choiceLabel(r.schema.Roles.SingleSatisfaction); ok {
		uSingle = lookup(singleLifeUtility, label, singleLifeUtilityDefault)
	}
	likelihood, _ := r.roleFraction(r.schema.Roles.AltLikelihood)
	perPeriod := math.Max(uSingle, likelihood*r.cfg.AltLikelihoodCoef*grossUtility)

	npv := 0.0
	for t := 0; t < horizon; t++ {
		exp := t
		if r.cfg.DiscountFirstYear {
			exp = t + 1
		}
		npv += perPeriod / math.Pow(1+baseRate, float64(exp))
	}
	if label, ok := r.choiceLabel(r.schema.Roles.RecoveryTime); ok {
		npv -= lookup(recoveryYears, label, recoveryYearsDefault) * r.cfg.RecoveryPenaltyPerYear
	}
	return npv
}

// sunkCostBias raises the bar the alternative must clear, modeling the
// respondent's own tendency to over-weight past investment.
func (r *run) sunkCostBias() float64 {
	influence, okI := r.rawNumber(r.schema.Roles.SunkInfluence)
	worry, okW := r.rawNumber(r.schema.Roles.SunkWorry)
	if !okI {
		influence = 1
	}
	if !okW {
		worry = 1
	}
	bias := ((influence - 1) + (worry - 1)) / 12 * r.cfg.SunkBiasMax
	return clamp(bias, 0, r.cfg.SunkBiasMax)
}

// decide compares the relationship's final NPV against the alternative
// plus the sunk-cost bias and maps the gap onto a verdict tier.
func (r *run) decide(npvFinal, npvBefore, npvAlternative, bias float64) model.Verdict {
	threshold := npvAlternative + bias
	v := model.Verdict{}
	switch {
	case npvFinal > threshold:
		v.Code = model.VerdictContinue
		v.Text = "The relationship looks worth continuing."
		if npvBefore < npvAlternative {
			v.SwitchingCostDriven = true
			v.Text += " The case rests mainly on the accumulated switching cost, not on ongoing value."
		}
	case npvAlternative > npvFinal+math.Abs(npvFinal)*r.cfg.LeaveTierFraction+r.cfg.LeaveTierAbsolute:
		v.Code = model.VerdictLeave
		v.Text = "The alternative clearly outweighs the relationship; strongly consider leaving."
	default:
		v.Code = model.VerdictReconsider
		v.Text = "The alternative edges out the relationship; worth reconsidering."
	}

	larger := math.Max(math.Abs(npvFinal), math.Abs(threshold))
	if larger > 0 && math.Abs(npvFinal-threshold) < r.cfg.SmallMarginFraction*larger {
		v.MarginSmall = true
		v.Text += " The margin is small."
	}
	r.logf("decision: npv %.3f vs alternative %.3f + bias %.3f -> %s", npvFinal, npvAlternative, bias, v.Code)
	return v
}
