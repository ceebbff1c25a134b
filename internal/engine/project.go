package engine

import (
	"math"

	"revim/internal/model"
)

// horizonYears derives the projection length from the expected
// duration answer, ceiling of the year estimate, never below 1.
func (r *run) horizonYears() int {
	label, ok := r.choiceLabel(r.schema.Roles.Duration)
	if !ok {
		return r.cfg.TimeHorizonDefault
	}
	years := lookup(durationYears, label, durationYearsDefault)
	t := int(math.Ceil(years))
	if t < 1 {
		t = 1
	}
	return t
}

// growthFactors derives the per-year utility growth and cost change
// multipliers from the outlook answers. A trend answer given as a
// choice uses its fixed rate table; a scale answer scales the
// documented coefficient.
func (r *run) growthFactors() (gUtility, gCost float64) {
	optimism, _ := r.roleValue(r.schema.Roles.Optimism)

	benefit := 0.0
	if label, ok := r.choiceLabel(r.schema.Roles.BenefitGrowth); ok {
		benefit = lookup(trendRate, label, trendRateDefault)
	} else if v, ok := r.roleValue(r.schema.Roles.BenefitGrowth); ok {
		benefit = v * r.cfg.BenefitGrowthCoef
	}

	reduction := 0.0
	if label, ok := r.choiceLabel(r.schema.Roles.CostReduction); ok {
		reduction = lookup(trendRate, label, trendRateDefault)
	} else if v, ok := r.roleValue(r.schema.Roles.CostReduction); ok {
		reduction = v * r.cfg.CostReductionCoef
	}

	gUtility = clamp(1+optimism*r.cfg.OptimismUtilityCoef+benefit, r.cfg.UtilityGrowthMin, r.cfg.UtilityGrowthMax)
	gCost = clamp(1-optimism*r.cfg.OptimismCostCoef-reduction, r.cfg.CostChangeMin, r.cfg.CostChangeMax)
	return gUtility, gCost
}

// baseDiscountRate maps the time-preference proxy onto the configured
// rate band: maximum patience earns the lowest rate.
func (r *run) baseDiscountRate() float64 {
	proxy, _ := r.roleValue(r.schema.Roles.DiscountProxy)
	rate := r.cfg.DiscountRateMax - (proxy+1)/2*(r.cfg.DiscountRateMax-r.cfg.DiscountRateMin)
	return clamp(rate, r.cfg.DiscountRateFloor, r.cfg.DiscountRateCeil)
}

// rateDynamics captures the optional per-period rate components. valid
// is false when the schema binds none of the dynamics roles, in which
// case the base rate applies flat.
type rateDynamics struct {
	risk        float64
	uncertainty float64
	learning    float64
	improving   bool
}

func (r *run) rateDynamicsFromAnswers() (rateDynamics, bool) {
	d := rateDynamics{improving: true}
	active := false
	if f, ok := r.roleFraction(r.schema.Roles.BreakupRisk); ok {
		d.risk = f * r.cfg.RiskCoef
		active = true
	}
	if f, ok := r.roleFraction(r.schema.Roles.FutureCertainty); ok {
		d.uncertainty = (1 - f) * r.cfg.UncertaintyCoef
		active = true
	}
	if f, ok := r.roleFraction(r.schema.Roles.LearningCapacity); ok {
		d.learning = f * r.cfg.LearningCoef
		active = true
	}
	if v, ok := r.roleValue(r.schema.Roles.ConflictPattern); ok {
		d.improving = v >= 0
	}
	return d, active
}

// rateAt is the period-t discount rate: the base rate plus risk and
// uncertainty terms that decay (or grow) over time, minus a learning
// term, floored at a small positive epsilon. Improving conflict
// patterns shrink the risk term by 5% a year, but never below half of
// its initial size.
func (d rateDynamics) rateAt(base float64, t int, cfg Config) float64 {
	ft := float64(t)
	stability := 1 + 0.02*ft
	if d.improving {
		stability = 1 - 0.05*ft
	}
	riskDecay := math.Max(0.5, stability)
	rate := base +
		d.risk*riskDecay +
		d.uncertainty*math.Max(0.5, 1-0.03*ft) -
		d.learning*math.Max(0.7, 1-0.02*ft)
	return math.Max(cfg.DynamicRateFloor, rate)
}

func (r *run) roleFraction(questionID string) (float64, bool) {
	if questionID == "" {
		return 0, false
	}
	q, found := r.schema.QuestionByID(questionID)
	if !found || q.Type != model.QuestionTypeScale {
		return 0, false
	}
	return r.fraction(q, questionID)
}

// project rolls the first-period utility and cost forward over the
// horizon and discounts each period's net value.
func (r *run) project(utility, cost float64) (periods []model.PeriodValue, npv, baseRate float64, horizon int) {
	horizon = r.horizonYears()
	gU, gC := r.growthFactors()
	baseRate = r.baseDiscountRate()
	dynamics, dynamic := r.rateDynamicsFromAnswers()

	r.logf("projection: %d years, utility growth %.3f, cost change %.3f, base rate %.3f", horizon, gU, gC, baseRate)

	periods = make([]model.PeriodValue, 0, horizon)
	u, c := utility, cost
	for t := 0; t < horizon; t++ {
		if t > 0 {
			u *= gU
			c = math.Max(0, c*gC)
		}
		rate := baseRate
		if dynamic {
			rate = dynamics.rateAt(baseRate, t, r.cfg)
		}
		exp := t
		if r.cfg.DiscountFirstYear {
			exp = t + 1
		}
		net := u - c
		pv := net / math.Pow(1+rate, float64(exp))
		npv += pv
		periods = append(periods, model.PeriodValue{
			Year:          t + 1,
			Utility:       u,
			Cost:          c,
			Net:           net,
			DiscountRate:  rate,
			PresentValue:  pv,
			CumulativeNPV: npv,
		})
	}
	return periods, npv, baseRate, horizon
}
