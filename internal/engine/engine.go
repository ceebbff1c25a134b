package engine

import (
	"fmt"
	"math"

	"revim/internal/model"
)

// Engine evaluates answer sets against a questionnaire schema. It is
// stateless per invocation and safe for concurrent use.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Evaluate runs the full pipeline: normalize, aggregate, adjust,
// project, switching cost, decide. The only fatal failure is a
// schema mismatch; everything else degrades into diagnostics attached
// to the result.
func (e *Engine) Evaluate(schema *model.Schema, answers model.AnswerSet) (*model.EvaluationResult, error) {
	if schema == nil {
		return nil, &SchemaMismatchError{Reason: "nil schema"}
	}
	for id := range answers {
		if _, found := schema.QuestionByID(id); !found {
			return nil, &SchemaMismatchError{QuestionID: id, Reason: "answer references a question the schema does not define"}
		}
	}

	r := &run{schema: schema, answers: answers, cfg: e.cfg}

	weights, err := r.computeWeights()
	if err != nil {
		return nil, err
	}

	utility, cost, categories := r.aggregate(weights)
	utility, cost, adjustments := r.applyAdjustments(utility, cost, categories)
	r.logf("current period: utility %.3f, cost %.3f", utility, cost)

	periods, npvBefore, baseRate, horizon := r.project(utility, cost)
	switching := r.switchingCost(npvBefore)
	npvFinal := npvBefore + switching

	npvAlternative := r.alternativeNPV(npvBefore, utility, baseRate, horizon)
	bias := r.sunkCostBias()
	verdict := r.decide(npvFinal, npvBefore, npvAlternative, bias)

	return &model.EvaluationResult{
		SchemaVersion:          schema.Version,
		GrossUtility:           utility,
		GrossCost:              cost,
		HorizonYears:           horizon,
		DiscountRate:           baseRate,
		NPVBeforeSwitchingCost: npvBefore,
		SwitchingCost:          switching,
		NPV:                    npvFinal,
		NPVAlternative:         npvAlternative,
		SunkCostBias:           bias,
		Categories:             categories,
		Adjustments:            adjustments,
		Periods:                periods,
		Verdict:                verdict,
		Interpretation:         r.interpret(utility, cost, npvBefore, switching),
		Diagnostics:            r.diags,
		Log:                    r.log,
	}, nil
}

// interpret produces the short plain-language commentary shown next to
// the verdict.
func (r *run) interpret(utility, cost, npvBefore, switching float64) []string {
	var lines []string

	net := utility - cost
	switch {
	case net > 1:
		lines = append(lines, fmt.Sprintf("Day to day the relationship gives back clearly more than it takes (net %.1f points per year).", net))
	case net > 0:
		lines = append(lines, fmt.Sprintf("Day to day the relationship gives back slightly more than it takes (net %.1f points per year).", net))
	case net == 0:
		lines = append(lines, "Day to day the relationship currently balances out to neutral.")
	default:
		lines = append(lines, fmt.Sprintf("Day to day the relationship currently takes more than it gives (net %.1f points per year).", net))
	}

	if switching > 0 {
		if npvBefore != 0 && switching >= math.Abs(npvBefore)*0.5 {
			lines = append(lines, "A large share of the case for staying is accumulated investment rather than ongoing experience.")
		} else {
			lines = append(lines, fmt.Sprintf("Accumulated investment adds a one-time %.1f points to the value of staying.", switching))
		}
	}

	if avg, ok := r.outlookAverage(); ok {
		switch {
		case avg > 0.2:
			lines = append(lines, "The outlook answers expect things to improve, which lifts later years.")
		case avg < -0.2:
			lines = append(lines, "The outlook answers expect things to worsen, which weighs on later years.")
		}
	}
	return lines
}
