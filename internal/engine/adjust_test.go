package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"revim/internal/model"
)

func catResults(alpha, beta, gamma float64) []model.CategoryResult {
	w := 1.0 / 3
	return []model.CategoryResult{
		{CategoryID: "alpha", NetScore: alpha, Weight: w},
		{CategoryID: "beta", NetScore: beta, Weight: w},
		{CategoryID: "gamma", NetScore: gamma, Weight: w},
	}
}

func TestAdjustSynergyBonus(t *testing.T) {
	r := newTestRun()

	utility, cost, b := r.applyAdjustments(2, 1, catResults(0.6, 0.5, 0))

	// 0.6 * 0.5 * 5 * 0.25 * averageWeight(1/3)
	assert.InDelta(t, 0.125, b.SynergyBonus, 1e-9)
	assert.InDelta(t, 2.125, utility, 1e-9)
	assert.InDelta(t, 1, cost, 1e-9)
}

func TestAdjustSynergyNeedsBothAboveThreshold(t *testing.T) {
	r := newTestRun()

	_, _, b := r.applyAdjustments(2, 1, catResults(0.6, 0.1, 0))
	assert.Zero(t, b.SynergyBonus)
}

func TestAdjustConflictMitigation(t *testing.T) {
	r := newTestRun()

	_, cost, b := r.applyAdjustments(2, 3, catResults(0.9, 0, -0.6))

	// culturalCost = 0.6 * (1/3) * 5 = 1, reduction = 1 * 0.9 * 0.3
	assert.InDelta(t, 0.27, b.ConflictMitigation, 1e-9)
	assert.InDelta(t, 2.73, cost, 1e-9)
}

func TestAdjustMitigationNeverDrivesCostNegative(t *testing.T) {
	r := newTestRun()

	_, cost, _ := r.applyAdjustments(5, 0.1, catResults(1, 0, -1.8))
	assert.GreaterOrEqual(t, cost, 0.0)
}

func TestAdjustDirectCost(t *testing.T) {
	r := newTestRun()
	r.schema.Categories[0].Questions = append(r.schema.Categories[0].Questions, model.Question{
		ID: "a9", Text: "a9", Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7, IsCost: true, IsDirectCost: true,
	})
	r.answers = model.AnswerSet{"a9": model.Numeric(7)}

	_, cost, b := r.applyAdjustments(0, 0, catResults(0, 0, 0))

	assert.InDelta(t, 0.5, b.DirectCost, 1e-9) // full fraction times the cap
	assert.InDelta(t, 0.5, cost, 1e-9)
}

func TestAdjustInitialMotivationPenalty(t *testing.T) {
	r := newTestRun()
	r.schema.Sections[0].Questions = append(r.schema.Sections[0].Questions,
		scaleQ("k31"), scaleQ("k32"))
	r.schema.Roles.InitialAttraction = "k31"
	r.schema.Roles.NoAlternativeStart = "k32"
	r.answers = model.AnswerSet{
		"k31": model.Numeric(1), // attraction played no part, -1
		"k32": model.Numeric(7), // entered for lack of options, +1
	}

	_, cost, b := r.applyAdjustments(0, 0, catResults(0, 0, 0))

	assert.InDelta(t, 0.3, b.InitialMotivation, 1e-9) // (1 + 1) * 0.15
	assert.InDelta(t, 0.3, cost, 1e-9)
}

func TestAdjustInitialMotivationNeedsBothSignals(t *testing.T) {
	r := newTestRun()
	r.schema.Sections[0].Questions = append(r.schema.Sections[0].Questions,
		scaleQ("k31"), scaleQ("k32"))
	r.schema.Roles.InitialAttraction = "k31"
	r.schema.Roles.NoAlternativeStart = "k32"
	r.answers = model.AnswerSet{
		"k31": model.Numeric(7), // attraction-driven start
		"k32": model.Numeric(7),
	}

	_, _, b := r.applyAdjustments(0, 0, catResults(0, 0, 0))
	assert.Zero(t, b.InitialMotivation)
}

func TestAdjustOpportunityCost(t *testing.T) {
	r := newTestRun()
	r.schema.Categories[1].Role = model.RoleIntimacy // beta
	r.schema.Sections[0].Questions = append(r.schema.Sections[0].Questions, scaleQ("attrGap"))
	r.schema.Roles.AttractionGap = "attrGap"
	r.answers = model.AnswerSet{
		"A6":      model.Numeric(10), // +1 confidence
		"attrGap": model.Numeric(7),  // +1 gap
	}

	_, cost, b := r.applyAdjustments(0, 0, catResults(0, -0.5, 0))

	assert.InDelta(t, 0.3, b.OpportunityCost, 1e-9) // 1 * 1 * 0.3
	assert.InDelta(t, 0.3, cost, 1e-9)
}

func TestAdjustOpportunityCostNeedsLowIntimacy(t *testing.T) {
	r := newTestRun()
	r.schema.Categories[1].Role = model.RoleIntimacy
	r.schema.Sections[0].Questions = append(r.schema.Sections[0].Questions, scaleQ("attrGap"))
	r.schema.Roles.AttractionGap = "attrGap"
	r.answers = model.AnswerSet{
		"A6":      model.Numeric(10),
		"attrGap": model.Numeric(7),
	}

	_, _, b := r.applyAdjustments(0, 0, catResults(0, -0.1, 0))
	assert.Zero(t, b.OpportunityCost)
}

func TestAdjustAttractionAsymmetry(t *testing.T) {
	r := newTestRun()
	r.schema.Sections[0].Questions = append(r.schema.Sections[0].Questions,
		scaleQ("attrPartner"), scaleQ("attrSelf"), scaleQ("attrGap"))
	r.schema.Roles.PartnerAttraction = "attrPartner"
	r.schema.Roles.SelfAttraction = "attrSelf"
	r.schema.Roles.AttractionGap = "attrGap"
	r.answers = model.AnswerSet{
		"attrPartner": model.Numeric(1), // -1
		"attrSelf":    model.Numeric(7), // +1
		"attrGap":     model.Numeric(7), // +1
	}

	_, cost, b := r.applyAdjustments(0, 0, catResults(0, 0, 0))

	assert.InDelta(t, 0.6, b.AttractionAsymmetry, 1e-9) // (1+1+1)/3 * 0.6
	assert.InDelta(t, 0.6, cost, 1e-9)
}

func TestAdjustAgeGapCost(t *testing.T) {
	r := newTestRun()
	r.schema.Sections[0].Questions = append(r.schema.Sections[0].Questions,
		model.Question{ID: "ageSelf", Type: model.QuestionTypeScale, ScaleLow: 16, ScaleHigh: 100},
		model.Question{ID: "agePartner", Type: model.QuestionTypeScale, ScaleLow: 16, ScaleHigh: 100})
	r.schema.Roles.SelfAge = "ageSelf"
	r.schema.Roles.PartnerAge = "agePartner"
	r.answers = model.AnswerSet{
		"ageSelf":    model.Numeric(30),
		"agePartner": model.Numeric(50),
	}

	_, cost, b := r.applyAdjustments(4, 0, catResults(0, 0, 0))

	// rate min(20*0.005, 0.1) = 0.1 on a net flow of 4
	assert.InDelta(t, 0.4, b.AgeGapCost, 1e-9)
	assert.InDelta(t, 0.4, cost, 1e-9)
}

func TestAdjustAgeGapBelowThreshold(t *testing.T) {
	r := newTestRun()
	r.schema.Sections[0].Questions = append(r.schema.Sections[0].Questions,
		model.Question{ID: "ageSelf", Type: model.QuestionTypeScale, ScaleLow: 16, ScaleHigh: 100},
		model.Question{ID: "agePartner", Type: model.QuestionTypeScale, ScaleLow: 16, ScaleHigh: 100})
	r.schema.Roles.SelfAge = "ageSelf"
	r.schema.Roles.PartnerAge = "agePartner"
	r.answers = model.AnswerSet{
		"ageSelf":    model.Numeric(30),
		"agePartner": model.Numeric(33),
	}

	_, _, b := r.applyAdjustments(4, 0, catResults(0, 0, 0))
	assert.Zero(t, b.AgeGapCost)
}

func TestAdjustOutlookPenalty(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"O1": model.Numeric(1), "O2": model.Numeric(1), "O3": model.Numeric(1),
	}

	// positive net: utility shrinks
	utility, cost, b := r.applyAdjustments(3, 1, catResults(0, 0, 0))
	assert.InDelta(t, 0.2, b.OutlookPenalty, 1e-9) // |avg -1| * 0.1 * |net 2|
	assert.InDelta(t, 2.8, utility, 1e-9)
	assert.InDelta(t, 1, cost, 1e-9)

	// negative net: cost inflates
	r2 := newTestRun()
	r2.answers = r.answers
	utility, cost, b = r2.applyAdjustments(1, 3, catResults(0, 0, 0))
	assert.InDelta(t, 0.2, b.OutlookPenalty, 1e-9)
	assert.InDelta(t, 1, utility, 1e-9)
	assert.InDelta(t, 3.2, cost, 1e-9)
}

func TestAdjustNeutralOutlookNoPenalty(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"O1": model.Numeric(4), "O2": model.Numeric(4), "O3": model.Numeric(4),
	}

	_, _, b := r.applyAdjustments(3, 1, catResults(0, 0, 0))
	assert.Zero(t, b.OutlookPenalty)
}
