package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"revim/internal/model"
)

func TestAlternativeNPVDeadZone(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{"A5": model.Numeric(5.5)} // about the same

	assert.InDelta(t, 10, r.alternativeNPV(10, 3, 0.09, 5), 1e-9)
}

func TestAlternativeNPVDelta(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"A5": model.Numeric(10),
		"A6": model.Numeric(10),
	}

	// effective quality clamps to 1; delta max(10*0.4, 5) = 5
	assert.InDelta(t, 15, r.alternativeNPV(10, 3, 0.09, 5), 1e-9)

	r.answers["A5"] = model.Numeric(1) // much worse
	assert.InDelta(t, 5, r.alternativeNPV(10, 3, 0.09, 5), 1e-9)
}

func TestAlternativeNPVConfidenceDampens(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"A5": model.Numeric(10),
		"A6": model.Numeric(1), // no confidence
	}

	// effective = 1 * (-1+1)/1.5 = 0, inside the dead zone
	assert.InDelta(t, 10, r.alternativeNPV(10, 3, 0.09, 5), 1e-9)
}

func TestAlternativeNPVSimpleMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlternativeMode = AlternativeSimple
	cfg.DiscountFirstYear = false

	r := newTestRun()
	r.cfg = cfg
	r.schema.Sections[0].Questions = append(r.schema.Sections[0].Questions,
		model.Question{
			ID: "P1", Type: model.QuestionTypeChoice,
			Options: []string{"Much better than now", "Somewhat better", "About the same", "Somewhat worse", "Much worse than now"},
		},
		scaleQ("P2"),
		model.Question{
			ID: "P3", Type: model.QuestionTypeChoice,
			Options: []string{"A few months", "About half a year", "About a year", "More than a year", "Hard to say"},
		})
	r.schema.Roles.SingleSatisfaction = "P1"
	r.schema.Roles.AltLikelihood = "P2"
	r.schema.Roles.RecoveryTime = "P3"
	r.answers = model.AnswerSet{
		"P1": model.Choice("Much better than now"), // 3 points per year
		"P2": model.Numeric(1),                     // no chance of a new partner
		"P3": model.Choice("About a year"),
	}

	// 3 per year over 2 periods at zero-indexed discounting, minus a
	// one year recovery penalty
	got := r.alternativeNPV(0, 10, 0.0, 2)
	assert.InDelta(t, 3+3-1, got, 1e-9)
}

func TestSunkCostBias(t *testing.T) {
	tests := []struct {
		name             string
		influence, worry model.AnswerValue
		want             float64
	}{
		{"maximum", model.Numeric(7), model.Numeric(7), 3},
		{"neutral", model.Numeric(4), model.Numeric(4), 1.5},
		{"minimum", model.Numeric(1), model.Numeric(1), 0},
		{"blank defaults to none", model.AnswerValue{}, model.AnswerValue{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun()
			if tt.influence.Kind != "" {
				r.answers = model.AnswerSet{"P4": tt.influence, "P5": tt.worry}
			}
			assert.InDelta(t, tt.want, r.sunkCostBias(), 1e-9)
		})
	}
}

func TestDecideTiers(t *testing.T) {
	r := newTestRun()

	v := r.decide(10, 10, 2, 1)
	assert.Equal(t, model.VerdictContinue, v.Code)

	v = r.decide(4, 4, 5, 0.5)
	assert.Equal(t, model.VerdictReconsider, v.Code)

	// alternative clears final + 50% + 5
	v = r.decide(2, 2, 9, 0)
	assert.Equal(t, model.VerdictLeave, v.Code)
}

func TestDecideSwitchingCostDriven(t *testing.T) {
	r := newTestRun()

	// 4 points of ongoing value lose to the alternative; 8 points of
	// accumulated investment flip the verdict
	v := r.decide(12, 4, 6, 0)
	assert.Equal(t, model.VerdictContinue, v.Code)
	assert.True(t, v.SwitchingCostDriven)
	assert.Contains(t, v.Text, "switching cost")

	v = r.decide(12, 8, 6, 0)
	assert.Equal(t, model.VerdictContinue, v.Code)
	assert.False(t, v.SwitchingCostDriven)
}

func TestDecideSmallMargin(t *testing.T) {
	r := newTestRun()

	v := r.decide(10, 10, 9.5, 0)
	assert.Equal(t, model.VerdictContinue, v.Code)
	assert.True(t, v.MarginSmall)
	assert.Contains(t, v.Text, "margin is small")

	v = r.decide(10, 10, 2, 1)
	assert.False(t, v.MarginSmall)
}
