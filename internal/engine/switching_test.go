package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"revim/internal/model"
)

func TestSwitchingCostScaling(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"s1":   model.Numeric(7), // fully invested
		"W_I0": model.Numeric(3), // neutral importance
	}

	// large NPV keeps both caps out of the way
	assert.InDelta(t, 15, r.switchingCost(100), 1e-9)
}

func TestSwitchingCostImportanceMultiplier(t *testing.T) {
	tests := []struct {
		name       string
		importance float64
		want       float64
	}{
		{"minimum importance halves", 1, 3.75},
		{"neutral importance", 3, 7.5},
		{"maximum importance amplifies", 5, 11.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun()
			r.answers = model.AnswerSet{
				"s1":   model.Numeric(4), // half invested
				"W_I0": model.Numeric(tt.importance),
			}
			assert.InDelta(t, tt.want, r.switchingCost(100), 1e-9)
		})
	}
}

func TestSwitchingCostRelativeCap(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"s1":   model.Numeric(7),
		"W_I0": model.Numeric(3),
	}

	// 0.75 of |npv| binds before the absolute cap
	assert.InDelta(t, 7.5, r.switchingCost(10), 1e-9)
	assert.InDelta(t, 7.5, r.switchingCost(-10), 1e-9)
}

func TestSwitchingCostZeroNPVFallback(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"s1":   model.Numeric(7),
		"W_I0": model.Numeric(3),
	}

	assert.InDelta(t, 5, r.switchingCost(0), 1e-9)
}

func TestSwitchingCostNoComponentsAnswered(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{"W_I0": model.Numeric(5)}

	assert.Zero(t, r.switchingCost(100))
}

func TestSwitchingCostNeverNegative(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"s1":   model.Numeric(1), // nothing invested
		"W_I0": model.Numeric(1),
	}

	assert.GreaterOrEqual(t, r.switchingCost(-20), 0.0)
	assert.Zero(t, r.switchingCost(-20))
}
