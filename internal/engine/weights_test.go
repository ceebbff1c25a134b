package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revim/internal/model"
)

func weightsSum(weights map[string]float64) float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return total
}

func TestComputeWeightsNormalized(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"W_alpha": model.Numeric(5),
		"W_beta":  model.Numeric(3),
		"W_gamma": model.Numeric(2),
	}

	weights, err := r.computeWeights()
	require.NoError(t, err)

	assert.InDelta(t, 1, weightsSum(weights), 1e-9)
	assert.InDelta(t, 0.5, weights["alpha"], 1e-9)
	assert.InDelta(t, 0.3, weights["beta"], 1e-9)
	assert.InDelta(t, 0.2, weights["gamma"], 1e-9)
	assert.Empty(t, r.diags)
}

func TestComputeWeightsUniformFallback(t *testing.T) {
	tests := []struct {
		name    string
		answers model.AnswerSet
	}{
		{"all blank", model.AnswerSet{}},
		{"all zero", model.AnswerSet{"W_alpha": model.Numeric(0), "W_beta": model.Numeric(0), "W_gamma": model.Numeric(0)}},
		{"all invalid", model.AnswerSet{"W_alpha": model.Choice("high"), "W_beta": model.Choice("high"), "W_gamma": model.Choice("high")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun()
			r.answers = tt.answers

			weights, err := r.computeWeights()
			require.NoError(t, err)

			assert.InDelta(t, 1, weightsSum(weights), 1e-9)
			for id, w := range weights {
				assert.InDelta(t, 1.0/3, w, 1e-9, "weight %s", id)
			}
			found := false
			for _, d := range r.diags {
				if d.Code == model.DiagDegenerateWeights {
					found = true
				}
			}
			assert.True(t, found, "expected a degenerate-weights diagnostic")
		})
	}
}

func TestComputeWeightsInvalidRatingTreatedAsZero(t *testing.T) {
	r := newTestRun()
	r.answers = model.AnswerSet{
		"W_alpha": model.Choice("very important"),
		"W_beta":  model.Numeric(3),
		"W_gamma": model.Numeric(1),
	}

	weights, err := r.computeWeights()
	require.NoError(t, err)

	assert.InDelta(t, 0, weights["alpha"], 1e-9)
	assert.InDelta(t, 0.75, weights["beta"], 1e-9)
	assert.InDelta(t, 0.25, weights["gamma"], 1e-9)
	require.Len(t, r.diags, 1)
	assert.Equal(t, model.DiagInvalidAnswer, r.diags[0].Code)
}

func TestComputeWeightsMissingWeightQuestion(t *testing.T) {
	r := newTestRun()
	r.schema.Categories[0].WeightQuestionID = "W_missing"

	_, err := r.computeWeights()
	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "W_missing", mismatch.QuestionID)
	assert.Equal(t, "alpha", mismatch.CategoryID)
}
