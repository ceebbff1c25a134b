package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"revim/internal/model"
)

func newTestRun() *run {
	return &run{schema: testSchema(), answers: model.AnswerSet{}, cfg: DefaultConfig()}
}

func TestNormalizeScale(t *testing.T) {
	r := newTestRun()
	q := scaleQ("q")

	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"low end", 1, -1},
		{"below midpoint", 2.5, -0.5},
		{"midpoint", 4, 0},
		{"above midpoint", 5.5, 0.5},
		{"high end", 7, 1},
		{"clamped above", 12, 1},
		{"clamped below", -3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, isNA := r.normalize(q, model.Numeric(tt.raw), true)
			assert.False(t, isNA)
			assert.InDelta(t, tt.want, v, 1e-9)
		})
	}
}

func TestNormalizeScaleMonotonic(t *testing.T) {
	r := newTestRun()
	for _, q := range []model.Question{scaleQ("q"), {ID: "amp", Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7, AmplifyExtremes: true}} {
		prev := -2.0
		for raw := q.ScaleLow; raw <= q.ScaleHigh; raw += 0.5 {
			v, isNA := r.normalize(q, model.Numeric(raw), true)
			assert.False(t, isNA)
			assert.GreaterOrEqual(t, v, prev, "question %s raw %v", q.ID, raw)
			prev = v
		}
	}
}

func TestNormalizeBlankDefaults(t *testing.T) {
	r := newTestRun()

	v, isNA := r.normalize(scaleQ("q"), model.AnswerValue{}, false)
	assert.False(t, isNA)
	assert.Zero(t, v)

	choice := model.Question{ID: "c", Type: model.QuestionTypeChoice, Options: []string{"best", "mid", "worst"}}
	v, isNA = r.normalize(choice, model.AnswerValue{}, false)
	assert.False(t, isNA)
	assert.InDelta(t, 1, v, 1e-9) // first option
}

func TestNormalizeNotApplicable(t *testing.T) {
	r := newTestRun()
	naScale := scaleQ("q")
	naScale.AllowNA = true
	for _, q := range []model.Question{naScale, {ID: "c", Type: model.QuestionTypeChoice, Options: []string{"a", "b"}, AllowNA: true}} {
		v, isNA := r.normalize(q, model.NotApplicable(), true)
		assert.True(t, isNA, "question %s", q.ID)
		assert.Zero(t, v)
	}
	assert.Empty(t, r.diags)
}

func TestNormalizeNotApplicableNotAllowed(t *testing.T) {
	r := newTestRun()

	v, isNA := r.normalize(scaleQ("q"), model.NotApplicable(), true)
	assert.True(t, isNA)
	assert.Zero(t, v)
	assert.Len(t, r.diags, 1)
	assert.Equal(t, model.DiagInvalidAnswer, r.diags[0].Code)
	assert.Equal(t, "q", r.diags[0].QuestionID)
}

func TestNormalizeWrongKind(t *testing.T) {
	r := newTestRun()

	v, isNA := r.normalize(scaleQ("q"), model.Choice("often"), true)
	assert.True(t, isNA)
	assert.Zero(t, v)
	assert.Len(t, r.diags, 1)
	assert.Equal(t, model.DiagInvalidAnswer, r.diags[0].Code)
	assert.Equal(t, "q", r.diags[0].QuestionID)
}

func TestNormalizeChoiceOrdinal(t *testing.T) {
	r := newTestRun()
	q := model.Question{ID: "c", Type: model.QuestionTypeChoice, Options: []string{"great", "good", "fair", "poor", "bad"}}

	tests := []struct {
		opt  string
		want float64
	}{
		{"great", 1},
		{"good", 0.5},
		{"fair", 0},
		{"poor", -0.5},
		{"bad", -1},
	}
	for _, tt := range tests {
		v, isNA := r.normalize(q, model.Choice(tt.opt), true)
		assert.False(t, isNA)
		assert.InDelta(t, tt.want, v, 1e-9, "option %s", tt.opt)
	}
}

func TestNormalizeChoiceUnknownOption(t *testing.T) {
	r := newTestRun()
	q := model.Question{ID: "c", Type: model.QuestionTypeChoice, Options: []string{"a", "b"}}

	v, isNA := r.normalize(q, model.Choice("nope"), true)
	assert.True(t, isNA)
	assert.Zero(t, v)
	assert.Len(t, r.diags, 1)
}

func TestNormalizeSingleOptionChoice(t *testing.T) {
	r := newTestRun()
	q := model.Question{ID: "c", Type: model.QuestionTypeChoice, Options: []string{"only"}}

	v, isNA := r.normalize(q, model.Choice("only"), true)
	assert.False(t, isNA)
	assert.Zero(t, v)
}

func TestAmplify(t *testing.T) {
	assert.Zero(t, amplify(0, 1.2))
	assert.InDelta(t, 1, amplify(1, 1.2), 1e-9)
	assert.InDelta(t, -1, amplify(-1, 1.2), 1e-9)

	// pulls mid-range values toward neutral, keeps sign
	v := amplify(0.5, 1.2)
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 0.5)
	assert.InDelta(t, -v, amplify(-0.5, 1.2), 1e-9)
}
