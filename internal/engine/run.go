package engine

import (
	"fmt"
	"math"

	"revim/internal/model"
)

// run carries the per-evaluation state: the inputs plus the diagnostic
// and log trails that ride along with the result.
type run struct {
	schema  *model.Schema
	answers model.AnswerSet
	cfg     Config
	diags   []model.Diagnostic
	log     []string
}

func (r *run) logf(format string, args ...any) {
	r.log = append(r.log, fmt.Sprintf(format, args...))
}

func (r *run) warn(code model.DiagnosticCode, questionID, categoryID, msg string) {
	r.diags = append(r.diags, model.Diagnostic{
		Code:       code,
		QuestionID: questionID,
		CategoryID: categoryID,
		Message:    msg,
	})
	r.log = append(r.log, "warning: "+msg)
}

// answer returns the stored answer and whether one was supplied at all.
// A missing answer is "blank", which normalizes to neutral, unlike the
// explicit not-applicable sentinel.
func (r *run) answer(questionID string) (model.AnswerValue, bool) {
	a, ok := r.answers[questionID]
	return a, ok
}

// roleValue normalizes the answer to a role-bound question. ok is false
// when the role is unbound, the question is unknown, or the answer is
// not applicable.
func (r *run) roleValue(questionID string) (float64, bool) {
	if questionID == "" {
		return 0, false
	}
	q, found := r.schema.QuestionByID(questionID)
	if !found {
		return 0, false
	}
	a, present := r.answer(questionID)
	v, isNA := r.normalize(q, a, present)
	if isNA {
		return 0, false
	}
	return v, true
}

// rawNumber returns the raw numeric answer to a question, for values
// consumed unscaled (ages, sunk-cost ratings).
func (r *run) rawNumber(questionID string) (float64, bool) {
	if questionID == "" {
		return 0, false
	}
	a, present := r.answer(questionID)
	if !present || a.Kind != model.AnswerNumeric {
		return 0, false
	}
	return a.Number, true
}

// choiceLabel returns the selected option label for a role question.
func (r *run) choiceLabel(questionID string) (string, bool) {
	if questionID == "" {
		return "", false
	}
	a, present := r.answer(questionID)
	if !present || a.Kind != model.AnswerChoice {
		return "", false
	}
	return a.Choice, true
}

// fraction maps a scale answer onto [0,1]: 0 at the low end, 1 at the
// high end. Blank or not-applicable answers yield ok=false.
func (r *run) fraction(q model.Question, questionID string) (float64, bool) {
	a, present := r.answer(questionID)
	if !present || a.Kind != model.AnswerNumeric {
		return 0, false
	}
	if q.ScaleHigh == q.ScaleLow {
		return 0.5, true
	}
	f := (a.Number - q.ScaleLow) / (q.ScaleHigh - q.ScaleLow)
	return clamp(f, 0, 1), true
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
