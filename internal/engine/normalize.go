package engine

import (
	"math"

	"revim/internal/model"
)

// normalize maps one answer onto [-1,1]. The second return is the
// not-applicable flag: true excludes the question from every average.
//
// Blank answers are neutral, not skipped: a scale question defaults to
// its midpoint, a choice question to its first option. Only the
// explicit sentinel (and answers of the wrong kind) produce NA. The
// sentinel on a question that does not allow it still skips the
// question, with a diagnostic.
func (r *run) normalize(q model.Question, a model.AnswerValue, present bool) (float64, bool) {
	if present && a.Kind == model.AnswerNotApplicable {
		if !q.AllowNA {
			r.warn(model.DiagInvalidAnswer, q.ID, "",
				"question "+q.ID+" does not accept a not-applicable answer, skipping it")
		}
		return 0, true
	}

	switch q.Type {
	case model.QuestionTypeScale:
		if !present {
			return 0, false // midpoint
		}
		if a.Kind != model.AnswerNumeric {
			r.warn(model.DiagInvalidAnswer, q.ID, "",
				"question "+q.ID+": expected a numeric rating, treating as not applicable")
			return 0, true
		}
		if q.ScaleHigh == q.ScaleLow {
			return 0, false
		}
		mid := (q.ScaleLow + q.ScaleHigh) / 2
		v := clamp((a.Number-mid)/(q.ScaleHigh-mid), -1, 1)
		if q.AmplifyExtremes {
			v = amplify(v, r.cfg.AmplifyExponent)
		}
		return v, false

	case model.QuestionTypeChoice:
		idx := 0
		if present {
			if a.Kind != model.AnswerChoice {
				r.warn(model.DiagInvalidAnswer, q.ID, "",
					"question "+q.ID+": expected an option label, treating as not applicable")
				return 0, true
			}
			if a.Choice != "" {
				found := -1
				for i, opt := range q.Options {
					if opt == a.Choice {
						found = i
						break
					}
				}
				if found < 0 {
					r.warn(model.DiagInvalidAnswer, q.ID, "",
						"question "+q.ID+": option "+a.Choice+" is not listed, treating as not applicable")
					return 0, true
				}
				idx = found
			}
		}
		n := len(q.Options)
		if n <= 1 {
			return 0, false
		}
		return 1 - 2*float64(idx)/float64(n-1), false

	default:
		r.warn(model.DiagInvalidAnswer, q.ID, "",
			"question "+q.ID+": unsupported question type, treating as not applicable")
		return 0, true
	}
}

// amplify stretches extreme answers away from neutral while keeping
// the sign and the [-1,1] bound.
func amplify(v, exponent float64) float64 {
	if v == 0 {
		return 0
	}
	return clamp(math.Copysign(math.Pow(math.Abs(v), exponent), v), -1, 1)
}
