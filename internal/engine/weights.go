package engine

import "revim/internal/model"

// computeWeights turns the raw importance ratings into normalized
// category weights summing to 1. All-zero or all-invalid ratings fall
// back to a uniform distribution.
func (r *run) computeWeights() (map[string]float64, error) {
	raw := make(map[string]float64, len(r.schema.Categories))
	total := 0.0

	for _, cat := range r.schema.Categories {
		if cat.WeightQuestionID == "" {
			return nil, &SchemaMismatchError{CategoryID: cat.ID, Reason: "no weight question bound"}
		}
		if _, found := r.schema.QuestionByID(cat.WeightQuestionID); !found {
			return nil, &SchemaMismatchError{
				QuestionID: cat.WeightQuestionID,
				CategoryID: cat.ID,
				Reason:     "weight question is not defined in the schema",
			}
		}

		v := 0.0
		a, present := r.answer(cat.WeightQuestionID)
		switch {
		case !present, a.Kind == model.AnswerNotApplicable:
			// blank importance counts as zero
		case a.Kind == model.AnswerNumeric && a.Number > 0:
			v = a.Number
		case a.Kind == model.AnswerNumeric:
			// zero or negative rating contributes nothing
		default:
			r.warn(model.DiagInvalidAnswer, cat.WeightQuestionID, cat.ID,
				"importance rating for "+cat.Name+" is not numeric, treating as 0")
		}
		raw[cat.ID] = v
		total += v
	}

	weights := make(map[string]float64, len(raw))
	if total <= 0 {
		r.warn(model.DiagDegenerateWeights, "", "",
			"all importance ratings are zero or invalid, using uniform weights")
		uniform := 1.0 / float64(len(r.schema.Categories))
		for _, cat := range r.schema.Categories {
			weights[cat.ID] = uniform
		}
		return weights, nil
	}
	for id, v := range raw {
		weights[id] = v / total
	}
	return weights, nil
}
