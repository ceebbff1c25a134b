package schema

import (
	"errors"
	"fmt"

	"revim/internal/model"
)

// Validate checks the structural invariants a schema must satisfy
// before the engine will accept it: unique question IDs, sane scale
// ranges and options, and a weight question for every category.
func Validate(s *model.Schema) error {
	if s == nil {
		return errors.New("nil schema")
	}
	if len(s.Categories) == 0 {
		return errors.New("no categories defined")
	}

	seen := make(map[string]bool)
	checkQuestion := func(q model.Question, where string) error {
		if q.ID == "" {
			return fmt.Errorf("%s: question with empty id", where)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		switch q.Type {
		case model.QuestionTypeScale:
			if q.ScaleHigh < q.ScaleLow {
				return fmt.Errorf("question %q: scale high %v below low %v", q.ID, q.ScaleHigh, q.ScaleLow)
			}
		case model.QuestionTypeChoice:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %q: choice question without options", q.ID)
			}
			opts := make(map[string]bool, len(q.Options))
			for _, o := range q.Options {
				if opts[o] {
					return fmt.Errorf("question %q: duplicate option %q", q.ID, o)
				}
				opts[o] = true
			}
		default:
			return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
		}
		if q.Weight < 0 {
			return fmt.Errorf("question %q: negative weight", q.ID)
		}
		return nil
	}

	for _, cat := range s.Categories {
		if cat.ID == "" {
			return errors.New("category with empty id")
		}
		if len(cat.Questions) == 0 {
			return fmt.Errorf("category %q has no questions", cat.ID)
		}
		for _, q := range cat.Questions {
			if err := checkQuestion(q, "category "+cat.ID); err != nil {
				return err
			}
		}
	}
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			if err := checkQuestion(q, "section "+sec.ID); err != nil {
				return err
			}
		}
	}

	for _, cat := range s.Categories {
		if cat.WeightQuestionID == "" {
			return fmt.Errorf("category %q has no weight question", cat.ID)
		}
		if !seen[cat.WeightQuestionID] {
			return fmt.Errorf("category %q: weight question %q is not defined", cat.ID, cat.WeightQuestionID)
		}
	}

	// Role bindings may be empty but must resolve when set.
	for _, ref := range []struct{ name, id string }{
		{"batna", s.Roles.BATNA},
		{"batnaConfidence", s.Roles.BATNAConfidence},
		{"duration", s.Roles.Duration},
		{"discountProxy", s.Roles.DiscountProxy},
		{"optimism", s.Roles.Optimism},
		{"benefitGrowth", s.Roles.BenefitGrowth},
		{"costReduction", s.Roles.CostReduction},
		{"selfAge", s.Roles.SelfAge},
		{"partnerAge", s.Roles.PartnerAge},
		{"sunkInfluence", s.Roles.SunkInfluence},
		{"sunkWorry", s.Roles.SunkWorry},
		{"singleSatisfaction", s.Roles.SingleSatisfaction},
		{"altLikelihood", s.Roles.AltLikelihood},
		{"recoveryTime", s.Roles.RecoveryTime},
		{"partnerAttraction", s.Roles.PartnerAttraction},
		{"selfAttraction", s.Roles.SelfAttraction},
		{"attractionGap", s.Roles.AttractionGap},
		{"initialAttraction", s.Roles.InitialAttraction},
		{"noAlternativeStart", s.Roles.NoAlternativeStart},
		{"switchingCostImportance", s.Roles.SwitchingCostImportance},
		{"breakupRisk", s.Roles.BreakupRisk},
		{"futureCertainty", s.Roles.FutureCertainty},
		{"conflictPattern", s.Roles.ConflictPattern},
		{"learningCapacity", s.Roles.LearningCapacity},
	} {
		if ref.id != "" && !seen[ref.id] {
			return fmt.Errorf("role %s references unknown question %q", ref.name, ref.id)
		}
	}
	return nil
}
