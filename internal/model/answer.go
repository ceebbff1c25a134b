package model

import (
	"encoding/json"
	"fmt"
)

// AnswerKind discriminates the answer variant
type AnswerKind string

const (
	AnswerNumeric       AnswerKind = "numeric"
	AnswerChoice        AnswerKind = "choice"
	AnswerNotApplicable AnswerKind = "na"
)

// AnswerValue is one respondent answer: a number, an option label,
// or an explicit not-applicable.
type AnswerValue struct {
	Kind   AnswerKind
	Number float64
	Choice string
}

func Numeric(v float64) AnswerValue { return AnswerValue{Kind: AnswerNumeric, Number: v} }
func Choice(opt string) AnswerValue { return AnswerValue{Kind: AnswerChoice, Choice: opt} }
func NotApplicable() AnswerValue    { return AnswerValue{Kind: AnswerNotApplicable} }

// MarshalJSON encodes numeric answers as JSON numbers, choices as
// strings and not-applicable as null.
func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerNumeric:
		return json.Marshal(a.Number)
	case AnswerChoice:
		return json.Marshal(a.Choice)
	case AnswerNotApplicable:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("answer: unknown kind %q", a.Kind)
	}
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = NotApplicable()
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*a = Numeric(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Choice(s)
		return nil
	}
	return fmt.Errorf("answer: cannot decode %s", string(data))
}

// AnswerSet maps question IDs to answers. A question may be absent
// entirely, which is a blank, distinct from an explicit not-applicable.
type AnswerSet map[string]AnswerValue
