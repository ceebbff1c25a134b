package service

import (
	"encoding/json"

	"revim/internal/model"
)

// EncodeAnswers serializes an answer set into the opaque snapshot
// payload. The payload carries no semantics beyond question ids mapped
// to values, so snapshots survive schema additions.
func EncodeAnswers(answers model.AnswerSet) (string, error) {
	data, err := json.Marshal(answers)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeAnswers is the inverse of EncodeAnswers.
func DecodeAnswers(payload string) (model.AnswerSet, error) {
	var answers model.AnswerSet
	if err := json.Unmarshal([]byte(payload), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
