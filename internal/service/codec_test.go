package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revim/internal/model"
)

func TestAnswerCodecRoundTrip(t *testing.T) {
	in := model.AnswerSet{
		"B1.1": model.Numeric(6),
		"A1":   model.Choice("3-5 years"),
		"F2.4": model.NotApplicable(),
	}

	payload, err := EncodeAnswers(in)
	require.NoError(t, err)

	out, err := DecodeAnswers(payload)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeAnswersRejectsGarbage(t *testing.T) {
	_, err := DecodeAnswers("{not json")
	assert.Error(t, err)
}
