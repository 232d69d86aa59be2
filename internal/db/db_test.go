package db

import (
	"encoding/json"
	"testing"

	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *types.Result {
	return &types.Result{
		DScore:           12,
		SScore:           -12,
		PrimaryProfile:   "D",
		SecondaryProfile: "I",
		DiscLevels: map[string]types.Tier{
			"D": types.TierHigh, "I": types.TierModerate, "S": types.TierModerate, "C": types.TierModerate,
		},
	}
}

func TestEncodeSaveInput(t *testing.T) {
	enc, err := encodeSaveInput(SaveInput{
		RawResponses: []types.Answer{{QuestionID: 1, Most: "Direto", Least: "Calmo"}},
		Result:       sampleResult(),
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"question_id":1,"most":"Direto","least":"Calmo"}]`, string(enc.rawResponses))
	assert.JSONEq(t, `{"D":"high","I":"moderate","S":"moderate","C":"moderate"}`, string(enc.discLevels))

	var decoded types.Result
	require.NoError(t, json.Unmarshal(enc.result, &decoded))
	assert.Equal(t, "D", decoded.PrimaryProfile)
}

func TestEncodeSaveInput_NilAnswersStoredAsEmptyArray(t *testing.T) {
	enc, err := encodeSaveInput(SaveInput{Result: sampleResult()})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(enc.rawResponses))
}

func TestEncodeSaveInput_RequiresResult(t *testing.T) {
	_, err := encodeSaveInput(SaveInput{})
	assert.Error(t, err)
}

func TestResultRecord_Accessors(t *testing.T) {
	enc, err := encodeSaveInput(SaveInput{
		RawResponses: []types.Answer{{QuestionID: 2, Most: "Ousado", Least: "Leal"}},
		Result:       sampleResult(),
	})
	require.NoError(t, err)

	rec := &ResultRecord{
		DScore:           12,
		SScore:           -12,
		RawResponsesJSON: enc.rawResponses,
		DiscLevelsJSON:   enc.discLevels,
		ResultJSON:       enc.result,
	}

	answers, err := rec.RawResponses()
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "Ousado", answers[0].Most)

	levels, err := rec.DiscLevels()
	require.NoError(t, err)
	assert.Equal(t, types.TierHigh, levels["D"])

	result, err := rec.Result()
	require.NoError(t, err)
	assert.Equal(t, sampleResult(), result)

	assert.Equal(t, types.AxisScores{D: 12, S: -12}, rec.Scores())
}

func TestResultRecord_AccessorErrors(t *testing.T) {
	rec := &ResultRecord{
		RawResponsesJSON: json.RawMessage(`{`),
		DiscLevelsJSON:   json.RawMessage(`[]`),
		ResultJSON:       json.RawMessage(`"x"`),
	}

	_, err := rec.RawResponses()
	assert.Error(t, err)
	_, err = rec.DiscLevels()
	assert.Error(t, err)
	_, err = rec.Result()
	assert.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, clampLimit(0))
	assert.Equal(t, DefaultListLimit, clampLimit(-5))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, MaxListLimit, clampLimit(1000))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	require.NotNil(t, nullable("Ana"))
	assert.Equal(t, "Ana", *nullable("Ana"))
}
