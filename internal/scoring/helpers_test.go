package scoring

import (
	"context"
	"testing"

	"github.com/NeyGuaiume2/sdisc/internal/refdata"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/stretchr/testify/require"
)

type questionList []types.Question

func (q questionList) Questions() []types.Question { return q }

var sampleQuestions = questionList{
	{ID: 1, D: "Direto", I: "Alegre", S: "Calmo", C: "Exato"},
	{ID: 2, D: "Ousado", I: "Popular", S: "Leal", C: "Formal"},
	{ID: 3, D: "Firme", I: "Falante", S: "Gentil", C: "Firme"},
}

func embeddedStore(t *testing.T) *refdata.Store {
	t.Helper()
	store, err := refdata.LoadEmbedded(context.Background(), nil)
	require.NoError(t, err)
	return store
}

// uniformAnswers builds one answer per question picking the given axes' words.
func uniformAnswers(questions []types.Question, most, least types.Axis) []types.Answer {
	answers := make([]types.Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, types.Answer{QuestionID: q.ID, Most: q.Word(most), Least: q.Word(least)})
	}
	return answers
}
