package refdata

import (
	"testing"

	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_SortsAndIndexesQuestions(t *testing.T) {
	store := NewStore(Contents{
		Questions: []types.Question{
			{ID: 2, D: "Ousado", I: "Popular", S: "Leal", C: "Formal"},
			{ID: 1, D: "Direto", I: "Alegre", S: "Calmo", C: "Exato"},
		},
	})

	questions := store.Questions()
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, 2, questions[1].ID)

	_, ok := store.Question(3)
	assert.False(t, ok)
}

func TestNewStore_NilTablesBecomeEmpty(t *testing.T) {
	store := NewStore(Contents{})

	assert.NotNil(t, store.GeneralPrimary())
	assert.NotNil(t, store.ProfessionalPrimary())
	assert.NotNil(t, store.GeneralSecondary())
	assert.NotNil(t, store.ProfessionalSecondary())

	_, ok := store.Description(types.Dominance)
	assert.False(t, ok)
	assert.Equal(t, "D", store.Title(types.Dominance))
}

func TestStore_QuestionsReturnsCopy(t *testing.T) {
	store := NewStore(Contents{
		Questions: []types.Question{{ID: 1, D: "Direto", I: "Alegre", S: "Calmo", C: "Exato"}},
	})

	questions := store.Questions()
	questions[0].D = "changed"

	q, _ := store.Question(1)
	assert.Equal(t, "Direto", q.D)
	assert.Equal(t, "Direto", store.Questions()[0].D)
}

func TestNewStore_DuplicateIDFirstWins(t *testing.T) {
	store := NewStore(Contents{
		Questions: []types.Question{
			{ID: 1, D: "Direto", I: "Alegre", S: "Calmo", C: "Exato"},
			{ID: 1, D: "Outro", I: "Popular", S: "Leal", C: "Formal"},
		},
	})

	assert.Equal(t, 1, store.Len())
	q, _ := store.Question(1)
	assert.Equal(t, "Direto", q.D)
	assert.True(t, HasErrors(store.Issues()))
}
