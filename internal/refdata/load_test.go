package refdata

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/NeyGuaiume2/sdisc/internal/schemas"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad_ValidFS(t *testing.T) {
	store, err := Load(context.Background(), testFS(), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, store)

	assert.Equal(t, 2, store.Len())
	q, ok := store.Question(2)
	require.True(t, ok)
	assert.Equal(t, "Ousado", q.D)
	assert.Equal(t, "Formal", q.C)

	assert.Equal(t, "Dominância", store.Title(types.Dominance))
	d, ok := store.Description(types.Dominance)
	require.True(t, ok)
	assert.Equal(t, []string{"Ouvir mais"}, d.DevelopmentAreas)

	entry, ok := store.GeneralPrimary().Lookup(types.Dominance, types.TierHigh)
	require.True(t, ok)
	assert.Equal(t, "Alta dominância", entry.Description)

	entry, ok = store.ProfessionalPrimary().Lookup(types.Dominance, types.TierHigh)
	require.True(t, ok)
	assert.Equal(t, "Orientado a resultados", entry.WorkStyle)
}

func TestLoad_SecondaryTextOrObject(t *testing.T) {
	store, err := Load(context.Background(), testFS(), zap.NewNop())
	require.NoError(t, err)

	key := types.ComboKey{Primary: types.Dominance, Tier: types.TierHigh}

	short, ok := store.GeneralSecondary().Lookup(key, types.Influence)
	require.True(t, ok)
	assert.Equal(t, types.Entry{Description: "Texto curto"}, short)

	long, ok := store.GeneralSecondary().Lookup(key, types.Conformity)
	require.True(t, ok)
	assert.Equal(t, "Texto longo", long.Description)
	assert.Equal(t, "Qualidade", long.Motivation)

	prof, ok := store.ProfessionalSecondary().Lookup(key, types.Influence)
	require.True(t, ok)
	assert.Equal(t, "Mobiliza a equipe", prof.WorkStyle)
}

func TestLoad_MissingQuestions(t *testing.T) {
	fsys := testFS()
	delete(fsys, "questions.json")

	_, err := Load(context.Background(), fsys, nil)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Equal(t, DocQuestions, loadErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_MissingDescriptions(t *testing.T) {
	fsys := testFS()
	delete(fsys, "descriptions.json")

	_, err := Load(context.Background(), fsys, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_QuestionsAsYAML(t *testing.T) {
	fsys := testFS()
	delete(fsys, "questions.json")
	fsys["questions.yml"] = &fstest.MapFile{Data: []byte(`
- id: 1
  D: Direto
  I: Alegre
  S: Calmo
  C: Exato
`)}

	store, err := Load(context.Background(), fsys, nil)
	require.NoError(t, err)
	q, ok := store.Question(1)
	require.True(t, ok)
	assert.Equal(t, "Alegre", q.I)
}

func TestLoad_SchemaViolation(t *testing.T) {
	fsys := testFS()
	fsys["questions.json"] = &fstest.MapFile{Data: []byte(`[{"id": 1, "D": "Direto", "I": "Alegre", "S": "Calmo"}]`)}

	_, err := Load(context.Background(), fsys, nil)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "questions.json", loadErr.Path)
	assert.Contains(t, loadErr.Error(), "schema validation failed")

	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestLoad_InvalidYAML(t *testing.T) {
	fsys := testFS()
	fsys["professional_primary.yaml"] = &fstest.MapFile{Data: []byte("D: [unclosed")}

	_, err := Load(context.Background(), fsys, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_MissingOptionalTablesWarn(t *testing.T) {
	fsys := testFS()
	delete(fsys, "general_secondary.json")
	delete(fsys, "professional_primary.yaml")

	core, logs := observer.New(zap.WarnLevel)
	store, err := Load(context.Background(), fsys, zap.New(core))
	require.NoError(t, err)

	assert.Empty(t, store.GeneralSecondary())
	assert.NotNil(t, store.GeneralSecondary())
	assert.Empty(t, store.ProfessionalPrimary())

	missing := logs.FilterMessage("interpretation table not found, using an empty table").All()
	require.Len(t, missing, 2)

	var codes []IssueCode
	for _, issue := range store.Issues() {
		codes = append(codes, issue.Code)
	}
	assert.Contains(t, codes, CodeMissingDocument)
}

func TestLoad_MalformedComboKeySkipped(t *testing.T) {
	fsys := testFS()
	fsys["general_secondary.json"] = &fstest.MapFile{Data: []byte(`{
		"D_high": {"I": "ok"},
		"X_high": {"I": "bad axis"},
		"D_extreme": {"I": "bad tier"},
		"Dhigh": {"I": "no separator"}
	}`)}

	store, err := Load(context.Background(), fsys, nil)
	require.NoError(t, err)
	assert.Len(t, store.GeneralSecondary(), 1)

	invalid := 0
	for _, issue := range store.Issues() {
		if issue.Code == CodeInvalidKey {
			invalid++
			assert.Equal(t, SeverityWarning, issue.Severity)
		}
	}
	assert.Equal(t, 3, invalid)
}

func TestLoad_UnknownEntryFieldsReported(t *testing.T) {
	fsys := testFS()
	fsys["general_primary.json"] = &fstest.MapFile{Data: []byte(`{"D": {"high": {"Descrição": "texto"}}}`)}
	fsys["general_secondary.json"] = &fstest.MapFile{Data: []byte(`{
		"D_high": {"I": {"Descricao": "texto", "motivation": "Metas"}, "S": {}, "C": ""}
	}`)}

	store, err := Load(context.Background(), fsys, nil)
	require.NoError(t, err)

	// The entries still load so the resolver can report them as unavailable
	entry, ok := store.GeneralPrimary().Lookup(types.Dominance, types.TierHigh)
	require.True(t, ok)
	assert.True(t, entry.IsZero())

	key := types.ComboKey{Primary: types.Dominance, Tier: types.TierHigh}
	partial, ok := store.GeneralSecondary().Lookup(key, types.Influence)
	require.True(t, ok)
	assert.Equal(t, "Metas", partial.Motivation)

	var unknown, blank []string
	for _, issue := range store.Issues() {
		switch {
		case issue.Code == CodeInvalidKey:
			assert.Equal(t, SeverityWarning, issue.Severity)
			unknown = append(unknown, issue.Message)
		case issue.Code == CodeMissingEntry && strings.Contains(issue.Message, "has no text"):
			blank = append(blank, issue.Message)
		}
	}
	require.Len(t, unknown, 2)
	assert.Contains(t, unknown[0]+unknown[1], `"Descrição"`)
	assert.Contains(t, unknown[0]+unknown[1], `"Descricao"`)
	// D.high, D_high.S and D_high.C carry no text; D_high.I keeps its motivation
	assert.Len(t, blank, 3)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, testFS(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadEmbedded(t *testing.T) {
	store, err := LoadEmbedded(context.Background(), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 28, store.Len())
	assert.False(t, HasErrors(store.Issues()), "embedded data should have no error-level issues: %v", store.Issues())

	for _, axis := range types.Axes {
		for _, tier := range types.Tiers {
			_, ok := store.GeneralPrimary().Lookup(axis, tier)
			assert.True(t, ok, "general primary %s/%s", axis, tier)
			_, ok = store.ProfessionalPrimary().Lookup(axis, tier)
			assert.True(t, ok, "professional primary %s/%s", axis, tier)
		}
	}

	// Short-form entry in the embedded secondary table
	entry, ok := store.GeneralSecondary().Lookup(types.ComboKey{Primary: types.Conformity, Tier: types.TierHigh}, types.Steadiness)
	require.True(t, ok)
	assert.NotEmpty(t, entry.Description)
}

func TestFS(t *testing.T) {
	dir := t.TempDir()
	assert.NotNil(t, FS(""))

	_, err := fs.Stat(FS(""), "questions.json")
	assert.NoError(t, err)

	_, err = fs.Stat(FS(dir), "questions.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
