package scoring

import (
	"github.com/NeyGuaiume2/sdisc/internal/logging"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"go.uber.org/zap"
)

// QuestionSource provides the question bank. *refdata.Store satisfies it.
type QuestionSource interface {
	Questions() []types.Question
}

// Collision records a word authored for more than one axis of the same question
type Collision struct {
	QuestionID int          `json:"question_id"`
	Word       string       `json:"word"`
	Axes       []types.Axis `json:"axes"`
}

// WordResolver maps (question id, word) to the axis the word stands for in that question.
type WordResolver struct {
	// question id -> normalized word -> axes in D,I,S,C order
	index      map[int]map[string][]types.Axis
	collisions []Collision
	logger     *zap.Logger
}

// NewWordResolver indexes the question bank. When an id appears more than once the first question wins.
func NewWordResolver(src QuestionSource, logger *zap.Logger) *WordResolver {
	r := &WordResolver{
		index:  map[int]map[string][]types.Axis{},
		logger: logging.OrNop(logger),
	}

	for _, q := range src.Questions() {
		if _, seen := r.index[q.ID]; seen {
			continue
		}
		words := map[string][]types.Axis{}
		for _, axis := range types.Axes {
			word := types.NormalizeWord(q.Word(axis))
			if word == "" {
				continue
			}
			words[word] = append(words[word], axis)
		}
		for _, axis := range types.Axes {
			word := types.NormalizeWord(q.Word(axis))
			if axes := words[word]; len(axes) > 1 && axes[0] == axis {
				r.collisions = append(r.collisions, Collision{QuestionID: q.ID, Word: word, Axes: axes})
			}
		}
		r.index[q.ID] = words
	}

	return r
}

// Resolve returns the axis of word in question questionID.
// The second result is false when the question is unknown or no axis word matches.
// A word listed for several axes resolves to the first of them and logs a warning.
func (r *WordResolver) Resolve(questionID int, word string) (types.Axis, bool) {
	axis, _, ok := r.resolve(questionID, word)
	return axis, ok
}

// resolve is Resolve that also returns the collision the word hit, if any.
func (r *WordResolver) resolve(questionID int, word string) (types.Axis, *Collision, bool) {
	words, ok := r.index[questionID]
	if !ok {
		return types.UnknownAxis, nil, false
	}

	normalized := types.NormalizeWord(word)
	axes := words[normalized]
	if len(axes) == 0 {
		return types.UnknownAxis, nil, false
	}
	if len(axes) == 1 {
		return axes[0], nil, true
	}

	r.logger.Warn("word maps to more than one axis, using the first",
		zap.Int("question_id", questionID),
		zap.String("word", normalized),
		zap.Strings("axes", axisStrings(axes)),
		zap.String("chosen", string(axes[0])))
	return axes[0], &Collision{QuestionID: questionID, Word: normalized, Axes: axes}, true
}

// Collisions returns the ambiguous words found when the resolver was built.
func (r *WordResolver) Collisions() []Collision {
	out := make([]Collision, len(r.collisions))
	copy(out, r.collisions)
	return out
}

// Has reports whether the question id is known.
func (r *WordResolver) Has(questionID int) bool {
	_, ok := r.index[questionID]
	return ok
}

func axisStrings(axes []types.Axis) []string {
	out := make([]string, len(axes))
	for i, a := range axes {
		out[i] = string(a)
	}
	return out
}
