// Package scoring resolves answer words to DISC axes, aggregates signed axis scores and
// classifies the resulting profile.
package scoring

import (
	"errors"
	"fmt"
)

// ErrTotalInputFailure matches every error meaning the submission produced no usable contribution.
// An all-zero score set from resolvable answers is a valid outcome and never returns it.
var ErrTotalInputFailure = errors.New("total input failure")

// Total input failures
var (
	ErrNoAnswers           = fmt.Errorf("%w: no answers submitted", ErrTotalInputFailure)
	ErrNoResolvableAnswers = fmt.Errorf("%w: no answer could be resolved to an axis", ErrTotalInputFailure)
)
