//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"tipi-reserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type remainingError struct {
	Remaining int
}

func (e *remainingError) Error() string {
	return fmt.Sprintf("only %d left", e.Remaining)
}

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("errors.Is matches the attached sentinel", func(t *testing.T) {
		cause := errs.New("db write failed")
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("errors.Is still matches the cause chain", func(t *testing.T) {
		cause := errors.New("root cause")
		err := errs.Mark(errs.Wrap(cause, "context"), sentinel)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("errors.As reaches the cause through the mark", func(t *testing.T) {
		err := errs.Mark(&remainingError{Remaining: 3}, sentinel)

		var typed *remainingError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, 3, typed.Remaining)
	})

	t.Run("nested marks stay matchable", func(t *testing.T) {
		inner := errs.New("inner sentinel")
		err := errs.Mark(errs.Mark(errs.New("cause"), inner), sentinel)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, inner)
	})

	t.Run("nil cause degrades to the sentinel itself", func(t *testing.T) {
		assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})

	t.Run("message comes from the cause", func(t *testing.T) {
		err := errs.Mark(errs.New("db write failed"), sentinel)
		assert.Equal(t, "db write failed", err.Error())
	})
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Mark(errs.New("boom"), errs.New("sentinel"))

	lines := errs.ExtractStackLines(err, 5)
	require.NotEmpty(t, lines)
	assert.Len(t, lines, 5)
	assert.Equal(t, "boom", lines[0])

	assert.Nil(t, errs.ExtractStackLines(nil, 5))
}
