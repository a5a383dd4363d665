package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/nonempty"
)

func TestFromError(t *testing.T) {
	t.Parallel()

	t.Run("nil error lifts to Ok", func(t *testing.T) {
		got := validation.FromError("value", nil)

		assert.Equal(t, validation.Ok[string, error]("value"), got)
	})

	t.Run("non-nil error lifts to a single-error failure", func(t *testing.T) {
		cause := errors.New("not found")

		got := validation.FromError("", cause)

		errs, failed := got.Errors()
		require.True(t, failed)
		assert.Equal(t, 1, errs.Len())
		assert.ErrorIs(t, errs.Head(), cause)
	})
}

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("success returns the value and nil", func(t *testing.T) {
		value, err := validation.Result(validation.Ok[string, error]("done"))

		require.NoError(t, err)
		assert.Equal(t, "done", value)
	})

	t.Run("failure joins every accumulated error", func(t *testing.T) {
		first := errors.New("bad email")
		second := errors.New("bad phone")
		v := validation.Errs[string](nonempty.Of[error](first, second))

		value, err := validation.Result(v)

		require.Error(t, err)
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
		assert.Zero(t, value)
	})

	t.Run("round-trips with FromError", func(t *testing.T) {
		cause := errors.New("boom")

		value, err := validation.Result(validation.FromError(0, cause))

		require.ErrorIs(t, err, cause)
		assert.Zero(t, value)
	})
}
