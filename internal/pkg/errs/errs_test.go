package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"moving/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("prefecture id given as int", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("prefectureId", 48)
		assert.Equal(t, "object not found: %!s(int=48)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("invalid format"))

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("box", 1000, 0, 999)

		assert.Equal(t, 1000, err.Value)
		assert.Equal(t, "value is invalid: 1000 is box, min value is 0, max value is 999", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("month", 13, 1, 12, errors.New("calendar"))

		assert.Equal(t,
			"value is invalid: 13 is month, min value is 1, max value is 12 (cause: calendar)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("address", "Chiyoda\nTokyo", 0, 100)
		assert.Contains(t, err.Error(), "Chiyoda Tokyo")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerName")

	assert.Equal(t, "value is required: customerName", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("customerName", errors.New("blank"))
	assert.Equal(t, "value is required: customerName (cause: blank)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", errs.NewObjectNotFoundError("order", "x"))

	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("tel"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("bed", -1, 0, 999), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("email"), errs.ErrValueIsRequired)
}
