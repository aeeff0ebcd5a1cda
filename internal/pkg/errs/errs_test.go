//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parking-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both cause and mark", func(t *testing.T) {
		cause := errs.New("connection reset")
		err := errs.Mark(errs.Wrap(cause, "find next spot"), errs.ErrDatabase)

		assert.True(t, errs.Is(err, errs.ErrDatabase))
		assert.True(t, errs.Is(err, cause))
		assert.Contains(t, err.Error(), "find next spot")
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrTicketNotFound)
		assert.True(t, errors.Is(err, errs.ErrTicketNotFound))
	})
}

func TestMarkWithMessage(t *testing.T) {
	err := errs.MarkWithMessage(errs.ErrTicketNotFound, "no ticket for vehicle %s", "AB-123")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrTicketNotFound))
	assert.Equal(t, "no ticket for vehicle AB-123", err.Error())
}

func TestWrapfNil(t *testing.T) {
	assert.NoError(t, errs.Wrapf(nil, "ticket %d", 1))
	assert.NoError(t, errs.Wrap(nil, "noop"))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "outer")

	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
