package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"curator/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	t.Parallel()

	err := serrors.With(serrors.ErrConflict, "item already scheduled for %s on %s", "NEW_TAB_EN_US", "2030-01-01")

	require.ErrorIs(t, err, serrors.ErrConflict)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
	require.Contains(t, err.Error(), "NEW_TAB_EN_US")
	require.Contains(t, err.Error(), "2030-01-01")
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("row not found")
	err := serrors.Wrap(serrors.ErrNotFound, cause, "schedule not found")

	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "schedule not found: row not found", err.Error())
}

func TestWrap_SurvivesFurtherWrapping(t *testing.T) {
	t.Parallel()

	err := serrors.With(serrors.ErrBadRequest, "unknown surface")
	wrapped := fmt.Errorf("could not schedule: %w", err)

	require.ErrorIs(t, wrapped, serrors.ErrBadRequest)

	var sErr *serrors.Error
	require.ErrorAs(t, wrapped, &sErr)
	require.Equal(t, "unknown surface", sErr.Message())
}

func TestKindOnly(t *testing.T) {
	t.Parallel()

	err := serrors.KindOnly(serrors.ErrInternal)

	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Equal(t, "INTERNAL", err.Error())
	require.Nil(t, err.Cause())
}
