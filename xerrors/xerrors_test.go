package xerrors_test

import (
	"testing"

	"github.com/student/gostl/xerrors"
	"github.com/stretchr/testify/require"
)

func TestLogicErrorClassification(t *testing.T) {
	err := xerrors.NewLogicError(xerrors.OutOfRange, "index out of range")
	require.True(t, xerrors.IsOutOfRange(err))
	require.False(t, xerrors.IsInvalidArgument(err))
	require.Contains(t, err.Error(), "out-of-range")
}

func TestInvalidArgumentClassification(t *testing.T) {
	err := xerrors.NewLogicError(xerrors.InvalidArgument, "bad hint")
	require.True(t, xerrors.IsInvalidArgument(err))
	require.False(t, xerrors.IsOutOfRange(err))
}

func TestSystemErrorMessage(t *testing.T) {
	err := xerrors.NewSystemError(13, "permission", "denied")
	require.Contains(t, err.Error(), "permission")
	require.Contains(t, err.Error(), "denied")
}
