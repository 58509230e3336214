package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestErrorMessageAndDetails(t *testing.T) {
	err := ConfigError("Factory.Build", "could not find requested builder", ErrTypeNotFound).
		With("TypeID", "unknown_sprite")

	assert.Equal(t, "could not find requested builder in Factory.Build: type not found", err.Error())
	assert.True(t, err.Recoverable)

	v, ok := err.Detail("TypeID")
	require.True(t, ok)
	assert.Equal(t, "unknown_sprite", v)

	_, ok = err.Detail("Missing")
	assert.False(t, ok)
}

func TestErrorChainMatching(t *testing.T) {
	var wrapped error = fmt.Errorf("loading scene: %w",
		ConfigError("CollisionHandler.Configure", "unknown team in rule", ErrUnknownTeam).With("Team", "ghosts"))

	assert.True(t, errors.Is(wrapped, ErrUnknownTeam))
	assert.True(t, IsRecoverable(wrapped))

	e, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindConfig, e.Kind)

	assert.False(t, IsRecoverable(errors.New("plain")))
	assert.False(t, IsRecoverable(InvariantError("Pool.Get", "slot corrupted", nil)))
}

func TestFatalMarksNonRecoverable(t *testing.T) {
	err := ConfigError("Factory.Add", "builder exists", ErrDuplicateType).Fatal()
	assert.False(t, err.Recoverable)
}

func TestElucidate(t *testing.T) {
	report := InvariantError("Resolve", "shape count mismatch", nil).
		With("Expected", 2).
		With("Actual", 3).
		Elucidate()

	assert.Contains(t, report, "Non-recoverable invariant error occurred: shape count mismatch in Resolve")
	assert.Contains(t, report, "\n   + Expected = 2")
	assert.Contains(t, report, "\n   + Actual = 3")
}

func TestMarshalLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	err := LookupError("Context.Layer", "no such layer", ErrUnknownLayer).With("Layer", "sky")

	require.NoError(t, err.MarshalLogObject(enc))
	assert.Equal(t, "lookup", enc.Fields["kind"])
	assert.Equal(t, "Context.Layer", enc.Fields["op"])
	assert.Equal(t, "sky", enc.Fields["Layer"])
	assert.Equal(t, true, enc.Fields["recoverable"])
}
