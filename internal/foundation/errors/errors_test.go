package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "synthdocs.yaml").
			Build()

		assert.Equal(t, CategoryConfig, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "invalid configuration", err.Message())

		file, ok := err.Context().GetString("file")
		require.True(t, ok)
		assert.Equal(t, "synthdocs.yaml", file)
		assert.Equal(t, "[config] invalid configuration (file=synthdocs.yaml)", err.Error())
	})

	t.Run("Wrapped cause is reachable", func(t *testing.T) {
		cause := errors.New("open registry.yaml: no such file")
		err := WrapError(cause, CategoryRegistry, "read registry").Build()

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "[registry] read registry: open registry.yaml: no such file", err.Error())
	})

	t.Run("Classified error found through fmt wrapping", func(t *testing.T) {
		inner := ValidationError("token has no matching synth").WithContext("symbol", "sFOO").Build()
		wrapped := fmt.Errorf("stage validate_registry: %w", inner)

		assert.True(t, HasCategory(wrapped, CategoryValidation))
		assert.Equal(t, CategoryValidation, GetCategory(wrapped))
		assert.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
	})

	t.Run("WithContext does not mutate original", func(t *testing.T) {
		base := RenderError("missing anchor").Build()
		derived := base.WithContext("anchor", "bitcoin-sbtc")

		_, ok := base.Context().Get("anchor")
		assert.False(t, ok)
		anchor, ok := derived.Context().GetString("anchor")
		require.True(t, ok)
		assert.Equal(t, "bitcoin-sbtc", anchor)
		assert.True(t, errors.Is(derived, base))
	})
}

func TestErrorContextMerge(t *testing.T) {
	var nilCtx ErrorContext
	merged := nilCtx.Merge(ErrorContext{"a": 1})
	assert.Equal(t, 1, merged["a"])

	merged = ErrorContext{"a": 1, "b": 2}.Merge(ErrorContext{"b": 3})
	assert.Equal(t, ErrorContext{"a": 1, "b": 3}, merged)
}
