//go:build !pipei_select

package pipei_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pipei"
)

// recovered runs f and returns the error it panicked with, if any.
func recovered(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestConsumedError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := pipei.NewConsumedError(2, pipei.ByShared, pipei.Inspect)
		assert.Equal(t, "pipei: tap closure of arity 2 (shared receiver) called more than once", err.Error())
		assert.Equal(t, 2, err.Arity())
		assert.Equal(t, pipei.ByShared, err.Mode())
		assert.Equal(t, pipei.Inspect, err.Semantics())
	})

	t.Run("Is", func(t *testing.T) {
		err := pipei.NewConsumedError(0, pipei.ByValue, pipei.Transform)
		assert.True(t, errors.Is(err, pipei.ErrConsumed))
	})

	t.Run("IsConsumed", func(t *testing.T) {
		err := pipei.NewConsumedError(1, pipei.ByExclusive, pipei.Inspect)
		assert.True(t, pipei.IsConsumed(err))

		// Wrapped error
		assert.True(t, pipei.IsConsumed(fmt.Errorf("wrapper: %w", err)))

		// Sentinel error
		assert.True(t, pipei.IsConsumed(pipei.ErrConsumed))

		// Non-matching error
		assert.False(t, pipei.IsConsumed(errors.New("other error")))
		assert.False(t, pipei.IsConsumed(nil))
	})
}

func TestSingleCallClosures(t *testing.T) {
	t.Run("PipeOnce", func(t *testing.T) {
		push := pipei.PipeOnce1([]int{1, 2}, func(s []int, v int) []int { return append(s, v) })
		assert.Equal(t, []int{1, 2, 3}, push(3))

		err := recovered(func() { push(4) })
		require.Error(t, err)
		assert.True(t, pipei.IsConsumed(err))

		var consumed *pipei.ConsumedError
		require.ErrorAs(t, err, &consumed)
		assert.Equal(t, 1, consumed.Arity())
		assert.Equal(t, pipei.ByValue, consumed.Mode())
		assert.Equal(t, pipei.Transform, consumed.Semantics())
	})

	t.Run("Tap", func(t *testing.T) {
		tap := pipei.Tap0(5, pipei.Imm0(func(int) {}))
		assert.Equal(t, 5, tap())
		assert.PanicsWithError(t, "pipei: tap closure of arity 0 (shared receiver) called more than once", func() {
			tap()
		})
	})

	t.Run("TapMut", func(t *testing.T) {
		tap := pipei.Tap2(0, pipei.Mut2(func(n *int, a, b int) { *n += a * b }))
		assert.Equal(t, 6, tap(2, 3))
		err := recovered(func() { tap(2, 3) })
		var consumed *pipei.ConsumedError
		require.ErrorAs(t, err, &consumed)
		assert.Equal(t, pipei.ByExclusive, consumed.Mode())
		assert.Equal(t, 2, consumed.Arity())
	})

	t.Run("effect does not run twice", func(t *testing.T) {
		calls := 0
		tap := pipei.Tap0("x", pipei.Imm0(func(string) { calls++ }))
		tap()
		_ = recovered(func() { tap() })
		assert.Equal(t, 1, calls)
	})
}
