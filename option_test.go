package pipei_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/pipei"
)

func TestOption(t *testing.T) {
	t.Run("Some", func(t *testing.T) {
		o := pipei.Some(503)
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, 503, v)
		assert.True(t, o.IsSome())
		assert.False(t, o.IsNone())
		assert.Equal(t, 503, o.OrElse(0))
		assert.Equal(t, "Some(503)", o.String())
	})

	t.Run("None", func(t *testing.T) {
		o := pipei.None[string]()
		v, ok := o.Get()
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.True(t, o.IsNone())
		assert.Equal(t, "fallback", o.OrElse("fallback"))
		assert.Equal(t, "None", o.String())
	})

	t.Run("zero value is None", func(t *testing.T) {
		var o pipei.Option[int]
		assert.True(t, o.IsNone())
	})

	t.Run("OptionOf", func(t *testing.T) {
		m := map[string]int{"a": 1}
		v, ok := m["a"]
		assert.Equal(t, pipei.Some(1), pipei.OptionOf(v, ok))
		v, ok = m["b"]
		assert.Equal(t, pipei.None[int](), pipei.OptionOf(v, ok))
	})

	t.Run("OptionFromPtr", func(t *testing.T) {
		n := 4
		assert.Equal(t, pipei.Some(4), pipei.OptionFromPtr(&n))
		assert.True(t, pipei.OptionFromPtr[int](nil).IsNone())
	})
}
