//go:build !pipei_select

package pipei_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/pipei"
)

type Discount struct {
	Percent int
}

func (d Discount) Apply(price int) int {
	return price * (100 - d.Percent) / 100
}

type Counter struct {
	N int
}

func (c *Counter) Add(k int) int {
	c.N += k
	return c.N
}

type Threshold struct {
	Min, Max int
}

func (t Threshold) Check(v int) bool {
	return v >= t.Min && v <= t.Max
}

func add(x, y int) int { return x + y }

func addOne(x int) int { return x + 1 }

func TestPipe(t *testing.T) {
	t.Run("transform law", func(t *testing.T) {
		join := func(sep string, a, b, c string) string { return strings.Join([]string{a, b, c}, sep) }
		assert.Equal(t, join("-", "a", "b", "c"), pipei.Pipe3("-", join)("a", "b", "c"))
	})

	t.Run("receiver plus one argument", func(t *testing.T) {
		assert.Equal(t, 15, pipei.Pipe1(10, add)(5))
	})

	t.Run("arity zero", func(t *testing.T) {
		assert.Equal(t, 2, pipei.Pipe0(1, addOne)())
	})

	t.Run("closure is reusable", func(t *testing.T) {
		apply := pipei.Pipe1(Discount{Percent: 20}, Discount.Apply)

		var got []int
		for _, price := range []int{100, 200, 300} {
			got = append(got, apply(price))
		}
		assert.Equal(t, []int{80, 160, 240}, got)
		assert.True(t, apply.Reusable())
	})

	t.Run("method expression as validator", func(t *testing.T) {
		inRange := pipei.Pipe1(Threshold{Min: 1, Max: 10}, Threshold.Check)
		assert.True(t, inRange(5))
		assert.False(t, inRange(11))
	})

	t.Run("receiver is copied", func(t *testing.T) {
		d := Discount{Percent: 10}
		apply := pipei.Pipe1(d, Discount.Apply)
		d.Percent = 50
		assert.Equal(t, 90, apply(100))
	})

	t.Run("accessors", func(t *testing.T) {
		c := pipei.Pipe2(1, func(a, b, c int) int { return a + b + c })
		assert.Equal(t, pipei.ByShared, c.Mode())
		assert.Equal(t, pipei.Transform, c.Semantics())
		assert.Equal(t, 2, c.Arity())
		assert.True(t, c.Reusable())
	})

	t.Run("high arity", func(t *testing.T) {
		sum := func(a0, a1, a2, a3, a4, a5, a6, a7, a8 int) int {
			return a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8
		}
		assert.Equal(t, 45, pipei.Pipe8(1, sum)(2, 3, 4, 5, 6, 7, 8, 9))
	})
}

func TestPipeMut(t *testing.T) {
	t.Run("calls see earlier mutations", func(t *testing.T) {
		next := pipei.PipeMut1(Counter{}, (*Counter).Add)
		assert.Equal(t, 1, next(1))
		assert.Equal(t, 3, next(2))
		assert.Equal(t, 6, next(3))
	})

	t.Run("caller keeps its own copy", func(t *testing.T) {
		c := Counter{N: 10}
		next := pipei.PipeMut1(c, (*Counter).Add)
		next(5)
		assert.Equal(t, 10, c.N)
	})

	t.Run("transform law", func(t *testing.T) {
		f := func(c *Counter, k int) int { return c.Add(k) * 2 }
		want := f(&Counter{N: 1}, 4)
		assert.Equal(t, want, pipei.PipeMut1(Counter{N: 1}, f)(4))
	})

	t.Run("accessors", func(t *testing.T) {
		c := pipei.PipeMut0(Counter{}, func(c *Counter) int { return c.N })
		assert.Equal(t, pipei.ByExclusive, c.Mode())
		assert.True(t, c.Reusable())
		assert.Equal(t, 0, c.Arity())
	})
}

func TestPipeOnce(t *testing.T) {
	t.Run("transform law", func(t *testing.T) {
		build := func(parts []string, sep string, n int) string {
			return strings.Repeat(strings.Join(parts, sep), n)
		}
		want := build([]string{"a", "b"}, "-", 2)
		assert.Equal(t, want, pipei.PipeOnce2([]string{"a", "b"}, build)("-", 2))
	})

	t.Run("accessors", func(t *testing.T) {
		c := pipei.PipeOnce0(1, addOne)
		assert.Equal(t, pipei.ByValue, c.Mode())
		assert.Equal(t, pipei.Transform, c.Semantics())
		assert.False(t, c.Reusable())
		assert.Equal(t, 2, c())
	})
}
