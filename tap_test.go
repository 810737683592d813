//go:build !pipei_select

package pipei_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pipei"
)

type State struct {
	Count int
}

func (s *State) Incr(n int) {
	s.Count += n
}

type Point struct {
	X, Y int
}

func TestTapIdentity(t *testing.T) {
	var seen []string
	log := func(p Point, label string, n int) {
		seen = append(seen, fmt.Sprintf("%s:%d:%d", label, p.X, n))
	}

	p := Point{X: 1, Y: 2}
	got := pipei.Tap2(p, pipei.Imm2(log))("pt", 7)

	assert.Equal(t, p, got)
	assert.Equal(t, []string{"pt:1:7"}, seen)
}

func TestTapMutation(t *testing.T) {
	t.Run("two taps", func(t *testing.T) {
		s := State{}
		s = pipei.Tap1(s, pipei.Mut1((*State).Incr))(1)
		s = pipei.Tap1(s, pipei.Mut1((*State).Incr))(2)
		assert.Equal(t, 3, s.Count)
	})

	t.Run("closure mutation", func(t *testing.T) {
		scale := func(p *Point, k int) {
			p.X *= k
			p.Y *= k
		}
		assert.Equal(t, Point{X: 3, Y: 6}, pipei.Tap1(Point{X: 1, Y: 2}, pipei.Mut1(scale))(3))
	})

	t.Run("caller copy is untouched", func(t *testing.T) {
		s := State{Count: 1}
		out := pipei.Tap1(s, pipei.Mut1((*State).Incr))(4)
		assert.Equal(t, 1, s.Count)
		assert.Equal(t, 5, out.Count)
	})

	t.Run("arity zero", func(t *testing.T) {
		reset := func(s *State) { s.Count = 0 }
		assert.Equal(t, State{}, pipei.Tap0(State{Count: 9}, pipei.Mut0(reset))())
	})
}

func TestTapResultDiscarded(t *testing.T) {
	t.Run("pointer method", func(t *testing.T) {
		add := pipei.MutFn1((*Counter).Add)
		assert.Equal(t, pipei.ByExclusive, add.Mode())

		c := pipei.Tap1(Counter{N: 1}, add)(3)
		c = pipei.Tap1(c, pipei.MutFn1((*Counter).Add))(2)
		assert.Equal(t, 6, c.N)
	})

	t.Run("reader", func(t *testing.T) {
		var b strings.Builder
		write := func(p Point, w *strings.Builder) int {
			n, _ := fmt.Fprintf(w, "(%d,%d)", p.X, p.Y)
			return n
		}
		show := pipei.ImmFn1(write)
		assert.Equal(t, pipei.ByShared, show.Mode())

		p := Point{X: 1, Y: 2}
		assert.Equal(t, p, pipei.Tap1(p, show)(&b))
		assert.Equal(t, "(1,2)", b.String())
	})

	t.Run("arity zero", func(t *testing.T) {
		next := func(c *Counter) int { return c.Add(1) }
		assert.Equal(t, Counter{N: 8}, pipei.Tap0(Counter{N: 7}, pipei.MutFn0(next))())
	})
}

func TestTapZeroEffect(t *testing.T) {
	var none pipei.Effect0[pipei.Imm, int]
	assert.Equal(t, 1, pipei.Tap0(1, none)())

	var skip pipei.Effect2[pipei.Mut, State, int, string]
	assert.Equal(t, pipei.Direct, skip.Projection())
	assert.Equal(t, State{Count: 2}, pipei.Tap2(State{Count: 2}, skip)(1, "x"))
}

func TestTapReceiverDecidesShape(t *testing.T) {
	// For a receiver of type State, func(*State, int) is an exclusive effect.
	byValue := pipei.Tap1(State{}, pipei.Mut1((*State).Incr))
	assert.Equal(t, pipei.ByExclusive, byValue.Mode())
	assert.Equal(t, 2, byValue(2).Count)

	// For a receiver of type *State the same function reads the pointer,
	// which still reaches the caller's value.
	s := &State{}
	byPointer := pipei.Tap1(s, pipei.Imm1((*State).Incr))
	assert.Equal(t, pipei.ByShared, byPointer.Mode())
	assert.Same(t, s, byPointer(3))
	assert.Equal(t, 3, s.Count)
}

func TestTapAccessors(t *testing.T) {
	e := pipei.Imm1(func(int, string) {})
	assert.Equal(t, pipei.ByShared, e.Mode())
	assert.Equal(t, pipei.Direct, e.Projection())

	m := pipei.Mut1(func(*int, string) {})
	assert.Equal(t, pipei.ByExclusive, m.Mode())
	assert.Equal(t, pipei.Direct, m.Projection())

	c := pipei.Tap1(1, e)
	assert.Equal(t, pipei.Inspect, c.Semantics())
	assert.Equal(t, 1, c.Arity())
	assert.False(t, c.Reusable())
}

func TestTapHighArity(t *testing.T) {
	var total int
	sum := func(base int, a, b, c, d, e, f, g, h, i, j int) {
		total = base + a + b + c + d + e + f + g + h + i + j
	}
	got := pipei.Tap10(100, pipei.Imm10(sum))(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	require.Equal(t, 100, got)
	assert.Equal(t, 155, total)
}
