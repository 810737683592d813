//go:build !pipei_select

package pipei_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/pipei"
)

// Response is either a value or an error status code.
type Response struct {
	body   string
	status int
	failed bool
}

func Ok(body string) Response { return Response{body: body} }

func Err(status int) Response { return Response{status: status, failed: true} }

// ErrStatus returns the status code of a failed response.
func (r Response) ErrStatus() pipei.Option[int] {
	return pipei.OptionOf(r.status, r.failed)
}

type Order struct {
	ID    int
	Items []string
	Note  *string
}

func TestComp(t *testing.T) {
	var got []int
	count := pipei.Comp1(
		func(o Order) int { return len(o.Items) },
		func(n int, extra int) { got = append(got, n+extra) },
	)
	assert.Equal(t, pipei.Unconditional, count.Projection())
	assert.Equal(t, pipei.ByShared, count.Mode())

	o := Order{ID: 1, Items: []string{"a", "b"}}
	assert.Equal(t, o, pipei.Tap1(o, count)(10))
	assert.Equal(t, []int{12}, got)
}

func TestCompMut(t *testing.T) {
	items := func(o *Order) *[]string { return &o.Items }
	push := func(items *[]string, item string) { *items = append(*items, item) }

	o := pipei.Tap1(Order{ID: 2}, pipei.CompMut1(items, push))("x")
	assert.Equal(t, []string{"x"}, o.Items)
	assert.Equal(t, 2, o.ID)
}

func TestCond(t *testing.T) {
	type logged struct{ status, count int }

	t.Run("runs once on Some", func(t *testing.T) {
		var calls []logged
		logErr := pipei.Cond1(Response.ErrStatus, func(status, count int) {
			calls = append(calls, logged{status, count})
		})
		assert.Equal(t, pipei.Conditional, logErr.Projection())

		r := Err(503)
		assert.Equal(t, r, pipei.Tap1(r, logErr)(4))
		assert.Equal(t, []logged{{503, 4}}, calls)
	})

	t.Run("skips on None", func(t *testing.T) {
		calls := 0
		logErr := pipei.Cond1(Response.ErrStatus, func(int, int) { calls++ })

		r := Ok("fine")
		assert.Equal(t, r, pipei.Tap1(r, logErr)(4))
		assert.Zero(t, calls)
	})

	t.Run("projection evaluated once", func(t *testing.T) {
		projections := 0
		proj := func(r Response) pipei.Option[int] {
			projections++
			return r.ErrStatus()
		}
		pipei.Tap0(Err(500), pipei.Cond0(proj, func(int) {}))()
		pipei.Tap0(Ok(""), pipei.Cond0(proj, func(int) {}))()
		assert.Equal(t, 2, projections)
	})

	t.Run("gated by configuration", func(t *testing.T) {
		debug := false
		calls := 0
		trace := pipei.Cond0(func(o Order) pipei.Option[int] {
			return pipei.OptionOf(o.ID, debug)
		}, func(int) { calls++ })

		pipei.Tap0(Order{ID: 1}, trace)()
		assert.Zero(t, calls)
	})
}

func TestCondMut(t *testing.T) {
	note := func(o *Order) pipei.Option[*string] {
		return pipei.OptionOf(o.Note, o.Note != nil)
	}
	sign := func(n *string, who string) { *n += " -- " + who }

	t.Run("mutates on Some", func(t *testing.T) {
		text := "leave at door"
		o := pipei.Tap1(Order{ID: 3, Note: &text}, pipei.CondMut1(note, sign))("ann")
		assert.Equal(t, "leave at door -- ann", *o.Note)
		assert.Equal(t, pipei.ByExclusive, pipei.CondMut1(note, sign).Mode())
	})

	t.Run("skips on None", func(t *testing.T) {
		o := pipei.Tap1(Order{ID: 4}, pipei.CondMut1(note, sign))("ann")
		assert.Nil(t, o.Note)
	})

	t.Run("projection to a field", func(t *testing.T) {
		firstItem := func(o *Order) pipei.Option[*string] {
			if len(o.Items) == 0 {
				return pipei.None[*string]()
			}
			return pipei.Some(&o.Items[0])
		}
		mark := func(s *string, suffix string) { *s += suffix }

		o := pipei.Tap1(Order{Items: []string{"a", "b"}}, pipei.CondMut1(firstItem, mark))("!")
		assert.Equal(t, []string{"a!", "b"}, o.Items)
	})
}
