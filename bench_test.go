//go:build !pipei_select

package pipei_test

import (
	"testing"

	"github.com/syssam/pipei"
)

var sink int

func BenchmarkDirectCall(b *testing.B) {
	d := Discount{Percent: 20}
	for i := 0; i < b.N; i++ {
		sink = d.Apply(i)
	}
}

func BenchmarkPipe1(b *testing.B) {
	apply := pipei.Pipe1(Discount{Percent: 20}, Discount.Apply)
	for i := 0; i < b.N; i++ {
		sink = apply(i)
	}
}

func BenchmarkPipeMut1(b *testing.B) {
	next := pipei.PipeMut1(Counter{}, (*Counter).Add)
	for i := 0; i < b.N; i++ {
		sink = next(1)
	}
}

func BenchmarkTap1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = pipei.Tap1(State{}, pipei.Mut1((*State).Incr))(i).Count
	}
}

func BenchmarkCond1(b *testing.B) {
	logErr := pipei.Cond1(Response.ErrStatus, func(status, n int) { sink = status + n })
	r := Err(503)
	for i := 0; i < b.N; i++ {
		pipei.Tap1(r, logErr)(i)
	}
}
