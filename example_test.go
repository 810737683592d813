//go:build !pipei_select

package pipei_test

import (
	"fmt"
	"strings"

	"github.com/syssam/pipei"
)

func ExamplePipe1() {
	add := func(x, y int) int { return x + y }
	fmt.Println(pipei.Pipe1(10, add)(5))
	// Output: 15
}

func ExamplePipe1_methodExpression() {
	apply := pipei.Pipe1(Discount{Percent: 20}, Discount.Apply)
	for _, price := range []int{100, 200, 300} {
		fmt.Println(apply(price))
	}
	// Output:
	// 80
	// 160
	// 240
}

func ExamplePipeMut1() {
	next := pipei.PipeMut1(Counter{}, (*Counter).Add)
	next(1)
	next(2)
	fmt.Println(next(3))
	// Output: 6
}

func ExampleTap1() {
	s := pipei.Tap1(State{}, pipei.Mut1((*State).Incr))(1)
	s = pipei.Tap1(s, pipei.Mut1((*State).Incr))(2)
	fmt.Println(s.Count)
	// Output: 3
}

func ExampleCond1() {
	logErr := pipei.Cond1(Response.ErrStatus, func(status, attempt int) {
		fmt.Printf("request failed with %d (attempt %d)\n", status, attempt)
	})
	r := pipei.Tap1(Err(503), logErr)(2)
	fmt.Println(r.failed)
	pipei.Tap1(Ok("done"), logErr)(3)
	// Output:
	// request failed with 503 (attempt 2)
	// true
}

func ExamplePipeOnce1() {
	words := []string{"pipe", "tap"}
	join := pipei.PipeOnce1(words, strings.Join)
	fmt.Println(join(" and "))
	// Output: pipe and tap
}

func ExamplePipe0() {
	addOne := func(x int) int { return x + 1 }
	fmt.Println(pipei.Pipe0(1, addOne)())
	// Output: 2
}
