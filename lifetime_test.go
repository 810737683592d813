//go:build !pipei_select

package pipei_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/pipei"
)

type payload struct {
	data []byte
}

// newPayload returns a value that closes released once it is collected.
func newPayload(released chan<- struct{}) *payload {
	p := &payload{data: make([]byte, 64)}
	runtime.SetFinalizer(p, func(*payload) { close(released) })
	return p
}

// awaitRelease runs the collector until released is closed.
func awaitRelease(t *testing.T, what string, released <-chan struct{}) {
	t.Helper()
	for range 100 {
		runtime.GC()
		select {
		case <-released:
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	t.Fatalf("%s still reachable after the call", what)
}

//go:noinline
func pipeOncePayload(recv, held chan<- struct{}) pipei.Curried1[pipei.Own, pipei.PipeMark, int, int] {
	p, extra := newPayload(recv), newPayload(held)
	return pipei.PipeOnce1(p, func(p *payload, k int) int {
		return len(p.data) + len(extra.data) + k
	})
}

//go:noinline
func tapPayload(recv, held chan<- struct{}) pipei.Curried1[pipei.Imm, pipei.TapMark, int, *payload] {
	p, extra := newPayload(recv), newPayload(held)
	return pipei.Tap1(p, pipei.Imm1(func(p *payload, k int) {
		p.data[0] = byte(k)
		extra.data[0] = byte(k)
	}))
}

func TestSingleCallReleasesCaptures(t *testing.T) {
	t.Run("PipeOnce", func(t *testing.T) {
		recv, held := make(chan struct{}), make(chan struct{})
		once := pipeOncePayload(recv, held)

		assert.Equal(t, 129, once(1))
		awaitRelease(t, "receiver", recv)
		awaitRelease(t, "function", held)
		runtime.KeepAlive(once)
	})

	t.Run("Tap", func(t *testing.T) {
		recv, held := make(chan struct{}), make(chan struct{})
		tap := tapPayload(recv, held)

		_ = tap(7)
		awaitRelease(t, "receiver", recv)
		awaitRelease(t, "effect", held)
		runtime.KeepAlive(tap)
	})
}
