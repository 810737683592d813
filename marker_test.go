package pipei

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceiverModeString(t *testing.T) {
	assert.Equal(t, "shared", ByShared.String())
	assert.Equal(t, "exclusive", ByExclusive.String())
	assert.Equal(t, "value", ByValue.String())
	assert.Equal(t, "unknown", ReceiverMode(0).String())
}

func TestCallSemanticsString(t *testing.T) {
	assert.Equal(t, "pipe", Transform.String())
	assert.Equal(t, "tap", Inspect.String())
	assert.Equal(t, "unknown", CallSemantics(9).String())
}

func TestProjectionString(t *testing.T) {
	assert.Equal(t, "direct", Direct.String())
	assert.Equal(t, "comp", Unconditional.String())
	assert.Equal(t, "cond", Conditional.String())
	assert.Equal(t, "unknown", Projection(7).String())
}

func TestMarkers(t *testing.T) {
	assert.Equal(t, ByShared, modeOf[Imm]())
	assert.Equal(t, ByExclusive, modeOf[Mut]())
	assert.Equal(t, ByValue, modeOf[Own]())
	assert.Equal(t, Transform, semanticsOf[PipeMark]())
	assert.Equal(t, Inspect, semanticsOf[TapMark]())
}

func TestReusable(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"shared pipe", reusable[Imm, PipeMark](), true},
		{"exclusive pipe", reusable[Mut, PipeMark](), true},
		{"by-value pipe", reusable[Own, PipeMark](), false},
		{"shared tap", reusable[Imm, TapMark](), false},
		{"exclusive tap", reusable[Mut, TapMark](), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSpend(t *testing.T) {
	var spent bool
	assert.NotPanics(t, func() { spend[Own, PipeMark](&spent, 3) })
	assert.True(t, spent)

	assert.PanicsWithError(t, "pipei: pipe closure of arity 3 (value receiver) called more than once", func() {
		spend[Own, PipeMark](&spent, 3)
	})
}

func TestTake(t *testing.T) {
	s := []int{1, 2}
	got := take(&s)
	assert.Equal(t, []int{1, 2}, got)
	assert.Nil(t, s)

	f := func() int { return 1 }
	g := take(&f)
	assert.Nil(t, f)
	assert.Equal(t, 1, g())
}
