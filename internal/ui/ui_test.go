package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"math-battle/internal/component"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestOptionForKey(t *testing.T) {
	opts := []int{7, 3, 9, 1}
	v, ok := OptionForKey(opts, 2)
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = OptionForKey(opts, 4)
	assert.False(t, ok)
	_, ok = OptionForKey(opts, -1)
	assert.False(t, ok)
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(component.OutcomeDefeat, component.SessionStats{Correct: 3, Wrong: 1, ElapsedMs: 2500})
	assert.Equal(t, "Defeat", lines[0])
	assert.Equal(t, "Correct 3  Wrong 1", lines[1])
	assert.Equal(t, "Time 2.5s", lines[4])
}
