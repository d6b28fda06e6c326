package domain

import (
	"testing"

	"github.com/rpgo/calculator/pkg/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonsLayout(t *testing.T) {
	all := Buttons()
	require.Len(t, all, 19)

	assert.Equal(t, "divide", all[0].Value)
	assert.Equal(t, "reset", all[8].Value)
	assert.Equal(t, "7", all[9].Value)
	assert.Equal(t, "0", all[18].Value)
	assert.Equal(t, 2, all[18].Span)
	assert.Equal(t, 1, all[9].Span)

	// callers get a copy
	all[0].Label = "changed"
	assert.Equal(t, "÷", Buttons()[0].Label)
}

func TestByValue(t *testing.T) {
	b, ok := ByValue("multiply")
	require.True(t, ok)
	assert.Equal(t, "×", b.Label)
	assert.Equal(t, "*", b.Shortcut)
	assert.Equal(t, CategoryBinary, b.Category)
	assert.Equal(t, PriorityHigh, b.Priority)

	b, ok = ByValue("reset")
	require.True(t, ok)
	assert.Equal(t, "AC", b.Label)
	assert.Equal(t, "C", b.NonInitialLabel)

	_, ok = ByValue("sqrt")
	assert.False(t, ok)
}

func TestByShortcut(t *testing.T) {
	cases := map[string]string{
		"/":      "divide",
		"-":      "subtract",
		"%":      "percent",
		"Enter":  "equal",
		"Escape": "reset",
		"5":      "5",
	}
	for shortcut, value := range cases {
		b, ok := ByShortcut(shortcut)
		require.True(t, ok, shortcut)
		assert.Equal(t, value, b.Value, shortcut)
	}

	_, ok := ByShortcut("")
	assert.False(t, ok, "buttons without a shortcut never match")
	_, ok = ByShortcut("x")
	assert.False(t, ok)
}

func TestAvailableShortcuts(t *testing.T) {
	shortcuts := AvailableShortcuts()
	assert.Len(t, shortcuts, 17)
	assert.Contains(t, shortcuts, "Enter")
	assert.NotContains(t, shortcuts, "")
}

func TestButtonApply(t *testing.T) {
	e := calc.Default()

	add, _ := ByValue("add")
	got, ok := add.Apply(e, "2", "3")
	require.True(t, ok)
	assert.Equal(t, "5", got)

	div, _ := ByValue("divide")
	got, ok = div.Apply(e, "1", "0")
	require.True(t, ok)
	assert.Equal(t, calc.NotANumber, got)

	pct, _ := ByValue("percent")
	got, ok = pct.Apply(e, "50", "")
	require.True(t, ok)
	assert.Equal(t, "0.5", got)

	neg, _ := ByValue("negate")
	got, _ = neg.Apply(e, "-5", "")
	assert.Equal(t, "5", got)

	eq, _ := ByValue("equal")
	_, ok = eq.Apply(e, "1", "1")
	assert.False(t, ok)
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityLow.Rank())
	assert.Greater(t, PriorityLow.Rank(), PriorityNone.Rank())
}
