package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{name: "empty set", completed: 0, total: 166, want: 0},
		{name: "single lesson of 166", completed: 1, total: 166, want: 100.0 / 166},
		{name: "all lessons", completed: 166, total: 166, want: 100},
		{name: "half", completed: 5, total: 10, want: 50},
		{name: "no content", completed: 0, total: 0, want: 0},
		{name: "negative total", completed: 3, total: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CompletionPercentage(tt.completed, tt.total), 1e-9)
		})
	}
}

func TestCompletionPercentage_Monotonic(t *testing.T) {
	const total = 166

	prev := CompletionPercentage(0, total)
	for completed := 1; completed <= total; completed++ {
		cur := CompletionPercentage(completed, total)
		require.Greater(t, cur, prev)
		prev = cur
	}
	assert.InDelta(t, 100, prev, 1e-9)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIdentity_CloneDoesNotShareSlices(t *testing.T) {
	original := &Identity{
		Name:             "Ana",
		CompletedLessons: []int{1, 2},
		ChatHistory:      []ChatMessage{{Role: "user", Text: "hallo"}},
	}

	cloned := original.Clone()
	cloned.CompletedLessons[0] = 99
	cloned.ChatHistory[0].Text = "changed"

	assert.Equal(t, []int{1, 2}, original.CompletedLessons)
	assert.Equal(t, "hallo", original.ChatHistory[0].Text)
	assert.True(t, original.HasCompleted(2))
	assert.False(t, original.HasCompleted(99))

	var nilIdentity *Identity
	assert.Nil(t, nilIdentity.Clone())
}
