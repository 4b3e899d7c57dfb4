package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name  string
		input []interval
		want  []interval
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "overlapping pair plus disjoint",
			input: []interval{{0, 60}, {30, 90}, {120, 150}},
			want:  []interval{{0, 90}, {120, 150}},
		},
		{
			name:  "touching intervals merge",
			input: []interval{{0, 60}, {60, 120}},
			want:  []interval{{0, 120}},
		},
		{
			name:  "unsorted input",
			input: []interval{{300, 360}, {0, 30}, {10, 40}},
			want:  []interval{{0, 40}, {300, 360}},
		},
		{
			name:  "contained interval",
			input: []interval{{0, 200}, {50, 100}},
			want:  []interval{{0, 200}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeIntervals(tt.input))
		})
	}
}

func TestMergeIntervals_DoesNotMutateInput(t *testing.T) {
	input := []interval{{120, 150}, {0, 60}}
	mergeIntervals(input)
	assert.Equal(t, []interval{{120, 150}, {0, 60}}, input)
}

func TestSubtractIntervals(t *testing.T) {
	blocked := []interval{{540, 600}, {720, 780}}

	open := subtractIntervals(480, 900, blocked)
	assert.Equal(t, []interval{{480, 540}, {600, 720}, {780, 900}}, open)
}

func TestSubtractIntervals_FullyBlocked(t *testing.T) {
	open := subtractIntervals(480, 600, []interval{{400, 700}})
	assert.Empty(t, open)
}
