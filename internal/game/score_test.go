package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewardAndPenalize(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"reward", Reward(10, 25), 35},
		{"penalize", Penalize(10, 2), 8},
		{"penalize to zero", Penalize(5, 5), 0},
		{"penalize floors at zero", Penalize(3, 10), 0},
		{"penalize zero", Penalize(0, 2), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestScoreNeverNegative(t *testing.T) {
	rng := NewRand(42)
	score := 0
	for i := 0; i < 1000; i++ {
		n := rng.IntN(30)
		if rng.IntN(2) == 0 {
			score = Reward(score, n)
		} else {
			score = Penalize(score, n)
		}
		require.GreaterOrEqual(t, score, 0)
	}
}
