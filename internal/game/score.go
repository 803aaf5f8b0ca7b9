package game

// Score deltas per mode.
const (
	BlanksCorrect   = 10
	BlanksIncorrect = 2

	AscentCorrect     = 20
	AscentIncorrect   = 5
	AscentFinishBonus = 50

	WeaverCorrect   = 25
	WeaverIncorrect = 5
	WeaverClueCost  = 10
)

// Reward adds n to score.
func Reward(score, n int) int { return score + n }

// Penalize subtracts n from score without going below zero.
func Penalize(score, n int) int {
	if score-n < 0 {
		return 0
	}
	return score - n
}
