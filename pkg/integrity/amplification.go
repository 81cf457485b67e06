package integrity

import "math"

type AmplificationResult struct {
	Score            float64
	RepeatedMessages int
	TotalRepeats     int
}

// DetectAmplification flags copy-paste repetition across a batch of post
// texts. A repetition ratio above 20% saturates the score at 1.0.
func DetectAmplification(texts []string) AmplificationResult {
	if len(texts) == 0 {
		return AmplificationResult{}
	}

	counts := make(map[string]int, len(texts))
	for _, text := range texts {
		counts[text]++
	}

	repeatedMessages := 0
	totalRepeats := 0
	for _, count := range counts {
		if count > 1 {
			repeatedMessages++
			totalRepeats += count - 1
		}
	}

	ratio := float64(totalRepeats) / float64(len(texts))
	score := math.Min(ratio*5, 1.0)

	return AmplificationResult{
		Score:            round2(score),
		RepeatedMessages: repeatedMessages,
		TotalRepeats:     totalRepeats,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
