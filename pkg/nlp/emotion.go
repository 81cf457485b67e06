package nlp

import (
	"math"
	"regexp"
	"strings"
)

// Emotions recognized by the lexicon, in the order they are reported.
var EmotionNames = []string{"anger", "fear", "joy", "sadness", "trust"}

// A compact keyword lexicon. Entries are prefixes, so "violenc" matches both
// "violence" and "violent".
var emotionLexicon = map[string][]string{
	"anger":   {"hate", "angry", "rage", "furious", "mad", "stupid", "idiot", "destroy", "kill", "fight", "violenc", "protest", "riot"},
	"fear":    {"scared", "afraid", "fear", "threat", "danger", "risk", "panic", "worry", "concern", "crisis", "crash", "collapse"},
	"joy":     {"happy", "good", "great", "excellent", "love", "win", "success", "growth", "profit", "best", "develop", "progress"},
	"sadness": {"sad", "grief", "loss", "fail", "poor", "bad", "depress", "pain", "hurt", "suffer", "died", "dead"},
	"trust":   {"believe", "faith", "support", "trust", "honest", "fact", "true", "agree", "confirm", "official", "government"},
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// AnalyzeEmotions returns the relative distribution of emotion keyword hits in
// the text. All zeros means no detected emotion.
func AnalyzeEmotions(text string) map[string]float64 {
	scores := make(map[string]float64, len(EmotionNames))
	for _, emotion := range EmotionNames {
		scores[emotion] = 0
	}

	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return scores
	}

	hits := make(map[string]int, len(EmotionNames))
	for _, word := range words {
		for emotion, keywords := range emotionLexicon {
			for _, kw := range keywords {
				if strings.HasPrefix(word, kw) {
					hits[emotion]++
					break
				}
			}
		}
	}

	total := 0
	for _, n := range hits {
		total += n
	}
	if total == 0 {
		return scores
	}

	for emotion, n := range hits {
		scores[emotion] = round2(float64(n) / float64(total))
	}
	return scores
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
