package prep

import (
	"strings"

	"civicpulse/pkg/social"
)

const defaultSimilarityThreshold = 0.85

// Deduplicate drops posts whose token sets are near-identical to an earlier
// post. Posts with empty bodies are compared by title instead.
func Deduplicate(posts []social.Post) []social.Post {
	var unique []social.Post
	var seen []map[string]struct{}

	for _, post := range posts {
		tokens := tokenize(post.Body)
		if len(tokens) == 0 {
			tokens = tokenize(post.Title)
		}

		isDup := false
		for _, other := range seen {
			if jaccard(tokens, other) > defaultSimilarityThreshold {
				isDup = true
				break
			}
		}

		if !isDup {
			unique = append(unique, post)
			seen = append(seen, tokens)
		}
	}

	return unique
}

func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		tokens[word] = struct{}{}
	}
	return tokens
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
