package cluster

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const maxVocabulary = 1000

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// A minimal english stopword list, enough to keep cluster keywords meaningful.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "few": {}, "for": {}, "from": {}, "further": {}, "had": {},
	"has": {}, "have": {}, "having": {}, "he": {}, "her": {}, "here": {},
	"hers": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "its": {}, "just": {}, "me": {}, "more": {},
	"most": {}, "my": {}, "no": {}, "nor": {}, "not": {}, "now": {}, "of": {},
	"off": {}, "on": {}, "once": {}, "only": {}, "or": {}, "other": {},
	"our": {}, "out": {}, "over": {}, "own": {}, "same": {}, "she": {},
	"should": {}, "so": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "why": {}, "will": {}, "with": {}, "you": {},
	"your": {}, "yours": {},
}

// vectorize builds l2-normalized TF-IDF vectors over unigrams and bigrams,
// keeping the most frequent terms up to maxVocabulary.
func vectorize(texts []string) ([][]float64, []string) {
	docTerms := make([][]string, len(texts))
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, text := range texts {
		terms := extractTerms(text)
		docTerms[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			termFreq[term]++
			if _, ok := seen[term]; !ok {
				docFreq[term]++
				seen[term] = struct{}{}
			}
		}
	}

	vocab := selectVocabulary(termFreq)
	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}

	n := float64(len(texts))
	vectors := make([][]float64, len(texts))
	for i, terms := range docTerms {
		vec := make([]float64, len(vocab))
		for _, term := range terms {
			j, ok := index[term]
			if !ok {
				continue
			}
			idf := math.Log((1+n)/(1+float64(docFreq[term]))) + 1
			vec[j] += idf
		}
		normalize(vec)
		vectors[i] = vec
	}

	return vectors, vocab
}

func extractTerms(text string) []string {
	words := tokenPattern.FindAllString(strings.ToLower(text), -1)

	var filtered []string
	for _, w := range words {
		if _, ok := stopwords[w]; ok {
			continue
		}
		if len(w) < 2 {
			continue
		}
		filtered = append(filtered, w)
	}

	terms := make([]string, 0, len(filtered)*2)
	terms = append(terms, filtered...)
	for i := 0; i+1 < len(filtered); i++ {
		terms = append(terms, filtered[i]+" "+filtered[i+1])
	}
	return terms
}

func selectVocabulary(termFreq map[string]int) []string {
	vocab := make([]string, 0, len(termFreq))
	for term := range termFreq {
		vocab = append(vocab, term)
	}

	sort.Slice(vocab, func(i, j int) bool {
		if termFreq[vocab[i]] != termFreq[vocab[j]] {
			return termFreq[vocab[i]] > termFreq[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})

	if len(vocab) > maxVocabulary {
		vocab = vocab[:maxVocabulary]
	}
	return vocab
}

func normalize(vec []float64) {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
