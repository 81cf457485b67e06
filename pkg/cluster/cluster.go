// Package cluster groups discourse posts into issues with TF-IDF features
// and k-means partitioning.
package cluster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

type Cluster struct {
	ClusterID   int
	Label       string
	TopKeywords []string
	Size        int
	Members     []int
}

// docVector pairs a TF-IDF vector with its document index so cluster members
// can be mapped back to posts after partitioning.
type docVector struct {
	coords clusters.Coordinates
	doc    int
}

func (d docVector) Coordinates() clusters.Coordinates {
	return d.coords
}

func (d docVector) Distance(point clusters.Coordinates) float64 {
	return d.coords.Distance(point)
}

// ClusterIssues partitions texts into k issue clusters. Returns nil when the
// corpus is smaller than k; callers treat that as "no clusters yet".
func ClusterIssues(texts []string, k int) ([]Cluster, error) {
	if len(texts) < k || k <= 0 {
		return nil, nil
	}

	vectors, vocab := vectorize(texts)
	if len(vocab) == 0 {
		return nil, nil
	}

	observations := make(clusters.Observations, len(vectors))
	for i, vec := range vectors {
		observations[i] = docVector{coords: vec, doc: i}
	}

	km := kmeans.New()
	partitions, err := km.Partition(observations, k)
	if err != nil {
		return nil, fmt.Errorf("kmeans partition: %w", err)
	}

	result := make([]Cluster, 0, len(partitions))
	for i, part := range partitions {
		members := make([]int, 0, len(part.Observations))
		for _, obs := range part.Observations {
			members = append(members, obs.(docVector).doc)
		}

		keywords := topKeywords(part.Center, vocab, 5)
		label := "Issue: " + strings.Join(firstN(keywords, 3), ", ")

		result = append(result, Cluster{
			ClusterID:   i,
			Label:       label,
			TopKeywords: keywords,
			Size:        len(members),
			Members:     members,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Size > result[j].Size
	})

	return result, nil
}

func topKeywords(center clusters.Coordinates, vocab []string, n int) []string {
	type weighted struct {
		term   string
		weight float64
	}

	terms := make([]weighted, 0, len(center))
	for i, w := range center {
		if i < len(vocab) && w > 0 {
			terms = append(terms, weighted{term: vocab[i], weight: w})
		}
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].weight != terms[j].weight {
			return terms[i].weight > terms[j].weight
		}
		return terms[i].term < terms[j].term
	})

	keywords := make([]string, 0, n)
	for _, t := range terms {
		if len(keywords) == n {
			break
		}
		keywords = append(keywords, t.term)
	}
	return keywords
}

func firstN(s []string, n int) []string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
