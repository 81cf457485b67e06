package prep

import (
	"testing"

	"civicpulse/pkg/social"

	"github.com/go-playground/assert/v2"
)

func TestDeduplicate_DropsCopies(t *testing.T) {
	posts := []social.Post{
		{ID: "a", Body: "the metro line extension is delayed again this year"},
		{ID: "b", Body: "the metro line extension is delayed again this year"},
		{ID: "c", Body: "water supply in the northern district remains unreliable"},
	}

	unique := Deduplicate(posts)

	assert.Equal(t, 2, len(unique))
	assert.Equal(t, "a", unique[0].ID)
	assert.Equal(t, "c", unique[1].ID)
}

func TestDeduplicate_KeepsDistinctPosts(t *testing.T) {
	posts := []social.Post{
		{ID: "a", Body: "education reform rollout started in three states"},
		{ID: "b", Body: "a completely unrelated post about monsoon flooding"},
	}

	unique := Deduplicate(posts)

	assert.Equal(t, 2, len(unique))
}

func TestDeduplicate_FallsBackToTitle(t *testing.T) {
	posts := []social.Post{
		{ID: "a", Title: "power outage across the eastern grid today", Body: ""},
		{ID: "b", Title: "power outage across the eastern grid today", Body: ""},
	}

	unique := Deduplicate(posts)

	assert.Equal(t, 1, len(unique))
}

func TestDeduplicate_Empty(t *testing.T) {
	assert.Equal(t, 0, len(Deduplicate(nil)))
}
