package pipeline

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"civicpulse/internal/model"
	"civicpulse/pkg/social"
)

type fakePostStore struct {
	order         []string
	posts         map[string]*model.SocialPost
	statusHistory map[string][]string
	errorCounts   map[string]int
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{
		posts:         make(map[string]*model.SocialPost),
		statusHistory: make(map[string][]string),
		errorCounts:   make(map[string]int),
	}
}

func (f *fakePostStore) SavePost(post *model.SocialPost) (bool, error) {
	if _, ok := f.posts[post.ID]; ok {
		return false, nil
	}
	saved := *post
	saved.Status = model.StatusPending
	f.order = append(f.order, saved.ID)
	f.posts[saved.ID] = &saved
	return true, nil
}

func (f *fakePostStore) GetPendingPosts(limit int) ([]model.SocialPost, error) {
	var out []model.SocialPost
	for _, id := range f.order {
		if f.posts[id].Status != model.StatusPending {
			continue
		}
		out = append(out, *f.posts[id])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePostStore) GetRecentCompletedPosts(limit int) ([]model.SocialPost, error) {
	var out []model.SocialPost
	for _, id := range f.order {
		if f.posts[id].Status == model.StatusCompleted {
			out = append(out, *f.posts[id])
		}
	}
	return out, nil
}

func (f *fakePostStore) UpdateStatus(id string, status string) error {
	post, ok := f.posts[id]
	if !ok {
		return fmt.Errorf("post %s not found", id)
	}
	post.Status = status
	f.statusHistory[id] = append(f.statusHistory[id], status)
	return nil
}

func (f *fakePostStore) SaveError(postID string, message string, errorType string) error {
	f.errorCounts[postID]++
	return nil
}

func (f *fakePostStore) GetErrorCount(postID string) (int, error) {
	return f.errorCounts[postID], nil
}

type fakeAnalysisStore struct {
	posts   *fakePostStore
	failAll bool
	saved   []model.PostAnalysis
}

func (f *fakeAnalysisStore) SaveAnalysisAndComplete(analysis *model.PostAnalysis) error {
	if f.failAll {
		return errors.New("analysis store unavailable")
	}
	f.saved = append(f.saved, *analysis)
	return f.posts.UpdateStatus(analysis.PostID, model.StatusCompleted)
}

func (f *fakeAnalysisStore) GetAnalysesByPostIDs(postIDs []string) ([]model.PostAnalysis, error) {
	return f.saved, nil
}

type fakeSource struct {
	name    string
	posts   []social.Post
	err     error
	fetches int
}

func (f *fakeSource) Fetch(subreddit string, limit int) ([]social.Post, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakeSource) Name() string { return f.name }

var testBodies = []string{
	"water supply has been disrupted across several districts this week",
	"exam results were announced and students are celebrating everywhere",
	"the metro fare hike is drawing criticism from daily commuters",
}

func sourcePosts(prefix string, n int) []social.Post {
	posts := make([]social.Post, n)
	for i := range posts {
		posts[i] = social.Post{
			ID:        fmt.Sprintf("%s-%d", prefix, i),
			Source:    "reddit",
			Subreddit: "india",
			Title:     fmt.Sprintf("%s headline %d", prefix, i),
			Body:      testBodies[i%len(testBodies)],
			PostedAt:  time.Now(),
		}
	}
	return posts
}

func TestIngest_UsesFallbackWhenSourceFails(t *testing.T) {
	store := newFakePostStore()
	primary := &fakeSource{name: "reddit", err: errors.New("rate limited")}
	fallback := &fakeSource{name: "reddit_mock", posts: sourcePosts("syn", 2)}

	pipe := New(store, &fakeAnalysisStore{posts: store}, nil, []social.Client{primary}, fallback, nil, []string{"india"})

	newIDs, err := pipe.Ingest()

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(newIDs))
	assert.Equal(t, 1, fallback.fetches)
}

func TestIngest_UsesFallbackWhenSourceEmpty(t *testing.T) {
	store := newFakePostStore()
	primary := &fakeSource{name: "reddit"}
	fallback := &fakeSource{name: "reddit_mock", posts: sourcePosts("syn", 3)}

	pipe := New(store, &fakeAnalysisStore{posts: store}, nil, []social.Client{primary}, fallback, nil, []string{"india"})

	newIDs, err := pipe.Ingest()

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(newIDs))
	assert.Equal(t, 1, fallback.fetches)
}

func TestIngest_SkipsFallbackWhenSourceDelivers(t *testing.T) {
	store := newFakePostStore()
	primary := &fakeSource{name: "reddit", posts: sourcePosts("live", 2)}
	fallback := &fakeSource{name: "reddit_mock", posts: sourcePosts("syn", 2)}

	pipe := New(store, &fakeAnalysisStore{posts: store}, nil, []social.Client{primary}, fallback, nil, []string{"india"})

	newIDs, err := pipe.Ingest()

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(newIDs))
	assert.Equal(t, 0, fallback.fetches)
}

func TestIngest_NoFallbackConfigured(t *testing.T) {
	store := newFakePostStore()
	primary := &fakeSource{name: "reddit", err: errors.New("rate limited")}

	pipe := New(store, &fakeAnalysisStore{posts: store}, nil, []social.Client{primary}, nil, nil, []string{"india"})

	newIDs, err := pipe.Ingest()

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(newIDs))
}

func TestAnalyzePending_CompletesPosts(t *testing.T) {
	store := newFakePostStore()
	analyses := &fakeAnalysisStore{posts: store}
	primary := &fakeSource{name: "reddit", posts: sourcePosts("live", 2)}

	pipe := New(store, analyses, nil, []social.Client{primary}, nil, nil, []string{"india"})

	_, err := pipe.Ingest()
	assert.Equal(t, nil, err)

	analyzed, err := pipe.AnalyzePending()

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, analyzed)
	assert.Equal(t, 2, len(analyses.saved))

	for _, id := range store.order {
		assert.Equal(t, model.StatusCompleted, store.posts[id].Status)
		assert.Equal(t, []string{model.StatusProcessing, model.StatusCompleted}, store.statusHistory[id])
	}
}

func TestAnalyzePending_PersistentFailureMarksFailed(t *testing.T) {
	store := newFakePostStore()
	analyses := &fakeAnalysisStore{posts: store, failAll: true}
	primary := &fakeSource{name: "reddit", posts: sourcePosts("live", 1)}

	pipe := New(store, analyses, nil, []social.Client{primary}, nil, nil, []string{"india"})

	newIDs, err := pipe.Ingest()
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(newIDs))

	analyzed, err := pipe.AnalyzePending()

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, analyzed)

	id := newIDs[0]
	assert.Equal(t, model.StatusFailed, store.posts[id].Status)
	assert.Equal(t, maxAnalyzeAttempts, store.errorCounts[id])
}

func TestAnalyzePost_RevertsToPendingOnSaveFailure(t *testing.T) {
	store := newFakePostStore()
	analyses := &fakeAnalysisStore{posts: store, failAll: true}

	post := model.SocialPost{ID: "p1", Body: testBodies[0], PostedAt: time.Now()}
	_, err := store.SavePost(&post)
	assert.Equal(t, nil, err)

	pipe := New(store, analyses, nil, nil, nil, nil, nil)

	err = pipe.AnalyzePost(&post)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, model.StatusPending, store.posts["p1"].Status)
	assert.Equal(t, []string{model.StatusProcessing, model.StatusPending}, store.statusHistory["p1"])
}
