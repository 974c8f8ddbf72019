package postapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modusplant/plantkit/pkg/postapi"
)

func newSim() *postapi.Simulator {
	return postapi.NewSimulator(postapi.WithLatency(0, 0))
}

func TestSimulatorFirstPage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	page, err := newSim().GetPosts(ctx, postapi.Params{Size: 10})
	require.NoError(t, err)

	assert.Len(t, page.Posts, 10)
	assert.True(t, page.HasNext)
	require.NotNil(t, page.NextPostID)
	assert.Equal(t, page.Posts[9].PostID, *page.NextPostID)
	assert.Equal(t, 10, page.Size)

	// Newest first.
	for i := 1; i < len(page.Posts); i++ {
		assert.True(t, page.Posts[i].PublishedAt.Before(page.Posts[i-1].PublishedAt),
			"posts must be in reverse-chronological order")
	}
}

func TestSimulatorInvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		_, err := newSim().GetPosts(context.Background(), postapi.Params{Size: size})
		assert.ErrorIs(t, err, postapi.ErrInvalidSize)
	}
}

func TestSimulatorPaginationVisitsEachPostOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sim := newSim()

	seen := map[string]int{}
	params := postapi.Params{Size: 7}
	for {
		page, err := sim.GetPosts(ctx, params)
		require.NoError(t, err)
		for _, p := range page.Posts {
			seen[p.PostID]++
		}
		if !page.HasNext {
			assert.Nil(t, page.NextPostID)
			break
		}
		require.NotNil(t, page.NextPostID)
		params.LastPostID = *page.NextPostID
	}

	assert.Len(t, seen, postapi.SimPostCount)
	for id, n := range seen {
		assert.Equal(t, 1, n, "post %s fetched %d times", id, n)
	}
}

func TestSimulatorIdempotentReads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sim := newSim()

	first, err := sim.GetPosts(ctx, postapi.Params{Size: 5})
	require.NoError(t, err)
	cursor := *first.NextPostID

	a, err := sim.GetPosts(ctx, postapi.Params{Size: 5, LastPostID: cursor})
	require.NoError(t, err)
	b, err := sim.GetPosts(ctx, postapi.Params{Size: 5, LastPostID: cursor})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulatorUnknownCursorRestartsStream(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sim := newSim()

	fresh, err := sim.GetPosts(ctx, postapi.Params{Size: 4})
	require.NoError(t, err)
	deleted, err := sim.GetPosts(ctx, postapi.Params{Size: 4, LastPostID: "post_gone"})
	require.NoError(t, err)
	assert.Equal(t, fresh.Posts, deleted.Posts)
}

func TestSimulatorCategoryFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sim := newSim()

	t.Run("primary category", func(t *testing.T) {
		t.Parallel()
		page, err := sim.GetPosts(ctx, postapi.Params{Size: 100, PrimaryCategoryID: "2"})
		require.NoError(t, err)
		require.NotEmpty(t, page.Posts)
		assert.False(t, page.HasNext)
		for _, p := range page.Posts {
			assert.Equal(t, "질문답변", p.PrimaryCategory)
		}
	})

	t.Run("secondary multi-select", func(t *testing.T) {
		t.Parallel()
		page, err := sim.GetPosts(ctx, postapi.Params{Size: 100, SecondaryCategoryID: "10,12"})
		require.NoError(t, err)
		require.NotEmpty(t, page.Posts)
		for _, p := range page.Posts {
			assert.Contains(t, []string{"실내식물", "야생화"}, p.SecondaryCategory)
		}
	})

	t.Run("combined filters paginate consistently", func(t *testing.T) {
		t.Parallel()
		all, err := sim.GetPosts(ctx, postapi.Params{Size: 100, PrimaryCategoryID: "1", SecondaryCategoryID: "13"})
		require.NoError(t, err)

		var walked []postapi.Post
		params := postapi.Params{Size: 2, PrimaryCategoryID: "1", SecondaryCategoryID: "13"}
		for {
			page, err := sim.GetPosts(ctx, params)
			require.NoError(t, err)
			walked = append(walked, page.Posts...)
			if !page.HasNext {
				break
			}
			params.LastPostID = *page.NextPostID
		}
		assert.Equal(t, all.Posts, walked)
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()
		page, err := sim.GetPosts(ctx, postapi.Params{Size: 10, PrimaryCategoryID: "999"})
		require.NoError(t, err)
		assert.Empty(t, page.Posts)
		assert.False(t, page.HasNext)
		assert.Nil(t, page.NextPostID)
	})
}

func TestSimulatorCanceledContext(t *testing.T) {
	t.Parallel()

	sim := postapi.NewSimulator(postapi.WithLatency(5*time.Second, 5*time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.GetPosts(ctx, postapi.Params{Size: 10})
	apiErr, ok := postapi.AsError(err)
	require.True(t, ok)
	assert.Equal(t, postapi.CodeNetworkError, apiErr.Code)
}

func TestSortedContent(t *testing.T) {
	t.Parallel()

	post := postapi.Post{
		Content: []postapi.ContentPart{
			{Type: postapi.ContentImage, Order: 3, URL: "https://example.com/b.jpg"},
			{Type: postapi.ContentText, Order: 1, Text: "첫 문단"},
			{Type: postapi.ContentVideo, Order: 2, URL: "https://example.com/a.mp4"},
		},
	}

	sorted := post.SortedContent()
	assert.Equal(t, []int{1, 2, 3}, []int{sorted[0].Order, sorted[1].Order, sorted[2].Order})
	// The snapshot itself is untouched.
	assert.Equal(t, 3, post.Content[0].Order)
}
