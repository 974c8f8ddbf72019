package postapi

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// SimPostCount is the size of the simulator's fixture dataset.
const SimPostCount = 48

// Fixture category IDs the simulator's posts are spread across.
var (
	simPrimaryCategories = []struct{ ID, Name string }{
		{"1", "자유게시판"},
		{"2", "질문답변"},
		{"3", "식물일지"},
	}
	simSecondaryCategories = []struct{ ID, Name string }{
		{"10", "실내식물"},
		{"11", "다육식물"},
		{"12", "야생화"},
		{"13", "관엽식물"},
	}
	simNicknames = []string{"식물집사", "초록손", "몬스테라덕후", "새싹지기", "테스트유저"}
)

// simPosts is the fixed dataset, newest first. Built once at package init so
// repeated reads with the same cursor return identical pages.
var simPosts = buildSimPosts()

func buildSimPosts() []Post {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	posts := make([]Post, 0, SimPostCount)
	for i := SimPostCount; i >= 1; i-- {
		pc := simPrimaryCategories[i%len(simPrimaryCategories)]
		sc := simSecondaryCategories[i%len(simSecondaryCategories)]
		content := []ContentPart{
			{Type: ContentText, Order: 1, Text: fmt.Sprintf("%s에 대한 %d번째 이야기입니다.", sc.Name, i)},
		}
		if i%3 == 0 {
			content = append(content, ContentPart{
				Type:  ContentImage,
				Order: 2,
				URL:   fmt.Sprintf("https://cdn.modusplant.example/posts/%03d.jpg", i),
			})
		}
		posts = append(posts, Post{
			PostID:            fmt.Sprintf("post_%03d", i),
			PrimaryCategory:   pc.Name,
			SecondaryCategory: sc.Name,
			Nickname:          simNicknames[i%len(simNicknames)],
			Title:             fmt.Sprintf("%s %d번째 글", pc.Name, i),
			Content:           content,
			LikeCount:         (i * 7) % 40,
			CommentCount:      (i * 3) % 15,
			PublishedAt:       base.Add(-time.Duration(SimPostCount-i) * time.Hour),
			IsLiked:           i%5 == 0,
			IsBookmarked:      i%8 == 0,
		})
	}
	return posts
}

// simPrimaryID maps a fixture post back to its primary category ID.
func simPrimaryID(p Post) string {
	for _, c := range simPrimaryCategories {
		if c.Name == p.PrimaryCategory {
			return c.ID
		}
	}
	return ""
}

func simSecondaryID(p Post) string {
	for _, c := range simSecondaryCategories {
		if c.Name == p.SecondaryCategory {
			return c.ID
		}
	}
	return ""
}

// Simulator implements Client over the fixed in-memory dataset with
// artificial latency, so UI work proceeds without a backend. Pages are
// deterministic: the same cursor and filters always yield the same page.
type Simulator struct {
	minLatency time.Duration
	maxLatency time.Duration
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithLatency overrides the simulated network delay range. Pass zeros for
// instant responses in tests.
func WithLatency(min, max time.Duration) SimulatorOption {
	return func(s *Simulator) {
		if min < 0 || max < min {
			return
		}
		s.minLatency, s.maxLatency = min, max
	}
}

// NewSimulator creates the simulated backend with the default 600ms-1500ms
// latency range.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		minLatency: 600 * time.Millisecond,
		maxLatency: 1500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) delay(ctx context.Context) error {
	d := s.minLatency
	if span := s.maxLatency - s.minLatency; span > 0 {
		d += time.Duration(rand.Int64N(int64(span)))
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetPosts pages through the fixture dataset. An unknown cursor restarts
// from the top of the stream rather than failing, matching a feed where the
// referenced post has since been deleted.
func (s *Simulator) GetPosts(ctx context.Context, params Params) (Page, error) {
	if err := params.Validate(); err != nil {
		return Page{}, err
	}
	if err := s.delay(ctx); err != nil {
		return Page{}, networkError(err)
	}

	filtered := filterPosts(simPosts, params)

	start := 0
	if params.LastPostID != "" {
		idx := slices.IndexFunc(filtered, func(p Post) bool { return p.PostID == params.LastPostID })
		start = idx + 1
	}
	if start >= len(filtered) {
		return Page{Posts: []Post{}, HasNext: false, Size: params.Size}, nil
	}

	end := min(start+params.Size, len(filtered))
	posts := slices.Clone(filtered[start:end])

	page := Page{Posts: posts, Size: params.Size}
	if end < len(filtered) {
		page.HasNext = true
		next := posts[len(posts)-1].PostID
		page.NextPostID = &next
	}
	return page, nil
}

func filterPosts(posts []Post, params Params) []Post {
	var secondary []string
	if params.SecondaryCategoryID != "" {
		secondary = strings.Split(params.SecondaryCategoryID, ",")
	}

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if params.PrimaryCategoryID != "" && simPrimaryID(p) != params.PrimaryCategoryID {
			continue
		}
		if secondary != nil && !slices.Contains(secondary, simSecondaryID(p)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

var _ Client = (*Simulator)(nil)
