package postapi

import (
	"context"
	"errors"
	"slices"
	"time"
)

// ErrInvalidSize is returned when Params.Size is not a positive integer.
var ErrInvalidSize = errors.New("postapi.invalid_size")

// ContentType tags a ContentPart variant.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
	ContentAudio ContentType = "audio"
	ContentFile  ContentType = "file"
)

// ContentPart is one ordered fragment of a post body. Text parts carry their
// text inline; media parts carry a payload reference. Order values are
// unique within a post and define display sequence, but are not guaranteed
// contiguous.
type ContentPart struct {
	Type  ContentType `json:"type"`
	Order int         `json:"order"`
	Text  string      `json:"text,omitempty"`
	URL   string      `json:"url,omitempty"`
}

// Post is an immutable snapshot of one community post as of the fetch. List
// identity is keyed by PostID.
type Post struct {
	PostID            string        `json:"postId"`
	PrimaryCategory   string        `json:"primaryCategory"`
	SecondaryCategory string        `json:"secondaryCategory"`
	Nickname          string        `json:"nickname"`
	Title             string        `json:"title"`
	Content           []ContentPart `json:"content"`
	LikeCount         int           `json:"likeCount"`
	CommentCount      int           `json:"commentCount"`
	PublishedAt       time.Time     `json:"publishedAt"`
	IsLiked           bool          `json:"isLiked"`
	IsBookmarked      bool          `json:"isBookmarked"`
}

// SortedContent returns the post's content parts in display sequence
// without mutating the snapshot.
func (p Post) SortedContent() []ContentPart {
	parts := slices.Clone(p.Content)
	slices.SortFunc(parts, func(a, b ContentPart) int { return a.Order - b.Order })
	return parts
}

// Params selects a page. Size is required and positive. LastPostID is the
// opaque cursor (the last item of the previous page); empty means the first
// page. The category IDs are opaque filters; SecondaryCategoryID may join
// several IDs with commas for multi-select.
type Params struct {
	Size                int
	LastPostID          string
	PrimaryCategoryID   string
	SecondaryCategoryID string
}

// Validate checks the parameter contract locally, before any network call.
func (p Params) Validate() error {
	if p.Size <= 0 {
		return ErrInvalidSize
	}
	return nil
}

// Page is one fetch result. NextPostID is nil and HasNext false at the end
// of the stream; Size echoes the requested page size.
type Page struct {
	Posts      []Post  `json:"posts"`
	NextPostID *string `json:"nextPostId"`
	HasNext    bool    `json:"hasNext"`
	Size       int     `json:"size"`
}

// Client is the post listing contract shared by both backends.
type Client interface {
	GetPosts(ctx context.Context, params Params) (Page, error)
}
