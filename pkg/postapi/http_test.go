package postapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modusplant/plantkit/pkg/postapi"
)

func TestHTTPClientGetPosts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trip with query params", func(t *testing.T) {
		t.Parallel()

		next := "post_031"
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/communication/posts", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "10", q.Get("size"))
			assert.Equal(t, "post_041", q.Get("lastPostId"))
			assert.Equal(t, "1", q.Get("primaryCategoryId"))
			assert.Equal(t, "10,12", q.Get("secondaryCategoryId"))

			json.NewEncoder(w).Encode(postapi.Page{
				Posts: []postapi.Post{{
					PostID:      "post_040",
					Title:       "몬스테라 분갈이 후기",
					Nickname:    "식물집사",
					PublishedAt: time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC),
					Content: []postapi.ContentPart{
						{Type: postapi.ContentText, Order: 1, Text: "분갈이 했어요"},
					},
				}},
				NextPostID: &next,
				HasNext:    true,
				Size:       10,
			})
		}))
		t.Cleanup(srv.Close)

		client := postapi.NewHTTPClient(srv.URL)
		page, err := client.GetPosts(ctx, postapi.Params{
			Size:                10,
			LastPostID:          "post_041",
			PrimaryCategoryID:   "1",
			SecondaryCategoryID: "10,12",
		})
		require.NoError(t, err)
		require.Len(t, page.Posts, 1)
		assert.Equal(t, "몬스테라 분갈이 후기", page.Posts[0].Title)
		assert.True(t, page.HasNext)
		require.NotNil(t, page.NextPostID)
		assert.Equal(t, "post_031", *page.NextPostID)
	})

	t.Run("empty cursor omits the parameter", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.False(t, q.Has("lastPostId"))
			assert.False(t, q.Has("primaryCategoryId"))
			assert.False(t, q.Has("secondaryCategoryId"))
			json.NewEncoder(w).Encode(postapi.Page{Posts: []postapi.Post{}, Size: 10})
		}))
		t.Cleanup(srv.Close)

		_, err := postapi.NewHTTPClient(srv.URL).GetPosts(ctx, postapi.Params{Size: 10})
		require.NoError(t, err)
	})

	t.Run("invalid size never reaches the network", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request sent despite invalid params")
		}))
		t.Cleanup(srv.Close)

		_, err := postapi.NewHTTPClient(srv.URL).GetPosts(ctx, postapi.Params{Size: 0})
		assert.ErrorIs(t, err, postapi.ErrInvalidSize)
	})

	t.Run("non-2xx with error body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{
				"message": "잘못된 요청입니다",
				"code":    "bad_request",
			})
		}))
		t.Cleanup(srv.Close)

		_, err := postapi.NewHTTPClient(srv.URL).GetPosts(ctx, postapi.Params{Size: 10})
		apiErr, ok := postapi.AsError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "bad_request", apiErr.Code)
		assert.Equal(t, "잘못된 요청입니다", apiErr.Message)
	})

	t.Run("non-2xx without usable body falls back", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		}))
		t.Cleanup(srv.Close)

		_, err := postapi.NewHTTPClient(srv.URL).GetPosts(ctx, postapi.Params{Size: 10})
		apiErr, ok := postapi.AsError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, postapi.CodeRequestFailed, apiErr.Code)
		assert.Equal(t, "게시글을 불러오지 못했습니다", apiErr.Message)
	})

	t.Run("malformed success body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		t.Cleanup(srv.Close)

		_, err := postapi.NewHTTPClient(srv.URL).GetPosts(ctx, postapi.Params{Size: 10})
		apiErr, ok := postapi.AsError(err)
		require.True(t, ok)
		assert.Equal(t, postapi.CodeInvalidBody, apiErr.Code)
	})

	t.Run("unreachable host", func(t *testing.T) {
		t.Parallel()

		client := postapi.NewHTTPClient("http://127.0.0.1:1", postapi.WithTimeout(time.Second))
		_, err := client.GetPosts(ctx, postapi.Params{Size: 10})
		apiErr, ok := postapi.AsError(err)
		require.True(t, ok)
		assert.Equal(t, postapi.CodeNetworkError, apiErr.Code)
	})
}
