package postapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// pathPosts is the cursor-paginated post listing endpoint.
const pathPosts = "/api/v1/communication/posts"

// HTTPClient talks to a real post API deployment. The underlying http.Client
// is shared across calls for connection reuse.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the default http.Client. Nil clients are ignored.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTPClient) {
		if c != nil {
			h.client = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) HTTPOption {
	return func(h *HTTPClient) {
		if d > 0 {
			h.client.Timeout = d
		}
	}
}

// NewHTTPClient creates the HTTP backend rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	h := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// errorBody is the error envelope a failed response may carry.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// GetPosts fetches one page. Params are validated locally; only valid
// requests reach the network.
func (h *HTTPClient) GetPosts(ctx context.Context, params Params) (Page, error) {
	var page Page
	if err := params.Validate(); err != nil {
		return page, err
	}

	q := url.Values{}
	q.Set("size", strconv.Itoa(params.Size))
	if params.LastPostID != "" {
		q.Set("lastPostId", params.LastPostID)
	}
	if params.PrimaryCategoryID != "" {
		q.Set("primaryCategoryId", params.PrimaryCategoryID)
	}
	if params.SecondaryCategoryID != "" {
		q.Set("secondaryCategoryId", params.SecondaryCategoryID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+pathPosts+"?"+q.Encode(), nil)
	if err != nil {
		return page, networkError(err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return page, networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return page, networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Code: CodeRequestFailed, Message: msgRequestFailed}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			if eb.Message != "" {
				apiErr.Message = eb.Message
			}
			if eb.Code != "" {
				apiErr.Code = eb.Code
			}
		}
		return page, apiErr
	}

	if err := json.Unmarshal(raw, &page); err != nil {
		return Page{}, &Error{Status: resp.StatusCode, Code: CodeInvalidBody, Message: msgNetworkError, cause: err}
	}
	return page, nil
}

var _ Client = (*HTTPClient)(nil)
