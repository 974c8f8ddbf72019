package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Endpoint paths of the auth API.
const (
	pathEmailRequest  = "/api/auth/email/request"
	pathEmailVerify   = "/api/auth/email/verify"
	pathNicknameCheck = "/api/auth/nickname/check"
	pathSignup        = "/api/auth/signup"
	pathLogin         = "/api/auth/login"
)

// HTTPClient talks to a real auth API deployment. The underlying http.Client
// is shared across calls for connection reuse.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the default http.Client, e.g. to install a custom
// transport in tests. Nil clients are ignored.
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

// do performs one JSON round-trip. Non-2xx responses become *Error even when
// the body parses; their message/code fields populate the error when present.
func (h *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return networkError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
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
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Status: resp.StatusCode, Code: CodeInvalidBody, Message: msgNetworkError, cause: err}
	}
	return nil
}

// RequestEmailVerification asks the server to email a verification code.
func (h *HTTPClient) RequestEmailVerification(ctx context.Context, email string) (EmailVerificationResult, error) {
	var res EmailVerificationResult
	err := h.do(ctx, http.MethodPost, pathEmailRequest, map[string]string{"email": email}, &res)
	return res, err
}

// VerifyEmailCode confirms a previously emailed code.
func (h *HTTPClient) VerifyEmailCode(ctx context.Context, email, code string) (CodeVerificationResult, error) {
	var res CodeVerificationResult
	err := h.do(ctx, http.MethodPost, pathEmailVerify, map[string]string{"email": email, "code": code}, &res)
	return res, err
}

// CheckNickname asks whether a nickname is still available.
func (h *HTTPClient) CheckNickname(ctx context.Context, nickname string) (NicknameCheckResult, error) {
	var res NicknameCheckResult
	path := pathNicknameCheck + "?nickname=" + url.QueryEscape(nickname)
	err := h.do(ctx, http.MethodGet, path, nil, &res)
	return res, err
}

// Signup registers a new account.
func (h *HTTPClient) Signup(ctx context.Context, req SignupRequest) (SignupResult, error) {
	var res SignupResult
	err := h.do(ctx, http.MethodPost, pathSignup, req, &res)
	return res, err
}

// Login authenticates an account.
func (h *HTTPClient) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	var res LoginResult
	err := h.do(ctx, http.MethodPost, pathLogin, req, &res)
	return res, err
}

var _ Client = (*HTTPClient)(nil)
