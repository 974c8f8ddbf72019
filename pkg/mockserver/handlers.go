package mockserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/modusplant/plantkit/pkg/authapi"
	"github.com/modusplant/plantkit/pkg/postapi"
	"github.com/modusplant/plantkit/pkg/validator"
)

// errorResponse is the envelope failed requests carry.
type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", slog.Any("error", err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respond(w, status, errorResponse{Message: message, Code: code})
}

// decode parses the JSON request body into v.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_body", "요청 본문이 올바르지 않습니다")
		return false
	}
	return true
}

func (s *Server) handleEmailRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if !validator.ValidateEmail(req.Email) {
		s.respondError(w, http.StatusBadRequest, "invalid_email", "올바른 이메일 형식이 아닙니다")
		return
	}

	if s.emailRegistered(req.Email) {
		s.respond(w, http.StatusOK, authapi.EmailVerificationResult{
			Success: false,
			Message: "이미 가입된 이메일입니다.",
		})
		return
	}
	s.respond(w, http.StatusOK, authapi.EmailVerificationResult{
		Success:   true,
		Message:   "인증코드가 발송되었습니다.",
		ExpiresIn: authapi.SimCodeTTL,
	})
}

func (s *Server) handleEmailVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	if req.Code == authapi.SimVerificationCode {
		s.respond(w, http.StatusOK, authapi.CodeVerificationResult{
			Success: true,
			Message: "이메일 인증이 완료되었습니다.",
		})
		return
	}
	s.respond(w, http.StatusOK, authapi.CodeVerificationResult{
		Success: false,
		Message: "인증코드가 일치하지 않습니다.",
	})
}

func (s *Server) handleNicknameCheck(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if check := validator.ValidateNickname(nickname); !check.Valid {
		s.respondError(w, http.StatusBadRequest, "invalid_nickname", check.Errors[0])
		return
	}

	if s.nicknameTaken(nickname) {
		s.respond(w, http.StatusOK, authapi.NicknameCheckResult{
			Success:   true,
			Available: false,
			Message:   "사용 중인 닉네임입니다.",
		})
		return
	}
	s.respond(w, http.StatusOK, authapi.NicknameCheckResult{
		Success:   true,
		Available: true,
		Message:   "사용 가능한 닉네임입니다.",
	})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req authapi.SignupRequest
	if !s.decode(w, r, &req) {
		return
	}

	if !validator.ValidateEmail(req.Email) {
		s.respondError(w, http.StatusBadRequest, "invalid_email", "올바른 이메일 형식이 아닙니다")
		return
	}
	if check := validator.ValidatePassword(req.Password); !check.Valid {
		s.respondError(w, http.StatusBadRequest, "weak_password", "영문 대소문자, 숫자, 특수문자를 포함한 8자 이상이어야 합니다")
		return
	}
	if check := validator.ValidateNickname(req.Nickname); !check.Valid {
		s.respondError(w, http.StatusBadRequest, "invalid_nickname", check.Errors[0])
		return
	}
	if !req.AgreeToTerms || !req.AgreeToPrivacy || !req.AgreeToCommunity {
		s.respond(w, http.StatusOK, authapi.SignupResult{
			Success: false,
			Message: "필수 약관에 동의해주세요.",
		})
		return
	}

	if s.emailRegistered(req.Email) || s.nicknameTaken(req.Nickname) {
		s.respond(w, http.StatusOK, authapi.SignupResult{
			Success: false,
			Message: "이미 가입된 이메일입니다.",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "internal_error", "요청을 처리하지 못했습니다")
		return
	}
	user := authapi.User{
		ID:       "user_" + uuid.NewString(),
		Email:    req.Email,
		Nickname: req.Nickname,
	}
	if !s.register(user, hash) {
		s.respond(w, http.StatusOK, authapi.SignupResult{
			Success: false,
			Message: "이미 가입된 이메일입니다.",
		})
		return
	}

	s.log.Info("account created", slog.String("user_id", user.ID))
	s.respond(w, http.StatusOK, authapi.SignupResult{
		Success: true,
		Message: "회원가입이 완료되었습니다.",
		User:    &user,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authapi.LoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	user, ok := s.authenticate(req.Email, req.Password)
	if !ok {
		s.respond(w, http.StatusOK, authapi.LoginResult{
			Success: false,
			Message: "이메일 또는 비밀번호가 올바르지 않습니다.",
		})
		return
	}
	s.respond(w, http.StatusOK, authapi.LoginResult{
		Success: true,
		User:    &user,
		Token:   authapi.SimToken,
	})
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	size, err := strconv.Atoi(q.Get("size"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_size", "size는 양의 정수여야 합니다")
		return
	}

	page, err := s.posts.GetPosts(r.Context(), postapi.Params{
		Size:                size,
		LastPostID:          q.Get("lastPostId"),
		PrimaryCategoryID:   q.Get("primaryCategoryId"),
		SecondaryCategoryID: q.Get("secondaryCategoryId"),
	})
	if errors.Is(err, postapi.ErrInvalidSize) {
		s.respondError(w, http.StatusBadRequest, "invalid_size", "size는 양의 정수여야 합니다")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "internal_error", "게시글을 불러오지 못했습니다")
		return
	}
	s.respond(w, http.StatusOK, page)
}
