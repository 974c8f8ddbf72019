package mockserver

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/modusplant/plantkit/pkg/authapi"
	"github.com/modusplant/plantkit/pkg/postapi"
)

// account is one registered user with its bcrypt password hash.
type account struct {
	user authapi.User
	hash []byte
}

// Server holds the volatile backend state. Safe for concurrent use.
type Server struct {
	log   *slog.Logger
	posts postapi.Client

	mu    sync.RWMutex
	users map[string]account // keyed by email
}

// Option configures a Server.
type Option func(*Server)

// WithLogger supplies the request logger. Nil keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a server pre-seeded with the test account. Post listings come
// from the postapi fixture dataset without artificial latency; the latency
// belongs on the network, not in the handler.
func New(opts ...Option) *Server {
	s := &Server{
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		posts: postapi.NewSimulator(postapi.WithLatency(0, 0)),
		users: make(map[string]account),
	}
	for _, opt := range opts {
		opt(s)
	}

	// MinCost keeps seeding and signup fast; this store never leaves memory.
	hash, err := bcrypt.GenerateFromPassword([]byte(authapi.SimTestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.users[authapi.SimTestEmail] = account{
		user: authapi.User{ID: "user_test", Email: authapi.SimTestEmail, Nickname: "테스트유저"},
		hash: hash,
	}
	return s
}

// Router builds the HTTP surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/email/request", s.handleEmailRequest)
		r.Post("/email/verify", s.handleEmailVerify)
		r.Get("/nickname/check", s.handleNicknameCheck)
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
	})
	r.Get("/api/v1/communication/posts", s.handlePosts)

	return r
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// emailRegistered reports whether the address has an account, including the
// fixture duplicates the simulators reject.
func (s *Server) emailRegistered(email string) bool {
	if email == authapi.SimDuplicateEmail || email == authapi.SimRequestFailEmail {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[email]
	return ok
}

// nicknameTaken checks the reserved blocklist and registered accounts,
// case-insensitively.
func (s *Server) nicknameTaken(nickname string) bool {
	for _, reserved := range []string{"admin", "test", "모두의식물", "modusplant"} {
		if strings.EqualFold(nickname, reserved) {
			return true
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.users {
		if strings.EqualFold(acc.user.Nickname, nickname) {
			return true
		}
	}
	return false
}

// register stores a new account. Returns false when the email lost a race to
// another signup.
func (s *Server) register(user authapi.User, hash []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return false
	}
	s.users[user.Email] = account{user: user, hash: hash}
	return true
}

// authenticate verifies the credentials and returns the account's user.
func (s *Server) authenticate(email, password string) (authapi.User, bool) {
	s.mu.RLock()
	acc, ok := s.users[email]
	s.mu.RUnlock()
	if !ok {
		return authapi.User{}, false
	}
	if bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		return authapi.User{}, false
	}
	return acc.user, true
}
