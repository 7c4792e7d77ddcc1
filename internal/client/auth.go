package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/warefy/supply-chain-client/internal/core/domain"
	"github.com/warefy/supply-chain-client/internal/metrics"
)

// Credentials accepted by the demo login path when demo mode is on.
var (
	demoUsernames = map[string]struct{}{"admin": {}, "admin@warefy.com": {}, "demo": {}}
	demoPasswords = map[string]struct{}{"admin123": {}, "demo123": {}}
)

func isDemoCredential(username, password string) bool {
	_, userOK := demoUsernames[username]
	_, passOK := demoPasswords[password]
	return userOK && passOK
}

// LoginError is returned by every failed login. Its message is always
// "invalid credentials"; errors.Is additionally matches domain.ErrTransport
// or domain.ErrMalformedResponse when that was the actual cause.
type LoginError struct {
	kind  error
	cause error
}

func (e *LoginError) Error() string { return domain.ErrInvalidCredentials.Error() }

func (e *LoginError) Unwrap() []error {
	if e.kind == nil {
		return []error{domain.ErrInvalidCredentials}
	}
	return []error{domain.ErrInvalidCredentials, e.kind}
}

// AuthService covers /api/auth and the local session.
type AuthService struct {
	client *Client

	mu             sync.Mutex
	authenticating int
}

// State reports where the client sits in the login state machine.
func (s *AuthService) State(ctx context.Context) (domain.AuthState, error) {
	s.mu.Lock()
	busy := s.authenticating > 0
	s.mu.Unlock()
	if busy {
		return domain.StateAuthenticating, nil
	}

	token, err := s.client.store.Get(ctx, domain.TokenKey)
	if err != nil {
		return domain.StateAnonymous, fmt.Errorf("auth state: %w: %w", domain.ErrSessionStore, err)
	}
	if token == "" {
		return domain.StateAnonymous, nil
	}
	return domain.StateAuthenticated, nil
}

// Login authenticates username/password. In demo mode the demo credentials
// are honoured locally without contacting the backend, even when the same
// account also exists there. Otherwise the credentials are posted as
// multipart form data to /api/auth/login. Any failure clears the stored
// token and yields a *LoginError.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	s.mu.Lock()
	s.authenticating++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.authenticating--
		s.mu.Unlock()
	}()

	log := s.client.log

	if s.client.demoMode && isDemoCredential(username, password) {
		resp, err := s.demoLogin(ctx, username)
		if err != nil {
			s.clearToken(ctx)
			metrics.LoginsTotal.WithLabelValues("demo", "error").Inc()
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues("demo", "success").Inc()
		log.Info().Str("username", username).Str("mode", "demo").Msg("logged in")
		return resp, nil
	}

	resp, err := s.backendLogin(ctx, username, password)
	if err != nil {
		s.clearToken(ctx)
		var le *LoginError
		if errors.As(err, &le) {
			metrics.LoginsTotal.WithLabelValues("backend", loginResult(le)).Inc()
			log.Warn().Err(le.cause).Str("username", username).Msg("login failed")
		}
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("backend", "success").Inc()
	log.Info().Str("username", username).Str("mode", "backend").Msg("logged in")
	return resp, nil
}

func (s *AuthService) demoLogin(ctx context.Context, username string) (*domain.LoginResponse, error) {
	token, err := EncodeDemoToken(domain.DemoClaims{
		Username: username,
		Role:     domain.RoleAdmin,
		Exp:      s.client.now().Add(domain.DemoTokenTTL).UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("demo login: %w", err)
	}
	if err := s.storeSession(ctx, domain.Session{Token: token, Username: username}); err != nil {
		return nil, fmt.Errorf("demo login: %w", err)
	}
	return &domain.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthService) backendLogin(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("username", username); err != nil {
		return nil, fmt.Errorf("login: build form: %w", err)
	}
	if err := form.WriteField("password", password); err != nil {
		return nil, fmt.Errorf("login: build form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("login: build form: %w", err)
	}

	req, err := s.client.newRequest(ctx, http.MethodPost, "/api/auth/login", nil, &body, form.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var out domain.LoginResponse
	if err := s.client.send(req, "auth", &out); err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionStore):
			return nil, err
		case errors.Is(err, domain.ErrTransport):
			return nil, &LoginError{kind: domain.ErrTransport, cause: err}
		case errors.Is(err, domain.ErrMalformedResponse):
			return nil, &LoginError{kind: domain.ErrMalformedResponse, cause: err}
		default:
			return nil, &LoginError{cause: err}
		}
	}
	if out.AccessToken == "" {
		return nil, &LoginError{
			kind:  domain.ErrMalformedResponse,
			cause: fmt.Errorf("login: %w: missing access_token", domain.ErrMalformedResponse),
		}
	}

	if err := s.storeSession(ctx, domain.Session{Token: out.AccessToken, Username: username}); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out, nil
}

// clearToken drops whatever token a failed login may have left behind so
// that the client ends up anonymous.
func (s *AuthService) clearToken(ctx context.Context) {
	if err := s.client.store.Delete(ctx, domain.TokenKey); err != nil {
		s.client.log.Warn().Err(err).Msg("failed to clear token after failed login")
	}
}

func (s *AuthService) storeSession(ctx context.Context, sess domain.Session) error {
	if err := s.client.store.Set(ctx, domain.TokenKey, sess.Token); err != nil {
		return fmt.Errorf("%w: store token: %w", domain.ErrSessionStore, err)
	}
	if err := s.client.store.Set(ctx, domain.UsernameKey, sess.Username); err != nil {
		return fmt.Errorf("%w: store username: %w", domain.ErrSessionStore, err)
	}
	return nil
}

func loginResult(le *LoginError) string {
	switch le.kind {
	case domain.ErrTransport:
		return "transport_error"
	case domain.ErrMalformedResponse:
		return "malformed"
	default:
		return "rejected"
	}
}

// Logout forgets the stored token. It never contacts the backend and is
// safe to call without a session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.client.store.Delete(ctx, domain.TokenKey); err != nil {
		return fmt.Errorf("logout: %w: %w", domain.ErrSessionStore, err)
	}
	return nil
}

// Me calls GET /api/auth/me with the stored token.
func (s *AuthService) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := s.client.do(ctx, "auth", http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register calls POST /api/auth/register.
func (s *AuthService) Register(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	var out domain.User
	if err := s.client.do(ctx, "auth", http.MethodPost, "/api/auth/register", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Session describes the stored session without contacting the backend.
func (s *AuthService) Session(ctx context.Context) (*domain.SessionInfo, error) {
	token, err := s.client.store.Get(ctx, domain.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("session: %w: %w", domain.ErrSessionStore, err)
	}
	if token == "" {
		return nil, fmt.Errorf("session: %w: not logged in", domain.ErrUnauthorized)
	}

	info, err := InspectToken(token, s.client.now())
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	username, err := s.client.store.Get(ctx, domain.UsernameKey)
	if err != nil {
		return nil, fmt.Errorf("session: %w: %w", domain.ErrSessionStore, err)
	}
	if username != "" {
		info.Username = username
	}
	return info, nil
}
