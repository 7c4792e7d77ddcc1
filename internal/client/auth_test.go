package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/warefy/supply-chain-client/internal/core/domain"
	"github.com/warefy/supply-chain-client/internal/infrastructure/session"
	"github.com/warefy/supply-chain-client/internal/metrics"
)

func rejectingBackend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = io.WriteString(w, `{"detail":"Incorrect username or password"}`)
}

func TestLogin_DemoCredentialsSkipNetwork(t *testing.T) {
	srv, rec := newBackend(t, nil)
	c, store := newTestClient(t, srv.URL, true)
	ctx := context.Background()
	before := time.Now()
	successes := metrics.LoginsTotal.WithLabelValues("demo", "success")
	startCount := testutil.ToFloat64(successes)

	resp, err := c.Auth.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if got := testutil.ToFloat64(successes) - startCount; got != 1 {
		t.Fatalf("expected demo success counter to grow by 1, grew by %v", got)
	}
	if len(rec.all()) != 0 {
		t.Fatalf("demo login must not contact the backend")
	}

	token, _ := store.Get(ctx, domain.TokenKey)
	if token == "" || token != resp.AccessToken {
		t.Fatalf("expected stored token to equal returned token")
	}
	if username, _ := store.Get(ctx, domain.UsernameKey); username != "admin" {
		t.Fatalf("expected stored username admin, got %q", username)
	}

	claims, err := DecodeDemoToken(token)
	if err != nil {
		t.Fatalf("DecodeDemoToken returned error: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if exp := time.UnixMilli(claims.Exp); !exp.After(before.Add(23 * time.Hour)) {
		t.Fatalf("expected expiry about 24h ahead, got %s", exp)
	}

	state, err := c.Auth.State(ctx)
	if err != nil || state != domain.StateAuthenticated {
		t.Fatalf("expected authenticated state, got %s (%v)", state, err)
	}
}

func TestLogin_DemoWinsOverBackend(t *testing.T) {
	srv, rec := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"access_token":"backend-token","token_type":"bearer"}`)
	})
	c, store := newTestClient(t, srv.URL, true)

	if _, err := c.Auth.Login(context.Background(), "demo", "demo123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if len(rec.all()) != 0 {
		t.Fatalf("backend consulted despite demo credentials")
	}
	if token, _ := store.Get(context.Background(), domain.TokenKey); token == "backend-token" {
		t.Fatalf("backend token stored instead of demo token")
	}
}

func TestLogin_DemoModeOffUsesBackend(t *testing.T) {
	srv, rec := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"access_token":"real","token_type":"bearer"}`)
	})
	c, store := newTestClient(t, srv.URL, false)

	if _, err := c.Auth.Login(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if len(rec.all()) != 1 {
		t.Fatalf("expected the backend to be consulted")
	}
	if token, _ := store.Get(context.Background(), domain.TokenKey); token != "real" {
		t.Fatalf("expected backend token, got %q", token)
	}
}

func TestLogin_DemoUserWrongPasswordRejected(t *testing.T) {
	srv, _ := newBackend(t, rejectingBackend)
	c, store := newTestClient(t, srv.URL, true)
	ctx := context.Background()
	rejected := metrics.LoginsTotal.WithLabelValues("backend", "rejected")
	startCount := testutil.ToFloat64(rejected)

	_, err := c.Auth.Login(ctx, "admin", "wrongpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if got := testutil.ToFloat64(rejected) - startCount; got != 1 {
		t.Fatalf("expected rejected counter to grow by 1, grew by %v", got)
	}
	if err.Error() != "invalid credentials" {
		t.Fatalf("expected uniform message, got %q", err.Error())
	}
	if strings.Contains(err.Error(), "Incorrect") {
		t.Fatalf("backend detail leaked: %v", err)
	}
	if token, _ := store.Get(ctx, domain.TokenKey); token != "" {
		t.Fatalf("token stored after rejected login: %q", token)
	}
	if state, _ := c.Auth.State(ctx); state != domain.StateAnonymous {
		t.Fatalf("expected anonymous state, got %s", state)
	}
}

func TestLogin_BackendPassThrough(t *testing.T) {
	var gotUser, gotPass, gotType string
	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			gotUser = r.FormValue("username")
			gotPass = r.FormValue("password")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"T","token_type":"bearer"}`)
	})
	c, store := newTestClient(t, srv.URL, true)
	ctx := context.Background()

	resp, err := c.Auth.Login(ctx, "carol", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if *resp != (domain.LoginResponse{AccessToken: "T", TokenType: "bearer"}) {
		t.Fatalf("response altered: %+v", resp)
	}
	if token, _ := store.Get(ctx, domain.TokenKey); token != "T" {
		t.Fatalf("expected stored token T, got %q", token)
	}
	if username, _ := store.Get(ctx, domain.UsernameKey); username != "carol" {
		t.Fatalf("expected stored username carol, got %q", username)
	}
	if !strings.HasPrefix(gotType, "multipart/form-data") {
		t.Fatalf("expected multipart form, got %q", gotType)
	}
	if gotUser != "carol" || gotPass != "s3cret" {
		t.Fatalf("form fields not sent: %q %q", gotUser, gotPass)
	}
}

func TestLogin_TransportFailureKeepsKind(t *testing.T) {
	srv, _ := newBackend(t, nil)
	url := srv.URL
	srv.Close()
	c, _ := newTestClient(t, url, false)

	_, err := c.Auth.Login(context.Background(), "carol", "s3cret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport to be preserved, got %v", err)
	}
	var le *LoginError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoginError, got %T", err)
	}
}

func TestLogin_MissingAccessTokenIsMalformed(t *testing.T) {
	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token_type":"bearer"}`)
	})
	c, store := newTestClient(t, srv.URL, false)

	_, err := c.Auth.Login(context.Background(), "carol", "s3cret")
	if !errors.Is(err, domain.ErrInvalidCredentials) || !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected invalid credentials + malformed, got %v", err)
	}
	if errors.Is(err, domain.ErrTransport) {
		t.Fatalf("malformed body must not look like a transport failure")
	}
	if token, _ := store.Get(context.Background(), domain.TokenKey); token != "" {
		t.Fatalf("token stored after malformed login")
	}
}

func TestLogin_FailureClearsPreviousToken(t *testing.T) {
	srv, _ := newBackend(t, rejectingBackend)
	c, store := newTestClient(t, srv.URL, false)
	ctx := context.Background()
	_ = store.Set(ctx, domain.TokenKey, "stale")

	if _, err := c.Auth.Login(ctx, "carol", "bad"); err == nil {
		t.Fatalf("expected error")
	}
	if token, _ := store.Get(ctx, domain.TokenKey); token != "" {
		t.Fatalf("stale token survived a failed login")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	srv, rec := newBackend(t, nil)
	c, store := newTestClient(t, srv.URL, false)
	ctx := context.Background()

	if err := c.Auth.Logout(ctx); err != nil {
		t.Fatalf("Logout without session returned error: %v", err)
	}
	if token, _ := store.Get(ctx, domain.TokenKey); token != "" {
		t.Fatalf("expected no token")
	}

	_ = store.Set(ctx, domain.TokenKey, "T")
	if err := c.Auth.Logout(ctx); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if token, _ := store.Get(ctx, domain.TokenKey); token != "" {
		t.Fatalf("token survived logout")
	}
	if len(rec.all()) != 0 {
		t.Fatalf("logout must not contact the backend")
	}
}

func TestMe_PropagatesFailure(t *testing.T) {
	srv, rec := newBackend(t, rejectingBackend)
	c, store := newTestClient(t, srv.URL, false)
	_ = store.Set(context.Background(), domain.TokenKey, "expired")

	_, err := c.Auth.Me(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	got := rec.last(t)
	if got.Path != "/api/auth/me" || got.Authorization != "Bearer expired" {
		t.Fatalf("unexpected request: %+v", got)
	}
}

func TestState_AuthenticatingDuringLogin(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		_, _ = io.WriteString(w, `{"access_token":"T"}`)
	})
	c, _ := newTestClient(t, srv.URL, false)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := c.Auth.Login(ctx, "carol", "s3cret")
		done <- err
	}()

	<-entered
	if state, _ := c.Auth.State(ctx); state != domain.StateAuthenticating {
		t.Fatalf("expected authenticating, got %s", state)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if state, _ := c.Auth.State(ctx); state != domain.StateAuthenticated {
		t.Fatalf("expected authenticated, got %s", state)
	}
}

func TestSession_DemoToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c, err := New(Config{BaseURL: "http://api.test", DemoMode: true}, session.NewMemoryStore(), zerolog.Nop(), WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()

	if _, err := c.Auth.Session(ctx); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without a session, got %v", err)
	}

	if _, err := c.Auth.Login(ctx, "admin@warefy.com", "admin123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	info, err := c.Auth.Session(ctx)
	if err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	if !info.Demo || info.Username != "admin@warefy.com" || info.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session info: %+v", info)
	}
	if !info.ExpiresAt.Equal(now.Add(24*time.Hour)) || info.Expired {
		t.Fatalf("unexpected expiry: %+v", info)
	}
}

func TestSession_BackendJWT(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "carol",
		"role": "manager",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c, store := newTestClient(t, "http://api.test", false)
	_ = store.Set(context.Background(), domain.TokenKey, signed)

	info, err := c.Auth.Session(context.Background())
	if err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	if info.Demo || info.Username != "carol" || info.Role != "manager" {
		t.Fatalf("unexpected session info: %+v", info)
	}
	if !info.Expired {
		t.Fatalf("expected expired session to be reported")
	}
}

// usernameFailingStore accepts every write except the username.
type usernameFailingStore struct {
	*session.MemoryStore
}

func (s usernameFailingStore) Set(ctx context.Context, key, value string) error {
	if key == domain.UsernameKey {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestLogin_DemoStoreFailureLeavesAnonymous(t *testing.T) {
	srv, rec := newBackend(t, nil)
	store := usernameFailingStore{session.NewMemoryStore()}
	c, err := New(Config{BaseURL: srv.URL, DemoMode: true}, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()
	failures := metrics.LoginsTotal.WithLabelValues("demo", "error")
	startCount := testutil.ToFloat64(failures)

	if _, err := c.Auth.Login(ctx, "admin", "admin123"); !errors.Is(err, domain.ErrSessionStore) {
		t.Fatalf("expected ErrSessionStore, got %v", err)
	}
	if len(rec.all()) != 0 {
		t.Fatalf("demo login must not contact the backend")
	}
	if token, _ := store.Get(ctx, domain.TokenKey); token != "" {
		t.Fatalf("token left behind after failed demo login: %q", token)
	}
	if state, _ := c.Auth.State(ctx); state != domain.StateAnonymous {
		t.Fatalf("expected anonymous state, got %s", state)
	}
	if got := testutil.ToFloat64(failures) - startCount; got != 1 {
		t.Fatalf("expected demo error counter to grow by 1, grew by %v", got)
	}
}

func TestLogin_BackendStoreFailureLeavesAnonymous(t *testing.T) {
	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"T","token_type":"bearer"}`)
	})
	store := usernameFailingStore{session.NewMemoryStore()}
	c, err := New(Config{BaseURL: srv.URL}, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()

	if _, err := c.Auth.Login(ctx, "carol", "s3cret"); !errors.Is(err, domain.ErrSessionStore) {
		t.Fatalf("expected ErrSessionStore, got %v", err)
	}
	if token, _ := store.Get(ctx, domain.TokenKey); token != "" {
		t.Fatalf("token left behind after failed login: %q", token)
	}
}
