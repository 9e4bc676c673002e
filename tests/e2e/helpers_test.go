//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	articlerepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/article"
	clickedwordrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/clickedword"
	meaningrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/meaning"
	sessionrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/session"
	"github.com/readlingo/readlingo-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/user"
	vocabrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/vocabulary"
	authpkg "github.com/readlingo/readlingo-backend/internal/auth"
	"github.com/readlingo/readlingo-backend/internal/config"
	"github.com/readlingo/readlingo-backend/internal/lexicon"
	articlesvc "github.com/readlingo/readlingo-backend/internal/service/article"
	authsvc "github.com/readlingo/readlingo-backend/internal/service/auth"
	"github.com/readlingo/readlingo-backend/internal/service/difficulty"
	readingsvc "github.com/readlingo/readlingo-backend/internal/service/reading"
	"github.com/readlingo/readlingo-backend/internal/service/spelling"
	usersvc "github.com/readlingo/readlingo-backend/internal/service/user"
	vocabsvc "github.com/readlingo/readlingo-backend/internal/service/vocabulary"
	"github.com/readlingo/readlingo-backend/internal/transport/middleware"
	"github.com/readlingo/readlingo-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	articles := articlerepo.New(pool)
	vocab := vocabrepo.New(pool)
	meanings := meaningrepo.New(pool)
	clicked := clickedwordrepo.New(pool)
	sessions := sessionrepo.New(pool)

	lex, err := lexicon.Build()
	require.NoError(t, err)

	scorer := difficulty.NewScorer(lex)
	speller := spelling.NewSuggester(lex)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users)
	articleService := articlesvc.NewService(logger, articles, clicked, scorer, speller, nil)
	vocabService := vocabsvc.NewService(logger, vocab, meanings, users, lex)
	readingService := readingsvc.NewService(logger, articles, vocab, clicked, meanings, sessions, users, txm)

	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, "e2e"),
		Auth:    rest.NewAuthHandler(authService, logger),
		User:    rest.NewUserHandler(userService, logger),
		Article: rest.NewArticleHandler(articleService, logger),
		Reading: rest.NewReadingHandler(readingService, logger),
		Vocab:   rest.NewVocabHandler(vocabService, logger),
		Tools:   rest.NewToolsHandler(scorer, speller, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON performs an HTTP request with optional JSON body and bearer token,
// decoding the JSON response into a generic map.
func (s *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

// registerUser registers a fresh user and returns the access token.
func (s *testServer) registerUser(t *testing.T, name string) string {
	t.Helper()

	email := fmt.Sprintf("%s-%d@example.com", name, time.Now().UnixNano())
	status, resp := s.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"username": name,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status, "register response: %v", resp)

	token, ok := resp["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")
	return token
}

// items extracts the "items" array from a list response.
func items(t *testing.T, resp map[string]any) []any {
	t.Helper()
	list, ok := resp["items"].([]any)
	require.True(t, ok, "expected items array, got %v", resp)
	return list
}
