package users_module

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guessquest/guessquest/internal/auth"
	"github.com/guessquest/guessquest/internal/stores/users"
	"github.com/guessquest/guessquest/pkg/sdk"
)

type envelope struct {
	Status  sdk.StatusType  `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	InitWithDeps(users.NewInMemoryStore(), tokens)

	engine := gin.New()
	RegisterRoutes(engine.Group("/api"))

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, header http.Header) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	reader := bytes.NewBuffer(nil)
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(b)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	return w, env
}

func TestRegister(t *testing.T) {
	engine := setupRouter(t)

	t.Run("creates a user", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/users/register",
			sdk.RegisterRequest{Username: "alice", Password: "hunter2"}, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		w, env := doJSON(t, engine, http.MethodPost, "/api/users/register",
			sdk.RegisterRequest{Username: "alice", Password: "hunter2"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username already exists", env.Message)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/users/register",
			sdk.RegisterRequest{Username: "bob"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	engine := setupRouter(t)

	w, _ := doJSON(t, engine, http.MethodPost, "/api/users/register",
		sdk.RegisterRequest{Username: "alice", Password: "hunter2"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		w, env := doJSON(t, engine, http.MethodPost, "/api/users/login",
			sdk.LoginRequest{Username: "alice", Password: "hunter2"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp sdk.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.NotEmpty(t, resp.Token)

		userID, err := GetTokenService().Verify(resp.Token)
		require.NoError(t, err)
		assert.NotEmpty(t, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/users/login",
			sdk.LoginRequest{Username: "alice", Password: "wrong"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user gets the same response as a wrong password", func(t *testing.T) {
		w, env := doJSON(t, engine, http.MethodPost, "/api/users/login",
			sdk.LoginRequest{Username: "nobody", Password: "hunter2"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid username or password", env.Message)
	})
}

func TestProfile(t *testing.T) {
	engine := setupRouter(t)

	w, _ := doJSON(t, engine, http.MethodPost, "/api/users/register",
		sdk.RegisterRequest{Username: "alice", Password: "hunter2"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	_, env := doJSON(t, engine, http.MethodPost, "/api/users/login",
		sdk.LoginRequest{Username: "alice", Password: "hunter2"}, nil)
	var login sdk.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))

	t.Run("requires a token", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodGet, "/api/profile", nil, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("returns the authenticated user", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Bearer "+login.Token)

		w, env := doJSON(t, engine, http.MethodGet, "/api/profile", nil, header)
		require.Equal(t, http.StatusOK, w.Code)

		var resp sdk.ProfileResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.NotEmpty(t, resp.UserID)
	})
}
