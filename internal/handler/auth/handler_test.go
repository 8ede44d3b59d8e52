package auth

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

	"github.com/wizardXds/medicare/internal/middleware"
	"github.com/wizardXds/medicare/internal/repository/memory"
	authservice "github.com/wizardXds/medicare/internal/service/auth"
	"github.com/wizardXds/medicare/internal/service/event"
	pkgauth "github.com/wizardXds/medicare/pkg/auth"
	"github.com/wizardXds/medicare/pkg/httputil"
	"github.com/wizardXds/medicare/pkg/security"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	httputil.RegisterTagNameFunc()

	store := memory.NewStore()
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)
	hasher := security.NewBcryptHasher(4)
	svc := authservice.NewService(store.Users(), jwtSvc, hasher, event.NewPublisher(nil, nil))

	engine := gin.New()
	api := engine.Group("/api")
	NewHandler(svc).RegisterRoutes(api, middleware.NewAuthMiddleware(jwtSvc))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func registerBody() gin.H {
	return gin.H{
		"username":  "alice",
		"password":  "password123",
		"firstName": "Alice",
		"lastName":  "Anderson",
		"email":     "alice@example.com",
	}
}

func TestRegisterLoginMe(t *testing.T) {
	engine := setupRouter(t)

	registered := doJSON(t, engine, http.MethodPost, "/api/auth/register", registerBody(), nil)
	require.Equal(t, http.StatusCreated, registered.Code)

	var user map[string]any
	require.NoError(t, json.Unmarshal(registered.Body.Bytes(), &user))
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "patient", user["role"])
	assert.NotContains(t, user, "password")

	logged := doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, logged.Code)

	var token struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(logged.Body.Bytes(), &token))
	require.NotEmpty(t, token.Token)
	assert.Equal(t, "alice", token.User["username"])

	me := doJSON(t, engine, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token.Token,
	})
	require.Equal(t, http.StatusOK, me.Code)

	var current map[string]any
	require.NoError(t, json.Unmarshal(me.Body.Bytes(), &current))
	assert.Equal(t, "alice", current["username"])
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	engine := setupRouter(t)

	first := doJSON(t, engine, http.MethodPost, "/api/auth/register", registerBody(), nil)
	require.Equal(t, http.StatusCreated, first.Code)

	body := registerBody()
	body["email"] = "other@example.com"
	second := doJSON(t, engine, http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusConflict, second.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "username already taken", resp.Error)
}

func TestLoginWrongPassword(t *testing.T) {
	engine := setupRouter(t)

	registered := doJSON(t, engine, http.MethodPost, "/api/auth/register", registerBody(), nil)
	require.Equal(t, http.StatusCreated, registered.Code)

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	engine := setupRouter(t)

	missing := doJSON(t, engine, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, missing.Code)

	garbage := doJSON(t, engine, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, garbage.Code)
}

func TestRegisterValidatesPasswordLength(t *testing.T) {
	engine := setupRouter(t)

	body := registerBody()
	body["password"] = "short"
	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "password", resp.Fields[0].Field)
}
