package message

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizardXds/medicare/internal/repository/memory"
	"github.com/wizardXds/medicare/internal/service/event"
	"github.com/wizardXds/medicare/internal/service/message"
	"github.com/wizardXds/medicare/pkg/httputil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	httputil.RegisterTagNameFunc()

	store := memory.NewStore()
	svc := message.NewService(store.Messages(), event.NewPublisher(nil, nil))

	engine := gin.New()
	api := engine.Group("/api")
	NewHandler(svc).RegisterRoutes(api)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateMessageRequiresContent(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/messages", gin.H{
		"senderId":   1,
		"receiverId": 2,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "content", resp.Fields[0].Field)
	assert.Equal(t, "content is required", resp.Fields[0].Message)
}

func TestCreateMessageDefaultsToUnread(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/messages", gin.H{
		"senderId":   1,
		"receiverId": 2,
		"content":    "hello",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, false, created["isRead"])
}

func TestListMessagesRequiresUserID(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/messages", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "userId query parameter is required", resp.Error)
}

func TestListMessagesReturnsBothDirections(t *testing.T) {
	engine := setupRouter(t)

	for _, body := range []gin.H{
		{"senderId": 1, "receiverId": 2, "content": "hello"},
		{"senderId": 2, "receiverId": 1, "content": "hi back"},
		{"senderId": 3, "receiverId": 4, "content": "unrelated"},
	} {
		w := doJSON(t, engine, http.MethodPost, "/api/messages", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/messages?userId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "hello", listed[0]["content"])
	assert.Equal(t, "hi back", listed[1]["content"])
}

func TestMarkAsRead(t *testing.T) {
	engine := setupRouter(t)

	created := doJSON(t, engine, http.MethodPost, "/api/messages", gin.H{
		"senderId":   1,
		"receiverId": 2,
		"content":    "hello",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	first := doJSON(t, engine, http.MethodPatch, "/api/messages/1/read", nil)
	require.Equal(t, http.StatusOK, first.Code)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &msg))
	assert.Equal(t, true, msg["isRead"])

	second := doJSON(t, engine, http.MethodPatch, "/api/messages/1/read", nil)
	assert.Equal(t, http.StatusOK, second.Code)

	missing := doJSON(t, engine, http.MethodPatch, "/api/messages/9/read", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(missing.Body.Bytes(), &resp))
	assert.Equal(t, "Message not found", resp.Error)
}
