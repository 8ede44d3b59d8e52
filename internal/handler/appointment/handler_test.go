package appointment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizardXds/medicare/internal/repository/memory"
	"github.com/wizardXds/medicare/internal/service/appointment"
	"github.com/wizardXds/medicare/internal/service/event"
	"github.com/wizardXds/medicare/pkg/httputil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	httputil.RegisterTagNameFunc()

	store := memory.NewStore()
	svc := appointment.NewService(store.Appointments(), store.Users(), event.NewPublisher(nil, nil), nil)

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

func TestCreateAppointmentAppliesDefaults(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/appointments", gin.H{
		"patientId": 1,
		"doctorId":  2,
		"date":      "2024-06-20",
		"time":      "09:00",
		"type":      "in-person",
		"status":    "pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.EqualValues(t, 1, created["id"])
	assert.EqualValues(t, 30, created["duration"])
	assert.Equal(t, "pending", created["status"])
	assert.NotEmpty(t, created["createdAt"])
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/appointments", gin.H{
		"patientId": 1,
		"doctorId":  2,
		"date":      "2024-06-20",
		"time":      "09:00",
		"duration":  45,
		"type":      "video",
		"notes":     "follow-up",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	id := int(created["id"].(float64))
	got := doJSON(t, engine, http.MethodGet, "/api/appointments/"+strconv.Itoa(id), nil)
	require.Equal(t, http.StatusOK, got.Code)

	var fetched map[string]any
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateAppointmentValidation(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/appointments", gin.H{
		"patientId": 1,
		"doctorId":  2,
		"time":      "09:00",
		"status":    "nonsense",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)

	violated := make(map[string]string)
	for _, f := range resp.Fields {
		violated[f.Field] = f.Message
	}
	assert.Contains(t, violated, "date")
	assert.Contains(t, violated, "status")
}

func TestListAppointmentsRequiresExactlyOneParty(t *testing.T) {
	engine := setupRouter(t)

	neither := doJSON(t, engine, http.MethodGet, "/api/appointments", nil)
	require.Equal(t, http.StatusBadRequest, neither.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(neither.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "patientId")
	assert.Contains(t, resp.Error, "doctorId")

	both := doJSON(t, engine, http.MethodGet, "/api/appointments?patientId=1&doctorId=2", nil)
	assert.Equal(t, http.StatusBadRequest, both.Code)
}

func TestListAppointmentsByPatient(t *testing.T) {
	engine := setupRouter(t)

	for _, body := range []gin.H{
		{"patientId": 1, "doctorId": 2, "date": "2024-06-20", "time": "09:00"},
		{"patientId": 7, "doctorId": 2, "date": "2024-06-21", "time": "10:00"},
	} {
		w := doJSON(t, engine, http.MethodPost, "/api/appointments", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/appointments?patientId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.EqualValues(t, 1, listed[0]["patientId"])
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPatch, "/api/appointments/99", gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Appointment not found", resp.Error)
}

func TestUpdateAppointmentPartialPatch(t *testing.T) {
	engine := setupRouter(t)

	created := doJSON(t, engine, http.MethodPost, "/api/appointments", gin.H{
		"patientId": 1,
		"doctorId":  2,
		"date":      "2024-06-20",
		"time":      "09:00",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(t, engine, http.MethodPatch, "/api/appointments/1", gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "cancelled", updated["status"])
	assert.Equal(t, "2024-06-20", updated["date"])
	assert.EqualValues(t, 30, updated["duration"])
}
