package prescription

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
	"github.com/wizardXds/medicare/internal/service/prescription"
	"github.com/wizardXds/medicare/pkg/httputil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	httputil.RegisterTagNameFunc()

	store := memory.NewStore()
	svc := prescription.NewService(store.Prescriptions(), event.NewPublisher(nil, nil))

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

func validBody() gin.H {
	return gin.H{
		"patientId":  1,
		"doctorId":   2,
		"medicationName": "Atorvastatin",
		"dosage":     "20mg",
		"frequency":  "once daily",
		"startDate":  "2024-06-01",
	}
}

func TestCreatePrescriptionDefaultsToActive(t *testing.T) {
	engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/prescriptions", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "active", created["status"])
	assert.Equal(t, "Atorvastatin", created["medicationName"])
}

func TestListPrescriptionsRequiresExactlyOneParty(t *testing.T) {
	engine := setupRouter(t)

	neither := doJSON(t, engine, http.MethodGet, "/api/prescriptions", nil)
	require.Equal(t, http.StatusBadRequest, neither.Code)

	both := doJSON(t, engine, http.MethodGet, "/api/prescriptions?patientId=1&doctorId=2", nil)
	require.Equal(t, http.StatusBadRequest, both.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(neither.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "patientId")
	assert.Contains(t, resp.Error, "doctorId")
}

func TestListPrescriptionsByDoctor(t *testing.T) {
	engine := setupRouter(t)

	created := doJSON(t, engine, http.MethodPost, "/api/prescriptions", validBody())
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(t, engine, http.MethodGet, "/api/prescriptions?doctorId=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.EqualValues(t, 2, listed[0]["doctorId"])
}

func TestUpdatePrescriptionStatus(t *testing.T) {
	engine := setupRouter(t)

	created := doJSON(t, engine, http.MethodPost, "/api/prescriptions", validBody())
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(t, engine, http.MethodPatch, "/api/prescriptions/1", gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, "20mg", updated["dosage"])

	missing := doJSON(t, engine, http.MethodPatch, "/api/prescriptions/9", gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusNotFound, missing.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(missing.Body.Bytes(), &resp))
	assert.Equal(t, "Prescription not found", resp.Error)
}
