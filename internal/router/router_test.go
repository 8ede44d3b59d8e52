package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptHandler "github.com/wizardXds/medicare/internal/handler/appointment"
	authHandler "github.com/wizardXds/medicare/internal/handler/auth"
	"github.com/wizardXds/medicare/internal/handler/health"
	hospitalHandler "github.com/wizardXds/medicare/internal/handler/hospital"
	messageHandler "github.com/wizardXds/medicare/internal/handler/message"
	paymentHandler "github.com/wizardXds/medicare/internal/handler/payment"
	prescriptionHandler "github.com/wizardXds/medicare/internal/handler/prescription"
	promHandler "github.com/wizardXds/medicare/internal/handler/prometheus"
	recordHandler "github.com/wizardXds/medicare/internal/handler/record"
	userHandler "github.com/wizardXds/medicare/internal/handler/user"
	"github.com/wizardXds/medicare/internal/middleware"
	"github.com/wizardXds/medicare/internal/repository/memory"
	"github.com/wizardXds/medicare/internal/seed"
	apptService "github.com/wizardXds/medicare/internal/service/appointment"
	authService "github.com/wizardXds/medicare/internal/service/auth"
	"github.com/wizardXds/medicare/internal/service/event"
	hospitalService "github.com/wizardXds/medicare/internal/service/hospital"
	messageService "github.com/wizardXds/medicare/internal/service/message"
	paymentService "github.com/wizardXds/medicare/internal/service/payment"
	prescriptionService "github.com/wizardXds/medicare/internal/service/prescription"
	recordService "github.com/wizardXds/medicare/internal/service/record"
	userService "github.com/wizardXds/medicare/internal/service/user"
	pkgauth "github.com/wizardXds/medicare/pkg/auth"
	"github.com/wizardXds/medicare/pkg/security"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	hasher := security.NewBcryptHasher(4)
	require.NoError(t, seed.Run(context.Background(), store, hasher))

	events := event.NewPublisher(nil, nil)
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)

	return New(Handlers{
		User:         userHandler.NewHandler(userService.NewService(store.Users())),
		Hospital:     hospitalHandler.NewHandler(hospitalService.NewService(store.Hospitals(), events)),
		Appointment:  apptHandler.NewHandler(apptService.NewService(store.Appointments(), store.Users(), events, nil)),
		Record:       recordHandler.NewHandler(recordService.NewService(store.MedicalRecords(), events)),
		Prescription: prescriptionHandler.NewHandler(prescriptionService.NewService(store.Prescriptions(), events)),
		Message:      messageHandler.NewHandler(messageService.NewService(store.Messages(), events)),
		Payment:      paymentHandler.NewHandler(paymentService.NewService(store.Payments(), events)),
		Auth:         authHandler.NewHandler(authService.NewService(store.Users(), jwtSvc, hasher, events)),
		Health:       health.NewHandler(nil),
		Prometheus:   promHandler.New(),
	}, middleware.NewAuthMiddleware(jwtSvc), Config{
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		Timeout:        5 * time.Second,
		CacheEnabled:   true,
		CacheTTL:       time.Minute,
		CORS:           middleware.DefaultCORSConfig(),
	})
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestDoctorDirectoryServesSeededDoctors(t *testing.T) {
	r := newTestRouter(t)

	w := get(r.Engine(), "/api/doctors")
	require.Equal(t, http.StatusOK, w.Code)

	var doctors []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
	require.Len(t, doctors, 3)
	for _, d := range doctors {
		assert.Equal(t, "doctor", d["role"])
		assert.NotContains(t, d, "password")
	}
}

func TestDoctorDirectoryIsCached(t *testing.T) {
	r := newTestRouter(t)

	first := get(r.Engine(), "/api/doctors")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := get(r.Engine(), "/api/doctors")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHospitalRoutes(t *testing.T) {
	r := newTestRouter(t)

	list := get(r.Engine(), "/api/hospitals")
	require.Equal(t, http.StatusOK, list.Code)

	var hospitals []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &hospitals))
	require.Len(t, hospitals, 2)
	assert.Equal(t, "City General Hospital", hospitals[0]["name"])

	one := get(r.Engine(), "/api/hospitals/2")
	require.Equal(t, http.StatusOK, one.Code)

	var hospital map[string]any
	require.NoError(t, json.Unmarshal(one.Body.Bytes(), &hospital))
	assert.Equal(t, "Memorial Medical Center", hospital["name"])

	missing := get(r.Engine(), "/api/hospitals/9")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	live := get(r.Engine(), "/health/live")
	assert.Equal(t, http.StatusOK, live.Code)

	ready := get(r.Engine(), "/health/ready")
	assert.Equal(t, http.StatusOK, ready.Code)

	metrics := get(r.Engine(), "/metrics")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "http_requests_total")
}
