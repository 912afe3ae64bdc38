package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"victorianails-backend/config"
	"victorianails-backend/controllers"
	"victorianails-backend/models"
	"victorianails-backend/routes"
	"victorianails-backend/store"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.AppointmentStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "Victoria")
	t.Setenv("ADMIN_PASSWORD", "Victoria10")

	storage, err := config.OpenStorage(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })

	appointments := store.NewAppointmentStore(storage, zap.NewNop())
	catalog := store.NewServiceCatalog(storage, zap.NewNop())

	auth, err := controllers.NewAuthController()
	if err != nil {
		t.Fatalf("auth controller: %v", err)
	}

	r := routes.SetupRouter(routes.Controllers{
		Auth:         auth,
		Appointments: &controllers.AppointmentController{Store: appointments},
		Services:     &controllers.ServiceController{Catalog: catalog},
		Dashboard:    &controllers.DashboardController{Store: appointments},
	})
	return r, appointments
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "Victoria",
		"password": "Victoria10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Token
}

func TestLoginGate(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "Victoria",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad password, got %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/appointments", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}

	token := login(t, r)
	w = do(t, r, http.MethodGet, "/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /auth/me, got %d", w.Code)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	token := login(t, r)

	w := do(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"clientName":      "Carla Souza",
		"clientPhone":     "(11) 95555-1234",
		"serviceName":     "Nail Art",
		"date":            "2025-11-20T09:00:00-03:00",
		"timeSlot":        "09:00",
		"durationMinutes": 30,
		"price":           50,
		"paymentMethod":   "cash",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", w.Code, w.Body.String())
	}
	var created models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created appointment: %v", err)
	}
	if created.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}

	// Completing a pending appointment skips confirm: denied.
	w = do(t, r, http.MethodPut, "/api/appointments/"+created.ID+"/status", token,
		gin.H{"status": "completed"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for pending->completed, got %d", w.Code)
	}

	w = do(t, r, http.MethodPut, "/api/appointments/"+created.ID+"/status", token,
		gin.H{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("confirm failed: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPut, "/api/appointments/"+created.ID+"/status", token,
		gin.H{"status": "completed"})
	if w.Code != http.StatusOK {
		t.Fatalf("complete failed: %d %s", w.Code, w.Body.String())
	}

	// The generic edit stays permissive: it can write any status.
	w = do(t, r, http.MethodPut, "/api/appointments/"+created.ID, token,
		gin.H{"status": "pending"})
	if w.Code != http.StatusOK {
		t.Fatalf("permissive edit failed: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodDelete, "/api/appointments/"+created.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodDelete, "/api/appointments/"+created.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice, got %d", w.Code)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	r, _ := newTestServer(t)
	token := login(t, r)

	w := do(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"clientName": "Sem Telefone",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"clientName":      "Carla Souza",
		"clientPhone":     "(11) 95555-1234",
		"serviceName":     "Nail Art",
		"date":            "2025-11-20T09:00:00-03:00",
		"timeSlot":        "09:00",
		"durationMinutes": 30,
		"price":           50,
		"paymentMethod":   "check",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown payment method, got %d", w.Code)
	}
}

func TestDayFilterAndDashboard(t *testing.T) {
	r, _ := newTestServer(t)
	token := login(t, r)

	// The seed book has two appointments on 2025-11-11, both confirmed.
	w := do(t, r, http.MethodGet, "/api/appointments?date=2025-11-11", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("day list failed: %d %s", w.Code, w.Body.String())
	}
	var list []models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode day list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 appointments on the day, got %d", len(list))
	}
	if list[0].TimeSlot > list[1].TimeSlot {
		t.Fatalf("day list not in slot order: %s, %s", list[0].TimeSlot, list[1].TimeSlot)
	}

	w = do(t, r, http.MethodGet, "/api/dashboard?date=2025-11-11", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", w.Code, w.Body.String())
	}
	var summary struct {
		DayCount   int     `json:"dayCount"`
		DayRevenue float64 `json:"dayRevenue"`
		TotalCount int     `json:"totalCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.DayCount != 2 || summary.TotalCount != 3 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.DayRevenue != 170 {
		t.Fatalf("expected day revenue 170, got %v", summary.DayRevenue)
	}
}

func TestServiceCatalogEndpoints(t *testing.T) {
	r, _ := newTestServer(t)
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/services", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list services failed: %d", w.Code)
	}
	var services []models.Service
	if err := json.Unmarshal(w.Body.Bytes(), &services); err != nil {
		t.Fatalf("decode services: %v", err)
	}
	if len(services) != 8 {
		t.Fatalf("expected the 8 seed services, got %d", len(services))
	}

	w = do(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name":            "Spa dos Pés",
		"durationMinutes": 45,
		"price":           70,
		"description":     "Esfoliação e hidratação",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service failed: %d %s", w.Code, w.Body.String())
	}
	var created models.Service
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created service: %v", err)
	}

	w = do(t, r, http.MethodDelete, "/api/services/"+created.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete service failed: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodDelete, "/api/services/"+created.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice, got %d", w.Code)
	}
}
