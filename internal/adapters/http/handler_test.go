package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"clubhouse/internal/application"
	"clubhouse/internal/clock"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/infrastructure/i18n"
	"clubhouse/internal/infrastructure/security"
	"clubhouse/internal/ports/input"
	"clubhouse/internal/testutil"
)

var testNow = time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)

const (
	eventID       = "7b0c1a4e-3f55-4c1e-9a57-0d5c1f1f2a01"
	adminEmail    = "owner@club.test"
	adminPassword = "correct-horse"
)

type server struct {
	engine    *gin.Engine
	store     *testutil.Store
	publisher *testutil.Publisher
	hasher    *security.BcryptHasher
}

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func newServer(t *testing.T, ping Pinger) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zerolog.Nop()

	s := &server{
		store:     testutil.NewStore(),
		publisher: &testutil.Publisher{},
		hasher:    security.NewBcryptHasher(bcrypt.MinCost),
	}
	clk := clock.NewFixed(testNow)
	tokens := security.NewJWTService("test-secret-of-enough-length", time.Hour)

	events := application.NewEventService(s.store.Events(), s.store.Customers(), s.hasher, clk)
	customers := application.NewCustomerService(s.store.Customers(), s.store.Events())
	registrations := application.NewRegistrationService(s.store.Events(), s.store.Customers(), customers, s.hasher, s.publisher, clk, &logger)
	admins := application.NewAdminService(s.store.Admins(), s.hasher, tokens, clk, &logger)
	happyHours := application.NewHappyHourService(s.store.HappyHours(), clk, time.UTC)

	require.NoError(t, admins.Bootstrap(context.Background(), input.RegisterAdmin{
		Email:    adminEmail,
		Password: adminPassword,
	}))

	h := NewHandler(events, registrations, customers, admins, happyHours, i18n.NewTranslator("en", &logger), clk, &logger)
	s.engine = NewRouter(h, RouterConfig{CORSOrigins: []string{"*"}, Ping: ping})
	return s
}

func (s *server) openEvent(t *testing.T, capacity int, password string) {
	t.Helper()
	e := entities.Event{
		ID:                eventID,
		Name:              "Saturday Night",
		Description:       "House and techno",
		Capacity:          capacity,
		StartTime:         testNow.Add(24 * time.Hour),
		EndTime:           testNow.Add(30 * time.Hour),
		RegistrationStart: testNow.Add(-time.Hour),
		RegistrationEnd:   testNow.Add(time.Hour),
		Attendees:         []string{},
	}
	if password != "" {
		hash, err := s.hasher.Hash(password)
		require.NoError(t, err)
		e.PasswordHash = hash
	}
	s.store.PutEvent(e)
}

func (s *server) do(t *testing.T, method, path string, body any, headers map[string]string) (int, response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var res response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res), rec.Body.String())
	return rec.Code, res
}

func (s *server) login(t *testing.T) map[string]string {
	t.Helper()
	code, res := s.do(t, http.MethodPost, "/api/admin/login", gin.H{"email": adminEmail, "password": adminPassword}, nil)
	require.Equal(t, http.StatusOK, code)
	var data loginResponse
	require.NoError(t, json.Unmarshal(res.Data, &data))
	require.NotEmpty(t, data.Token)
	return map[string]string{"Authorization": "Bearer " + data.Token}
}

func registerPath() string {
	return fmt.Sprintf("/api/events/%s/registrations", eventID)
}

func TestRegister_AdmitsNewCustomer(t *testing.T) {
	s := newServer(t, nil)
	s.openEvent(t, 2, "")

	code, res := s.do(t, http.MethodPost, registerPath(), gin.H{
		"phone": "1111111111", "name": "Asha", "email": "asha@example.com",
	}, nil)

	require.Equal(t, http.StatusCreated, code)
	assert.True(t, res.Success)
	assert.Equal(t, "You are registered for Saturday Night", res.Message)

	var data registrationResponse
	require.NoError(t, json.Unmarshal(res.Data, &data))
	assert.True(t, data.Admitted)
	assert.Equal(t, 1, data.AvailableSpots)
	assert.Equal(t, "1111111111", data.Customer.Phone)
	assert.Len(t, s.publisher.Messages(), 1)
}

func TestRegister_SecondAttemptIsAlreadyRegistered(t *testing.T) {
	s := newServer(t, nil)
	s.openEvent(t, 2, "")
	body := gin.H{"phone": "1111111111", "name": "Asha", "email": "asha@example.com"}

	code, _ := s.do(t, http.MethodPost, registerPath(), body, nil)
	require.Equal(t, http.StatusCreated, code)

	code, res := s.do(t, http.MethodPost, registerPath(), gin.H{"phone": "1111111111"}, nil)
	require.Equal(t, http.StatusOK, code)
	var data registrationResponse
	require.NoError(t, json.Unmarshal(res.Data, &data))
	assert.True(t, data.AlreadyRegistered)
	assert.False(t, data.Admitted)
	assert.Len(t, s.publisher.Messages(), 1)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		password string
		body     gin.H
		path     string
		status   int
		code     string
	}{
		{
			name:     "bad phone",
			capacity: 2,
			body:     gin.H{"phone": "12345"},
			status:   http.StatusBadRequest,
			code:     codeInvalidRequest,
		},
		{
			name:     "new customer without details",
			capacity: 2,
			body:     gin.H{"phone": "3333333333"},
			status:   http.StatusBadRequest,
			code:     "customer_details_required",
		},
		{
			name:     "wrong password",
			capacity: 2,
			password: "letmein",
			body:     gin.H{"phone": "1111111111", "name": "Asha", "email": "asha@example.com", "password": "nope"},
			status:   http.StatusUnauthorized,
			code:     "event_password_mismatch",
		},
		{
			name:     "unknown event",
			capacity: 2,
			body:     gin.H{"phone": "1111111111"},
			path:     "/api/events/00000000-0000-4000-8000-000000000000/registrations",
			status:   http.StatusNotFound,
			code:     "event_not_found",
		},
		{
			name:     "malformed event id",
			capacity: 2,
			body:     gin.H{"phone": "1111111111"},
			path:     "/api/events/not-a-uuid/registrations",
			status:   http.StatusBadRequest,
			code:     "invalid_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, nil)
			s.openEvent(t, tt.capacity, tt.password)
			path := tt.path
			if path == "" {
				path = registerPath()
			}

			code, res := s.do(t, http.MethodPost, path, tt.body, nil)

			assert.Equal(t, tt.status, code)
			assert.False(t, res.Success)
			require.NotNil(t, res.Error)
			assert.Equal(t, tt.code, res.Error.Code)
			assert.NotEmpty(t, res.Error.Message)
		})
	}
}

func TestRegister_FullEventIsLocalized(t *testing.T) {
	s := newServer(t, nil)
	s.openEvent(t, 1, "")

	code, _ := s.do(t, http.MethodPost, registerPath(), gin.H{
		"phone": "1111111111", "name": "Asha", "email": "asha@example.com",
	}, nil)
	require.Equal(t, http.StatusCreated, code)

	code, res := s.do(t, http.MethodPost, registerPath(), gin.H{"phone": "2222222222"},
		map[string]string{"Accept-Language": "fr-FR,fr;q=0.9"})

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, res.Error)
	assert.Equal(t, "event_full", res.Error.Code)
	assert.Equal(t, "Désolé, cet événement est complet", res.Error.Message)
	assert.Equal(t, 1, s.store.CustomerCount())
}

func TestVerifyPhone(t *testing.T) {
	s := newServer(t, nil)
	s.openEvent(t, 5, "")

	code, res := s.do(t, http.MethodPost, "/api/registrations/verify-phone", gin.H{"phone": "1111111111"}, nil)
	require.Equal(t, http.StatusOK, code)
	var unknown phoneCheckResponse
	require.NoError(t, json.Unmarshal(res.Data, &unknown))
	assert.False(t, unknown.Exists)

	s.do(t, http.MethodPost, registerPath(), gin.H{"phone": "1111111111", "name": "Asha", "email": "asha@example.com"}, nil)

	code, res = s.do(t, http.MethodPost, "/api/registrations/verify-phone", gin.H{"phone": "1111111111"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Welcome back, Asha", res.Message)
	var known phoneCheckResponse
	require.NoError(t, json.Unmarshal(res.Data, &known))
	assert.True(t, known.Exists)
	require.NotNil(t, known.Customer)
	assert.Equal(t, "Asha", known.Customer.Name)
}

func TestPublicEvents(t *testing.T) {
	s := newServer(t, nil)
	s.openEvent(t, 5, "secret")

	code, res := s.do(t, http.MethodGet, "/api/events?status=upcoming&limit=1", nil, nil)
	require.Equal(t, http.StatusOK, code)
	var page eventPageResponse
	require.NoError(t, json.Unmarshal(res.Data, &page))
	require.Len(t, page.Events, 1)
	require.NotNil(t, page.Pagination)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.False(t, page.Pagination.HasMore)
	assert.True(t, page.Events[0].PasswordProtected)
	assert.True(t, page.Events[0].RegistrationOpen)

	code, res = s.do(t, http.MethodGet, "/api/events/categorized", nil, nil)
	require.Equal(t, http.StatusOK, code)
	var cat categorizedResponse
	require.NoError(t, json.Unmarshal(res.Data, &cat))
	assert.Equal(t, 1, cat.Total)
	assert.Len(t, cat.Upcoming, 1)

	code, res = s.do(t, http.MethodGet, "/api/events/"+eventID, nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(res.Data), "passwordHash")
	assert.NotContains(t, string(res.Data), "attendees")

	code, res = s.do(t, http.MethodGet, "/api/events?status=sometime", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, codeInvalidRequest, res.Error.Code)
}

func TestNextEvent_NoneUpcoming(t *testing.T) {
	s := newServer(t, nil)

	code, res := s.do(t, http.MethodGet, "/api/events/next", nil, nil)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, res.Success)
	assert.Equal(t, "No upcoming events", res.Message)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newServer(t, nil)

	for _, headers := range []map[string]string{
		nil,
		{"Authorization": "Bearer garbage"},
		{"auth-token": "garbage"},
	} {
		code, res := s.do(t, http.MethodGet, "/api/admin/events", nil, headers)
		assert.Equal(t, http.StatusUnauthorized, code)
		require.NotNil(t, res.Error)
		assert.Equal(t, "invalid_token", res.Error.Code)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newServer(t, nil)

	code, res := s.do(t, http.MethodPost, "/api/admin/login", gin.H{"email": adminEmail, "password": "wrong-password"}, nil)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid_credentials", res.Error.Code)
}

func TestAdminEventLifecycle(t *testing.T) {
	s := newServer(t, nil)
	auth := s.login(t)

	code, res := s.do(t, http.MethodPost, "/api/admin/events", gin.H{
		"name":              "Friday Live",
		"description":       "Live band",
		"capacity":          1,
		"images":            []string{"https://cdn.club.test/friday.jpg"},
		"startTime":         testNow.Add(48 * time.Hour).Format(time.RFC3339),
		"endTime":           testNow.Add(52 * time.Hour).Format(time.RFC3339),
		"registrationStart": testNow.Add(-time.Hour).Format(time.RFC3339),
		"registrationEnd":   testNow.Add(47 * time.Hour).Format(time.RFC3339),
	}, auth)
	require.Equal(t, http.StatusCreated, code, res.Error)
	var created eventResponse
	require.NoError(t, json.Unmarshal(res.Data, &created))
	assert.Equal(t, 1, created.AvailableSpots)

	path := "/api/events/" + created.ID + "/registrations"
	code, _ = s.do(t, http.MethodPost, path, gin.H{"phone": "1111111111", "name": "Asha", "email": "asha@example.com"}, nil)
	require.Equal(t, http.StatusCreated, code)

	code, res = s.do(t, http.MethodGet, "/api/admin/events/"+created.ID, nil, auth)
	require.Equal(t, http.StatusOK, code)
	var detail struct {
		Attendees []customerResponse `json:"attendees"`
		IsFull    bool               `json:"isFull"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &detail))
	require.Len(t, detail.Attendees, 1)
	assert.Equal(t, "Asha", detail.Attendees[0].Name)
	assert.True(t, detail.IsFull)

	code, res = s.do(t, http.MethodPatch, "/api/admin/events/"+created.ID, gin.H{"capacity": 3}, auth)
	require.Equal(t, http.StatusOK, code)
	var updated eventResponse
	require.NoError(t, json.Unmarshal(res.Data, &updated))
	assert.Equal(t, 2, updated.AvailableSpots)

	code, _ = s.do(t, http.MethodDelete, "/api/admin/events/"+created.ID, nil, auth)
	require.Equal(t, http.StatusOK, code)

	code, res = s.do(t, http.MethodGet, "/api/events/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "event_not_found", res.Error.Code)
}

func TestAdminCustomers(t *testing.T) {
	s := newServer(t, nil)
	auth := s.login(t)

	code, res := s.do(t, http.MethodPost, "/api/admin/customers", gin.H{
		"name": "Ravi", "phone": "4444444444", "email": "ravi@example.com",
	}, auth)
	require.Equal(t, http.StatusCreated, code)
	var created customerResponse
	require.NoError(t, json.Unmarshal(res.Data, &created))

	code, res = s.do(t, http.MethodPost, "/api/admin/customers", gin.H{
		"name": "Other", "phone": "4444444444", "email": "other@example.com",
	}, auth)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "phone_taken", res.Error.Code)

	code, res = s.do(t, http.MethodGet, "/api/admin/customers/"+created.ID, nil, auth)
	require.Equal(t, http.StatusOK, code)
	var detail customerDetailResponse
	require.NoError(t, json.Unmarshal(res.Data, &detail))
	assert.Equal(t, "Ravi", detail.Name)
	assert.Empty(t, detail.AttendedEvents)

	code, _ = s.do(t, http.MethodDelete, "/api/admin/customers/"+created.ID, nil, auth)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, s.store.CustomerCount())
}

func TestHappyHours(t *testing.T) {
	s := newServer(t, nil)

	code, res := s.do(t, http.MethodGet, "/api/happy-hours", nil, nil)
	require.Equal(t, http.StatusOK, code)
	var none happyHourStatusResponse
	require.NoError(t, json.Unmarshal(res.Data, &none))
	assert.False(t, none.Exists)

	auth := s.login(t)
	code, _ = s.do(t, http.MethodPost, "/api/admin/happy-hours", gin.H{
		"startTime": "19:00", "endTime": "21:00", "image": "https://cdn.club.test/hh.jpg",
	}, auth)
	require.Equal(t, http.StatusCreated, code)

	code, res = s.do(t, http.MethodGet, "/api/happy-hours", nil, nil)
	require.Equal(t, http.StatusOK, code)
	var live happyHourStatusResponse
	require.NoError(t, json.Unmarshal(res.Data, &live))
	assert.True(t, live.Exists)
	assert.True(t, live.IsLive)
	assert.Equal(t, "19:00 - 21:00", live.TimeRange)

	code, res = s.do(t, http.MethodPost, "/api/admin/happy-hours", gin.H{
		"startTime": "18:00", "endTime": "20:00", "image": "https://cdn.club.test/hh.jpg",
	}, auth)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "happy_hour_exists", res.Error.Code)
}

func TestHealth(t *testing.T) {
	code, res := newServer(t, nil).do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, res.Success)

	down := func(context.Context) error { return errors.New("connection refused") }
	code, res = newServer(t, down).do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, res.Success)
}

func TestUnknownRoute(t *testing.T) {
	code, res := newServer(t, nil).do(t, http.MethodGet, "/api/nowhere", nil, nil)

	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, res.Error)
	assert.Equal(t, codeRouteNotFound, res.Error.Code)
}
