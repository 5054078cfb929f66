package handlers

import (
	"context"
	"net/http"
	"sync"

	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/service"
	"inventory_dashboard/internal/store"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginToken string
	loginErr   error
	validToken string

	lastLoginUsername string
	lastLoginPassword string
	logoutCalls       int
}

func (m *mockAuth) EnsureCredential(context.Context, string, string) error { return nil }

func (m *mockAuth) Login(_ context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) Logout(context.Context) { m.logoutCalls++ }

func (m *mockAuth) Authenticate(token string) error {
	if token == "" || token != m.validToken {
		return service.ErrInvalidToken
	}
	return nil
}

type mockDashboard struct {
	mu    sync.Mutex
	state store.ViewState
	err   error
	calls []string
	subs  chan store.AppState
}

func (m *mockDashboard) record(call string) (store.ViewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
	return m.state, m.err
}

func (m *mockDashboard) Refresh(context.Context) store.ViewState {
	v, _ := m.record("refresh")
	return v
}
func (m *mockDashboard) SetPage(_ context.Context, page int) (store.ViewState, error) {
	return m.record("page")
}
func (m *mockDashboard) SetPageSize(_ context.Context, size int) (store.ViewState, error) {
	return m.record("page_size")
}
func (m *mockDashboard) SetSort(_ context.Context, field string) (store.ViewState, error) {
	return m.record("sort:" + field)
}
func (m *mockDashboard) SetFilter(_ context.Context, text string) (store.ViewState, error) {
	return m.record("filter:" + text)
}
func (m *mockDashboard) State() store.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
func (m *mockDashboard) Chart() []models.CategoryCount {
	return []models.CategoryCount{{Name: models.CategoryBooks, Value: 2}}
}
func (m *mockDashboard) Subscribe() (<-chan store.AppState, func()) {
	if m.subs == nil {
		m.subs = make(chan store.AppState, 4)
	}
	return m.subs, func() {}
}

type mockProducts struct {
	resp models.ProductPage
	err  error
	last models.ViewParams
}

func (m *mockProducts) Query(_ context.Context, p models.ViewParams) (models.ProductPage, error) {
	m.last = p
	return m.resp, m.err
}

type mockActivityLog struct {
	resp    []models.ActivityEvent
	err     error
	filters []service.LogFilter
}

func (m *mockActivityLog) List(_ context.Context, f service.LogFilter) ([]models.ActivityEvent, error) {
	m.filters = append(m.filters, f)
	return m.resp, m.err
}

func (m *mockActivityLog) last() service.LogFilter {
	if len(m.filters) == 0 {
		return service.LogFilter{}
	}
	return m.filters[len(m.filters)-1]
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	h := NewHandler(s, nil, opts...)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func sampleView() store.ViewState {
	v := store.InitialViewState()
	v.Items = []models.Product{
		{ID: 3, Name: "Product 3", Price: 1.5, Category: models.CategoryBooks, Stock: 2},
		{ID: 6, Name: "Product 6", Price: 2.5, Category: models.CategoryBooks, Stock: 4},
	}
	v.Total = 33
	v.FilterText = "books"
	return v
}
