package service

import (
	"context"
	"sync"

	"inventory_dashboard/internal/models"
)

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateFn             func(username, hash string) (int, error)
	GetByUsernameFn      func(username string) (*models.User, error)
	UpdatePasswordHashFn func(id int, hash string) error

	createCalls []struct {
		username string
		hash     string
	}
	getCalls    []string
	updateCalls []int
}

func (m *mockAuthRepo) Create(_ context.Context, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(username, hash)
}

func (m *mockAuthRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockAuthRepo) UpdatePasswordHash(_ context.Context, id int, hash string) error {
	m.updateCalls = append(m.updateCalls, id)
	return m.UpdatePasswordHashFn(id, hash)
}

// recordedEvent is one call to fakeRecorder.Record.
type recordedEvent struct {
	typ     models.ActivityType
	message string
	meta    map[string]any
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeRecorder) Record(_ context.Context, typ models.ActivityType, message string, meta map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{typ: typ, message: message, meta: meta})
}

func (f *fakeRecorder) types() []models.ActivityType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ActivityType, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.typ)
	}
	return out
}

// fetchCall is a pending FetchPage call held by gatedFetcher until released.
type fetchCall struct {
	params  models.ViewParams
	release chan fetchResult
}

type fetchResult struct {
	page models.ProductPage
	err  error
}

// gatedFetcher blocks each FetchPage until the test releases it, which lets
// tests resolve concurrent fetches in any order.
type gatedFetcher struct {
	calls chan fetchCall
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{calls: make(chan fetchCall, 8)}
}

func (g *gatedFetcher) FetchPage(_ context.Context, p models.ViewParams) (models.ProductPage, error) {
	c := fetchCall{params: p, release: make(chan fetchResult, 1)}
	g.calls <- c
	r := <-c.release
	return r.page, r.err
}

// funcFetcher adapts a function to PageFetcher.
type funcFetcher func(ctx context.Context, p models.ViewParams) (models.ProductPage, error)

func (f funcFetcher) FetchPage(ctx context.Context, p models.ViewParams) (models.ProductPage, error) {
	return f(ctx, p)
}

// fakeViewRepo is an in-memory repository.ViewStateRepo.
type fakeViewRepo struct {
	mu      sync.Mutex
	stored  *models.ViewParams
	saves   []models.ViewParams
	loadErr error
	saveErr error
}

func (f *fakeViewRepo) Save(_ context.Context, p models.ViewParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, p)
	f.stored = &p
	return nil
}

func (f *fakeViewRepo) Load(context.Context) (models.ViewParams, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return models.ViewParams{}, false, f.loadErr
	}
	if f.stored == nil {
		return models.ViewParams{}, false, nil
	}
	return *f.stored, true, nil
}

func (f *fakeViewRepo) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}
