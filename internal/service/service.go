package service

import (
	"context"
	"time"

	"inventory_dashboard/internal/logger"
	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/repository"
	"inventory_dashboard/internal/store"
)

type Authorization interface {
	EnsureCredential(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context)
	Authenticate(token string) error
}

// Dashboard exposes the view-state intents. Each one refetches.
type Dashboard interface {
	Refresh(ctx context.Context) store.ViewState
	SetPage(ctx context.Context, page int) (store.ViewState, error)
	SetPageSize(ctx context.Context, size int) (store.ViewState, error)
	SetSort(ctx context.Context, field string) (store.ViewState, error)
	SetFilter(ctx context.Context, text string) (store.ViewState, error)
	State() store.ViewState
	Chart() []models.CategoryCount
	// Subscribe streams state changes until cancel is called.
	Subscribe() (<-chan store.AppState, func())
}

// Products is the stateless page query.
type Products interface {
	Query(ctx context.Context, p models.ViewParams) (models.ProductPage, error)
}

// ActivityLog exposes append-only logs with filtering access.
type ActivityLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ActivityEvent, error)
}

// Persister saves and restores the view parameters.
// Stop Run via context cancellation in main() for graceful shutdown.
type Persister interface {
	Restore(ctx context.Context) error
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Dashboard
	Products
	ActivityLog
	Persister
}

// Deps are the collaborators NewService wires together.
type Deps struct {
	Repos   *repository.Repository
	Store   *store.Store
	Fetcher PageFetcher
	Issuer  TokenIssuer
	Log     *logger.Logger
}

func NewService(d Deps) *Service {
	activity := NewActivityLogService(d.Repos.Activity, d.Log.Named("activity"))
	return &Service{
		Authorization: NewAuthService(d.Repos.Auth, d.Store, d.Issuer, activity, d.Log.Named("auth")),
		Dashboard:     NewDashboardService(d.Store, d.Fetcher, activity, d.Log.Named("dashboard")),
		Products:      NewProductsService(d.Fetcher),
		ActivityLog:   activity,
		Persister:     NewViewStatePersister(d.Repos.ViewState, d.Store, d.Log.Named("persist")),
	}
}
