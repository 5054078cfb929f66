package repository

import (
	"context"
	"database/sql"

	"inventory_dashboard/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id int, hash string) error
}

// ViewStateRepo persists the dashboard query parameters across restarts.
type ViewStateRepo interface {
	Save(ctx context.Context, p models.ViewParams) error
	// Load returns ok=false when nothing has been saved yet.
	Load(ctx context.Context) (p models.ViewParams, ok bool, err error)
}

// ActivityRepo is the append-only activity log.
type ActivityRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, q models.ActivityQuery) ([]models.ActivityEvent, error)
}

type Repository struct {
	ViewState ViewStateRepo
	Activity  ActivityRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ViewState: NewViewStateSQLite(db),
		Activity:  NewActivitySQLite(db),
		Auth:      NewUserRepository(db),
	}
}
