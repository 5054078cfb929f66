package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory_dashboard/internal/models"
)

type ViewStateSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewViewStateSQLite(db *sql.DB) *ViewStateSQLite {
	return &ViewStateSQLite{db: db, now: time.Now}
}

const (
	viewStateRowID = 1

	upsertViewStateSQL = `
		INSERT INTO view_state (id, page, page_size, sort_field, sort_order, filter_text, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			page=excluded.page,
			page_size=excluded.page_size,
			sort_field=excluded.sort_field,
			sort_order=excluded.sort_order,
			filter_text=excluded.filter_text,
			updated_at=excluded.updated_at
	`

	selectViewStateSQL = `
		SELECT page, page_size, sort_field, sort_order, filter_text
		FROM view_state WHERE id=?
	`
)

// Save upserts the single view_state row.
func (r *ViewStateSQLite) Save(ctx context.Context, p models.ViewParams) error {
	_, err := r.db.ExecContext(ctx, upsertViewStateSQL,
		viewStateRowID,
		p.Page,
		p.PageSize,
		p.SortField,
		string(p.SortOrder),
		p.FilterText,
		r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}

// Load reads the view_state row. Missing rows are not an error.
func (r *ViewStateSQLite) Load(ctx context.Context) (models.ViewParams, bool, error) {
	var (
		p     models.ViewParams
		order string
	)
	err := r.db.QueryRowContext(ctx, selectViewStateSQL, viewStateRowID).
		Scan(&p.Page, &p.PageSize, &p.SortField, &order, &p.FilterText)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ViewParams{}, false, nil
		}
		return models.ViewParams{}, false, fmt.Errorf("load view state: %w", err)
	}
	p.SortOrder = models.ParseSortOrder(order)
	return p, true, nil
}
