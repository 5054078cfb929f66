package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"inventory_dashboard/internal/logger"
	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/repository"
	"inventory_dashboard/internal/store"
)

// ViewStatePersister keeps the dashboard query parameters in sqlite so a
// restart reopens the same page, sort and filter.
type ViewStatePersister struct {
	repo  repository.ViewStateRepo
	store *store.Store
	log   *logger.Logger

	mu    sync.Mutex
	last  models.ViewParams
	saved bool
}

func NewViewStatePersister(repo repository.ViewStateRepo, st *store.Store, log *logger.Logger) *ViewStatePersister {
	return &ViewStatePersister{repo: repo, store: st, log: log}
}

// Restore loads saved parameters, if any, into the store.
func (p *ViewStatePersister) Restore(ctx context.Context) error {
	params, ok, err := p.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore view state: %w", err)
	}
	if !ok {
		return nil
	}
	params = sanitizeParams(params)
	p.store.Dispatch(store.ParamsRestored{Params: params})

	p.mu.Lock()
	p.last, p.saved = params, true
	p.mu.Unlock()

	p.log.Infow("view_state_restored",
		"page", params.Page,
		"page_size", params.PageSize,
		"sort_field", params.SortField,
		"sort_order", params.SortOrder,
		"filter_text", params.FilterText,
	)
	return nil
}

// Run saves the parameters on every tick when they changed, until ctx is
// canceled. A final save happens on the way out.
func (p *ViewStatePersister) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
			if err := p.Flush(flushCtx); err != nil {
				p.log.Warnw("view_state_save_failed", "err", err)
			}
			cancel()
			return
		case <-t.C:
			if err := p.Flush(ctx); err != nil {
				p.log.Warnw("view_state_save_failed", "err", err)
			}
		}
	}
}

// Flush saves the current parameters if they differ from the last save.
func (p *ViewStatePersister) Flush(ctx context.Context) error {
	cur := p.store.State().View.Params()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saved && cur == p.last {
		return nil
	}
	if err := p.repo.Save(ctx, cur); err != nil {
		return err
	}
	p.last, p.saved = cur, true
	return nil
}

// sanitizeParams repairs values that the intents would never have produced.
func sanitizeParams(p models.ViewParams) models.ViewParams {
	if p.Page < 1 {
		p.Page = models.DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = models.DefaultPageSize
	}
	if !models.IsSortField(p.SortField) {
		p.SortField = ""
	}
	if p.SortOrder != models.SortDesc {
		p.SortOrder = models.SortAsc
	}
	return p
}
