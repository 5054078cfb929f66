package service

import (
	"context"

	"inventory_dashboard/internal/catalog"
	"inventory_dashboard/internal/logger"
	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/store"
)

// PageFetcher loads one page of products for the given parameters.
type PageFetcher interface {
	FetchPage(ctx context.Context, p models.ViewParams) (models.ProductPage, error)
}

// DashboardService is the fetch orchestrator. Every parameter change is
// followed by a fetch tagged with a fresh request sequence number; results
// of superseded fetches are dropped by the view reducer.
type DashboardService struct {
	store    *store.Store
	fetcher  PageFetcher
	activity activityRecorder
	log      *logger.Logger
}

func NewDashboardService(st *store.Store, fetcher PageFetcher, activity activityRecorder, log *logger.Logger) *DashboardService {
	return &DashboardService{store: st, fetcher: fetcher, activity: activity, log: log}
}

// Refresh fetches the page for the current parameters and returns the view
// state after the result has been applied. A failed fetch is reported
// through ViewState.Error, not as an error return.
func (s *DashboardService) Refresh(ctx context.Context) store.ViewState {
	seq, params := s.store.BeginFetch()

	// in-flight fetches are never cancelled
	page, err := s.fetcher.FetchPage(context.WithoutCancel(ctx), params)
	if err != nil {
		st := s.store.Dispatch(store.FetchRejected{Seq: seq, Message: err.Error()})
		s.log.Warnw("dashboard_fetch_failed", "seq", seq, "err", err)
		s.activity.Record(ctx, models.ActivityFetchFailed, err.Error(), map[string]any{
			"seq":        seq,
			"page":       params.Page,
			"page_size":  params.PageSize,
			"sort_field": params.SortField,
			"filter":     params.FilterText,
		})
		return st.View
	}

	st := s.store.Dispatch(store.FetchFulfilled{Seq: seq, Items: page.Items, Total: page.Total})
	if st.View.RequestSeq != seq {
		s.log.Debugw("dashboard_fetch_stale", "seq", seq, "current_seq", st.View.RequestSeq)
	}
	return st.View
}

func (s *DashboardService) SetPage(ctx context.Context, page int) (store.ViewState, error) {
	if page < 1 {
		return store.ViewState{}, ErrInvalidPage
	}
	s.store.Dispatch(store.SetPage{Page: page})
	return s.Refresh(ctx), nil
}

func (s *DashboardService) SetPageSize(ctx context.Context, size int) (store.ViewState, error) {
	if size <= 0 {
		return store.ViewState{}, ErrInvalidPageSize
	}
	s.store.Dispatch(store.SetPageSize{Size: size})
	return s.Refresh(ctx), nil
}

// SetSort sorts by field, flipping the order when field is already active.
func (s *DashboardService) SetSort(ctx context.Context, field string) (store.ViewState, error) {
	if !models.IsSortField(field) {
		return store.ViewState{}, ErrInvalidSortField
	}
	s.store.Dispatch(store.SetSort{Field: field})
	return s.Refresh(ctx), nil
}

func (s *DashboardService) SetFilter(ctx context.Context, text string) (store.ViewState, error) {
	s.store.Dispatch(store.SetFilter{Text: text})
	return s.Refresh(ctx), nil
}

// State returns the current view slice.
func (s *DashboardService) State() store.ViewState {
	return s.store.State().View
}

// Chart returns category counts for the items currently on display.
func (s *DashboardService) Chart() []models.CategoryCount {
	return catalog.CountByCategory(s.store.State().View.Items)
}

// Subscribe returns the store change feed.
func (s *DashboardService) Subscribe() (<-chan store.AppState, func()) {
	return s.store.Subscribe()
}
