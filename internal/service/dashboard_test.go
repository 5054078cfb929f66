package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory_dashboard/internal/catalog"
	"inventory_dashboard/internal/logger"
	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/store"
)

func newDashboard(f PageFetcher) (*DashboardService, *store.Store, *fakeRecorder) {
	st := store.New(store.InitialState())
	rec := &fakeRecorder{}
	return NewDashboardService(st, f, rec, logger.Nop()), st, rec
}

func catalogFetcher() PageFetcher {
	return catalog.NewFetcher(catalog.NewGenerator(100, 1), 0)
}

func waitCall(t *testing.T, g *gatedFetcher) fetchCall {
	t.Helper()
	select {
	case c := <-g.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("fetch was not issued")
		return fetchCall{}
	}
}

func TestDashboard_Refresh_InitialLoad(t *testing.T) {
	svc, _, _ := newDashboard(catalogFetcher())

	v := svc.Refresh(context.Background())

	assert.False(t, v.Loading)
	assert.Nil(t, v.Error)
	assert.Equal(t, 100, v.Total)
	require.Len(t, v.Items, 10)
	assert.Equal(t, 1, v.Items[0].ID)
	assert.Equal(t, uint64(1), v.RequestSeq)
}

func TestDashboard_Refresh_LoadingWhilePending(t *testing.T) {
	g := newGatedFetcher()
	svc, st, _ := newDashboard(g)

	done := make(chan store.ViewState, 1)
	go func() { done <- svc.Refresh(context.Background()) }()

	c := waitCall(t, g)
	assert.True(t, st.State().View.Loading)
	assert.Nil(t, st.State().View.Error)

	c.release <- fetchResult{page: models.ProductPage{Items: []models.Product{{ID: 7}}, Total: 1}}
	v := <-done
	assert.False(t, v.Loading)
	assert.Equal(t, 1, v.Total)
}

func TestDashboard_Refresh_RejectionSetsErrorAndLogsActivity(t *testing.T) {
	svc, _, rec := newDashboard(funcFetcher(func(context.Context, models.ViewParams) (models.ProductPage, error) {
		return models.ProductPage{}, errors.New("upstream unavailable")
	}))

	v := svc.Refresh(context.Background())

	assert.False(t, v.Loading)
	require.NotNil(t, v.Error)
	assert.Equal(t, "upstream unavailable", *v.Error)
	assert.Equal(t, []models.ActivityType{models.ActivityFetchFailed}, rec.types())

	ev := rec.events[0]
	assert.Equal(t, "upstream unavailable", ev.message)
	assert.Equal(t, map[string]any{
		"seq":        uint64(1),
		"page":       1,
		"page_size":  10,
		"sort_field": "",
		"filter":     "",
	}, ev.meta)
}

func TestDashboard_Refresh_IgnoresCallerCancellation(t *testing.T) {
	svc, _, _ := newDashboard(funcFetcher(func(ctx context.Context, _ models.ViewParams) (models.ProductPage, error) {
		if err := ctx.Err(); err != nil {
			return models.ProductPage{}, err
		}
		return models.ProductPage{Items: []models.Product{}, Total: 0}, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := svc.Refresh(ctx)
	assert.Nil(t, v.Error)
}

func TestDashboard_StaleResultIsDiscarded(t *testing.T) {
	g := newGatedFetcher()
	svc, st, _ := newDashboard(g)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, _ = svc.SetPage(context.Background(), 2)
	}()
	first := waitCall(t, g)
	require.Equal(t, 2, first.params.Page)

	go func() {
		defer wg.Done()
		_, _ = svc.SetPage(context.Background(), 3)
	}()
	second := waitCall(t, g)
	require.Equal(t, 3, second.params.Page)

	// newest resolves first, the older one arrives late
	second.release <- fetchResult{page: models.ProductPage{Items: []models.Product{{ID: 21}}, Total: 100}}
	first.release <- fetchResult{page: models.ProductPage{Items: []models.Product{{ID: 11}}, Total: 100}}
	wg.Wait()

	v := st.State().View
	assert.False(t, v.Loading)
	assert.Equal(t, 3, v.Page)
	assert.Equal(t, uint64(2), v.RequestSeq)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 21, v.Items[0].ID)
}

func TestDashboard_StaleRejectionIsDiscarded(t *testing.T) {
	g := newGatedFetcher()
	svc, st, rec := newDashboard(g)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); svc.Refresh(context.Background()) }()
	first := waitCall(t, g)
	go func() { defer wg.Done(); svc.Refresh(context.Background()) }()
	second := waitCall(t, g)

	second.release <- fetchResult{page: models.ProductPage{Items: []models.Product{}, Total: 0}}
	first.release <- fetchResult{err: errors.New("late failure")}
	wg.Wait()

	v := st.State().View
	assert.Nil(t, v.Error)
	assert.False(t, v.Loading)
	// the activity log still records the failure itself
	assert.Equal(t, []models.ActivityType{models.ActivityFetchFailed}, rec.types())
}

func TestDashboard_Intents(t *testing.T) {
	svc, _, _ := newDashboard(catalogFetcher())
	ctx := context.Background()

	v, err := svc.SetPage(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Page)
	assert.Equal(t, 21, v.Items[0].ID)

	v, err = svc.SetSort(ctx, models.FieldID)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, models.SortAsc, v.SortOrder)

	v, err = svc.SetSort(ctx, models.FieldID)
	require.NoError(t, err)
	assert.Equal(t, models.SortDesc, v.SortOrder)
	assert.Equal(t, 100, v.Items[0].ID)

	v, err = svc.SetPageSize(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Page)
	assert.Len(t, v.Items, 25)

	v, err = svc.SetFilter(ctx, "Electronics")
	require.NoError(t, err)
	assert.Equal(t, 34, v.Total)
	assert.Equal(t, "Electronics", v.FilterText)
}

func TestDashboard_IntentValidation(t *testing.T) {
	svc, st, _ := newDashboard(funcFetcher(func(context.Context, models.ViewParams) (models.ProductPage, error) {
		t.Fatal("no fetch expected on invalid input")
		return models.ProductPage{}, nil
	}))
	ctx := context.Background()
	before := st.State()

	_, err := svc.SetPage(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = svc.SetPageSize(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = svc.SetSort(ctx, "weight")
	assert.ErrorIs(t, err, ErrInvalidSortField)

	assert.Equal(t, before, st.State())
}

func TestDashboard_Chart_CurrentPage(t *testing.T) {
	svc, _, _ := newDashboard(catalogFetcher())

	assert.Empty(t, svc.Chart())

	svc.Refresh(context.Background())
	got := svc.Chart()

	require.Len(t, got, 3)
	sum := 0
	for _, c := range got {
		sum += c.Value
	}
	assert.Equal(t, 10, sum)
	assert.Equal(t, models.CategoryElectronics, got[0].Name)
}

func TestDashboard_State(t *testing.T) {
	svc, st, _ := newDashboard(catalogFetcher())
	st.Dispatch(store.SetFilter{Text: "x"})
	assert.Equal(t, "x", svc.State().FilterText)
}

func TestDashboard_Subscribe_SeesRefresh(t *testing.T) {
	svc, _, _ := newDashboard(catalogFetcher())
	ch, cancel := svc.Subscribe()
	defer cancel()

	svc.Refresh(context.Background())

	var last store.AppState
	require.Eventually(t, func() bool {
		select {
		case last = <-ch:
		default:
		}
		return !last.View.Loading && last.View.Total == 100
	}, time.Second, 5*time.Millisecond)
}

func TestDashboard_HugePageSizeSettlesWithEmptyPage(t *testing.T) {
	svc, _, _ := newDashboard(catalogFetcher())
	ctx := context.Background()

	v, err := svc.SetPageSize(ctx, 1<<62)
	require.NoError(t, err)
	assert.Len(t, v.Items, 100)

	v, err = svc.SetPage(ctx, 5)
	require.NoError(t, err)
	assert.False(t, v.Loading)
	assert.Nil(t, v.Error)
	assert.Equal(t, 100, v.Total)
	require.NotNil(t, v.Items)
	assert.Empty(t, v.Items)
}
