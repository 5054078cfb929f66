package service

import (
	"context"

	"inventory_dashboard/internal/models"
)

// ProductsService serves stateless page queries that bypass the dashboard store.
type ProductsService struct {
	fetcher PageFetcher
}

func NewProductsService(fetcher PageFetcher) *ProductsService {
	return &ProductsService{fetcher: fetcher}
}

// Query validates p and fetches one page.
func (s *ProductsService) Query(ctx context.Context, p models.ViewParams) (models.ProductPage, error) {
	if p.Page < 1 {
		return models.ProductPage{}, ErrInvalidPage
	}
	if p.PageSize <= 0 {
		return models.ProductPage{}, ErrInvalidPageSize
	}
	if p.SortField != "" && !models.IsSortField(p.SortField) {
		return models.ProductPage{}, ErrInvalidSortField
	}
	if p.SortOrder == "" {
		p.SortOrder = models.SortAsc
	}
	return s.fetcher.FetchPage(ctx, p)
}
