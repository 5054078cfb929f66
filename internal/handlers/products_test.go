package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductsRouter(p *mockProducts) http.Handler {
	return newTestRouter(&service.Service{
		Authorization: &mockAuth{validToken: "tok"},
		Products:      p,
	})
}

func TestProductsHandler_QueryParams(t *testing.T) {
	p := &mockProducts{resp: models.ProductPage{
		Items: []models.Product{{ID: 11}, {ID: 12}},
		Total: 25,
	}}
	r := newProductsRouter(p)

	w := doJSON(t, r, http.MethodGet, "/api/v1/products?page=2&limit=10&sortBy=price&sortOrder=DESC&filter=elec", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, models.ViewParams{
		Page: 2, PageSize: 10, SortField: "price", SortOrder: models.SortDesc, FilterText: "elec",
	}, p.last)

	var out struct {
		Data       []models.Product `json:"data"`
		Total      int              `json:"total"`
		Page       int              `json:"page"`
		Limit      int              `json:"limit"`
		TotalPages int              `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out.Data, 2)
	assert.Equal(t, 25, out.Total)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 3, out.TotalPages)
}

func TestProductsHandler_Defaults(t *testing.T) {
	p := &mockProducts{resp: models.ProductPage{Items: []models.Product{}}}
	r := newProductsRouter(p)

	w := doJSON(t, r, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.DefaultViewParams(), p.last)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestProductsHandler_Errors(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		svcErr   error
		wantCode int
	}{
		{"non-numeric page", "?page=two", nil, http.StatusBadRequest},
		{"non-numeric limit", "?limit=ten", nil, http.StatusBadRequest},
		{"invalid page", "?page=0", service.ErrInvalidPage, http.StatusBadRequest},
		{"invalid field", "?sortBy=weight", service.ErrInvalidSortField, http.StatusBadRequest},
		{"backend", "", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newProductsRouter(&mockProducts{err: tc.svcErr})
			w := doJSON(t, r, http.MethodGet, "/api/v1/products"+tc.query, "")
			assert.Equal(t, tc.wantCode, w.Code, w.Body.String())
		})
	}
}
