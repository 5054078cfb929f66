package catalog

import (
	"math"
	"testing"

	"inventory_dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []models.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestApply_DefaultFirstPage(t *testing.T) {
	recs := NewGenerator(100, 1).Generate()
	page := Apply(recs, models.DefaultViewParams())

	assert.Equal(t, 100, page.Total)
	require.Len(t, page.Items, 10)
	assert.Equal(t, 1, page.Items[0].ID)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(page.Items))
}

func TestApply_FilterByCategory(t *testing.T) {
	recs := NewGenerator(100, 1).Generate()
	p := models.DefaultViewParams()
	p.FilterText = "Electronics"
	p.PageSize = 100

	page := Apply(recs, p)
	assert.Equal(t, 34, page.Total)
	for i, r := range page.Items {
		assert.Equal(t, 3*i+1, r.ID)
		assert.Equal(t, models.CategoryElectronics, r.Category)
	}
}

func TestFilter_CaseInsensitiveAnyField(t *testing.T) {
	recs := []models.Product{
		{ID: 1, Name: "Product 1", Price: 12.5, Category: "Books", Stock: 3},
		{ID: 2, Name: "Product 2", Price: 40, Category: "Clothing", Stock: 17},
		{ID: 3, Name: "Product 3", Price: 99.25, Category: "Electronics", Stock: 0},
	}

	assert.Equal(t, []int{1}, ids(Filter(recs, "bOoKs")))
	assert.Equal(t, []int{3}, ids(Filter(recs, "99.25")))
	assert.Equal(t, []int{2}, ids(Filter(recs, "17")))
	assert.Equal(t, []int{1, 2, 3}, ids(Filter(recs, "product")))
	assert.Equal(t, []int{1, 2, 3}, ids(Filter(recs, "")))
	assert.Empty(t, Filter(recs, "garden"))
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	recs := []models.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	out := Filter(recs, "")
	out[0].Name = "changed"
	assert.Equal(t, "a", recs[0].Name)
}

func TestSort_ByField(t *testing.T) {
	base := []models.Product{
		{ID: 1, Name: "Product 1", Price: 30, Category: "Electronics", Stock: 5},
		{ID: 2, Name: "Product 2", Price: 10, Category: "Clothing", Stock: 5},
		{ID: 10, Name: "Product 10", Price: 20, Category: "Books", Stock: 1},
	}

	cases := []struct {
		name  string
		field string
		order models.SortOrder
		want  []int
	}{
		{"id desc", models.FieldID, models.SortDesc, []int{10, 2, 1}},
		{"name is lexicographic", models.FieldName, models.SortAsc, []int{1, 10, 2}},
		{"price asc", models.FieldPrice, models.SortAsc, []int{2, 10, 1}},
		{"price desc", models.FieldPrice, models.SortDesc, []int{1, 10, 2}},
		{"category asc", models.FieldCategory, models.SortAsc, []int{10, 2, 1}},
		{"stock asc is stable", models.FieldStock, models.SortAsc, []int{10, 1, 2}},
		{"stock desc is stable", models.FieldStock, models.SortDesc, []int{1, 2, 10}},
		{"unknown field leaves order", "weight", models.SortDesc, []int{1, 2, 10}},
		{"empty field leaves order", "", models.SortAsc, []int{1, 2, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs := append([]models.Product(nil), base...)
			Sort(recs, tc.field, tc.order)
			assert.Equal(t, tc.want, ids(recs))
		})
	}
}

func TestApply_SortsWholeSetBeforePaging(t *testing.T) {
	recs := NewGenerator(100, 1).Generate()
	p := models.ViewParams{Page: 1, PageSize: 5, SortField: models.FieldID, SortOrder: models.SortDesc}

	page := Apply(recs, p)
	assert.Equal(t, []int{100, 99, 98, 97, 96}, ids(page.Items))
}

func TestPaginate_Bounds(t *testing.T) {
	recs := NewGenerator(23, 1).Generate()

	cases := []struct {
		name     string
		page     int
		size     int
		wantLen  int
		wantHead int
	}{
		{"first page", 1, 10, 10, 1},
		{"last partial page", 3, 10, 3, 21},
		{"beyond end", 4, 10, 0, 0},
		{"far beyond end", 1000, 10, 0, 0},
		{"zero page treated as first", 0, 10, 10, 1},
		{"zero size uses default", 1, 0, 10, 1},
		{"size larger than total", 1, 50, 23, 1},
		{"huge size second page", 2, 1 << 62, 0, 0},
		{"huge size first page", 1, math.MaxInt, 23, 1},
		{"huge page", math.MaxInt, 10, 0, 0},
		{"huge page and size", math.MaxInt, math.MaxInt, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := Paginate(recs, tc.page, tc.size)
			assert.Equal(t, 23, page.Total)
			require.NotNil(t, page.Items)
			require.Len(t, page.Items, tc.wantLen)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.wantHead, page.Items[0].ID)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 10, TotalPages(100, 10))
	assert.Equal(t, 7, TotalPages(34, 5))
	assert.Equal(t, 1, TotalPages(3, 20))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 0, TotalPages(10, 0))
	assert.Equal(t, 1, TotalPages(100, math.MaxInt))
	assert.Equal(t, 2, TotalPages(math.MaxInt, math.MaxInt/2+1))
}

func TestApply_HugePageSizeDoesNotPanic(t *testing.T) {
	recs := NewGenerator(100, 1).Generate()

	assert.NotPanics(t, func() {
		page := Apply(recs, models.ViewParams{Page: 3, PageSize: 1<<62 + 1, SortOrder: models.SortAsc})
		assert.Equal(t, 100, page.Total)
		assert.Empty(t, page.Items)
	})

	page := Apply(recs, models.ViewParams{Page: 5, PageSize: 1 << 62, SortOrder: models.SortAsc})
	require.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
