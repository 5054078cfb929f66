package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"inventory_dashboard/internal/models"
)

// Apply runs filter, sort and paginate over records, in that order.
// records is not modified.
func Apply(records []models.Product, p models.ViewParams) models.ProductPage {
	filtered := Filter(records, p.FilterText)
	Sort(filtered, p.SortField, p.SortOrder)
	return Paginate(filtered, p.Page, p.PageSize)
}

// Filter returns the records where any field, rendered as a string, contains
// text case-insensitively. An empty text keeps everything. The result never
// aliases records.
func Filter(records []models.Product, text string) []models.Product {
	if text == "" {
		return slices.Clone(records)
	}
	needle := strings.ToLower(text)
	out := make([]models.Product, 0, len(records))
	for _, r := range records {
		if matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.Product, needle string) bool {
	for _, v := range fieldStrings(r) {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// fieldStrings renders every field the way a table cell would before formatting.
func fieldStrings(r models.Product) [5]string {
	return [5]string{
		strconv.Itoa(r.ID),
		r.Name,
		strconv.FormatFloat(r.Price, 'f', -1, 64),
		r.Category,
		strconv.Itoa(r.Stock),
	}
}

// Sort orders records in place by field. Unknown or empty fields leave the
// order untouched. The sort is stable.
func Sort(records []models.Product, field string, order models.SortOrder) {
	cmpFn := comparator(field)
	if cmpFn == nil {
		return
	}
	if order == models.SortDesc {
		asc := cmpFn
		cmpFn = func(a, b models.Product) int { return asc(b, a) }
	}
	slices.SortStableFunc(records, cmpFn)
}

func comparator(field string) func(a, b models.Product) int {
	switch field {
	case models.FieldID:
		return func(a, b models.Product) int { return cmp.Compare(a.ID, b.ID) }
	case models.FieldName:
		return func(a, b models.Product) int { return strings.Compare(a.Name, b.Name) }
	case models.FieldPrice:
		return func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case models.FieldCategory:
		return func(a, b models.Product) int { return strings.Compare(a.Category, b.Category) }
	case models.FieldStock:
		return func(a, b models.Product) int { return cmp.Compare(a.Stock, b.Stock) }
	}
	return nil
}

// Paginate slices one page out of records. Total is len(records). A page past
// the end yields an empty, non-nil slice.
func Paginate(records []models.Product, page, pageSize int) models.ProductPage {
	if page < 1 {
		page = models.DefaultPage
	}
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}
	total := len(records)
	// bound check before multiplying: page and pageSize may be near MaxInt
	if total == 0 || page-1 > (total-1)/pageSize {
		return models.ProductPage{Items: []models.Product{}, Total: total}
	}
	start := (page - 1) * pageSize
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}
	items := make([]models.Product, end-start)
	copy(items, records[start:end])
	return models.ProductPage{Items: items, Total: total}
}

// TotalPages is ceil(total/pageSize); zero when there is nothing to show.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	n := total / pageSize
	if total%pageSize != 0 {
		n++
	}
	return n
}
