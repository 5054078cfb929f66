package catalog

import "inventory_dashboard/internal/models"

// CountByCategory tallies items per category in order of first appearance.
func CountByCategory(items []models.Product) []models.CategoryCount {
	out := make([]models.CategoryCount, 0, len(models.Categories))
	idx := make(map[string]int, len(models.Categories))
	for _, it := range items {
		i, ok := idx[it.Category]
		if !ok {
			i = len(out)
			idx[it.Category] = i
			out = append(out, models.CategoryCount{Name: it.Category})
		}
		out[i].Value++
	}
	return out
}
