package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dashboard "inventory_dashboard"
	"inventory_dashboard/internal/catalog"
	"inventory_dashboard/internal/models"
)

// queryInt reads an optional integer query parameter.
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return def, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// @Summary      Query products
// @Description  Stateless page query; does not touch the dashboard state.
// @Tags         products
// @Produce      json
// @Param        page       query     int     false  "1-based page"     default(1)
// @Param        limit      query     int     false  "page size"        default(10)
// @Param        sortBy     query     string  false  "sort field"       Enums(id,name,price,category,stock)
// @Param        sortOrder  query     string  false  "sort direction"   Enums(asc,desc)
// @Param        filter     query     string  false  "substring filter"
// @Success      200        {object}  inventory_dashboard.ProductsResponse
// @Failure      400        {object}  inventory_dashboard.ErrorResponse
// @Failure      401        {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/products [get]
// @Security     BearerAuth
func (h *Handler) listProducts(c *gin.Context) {
	page, ok := queryInt(c, "page", models.DefaultPage)
	if !ok {
		c.JSON(http.StatusBadRequest, dashboard.ErrorResponse{Error: "invalid 'page'; expected an integer"})
		return
	}
	limit, ok := queryInt(c, "limit", models.DefaultPageSize)
	if !ok {
		c.JSON(http.StatusBadRequest, dashboard.ErrorResponse{Error: "invalid 'limit'; expected an integer"})
		return
	}

	p := models.ViewParams{
		Page:       page,
		PageSize:   limit,
		SortField:  c.Query("sortBy"),
		SortOrder:  models.ParseSortOrder(c.Query("sortOrder")),
		FilterText: c.Query("filter"),
	}
	res, err := h.services.Query(c.Request.Context(), p)
	if err != nil {
		h.writeServiceError(c, "products_query_failed", err, "params", p)
		return
	}

	c.JSON(http.StatusOK, dashboard.ProductsResponse{
		Data:       res.Items,
		Total:      res.Total,
		Page:       p.Page,
		Limit:      p.PageSize,
		TotalPages: catalog.TotalPages(res.Total, p.PageSize),
	})
}
