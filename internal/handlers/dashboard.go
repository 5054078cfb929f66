package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dashboard "inventory_dashboard"
	"inventory_dashboard/internal/catalog"
	"inventory_dashboard/internal/service"
	"inventory_dashboard/internal/store"
)

const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// isValidationError reports whether err is caused by bad client input.
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidPage) ||
		errors.Is(err, service.ErrInvalidPageSize) ||
		errors.Is(err, service.ErrInvalidSortField) ||
		errors.Is(err, service.ErrInvalidTimeRange) ||
		errors.Is(err, service.ErrInvalidLimit) ||
		errors.Is(err, service.ErrUnknownActivityType)
}

// writeServiceError maps service errors to HTTP codes and logs the rest.
func (h *Handler) writeServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if isValidationError(err) {
		c.JSON(http.StatusBadRequest, dashboard.ErrorResponse{Error: err.Error()})
		return
	}
	if h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(http.StatusInternalServerError, dashboard.ErrorResponse{Error: errInternal})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("dashboard_bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, dashboard.ErrorResponse{Error: errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

func (h *Handler) dashboardResponse(v store.ViewState) dashboard.DashboardResponse {
	return dashboard.DashboardResponse{
		ViewState:  v,
		TotalPages: catalog.TotalPages(v.Total, v.PageSize),
		Chart:      catalog.CountByCategory(v.Items),
	}
}

// @Summary      Dashboard state
// @Description  Current page, parameters, fetch status, footer and chart data.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  inventory_dashboard.DashboardResponse
// @Failure      401  {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/dashboard [get]
// @Security     BearerAuth
func (h *Handler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardResponse(h.services.Dashboard.State()))
}

// @Summary      Refresh dashboard
// @Description  Refetches the current page. Fetch failures are reported in the error field.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  inventory_dashboard.DashboardResponse
// @Failure      401  {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/dashboard/refresh [post]
// @Security     BearerAuth
func (h *Handler) refreshDashboard(c *gin.Context) {
	v := h.services.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, h.dashboardResponse(v))
}

// @Summary      Go to page
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      inventory_dashboard.SetPageRequest  true  "page"
// @Success      200   {object}  inventory_dashboard.DashboardResponse
// @Failure      400   {object}  inventory_dashboard.ErrorResponse
// @Failure      401   {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/dashboard/page [put]
// @Security     BearerAuth
func (h *Handler) setPage(c *gin.Context) {
	var req dashboard.SetPageRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	v, err := h.services.SetPage(c.Request.Context(), *req.Page)
	if err != nil {
		h.writeServiceError(c, "dashboard_set_page_failed", err, "page", *req.Page)
		return
	}
	c.JSON(http.StatusOK, h.dashboardResponse(v))
}

// @Summary      Change page size
// @Description  Also resets to page 1.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      inventory_dashboard.SetPageSizeRequest  true  "page size"
// @Success      200   {object}  inventory_dashboard.DashboardResponse
// @Failure      400   {object}  inventory_dashboard.ErrorResponse
// @Failure      401   {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/dashboard/page-size [put]
// @Security     BearerAuth
func (h *Handler) setPageSize(c *gin.Context) {
	var req dashboard.SetPageSizeRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	v, err := h.services.SetPageSize(c.Request.Context(), *req.PageSize)
	if err != nil {
		h.writeServiceError(c, "dashboard_set_page_size_failed", err, "page_size", *req.PageSize)
		return
	}
	c.JSON(http.StatusOK, h.dashboardResponse(v))
}

// @Summary      Sort by column
// @Description  Repeating the active column flips the order. Resets to page 1.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      inventory_dashboard.SetSortRequest  true  "field: id, name, price, category or stock"
// @Success      200   {object}  inventory_dashboard.DashboardResponse
// @Failure      400   {object}  inventory_dashboard.ErrorResponse
// @Failure      401   {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/dashboard/sort [put]
// @Security     BearerAuth
func (h *Handler) setSort(c *gin.Context) {
	var req dashboard.SetSortRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	v, err := h.services.SetSort(c.Request.Context(), req.Field)
	if err != nil {
		h.writeServiceError(c, "dashboard_set_sort_failed", err, "field", req.Field)
		return
	}
	c.JSON(http.StatusOK, h.dashboardResponse(v))
}

// @Summary      Filter rows
// @Description  Case-insensitive substring match over all columns. Resets to page 1.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      inventory_dashboard.SetFilterRequest  true  "filter text, empty to clear"
// @Success      200   {object}  inventory_dashboard.DashboardResponse
// @Failure      400   {object}  inventory_dashboard.ErrorResponse
// @Failure      401   {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/dashboard/filter [put]
// @Security     BearerAuth
func (h *Handler) setFilter(c *gin.Context) {
	var req dashboard.SetFilterRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	v, err := h.services.SetFilter(c.Request.Context(), *req.Text)
	if err != nil {
		h.writeServiceError(c, "dashboard_set_filter_failed", err)
		return
	}
	c.JSON(http.StatusOK, h.dashboardResponse(v))
}

// @Summary      Category chart
// @Description  Item count per category on the current page.
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   models.CategoryCount
// @Failure      401  {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/dashboard/chart [get]
// @Security     BearerAuth
func (h *Handler) getChart(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Chart())
}
