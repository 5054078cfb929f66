package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	dashboard "inventory_dashboard"
	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/service"
)

const (
	errFromInvalid  = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid    = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errTypeInvalid  = "invalid 'type'; use LOGIN, LOGIN_FAILED, LOGOUT or FETCH_FAILED"
	errLimitInvalid = "invalid 'limit'; expected a non-negative integer"
	errOrderInvalid = "invalid 'order'; use asc or desc"
	errRangeOrder   = "'from' must be <= 'to'"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

var errBadLogQuery = errors.New("bad log query")

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// parseLogFilter reads from, to, type, limit and order. type may repeat or
// hold a comma-separated list. The returned string is the client-facing
// message when err is not nil.
func parseLogFilter(c *gin.Context) (service.LogFilter, string, error) {
	var (
		f   service.LogFilter
		err error
	)
	if qs := c.Query("from"); qs != "" {
		if f.From, err = parseQueryTime(qs); err != nil {
			return f, errFromInvalid, err
		}
	}
	if qs := c.Query("to"); qs != "" {
		if f.To, err = parseQueryTime(qs); err != nil {
			return f, errToInvalid, err
		}
		// a bare date means the whole day
		if isDateOnly(qs) {
			f.To = f.To.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return f, errRangeOrder, service.ErrInvalidTimeRange
	}

	for _, raw := range c.QueryArray("type") {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			t, ok := models.ParseActivityType(part)
			if !ok {
				return f, errTypeInvalid, fmt.Errorf("%w: type %q", errBadLogQuery, part)
			}
			f.Types = append(f.Types, t)
		}
	}

	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil || n < 0 {
			return f, errLimitInvalid, fmt.Errorf("%w: limit %q", errBadLogQuery, qs)
		}
		f.Limit = n
	}

	switch strings.ToLower(c.DefaultQuery("order", "desc")) {
	case "desc":
	case "asc":
		f.Oldest = true
	default:
		return f, errOrderInvalid, fmt.Errorf("%w: order %q", errBadLogQuery, c.Query("order"))
	}
	return f, "", nil
}

// @Summary      List activity
// @Description  Activity log, newest first by default. Dates accept RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; a date-only 'to' covers the whole day.
// @Tags         logs
// @Produce      json
// @Param        from   query   string  false  "Start of range"  example(2025-08-01)
// @Param        to     query   string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        type   query   string  false  "Comma-separated event types"  example(LOGIN_FAILED,FETCH_FAILED)
// @Param        limit  query   int     false  "Max entries (default 100, capped at 1000)"
// @Param        order  query   string  false  "Sort by time"  Enums(desc,asc)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  inventory_dashboard.ErrorResponse
// @Failure      401   {object}  inventory_dashboard.ErrorResponse
// @Failure      500   {object}  inventory_dashboard.ErrorResponse
// @Router       /api/v1/logs [get]
// @Security     BearerAuth
func (h *Handler) getLogs(c *gin.Context) {
	f, msg, err := parseLogFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dashboard.ErrorResponse{Error: msg})
		return
	}

	events, err := h.services.ActivityLog.List(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, "logs_list_failed", err, "from", f.From, "to", f.To, "types", f.Types)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

// parseQueryTime accepts RFC3339, date-time and date-only forms, normalized to UTC.
func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
