package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 30 * time.Second
	minInterval      = 10 * time.Millisecond
	maxInterval      = 5 * time.Minute
	maxIntervalMilli = 300_000
)

const (
	wsTypeDashboard = "dashboard"
	wsTypeError     = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	// TODO: restrict origins once the frontend host is configurable
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Dashboard stream
// @Description  WebSocket. Sends a "dashboard" snapshot on connect, after every state change and every 'interval' as a resync.
// @Tags         dashboard
// @Param        token        query  string  false  "session token (alternative to Authorization header)"
// @Param        interval     query  string  false  "resync period, e.g. 30s"
// @Param        interval_ms  query  int     false  "resync period in milliseconds"
// @Success      101
// @Failure      401  {object}  inventory_dashboard.ErrorResponse
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	updates, unsubscribe := h.services.Subscribe()
	defer unsubscribe()

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	resync := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		resync.Stop()
		ping.Stop()
	}()

	if err := h.sendDashboard(conn); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case st, ok := <-updates:
			if !ok {
				return
			}
			// the session ended; tell the client and hang up
			if !st.Auth.IsAuthenticated {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteJSON(wsEnvelope{Type: wsTypeError, Error: "logged out"})
				return
			}
			if err := h.writeEnvelope(conn, wsEnvelope{Type: wsTypeDashboard, Data: h.dashboardResponse(st.View)}); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-resync.C:
			if err := h.sendDashboard(conn); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=30s or ?interval_ms=30000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= int(minInterval/time.Millisecond) && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Debugw("ws_read_closed", "err", err)
			}
			return
		}
	}
}

func (h *Handler) sendDashboard(conn *websocket.Conn) error {
	return h.writeEnvelope(conn, wsEnvelope{Type: wsTypeDashboard, Data: h.dashboardResponse(h.services.Dashboard.State())})
}

func (h *Handler) writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
