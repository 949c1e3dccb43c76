package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /api/v1/ws: upgrades to a websocket and hands the
// connection to the event bus bridge. Clients send subscribe/unsubscribe
// frames and receive matching bus envelopes.
func (s *Server) wsHandler(c *gin.Context) {
	if s.deps.WS == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", "error", err)
		return
	}

	// HandleConnection blocks until the client disconnects and closes conn.
	s.deps.WS.HandleConnection(c.Request.Context(), conn)
}
