package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades realtime endpoints and bridges hub subscriptions onto
// the connection. Events are best-effort; clients re-fetch over REST after
// a reconnect.
type WSHandler struct {
	hub     *relay.Hub
	request *application.RequestService
	chat    *application.ChatService
}

func NewWSHandler(hub *relay.Hub, request *application.RequestService, chat *application.ChatService) *WSHandler {
	return &WSHandler{hub: hub, request: request, chat: chat}
}

// Notifications streams the caller's notification events.
func (h *WSHandler) Notifications(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}
	h.stream(c, relay.NotificationTopic(claims.UserID))
}

// Chat streams new messages on a request's thread. Only participants may
// attach.
func (h *WSHandler) Chat(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	requestID := c.Param("id")
	if _, err := h.chat.ListForRequest(requestID, claims.UserID); err != nil {
		respondError(c, err)
		return
	}
	h.stream(c, relay.ChatTopic(requestID))
}

// Matches streams application events on a request. Restricted to the
// request owner.
func (h *WSHandler) Matches(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	requestID := c.Param("id")
	req, err := h.request.GetByID(requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.ClientID != claims.UserID {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: application.ErrNotOwner.Error()})
		return
	}
	h.stream(c, relay.MatchTopic(requestID))
}

// stream upgrades the connection and forwards hub events until the peer
// goes away. Heartbeats with ping/pong; the read loop only exists to
// detect closure.
func (h *WSHandler) stream(c *gin.Context, topic string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, unsubscribe := h.hub.Subscribe(topic)
	defer unsubscribe()

	conn.SetReadLimit(512 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Writer goroutine: hub events and heartbeat pings.
	go func() {
		defer func() { _ = conn.Close() }()

		pingTicker := time.NewTicker(pingPeriod)
		defer pingTicker.Stop()

		for {
			select {
			case e, ok := <-events:
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
					return
				}

				data, err := json.Marshal(e)
				if err != nil {
					continue
				}

				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					cancel()
					return
				}

			case <-pingTicker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					cancel()
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	// Reader loop (blocking). Exit triggers cancel and unsubscribe.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}
