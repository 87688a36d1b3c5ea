package handlers

import (
	"net/http"

	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *application.NotificationService
}

func NewNotificationHandler(svc *application.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	notifications, err := h.svc.ListForUser(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	count, err := h.svc.UnreadCount(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	if err := h.svc.MarkRead(c.Param("id"), claims.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	if err := h.svc.MarkAllRead(claims.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "all notifications marked as read"})
}
