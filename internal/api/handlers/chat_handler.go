package handlers

import (
	"net/http"

	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/internal/domain/chat"
	"github.com/devmatch/devmatch-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc *application.ChatService
}

func NewChatHandler(svc *application.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func (h *ChatHandler) Send(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	var input chat.SendMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.svc.Send(c.Param("id"), claims.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) List(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	messages, err := h.svc.ListForRequest(c.Param("id"), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) MarkThreadRead(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	if err := h.svc.MarkThreadRead(c.Param("id"), claims.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "messages marked as read"})
}
