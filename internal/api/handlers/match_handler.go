package handlers

import (
	"net/http"

	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/internal/domain/match"
	"github.com/devmatch/devmatch-go/internal/domain/user"
	"github.com/devmatch/devmatch-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	svc *application.MatchService
}

func NewMatchHandler(svc *application.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

// Submit applies to a help request. Developers only; resubmission updates
// the existing application in place.
func (h *MatchHandler) Submit(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}
	if claims.AccountType != string(user.AccountTypeDeveloper) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: application.ErrWrongRole.Error()})
		return
	}

	var input match.SubmitMatchDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.svc.Submit(c.Param("id"), claims.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListForRequest returns the request's applications with developer profiles.
func (h *MatchHandler) ListForRequest(c *gin.Context) {
	matches, err := h.svc.ListForRequest(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *MatchHandler) Approve(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	m, err := h.svc.Approve(c.Param("id"), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MatchHandler) Reject(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	m, err := h.svc.Reject(c.Param("id"), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// CheckStatus tells the developer-facing UI whether "apply" should be
// offered. A missing application returns status null rather than a 404.
func (h *MatchHandler) CheckStatus(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	status, err := h.svc.CheckStatus(c.Param("id"), claims.UserID)
	if err != nil {
		if err == application.ErrMatchNotFound {
			c.JSON(http.StatusOK, gin.H{"status": nil})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
