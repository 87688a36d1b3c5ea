package handlers

import (
	"net/http"

	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/internal/domain/request"
	"github.com/devmatch/devmatch-go/internal/domain/user"
	"github.com/devmatch/devmatch-go/pkg/response"
	"github.com/devmatch/devmatch-go/pkg/types"
	"github.com/devmatch/devmatch-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	svc *application.RequestService
}

func NewRequestHandler(svc *application.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func claimsOrAbort(c *gin.Context) (*types.Claims, bool) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}

// Create posts a new help request. Clients only.
func (h *RequestHandler) Create(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}
	if claims.AccountType != string(user.AccountTypeClient) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: application.ErrWrongRole.Error()})
		return
	}

	var input request.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.CreateRequest(claims.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListMine returns the authenticated client's requests with application counts.
func (h *RequestHandler) ListMine(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	reqs, err := h.svc.ListForClient(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// ListOpen returns requests open for applications, for browsing developers.
func (h *RequestHandler) ListOpen(c *gin.Context) {
	reqs, err := h.svc.ListOpen()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	req, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) Update(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	var input request.UpdateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.UpdateRequest(c.Param("id"), claims.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	var input request.CancelRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.CancelRequest(c.Param("id"), claims.UserID, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// Delete is the administrative cleanup path: owners only. Normal flow
// cancels, which keeps the row.
func (h *RequestHandler) Delete(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	req, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.ClientID != claims.UserID {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: application.ErrNotOwner.Error()})
		return
	}

	if err := h.svc.DeleteRequest(req.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Request deleted"})
}
