package handlers

import (
	"net/http"
	"strconv"

	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"github.com/devmatch/devmatch-go/pkg/response"
	"github.com/devmatch/devmatch-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

// avatars larger than this are rejected before hitting the object store
const maxAvatarSize = 5 << 20

type ProfileHandler struct {
	svc *application.ProfileService
}

func NewProfileHandler(svc *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	p, err := h.svc.GetByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) UpsertMine(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input profile.UpsertProfileDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.Upsert(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetPublic returns a developer's public profile; a missing profile yields
// the placeholder rather than a 404.
func (h *ProfileHandler) GetPublic(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	c.JSON(http.StatusOK, h.svc.GetPublic(uint(id)))
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "avatar file is required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "avatar exceeds 5MB"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer f.Close()

	key, err := h.svc.UploadAvatar(c.Request.Context(), userID, fileHeader.Filename, f, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_key": key})
}
