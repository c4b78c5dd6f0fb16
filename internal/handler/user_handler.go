package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/service"
	"github.com/shivamraghav1010/Player/pkg/response"
)

type UserHandler struct {
	profileService service.ProfileService
	followService  service.FollowService
}

func NewUserHandler(profileService service.ProfileService, followService service.FollowService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		followService:  followService,
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.UpdateProfileInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UploadProfilePic(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	fileHeader, err := c.FormFile("profilePic")
	if err != nil || fileHeader == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	url, err := h.profileService.UploadProfilePic(c.Request.Context(), userID, service.ProfilePicFile{
		Reader:   file,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Profile picture updated successfully",
		"profile_pic": url,
	})
}

// ToggleFollow follows the target when no edge exists, unfollows otherwise.
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	state, err := h.followService.Toggle(c.Request.Context(), userID, targetID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FollowToggleResponse{State: state})
}
