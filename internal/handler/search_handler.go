package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/internal/service"
	"github.com/shivamraghav1010/Player/pkg/response"
)

type SearchHandler struct {
	searchService service.SearchService
	userRepo      repository.UserRepository
}

func NewSearchHandler(searchService service.SearchService, userRepo repository.UserRepository) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		userRepo:      userRepo,
	}
}

// GetSearchToken issues a tenant token the client uses to query the search
// index directly.
func (h *SearchHandler) GetSearchToken(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	role := h.roleFor(c, userID)

	token, err := h.searchService.GenerateSearchToken(role)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search is unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *SearchHandler) roleFor(c *gin.Context, userID uuid.UUID) string {
	user, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		return ""
	}
	return user.Role
}
