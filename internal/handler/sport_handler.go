package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/service"
	"github.com/shivamraghav1010/Player/pkg/response"
)

type SportHandler struct {
	sportService service.SportService
}

func NewSportHandler(sportService service.SportService) *SportHandler {
	return &SportHandler{sportService: sportService}
}

func (h *SportHandler) GetAll(c *gin.Context) {
	sports, err := h.sportService.ListActive(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sports})
}

// GetAllAdmin includes inactive sports.
func (h *SportHandler) GetAllAdmin(c *gin.Context) {
	sports, err := h.sportService.ListAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sports})
}

func (h *SportHandler) Create(c *gin.Context) {
	var input dto.CreateSportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	sport, err := h.sportService.Create(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sport)
}

func (h *SportHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.UpdateSportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	sport, err := h.sportService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, sport)
}

func (h *SportHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.sportService.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sport deleted"})
}
