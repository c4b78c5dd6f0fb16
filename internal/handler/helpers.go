package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shivamraghav1010/Player/pkg/apperror"
	"github.com/shivamraghav1010/Player/pkg/validator"
)

func formatValidationError(err error) string {
	return validator.FormatValidationError(err)
}

// parseIDParam reads a uuid path parameter, or fails with ErrInvalidInput.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidInput
	}
	return id, nil
}
