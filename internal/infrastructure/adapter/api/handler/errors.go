package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/vitacoin/rewards-engine/internal/domain/error"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to an HTTP status and writes the
// standardized error body
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrAccountNotFound),
		errors.Is(err, domainerr.ErrBadgeNotFound),
		errors.Is(err, domainerr.ErrQuestionsNotFound),
		errors.Is(err, domainerr.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domainerr.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrAlreadyClaimed),
		errors.Is(err, domainerr.ErrAlreadyOwned),
		errors.Is(err, domainerr.ErrDuplicateAccount):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domainerr.ErrInsufficientFunds),
		errors.Is(err, domainerr.ErrNotPurchasable):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
