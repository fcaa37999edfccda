package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hal9000/warehouse/internal/domain/models"
)

// Error type codes exposed on the wire.
const (
	codeInvalidQuantity     = "INVALID_QUANTITY"
	codeNonExistentArticles = "NON_EXISTENT_ARTICLES"
	codeNonExistentProduct  = "NON_EXISTENT_PRODUCT"
	codeNotEnoughSupplies   = "NOT_ENOUGH_SUPPLIES"
)

// conflict renders a domain error as 409 with its type code, matching the
// blanket conflict mapping of the original REST surface.
func conflict(c *gin.Context, err error) {
	c.JSON(http.StatusConflict, gin.H{
		"error":   errorCode(err),
		"message": err.Error(),
	})
}

func errorCode(err error) string {
	var nonExistent *models.NonExistentArticlesError
	switch {
	case errors.Is(err, models.ErrInvalidQuantity):
		return codeInvalidQuantity
	case errors.Is(err, models.ErrNonExistentProduct):
		return codeNonExistentProduct
	case errors.As(err, &nonExistent):
		return codeNonExistentArticles
	}
	return "INTERNAL"
}
