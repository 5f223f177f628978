package handler

import (
	"errors"
	"net/http"

	"marketplace-integrations/pkg/apperror"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst and writes a validation error
// when it cannot. Field rules are checked by the services.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.Validation("Request body too large"))
			return false
		}
		response.Error(c, apperror.Validation("Malformed JSON body"))
		return false
	}
	return true
}
