package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_service/internal/domain"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Code    string      `json:"Code,omitempty"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// DomainErrorResponse maps a domain error kind to its HTTP status and
// writes the failure envelope, attaching the stable machine code for
// duplicate-name conflicts.
func DomainErrorResponse(c *gin.Context, err error, message string) {
	resp := Response{
		Status:  "Fail",
		Message: message + ": " + err.Error(),
	}
	var dup *domain.DuplicateNameError
	if errors.As(err, &dup) {
		resp.Code = domain.DuplicateNameCode
	}
	c.JSON(mapErrorToStatus(err), resp)
}

func mapErrorToStatus(err error) int {
	switch {
	case domain.IsNotFoundError(err):
		return http.StatusNotFound
	case domain.IsDuplicateNameError(err):
		return http.StatusConflict
	case domain.IsValidationError(err):
		return http.StatusBadRequest
	case domain.IsInvalidRangeError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
