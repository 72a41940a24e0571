package v1

import (
	"encoding/json"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter. On failure it records a
// 400 and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}

// invalidBody turns a binding failure into a 400 with field-level errors.
func invalidBody(message string, err error) *apperror.AppError {
	return apperror.Validation(message, validation.FormatValidationErrors(err))
}

// numericID is an id in a request body that may arrive as 5 or "5".
type numericID int64

func (n *numericID) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(int64(0))}
	}
	*n = numericID(id)
	return nil
}
