package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rsiboard/internal/consts"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
)

// ApiResponse is the envelope every endpoint answers with. Code 0 means
// success, anything else carries the business error.
type ApiResponse struct {
	RequestId string      `json:"request_id"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
}

// JSON writes the envelope. Non-success codes answer with http 400, a
// not-found code answers 404.
func JSON(c *gin.Context, err error, data interface{}) {
	code, message := errors.DecodeErr(err)
	httpStatus := http.StatusOK
	switch code {
	case ecode.Success:
	case ecode.NotFoundErr:
		httpStatus = http.StatusNotFound
	default:
		httpStatus = http.StatusBadRequest
	}
	c.JSON(httpStatus, ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      code,
		Message:   message,
		Data:      data,
	})
}

// TooManyRequests answers 429 for throttled clients.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      ecode.ValidateErr,
		Message:   "The request is too frequent. Please try again later.",
		Data:      nil,
	})
}
