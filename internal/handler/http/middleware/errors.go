package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/pregen/shop-api/internal/domain/apperr"
	"github.com/pregen/shop-api/internal/handler/http/dto"
)

// ErrorResponder turns usecase errors into JSON error bodies. The wrapped cause
// is only shown when Verbose is set.
type ErrorResponder struct {
	Verbose bool
}

// Respond writes the error response and lets the chain continue.
func (r ErrorResponder) Respond(c *gin.Context, err error) {
	status, body := r.build(err)
	c.JSON(status, body)
}

// Abort writes the error response and stops the chain.
func (r ErrorResponder) Abort(c *gin.Context, err error) {
	status, body := r.build(err)
	c.AbortWithStatusJSON(status, body)
}

func (r ErrorResponder) build(err error) (int, dto.ErrorResponse) {
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Internal("internal server error", err)
	}
	body := dto.ErrorResponse{Error: appErr.Message}
	if r.Verbose && appErr.Err != nil {
		body.Detail = appErr.Err.Error()
	}
	return appErr.Kind.HTTPStatus(), body
}
