package httperr

import (
	"net/http"

	"booth-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Body struct {
	Kind    errs.Kind `json:"kind"`
	Message string    `json:"message"`
}

type Response struct {
	Status  int  `json:"-"`
	Success bool `json:"success"`
	Error   Body `json:"error"`
}

// StatusOf picks the HTTP status for an outcome kind.
func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindExpiredState:
		return http.StatusGone
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindRateLimited:
		return http.StatusTooManyRequests
	case errs.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, kind errs.Kind, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: Body{Kind: kind, Message: msg}}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies a usecase error. Internal failures never leak their message.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	msg := err.Error()
	if kind == errs.KindInternal {
		msg = "Internal server error"
	}
	AbortWithError(c, StatusOf(kind), kind, err, msg)
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, errs.KindValidation, err, msg)
}

func Unprocessable(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusUnprocessableEntity, errs.KindValidation, err, msg)
}

type success struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, success{Success: true, Data: data})
}
