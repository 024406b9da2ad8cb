package utils

import (
	"cafe/src/types"
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const MSG_VALIDATION_FAILED = "Validation failed"
const MSG_INTERNAL_ERROR = "Something went wrong. Please try again later"

func SendSuccess(ctx *gin.Context, data any, message string) {
	if data == nil {
		data = []any{}
	}
	ctx.JSON(http.StatusOK, types.APIResponse{
		Status:  types.STATUS_SUCCESS,
		Message: message,
		Data:    data,
	})
}

func SendFail(ctx *gin.Context, status int, message string, data any) {
	if data == nil {
		data = []any{}
	}
	ctx.AbortWithStatusJSON(status, types.APIResponse{
		Status:  types.STATUS_FAIL,
		Message: message,
		Data:    data,
	})
}

// conflicts are domain errors reported to the caller as validation failures.
var conflicts = []error{
	types.ErrTableUnavailable,
	types.ErrTableDoubleBooked,
	types.ErrInvoiceExists,
	types.ErrOrderHasInvoice,
	types.ErrNothingToUpdate,
	types.ErrDuplicate,
}

// SendError writes the envelope for err. resource names the entity in not found messages.
func SendError(ctx *gin.Context, err error, resource string) {
	var verr types.ValidationErrors
	switch {
	case errors.As(err, &verr):
		SendFail(ctx, http.StatusUnprocessableEntity, MSG_VALIDATION_FAILED, verr)
		return
	case errors.Is(err, types.ErrNotFound):
		SendFail(ctx, http.StatusNotFound, resource+" not found", nil)
		return
	case errors.Is(err, types.ErrInvalidCredentials):
		SendFail(ctx, http.StatusUnprocessableEntity, "Login failed", nil)
		return
	case errors.Is(err, types.ErrForbidden):
		SendFail(ctx, http.StatusForbidden, "Forbidden", nil)
		return
	}
	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			SendFail(ctx, http.StatusUnprocessableEntity, sentence(conflict.Error()), nil)
			return
		}
	}
	log.Printf("[%s] %s %s: %s\n", resource, ctx.Request.Method, ctx.FullPath(), err.Error())
	SendFail(ctx, http.StatusInternalServerError, MSG_INTERNAL_ERROR, nil)
}

// SendBindError reports a request that could not be bound or failed validation.
func SendBindError(ctx *gin.Context, err error) {
	SendFail(ctx, http.StatusUnprocessableEntity, MSG_VALIDATION_FAILED, TranslateBindError(err))
}

func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.TrimSpace(s[size:])
}
