package handlers

import (
	"errors"
	"net/http"

	"github.com/geocoder89/infohub/internal/http/middlewares"
	kvrepo "github.com/geocoder89/infohub/internal/repo/kv"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get(middlewares.CtxRequestID)

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.JSON(status, gin.H{
		"error": APIError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
			Details:   details,
		},
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, "not_found", message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}

func RespondUnAuthorized(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusUnauthorized, code, message, nil)
}

func RespondForbidden(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusForbidden, "forbidden", message, nil)
}

// RespondStorageError maps the repository's failure taxonomy onto HTTP.
// Unavailable backends are 503 so callers know to retry; corrupt blobs are
// 500 because retrying will not help.
func RespondStorageError(ctx *gin.Context, err error) {
	if errors.Is(err, kvrepo.ErrStorageUnavailable) {
		RespondError(ctx, http.StatusServiceUnavailable, "storage_unavailable", "Storage is unavailable, please try again.", nil)
		return
	}

	if errors.Is(err, kvrepo.ErrCorruptData) {
		RespondError(ctx, http.StatusInternalServerError, "corrupt_data", "Stored data could not be read.", nil)
		return
	}

	RespondInternal(ctx, "Something went wrong")
}
