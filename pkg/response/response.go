// Package response writes the JSON envelopes every API route answers with.
package response

import (
	"errors"
	"net/http"
	"time"

	"quizvault/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Success wraps a handler result.
type Success struct {
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Failure carries an apperror code. Details holds structured context such as
// the required and available balance of a failed debit.
type Failure struct {
	ErrorCode string         `json:"error_code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id"`
	Timestamp string         `json:"timestamp"`
}

func OK(c *gin.Context, data any) {
	success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	success(c, http.StatusCreated, data)
}

// Error renders err. Server-side causes are attached to the gin context for
// the request logger and never serialized. Anything that is not an
// *apperror.AppError is reported as SYS_000.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	switch {
	case !errors.As(err, &appErr):
		_ = c.Error(err)
		appErr = apperror.New("SYS_000", "Internal server error", http.StatusInternalServerError)
	case appErr.Err != nil && appErr.HTTPStatus >= http.StatusInternalServerError:
		_ = c.Error(err)
	}

	reqID, ts := stamp(c)
	c.JSON(appErr.HTTPStatus, Failure{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Details:   appErr.Details,
		RequestID: reqID,
		Timestamp: ts,
	})
}

func success(c *gin.Context, status int, data any) {
	reqID, ts := stamp(c)
	c.JSON(status, Success{Data: data, RequestID: reqID, Timestamp: ts})
}

// stamp returns the request id set by the RequestID middleware, minting one
// for handlers exercised without it.
func stamp(c *gin.Context) (string, string) {
	reqID := c.GetString(RequestIDKey)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	return reqID, time.Now().UTC().Format(time.RFC3339)
}
