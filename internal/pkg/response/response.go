package response

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// NotFound writes a 404 with an empty body; id-keyed lookup misses carry no
// payload on this API.
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// Internal writes the diagnostic 500 payload this API has always exposed:
// a human message plus the raw error and, when available, the underlying
// cause or database constraint detail.
func Internal(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message":    message,
		"error":      err.Error(),
		"innerError": innerMessage(err),
	})
}

// InternalWithStack matches the customer-party endpoints, which also dump a
// stack trace into the body.
func InternalWithStack(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      err.Error(),
		"stackTrace": string(debug.Stack()),
	})
}

func innerMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Detail != "" {
			return pgErr.Detail
		}
		return pgErr.Message
	}
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}
	return ""
}
