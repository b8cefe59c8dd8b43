package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps the request body size. Base64 encoded documents inflate by
// a third, so the limit has to sit above the raw document ceiling. Reads
// past the limit surface as http.MaxBytesError inside the handlers.
func BodyLimit(maxSize int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxSize)
		ctx.Next()
	}
}
