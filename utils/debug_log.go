package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

type failedRequestWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w *failedRequestWriter) Write(b []byte) (int, error) {
	if status := w.gc.Writer.Status(); status >= 400 {
		log.Printf("[DEBUG] %s %s -> %d: %s", w.gc.Request.Method, w.gc.Request.URL.Path, status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// FailedRequestLog logs the response body of every 4xx/5xx response.
// DEBUG_MODE only; must be installed before gzip, which rewrites the body.
func FailedRequestLog(c *gin.Context) {
	c.Writer = &failedRequestWriter{gc: c, ResponseWriter: c.Writer}
	c.Next()
}
