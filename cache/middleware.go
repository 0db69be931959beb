package cache

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

type cachedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Handler caches successful responses of a feed variant, keyed by the
// requested page number. A hit short-circuits the handler chain, so data
// changes stay invisible until the entry expires or is invalidated.
func (pc *PageCache) Handler(variant string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := variant + ":" + c.DefaultQuery("page", "1")
		if body, contentType, ok := pc.Get(key); ok {
			c.Data(http.StatusOK, contentType, body)
			c.Abort()
			return
		}
		writer := &cachedWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		if c.Writer.Status() == http.StatusOK {
			pc.Put(key, writer.Header().Get("Content-Type"), writer.body.Bytes())
		}
	}
}
