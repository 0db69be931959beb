package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Post images keep their storage key once uploaded; a day of browser
// caching is within what a replaced image can tolerate.
const imageCacheSeconds = 86400

// NoClientCache is the default client policy: browsers must revalidate
// every response. Feed staleness is handled server-side by the cache
// package, never by the client.
func NoClientCache(c *gin.Context) {
	c.Header("cache-control", "no-cache")
	c.Next()
}

// ImageClientCache marks image responses as browser-cacheable.
func ImageClientCache(c *gin.Context) {
	c.Header("cache-control", "private, max-age="+strconv.Itoa(imageCacheSeconds))
	c.Next()
}
