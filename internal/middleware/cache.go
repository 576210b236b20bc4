package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// cacheTTLSeconds is the client-side cache lifetime advertised on GET responses.
const cacheTTLSeconds = 30

// cacheExcludedPrefixes lists path prefixes that must never carry cache
// headers, so credentials never end up in a shared or conditional cache.
var cacheExcludedPrefixes = []string{"/api/login", "/api/register"}

// bodyBuffer captures the response body instead of writing it out, so the
// ETag can be computed over the full payload before anything is sent.
type bodyBuffer struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyBuffer) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bodyBuffer) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// Cache returns a middleware that adds cache headers and an ETag to GET and
// HEAD responses outside the excluded prefixes. When the request carries an
// If-None-Match header equal to the computed ETag, the response is downgraded
// to 304 Not Modified with an empty body.
func Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}
		for _, prefix := range cacheExcludedPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		buffer := &bodyBuffer{ResponseWriter: c.Writer}
		c.Writer = buffer
		c.Next()
		c.Writer = buffer.ResponseWriter

		header := c.Writer.Header()
		header.Set("Cache-Control", "private, max-age=30, must-revalidate")
		header.Set("X-Cache-TTL", strconv.Itoa(cacheTTLSeconds))

		body := buffer.body.Bytes()
		if len(body) > 0 {
			sum := md5.Sum(body)
			etag := `"` + hex.EncodeToString(sum[:]) + `"`
			header.Set("ETag", etag)

			if c.Request.Header.Get("If-None-Match") == etag {
				c.Writer.WriteHeader(http.StatusNotModified)
				c.Writer.WriteHeaderNow()
				return
			}
		}

		if len(body) > 0 {
			// Replays the buffered body; the status recorded by the handler
			// is flushed on the first write.
			if _, err := c.Writer.Write(body); err != nil {
				_ = c.Error(err)
			}
			return
		}
		c.Writer.WriteHeaderNow()
	}
}
