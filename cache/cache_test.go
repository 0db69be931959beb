package cache

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func fixedClock(at *time.Time) func() time.Time {
	return func() time.Time { return *at }
}

func TestPageCacheExpiry(t *testing.T) {
	pc := NewPageCache("pages", 20*time.Second)
	now := time.Unix(1700000000, 0)
	pc.Now = fixedClock(&now)

	if _, _, ok := pc.Get("index:1"); ok {
		t.Fatal("hit on an empty cache")
	}
	pc.Put("index:1", "application/json", []byte("render 1"))

	now = now.Add(19 * time.Second)
	body, contentType, ok := pc.Get("index:1")
	if !ok {
		t.Fatal("miss within the TTL window")
	}
	if string(body) != "render 1" || contentType != "application/json" {
		t.Errorf("got %q / %q", body, contentType)
	}

	now = now.Add(2 * time.Second)
	if _, _, ok = pc.Get("index:1"); ok {
		t.Error("hit after the TTL expired")
	}
	// An expired entry is gone, not resurrectable
	now = now.Add(-10 * time.Second)
	if _, _, ok = pc.Get("index:1"); ok {
		t.Error("expired entry came back")
	}
}

func TestPageCacheInvalidate(t *testing.T) {
	pc := NewPageCache("pages", time.Hour)
	pc.Put("index:1", "application/json", []byte("page one"))
	pc.Put("index:2", "application/json", []byte("page two"))

	pc.InvalidateKey("index:1")
	if _, _, ok := pc.Get("index:1"); ok {
		t.Error("index:1 survived InvalidateKey")
	}
	if _, _, ok := pc.Get("index:2"); !ok {
		t.Error("index:2 should be untouched")
	}

	pc.Invalidate()
	if _, _, ok := pc.Get("index:2"); ok {
		t.Error("index:2 survived Invalidate")
	}
}

func TestPageCacheKeysDoNotCrossContaminate(t *testing.T) {
	pc := NewPageCache("pages", time.Hour)
	pc.Put("index:1", "application/json", []byte("global"))
	pc.Put("group:1", "application/json", []byte("group"))

	body, _, ok := pc.Get("index:1")
	if !ok || string(body) != "global" {
		t.Errorf("index:1 = %q, %v", body, ok)
	}
	body, _, ok = pc.Get("group:1")
	if !ok || string(body) != "group" {
		t.Errorf("group:1 = %q, %v", body, ok)
	}
}

// The middleware must hide data changes until expiry or explicit
// invalidation, and must key entries by page number.
func TestPageCacheMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pc := NewPageCache("pages", 20*time.Second)
	now := time.Unix(1700000000, 0)
	pc.Now = fixedClock(&now)

	renders := 0
	router := gin.New()
	router.GET("/posts", pc.Handler("index"), func(c *gin.Context) {
		renders++
		c.JSON(http.StatusOK, gin.H{"render": renders, "page": c.DefaultQuery("page", "1")})
	})

	get := func(url string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", url, nil)
		router.ServeHTTP(w, req)
		return w
	}

	r1 := get("/posts")
	// "Create and delete a post" — any data change between renders
	r2 := get("/posts")
	if !bytes.Equal(r1.Body.Bytes(), r2.Body.Bytes()) {
		t.Errorf("cached render differs: %s vs %s", r1.Body.String(), r2.Body.String())
	}
	if renders != 1 {
		t.Errorf("handler ran %d times, want 1", renders)
	}

	// A different page is a different cache entry
	p2 := get("/posts?page=2")
	if bytes.Equal(p2.Body.Bytes(), r1.Body.Bytes()) {
		t.Error("page 2 served page 1's render")
	}
	if renders != 2 {
		t.Errorf("handler ran %d times, want 2", renders)
	}

	pc.Invalidate()
	r3 := get("/posts")
	if bytes.Equal(r3.Body.Bytes(), r1.Body.Bytes()) {
		t.Error("render unchanged after invalidation despite data change")
	}

	// Expiry behaves like invalidation, but only after the TTL
	r4 := get("/posts")
	if !bytes.Equal(r4.Body.Bytes(), r3.Body.Bytes()) {
		t.Error("fresh entry not served from cache")
	}
	now = now.Add(21 * time.Second)
	r5 := get("/posts")
	if bytes.Equal(r5.Body.Bytes(), r3.Body.Bytes()) {
		t.Error("render unchanged after TTL expiry despite data change")
	}
}

func TestPageCacheMiddlewareSkipsErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pc := NewPageCache("pages", time.Hour)

	calls := 0
	router := gin.New()
	router.GET("/posts", pc.Handler("index"), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("boom %d", calls)})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/posts", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
	}
	if calls != 2 {
		t.Errorf("error responses were cached: handler ran %d times", calls)
	}
}
