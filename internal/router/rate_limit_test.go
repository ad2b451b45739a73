package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/superman-store/internal/config"
	"github.com/superman-store/internal/redisclient"

	"github.com/gin-gonic/gin"
)

func newRateLimitedEngine(client *redisclient.Client, rule RateLimitRule) *gin.Engine {
	r := gin.New()
	r.Use(RateLimitMiddleware(client, rule, KeyByIP))
	r.POST("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newRateLimitedEngine(nil, RateLimitRule{WindowSeconds: 60, MaxRequests: 1})
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/products", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d", w.Code)
		}
	}
}

func TestRateLimitMiddlewareFailsOpenWhenRedisDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 端口 1 上没有 Redis
	client := redisclient.New(&config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1})
	defer client.Close()

	r := newRateLimitedEngine(client, RateLimitRule{Prefix: "write", WindowSeconds: 60, MaxRequests: 1, Methods: WriteMethods})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("expected handler response body, got %s", w.Body.String())
	}
}

func TestRateLimitRuleMatches(t *testing.T) {
	rule := RateLimitRule{Methods: WriteMethods}
	if rule.matches(http.MethodGet) {
		t.Fatalf("GET should not be limited by write rule")
	}
	if !rule.matches("delete") {
		t.Fatalf("method match should ignore case")
	}
	if !(RateLimitRule{}).matches(http.MethodGet) {
		t.Fatalf("empty methods should match everything")
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "float64", input: float64(13.9), want: 13, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}
