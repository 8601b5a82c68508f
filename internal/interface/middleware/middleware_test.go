package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func authEngine(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/me", Auth(jwt, "x-auth-token"), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func TestAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := authEngine(jwt)
	token, _, err := jwt.Generate("user-1")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header map[string]string
		status int
		body   string
	}{
		{"custom header", map[string]string{"x-auth-token": token}, http.StatusOK, "user-1"},
		{"bearer fallback", map[string]string{"Authorization": "Bearer " + token}, http.StatusOK, "user-1"},
		{"missing", nil, http.StatusUnauthorized, `{"msg":"No token, authorization denied"}`},
		{"garbage", map[string]string{"x-auth-token": "abc.def.ghi"}, http.StatusUnauthorized, `{"msg":"Token is not valid"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, w.Body.String())
			} else {
				assert.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token, _, err := helpers.NewJWTManager("other", time.Hour).Generate("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("x-auth-token", token)
	w := httptest.NewRecorder()
	authEngine(helpers.NewJWTManager("secret", time.Hour)).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Body.String())
}

func ipEngine(t *testing.T, proxies []string, platform string) *gin.Engine {
	r := gin.New()
	require.NoError(t, TrustProxies(r, proxies, platform))
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRealIPKey)) })
	r.GET("/internal", OnlyPrivateIP(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRealIP(t *testing.T) {
	cases := []struct {
		name     string
		proxies  []string
		platform string
		remote   string
		header   map[string]string
		want     string
	}{
		{"no proxies ignores headers", nil, "", "203.0.113.7:4000",
			map[string]string{"X-Real-IP": "127.0.0.1", "X-Forwarded-For": "10.0.0.1", "CF-Connecting-IP": "10.0.0.2"}, "203.0.113.7"},
		{"untrusted peer", []string{"10.0.0.0/8"}, "", "203.0.113.7:4000",
			map[string]string{"X-Forwarded-For": "198.51.100.2"}, "203.0.113.7"},
		{"trusted proxy", []string{"10.0.0.0/8"}, "", "10.1.2.3:4000",
			map[string]string{"X-Forwarded-For": "198.51.100.2"}, "198.51.100.2"},
		{"spoofed left-most entry", []string{"10.0.0.0/8"}, "", "10.1.2.3:4000",
			map[string]string{"X-Forwarded-For": "127.0.0.1, 198.51.100.2"}, "198.51.100.2"},
		{"trusted proxy x-real-ip", []string{"10.0.0.0/8"}, "", "10.1.2.3:4000",
			map[string]string{"X-Real-IP": "198.51.100.3"}, "198.51.100.3"},
		{"cloudflare", nil, "cloudflare", "203.0.113.7:4000",
			map[string]string{"CF-Connecting-IP": "198.51.100.4"}, "198.51.100.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			ipEngine(t, tc.proxies, tc.platform).ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestTrustProxies_InvalidCIDR(t *testing.T) {
	assert.Error(t, TrustProxies(gin.New(), []string{"not-an-ip"}, ""))
}

func TestOnlyPrivateIP(t *testing.T) {
	r := ipEngine(t, nil, "")

	req := httptest.NewRequest(http.MethodGet, "/internal", nil)
	req.RemoteAddr = "127.0.0.1:5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/internal", nil)
	req.RemoteAddr = "10.0.0.8:5555"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// a public peer cannot claim a private address
	req = httptest.NewRequest(http.MethodGet, "/internal", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	req.Header.Set("X-Real-IP", "127.0.0.1")
	req.Header.Set("X-Forwarded-For", "127.0.0.1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimit_NilRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestKeyFuncs(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	c.Set(CtxRealIPKey, "192.0.2.9")

	assert.Equal(t, "rl:ip:192.0.2.9", KeyByIP()(c))
	assert.Equal(t, "rl:user:anon:ip:192.0.2.9", KeyByUserID()(c))
	assert.Equal(t, "rl:path:POST:/api/posts:ip:192.0.2.9", KeyByIPAndPath()(c))

	c.Set(CtxUserIDKey, "u1")
	assert.Equal(t, "rl:user:u1", KeyByUserID()(c))
}

// counterRedis answers the limiter's script and PTTL calls from a map.
type counterRedis struct {
	redis.Cmdable
	hits map[string]int64
	ttl  map[string]time.Duration
	err  error
}

func newCounterRedis() *counterRedis {
	return &counterRedis{hits: map[string]int64{}, ttl: map[string]time.Duration{}}
}

func (m *counterRedis) incr(keys []string, args []interface{}) *redis.Cmd {
	if m.err != nil {
		return redis.NewCmdResult(nil, m.err)
	}
	k := keys[0]
	m.hits[k]++
	if m.hits[k] == 1 {
		m.ttl[k] = time.Duration(args[0].(int64)) * time.Millisecond
	}
	return redis.NewCmdResult(m.hits[k], nil)
}

func (m *counterRedis) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return m.incr(keys, args)
}

func (m *counterRedis) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return m.incr(keys, args)
}

func (m *counterRedis) PTTL(ctx context.Context, key string) *redis.DurationCmd {
	ttl, ok := m.ttl[key]
	if !ok {
		return redis.NewDurationResult(-2, nil)
	}
	return redis.NewDurationResult(ttl, nil)
}

func limitedEngine(rdb redis.Cmdable, max int, allow AllowFunc) *gin.Engine {
	r := gin.New()
	r.Use(RealIP())
	rl := RateLimit(rdb, max, 30*time.Second, KeyByIP(), allow)
	r.GET("/", rl, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.OPTIONS("/", rl, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRateLimit_CountsPerKey(t *testing.T) {
	rdb := newCounterRedis()
	r := limitedEngine(rdb, 1, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", w.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, 30*time.Second, rdb.ttl["rl:ip:192.0.2.1"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"msg":"Too many requests, please try again later"}`, w.Body.String())
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	// another client has its own window
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.9:1234"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), rdb.hits["rl:ip:192.0.2.1"])
	assert.Equal(t, int64(1), rdb.hits["rl:ip:198.51.100.9"])
}

func TestRateLimit_RedisErrorFailsOpen(t *testing.T) {
	rdb := newCounterRedis()
	rdb.err = errors.New("dial tcp: connection refused")
	r := limitedEngine(rdb, 1, nil)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimit_SkipsAllowedAndPreflight(t *testing.T) {
	rdb := newCounterRedis()
	r := limitedEngine(rdb, 1, AllowPrivateIP())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.5:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
	assert.Empty(t, rdb.hits)
}
