package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiting(t *testing.T) {
	setupTestLogger(t)

	e := echo.New()
	mw := RateLimiting(1, 2)
	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func(ip string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		return h(e.NewContext(req, rec))
	}

	// 버스트만큼은 즉시 허용됩니다.
	require.NoError(t, call("10.0.0.1"))
	require.NoError(t, call("10.0.0.1"))

	err := call("10.0.0.1")
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)

	// 다른 IP는 별도의 버킷을 사용합니다.
	assert.NoError(t, call("10.0.0.2"))
}

func TestRateLimiting_RetryAfterHeader(t *testing.T) {
	setupTestLogger(t)

	e := echo.New()
	h := RateLimiting(1, 1)(func(c echo.Context) error { return nil })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, h(e.NewContext(req, httptest.NewRecorder())))

	rec := httptest.NewRecorder()
	require.Error(t, h(e.NewContext(req, rec)))
	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))
}

func TestRateLimiting_InvalidArguments(t *testing.T) {
	assert.Panics(t, func() { RateLimiting(0, 1) })
	assert.Panics(t, func() { RateLimiting(1, 0) })
}

func TestIPRateLimiter_ReusesLimiter(t *testing.T) {
	l := newIPRateLimiter(5, 5)

	first := l.getLimiter("192.168.0.1")
	assert.Same(t, first, l.getLimiter("192.168.0.1"))
	assert.NotSame(t, first, l.getLimiter("192.168.0.2"))
	assert.Len(t, l.limiters, 2)
}
