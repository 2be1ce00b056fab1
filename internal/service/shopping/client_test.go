package shopping

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{ClientID: "client-id-1234", ClientSecret: "client-secret-5678"}

const pageBody = `{
	"lastBuildDate": "Mon, 10 Mar 2025 10:00:00 +0900",
	"total": 1234,
	"start": 101,
	"display": 2,
	"items": [
		{
			"title": "<b>무선</b> 이어폰 프로",
			"link": "https://search.shopping.naver.com/catalog/1",
			"image": "https://shopping-phinf.pstatic.net/1.jpg",
			"lprice": "129000",
			"hprice": "",
			"mallName": "네이버",
			"productId": "1001",
			"productType": "1",
			"brand": "소니",
			"maker": "소니코리아",
			"category1": "디지털/가전",
			"category2": "음향가전",
			"category3": "이어폰",
			"category4": ""
		},
		{"title": "두번째", "lprice": "1,500", "mallName": "쿠팡", "productId": "1002"}
	]
}`

type recordingSleeper struct {
	delays []time.Duration
}

func (s *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) (*Client, *recordingSleeper) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sleeper := &recordingSleeper{}
	opts = append([]ClientOption{WithEndpoint(srv.URL + "/v1/search/shop.json"), WithSleeper(sleeper.sleep)}, opts...)

	c, err := NewClient(opts...)
	require.NoError(t, err)
	return c, sleeper
}

func TestClient_FetchPage_Success(t *testing.T) {
	t.Parallel()

	requests := make(chan *http.Request, 1)
	c, sleeper := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, pageBody)
	})

	page, err := c.FetchPage(context.Background(), testCreds, PageRequest{Query: "무선 이어폰", Start: 101})
	require.NoError(t, err)

	captured := <-requests
	assert.Equal(t, "/v1/search/shop.json", captured.URL.Path)
	assert.Equal(t, "무선 이어폰", captured.URL.Query().Get("query"))
	assert.Equal(t, "100", captured.URL.Query().Get("display"))
	assert.Equal(t, "101", captured.URL.Query().Get("start"))
	assert.Equal(t, "sim", captured.URL.Query().Get("sort"))
	assert.Equal(t, testCreds.ClientID, captured.Header.Get("X-Naver-Client-Id"))
	assert.Equal(t, testCreds.ClientSecret, captured.Header.Get("X-Naver-Client-Secret"))

	assert.False(t, page.Malformed)
	assert.Equal(t, 1234, page.Total)
	assert.Equal(t, 101, page.Start)
	require.Len(t, page.Items, 2)
	assert.Equal(t, Item{
		Title:       "<b>무선</b> 이어폰 프로",
		Link:        "https://search.shopping.naver.com/catalog/1",
		Image:       "https://shopping-phinf.pstatic.net/1.jpg",
		LowPrice:    129000,
		MallName:    "네이버",
		ProductID:   "1001",
		ProductType: "1",
		Brand:       "소니",
		Maker:       "소니코리아",
		Category1:   "디지털/가전",
		Category2:   "음향가전",
		Category3:   "이어폰",
	}, page.Items[0])
	assert.Equal(t, int64(1500), page.Items[1].LowPrice)
	assert.Empty(t, sleeper.delays)
}

func TestClient_FetchPage_MissingCredentials(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })

	for _, creds := range []Credentials{{}, {ClientID: "id"}, {ClientSecret: "secret"}, {ClientID: " ", ClientSecret: " "}} {
		_, err := c.FetchPage(context.Background(), creds, PageRequest{Query: "q"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unauthorized))
	}
	assert.Zero(t, calls.Load(), "인증 정보가 없으면 요청하지 않아야 합니다")
}

func TestClient_FetchPage_Retry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		body         string
		failures     int32
		wantErr      bool
		wantCalls    int32
		wantDelays   []time.Duration
		wantCode     string
		wantAttempts int
	}{
		{
			name:       "5xx 후 성공",
			status:     http.StatusInternalServerError,
			body:       `{"errorMessage": "System error", "errorCode": "SE99"}`,
			failures:   2,
			wantCalls:  3,
			wantDelays: []time.Duration{time.Second, 2 * time.Second},
		},
		{
			name:         "재시도 소진",
			status:       http.StatusBadGateway,
			body:         `bad gateway`,
			failures:     100,
			wantErr:      true,
			wantCalls:    4,
			wantDelays:   []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
			wantAttempts: 4,
		},
		{
			name:         "200이 아닌 SE99는 재시도",
			status:       http.StatusBadRequest,
			body:         `{"errorMessage": "System error", "errorCode": "SE99"}`,
			failures:     100,
			wantErr:      true,
			wantCalls:    4,
			wantDelays:   []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
			wantCode:     "SE99",
			wantAttempts: 4,
		},
		{
			name:         "잘못된 쿼리는 재시도하지 않음",
			status:       http.StatusBadRequest,
			body:         `{"errorMessage": "Incorrect query request", "errorCode": "SE01"}`,
			failures:     100,
			wantErr:      true,
			wantCalls:    1,
			wantCode:     "SE01",
			wantAttempts: 1,
		},
		{
			name:         "인증 실패는 재시도하지 않음",
			status:       http.StatusUnauthorized,
			body:         `{"errorMessage": "Authentication failed", "errorCode": "024"}`,
			failures:     100,
			wantErr:      true,
			wantCalls:    1,
			wantCode:     "024",
			wantAttempts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			c, sleeper := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) <= tt.failures {
					w.WriteHeader(tt.status)
					_, _ = fmt.Fprint(w, tt.body)
					return
				}
				_, _ = fmt.Fprint(w, pageBody)
			})

			page, err := c.FetchPage(context.Background(), testCreds, PageRequest{Query: "q"})
			assert.Equal(t, tt.wantCalls, calls.Load())
			assert.Equal(t, tt.wantDelays, sleeper.delays)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Len(t, page.Items, 2)
				return
			}

			require.Error(t, err)
			var ue *UpstreamError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.status, ue.StatusCode)
			assert.Equal(t, tt.wantCode, ue.Code)
			assert.Equal(t, tt.wantAttempts, ue.Attempts)
			assert.True(t, IsUpstreamError(err))
		})
	}
}

func TestClient_FetchPage_TransportErrorRetried(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	sleeper := &recordingSleeper{}
	c, err := NewClient(WithEndpoint(endpoint), WithSleeper(sleeper.sleep), WithRetryDelays([]time.Duration{time.Millisecond}))
	require.NoError(t, err)

	_, err = c.FetchPage(context.Background(), testCreds, PageRequest{Query: "q"})
	require.Error(t, err)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Zero(t, ue.StatusCode)
	assert.Equal(t, 2, ue.Attempts)
	assert.Equal(t, []time.Duration{time.Millisecond}, sleeper.delays)
}

func TestClient_FetchPage_OversizedBodyNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, sleeper := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pageBody))
	}, WithFetcher(fetcher.NewMaxBytesFetcher(fetcher.NewHTTPFetcher(5*time.Second), 16)))

	_, err := c.FetchPage(context.Background(), testCreds, PageRequest{Query: "q"})
	require.Error(t, err)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.False(t, ue.Retryable())
	assert.Equal(t, int32(1), calls.Load())
	assert.Empty(t, sleeper.delays)
}

func TestClient_FetchPage_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"JSON 아님", `<html>error</html>`},
		{"items 없음", `{"total": 0, "start": 1, "display": 0}`},
		{"items가 배열이 아님", `{"total": 1, "items": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, tt.body)
			})

			page, err := c.FetchPage(context.Background(), testCreds, PageRequest{Query: "q"})
			require.NoError(t, err)
			assert.True(t, page.Malformed)
			assert.Empty(t, page.Items)
		})
	}
}

func TestClient_FetchPage_EmptyItems(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"total": 0, "start": 1, "display": 0, "items": []}`)
	})

	page, err := c.FetchPage(context.Background(), testCreds, PageRequest{Query: "q"})
	require.NoError(t, err)
	assert.False(t, page.Malformed)
	assert.Empty(t, page.Items)
}

func TestClient_FetchPage_ContextCanceledDuringRetry(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewClient(WithEndpoint(srv.URL), WithRetryDelays([]time.Duration{time.Hour}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.FetchPage(ctx, testCreds, PageRequest{Query: "q"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Timeout))
}

func TestUpstreamError(t *testing.T) {
	t.Parallel()

	assert.True(t, (&UpstreamError{}).Retryable())
	assert.True(t, (&UpstreamError{StatusCode: 503}).Retryable())
	assert.True(t, (&UpstreamError{StatusCode: 400, Code: "SE99"}).Retryable())
	assert.True(t, (&UpstreamError{StatusCode: 400, Code: "SE95"}).Retryable())
	assert.False(t, (&UpstreamError{StatusCode: 400, Code: "SE03"}).Retryable())
	assert.False(t, (&UpstreamError{StatusCode: 429, Code: "012"}).Retryable())

	err := &UpstreamError{StatusCode: 500, Code: "SE99", Message: "System error", Attempts: 4}
	assert.Equal(t, "네이버 쇼핑 검색 API 호출 실패 (status=500, code=SE99): System error [4회 시도]", err.Error())
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(1234000), parsePrice("1,234,000"))
	assert.Equal(t, int64(0), parsePrice(""))
	assert.Equal(t, int64(0), parsePrice("가격문의"))
}
