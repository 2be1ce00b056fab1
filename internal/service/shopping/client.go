// Package shopping 네이버 쇼핑 검색 API 클라이언트를 제공합니다.
//
// API 공식 문서: https://developers.naver.com/docs/serviceapi/search/shopping/shopping.md
package shopping

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/fetcher"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/darkkaiser/rank-tracker/pkg/strutil"
	"github.com/tidwall/gjson"
)

const component = "shopping.client"

const (
	// DefaultEndpoint 네이버 쇼핑 상품 검색 엔드포인트
	DefaultEndpoint = "https://openapi.naver.com/v1/search/shop.json"

	headerClientID     = "X-Naver-Client-Id"
	headerClientSecret = "X-Naver-Client-Secret"
)

// DefaultRetryDelays 일시적 오류 발생 시 재시도 전 대기 시간 목록입니다. 길이가 곧 최대 재시도 횟수입니다.
var DefaultRetryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

// SleepFunc 재시도 대기 함수입니다. ctx가 취소되면 즉시 ctx.Err()를 반환해야 합니다.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Client 네이버 쇼핑 검색 API 클라이언트
type Client struct {
	endpoint    *url.URL
	fetcher     fetcher.Fetcher
	retryDelays []time.Duration
	sleep       SleepFunc
}

// ClientOption Client 생성 옵션
type ClientOption func(*Client) error

// WithEndpoint 기본 엔드포인트 대신 사용할 URL을 지정합니다.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) error {
		u, err := url.Parse(endpoint)
		if err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("네이버 API 엔드포인트가 올바르지 않습니다: '%s'", endpoint))
		}
		c.endpoint = u
		return nil
	}
}

// WithTimeout 기본 Fetcher 체인을 지정된 요청 타임아웃으로 다시 구성합니다.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) error {
		c.fetcher = fetcher.New(timeout)
		return nil
	}
}

// WithFetcher HTTP 요청을 수행할 Fetcher를 지정합니다.
func WithFetcher(f fetcher.Fetcher) ClientOption {
	return func(c *Client) error {
		c.fetcher = f
		return nil
	}
}

// WithRetryDelays 재시도 대기 시간 목록을 지정합니다. 빈 목록이면 재시도하지 않습니다.
func WithRetryDelays(delays []time.Duration) ClientOption {
	return func(c *Client) error {
		c.retryDelays = append([]time.Duration(nil), delays...)
		return nil
	}
}

// WithSleeper 재시도 대기 함수를 지정합니다.
func WithSleeper(sleep SleepFunc) ClientOption {
	return func(c *Client) error {
		c.sleep = sleep
		return nil
	}
}

// NewClient 새로운 Client를 생성합니다.
func NewClient(opts ...ClientOption) (*Client, error) {
	u, _ := url.Parse(DefaultEndpoint)

	c := &Client{
		endpoint:    u,
		fetcher:     fetcher.New(fetcher.DefaultTimeout),
		retryDelays: DefaultRetryDelays,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// FetchPage 검색 API를 한 번 호출하여 한 페이지의 상품을 가져옵니다.
//
// 일시적 오류(UpstreamError.Retryable)는 재시도 대기 목록만큼 다시 시도하며,
// 그 외의 오류이거나 재시도를 모두 소진하면 *UpstreamError를 반환합니다.
// 인증 정보가 비어 있으면 요청 없이 apperrors.Unauthorized 에러를 반환합니다.
func (c *Client) FetchPage(ctx context.Context, creds Credentials, req PageRequest) (*Page, error) {
	if !creds.Valid() {
		return nil, newErrCredentialsMissing()
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "검색어가 비어 있습니다")
	}

	for attempt := 0; ; attempt++ {
		page, err := c.fetchOnce(ctx, creds, req)
		if err == nil {
			return page, nil
		}

		ue, ok := err.(*UpstreamError)
		if !ok {
			return nil, err
		}
		ue.Attempts = attempt + 1

		if !ue.Retryable() || attempt >= len(c.retryDelays) {
			return nil, ue
		}

		delay := c.retryDelays[attempt]
		applog.WithComponentAndFields(component, applog.Fields{
			"query":       req.Query,
			"start":       req.Start,
			"client_id":   strutil.Mask(creds.ClientID),
			"status_code": ue.StatusCode,
			"error_code":  ue.Code,
			"attempt":     attempt + 1,
			"retry_in":    delay.String(),
		}).Warn("네이버 쇼핑 검색 API 일시적 오류: 재시도 대기")

		if err := c.sleep(ctx, delay); err != nil {
			return nil, apperrors.Wrap(err, apperrors.Timeout, "재시도 대기 중 요청이 취소되었습니다")
		}
	}
}

func (c *Client) fetchOnce(ctx context.Context, creds Credentials, req PageRequest) (*Page, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(req), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "검색 API 요청 생성에 실패했습니다")
	}
	httpReq.Header.Set(headerClientID, creds.ClientID)
	httpReq.Header.Set(headerClientSecret, creds.ClientSecret)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.fetcher.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, apperrors.Wrap(ctx.Err(), apperrors.Timeout, "검색 API 요청이 취소되었습니다")
		}
		return nil, &UpstreamError{Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if resp.StatusCode == http.StatusOK {
			return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "응답 본문을 읽는 중 오류가 발생했습니다: " + err.Error(), cause: err}
		}
		body = nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorBody(resp.StatusCode, body)
	}

	return parsePage(body), nil
}

// buildURL 엔드포인트를 복사하여 검색 매개변수를 설정합니다. 원본 엔드포인트는 변경되지 않습니다.
func (c *Client) buildURL(req PageRequest) string {
	display := req.Display
	if display <= 0 || display > MaxDisplay {
		display = MaxDisplay
	}
	start := req.Start
	if start <= 0 {
		start = 1
	}
	sort := req.Sort
	if sort == "" {
		sort = DefaultSort
	}

	u := *c.endpoint
	q := u.Query()
	q.Set("query", req.Query)
	q.Set("display", strconv.Itoa(display))
	q.Set("start", strconv.Itoa(start))
	q.Set("sort", sort)
	u.RawQuery = q.Encode()

	return u.String()
}

// parseErrorBody {"errorMessage": "...", "errorCode": "SE99"} 형식의 에러 응답을 해석합니다.
func parseErrorBody(status int, body []byte) *UpstreamError {
	ue := &UpstreamError{StatusCode: status}

	if gjson.ValidBytes(body) {
		res := gjson.ParseBytes(body)
		ue.Code = res.Get("errorCode").String()
		ue.Message = res.Get("errorMessage").String()
	}
	if ue.Message == "" {
		ue.Message = http.StatusText(status)
	}

	return ue
}

func parsePage(body []byte) *Page {
	if !gjson.ValidBytes(body) {
		return &Page{Malformed: true}
	}

	res := gjson.ParseBytes(body)
	page := &Page{
		Total:   int(res.Get("total").Int()),
		Start:   int(res.Get("start").Int()),
		Display: int(res.Get("display").Int()),
	}

	items := res.Get("items")
	if !items.IsArray() {
		page.Malformed = true
		return page
	}

	items.ForEach(func(_, v gjson.Result) bool {
		page.Items = append(page.Items, Item{
			Title:       v.Get("title").String(),
			Link:        v.Get("link").String(),
			Image:       v.Get("image").String(),
			LowPrice:    parsePrice(v.Get("lprice").String()),
			HighPrice:   parsePrice(v.Get("hprice").String()),
			MallName:    v.Get("mallName").String(),
			ProductID:   v.Get("productId").String(),
			ProductType: v.Get("productType").String(),
			Brand:       v.Get("brand").String(),
			Maker:       v.Get("maker").String(),
			Category1:   v.Get("category1").String(),
			Category2:   v.Get("category2").String(),
			Category3:   v.Get("category3").String(),
			Category4:   v.Get("category4").String(),
		})
		return true
	})

	return page
}

// parsePrice "1,234,000" 형식의 가격 문자열을 정수로 변환합니다. 빈 값이나 형식 오류는 0입니다.
func parsePrice(s string) int64 {
	v, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
