// Package fetcher 외부 API 호출에 사용하는 HTTP 요청 체인을 제공합니다.
//
// 각 Fetcher는 데코레이터로 조합됩니다.
//
//	LoggingFetcher -> MaxBytesFetcher -> HTTPFetcher
package fetcher

import (
	"io"
	"net"
	"net/http"
	"time"
)

const component = "fetcher"

const (
	// DefaultTimeout 요청 하나에 허용되는 최대 시간입니다.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBytes 응답 본문의 기본 크기 제한값입니다 (10MB).
	DefaultMaxBytes = 10 * 1024 * 1024
)

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
// 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// New 타임아웃이 적용된 HTTP 클라이언트에 본문 크기 제한과 요청 로깅을 더한 기본 체인을 생성합니다.
func New(timeout time.Duration) Fetcher {
	return NewLoggingFetcher(NewMaxBytesFetcher(NewHTTPFetcher(timeout), DefaultMaxBytes))
}

var defaultTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	TLSHandshakeTimeout: 10 * time.Second,
	MaxIdleConns:        20,
	MaxIdleConnsPerHost: 20,
	IdleConnTimeout:     90 * time.Second,
}

// HTTPFetcher 실제 네트워크 요청을 수행하는 최하위 Fetcher입니다.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher 지정된 타임아웃을 갖는 HTTPFetcher를 생성합니다. 0 이하이면 DefaultTimeout을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: defaultTransport,
		},
	}
}

func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return f.client.Do(req)
}

// drainAndCloseBody 커넥션 재사용을 위해 남은 본문을 일정량 비운 뒤 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.CopyN(io.Discard, body, 64*1024)
	_ = body.Close()
}
