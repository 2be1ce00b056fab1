package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateEndpointURL 외부 API 엔드포인트로 사용할 수 있는 절대 http(s) URL인지 검증합니다.
func ValidateEndpointURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("엔드포인트 URL이 비어 있습니다")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("엔드포인트 URL 파싱 실패 (input=%q): %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("엔드포인트 URL은 http 또는 https 스키마를 사용해야 합니다 (input=%q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("엔드포인트 URL에 호스트가 없습니다 (input=%q)", raw)
	}

	return nil
}
