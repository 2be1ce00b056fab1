package shopping

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
)

// systemErrorCode 네이버 오픈 API의 시스템 에러 코드입니다.
const systemErrorCode = "SE99"

// UpstreamError 검색 API 호출이 최종적으로 실패했을 때 반환되는 에러입니다.
//
// StatusCode가 0이면 응답을 받기 전에 실패한 전송 오류(타임아웃, 연결 실패 등)입니다.
type UpstreamError struct {
	StatusCode int
	Code       string
	Message    string
	Attempts   int

	cause error
}

func (e *UpstreamError) Error() string {
	var b strings.Builder
	b.WriteString("네이버 쇼핑 검색 API 호출 실패")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status=%d", e.StatusCode)
		if e.Code != "" {
			fmt.Fprintf(&b, ", code=%s", e.Code)
		}
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Attempts > 1 {
		fmt.Fprintf(&b, " [%d회 시도]", e.Attempts)
	}
	return b.String()
}

func (e *UpstreamError) Unwrap() error {
	return e.cause
}

// Retryable 5xx 응답, 벤더 시스템 에러 코드(SE90 이상), 전송 오류이면 true를 반환합니다.
// fetcher가 InvalidInput으로 거부한 응답(응답 크기 초과 등)은 재시도하지 않습니다.
func (e *UpstreamError) Retryable() bool {
	if apperrors.Is(e.cause, apperrors.InvalidInput) {
		return false
	}
	if e.StatusCode == 0 || e.StatusCode >= 500 {
		return true
	}
	return isSystemErrorCode(e.Code)
}

// isSystemErrorCode SE99 또는 SE90 이상의 SE 코드인지 판별합니다.
func isSystemErrorCode(code string) bool {
	if code == systemErrorCode {
		return true
	}
	n, ok := strings.CutPrefix(code, "SE")
	if !ok {
		return false
	}
	v, err := strconv.Atoi(n)
	return err == nil && v >= 90
}

// IsUpstreamError err 체인에 *UpstreamError가 있는지 확인합니다.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

func newErrCredentialsMissing() error {
	return apperrors.New(apperrors.Unauthorized, "네이버 API 인증 정보(Client ID/Secret)가 설정되지 않았습니다")
}
