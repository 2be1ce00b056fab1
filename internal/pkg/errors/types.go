package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota
	// Internal 내부 로직 오류 (버그 등)
	Internal
	// System 시스템 또는 인프라 오류 (디스크, 데이터베이스 등)
	System
	// Unauthorized 인증 실패 (API 자격증명 누락 등)
	Unauthorized
	// Forbidden 권한 없음
	Forbidden
	// InvalidInput 잘못된 입력값
	InvalidInput
	// Conflict 리소스 충돌 (동일 설정의 중복 실행 등)
	Conflict
	// NotFound 리소스를 찾을 수 없음
	NotFound
	// ExecutionFailed 외부 API 호출 등 작업 수행 실패
	ExecutionFailed
	// ParsingFailed 데이터 파싱 실패
	ParsingFailed
	// Timeout 작업 시간 초과
	Timeout
	// Unavailable 외부 서비스 일시적 사용 불가 (재시도 대상)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	Conflict:        "Conflict",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

// String ErrorType의 이름을 반환합니다. 정의되지 않은 값은 "ErrorType(N)" 형식으로 표현합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
