// Package constants API 서비스 전반에서 사용하는 상수를 정의합니다.
package constants

import "time"

// 로깅용 컴포넌트 이름
const (
	ComponentService = "api.service"

	ComponentHandler = "api.handler"

	ComponentMiddlewareAuthentication = "api.middleware.auth"

	ComponentMiddlewareRateLimit = "api.middleware.rate_limit"

	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"

	ComponentMiddlewareContentType = "api.middleware.content_type"

	ComponentErrorHandler = "api.error_handler"
)

// HTTP 서버 기본값
const (
	// DefaultRequestTimeout 일반 요청의 최대 처리 시간
	DefaultRequestTimeout = 60 * time.Second

	// DefaultRunTimeout 자동 검색 실행 요청의 최대 처리 시간.
	// 여러 페이지 조회와 페이지 간 대기, 재시도가 포함되므로 일반 요청보다 길게 잡습니다.
	DefaultRunTimeout = 10 * time.Minute

	DefaultReadTimeout       = 30 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = DefaultRunTimeout + 30*time.Second
	DefaultIdleTimeout       = 120 * time.Second

	DefaultMaxBodySize = "128K"

	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40

	// ShutdownTimeout Graceful Shutdown 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)

// LongRunningPathPrefixes 전역 요청 타임아웃 대신 DefaultRunTimeout을 적용하는 경로
var LongRunningPathPrefixes = []string{
	"/api/v1/auto-search/run",
	"/api/v1/search",
}

// 인증 헤더와 파라미터
const (
	HeaderAppKey = "X-App-Key"

	QueryParamAppKey = "app_key"

	// ContextKeyApplicationID 인증된 애플리케이션 ID. 오류 로그에 포함됩니다.
	ContextKeyApplicationID = "authenticated_application_id"
)

// SensitiveQueryParams 요청 로그에서 마스킹할 쿼리 파라미터
var SensitiveQueryParams = []string{
	QueryParamAppKey,
	"client_id",
	"client_secret",
	"api_key",
	"password",
	"token",
	"secret",
}

// 헬스체크 상태
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DependencyDatabase = "database"

	MsgDepStatusHealthy = "정상 작동 중"
)

// 오류 응답 메시지
const (
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgInvalidID             = "ID는 1 이상의 정수여야 합니다"

	ErrMsgAuthAppKeyRequired = "app_key는 필수입니다 (X-App-Key 헤더 또는 app_key 쿼리 파라미터)"
	ErrMsgAuthInvalidAppKey  = "app_key가 유효하지 않습니다"

	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	ErrMsgUnsupportedMediaType = "Content-Type은 application/json이어야 합니다"

	ErrMsgRequestTimeout = "요청 처리 시간이 초과되었습니다"

	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"
)

// 로그 메시지
const (
	LogMsgServiceStarting       = "서비스 시작 진입: API 서비스 초기화 프로세스를 시작합니다"
	LogMsgServiceStarted        = "서비스 시작 완료: API 서비스가 정상적으로 초기화되었습니다"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 실행 중입니다 (중복 호출)"
	LogMsgServiceStopping       = "종료 절차 진입: API 서비스 중지 시그널을 수신했습니다"
	LogMsgServiceStopped        = "API 서비스 종료 완료: 모든 리소스가 정리되었습니다"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgHTTPServerStarting      = "HTTP 서버 시작"
	LogMsgHTTPServerStopped       = "HTTP 서버 중지됨"
	LogMsgHTTPServerShutdownError = "HTTP 서버 종료 중 오류 발생"
	LogMsgHTTPServerFatalError    = "HTTP 서버를 구성하는 중에 치명적인 오류가 발생하였습니다"

	LogMsgUnsupportedContentType = "지원하지 않는 Content-Type 요청"

	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
)
