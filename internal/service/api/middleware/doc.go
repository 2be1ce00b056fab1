// Package middleware Echo 프레임워크를 위한 HTTP 미들웨어를 제공합니다.
//
// 제공되는 미들웨어:
//
//   - PanicRecovery: 패닉 복구 및 에러 로깅
//   - HTTPLogger: HTTP 요청/응답 로깅 (민감 정보 자동 마스킹)
//   - RateLimiting: IP 기반 요청 속도 제한
//   - RequireAuthentication: app_key 기반 애플리케이션 인증
//   - ValidateContentType: 본문 요청의 Content-Type 검사
//   - Logger: Echo 로거를 애플리케이션 로거로 연결
package middleware
