// Package v1 /api/v1 경로 하위의 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/auto-search/run          - 설정 1건 실행
//   - POST /api/v1/auto-search/run-all      - 활성 설정 전체 실행
//   - /api/v1/auto-search/configs           - 설정 CRUD
//   - GET  /api/v1/auto-search/history/:id  - 검색 이력
//   - GET  /api/v1/auto-search/logs/:id     - 실행 로그
//   - GET  /api/v1/auto-search/dashboard    - 대시보드
//   - POST /api/v1/search                   - 일회성 순위 확인
//   - /api/v1/notifications                 - 알림 조회 및 읽음 처리
//   - /api/v1/credentials                   - 검색 API 인증 프로필
//   - POST /api/v1/cleanup-logs             - 오래된 실행 로그 정리
//
// 모든 엔드포인트는 애플리케이션 인증(app_key)을 요구합니다.
package v1

import (
	"github.com/darkkaiser/rank-tracker/internal/service/api/auth"
	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/darkkaiser/rank-tracker/internal/service/api/middleware"
	"github.com/darkkaiser/rank-tracker/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// 실행과 순위 확인 엔드포인트는 전역 요청 타임아웃 대상에서 제외되고,
// 대신 constants.DefaultRunTimeout 기한의 Context로 처리됩니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	v1Group := e.Group("/api/v1", middleware.RequireAuthentication(authenticator))

	jsonBody := middleware.ValidateContentType(echo.MIMEApplicationJSON)
	runTimeout := echomiddleware.ContextTimeout(constants.DefaultRunTimeout)

	as := v1Group.Group("/auto-search")
	as.POST("/run", h.RunHandler, jsonBody, runTimeout)
	as.POST("/run-all", h.RunAllHandler, jsonBody, runTimeout)

	as.GET("/configs", h.ListConfigsHandler)
	as.POST("/configs", h.CreateConfigHandler, jsonBody)
	as.GET("/configs/:id", h.GetConfigHandler)
	as.PUT("/configs/:id", h.UpdateConfigHandler, jsonBody)
	as.DELETE("/configs/:id", h.DeleteConfigHandler)

	as.GET("/history/:id", h.HistoryHandler)
	as.GET("/logs/:id", h.RunLogsHandler)
	as.GET("/dashboard", h.DashboardHandler)

	v1Group.POST("/search", h.SearchHandler, jsonBody, runTimeout)

	v1Group.GET("/notifications", h.ListNotificationsHandler)
	v1Group.DELETE("/notifications", h.DeleteAllNotificationsHandler)
	v1Group.POST("/notifications/read-all", h.MarkAllNotificationsReadHandler)
	v1Group.PATCH("/notifications/:id/read", h.MarkNotificationReadHandler)

	v1Group.GET("/credentials", h.ListCredentialsHandler)
	v1Group.POST("/credentials", h.CreateCredentialHandler, jsonBody)
	v1Group.DELETE("/credentials/:id", h.DeleteCredentialHandler)

	v1Group.POST("/cleanup-logs", h.CleanupLogsHandler)
}
