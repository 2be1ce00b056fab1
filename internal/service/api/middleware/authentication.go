package middleware

import (
	"github.com/darkkaiser/rank-tracker/internal/service/api/auth"
	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/darkkaiser/rank-tracker/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// RequireAuthentication app_key로 애플리케이션을 인증하고, 성공하면 Context에 애플리케이션 정보를 저장합니다.
//
// app_key는 X-App-Key 헤더를 우선 사용하며, 없으면 app_key 쿼리 파라미터를 사용합니다.
func RequireAuthentication(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	if authenticator == nil {
		panic("Authenticator는 필수입니다")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			appKey := extractAppKey(c)

			app, err := authenticator.Authenticate(appKey)
			if err != nil {
				applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
					"method":           c.Request().Method,
					"path":             c.Path(),
					"remote_ip":        c.RealIP(),
					"received_app_key": strutil.Mask(appKey),
				}).Warn("애플리케이션 인증 실패")

				return err
			}

			auth.SetApplication(c, app)

			return next(c)
		}
	}
}

func extractAppKey(c echo.Context) string {
	if appKey := c.Request().Header.Get(constants.HeaderAppKey); appKey != "" {
		return appKey
	}

	appKey := c.QueryParam(constants.QueryParamAppKey)
	if appKey != "" {
		applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
			"method":    c.Request().Method,
			"path":      c.Path(),
			"remote_ip": c.RealIP(),
		}).Warn("보안 경고: 쿼리 파라미터로 App Key 전달됨 (헤더 사용 권장)")
	}
	return appKey
}
