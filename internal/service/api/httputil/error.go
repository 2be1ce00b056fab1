// Package httputil HTTP 에러 처리와 표준 응답 헬퍼를 제공합니다.
package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/darkkaiser/rank-tracker/internal/service/api/model/response"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 표준 ErrorResponse JSON 형식으로 변환합니다.
// 5xx는 Error, 4xx는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch msg := he.Message.(type) {
		case string:
			message = msg
		case response.ErrorResponse:
			message = msg.Message
		}

		// echo 기본 404 메시지는 한국어 메시지로 통일
		if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
			message = constants.ErrMsgNotFound
		}
	} else {
		// HTTPError로 변환되지 않은 서비스 에러
		var converted *echo.HTTPError
		if errors.As(FromAppError(err), &converted) {
			code = converted.Code
			message = converted.Message.(response.ErrorResponse).Message
		}
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if applicationID, ok := c.Get(constants.ContextKeyApplicationID).(string); ok {
		fields["application_id"] = applicationID
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 이중 응답을 시도하지 않습니다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
