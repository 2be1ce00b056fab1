package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/darkkaiser/rank-tracker/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewUnauthorizedError 401 Unauthorized 에러를 생성합니다
func NewUnauthorizedError(message string) error {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewUnsupportedMediaTypeError 415 Unsupported Media Type 에러를 생성합니다
func NewUnsupportedMediaTypeError(message string) error {
	return newHTTPError(http.StatusUnsupportedMediaType, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// FromAppError 서비스 계층의 에러를 HTTP 에러로 변환합니다.
//
//   - Unauthorized(사용 가능한 검색 API 인증 정보 없음) → 422
//   - NotFound → 404, InvalidInput → 400, Conflict → 409
//   - Unavailable, ExecutionFailed(검색 API 호출 실패) → 502, Timeout → 504
//   - 그 외 → 500 (내부 에러 메시지는 응답에 노출하지 않습니다)
func FromAppError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if !apperrors.As(err, &appErr) {
		return echo.NewHTTPError(http.StatusInternalServerError, response.ErrorResponse{
			ResultCode: http.StatusInternalServerError,
			Message:    constants.ErrMsgInternalServer,
		}).SetInternal(err)
	}

	code := StatusCode(appErr.Type())
	message := appErr.Message()
	if code == http.StatusInternalServerError {
		message = constants.ErrMsgInternalServer
	}

	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	}).SetInternal(err)
}

// StatusCode 에러 타입에 대응하는 HTTP 상태 코드를 반환합니다.
func StatusCode(t apperrors.ErrorType) int {
	switch t {
	case apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.Unauthorized:
		return http.StatusUnprocessableEntity
	case apperrors.Forbidden:
		return http.StatusForbidden
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Conflict:
		return http.StatusConflict
	case apperrors.Unavailable, apperrors.ExecutionFailed:
		return http.StatusBadGateway
	case apperrors.Timeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Success 표준 성공 응답(200 OK)을 JSON 형식으로 반환합니다.
func Success(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, response.SuccessResponse{
		ResultCode: 0,
		Message:    message,
	})
}
