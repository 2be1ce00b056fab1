package handler

import (
	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/darkkaiser/rank-tracker/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문이 올바른 JSON이 아니거나 파싱에 실패했을 때의 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 필수 값 누락, 범위 위반 등 유효성 검증에 실패했을 때의 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidID 경로의 ID가 1 이상의 정수가 아닐 때의 에러를 생성합니다.
func NewErrInvalidID() error {
	return httputil.NewBadRequestError(constants.ErrMsgInvalidID)
}

// NewErrInvalidQuery 쿼리 파라미터 형식이 올바르지 않을 때의 에러를 생성합니다.
func NewErrInvalidQuery(msg string) error {
	return httputil.NewBadRequestError("쿼리 파라미터가 올바르지 않습니다: " + msg)
}
