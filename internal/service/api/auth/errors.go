package auth

import (
	"errors"

	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/darkkaiser/rank-tracker/internal/service/api/httputil"
)

var (
	// ErrAppKeyRequired app_key가 전달되지 않았습니다.
	ErrAppKeyRequired = httputil.NewUnauthorizedError(constants.ErrMsgAuthAppKeyRequired)

	// ErrInvalidAppKey 등록되지 않은 app_key입니다.
	ErrInvalidAppKey = httputil.NewUnauthorizedError(constants.ErrMsgAuthInvalidAppKey)
)

var (
	// ErrApplicationMissingInContext 인증 미들웨어를 거치지 않아 Context에 애플리케이션 정보가 없습니다.
	ErrApplicationMissingInContext = errors.New("context에 인증된 애플리케이션 정보가 없습니다")

	// ErrApplicationTypeMismatch Context에 저장된 값의 타입이 올바르지 않습니다.
	ErrApplicationTypeMismatch = errors.New("context에 저장된 애플리케이션 정보의 타입이 올바르지 않습니다")
)
