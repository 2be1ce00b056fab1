package autosearch

import (
	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/shopping"
)

// ErrRunInProgress 동일한 설정이 이미 실행 중일 때 반환됩니다.
var ErrRunInProgress = apperrors.New(apperrors.Conflict, "해당 자동 검색 설정이 이미 실행 중입니다")

func newErrConfigNotFound(configID int64, cause error) error {
	return apperrors.Wrapf(cause, apperrors.NotFound, "자동 검색 설정을 찾을 수 없거나 비활성 상태입니다(config_id=%d)", configID)
}

func newErrCredential(format string, args ...any) error {
	return apperrors.Newf(apperrors.Unauthorized, format, args...)
}

func newErrPersistence(cause error, op string) error {
	return apperrors.Wrapf(cause, apperrors.System, "검색 이력 저장소 작업에 실패했습니다(%s)", op)
}

func newErrAllPagesFailed(last error, attempted int) error {
	return apperrors.Wrapf(last, apperrors.Unavailable, "시도한 %d개 페이지의 검색 API 호출이 모두 실패했습니다", attempted)
}

// IsCredentialError 사용할 수 있는 API 인증 정보가 없어 실행이 실패했는지 확인합니다.
func IsCredentialError(err error) bool {
	return apperrors.TypeOf(err) == apperrors.Unauthorized
}

// IsConfigNotFound 설정이 없거나 비활성 상태라서 실행이 거부되었는지 확인합니다.
func IsConfigNotFound(err error) bool {
	return apperrors.TypeOf(err) == apperrors.NotFound
}

// IsUpstreamError 검색 API 호출 실패로 실행이 중단되었는지 확인합니다.
func IsUpstreamError(err error) bool {
	return shopping.IsUpstreamError(err)
}

// IsPersistenceError 저장소 작업 실패로 실행이 중단되었는지 확인합니다.
func IsPersistenceError(err error) bool {
	return apperrors.TypeOf(err) == apperrors.System
}
