package contract

import (
	"context"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
)

// RunBy 자동 검색 실행의 주체를 정의합니다.
type RunBy int

const (
	// RunByUnknown 초기화되지 않았거나 알 수 없는 상태입니다 (기본값).
	RunByUnknown RunBy = iota

	// RunByUser API 요청에 의한 수동 실행입니다.
	RunByUser

	// RunByScheduler 스케줄러에 의한 자동 실행입니다.
	RunByScheduler

	// RunByCLI 명령줄 도구에 의한 일회성 실행입니다.
	RunByCLI
)

func (r RunBy) IsValid() bool {
	switch r {
	case RunByUser, RunByScheduler, RunByCLI:
		return true
	default:
		return false
	}
}

func (r RunBy) Validate() error {
	if !r.IsValid() {
		return apperrors.New(apperrors.InvalidInput, "지원하지 않는 실행 주체(RunBy)입니다")
	}
	return nil
}

func (r RunBy) String() string {
	switch r {
	case RunByUser:
		return "user"
	case RunByScheduler:
		return "scheduler"
	case RunByCLI:
		return "cli"
	default:
		return "unknown"
	}
}

type runByKey struct{}

// WithRunBy 실행 주체를 컨텍스트에 기록합니다.
func WithRunBy(ctx context.Context, r RunBy) context.Context {
	return context.WithValue(ctx, runByKey{}, r)
}

// RunByFromContext 컨텍스트에 기록된 실행 주체를 반환합니다. 기록되지 않았다면 RunByUnknown입니다.
func RunByFromContext(ctx context.Context) RunBy {
	if r, ok := ctx.Value(runByKey{}).(RunBy); ok {
		return r
	}
	return RunByUnknown
}
