package autosearch

import (
	"context"
	"time"

	"github.com/darkkaiser/rank-tracker/internal/service/shopping"
)

// RunCompletion 실행 로그 완료 시 기록되는 값
type RunCompletion struct {
	Status       RunStatus
	CompletedAt  time.Time
	DurationMs   int64
	ResultsCount int
	ErrorMessage string
	ResultSample []MatchedResult
}

// Store 실행 엔진이 사용하는 저장소 인터페이스입니다.
//
// 설정이 없거나 비활성이면 GetActiveConfig는 apperrors.NotFound 에러를 반환해야 합니다.
// 카운터 갱신(RecordRunSuccess, RecordRunFailure)은 읽고-쓰기가 아닌 원자적 증가로 구현되어야 합니다.
type Store interface {
	GetActiveConfig(ctx context.Context, id int64) (*SearchConfig, error)
	ListActiveConfigs(ctx context.Context) ([]*SearchConfig, error)

	GetCredentialProfile(ctx context.Context, id int64) (*CredentialProfile, error)
	GetDefaultCredentialProfile(ctx context.Context, apiType string) (*CredentialProfile, error)

	CreateRunLog(ctx context.Context, log *RunLog) (int64, error)
	CompleteRunLog(ctx context.Context, id int64, c RunCompletion) error

	// InsertResults 결과를 한 번에 추가합니다. 이전 결과는 삭제하거나 수정하지 않습니다.
	InsertResults(ctx context.Context, results []MatchedResult) error

	RecordRunSuccess(ctx context.Context, configID int64, at time.Time) error
	RecordRunFailure(ctx context.Context, configID int64, at time.Time, message string) error
}

// Searcher 검색 API 한 페이지를 가져옵니다. *shopping.Client가 구현합니다.
type Searcher interface {
	FetchPage(ctx context.Context, creds shopping.Credentials, req shopping.PageRequest) (*shopping.Page, error)
}

var _ Searcher = (*shopping.Client)(nil)
