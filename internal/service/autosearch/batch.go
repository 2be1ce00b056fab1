package autosearch

import (
	"context"
	"time"

	applog "github.com/darkkaiser/rank-tracker/pkg/log"
)

// RunAllActive 활성 상태인 모든 설정을 순서대로 한 번씩 실행합니다.
//
// 한 설정의 실패는 기록만 하고 다음 설정으로 넘어가며, 실패한 설정을 같은 호출 안에서 다시 시도하지 않습니다.
// 모든 설정을 시도한 뒤에 결과 요약을 반환합니다.
func (e *Engine) RunAllActive(ctx context.Context, profileID *int64) *BatchSummary {
	return e.runBatch(ctx, profileID, func(*SearchConfig) bool { return true })
}

// RunDue 실행 주기가 도래한 활성 설정만 실행합니다. 스케줄러가 주기적으로 호출합니다.
func (e *Engine) RunDue(ctx context.Context, now time.Time) *BatchSummary {
	return e.runBatch(ctx, nil, func(c *SearchConfig) bool { return c.Due(now) })
}

func (e *Engine) runBatch(ctx context.Context, profileID *int64, selected func(*SearchConfig) bool) *BatchSummary {
	summary := &BatchSummary{
		Attempted: []int64{},
		Succeeded: []int64{},
		Failed:    []BatchFailure{},
	}

	configs, err := e.store.ListActiveConfigs(ctx)
	if err != nil {
		applog.WithComponent(component).WithError(err).Error("활성 자동 검색 설정 목록을 조회하지 못했습니다")
		summary.ListError = newErrPersistence(err, "활성 설정 목록 조회").Error()
		return summary
	}

	for _, cfg := range configs {
		if !selected(cfg) {
			summary.Skipped++
			continue
		}
		if ctx.Err() != nil {
			// 취소된 이후의 설정은 시도하지 않은 것으로 남깁니다.
			summary.Skipped++
			continue
		}

		summary.Attempted = append(summary.Attempted, cfg.ID)

		res, err := e.RunOnce(ctx, cfg.ID, profileID)
		if err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"config_id": cfg.ID,
				"query":     cfg.SearchQuery,
			}).WithError(err).Warn("일괄 실행 중 설정 실행 실패: 다음 설정으로 진행")

			summary.Failed = append(summary.Failed, BatchFailure{ConfigID: cfg.ID, Error: err.Error()})
			continue
		}

		summary.Succeeded = append(summary.Succeeded, cfg.ID)
		summary.Results += res.ResultsCount
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"attempted": len(summary.Attempted),
		"succeeded": len(summary.Succeeded),
		"failed":    len(summary.Failed),
		"skipped":   summary.Skipped,
		"results":   summary.Results,
	}).Info("자동 검색 일괄 실행 완료")

	return summary
}
