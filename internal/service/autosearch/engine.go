package autosearch

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/internal/service/shopping"
	"github.com/darkkaiser/rank-tracker/pkg/concurrency"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/google/uuid"
)

const component = "autosearch.engine"

const (
	// MaxPages 설정값과 관계없이 한 번의 실행에서 호출하는 최대 API 페이지 수
	MaxPages = 25

	// DefaultStartCeiling 검색 API가 허용하는 start 매개변수의 최댓값
	DefaultStartCeiling = shopping.MaxStart

	// DefaultPageDelay 연속된 페이지 호출 사이의 대기 시간
	DefaultPageDelay = 200 * time.Millisecond

	// resultSampleSize 실행 로그에 함께 저장하는 결과 견본의 최대 개수
	resultSampleSize = 10
)

// Engine 자동 검색 설정 1건을 실행합니다.
//
// 같은 설정에 대한 실행은 한 번에 하나만 허용되며, 서로 다른 설정은 동시에 실행될 수 있습니다.
type Engine struct {
	store    Store
	searcher Searcher
	sink     contract.NotificationSink

	locks *concurrency.KeyedMutex[int64]

	sleep    func(time.Duration)
	now      func() time.Time
	newRunID func() string

	pageDelay    time.Duration
	maxPages     int
	startCeiling int
}

// Option Engine 생성 옵션
type Option func(*Engine)

// WithSleeper 페이지 간 대기 함수를 지정합니다.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(e *Engine) { e.sleep = sleep }
}

// WithClock 현재 시각 함수를 지정합니다.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithPageDelay 페이지 간 대기 시간을 지정합니다. 0이면 대기하지 않습니다.
func WithPageDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.pageDelay = d
		}
	}
}

// WithMaxPages 실행당 최대 페이지 수를 지정합니다. MaxPages보다 큰 값은 MaxPages로 제한됩니다.
func WithMaxPages(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxPages = min(n, MaxPages)
		}
	}
}

// WithStartCeiling start 매개변수 상한을 지정합니다. 0이면 상한 검사를 하지 않습니다.
func WithStartCeiling(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.startCeiling = n
		}
	}
}

// WithRunIDGenerator 실행 ID 생성 함수를 지정합니다.
func WithRunIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newRunID = fn }
}

// NewEngine 새로운 Engine을 생성합니다. sink가 nil이면 알림을 보내지 않습니다.
func NewEngine(store Store, searcher Searcher, sink contract.NotificationSink, opts ...Option) *Engine {
	if store == nil {
		panic("autosearch: Store는 필수입니다")
	}
	if searcher == nil {
		panic("autosearch: Searcher는 필수입니다")
	}

	e := &Engine{
		store:    store,
		searcher: searcher,
		sink:     sink,

		locks: concurrency.NewKeyedMutex[int64](),

		sleep:    time.Sleep,
		now:      time.Now,
		newRunID: func() string { return uuid.New().String() },

		pageDelay:    DefaultPageDelay,
		maxPages:     MaxPages,
		startCeiling: DefaultStartCeiling,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// pageOutcome 페이지 순회 결과
type pageOutcome struct {
	results   []MatchedResult
	attempted int
	fetched   int
	failed    int
}

// RunOnce 설정 1건을 실행하고 결과를 기록합니다.
//
// profileID가 nil이 아니면 해당 인증 프로필을 우선 사용합니다.
// 설정이 없거나 비활성이면 실행 로그를 남기지 않고 에러를 반환합니다.
// 그 밖의 실패는 실행 로그와 설정 카운터에 기록되고 오류 알림을 보낸 뒤 에러를 그대로 반환합니다.
func (e *Engine) RunOnce(ctx context.Context, configID int64, profileID *int64) (*RunResult, error) {
	if !e.locks.TryLock(configID) {
		return nil, ErrRunInProgress
	}
	defer e.locks.Unlock(configID)

	cfg, err := e.store.GetActiveConfig(ctx, configID)
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return nil, newErrConfigNotFound(configID, err)
		}
		return nil, newErrPersistence(err, "설정 조회")
	}

	startedAt := e.now()
	trigger := contract.RunByFromContext(ctx)
	result := &RunResult{
		ConfigID: cfg.ID,
		RunID:    e.newRunID(),
		Trigger:  trigger,
		Status:   RunStatusRunning,
	}

	logger := applog.WithComponentAndFields(component, applog.Fields{
		"config_id": cfg.ID,
		"run_id":    result.RunID,
		"query":     cfg.SearchQuery,
		"trigger":   trigger.String(),
	})

	runLogID, err := e.store.CreateRunLog(ctx, &RunLog{
		ConfigID:  cfg.ID,
		RunID:     result.RunID,
		Trigger:   trigger.String(),
		Status:    RunStatusRunning,
		StartedAt: startedAt,
	})
	if err != nil {
		return e.fail(ctx, cfg, result, 0, startedAt, newErrPersistence(err, "실행 로그 생성"))
	}
	result.RunLogID = runLogID

	logger.Info("자동 검색 실행 시작")

	creds, err := e.resolveCredentials(ctx, cfg, profileID)
	if err != nil {
		return e.fail(ctx, cfg, result, runLogID, startedAt, err)
	}

	outcome, err := e.collect(ctx, cfg, creds, result.RunID, startedAt)
	result.PagesFetched, result.PageErrors = outcome.fetched, outcome.failed
	if err != nil {
		return e.fail(ctx, cfg, result, runLogID, startedAt, err)
	}

	if len(outcome.results) > 0 {
		if err := e.store.InsertResults(ctx, outcome.results); err != nil {
			return e.fail(ctx, cfg, result, runLogID, startedAt, newErrPersistence(err, "검색 결과 저장"))
		}
	}

	completedAt := e.now()
	duration := completedAt.Sub(startedAt)
	if err := e.store.CompleteRunLog(ctx, runLogID, RunCompletion{
		Status:       RunStatusSuccess,
		CompletedAt:  completedAt,
		DurationMs:   duration.Milliseconds(),
		ResultsCount: len(outcome.results),
		ResultSample: outcome.results[:min(len(outcome.results), resultSampleSize)],
	}); err != nil {
		return e.fail(ctx, cfg, result, runLogID, startedAt, newErrPersistence(err, "실행 로그 완료"))
	}

	result.Status = RunStatusSuccess
	result.ResultsCount = len(outcome.results)
	result.Duration = duration
	result.DurationMs = duration.Milliseconds()

	// 실행 로그는 이미 success로 확정되었으므로 카운터 갱신이 실패해도 상태를 되돌리지 않고 완료 알림도 보냅니다.
	var counterErr error
	if err := e.store.RecordRunSuccess(ctx, cfg.ID, completedAt); err != nil {
		logger.WithError(err).Error("설정의 실행 카운터 갱신에 실패했습니다")
		counterErr = newErrPersistence(err, "실행 카운터 갱신")
	}

	logger.WithFields(applog.Fields{
		"results_count": result.ResultsCount,
		"pages_fetched": outcome.fetched,
		"page_errors":   outcome.failed,
		"duration_ms":   result.DurationMs,
	}).Info("자동 검색 실행 완료")

	e.emit(ctx, contract.Notification{
		Type:     contract.NotificationSuccess,
		Title:    "자동 검색 완료",
		Message:  fmt.Sprintf("\"%s\" 검색이 성공적으로 완료되었습니다. (%d개 결과)", cfg.SearchQuery, result.ResultsCount),
		ConfigID: cfg.ID,
		Priority: contract.PriorityNormal,
	})

	return result, counterErr
}

// resolveCredentials 명시적으로 지정된 프로필, 설정에 연결된 프로필, 기본 프로필 순으로 인증 정보를 찾습니다.
// 명시적으로 지정된 프로필을 찾지 못하면 다음 순위로 넘어가지 않습니다.
func (e *Engine) resolveCredentials(ctx context.Context, cfg *SearchConfig, profileID *int64) (shopping.Credentials, error) {
	var (
		profile *CredentialProfile
		err     error
		source  string
	)

	switch {
	case profileID != nil:
		source = fmt.Sprintf("지정된 인증 프로필(id=%d)", *profileID)
		profile, err = e.store.GetCredentialProfile(ctx, *profileID)
	case cfg.CredentialProfileID != nil:
		source = fmt.Sprintf("설정에 연결된 인증 프로필(id=%d)", *cfg.CredentialProfileID)
		profile, err = e.store.GetCredentialProfile(ctx, *cfg.CredentialProfileID)
	default:
		source = "기본 인증 프로필"
		profile, err = e.store.GetDefaultCredentialProfile(ctx, APITypeShopping)
	}

	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return shopping.Credentials{}, newErrCredential("%s을 찾을 수 없습니다", source)
		}
		return shopping.Credentials{}, newErrPersistence(err, "인증 프로필 조회")
	}
	if profile == nil || !profile.IsActive {
		return shopping.Credentials{}, newErrCredential("%s이 비활성 상태입니다", source)
	}

	creds := shopping.Credentials{ClientID: profile.ClientID, ClientSecret: profile.ClientSecret}
	if !creds.Valid() {
		return shopping.Credentials{}, newErrCredential("%s에 Client ID/Secret이 설정되지 않았습니다", source)
	}

	return creds, nil
}

// collect 검색 API 페이지를 순회하며 일치 상품을 모읍니다.
//
// 페이지 단위의 UpstreamError는 기록만 하고 다음 페이지로 넘어갑니다.
// 빈 페이지나 형식이 잘못된 응답을 받으면 더 이상 결과가 없는 것으로 보고 순회를 멈춥니다.
// 그 밖의 에러(인증 실패, 취소 등)는 즉시 반환합니다.
func (e *Engine) collect(ctx context.Context, cfg *SearchConfig, creds shopping.Credentials, runID string, startedAt time.Time) (pageOutcome, error) {
	var out pageOutcome

	pages := min(max(cfg.MaxPages, 1), e.maxPages)
	target := cfg.Target()
	// 확인 날짜는 created_at과 같은 UTC 기준입니다.
	checkDate := startedAt.UTC().Format(time.DateOnly)

	var lastErr error
	for p := 1; p <= pages; p++ {
		start := (p-1)*ItemsPerAPIPage + 1
		if e.startCeiling > 0 && start > e.startCeiling {
			break
		}

		if p > 1 && e.pageDelay > 0 {
			e.sleep(e.pageDelay)
		}

		out.attempted++
		page, err := e.searcher.FetchPage(ctx, creds, shopping.PageRequest{
			Query:   cfg.SearchQuery,
			Display: ItemsPerAPIPage,
			Start:   start,
			Sort:    shopping.DefaultSort,
		})
		if err != nil {
			if !shopping.IsUpstreamError(err) {
				return out, err
			}

			out.failed++
			lastErr = err
			applog.WithComponentAndFields(component, applog.Fields{
				"config_id": cfg.ID,
				"run_id":    runID,
				"page":      p,
				"start":     start,
				"error":     err.Error(),
			}).Warn("검색 API 페이지 호출 실패: 다음 페이지로 진행")
			continue
		}

		if page.Malformed || len(page.Items) == 0 {
			break
		}
		out.fetched++

		for idx, item := range page.Items {
			if !IsExactMatch(item, target) {
				continue
			}
			out.results = append(out.results, newMatchedResult(cfg, runID, checkDate, startedAt, p, idx, item))
		}

		if len(page.Items) < ItemsPerAPIPage {
			break
		}
	}

	if out.attempted > 0 && out.failed == out.attempted {
		return out, newErrAllPagesFailed(lastErr, out.attempted)
	}

	return out, nil
}

// displayBrand 브랜드가 비어 있으면 제조사로 대신합니다. 일치 판정에는 사용하지 않습니다.
func displayBrand(item shopping.Item) string {
	if brand := StripHTML(item.Brand); brand != "" {
		return brand
	}
	return StripHTML(item.Maker)
}

// displayPrice 최저가가 없으면 최고가를 사용합니다.
func displayPrice(item shopping.Item) int64 {
	if item.LowPrice != 0 {
		return item.LowPrice
	}
	return item.HighPrice
}

func newMatchedResult(cfg *SearchConfig, runID, checkDate string, at time.Time, apiPage, idx int, item shopping.Item) MatchedResult {
	rank := Remap(apiPage, idx)

	return MatchedResult{
		ConfigID:          cfg.ID,
		RunID:             runID,
		SearchQuery:       cfg.SearchQuery,
		TargetProductName: cfg.TargetProductName,
		TargetMallName:    cfg.TargetMallName,
		TargetBrand:       cfg.TargetBrand,
		TotalRank:         rank.TotalRank,
		WebPage:           rank.WebPage,
		RankInWebPage:     rank.RankInWebPage,
		ProductTitle:      StripHTML(item.Title),
		MallName:          StripHTML(item.MallName),
		Brand:             displayBrand(item),
		Price:             displayPrice(item),
		ProductLink:       item.Link,
		ProductID:         item.ProductID,
		Category1:         item.Category1,
		Category2:         item.Category2,
		Category3:         item.Category3,
		IsExactMatch:      true,
		MatchConfidence:   1.0,
		CheckDate:         checkDate,
		CreatedAt:         at,
	}
}

// fail 실행을 실패로 확정합니다. 저장소 및 알림 오류는 기록만 하고 원래 에러를 반환합니다.
func (e *Engine) fail(ctx context.Context, cfg *SearchConfig, result *RunResult, runLogID int64, startedAt time.Time, cause error) (*RunResult, error) {
	// 요청이 취소되었더라도 실패 기록은 남겨야 합니다.
	ctx = context.WithoutCancel(ctx)

	completedAt := e.now()
	duration := completedAt.Sub(startedAt)

	result.Status = RunStatusError
	result.Duration = duration
	result.DurationMs = duration.Milliseconds()
	result.ErrorMessage = cause.Error()

	logger := applog.WithComponentAndFields(component, applog.Fields{
		"config_id": cfg.ID,
		"run_id":    result.RunID,
		"query":     cfg.SearchQuery,
	})
	logger.WithError(cause).Error("자동 검색 실행 실패")

	if runLogID != 0 {
		if err := e.store.CompleteRunLog(ctx, runLogID, RunCompletion{
			Status:       RunStatusError,
			CompletedAt:  completedAt,
			DurationMs:   result.DurationMs,
			ErrorMessage: result.ErrorMessage,
		}); err != nil {
			logger.WithError(err).Error("실행 로그를 오류 상태로 기록하지 못했습니다")
		}
	}

	if err := e.store.RecordRunFailure(ctx, cfg.ID, completedAt, result.ErrorMessage); err != nil {
		logger.WithError(err).Error("설정의 오류 카운터 갱신에 실패했습니다")
	}

	e.emit(ctx, contract.Notification{
		Type:     contract.NotificationError,
		Title:    "자동 검색 실패",
		Message:  fmt.Sprintf("\"%s\" 검색 중 오류가 발생했습니다: %s", cfg.SearchQuery, result.ErrorMessage),
		ConfigID: cfg.ID,
		Priority: contract.PriorityHigh,
	})

	return result, cause
}

func (e *Engine) emit(ctx context.Context, n contract.Notification) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Emit(ctx, n); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"config_id":         n.ConfigID,
			"notification_type": n.Type,
		}).WithError(err).Warn("알림 전달에 실패했습니다")
	}
}
