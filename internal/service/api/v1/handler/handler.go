// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 요청을 바인딩하고 검증한 뒤 실행 엔진 또는 저장소를 호출하고,
// 서비스 계층의 에러는 httputil.FromAppError로 HTTP 응답으로 변환합니다.
package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/darkkaiser/rank-tracker/internal/pkg/validator"
	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/internal/store/sqlite"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/labstack/echo/v4"
)

// Runner 자동 검색 실행 엔진. *autosearch.Engine이 구현합니다.
type Runner interface {
	RunOnce(ctx context.Context, configID int64, profileID *int64) (*autosearch.RunResult, error)
	RunAllActive(ctx context.Context, profileID *int64) *autosearch.BatchSummary
	Lookup(ctx context.Context, req autosearch.LookupRequest) (*autosearch.LookupResult, error)
}

// Store API가 사용하는 저장소 기능. *sqlite.Store가 구현합니다.
type Store interface {
	CreateConfig(ctx context.Context, c *autosearch.SearchConfig) error
	UpdateConfig(ctx context.Context, c *autosearch.SearchConfig) error
	DeleteConfig(ctx context.Context, id int64) error
	GetConfig(ctx context.Context, id int64) (*autosearch.SearchConfig, error)
	ListConfigs(ctx context.Context) ([]*autosearch.SearchConfig, error)

	History(ctx context.Context, configID int64, filter autosearch.HistoryFilter) (*autosearch.History, error)
	ListRunLogs(ctx context.Context, configID int64, limit int) ([]autosearch.RunLog, error)
	Dashboard(ctx context.Context) (*autosearch.Dashboard, error)
	DeleteRunLogsBefore(ctx context.Context, before time.Time) (int64, error)

	ListNotifications(ctx context.Context, filter sqlite.NotificationFilter) ([]contract.NotificationRecord, error)
	CountUnreadNotifications(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
	DeleteAllNotifications(ctx context.Context) (int64, error)

	CreateCredentialProfile(ctx context.Context, p *autosearch.CredentialProfile) error
	ListCredentialProfiles(ctx context.Context) ([]*autosearch.CredentialProfile, error)
	DeleteCredentialProfile(ctx context.Context, id int64) error
}

var _ Store = (*sqlite.Store)(nil)

// Handler v1 API 요청을 처리합니다.
type Handler struct {
	runner Runner
	store  Store

	// retentionDays 수동 로그 정리에서 days를 생략했을 때 사용하는 보존 기간
	retentionDays int

	now func() time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(runner Runner, store Store, retentionDays int) *Handler {
	if runner == nil {
		panic("Runner는 필수입니다")
	}
	if store == nil {
		panic("Store는 필수입니다")
	}

	return &Handler{
		runner: runner,
		store:  store,

		retentionDays: retentionDays,

		now: time.Now,
	}
}

// bindAndValidate 요청 본문을 바인딩하고 validate 태그로 검증합니다.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if n, ok := req.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}
	return nil
}

// parseID 경로 파라미터 :id를 1 이상의 정수로 변환합니다.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, NewErrInvalidID()
	}
	return id, nil
}

// userContext 사용자 요청으로 실행되었음을 Context에 기록합니다.
func userContext(c echo.Context) context.Context {
	return contract.WithRunBy(c.Request().Context(), contract.RunByUser)
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
