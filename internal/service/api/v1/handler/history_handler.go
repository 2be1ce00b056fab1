package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/darkkaiser/rank-tracker/internal/service/api/httputil"
	"github.com/darkkaiser/rank-tracker/internal/service/api/v1/model/response"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	defaultRunLogLimit = 50
	maxRunLogLimit     = 500
)

// queryBindError 쿼리 파라미터 바인딩 실패를 400 에러로 변환합니다.
func queryBindError(err error) error {
	if err == nil {
		return nil
	}

	var be *echo.BindingError
	if errors.As(err, &be) {
		return NewErrInvalidQuery(be.Field)
	}
	return NewErrInvalidQuery(err.Error())
}

// HistoryHandler godoc
// @Summary 검색 이력 조회
// @Description 설정 1건의 검색 결과를 확인 날짜와 실행 단위로 묶어 반환합니다. 최근 실행 로그도 함께 포함됩니다.
// @Description 문자열 조건(q, mall, brand)은 대소문자를 구분하지 않는 부분 일치입니다.
// @Description 페이지는 실행 단위로 나뉘며, 한 실행의 결과는 항상 같은 페이지에 모두 포함됩니다.
// @Tags History
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param id path int true "설정 ID"
// @Param since_days query int false "최근 N일 (0이면 전체)"
// @Param q query string false "상품명 또는 검색어"
// @Param mall query string false "쇼핑몰명"
// @Param brand query string false "브랜드"
// @Param exact_only query bool false "정확히 일치한 결과만"
// @Param page query int false "페이지 (기본 1)"
// @Param page_size query int false "페이지당 실행 수 (기본 200, 최대 500)"
// @Success 200 {object} autosearch.History "검색 이력"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "설정 없음"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/history/{id} [get]
func (h *Handler) HistoryHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var filter autosearch.HistoryFilter
	err = echo.QueryParamsBinder(c).
		Int("since_days", &filter.SinceDays).
		String("q", &filter.Query).
		String("mall", &filter.Mall).
		String("brand", &filter.Brand).
		Bool("exact_only", &filter.ExactOnly).
		Int("page", &filter.Page).
		Int("page_size", &filter.PageSize).
		BindError()
	if err != nil {
		return queryBindError(err)
	}

	history, err := h.store.History(c.Request().Context(), id, filter.Normalized())
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, history)
}

// RunLogsHandler godoc
// @Summary 실행 로그 조회
// @Description 설정 1건의 실행 로그를 최신순으로 반환합니다.
// @Tags History
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param id path int true "설정 ID"
// @Param limit query int false "최대 개수 (기본 50, 최대 500)"
// @Success 200 {object} response.RunLogListResponse "실행 로그"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "설정 없음"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/logs/{id} [get]
func (h *Handler) RunLogsHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	limit := defaultRunLogLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return queryBindError(err)
	}
	if limit < 1 {
		limit = defaultRunLogLimit
	}
	limit = min(limit, maxRunLogLimit)

	ctx := c.Request().Context()

	// 존재하지 않는 설정은 빈 목록 대신 404로 응답합니다.
	if _, err := h.store.GetConfig(ctx, id); err != nil {
		return httputil.FromAppError(err)
	}

	logs, err := h.store.ListRunLogs(ctx, id, limit)
	if err != nil {
		return httputil.FromAppError(err)
	}
	if logs == nil {
		logs = []autosearch.RunLog{}
	}

	return c.JSON(http.StatusOK, response.RunLogListResponse{ConfigID: id, Logs: logs})
}

// DashboardHandler godoc
// @Summary 대시보드
// @Description 전체 설정과 실행 통계, 최근 실행 기록, 설정별 최근 순위를 반환합니다.
// @Tags History
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Success 200 {object} autosearch.Dashboard "대시보드"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/dashboard [get]
func (h *Handler) DashboardHandler(c echo.Context) error {
	dashboard, err := h.store.Dashboard(c.Request().Context())
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

// CleanupLogsHandler godoc
// @Summary 오래된 실행 로그 정리
// @Description 보존 기간보다 오래된 실행 로그를 삭제합니다. 검색 결과는 삭제하지 않습니다.
// @Description days를 생략하면 설정 파일의 보존 기간을 사용합니다.
// @Tags Maintenance
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param days query int false "보존 기간(일)"
// @Success 200 {object} response.CleanupResponse "정리 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Security ApiKeyAuth
// @Router /api/v1/cleanup-logs [post]
func (h *Handler) CleanupLogsHandler(c echo.Context) error {
	days := h.retentionDays
	if err := echo.QueryParamsBinder(c).Int("days", &days).BindError(); err != nil {
		return queryBindError(err)
	}
	if days < 1 {
		return NewErrValidationFailed("보존 기간(days)은 1 이상이어야 합니다")
	}

	before := h.now().Add(-time.Duration(days) * 24 * time.Hour)

	deleted, err := h.store.DeleteRunLogsBefore(c.Request().Context(), before)
	if err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"retention_days": days,
		"deleted":        deleted,
	}).Info("오래된 실행 로그 정리 완료")

	return c.JSON(http.StatusOK, response.CleanupResponse{
		Success:       true,
		DeletedCount:  deleted,
		RetentionDays: days,
		Before:        before.UTC(),
	})
}
