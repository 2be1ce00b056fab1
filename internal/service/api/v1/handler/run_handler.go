package handler

import (
	"fmt"
	"net/http"

	"github.com/darkkaiser/rank-tracker/internal/service/api/httputil"
	"github.com/darkkaiser/rank-tracker/internal/service/api/v1/model/request"
	"github.com/darkkaiser/rank-tracker/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/labstack/echo/v4"
)

// RunHandler godoc
// @Summary 자동 검색 설정 1건 실행
// @Description 저장된 자동 검색 설정을 즉시 실행하고 결과 요약을 반환합니다.
// @Description profile_id를 지정하면 설정에 연결된 인증 프로필 대신 해당 프로필을 사용합니다.
// @Description
// @Description 같은 설정이 이미 실행 중이면 409를 반환합니다.
// @Description 인증 정보가 없거나 유효하지 않으면 422, 검색 API 호출이 모두 실패하면 502를 반환합니다.
// @Tags AutoSearch
// @Accept json
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param request body request.RunRequest true "실행 요청"
// @Success 200 {object} response.RunResponse "실행 성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 404 {object} response.ErrorResponse "설정 없음"
// @Failure 409 {object} response.ErrorResponse "이미 실행 중"
// @Failure 422 {object} response.ErrorResponse "검색 API 인증 정보 오류"
// @Failure 502 {object} response.ErrorResponse "검색 API 호출 실패"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/run [post]
func (h *Handler) RunHandler(c echo.Context) error {
	req := new(request.RunRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	result, err := h.runner.RunOnce(userContext(c), req.ConfigID, req.ProfileID)
	if err != nil {
		h.log(c).WithFields(applog.Fields{
			"config_id": req.ConfigID,
			"error":     err,
		}).Warn("자동 검색 실행 실패")

		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.RunResponse{
		Success: true,
		Message: fmt.Sprintf("자동 검색이 성공적으로 완료되었습니다 (%d개 결과)", result.ResultsCount),
		Result:  result,
	})
}

// RunAllHandler godoc
// @Summary 활성 자동 검색 설정 전체 실행
// @Description 활성 상태인 모든 설정을 순서대로 실행합니다.
// @Description 일부 설정이 실패해도 나머지 설정은 계속 실행되며, 실패 목록은 summary.failed에 포함됩니다.
// @Tags AutoSearch
// @Accept json
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param request body request.RunAllRequest false "실행 요청"
// @Success 200 {object} response.RunAllResponse "실행 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 500 {object} response.ErrorResponse "설정 목록 조회 실패"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/run-all [post]
func (h *Handler) RunAllHandler(c echo.Context) error {
	req := new(request.RunAllRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	summary := h.runner.RunAllActive(userContext(c), req.ProfileID)
	if summary.ListError != "" {
		h.log(c).WithField("error", summary.ListError).Error("활성 설정 목록 조회 실패")

		return httputil.NewInternalServerError("활성 자동 검색 설정 목록을 조회하지 못했습니다")
	}

	h.log(c).WithFields(applog.Fields{
		"attempted": len(summary.Attempted),
		"succeeded": len(summary.Succeeded),
		"failed":    len(summary.Failed),
		"results":   summary.Results,
	}).Info("활성 자동 검색 설정 전체 실행 완료")

	return c.JSON(http.StatusOK, response.RunAllResponse{
		Success: len(summary.Failed) == 0,
		Summary: summary,
	})
}

// SearchHandler godoc
// @Summary 일회성 순위 확인
// @Description 설정을 저장하지 않고 검색어와 대상 조건으로 현재 순위를 확인합니다.
// @Description 결과는 저장되지 않습니다.
// @Tags AutoSearch
// @Accept json
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param request body request.SearchRequest true "순위 확인 요청"
// @Success 200 {object} autosearch.LookupResult "순위 확인 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 422 {object} response.ErrorResponse "검색 API 인증 정보 오류"
// @Failure 502 {object} response.ErrorResponse "검색 API 호출 실패"
// @Security ApiKeyAuth
// @Router /api/v1/search [post]
func (h *Handler) SearchHandler(c echo.Context) error {
	req := new(request.SearchRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	result, err := h.runner.Lookup(userContext(c), req.LookupRequest())
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, result)
}
