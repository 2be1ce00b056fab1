package handler

import (
	"net/http"

	"github.com/darkkaiser/rank-tracker/internal/service/api/httputil"
	"github.com/darkkaiser/rank-tracker/internal/service/api/v1/model/request"
	"github.com/darkkaiser/rank-tracker/internal/service/api/v1/model/response"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/labstack/echo/v4"
)

// ListConfigsHandler godoc
// @Summary 자동 검색 설정 목록
// @Description 비활성 설정을 포함한 모든 설정을 최신 생성순으로 반환합니다.
// @Tags Config
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Success 200 {object} response.ConfigListResponse "설정 목록"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/configs [get]
func (h *Handler) ListConfigsHandler(c echo.Context) error {
	configs, err := h.store.ListConfigs(c.Request().Context())
	if err != nil {
		return httputil.FromAppError(err)
	}
	if configs == nil {
		configs = []*autosearch.SearchConfig{}
	}

	return c.JSON(http.StatusOK, response.ConfigListResponse{Configs: configs})
}

// CreateConfigHandler godoc
// @Summary 자동 검색 설정 생성
// @Description 검색어와 대상 조건으로 새 설정을 만듭니다.
// @Description 상품명, 쇼핑몰명, 브랜드 중 하나 이상을 입력해야 합니다.
// @Description max_pages, interval_hours, is_active를 생략하면 각각 10, 6, true가 사용됩니다.
// @Tags Config
// @Accept json
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param request body request.ConfigRequest true "설정 정보"
// @Success 201 {object} response.ConfigResponse "생성된 설정"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/configs [post]
func (h *Handler) CreateConfigHandler(c echo.Context) error {
	req := new(request.ConfigRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	cfg := new(autosearch.SearchConfig)
	req.ApplyTo(cfg)

	if err := h.store.CreateConfig(c.Request().Context(), cfg); err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"config_id":    cfg.ID,
		"search_query": cfg.SearchQuery,
	}).Info("자동 검색 설정 생성")

	return c.JSON(http.StatusCreated, response.ConfigResponse{Config: cfg})
}

// GetConfigHandler godoc
// @Summary 자동 검색 설정 조회
// @Tags Config
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param id path int true "설정 ID"
// @Success 200 {object} response.ConfigResponse "설정"
// @Failure 400 {object} response.ErrorResponse "잘못된 ID"
// @Failure 404 {object} response.ErrorResponse "설정 없음"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/configs/{id} [get]
func (h *Handler) GetConfigHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	cfg, err := h.store.GetConfig(c.Request().Context(), id)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.ConfigResponse{Config: cfg})
}

// UpdateConfigHandler godoc
// @Summary 자동 검색 설정 수정
// @Description 설정의 편집 가능한 항목을 모두 교체합니다. 실행 통계는 유지됩니다.
// @Tags Config
// @Accept json
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param id path int true "설정 ID"
// @Param request body request.ConfigRequest true "설정 정보"
// @Success 200 {object} response.ConfigResponse "수정된 설정"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "설정 없음"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/configs/{id} [put]
func (h *Handler) UpdateConfigHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	req := new(request.ConfigRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	cfg, err := h.store.GetConfig(ctx, id)
	if err != nil {
		return httputil.FromAppError(err)
	}

	req.ApplyTo(cfg)
	if err := h.store.UpdateConfig(ctx, cfg); err != nil {
		return httputil.FromAppError(err)
	}

	// 갱신 시각을 반영하기 위해 다시 조회합니다.
	if cfg, err = h.store.GetConfig(ctx, id); err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithField("config_id", id).Info("자동 검색 설정 수정")

	return c.JSON(http.StatusOK, response.ConfigResponse{Config: cfg})
}

// DeleteConfigHandler godoc
// @Summary 자동 검색 설정 삭제
// @Description 설정과 해당 설정의 실행 로그, 검색 결과를 함께 삭제합니다.
// @Tags Config
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param id path int true "설정 ID"
// @Success 200 {object} response.SuccessResponse "삭제 성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 ID"
// @Failure 404 {object} response.ErrorResponse "설정 없음"
// @Security ApiKeyAuth
// @Router /api/v1/auto-search/configs/{id} [delete]
func (h *Handler) DeleteConfigHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.store.DeleteConfig(c.Request().Context(), id); err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithField("config_id", id).Info("자동 검색 설정 삭제")

	return httputil.Success(c, "자동 검색 설정이 삭제되었습니다")
}
