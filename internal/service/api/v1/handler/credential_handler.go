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

// ListCredentialsHandler godoc
// @Summary 검색 API 인증 프로필 목록
// @Description Client ID와 Secret은 마스킹되어 반환됩니다.
// @Tags Credential
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Success 200 {object} response.CredentialListResponse "인증 프로필 목록"
// @Security ApiKeyAuth
// @Router /api/v1/credentials [get]
func (h *Handler) ListCredentialsHandler(c echo.Context) error {
	profiles, err := h.store.ListCredentialProfiles(c.Request().Context())
	if err != nil {
		return httputil.FromAppError(err)
	}

	credentials := make([]response.Credential, 0, len(profiles))
	for _, p := range profiles {
		credentials = append(credentials, response.NewCredential(p))
	}

	return c.JSON(http.StatusOK, response.CredentialListResponse{Credentials: credentials})
}

// CreateCredentialHandler godoc
// @Summary 검색 API 인증 프로필 등록
// @Description is_default를 true로 지정하면 기존 기본 프로필의 지정이 해제됩니다.
// @Tags Credential
// @Accept json
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param request body request.CredentialRequest true "인증 프로필"
// @Success 201 {object} response.Credential "등록된 인증 프로필"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Security ApiKeyAuth
// @Router /api/v1/credentials [post]
func (h *Handler) CreateCredentialHandler(c echo.Context) error {
	req := new(request.CredentialRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	profile := &autosearch.CredentialProfile{
		Name:         req.Name,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		APIType:      autosearch.APITypeShopping,
		IsActive:     true,
		IsDefault:    req.IsDefault,
	}
	if err := h.store.CreateCredentialProfile(c.Request().Context(), profile); err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"profile_id": profile.ID,
		"is_default": profile.IsDefault,
	}).Info("검색 API 인증 프로필 등록")

	return c.JSON(http.StatusCreated, response.NewCredential(profile))
}

// DeleteCredentialHandler godoc
// @Summary 검색 API 인증 프로필 삭제
// @Description 이 프로필을 사용하던 설정은 이후 기본 프로필로 실행됩니다.
// @Tags Credential
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param id path int true "인증 프로필 ID"
// @Success 200 {object} response.SuccessResponse "삭제 성공"
// @Failure 404 {object} response.ErrorResponse "인증 프로필 없음"
// @Security ApiKeyAuth
// @Router /api/v1/credentials/{id} [delete]
func (h *Handler) DeleteCredentialHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.store.DeleteCredentialProfile(c.Request().Context(), id); err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithField("profile_id", id).Info("검색 API 인증 프로필 삭제")

	return httputil.Success(c, "인증 프로필이 삭제되었습니다")
}
