package handler

import (
	"net/http"

	"github.com/darkkaiser/rank-tracker/internal/service/api/httputil"
	"github.com/darkkaiser/rank-tracker/internal/service/api/v1/model/response"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/internal/store/sqlite"
	"github.com/labstack/echo/v4"
)

const maxNotificationLimit = 200

// ListNotificationsHandler godoc
// @Summary 알림 목록
// @Description 저장된 알림을 최신순으로 반환합니다. 읽지 않은 알림 수도 함께 반환합니다.
// @Tags Notification
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param unread_only query bool false "읽지 않은 알림만"
// @Param limit query int false "최대 개수 (기본 50, 최대 200)"
// @Success 200 {object} response.NotificationListResponse "알림 목록"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Security ApiKeyAuth
// @Router /api/v1/notifications [get]
func (h *Handler) ListNotificationsHandler(c echo.Context) error {
	var filter sqlite.NotificationFilter
	err := echo.QueryParamsBinder(c).
		Bool("unread_only", &filter.UnreadOnly).
		Int("limit", &filter.Limit).
		BindError()
	if err != nil {
		return queryBindError(err)
	}
	filter.Limit = min(filter.Limit, maxNotificationLimit)

	ctx := c.Request().Context()

	notifications, err := h.store.ListNotifications(ctx, filter)
	if err != nil {
		return httputil.FromAppError(err)
	}
	if notifications == nil {
		notifications = []contract.NotificationRecord{}
	}

	unread, err := h.store.CountUnreadNotifications(ctx)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	})
}

// MarkNotificationReadHandler godoc
// @Summary 알림 읽음 처리
// @Tags Notification
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Param id path int true "알림 ID"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 ID"
// @Failure 404 {object} response.ErrorResponse "알림 없음"
// @Security ApiKeyAuth
// @Router /api/v1/notifications/{id}/read [patch]
func (h *Handler) MarkNotificationReadHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.store.MarkNotificationRead(c.Request().Context(), id); err != nil {
		return httputil.FromAppError(err)
	}

	return httputil.Success(c, "알림을 읽음으로 표시했습니다")
}

// MarkAllNotificationsReadHandler godoc
// @Summary 모든 알림 읽음 처리
// @Tags Notification
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Success 200 {object} response.AffectedResponse "읽음 처리된 알림 수"
// @Security ApiKeyAuth
// @Router /api/v1/notifications/read-all [post]
func (h *Handler) MarkAllNotificationsReadHandler(c echo.Context) error {
	affected, err := h.store.MarkAllNotificationsRead(c.Request().Context())
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.AffectedResponse{Success: true, Affected: affected})
}

// DeleteAllNotificationsHandler godoc
// @Summary 모든 알림 삭제
// @Tags Notification
// @Produce json
// @Param X-App-Key header string true "Application Key"
// @Success 200 {object} response.AffectedResponse "삭제된 알림 수"
// @Security ApiKeyAuth
// @Router /api/v1/notifications [delete]
func (h *Handler) DeleteAllNotificationsHandler(c echo.Context) error {
	affected, err := h.store.DeleteAllNotifications(c.Request().Context())
	if err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithField("deleted", affected).Info("알림 전체 삭제")

	return c.JSON(http.StatusOK, response.AffectedResponse{Success: true, Affected: affected})
}
