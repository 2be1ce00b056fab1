package contract

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
)

// NotificationType 알림의 종류
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Priority 알림 우선순위
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// ErrMessageRequired 알림 본문이 비어 있을 때 반환됩니다.
var ErrMessageRequired = apperrors.New(apperrors.InvalidInput, "알림 메시지 본문은 비워둘 수 없습니다")

// Notification 자동 검색 실행 결과 알림
type Notification struct {
	Type     NotificationType
	Title    string
	Message  string
	ConfigID int64
	Priority Priority
}

func (n Notification) Validate() error {
	if strings.TrimSpace(n.Message) == "" {
		return ErrMessageRequired
	}
	switch n.Type {
	case NotificationSuccess, NotificationError:
	default:
		return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 알림 종류입니다: '%s'", n.Type)
	}
	return nil
}

// NotificationSink 알림을 수신하여 저장하고 외부 채널로 전달하는 인터페이스입니다.
//
// Emit은 알림을 접수만 하고 외부 채널 전송 완료를 기다리지 않습니다.
// 반환된 에러는 접수 실패(저장 실패, 유효하지 않은 알림 등)를 의미합니다.
type NotificationSink interface {
	Emit(ctx context.Context, n Notification) error
}

// NotificationRecord 저장된 알림
type NotificationRecord struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	ConfigID  *int64           `json:"config_id,omitempty"`
	Priority  Priority         `json:"priority"`
	Read      bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
