package sqlite

import (
	"context"
	"database/sql"

	"github.com/darkkaiser/rank-tracker/internal/service/contract"
)

const notificationColumns = "id, type, title, message, config_id, priority, is_read, created_at"

// NotificationFilter 알림 목록 조회 조건
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
}

// InsertNotification 알림을 읽지 않은 상태로 저장하고 ID를 반환합니다. ConfigID가 0이면 설정과 연결하지 않습니다.
func (s *Store) InsertNotification(ctx context.Context, n contract.Notification) (int64, error) {
	var configID sql.NullInt64
	if n.ConfigID > 0 {
		configID = sql.NullInt64{Int64: n.ConfigID, Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO notifications (type, title, message, config_id, priority, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)`,
		string(n.Type), n.Title, n.Message, configID, string(n.Priority), formatTime(s.now()))
	if err != nil {
		return 0, wrapQueryErr(err, "알림 저장")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapQueryErr(err, "알림 저장")
	}
	return id, nil
}

// ListNotifications 알림을 최신순으로 반환합니다. Limit이 0 이하이면 50개입니다.
func (s *Store) ListNotifications(ctx context.Context, filter NotificationFilter) ([]contract.NotificationRecord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := "SELECT " + notificationColumns + " FROM notifications"
	if filter.UnreadOnly {
		query += " WHERE is_read = 0"
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, wrapQueryErr(err, "알림 목록 조회")
	}
	defer rows.Close()

	records := []contract.NotificationRecord{}
	for rows.Next() {
		var (
			r                        contract.NotificationRecord
			typ, priority, createdAt string
			configID                 sql.NullInt64
		)
		if err := rows.Scan(&r.ID, &typ, &r.Title, &r.Message, &configID, &priority, &r.Read, &createdAt); err != nil {
			return nil, wrapQueryErr(err, "알림 목록 조회")
		}
		r.Type = contract.NotificationType(typ)
		r.Priority = contract.Priority(priority)
		r.ConfigID = int64Ptr(configID)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "알림 목록 조회")
	}

	return records, nil
}

// CountUnreadNotifications 읽지 않은 알림 개수를 반환합니다.
func (s *Store) CountUnreadNotifications(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notifications WHERE is_read = 0").Scan(&n); err != nil {
		return 0, wrapQueryErr(err, "읽지 않은 알림 개수 조회")
	}
	return n, nil
}

// MarkNotificationRead 알림 1건을 읽음 처리합니다.
func (s *Store) MarkNotificationRead(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "UPDATE notifications SET is_read = 1 WHERE id = ?", id)
	if err != nil {
		return wrapQueryErr(err, "알림 읽음 처리")
	}
	return expectAffected(res, "알림을 찾을 수 없습니다(id=%d)", id)
}

// MarkAllNotificationsRead 모든 알림을 읽음 처리하고 변경된 개수를 반환합니다.
func (s *Store) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE notifications SET is_read = 1 WHERE is_read = 0")
	if err != nil {
		return 0, wrapQueryErr(err, "전체 알림 읽음 처리")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapQueryErr(err, "전체 알림 읽음 처리")
	}
	return n, nil
}

// DeleteAllNotifications 모든 알림을 삭제하고 삭제된 개수를 반환합니다.
func (s *Store) DeleteAllNotifications(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM notifications")
	if err != nil {
		return 0, wrapQueryErr(err, "전체 알림 삭제")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapQueryErr(err, "전체 알림 삭제")
	}
	return n, nil
}
