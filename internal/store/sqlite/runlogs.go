package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
)

const runLogColumns = `id, config_id, run_id, trigger_by, status, started_at, completed_at,
	duration_ms, results_count, error_message, result_sample`

func scanRunLog(row rowScanner) (*autosearch.RunLog, error) {
	var (
		l           autosearch.RunLog
		status      string
		startedAt   string
		completedAt sql.NullString
		sample      string
	)
	if err := row.Scan(&l.ID, &l.ConfigID, &l.RunID, &l.Trigger, &status, &startedAt, &completedAt,
		&l.DurationMs, &l.ResultsCount, &l.ErrorMessage, &sample); err != nil {
		return nil, err
	}

	l.Status = autosearch.RunStatus(status)
	l.StartedAt = parseTime(startedAt)
	l.CompletedAt = timePtr(completedAt)
	if sample != "" {
		// 견본은 표시용이므로 손상된 값은 비워 둡니다.
		_ = json.Unmarshal([]byte(sample), &l.ResultSample)
	}

	return &l, nil
}

// CreateRunLog running 상태의 실행 로그를 추가합니다.
func (s *Store) CreateRunLog(ctx context.Context, l *autosearch.RunLog) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO run_logs (config_id, run_id, trigger_by, status, started_at)
		VALUES (?, ?, ?, ?, ?)`,
		l.ConfigID, l.RunID, l.Trigger, string(autosearch.RunStatusRunning), formatTime(l.StartedAt))
	if err != nil {
		return 0, wrapQueryErr(err, "실행 로그 추가")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapQueryErr(err, "실행 로그 추가")
	}
	return id, nil
}

// CompleteRunLog running 상태의 실행 로그를 종료 상태로 한 번만 전이시킵니다.
// 이미 종료된 로그이거나 존재하지 않으면 apperrors.Conflict 에러를 반환합니다.
func (s *Store) CompleteRunLog(ctx context.Context, id int64, c autosearch.RunCompletion) error {
	if c.Status != autosearch.RunStatusSuccess && c.Status != autosearch.RunStatusError {
		return apperrors.Newf(apperrors.InvalidInput, "실행 로그의 종료 상태가 올바르지 않습니다: '%s'", c.Status)
	}

	sample := c.ResultSample
	if sample == nil {
		sample = []autosearch.MatchedResult{}
	}
	sampleJSON, err := json.Marshal(sample)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "실행 결과 견본 직렬화에 실패했습니다")
	}

	res, err := s.db.ExecContext(ctx, `UPDATE run_logs SET
		status = ?, completed_at = ?, duration_ms = ?, results_count = ?, error_message = ?, result_sample = ?
		WHERE id = ? AND status = 'running'`,
		string(c.Status), formatTime(c.CompletedAt), c.DurationMs, c.ResultsCount, c.ErrorMessage, string(sampleJSON), id)
	if err != nil {
		return wrapQueryErr(err, "실행 로그 완료")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrapQueryErr(err, "실행 로그 완료")
	}
	if n == 0 {
		return apperrors.Newf(apperrors.Conflict, "실행 중 상태인 실행 로그가 없습니다(id=%d)", id)
	}
	return nil
}

// ListRunLogs 설정의 실행 로그를 최신순으로 최대 limit개 반환합니다. limit이 0 이하이면 100개입니다.
func (s *Store) ListRunLogs(ctx context.Context, configID int64, limit int) ([]autosearch.RunLog, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, "SELECT "+runLogColumns+` FROM run_logs
		WHERE config_id = ? ORDER BY started_at DESC, id DESC LIMIT ?`, configID, limit)
	if err != nil {
		return nil, wrapQueryErr(err, "실행 로그 조회")
	}
	defer rows.Close()

	logs := []autosearch.RunLog{}
	for rows.Next() {
		l, err := scanRunLog(rows)
		if err != nil {
			return nil, wrapQueryErr(err, "실행 로그 조회")
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "실행 로그 조회")
	}

	return logs, nil
}

// DeleteRunLogsBefore before 이전에 시작된 종료 상태의 실행 로그를 삭제하고 삭제된 개수를 반환합니다.
// 실행 중인 로그와 검색 결과는 삭제하지 않습니다.
func (s *Store) DeleteRunLogsBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM run_logs WHERE started_at < ? AND status <> 'running'", formatTime(before))
	if err != nil {
		return 0, wrapQueryErr(err, "오래된 실행 로그 삭제")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapQueryErr(err, "오래된 실행 로그 삭제")
	}
	return n, nil
}
